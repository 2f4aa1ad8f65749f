package config_test

import (
	"os"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/ukane-philemon/gradebook/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("GRADEBOOK_LOG_LEVEL", "")
	g.Expect(os.Unsetenv("GRADEBOOK_LOG_LEVEL")).To(Succeed())

	cfg, err := config.Load()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.LogLevel).To(Equal("info"))
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GRADEBOOK_LOG_LEVEL", "debug")
	g := NewWithT(t)

	cfg, err := config.Load()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg).To(Equal(&config.Config{LogLevel: "debug"}))
}

func TestLoad_DataFileIsFixed(t *testing.T) {
	t.Setenv("GRADEBOOK_DATA_FILE", "/tmp/elsewhere.csv")
	g := NewWithT(t)

	_, err := config.Load()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(config.DataFile).To(Equal("grades.csv"))
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("GRADEBOOK_LOG_LEVEL", "verbose")
	g := NewWithT(t)

	_, err := config.Load()
	g.Expect(err).To(MatchError(ContainSubstring("invalid log level")))
}
