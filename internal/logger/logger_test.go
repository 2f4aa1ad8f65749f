package logger_test

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	. "github.com/onsi/gomega"

	"github.com/ukane-philemon/gradebook/internal/logger"
)

func TestNew_FiltersBelowLevel(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf bytes.Buffer
	l, err := logger.New(&buf, logger.LevelWarn)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(level.Info(l).Log("msg", "hidden")).To(Succeed())
	g.Expect(level.Error(l).Log("msg", "shown")).To(Succeed())

	g.Expect(buf.String()).NotTo(ContainSubstring("hidden"))
	g.Expect(buf.String()).To(ContainSubstring("level=error"))
	g.Expect(buf.String()).To(ContainSubstring("msg=shown"))
	g.Expect(buf.String()).To(ContainSubstring("caller="))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := logger.New(&bytes.Buffer{}, "loud")
	g.Expect(err).To(HaveOccurred())
	g.Expect(logger.ValidLevel("loud")).To(BeFalse())
	g.Expect(logger.ValidLevel(logger.LevelDebug)).To(BeTrue())
}
