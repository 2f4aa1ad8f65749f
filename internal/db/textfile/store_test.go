package textfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/ukane-philemon/gradebook/internal/db/textfile"
	"github.com/ukane-philemon/gradebook/internal/logger"
	"github.com/ukane-philemon/gradebook/internal/student"
)

func newStore(t *testing.T, path string) *textfile.Store {
	t.Helper()

	store, err := textfile.New(path, logger.Nop())
	if err != nil {
		t.Fatalf("textfile.New error: %v", err)
	}
	return store
}

func TestNew_RequiresPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := textfile.New("", logger.Nop())
	g.Expect(err).To(HaveOccurred())
}

func TestNew_NilLoggerDiscards(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "grades.csv")
	store, err := textfile.New(path, nil)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(store.Save([]*student.Student{{Name: "Ada", Grades: []float64{80}}})).To(Succeed())
	roster, err := store.Load()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(roster.Len()).To(Equal(1))
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	store := newStore(t, filepath.Join(t.TempDir(), "grades.csv"))

	roster, err := store.Load()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(roster.Len()).To(BeZero())
}

func TestStore_SaveThenLoad(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "grades.csv")
	store := newStore(t, path)

	roster := student.NewRoster()
	g.Expect(roster.Add("Doe, John", []float64{80, 90, 70})).To(Succeed())
	g.Expect(roster.Add("Ada", []float64{60.5})).To(Succeed())

	g.Expect(store.Save(roster.Students())).To(Succeed())
	g.Expect(store.Path()).To(Equal(path))

	data, err := os.ReadFile(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(Equal("Doe\\, John,80;90;70\nAda,60.5\n"))

	loaded, err := newStore(t, path).Load()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded.Students()).To(Equal(roster.Students()))
}

func TestStore_LoadKeepsStudentsAroundLongLine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "grades.csv")
	long := "Big," + strings.Repeat("abc;", 400000)
	g.Expect(os.WriteFile(path, []byte("Ada,80\n"+long+"\nBob,60\n"), 0o644)).To(Succeed())

	roster, err := newStore(t, path).Load()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(roster.Students()).To(Equal([]*student.Student{
		{Name: "Ada", Grades: []float64{80}},
		{Name: "Bob", Grades: []float64{60}},
	}))
}

func TestStore_SaveReplacesFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "grades.csv")
	g.Expect(os.WriteFile(path, []byte("Old,50\nOlder,40\n"), 0o644)).To(Succeed())
	store := newStore(t, path)

	g.Expect(store.Save([]*student.Student{{Name: "New", Grades: []float64{99}}})).To(Succeed())

	data, err := os.ReadFile(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(data)).To(Equal("New,99\n"))

	entries, err := os.ReadDir(filepath.Dir(path))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(entries).To(HaveLen(1))
}

func TestStore_SaveFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	store := newStore(t, filepath.Join(t.TempDir(), "missing", "grades.csv"))

	err := store.Save([]*student.Student{{Name: "Ada", Grades: []float64{80}}})
	g.Expect(err).To(MatchError(ContainSubstring("os.CreateTemp error")))
}

func TestStore_LoadFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// A directory cannot be decoded as a data file.
	store := newStore(t, t.TempDir())

	_, err := store.Load()
	g.Expect(err).To(HaveOccurred())
}
