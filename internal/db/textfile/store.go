package textfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ukane-philemon/gradebook/internal/student"
	"github.com/ukane-philemon/gradebook/tracker"
)

const fileMode = 0o644

// Check that *Store implements tracker.RosterStore.
var _ tracker.RosterStore = (*Store)(nil)

// Store implements tracker.RosterStore on top of a flat text file.
type Store struct {
	path   string
	logger gokitlog.Logger
}

// New returns a new instance of *Store persisting to path. A nil logger
// discards logs.
func New(path string, logger gokitlog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("data file path is required")
	}

	if logger == nil {
		logger = gokitlog.NewNopLogger()
	}

	return &Store{
		path:   path,
		logger: gokitlog.With(logger, "component", "textfile", "path", path),
	}, nil
}

// Path returns the location of the data file.
// Implements tracker.RosterStore.
func (s *Store) Path() string {
	return s.path
}

// Load reads every student from the data file. A missing file is not an
// error and yields an empty roster.
// Implements tracker.RosterStore.
func (s *Store) Load() (*student.Roster, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			level.Debug(s.logger).Log("msg", "data file does not exist, starting with an empty roster")
			return student.NewRoster(), nil
		}
		return nil, fmt.Errorf("os.Open error: %w", err)
	}
	defer f.Close()

	students, skipped, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("textfile.Decode error: %w", err)
	}

	if skipped > 0 {
		level.Debug(s.logger).Log("msg", "skipped malformed lines", "count", skipped)
	}
	level.Info(s.logger).Log("msg", "roster loaded", "students", len(students))

	return student.NewRoster(students...), nil
}

// Save replaces the data file with the provided students. The file is
// written to a temporary sibling first so a failed write leaves the previous
// data intact.
// Implements tracker.RosterStore.
func (s *Store) Save(students []*student.Student) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp error: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, students); err != nil {
		return fmt.Errorf("textfile.Encode error: %w", err)
	}

	if err = tmp.Chmod(fileMode); err != nil {
		return fmt.Errorf("tmp.Chmod error: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close error: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("os.Rename error: %w", err)
	}

	level.Info(s.logger).Log("msg", "roster saved", "students", len(students))

	return nil
}
