package tracker

import (
	"github.com/ukane-philemon/gradebook/internal/student"
)

type RosterStore interface {
	// Load reads the persisted roster. A missing data file yields an empty
	// roster and no error.
	Load() (*student.Roster, error)
	// Save replaces the persisted roster with students. Students without
	// grades are never written.
	Save(students []*student.Student) error
	// Path returns the location of the persisted roster.
	Path() string
}
