package student

import (
	"fmt"

	"github.com/ukane-philemon/gradebook/internal/db"
)

// Check that *Roster implements Repository.
var _ Repository = (*Roster)(nil)

type Student struct {
	Name   string
	Grades []float64
}

// Average returns the arithmetic mean of the student's grades or 0 if the
// student has no grades.
func (s *Student) Average() float64 {
	if len(s.Grades) == 0 {
		return 0
	}

	var total float64
	for _, grade := range s.Grades {
		total += grade
	}
	return total / float64(len(s.Grades))
}

// Max returns the student's highest grade or 0 if the student has no grades.
func (s *Student) Max() float64 {
	if len(s.Grades) == 0 {
		return 0
	}

	highest := s.Grades[0]
	for _, grade := range s.Grades[1:] {
		if grade > highest {
			highest = grade
		}
	}
	return highest
}

// Min returns the student's lowest grade or 0 if the student has no grades.
func (s *Student) Min() float64 {
	if len(s.Grades) == 0 {
		return 0
	}

	lowest := s.Grades[0]
	for _, grade := range s.Grades[1:] {
		if grade < lowest {
			lowest = grade
		}
	}
	return lowest
}

// Entry is a student as displayed to the user, with its 1-based position in
// the roster.
type Entry struct {
	Position int
	Name     string
	Grades   []float64
}

type StudentReport struct {
	Name    string
	Average float64
	Max     float64
	Min     float64
}

type Report struct {
	TotalStudents int
	ClassAverage  float64
	Highest       *StudentReport
	Lowest        *StudentReport
	Students      []*StudentReport
}

// Roster is the ordered collection of all tracked students. Insertion order
// is preserved and names are not required to be unique.
type Roster struct {
	students []*Student
}

// NewRoster creates a new instance of *Roster holding students.
func NewRoster(students ...*Student) *Roster {
	return &Roster{students: students}
}

// Add appends a new student to the roster. Returns db.ErrorInvalidRequest if
// grades is empty.
// Implements Repository.
func (r *Roster) Add(name string, grades []float64) error {
	if len(grades) == 0 {
		return fmt.Errorf("%w: no grades added, student not saved", db.ErrorInvalidRequest)
	}

	r.students = append(r.students, &Student{
		Name:   name,
		Grades: append([]float64(nil), grades...),
	})

	return nil
}

// Remove deletes the student at the 1-based position and returns it. Returns
// db.ErrorOutOfRange if position does not exist.
// Implements Repository.
func (r *Roster) Remove(position int) (*Student, error) {
	if position < 1 || position > len(r.students) {
		return nil, fmt.Errorf("%w: %d (roster has %d students)", db.ErrorOutOfRange, position, len(r.students))
	}

	index := position - 1
	removed := r.students[index]
	r.students = append(r.students[:index], r.students[index+1:]...)
	return removed, nil
}

// List returns every student with their display position.
// Implements Repository.
func (r *Roster) List() []*Entry {
	entries := make([]*Entry, 0, len(r.students))
	for index, s := range r.students {
		entries = append(entries, &Entry{
			Position: index + 1,
			Name:     s.Name,
			Grades:   s.Grades,
		})
	}
	return entries
}

// Report computes per-student and class-wide statistics. Returns
// db.ErrorInvalidRequest if the roster is empty.
// Implements Repository.
func (r *Roster) Report() (*Report, error) {
	if len(r.students) == 0 {
		return nil, fmt.Errorf("%w: no data", db.ErrorInvalidRequest)
	}

	report := &Report{
		TotalStudents: len(r.students),
		Students:      make([]*StudentReport, 0, len(r.students)),
	}

	var totalAverage float64
	for _, s := range r.students {
		sr := &StudentReport{
			Name:    s.Name,
			Average: s.Average(),
			Max:     s.Max(),
			Min:     s.Min(),
		}
		totalAverage += sr.Average

		// Strict comparisons keep the first student on ties.
		if report.Highest == nil || sr.Average > report.Highest.Average {
			report.Highest = sr
		}
		if report.Lowest == nil || sr.Average < report.Lowest.Average {
			report.Lowest = sr
		}

		report.Students = append(report.Students, sr)
	}

	report.ClassAverage = totalAverage / float64(len(r.students))
	return report, nil
}

// Students returns the students in insertion order.
// Implements Repository.
func (r *Roster) Students() []*Student {
	return r.students
}

// Len returns the number of students in the roster.
func (r *Roster) Len() int {
	return len(r.students)
}
