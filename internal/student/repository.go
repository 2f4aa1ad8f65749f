package student

type Repository interface {
	// Add appends a new student to the roster. Returns db.ErrorInvalidRequest
	// if grades is empty.
	Add(name string, grades []float64) error
	// Remove deletes the student at the 1-based position and returns it.
	// Returns db.ErrorOutOfRange if position does not exist.
	Remove(position int) (*Student, error)
	// List returns every student with their display position.
	List() []*Entry
	// Report computes per-student and class-wide statistics. Returns
	// db.ErrorInvalidRequest if the roster is empty.
	Report() (*Report, error)
	// Students returns the students in insertion order.
	Students() []*Student
	// Len returns the number of students in the roster.
	Len() int
}
