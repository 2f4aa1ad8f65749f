package db

import (
	"errors"
	"fmt"
)

const (
	// MinGrade is the lowest grade a student can be given.
	MinGrade = 0
	// MaxGrade is the highest grade a student can be given.
	MaxGrade = 100
)

// ErrorInvalidRequest is a user facing error returned by repositories.
var ErrorInvalidRequest = errors.New("invalid request")

// ErrorOutOfRange is returned when a student position does not exist in the
// roster. It wraps ErrorInvalidRequest.
var ErrorOutOfRange = fmt.Errorf("%w: index out of range", ErrorInvalidRequest)

// ValidGrade reports whether grade is a finite number within [MinGrade,
// MaxGrade].
func ValidGrade(grade float64) bool {
	return grade >= MinGrade && grade <= MaxGrade
}
