package tracker

import (
	"errors"

	"github.com/go-kit/log/level"

	"github.com/ukane-philemon/gradebook/internal/db"
	customerror "github.com/ukane-philemon/gradebook/internal/errors"
)

// handleError checks if err is a user facing error and returns it as is.
// Anything else is logged before returning a generic error.
func (t *Tracker) handleError(err error) error {
	if errors.Is(err, db.ErrorInvalidRequest) {
		return err
	}

	level.Error(t.logger).Log("msg", "command failed", "err", err)
	return &customerror.ErrorUnknown{}
}

// UserMessage returns the console text for an input error returned by
// ParseChoice, ParseGrade or ParseIndex.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrorInvalidOption):
		return "Invalid option."
	case errors.Is(err, ErrorInvalidNumber):
		return "Invalid number."
	case errors.Is(err, ErrorGradeRange):
		return "Enter 0-100."
	case errors.Is(err, ErrorInvalidIndex):
		return "Invalid."
	case errors.Is(err, db.ErrorOutOfRange):
		return "Index out of range."
	default:
		return err.Error()
	}
}
