package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukane-philemon/gradebook/internal/db"
)

// Action is a menu choice.
type Action int

const (
	ActionAdd Action = iota + 1
	ActionList
	ActionReport
	ActionRemove
	ActionSaveAndExit
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionList:
		return "list"
	case ActionReport:
		return "report"
	case ActionRemove:
		return "remove"
	case ActionSaveAndExit:
		return "save-and-exit"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

var (
	// ErrorInvalidOption is returned for a menu choice outside 1-5.
	ErrorInvalidOption = fmt.Errorf("%w: invalid option", db.ErrorInvalidRequest)
	// ErrorInvalidNumber is returned for a grade that is not a number.
	ErrorInvalidNumber = fmt.Errorf("%w: invalid number", db.ErrorInvalidRequest)
	// ErrorGradeRange is returned for a grade outside [db.MinGrade,
	// db.MaxGrade].
	ErrorGradeRange = fmt.Errorf("%w: grade must be between %d and %d", db.ErrorInvalidRequest, db.MinGrade, db.MaxGrade)
	// ErrorInvalidIndex is returned for a remove position that is not a
	// whole number.
	ErrorInvalidIndex = fmt.Errorf("%w: invalid position", db.ErrorInvalidRequest)
)

// Command is a parsed request for the tracker.
type Command struct {
	Action Action
	// Name and Grades are used by ActionAdd.
	Name   string
	Grades []float64
	// Position is the 1-based roster position used by ActionRemove.
	Position int
}

// ParseChoice converts a menu line to an Action.
func ParseChoice(line string) (Action, error) {
	switch strings.TrimSpace(line) {
	case "1":
		return ActionAdd, nil
	case "2":
		return ActionList, nil
	case "3":
		return ActionReport, nil
	case "4":
		return ActionRemove, nil
	case "5":
		return ActionSaveAndExit, nil
	default:
		return 0, ErrorInvalidOption
	}
}

// ParseGrade converts a grade line to a number within the allowed range.
func ParseGrade(line string) (float64, error) {
	grade, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, ErrorInvalidNumber
	}

	if !db.ValidGrade(grade) {
		return 0, ErrorGradeRange
	}

	return grade, nil
}

// ParseIndex converts a remove line to a 1-based roster position. The
// position is not checked against the roster here.
func ParseIndex(line string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, ErrorInvalidIndex
	}
	return position, nil
}
