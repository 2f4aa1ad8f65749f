package tracker

import (
	"errors"
	"fmt"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ukane-philemon/gradebook/internal/student"
)

// Result is the outcome of a single Command. Message is always user facing.
type Result struct {
	Action  Action
	Message string
	// Err is non-nil if the command was rejected or failed. The roster is
	// unchanged when a command is rejected.
	Err     error
	Entries []*student.Entry
	Report  *student.Report
	// Exit is true once the tracker should stop accepting commands.
	Exit bool
}

type Tracker struct {
	roster student.Repository
	store  RosterStore
	logger gokitlog.Logger
}

// NewTracker creates and returns a new instance of *Tracker with an empty
// roster. Call Load to populate it from store. A nil logger discards logs.
func NewTracker(store RosterStore, logger gokitlog.Logger) (*Tracker, error) {
	if store == nil {
		return nil, errors.New("roster store is required")
	}

	if logger == nil {
		logger = gokitlog.NewNopLogger()
	}

	return &Tracker{
		roster: student.NewRoster(),
		store:  store,
		logger: logger,
	}, nil
}

// Load replaces the in-memory roster with the persisted one. On failure the
// roster is left empty and the error returned.
func (t *Tracker) Load() error {
	roster, err := t.store.Load()
	if err != nil {
		t.roster = student.NewRoster()
		return fmt.Errorf("store.Load error: %w", err)
	}

	t.roster = roster
	return nil
}

// Roster returns the in-memory roster.
func (t *Tracker) Roster() student.Repository {
	return t.roster
}

// Execute runs cmd against the roster and returns its outcome.
func (t *Tracker) Execute(cmd *Command) *Result {
	level.Debug(t.logger).Log("msg", "executing command", "action", cmd.Action)

	res := &Result{Action: cmd.Action}
	switch cmd.Action {
	case ActionAdd:
		if err := t.roster.Add(cmd.Name, cmd.Grades); err != nil {
			res.Err = t.handleError(err)
			res.Message = "No grades added, student not saved."
			return res
		}
		res.Message = "Student added."

	case ActionList:
		res.Entries = t.roster.List()
		if len(res.Entries) == 0 {
			res.Message = "No students."
		}

	case ActionReport:
		report, err := t.roster.Report()
		if err != nil {
			res.Err = t.handleError(err)
			res.Message = "No data."
			return res
		}
		res.Report = report

	case ActionRemove:
		removed, err := t.roster.Remove(cmd.Position)
		if err != nil {
			res.Err = t.handleError(err)
			res.Message = "Index out of range."
			return res
		}
		res.Message = "Removed: " + removed.Name

	case ActionSaveAndExit:
		res.Exit = true
		if err := t.store.Save(t.roster.Students()); err != nil {
			res.Err = t.handleError(fmt.Errorf("store.Save error: %w", err))
			res.Message = "Save failed. Exiting."
			return res
		}
		res.Message = "Exiting. Data saved to " + t.store.Path()

	default:
		res.Err = ErrorInvalidOption
		res.Message = UserMessage(ErrorInvalidOption)
	}

	return res
}
