// Package console runs the interactive menu on top of a tracker.Tracker. It
// only reads lines, builds commands and prints results.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukane-philemon/gradebook/internal/student"
	"github.com/ukane-philemon/gradebook/tracker"
)

const menu = `
--- Student Grade Tracker ---
1. Add student
2. List students
3. Show summary report
4. Remove student
5. Save and Exit
`

type Shell struct {
	tracker *tracker.Tracker
	scanner *bufio.Scanner
	out     io.Writer
}

// NewShell creates a new instance of *Shell reading commands from in and
// writing to out.
func NewShell(t *tracker.Tracker, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		tracker: t,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the menu until the user saves and exits. End of input saves and
// exits as well.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		line, ok := s.prompt("Choose: ")
		if !ok {
			s.render(s.tracker.Execute(&tracker.Command{Action: tracker.ActionSaveAndExit}))
			return s.scanner.Err()
		}

		action, err := tracker.ParseChoice(line)
		if err != nil {
			fmt.Fprintln(s.out, tracker.UserMessage(err))
			continue
		}

		var cmd *tracker.Command
		switch action {
		case tracker.ActionAdd:
			cmd = s.readStudent()
		case tracker.ActionRemove:
			cmd = s.readRemoval()
		default:
			cmd = &tracker.Command{Action: action}
		}
		if cmd == nil {
			continue
		}

		res := s.tracker.Execute(cmd)
		s.render(res)
		if res.Exit {
			return nil
		}
	}
}

// prompt prints label and reads the next trimmed line. ok is false at end of
// input.
func (s *Shell) prompt(label string) (line string, ok bool) {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// readStudent collects a name and grades until a blank line. Invalid grades
// are reported and asked for again.
func (s *Shell) readStudent() *tracker.Command {
	name, _ := s.prompt("Student name: ")

	var grades []float64
	for {
		line, ok := s.prompt("Enter grade (or blank to finish): ")
		if !ok || line == "" {
			break
		}

		grade, err := tracker.ParseGrade(line)
		if err != nil {
			fmt.Fprintln(s.out, tracker.UserMessage(err))
			continue
		}
		grades = append(grades, grade)
	}

	return &tracker.Command{
		Action: tracker.ActionAdd,
		Name:   name,
		Grades: grades,
	}
}

// readRemoval lists the roster and asks for a position. Returns nil if there
// is nothing to remove, the user cancelled or the position is not a number.
func (s *Shell) readRemoval() *tracker.Command {
	listing := s.tracker.Execute(&tracker.Command{Action: tracker.ActionList})
	s.render(listing)
	if len(listing.Entries) == 0 {
		return nil
	}

	line, ok := s.prompt("Enter number to remove (or blank): ")
	if !ok || line == "" {
		return nil
	}

	position, err := tracker.ParseIndex(line)
	if err != nil {
		fmt.Fprintln(s.out, tracker.UserMessage(err))
		return nil
	}

	return &tracker.Command{Action: tracker.ActionRemove, Position: position}
}

func (s *Shell) render(res *tracker.Result) {
	for _, entry := range res.Entries {
		fmt.Fprintf(s.out, "%d. %s - Grades: %s\n", entry.Position, entry.Name, formatGrades(entry.Grades))
	}

	if res.Report != nil {
		s.renderReport(res.Report)
	}

	if res.Message != "" {
		fmt.Fprintln(s.out, res.Message)
	}
}

func (s *Shell) renderReport(report *student.Report) {
	fmt.Fprintf(s.out, "\n--- Summary Report ---\n")
	fmt.Fprintf(s.out, "Total students: %d\n", report.TotalStudents)
	fmt.Fprintf(s.out, "Class average: %.2f\n", report.ClassAverage)
	fmt.Fprintf(s.out, "Highest avg: %s (%.2f)\n", report.Highest.Name, report.Highest.Average)
	fmt.Fprintf(s.out, "Lowest avg: %s (%.2f)\n", report.Lowest.Name, report.Lowest.Average)
	fmt.Fprintf(s.out, "\nDetailed:\n")
	for _, sr := range report.Students {
		fmt.Fprintf(s.out, "%s -> Avg: %.2f  Max: %.2f  Min: %.2f\n", sr.Name, sr.Average, sr.Max, sr.Min)
	}
}

func formatGrades(grades []float64) string {
	formatted := make([]string, 0, len(grades))
	for _, grade := range grades {
		formatted = append(formatted, strconv.FormatFloat(grade, 'f', -1, 64))
	}
	return "[" + strings.Join(formatted, ", ") + "]"
}
