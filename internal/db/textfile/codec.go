package textfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ukane-philemon/gradebook/internal/db"
	"github.com/ukane-philemon/gradebook/internal/student"
)

const (
	fieldSeparator = ','
	gradeSeparator = ";"
	escapeChar     = '\\'
)

// Encode writes one line per student in the form
// escaped_name,grade1;grade2;... Students without grades are skipped.
func Encode(w io.Writer, students []*student.Student) error {
	bw := bufio.NewWriter(w)
	for _, s := range students {
		if len(s.Grades) == 0 {
			continue
		}

		if _, err := bw.WriteString(EncodeLine(s)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeLine returns the persisted form of s without a trailing newline.
func EncodeLine(s *student.Student) string {
	grades := make([]string, 0, len(s.Grades))
	for _, grade := range s.Grades {
		grades = append(grades, FormatGrade(grade))
	}
	return escapeName(s.Name) + string(fieldSeparator) + strings.Join(grades, gradeSeparator)
}

// FormatGrade returns the shortest decimal representation of grade.
func FormatGrade(grade float64) string {
	return strconv.FormatFloat(grade, 'f', -1, 64)
}

// Decode reads students from r. Lines without a separator and lines without
// a single valid grade are skipped and counted in skipped. Line length is not
// limited.
func Decode(r io.Reader) (students []*student.Student, skipped int, err error) {
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return students, skipped, readErr
		}

		if line != "" || readErr == nil {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if s, ok := DecodeLine(line); ok {
				students = append(students, s)
			} else {
				skipped++
			}
		}

		if readErr == io.EOF {
			return students, skipped, nil
		}
	}
}

// DecodeLine parses a single persisted line. Unparseable grade tokens are
// discarded. ok is false if the line has no separator or no valid grade.
func DecodeLine(line string) (s *student.Student, ok bool) {
	sep := separatorIndex(line)
	if sep < 0 {
		return nil, false
	}

	var grades []float64
	for _, token := range strings.Split(line[sep+1:], gradeSeparator) {
		grade, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil || !db.ValidGrade(grade) {
			continue
		}
		grades = append(grades, grade)
	}

	if len(grades) == 0 {
		return nil, false
	}

	return &student.Student{
		Name:   unescapeName(line[:sep]),
		Grades: grades,
	}, true
}

// separatorIndex returns the index of the first comma that is not escaped, or
// -1.
func separatorIndex(line string) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case escapeChar:
			i++
		case fieldSeparator:
			return i
		}
	}
	return -1
}

func escapeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == escapeChar || name[i] == fieldSeparator {
			b.WriteByte(escapeChar)
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// unescapeName reverses escapeName. An escape before any character other
// than a comma or a backslash is kept as written.
func unescapeName(escaped string) string {
	var b strings.Builder
	b.Grow(len(escaped))
	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		if c == escapeChar && i+1 < len(escaped) {
			next := escaped[i+1]
			if next == escapeChar || next == fieldSeparator {
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
