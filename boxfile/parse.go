package boxfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/rstar/geom"
)

// Record is a single box read from a file.
type Record struct {
	Line  int // 1-based line number
	Box   geom.Box
	Label string
}

// Parse reads records from r and calls fn for each of them, in file order.
// Parsing stops at the first malformed line or when fn returns an error.
func Parse(r io.Reader, fn func(Record) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		rec, ok, err := parseLine(scanner.Text(), line)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseLine parses a single line. ok is false for blank and comment lines.
func parseLine(text string, line int) (rec Record, ok bool, err error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return rec, false, nil
	}
	if len(fields) < 4 {
		return rec, false, fmt.Errorf("%w: line %d: expected 4 coordinates, have %d",
			ErrMalformedLine, line, len(fields))
	}
	var c [4]float64
	for i := range c {
		if c[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return rec, false, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, line, err)
		}
	}
	rec = Record{
		Line:  line,
		Box:   geom.Box{MinX: c[0], MinY: c[1], MaxX: c[2], MaxY: c[3]},
		Label: strings.Join(fields[4:], " "),
	}
	if err := rec.Box.Validate(); err != nil {
		return rec, false, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, line, err)
	}
	if rec.Label == "" {
		rec.Label = fmt.Sprintf("#%d", line)
	}
	return rec, true, nil
}
