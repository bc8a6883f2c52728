// Package inputformat reads the ASCII segment-fixture format the simulator's CLI driver
// consumes: a line count N, followed by N lines of nine whitespace-separated fields.
package inputformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/point"
)

// Record is one parsed input line: two endpoints, a velocity, and a presentational color.
type Record struct {
	P1, P2, Velocity point.Point
	Color            [3]uint8
}

// Parse reads the fixture format from r: a first line giving the segment count N, then N
// lines each with "p1.x p1.y p2.x p2.y v.x v.y r g b". Returns linesim.ErrInvalidInput,
// wrapped with the offending line number, for a malformed count or record.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("inputformat: missing segment count: %w", linesim.ErrInvalidInput)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("inputformat: invalid segment count %q: %w", scanner.Text(), linesim.ErrInvalidInput)
	}

	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("inputformat: expected %d records, found %d: %w", n, i, linesim.ErrInvalidInput)
		}
		rec, err := parseRecord(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("inputformat: line %d: %w", i+2, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("inputformat: scanning input: %w", err)
	}
	return records, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return Record{}, fmt.Errorf("expected 9 fields, got %d: %w", len(fields), linesim.ErrInvalidInput)
	}

	var nums [6]float64
	for i := 0; i < 6; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Record{}, fmt.Errorf("field %d %q is not a number: %w", i, fields[i], linesim.ErrInvalidInput)
		}
		nums[i] = v
	}

	var color [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(fields[6+i], 10, 8)
		if err != nil {
			return Record{}, fmt.Errorf("color field %d %q is not a byte: %w", i, fields[6+i], linesim.ErrInvalidInput)
		}
		color[i] = uint8(v)
	}

	return Record{
		P1:       point.New(nums[0], nums[1]),
		P2:       point.New(nums[2], nums[3]),
		Velocity: point.New(nums[4], nums[5]),
		Color:    color,
	}, nil
}
