package agglo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadPoints reads a point file and returns a collection of singleton
// clusters, one per point, in file order.
//
// The format is a header line "count=<n>" with n >= 1, followed by exactly
// n lines of "<id> <x> <y>" with an integer id and both coordinates in
// [0,1000]. A malformed header or record, an out-of-range coordinate, or a
// count/line mismatch is a load error; the clustering core never sees a
// malformed collection.
func LoadPoints(path string) (*Collection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open point file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read point file: %w", err)
		}
		return nil, fmt.Errorf("%w: empty file", ErrBadHeader)
	}

	count, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, count)
	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		if len(points) == count {
			return nil, fmt.Errorf("%w: more than %d point lines", ErrCountMismatch, count)
		}

		p, err := parseRecord(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read point file: %w", err)
	}

	if len(points) != count {
		return nil, fmt.Errorf("%w: header declares %d, file has %d", ErrCountMismatch, count, len(points))
	}

	return NewCollection(points), nil
}

// parseHeader parses the "count=<n>" header line.
func parseHeader(line string) (int, error) {
	value, ok := strings.CutPrefix(strings.TrimSpace(line), "count=")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: count %d", ErrBadHeader, count)
	}
	return count, nil
}

// parseRecord parses a single "<id> <x> <y>" point line and range-checks
// the coordinates.
func parseRecord(line string) (Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrBadRecord, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad id %q", ErrBadRecord, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad x %q", ErrBadRecord, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad y %q", ErrBadRecord, fields[2])
	}

	if x < CoordinateMin || x > CoordinateMax || y < CoordinateMin || y > CoordinateMax {
		return Point{}, fmt.Errorf("%w: coordinate out of range [%g,%g]", ErrBadRecord, CoordinateMin, CoordinateMax)
	}

	return Point{ID: id, X: x, Y: y}, nil
}
