package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/internal/svgpoints"
	"github.com/pkg/errors"
)

func readPoints(in io.Reader, format string) (x, y []float64, err error) {
	if format == "svg" {
		return svgpoints.Parse(in)
	}
	return readTextPoints(in)
}

// Text input is one "x y" point per line. Blank lines and everything after a
// '#' are ignored.
func readTextPoints(in io.Reader) (x, y []float64, err error) {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if len(parts) != 2 {
			return nil, nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNo, scanner.Text())
		}
		px, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNo)
		}
		py, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNo)
		}
		x = append(x, px)
		y = append(y, py)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read points")
	}
	return x, y, nil
}
