package advanced

import "github.com/pkg/errors"

// ValidatePoints rejects inputs the kernel must never see: mismatched
// coordinate arrays, fewer than three points, or fewer than three distinct
// points. Distinct means exactly unequal coordinates.
func ValidatePoints(x, y []float64) error {
	if len(x) != len(y) {
		return errors.Wrapf(ErrLengthMismatch, "len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if len(x) < 3 {
		return errors.Wrapf(ErrInsufficientPoints, "got %d points", len(x))
	}
	if !hasThreeUniquePoints(x, y) {
		return ErrDegenerateInput
	}
	return nil
}

// Linear scan keeping two anchors: point 0 and the first point that differs
// from it. Succeeds as soon as a point differs from both.
func hasThreeUniquePoints(x, y []float64) bool {
	const first = 0
	second := 0 // unset until a point differs from the first
	for i := 1; i < len(x); i++ {
		differsFromFirst := x[i] != x[first] || y[i] != y[first]
		if second == 0 {
			if differsFromFirst {
				second = i
			}
			continue
		}
		if differsFromFirst && (x[i] != x[second] || y[i] != y[second]) {
			return true
		}
	}
	return false
}
