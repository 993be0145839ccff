package advanced

import "gonum.org/v1/gonum/floats"

// Condition recenters the points on their mean and flattens them into the
// [x0, y0, x1, y1, ...] layout the kernel takes. Keeping coordinates small
// keeps the lifted coordinate x² + y² small too. Only point indices leave the
// pipeline, so the shift is never visible to callers.
func Condition(x, y []float64) []float64 {
	n := float64(len(x))
	xMean := floats.Sum(x) / n
	yMean := floats.Sum(y) / n

	points := make([]float64, 2*len(x))
	for i := range x {
		points[2*i] = x[i] - xMean
		points[2*i+1] = y[i] - yMean
	}
	return points
}
