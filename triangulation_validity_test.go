package delaunay

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/internal/hull"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Check passes: ranges, counter-clockwise triangles, mutual neighbors.
// 2. Every point is used, except points that repeat an earlier point.
// 3. The counts agree with Euler's formula for the number of boundary edges.
// 4. The triangles cover the convex hull exactly.
// 5. No point lies strictly inside any triangle's circumcircle.
func AssertValidTriangulation(t *testing.T, x, y []float64, tri *Triangulation) {
	t.Helper()
	require.NoError(t, tri.Check(x, y))

	type point struct{ x, y float64 }
	first := make(map[point]int)
	unique := 0
	for i := range x {
		p := point{x[i], y[i]}
		if _, ok := first[p]; !ok {
			first[p] = i
			unique++
		}
	}
	used := make(map[int]bool)
	for _, tr := range tri.Triangles {
		for _, v := range tr {
			used[v] = true
		}
	}
	for i := range x {
		isFirst := first[point{x[i], y[i]}] == i
		require.Equal(t, isFirst, used[i], "point %d (%v, %v) used=%v, but first occurrence=%v", i, x[i], y[i], used[i], isFirst)
	}

	boundary := 0
	for _, n := range tri.Neighbors {
		for _, nb := range n {
			if nb == -1 {
				boundary++
			}
		}
	}
	ntri := len(tri.Triangles)
	require.Equal(t, 2*unique-boundary-2, ntri, "triangle count for %d points with %d boundary edges", unique, boundary)
	require.Len(t, tri.Edges(), unique+ntri-1, "edge count")

	var area float64
	for _, tr := range tri.Triangles {
		area += triangleArea(x, y, tr)
	}
	hullArea := convexHullArea(x, y)
	require.InDelta(t, hullArea, area, 1e-9*math.Max(1, hullArea), "triangles must cover the convex hull")

	// The kernel sees centered coordinates, so test emptiness on those
	coords := advanced.Condition(x, y)
	for i, tr := range tri.Triangles {
		a, b, c := tr[0], tr[1], tr[2]
		for p := range x {
			if p == a || p == b || p == c {
				continue
			}
			inside := hull.InCircle(
				coords[2*a], coords[2*a+1],
				coords[2*b], coords[2*b+1],
				coords[2*c], coords[2*c+1],
				coords[2*p], coords[2*p+1],
			)
			require.LessOrEqual(t, inside, 0, "point %d is inside the circumcircle of triangle %d %v", p, i, tr)
		}
	}
}

func triangleArea(x, y []float64, t [3]int) float64 {
	a, b, c := t[0], t[1], t[2]
	return ((x[b]-x[a])*(y[c]-y[a]) - (y[b]-y[a])*(x[c]-x[a])) / 2
}

// Monotone chain hull, dropping collinear points.
func convexHullArea(x, y []float64) float64 {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if x[a] != x[b] {
			return x[a] < x[b]
		}
		return y[a] < y[b]
	})

	chain := make([]int, 0, 2*len(idx))
	build := func(order []int, floor int) {
		for _, p := range order {
			for len(chain) >= floor+2 {
				a, b := chain[len(chain)-2], chain[len(chain)-1]
				if hull.Orient(x[a], y[a], x[b], y[b], x[p], y[p]) > 0 {
					break
				}
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
	}
	build(idx, 0)
	reversed := make([]int, len(idx))
	for i, p := range idx {
		reversed[len(idx)-1-i] = p
	}
	build(reversed, len(chain)-1)

	var area float64
	for i := 0; i+1 < len(chain); i++ {
		a, b := chain[i], chain[i+1]
		area += x[a]*y[b] - x[b]*y[a]
	}
	return area / 2
}
