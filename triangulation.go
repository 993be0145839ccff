package delaunay

import (
	"github.com/osuushi/delaunay/internal/hull"
	"github.com/pkg/errors"
)

// ErrInvalidTriangulation is returned by Check, wrapped with the first problem
// found.
var ErrInvalidTriangulation = errors.New("invalid triangulation")

// Triangulation is a Delaunay triangulation of a point set.
type Triangulation struct {
	Triangles [][3]int
	Neighbors [][3]int
}

// Edges lists every edge once as a pair of point indices, in triangle order.
func (t *Triangulation) Edges() [][2]int {
	edges := make([][2]int, 0, len(t.Triangles)*3/2+2)
	for i, tri := range t.Triangles {
		for k := 0; k < 3; k++ {
			// Interior edges are emitted by the lower-numbered triangle
			if nb := t.Neighbors[i][k]; nb != -1 && nb < i {
				continue
			}
			edges = append(edges, [2]int{tri[(k+1)%3], tri[(k+2)%3]})
		}
	}
	return edges
}

type edgeOwner struct {
	tri, slot int
}

// Check verifies the triangulation against the points it was built from: the
// tables have matching lengths, indices are in range, every triangle is
// counter-clockwise with positive area, and neighbor links agree with shared
// edges in both directions.
func (t *Triangulation) Check(x, y []float64) error {
	if len(x) != len(y) {
		return errors.Wrap(ErrInvalidTriangulation, "x and y differ in length")
	}
	if len(t.Triangles) != len(t.Neighbors) {
		return errors.Wrapf(ErrInvalidTriangulation, "%d triangles but %d neighbor rows", len(t.Triangles), len(t.Neighbors))
	}
	npoints, ntri := len(x), len(t.Triangles)

	directed := make(map[[2]int]edgeOwner, ntri*3)
	for i, tri := range t.Triangles {
		for k, v := range tri {
			if v < 0 || v >= npoints {
				return errors.Wrapf(ErrInvalidTriangulation, "triangle %d: point %d out of range", i, v)
			}
			if nb := t.Neighbors[i][k]; nb < -1 || nb >= ntri {
				return errors.Wrapf(ErrInvalidTriangulation, "triangle %d: neighbor %d out of range", i, nb)
			}
		}
		a, b, c := tri[0], tri[1], tri[2]
		if a == b || b == c || a == c {
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %d repeats a point: %v", i, tri)
		}
		if hull.Orient(x[a], y[a], x[b], y[b], x[c], y[c]) <= 0 {
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %d is not counter-clockwise: %v", i, tri)
		}
		for k := 0; k < 3; k++ {
			edge := [2]int{tri[(k+1)%3], tri[(k+2)%3]}
			if other, ok := directed[edge]; ok {
				return errors.Wrapf(ErrInvalidTriangulation, "triangles %d and %d overlap on edge %v", other.tri, i, edge)
			}
			directed[edge] = edgeOwner{i, k}
		}
	}

	for edge, owner := range directed {
		twin, shared := directed[[2]int{edge[1], edge[0]}]
		nb := t.Neighbors[owner.tri][owner.slot]
		switch {
		case nb == -1 && shared:
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %d: edge %v is shared with triangle %d but marked as boundary", owner.tri, edge, twin.tri)
		case nb == -1:
		case !shared || twin.tri != nb:
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %d: neighbor %d does not share edge %v", owner.tri, nb, edge)
		case t.Neighbors[nb][twin.slot] != owner.tri:
			return errors.Wrapf(ErrInvalidTriangulation, "triangles %d and %d are not mutual neighbors", owner.tri, nb)
		}
	}
	return nil
}
