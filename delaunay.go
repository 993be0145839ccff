// A planar Delaunay triangulation package for Go.
//
// This package takes a set of 2D points, given as parallel x and y slices, and
// returns their Delaunay triangulation as two compact tables: the point indices
// of each triangle in counter-clockwise order, and for each triangle the
// triangle across each of its edges, or -1 on the convex hull boundary.
//
// Degenerate input (duplicate points, collinear runs on the hull, cocircular
// points) is handled with exact predicates. Points that coincide with an
// earlier point are left out of the triangulation.
package delaunay

import (
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/internal/hull"
)

type (
	Facet             = advanced.Facet
	Kernel            = advanced.Kernel
	ExitCode          = advanced.ExitCode
	KernelError       = advanced.KernelError
	MemoryLeakWarning = advanced.MemoryLeakWarning
)

var (
	ErrLengthMismatch      = advanced.ErrLengthMismatch
	ErrInsufficientPoints  = advanced.ErrInsufficientPoints
	ErrDegenerateInput     = advanced.ErrDegenerateInput
	ErrResourceAcquisition = advanced.ErrResourceAcquisition
	ErrFacetID             = advanced.ErrFacetID
)

// Triangulate computes the Delaunay triangulation of the points (x[i], y[i]).
//
// Triangles[i] lists three point indices counter-clockwise. Neighbors[i][k] is
// the index of the triangle sharing the edge opposite Triangles[i][k], or -1 if
// that edge is on the boundary. On error no partial result is returned.
func Triangulate(x, y []float64, opts ...Option) (*Triangulation, error) {
	cfg := advanced.Config{NewKernel: newDefaultKernel}
	for _, opt := range opts {
		opt(&cfg)
	}
	result, err := advanced.Triangulate(x, y, cfg)
	if err != nil {
		return nil, err
	}
	return &Triangulation{Triangles: result.Triangles, Neighbors: result.Neighbors}, nil
}

// Delaunay is Triangulate with only the diagnostics switch. When
// suppressDiagnostics is false, kernel diagnostics go to os.Stderr.
func Delaunay(x, y []float64, suppressDiagnostics bool) (triangles, neighbors [][3]int, err error) {
	tri, err := Triangulate(x, y, WithVerbose(!suppressDiagnostics))
	if err != nil {
		return nil, nil, err
	}
	return tri.Triangles, tri.Neighbors, nil
}

// KernelVersion identifies the bundled Delaunay kernel.
func KernelVersion() string {
	return hull.Version
}

func newDefaultKernel() advanced.Kernel {
	return hull.New()
}
