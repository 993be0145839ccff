package advanced

import "io"

// DelaunayMode is the option string every kernel invocation is made with:
// Delaunay triangulation, triangulated (simplicial) output, scaled last
// coordinate, coplanar points kept, and a point at infinity.
const DelaunayMode = "qhull d Qt Qbb Qc Qz"

// ExitCode is the status a kernel run finishes with.
type ExitCode int

const (
	ExitNone ExitCode = iota
	ExitInput
	ExitSingular
	ExitPrecision
	ExitMemory
	ExitInternal
)

var exitMessages = [...]string{
	ExitNone:      "",
	ExitInput:     "input inconsistency",
	ExitSingular:  "singular input data",
	ExitPrecision: "precision error",
	ExitMemory:    "insufficient memory",
	ExitInternal:  "internal error",
}

func (c ExitCode) String() string {
	if c < 0 || int(c) >= len(exitMessages) {
		return "unknown error"
	}
	return exitMessages[c]
}

// Facet is one face of the lifted convex hull, as reported by a kernel. Facets
// live in an arena addressed by ID; neighbor links are IDs, -1 when missing.
// Neighbors[k] is the facet across the edge that excludes Vertices[k].
type Facet struct {
	ID        int
	Upper     bool
	Vertices  [3]int
	Neighbors [3]int
	// TopOrient is set when Vertices wind counter-clockwise in the plane.
	TopOrient bool
}

// Kernel is a single-use Delaunay session. Run is called once; Facets and
// MaxFacetID are only valid between a successful Run and Free.
type Kernel interface {
	Run(dim, npoints int, coords []float64, mode string, sink io.Writer) ExitCode
	Facets() []Facet
	MaxFacetID() int
	// Free releases all long-lived working memory.
	Free()
	// FreeShort releases the remaining short-lived memory and reports what is
	// still outstanding.
	FreeShort() (curlong, totlong int)
	Version() string
}

// Reentrant is implemented by kernels that keep no process-wide state. Kernels
// that don't implement it, or return false, are serialised behind a global
// lock.
type Reentrant interface {
	Reentrant() bool
}
