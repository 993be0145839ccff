// Package hull is a Delaunay kernel for the advanced package. It computes the
// lower convex hull of 2D points lifted onto the paraboloid z = x² + y², with
// an extra point at infinity that closes the hull. Facets touching that point
// form the upper hull; the rest project to the Delaunay triangles.
//
// A Hull holds all of its state, so separate Hull values may run
// concurrently. A single Hull is used for exactly one Run.
package hull

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/osuushi/delaunay/advanced"
)

// Version identifies the kernel in diagnostics.
const Version = "hull 1.2 (lifted Delaunay, point at infinity)"

// Rough per-record sizes used for memory accounting.
const (
	coordSize = 8
	facetSize = 64
)

// Hull is a single-use Delaunay kernel.
type Hull struct {
	// FacetLimit caps the number of facets ever created, dead ones included.
	// Exceeding it fails the run with ExitMemory. Zero means no limit.
	FacetLimit int

	opts    options
	ran     bool
	npoints int
	mesh    *mesh
	facets  []advanced.Facet

	// Outstanding long memory in bytes, keyed by buffer.
	long map[string]int
}

var _ advanced.Kernel = (*Hull)(nil)

// New returns a Hull ready for one Run.
func New() *Hull {
	return &Hull{}
}

func (h *Hull) Version() string {
	return Version
}

func (h *Hull) Reentrant() bool {
	return true
}

// Run builds the hull of npoints points with dim coordinates each. Errors are
// described on sink and reported through the exit code.
func (h *Hull) Run(dim, npoints int, coords []float64, mode string, sink io.Writer) (code advanced.ExitCode) {
	if sink == nil {
		sink = io.Discard
	}
	defer func() {
		if e := recoverExit(recover()); e != nil {
			fmt.Fprintf(sink, "hull %s: %v\n", e.code, e)
			code = e.code
		}
	}()

	if h.ran {
		fatalf(advanced.ExitInternal, "hull already ran; start a new session")
	}
	h.ran = true
	h.opts = parseMode(mode)

	if dim != 2 {
		fatalf(advanced.ExitInput, "Delaunay triangulation needs 2-d points, got %d-d", dim)
	}
	if npoints < 3 {
		fatalf(advanced.ExitInput, "not enough points (%d) to construct the initial simplex (need 3)", npoints)
	}
	if len(coords) != dim*npoints {
		fatalf(advanced.ExitInput, "%d coordinates given for %d points", len(coords), npoints)
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			fatalf(advanced.ExitInput, "point %d has a non-finite coordinate %v", i/dim, c)
		}
	}

	points := make([]float64, len(coords))
	copy(points, coords)
	h.alloc("points", len(points)*coordSize)
	h.npoints = npoints

	m := newMesh(points, h.FacetLimit)
	m.build()
	h.mesh = m

	if n := len(m.duplicates); n > 0 && h.opts.keepCoplanar {
		h.alloc("coplanar", n*coordSize)
		fmt.Fprintf(sink, "hull: %d duplicate points kept as coplanar points and left out of the triangulation\n", n)
	}
	return advanced.ExitNone
}

// Facets returns the live facets in creation order. The point at infinity is
// reported as vertex npoints. Vertices are listed by decreasing point id, with
// TopOrient telling whether that order is counter-clockwise.
func (h *Hull) Facets() []advanced.Facet {
	if h.mesh == nil || h.mesh.coords == nil {
		return nil
	}
	if h.facets != nil {
		return h.facets
	}
	facets := make([]advanced.Facet, 0, len(h.mesh.tris))
	for id := range h.mesh.tris {
		tri := &h.mesh.tris[id]
		if tri.dead {
			continue
		}
		facets = append(facets, h.export(id, tri))
	}
	h.facets = facets
	h.alloc("facets", len(facets)*facetSize)
	return facets
}

func (h *Hull) export(id int, tri *triangle) advanced.Facet {
	var ids [3]int
	for k, v := range tri.v {
		if v == infinity {
			v = h.npoints
		}
		ids[k] = v
	}
	perm := []int{0, 1, 2}
	sort.Slice(perm, func(i, j int) bool { return ids[perm[i]] > ids[perm[j]] })

	f := advanced.Facet{
		ID:        id,
		Upper:     tri.ghostSlot() >= 0,
		TopOrient: isEven(perm),
	}
	for k, p := range perm {
		f.Vertices[k] = ids[p]
		f.Neighbors[k] = tri.n[p]
	}
	return f
}

func isEven(perm []int) bool {
	inversions := 0
	for i := range perm {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 0
}

func (h *Hull) MaxFacetID() int {
	if h.mesh == nil {
		return -1
	}
	return len(h.mesh.tris) - 1
}

// duplicatePoints lists the input points left out because they coincide with
// an earlier point.
func (h *Hull) duplicatePoints() []int {
	if h.mesh == nil {
		return nil
	}
	return append([]int(nil), h.mesh.duplicates...)
}

func (h *Hull) Free() {
	h.facets = nil
	if h.mesh != nil {
		h.mesh.coords = nil
		h.mesh.duplicates = nil
	}
	for _, name := range []string{"points", "coplanar", "facets"} {
		delete(h.long, name)
	}
}

func (h *Hull) FreeShort() (curlong, totlong int) {
	h.mesh = nil
	for _, bytes := range h.long {
		curlong++
		totlong += bytes
	}
	return curlong, totlong
}

func (h *Hull) alloc(name string, bytes int) {
	if h.long == nil {
		h.long = make(map[string]int)
	}
	h.long[name] = bytes
}
