package hull

import "github.com/osuushi/delaunay/advanced"

// The mesh is the lower hull of the points lifted onto z = x² + y², stored as
// its planar projection: a Delaunay triangulation closed off by "ghost"
// triangles that join each convex hull edge to a single point at infinity.
// The ghost triangles are the upper hull facets. With them the mesh is a
// closed surface, so every triangle has exactly three neighbors and points
// outside the current hull need no special casing.

// Vertex id of the point at infinity inside the mesh. It is reported to
// callers as npoints.
const infinity = -1

type triangle struct {
	// Counter-clockwise for real triangles. In a ghost triangle, the directed
	// edge opposite the infinite vertex has the outside of the hull on its left.
	v [3]int
	// n[k] is the triangle across the edge opposite v[k].
	n    [3]int
	dead bool
}

func (t *triangle) ghostSlot() int {
	for k, v := range t.v {
		if v == infinity {
			return k
		}
	}
	return -1
}

// Slot of the vertex that is neither a nor b.
func (t *triangle) slotOpposite(a, b int) int {
	for k, v := range t.v {
		if v != a && v != b {
			return k
		}
	}
	return -1
}

type mesh struct {
	coords []float64
	tris   []triangle
	last   int
	limit  int

	// Points skipped because they coincide with a vertex already in the mesh.
	duplicates []int
}

func newMesh(coords []float64, limit int) *mesh {
	return &mesh{coords: coords, limit: limit}
}

func (m *mesh) point(i int) (float64, float64) {
	return m.coords[2*i], m.coords[2*i+1]
}

func (m *mesh) npoints() int {
	return len(m.coords) / 2
}

func (m *mesh) same(i, j int) bool {
	return m.coords[2*i] == m.coords[2*j] && m.coords[2*i+1] == m.coords[2*j+1]
}

func (m *mesh) orient(a, b int, px, py float64) int {
	ax, ay := m.point(a)
	bx, by := m.point(b)
	return Orient(ax, ay, bx, by, px, py)
}

// Is p strictly between a and b? The three points must be collinear.
func (m *mesh) between(a, b int, px, py float64) bool {
	ax, ay := m.point(a)
	bx, by := m.point(b)
	if ax != bx {
		return (ax < px && px < bx) || (bx < px && px < ax)
	}
	return (ay < py && py < by) || (by < py && py < ay)
}

// Does the circumcircle of triangle t strictly contain p? For a ghost triangle
// the "circle" is the open half plane outside its hull edge, plus the open
// edge itself.
func (m *mesh) inCircle(t int, px, py float64) bool {
	tri := &m.tris[t]
	if g := tri.ghostSlot(); g >= 0 {
		a, b := tri.v[(g+1)%3], tri.v[(g+2)%3]
		if o := m.orient(a, b, px, py); o != 0 {
			return o > 0
		}
		return m.between(a, b, px, py)
	}
	ax, ay := m.point(tri.v[0])
	bx, by := m.point(tri.v[1])
	cx, cy := m.point(tri.v[2])
	return InCircle(ax, ay, bx, by, cx, cy, px, py) > 0
}

func (m *mesh) add(v [3]int) int {
	if m.limit > 0 && len(m.tris) >= m.limit {
		fatalf(advanced.ExitMemory, "facet limit of %d reached", m.limit)
	}
	m.tris = append(m.tris, triangle{v: v, n: [3]int{-1, -1, -1}})
	return len(m.tris) - 1
}

type halfEdge struct {
	tri, slot int
}

// Pairs up the edges of the given triangles that are not yet linked. Every
// edge must find its twin among them.
func (m *mesh) stitch(ids []int) {
	open := make(map[[2]int]halfEdge)
	for _, id := range ids {
		for k := 0; k < 3; k++ {
			if m.tris[id].n[k] >= 0 {
				continue
			}
			v := m.tris[id].v
			edge := [2]int{v[(k+1)%3], v[(k+2)%3]}
			twin := [2]int{edge[1], edge[0]}
			if h, ok := open[twin]; ok {
				m.tris[id].n[k] = h.tri
				m.tris[h.tri].n[h.slot] = id
				delete(open, twin)
				continue
			}
			open[edge] = halfEdge{id, k}
		}
	}
	if len(open) != 0 {
		fatalf(advanced.ExitPrecision, "%d edges left unpaired while stitching %d facets", len(open), len(ids))
	}
}

func (m *mesh) build() {
	n := m.npoints()
	a, b, c := m.seed()
	if m.orient(a, b, m.coords[2*c], m.coords[2*c+1]) < 0 {
		b, c = c, b
	}

	first := m.add([3]int{a, b, c})
	ids := []int{first}
	v := m.tris[first].v
	for k := 0; k < 3; k++ {
		ids = append(ids, m.add([3]int{v[(k+2)%3], v[(k+1)%3], infinity}))
	}
	m.stitch(ids)
	m.last = first

	for i := 0; i < n; i++ {
		if i == a || i == b || i == c {
			continue
		}
		m.insert(i)
	}
}

// Find three points to start from: the first point, the first point that
// differs from it, and the first point not collinear with those two.
func (m *mesh) seed() (a, b, c int) {
	n := m.npoints()
	b = -1
	for i := 1; i < n; i++ {
		if !m.same(0, i) {
			b = i
			break
		}
	}
	if b < 0 {
		fatalf(advanced.ExitSingular, "all %d points coincide", n)
	}
	for i := b + 1; i < n; i++ {
		x, y := m.point(i)
		if m.orient(0, b, x, y) != 0 {
			return 0, b, i
		}
	}
	fatalf(advanced.ExitSingular, "input is less than 2-dimensional: all %d points are collinear", n)
	return
}

// Locate a triangle whose circumcircle contains p, by walking towards p from
// the last triangle created.
func (m *mesh) locate(px, py float64) int {
	t := m.last
	maxSteps := 4*len(m.tris) + 16
	for step := 0; step < maxSteps; step++ {
		tri := &m.tris[t]
		if g := tri.ghostSlot(); g >= 0 {
			if m.inCircle(t, px, py) {
				return t
			}
			t = tri.n[g]
			continue
		}
		next := -1
		for k := 0; k < 3; k++ {
			if m.orient(tri.v[(k+1)%3], tri.v[(k+2)%3], px, py) < 0 {
				next = tri.n[k]
				break
			}
		}
		if next < 0 {
			return t
		}
		t = next
	}
	return m.scan(px, py)
}

// Brute force fallback for locate.
func (m *mesh) scan(px, py float64) int {
	for t := range m.tris {
		tri := &m.tris[t]
		if tri.dead {
			continue
		}
		if tri.ghostSlot() >= 0 {
			if m.inCircle(t, px, py) {
				return t
			}
			continue
		}
		inside := true
		for k := 0; k < 3; k++ {
			if m.orient(tri.v[(k+1)%3], tri.v[(k+2)%3], px, py) < 0 {
				inside = false
				break
			}
		}
		if inside {
			return t
		}
	}
	fatalf(advanced.ExitInternal, "point (%g, %g) is not covered by any facet", px, py)
	return -1
}

type rimEdge struct {
	u, v, outside int
}

// Insert point p with Bowyer-Watson: remove every triangle whose circumcircle
// contains p and fan the hole from p.
func (m *mesh) insert(p int) {
	px, py := m.point(p)
	start := m.locate(px, py)
	for _, v := range m.tris[start].v {
		if v != infinity && m.same(v, p) {
			m.duplicates = append(m.duplicates, p)
			return
		}
	}

	inside := map[int]bool{start: true}
	cavity := []int{start}
	var rim []rimEdge
	for i := 0; i < len(cavity); i++ {
		c := cavity[i]
		for k := 0; k < 3; k++ {
			nb := m.tris[c].n[k]
			in, seen := inside[nb]
			if !seen {
				in = m.inCircle(nb, px, py)
				inside[nb] = in
				if in {
					cavity = append(cavity, nb)
				}
			}
			if !in {
				v := m.tris[c].v
				rim = append(rim, rimEdge{v[(k+1)%3], v[(k+2)%3], nb})
			}
		}
	}

	for _, c := range cavity {
		m.tris[c].dead = true
	}

	ids := make([]int, 0, len(rim))
	for _, e := range rim {
		if e.u != infinity && e.v != infinity && m.orient(e.u, e.v, px, py) <= 0 {
			fatalf(advanced.ExitPrecision, "cavity of point %d is not star-shaped", p)
		}
		id := m.add([3]int{e.u, e.v, p})
		m.tris[id].n[2] = e.outside
		out := &m.tris[e.outside]
		out.n[out.slotOpposite(e.u, e.v)] = id
		ids = append(ids, id)
	}
	m.stitch(ids)
	m.last = ids[len(ids)-1]
}
