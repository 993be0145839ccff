package delaunay

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verboseHint = "; use verbose mode to see original qhull error."

func sortedTriple(t [3]int) [3]int {
	s := t[:]
	sort.Ints(s)
	return [3]int{s[0], s[1], s[2]}
}

func TestTriangulateSingleTriangle(t *testing.T) {
	x := []float64{0, 0, 1}
	y := []float64{0, 1, 0}
	tri, err := Triangulate(x, y)
	require.NoError(t, err)
	require.Len(t, tri.Triangles, 1)
	assert.Equal(t, [3]int{0, 1, 2}, sortedTriple(tri.Triangles[0]))
	assert.Equal(t, [3]int{-1, -1, -1}, tri.Neighbors[0])
	AssertValidTriangulation(t, x, y, tri)
}

func TestTriangulateSquare(t *testing.T) {
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	tri, err := Triangulate(x, y)
	require.NoError(t, err)
	require.Len(t, tri.Triangles, 2)

	// One mutual interior edge, and the four sides on the boundary
	var boundary, interior int
	for i, n := range tri.Neighbors {
		for _, nb := range n {
			switch nb {
			case -1:
				boundary++
			case 1 - i:
				interior++
			default:
				t.Fatalf("unexpected neighbor %d of triangle %d", nb, i)
			}
		}
	}
	assert.Equal(t, 4, boundary)
	assert.Equal(t, 2, interior)
	AssertValidTriangulation(t, x, y, tri)
}

func TestTriangulateFixtures(t *testing.T) {
	cases := []struct {
		name      string
		triangles int
	}{
		{"grid", 8},
		{"cocircular", 10},
		{"cocircular_center", 12},
		{"collinear_hull", 12},
		{"duplicates", 5},
		{"scatter", -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := LoadFixture(c.name)
			tri, err := Triangulate(x, y)
			require.NoError(t, err)
			if c.triangles >= 0 {
				assert.Len(t, tri.Triangles, c.triangles)
			}
			AssertValidTriangulation(t, x, y, tri)
		})
	}
}

func TestTriangulateShapes(t *testing.T) {
	t.Run("3x3 grid", func(t *testing.T) {
		x, y := Grid(3, 3)
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		assert.Len(t, tri.Triangles, 8)
		AssertValidTriangulation(t, x, y, tri)
	})

	t.Run("10x7 grid", func(t *testing.T) {
		x, y := Grid(10, 7)
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		assert.Len(t, tri.Triangles, 2*9*6)
		AssertValidTriangulation(t, x, y, tri)
	})

	t.Run("regular polygon", func(t *testing.T) {
		x, y := RegularPolygon(17, 3)
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		assert.Len(t, tri.Triangles, 15)
		AssertValidTriangulation(t, x, y, tri)
	})

	t.Run("collinear start", func(t *testing.T) {
		// The first points are collinear, so the kernel must skip ahead to seed
		x := []float64{0, 1, 2, 3, 4, 2}
		y := []float64{0, 0, 0, 0, 0, 1}
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		assert.Len(t, tri.Triangles, 4)
		AssertValidTriangulation(t, x, y, tri)
	})

	t.Run("points beyond a hull corner in line with an edge", func(t *testing.T) {
		x := []float64{0, 1, 0, 2, 3, 0}
		y := []float64{0, 0, 1, 0, 0, 4}
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		AssertValidTriangulation(t, x, y, tri)
	})

	t.Run("large offset", func(t *testing.T) {
		x, y := Grid(4, 4)
		for i := range x {
			x[i] += 1e6
			y[i] -= 5e5
		}
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		assert.Len(t, tri.Triangles, 18)
		AssertValidTriangulation(t, x, y, tri)
	})
}

func TestTriangulateRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		x, y := RandomPoints(rng, 200)
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		AssertValidTriangulation(t, x, y, tri)
	}
}

func TestTriangulateRandomLattice(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10; i++ {
		x, y := RandomLatticePoints(rng, 64, 6)
		tri, err := Triangulate(x, y)
		require.NoError(t, err)
		AssertValidTriangulation(t, x, y, tri)
	}
}

func TestTriangulateDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x, y := RandomLatticePoints(rng, 128, 10)
	first, err := Triangulate(x, y)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Triangulate(x, y)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("triangulation changed between runs (-first +again):\n%s", diff)
		}
	}
}

func TestTriangulateConcurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	x, y := RandomPoints(rng, 100)
	want, err := Triangulate(x, y)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Triangulation, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Triangulate(x, y)
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Empty(t, cmp.Diff(want, results[i]))
	}
}

func TestTriangulateValidation(t *testing.T) {
	t.Run("two points", func(t *testing.T) {
		_, err := Triangulate([]float64{0, 1}, []float64{0, 1})
		assert.True(t, errors.Is(err, ErrInsufficientPoints), "got %v", err)
	})

	t.Run("coincident points", func(t *testing.T) {
		_, err := Triangulate([]float64{1, 1, 1, 1}, []float64{2, 2, 2, 2})
		assert.True(t, errors.Is(err, ErrDegenerateInput), "got %v", err)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Triangulate([]float64{0, 1, 2}, []float64{0, 1})
		assert.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)
	})
}

func TestTriangulateKernelErrors(t *testing.T) {
	t.Run("collinear", func(t *testing.T) {
		tri, err := Triangulate([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
		assert.Nil(t, tri)
		var kerr *KernelError
		require.True(t, errors.As(err, &kerr), "got %v", err)
		assert.Equal(t, advanced.ExitSingular, kerr.Code)
		assert.Contains(t, kerr.Error(), "Error in qhull Delaunay triangulation calculation: singular input data (exitcode=2)")
		assert.True(t, strings.HasSuffix(kerr.Error(), verboseHint), "got %q", kerr.Error())
	})

	t.Run("non-finite", func(t *testing.T) {
		_, err := Triangulate([]float64{0, 1, math.NaN()}, []float64{0, 0, 1})
		var kerr *KernelError
		require.True(t, errors.As(err, &kerr), "got %v", err)
		assert.Equal(t, advanced.ExitInput, kerr.Code)

		_, err = Triangulate([]float64{0, 1, 0}, []float64{0, 0, math.Inf(1)})
		require.True(t, errors.As(err, &kerr), "got %v", err)
		assert.Equal(t, advanced.ExitInput, kerr.Code)
	})

	t.Run("verbose", func(t *testing.T) {
		var diag bytes.Buffer
		_, err := Triangulate([]float64{0, 1, 2}, []float64{0, 1, 2}, WithDiagnostics(&diag))
		var kerr *KernelError
		require.True(t, errors.As(err, &kerr))
		assert.NotContains(t, kerr.Error(), verboseHint)
		assert.Contains(t, diag.String(), "singular input data")
	})
}

func TestDelaunay(t *testing.T) {
	triangles, neighbors, err := Delaunay([]float64{0, 1, 1, 0}, []float64{0, 0, 1, 1}, true)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	assert.Len(t, neighbors, 2)

	triangles, neighbors, err = Delaunay([]float64{0, 1}, []float64{0, 1}, true)
	assert.Error(t, err)
	assert.Nil(t, triangles)
	assert.Nil(t, neighbors)
}

func TestKernelVersion(t *testing.T) {
	assert.NotEmpty(t, KernelVersion())
}
