package delaunay

import (
	"embed"
	"log"
	"math"
	"math/rand"

	"github.com/osuushi/delaunay/internal/svgpoints"
)

// Point set fixtures are SVG drawings in the fixtures/ directory, loaded by
// name sans extension. Each circle center and polygon vertex is a point. If
// anything goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (x, y []float64) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	x, y, err = svgpoints.Parse(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(x) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return x, y
}

// Some ad hoc point sets

func Grid(nx, ny int) (x, y []float64) {
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x = append(x, float64(i))
			y = append(y, float64(j))
		}
	}
	return x, y
}

func RegularPolygon(n int, radius float64) (x, y []float64) {
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x = append(x, radius*math.Cos(angle))
		y = append(y, radius*math.Sin(angle))
	}
	return x, y
}

func RandomPoints(rng *rand.Rand, n int) (x, y []float64) {
	for i := 0; i < n; i++ {
		x = append(x, rng.Float64())
		y = append(y, rng.Float64())
	}
	return x, y
}

// Small integer coordinates, so there are lots of duplicate, collinear and
// cocircular points. Keep n a power of two so the centered coordinates stay
// exact.
func RandomLatticePoints(rng *rand.Rand, n, size int) (x, y []float64) {
	for i := 0; i < n; i++ {
		x = append(x, float64(rng.Intn(size)))
		y = append(y, float64(rng.Intn(size)))
	}
	return x, y
}
