package dbg

import (
	"image"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/font/basicfont"
)

// Padding around the mesh so boundary edges aren't clipped
const drawPadding = 40

// DrawOptions controls Render.
type DrawOptions struct {
	// Pixels per unit. Zero picks a scale that makes the longer side 800px.
	Scale float64
	// Label triangles with their index.
	Labels bool
}

// Render draws a triangulation. Interior edges are green, boundary edges
// (neighbor -1) are cyan, and points left out of every triangle are red.
func Render(x, y []float64, triangles, neighbors [][3]int, opts DrawOptions) image.Image {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range x {
		minX = math.Min(minX, x[i])
		minY = math.Min(minY, y[i])
		maxX = math.Max(maxX, x[i])
		maxY = math.Max(maxY, y[i])
	}
	if len(x) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	scale := opts.Scale
	if scale <= 0 {
		extent := math.Max(maxX-minX, maxY-minY)
		if extent == 0 {
			extent = 1
		}
		scale = 800 / extent
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	used := make([]bool, len(x))
	for _, t := range triangles {
		c.MoveTo(x[t[0]], y[t[0]])
		c.LineTo(x[t[1]], y[t[1]])
		c.LineTo(x[t[2]], y[t[2]])
		c.ClosePath()
		for _, v := range t {
			used[v] = true
		}
	}
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.Fill()

	// Line width is in user space, so undo the scale
	c.SetLineWidth(2 / scale)
	for i, t := range triangles {
		for k := 0; k < 3; k++ {
			a, b := t[(k+1)%3], t[(k+2)%3]
			nb := -1
			if i < len(neighbors) {
				nb = neighbors[i][k]
			}
			if nb >= 0 && nb < i {
				continue // drawn from the other side
			}
			c.MoveTo(x[a], y[a])
			c.LineTo(x[b], y[b])
			if nb < 0 {
				c.SetRGB(0, 1, 1)
			} else {
				c.SetRGB(0, 1, 0)
			}
			c.Stroke()
		}
	}

	for i, ok := range used {
		if ok {
			continue
		}
		c.DrawCircle(x[i], y[i], 4/scale)
		c.SetRGB(1, 0, 0)
		c.Fill()
	}

	if opts.Labels {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(1, 1, 1)
		for i, t := range triangles {
			centerX := (x[t[0]] + x[t[1]] + x[t[2]]) / 3
			centerY := (y[t[0]] + y[t[1]] + y[t[2]]) / 3
			// Text has to be drawn in native coordinates or it comes out flipped
			centerX, centerY = c.TransformPoint(centerX, centerY)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(strconv.Itoa(i), centerX, centerY, 0.5, 0.5)
			c.Pop()
		}
	}
	return c.Image()
}

// SavePNG renders the triangulation to a PNG file.
func SavePNG(path string, x, y []float64, triangles, neighbors [][3]int, opts DrawOptions) error {
	return gg.SavePNG(path, Render(x, y, triangles, neighbors, opts))
}

// Preview renders the triangulation and prints it inline to an iTerm
// compatible terminal.
func Preview(w io.Writer, x, y []float64, triangles, neighbors [][3]int, opts DrawOptions) error {
	f, err := os.CreateTemp("", "delaunay_preview_*.png")
	if err != nil {
		return err
	}
	path := f.Name()
	defer os.Remove(path)
	if err := f.Close(); err != nil {
		return err
	}
	if err := SavePNG(path, x, y, triangles, neighbors, opts); err != nil {
		return err
	}
	return imgcat.CatFile(path, w)
}
