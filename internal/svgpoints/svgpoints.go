// Package svgpoints pulls point sets out of SVG drawings. It is not a real SVG
// renderer: transforms, paths and units are ignored. Each <circle> contributes
// its center and each <polygon> or <polyline> contributes its vertices, in
// document order. Coordinates are taken as written, so y grows downwards.
package svgpoints

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Parse reads an SVG document and returns the x and y coordinates of its
// points.
func Parse(r io.Reader) (x, y []float64, err error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parse svg")
	}
	var p collector
	if err := p.walk(root); err != nil {
		return nil, nil, err
	}
	return p.x, p.y, nil
}

type collector struct {
	x, y []float64
}

func (p *collector) walk(el *svgparser.Element) error {
	switch el.Name {
	case "circle":
		cx, err := attrFloat(el, "cx")
		if err != nil {
			return err
		}
		cy, err := attrFloat(el, "cy")
		if err != nil {
			return err
		}
		p.x = append(p.x, cx)
		p.y = append(p.y, cy)
	case "polygon", "polyline":
		if err := p.addPoints(el.Attributes["points"]); err != nil {
			return errors.Wrapf(err, "<%s>", el.Name)
		}
	}
	for _, child := range el.Children {
		if err := p.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// Point lists are "x,y x,y ..." but any mix of commas and whitespace is valid.
func (p *collector) addPoints(list string) error {
	fields := strings.Fields(strings.ReplaceAll(list, ",", " "))
	if len(fields)%2 != 0 {
		return errors.Errorf("odd number of coordinates in %q", list)
	}
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		p.x = append(p.x, x)
		p.y = append(p.y, y)
	}
	return nil
}

// Missing attributes default to 0, as in SVG.
func attrFloat(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "<%s> invalid %s %q", el.Name, name, s)
	}
	return v, nil
}
