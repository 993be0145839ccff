package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/osuushi/delaunay"
)

// One line per triangle: "t <i>: <a> <b> <c> | <n0> <n1> <n2>".
func writeText(w io.Writer, tri *delaunay.Triangulation) error {
	for i, t := range tri.Triangles {
		n := tri.Neighbors[i]
		if _, err := fmt.Fprintf(w, "t %d: %d %d %d | %d %d %d\n", i, t[0], t[1], t[2], n[0], n[1], n[2]); err != nil {
			return err
		}
	}
	return nil
}

type jsonTriangulation struct {
	Triangles [][3]int `json:"triangles"`
	Neighbors [][3]int `json:"neighbors"`
}

func writeJSON(w io.Writer, tri *delaunay.Triangulation) error {
	out := jsonTriangulation{Triangles: tri.Triangles, Neighbors: tri.Neighbors}
	// Keep empty results as [] rather than null
	if out.Triangles == nil {
		out.Triangles = [][3]int{}
		out.Neighbors = [][3]int{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
