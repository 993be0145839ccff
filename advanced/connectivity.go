package advanced

import "github.com/pkg/errors"

// Normalize puts a kernel triple into output winding. Facets with TopOrient
// set are already counter-clockwise; the others get their first and third
// entries swapped. Vertex and neighbor triples must both go through here so
// that neighbor slot k stays opposite vertex slot k.
func Normalize(topOrient bool, triple [3]int) [3]int {
	if !topOrient {
		triple[0], triple[2] = triple[2], triple[0]
	}
	return triple
}

// ExtractConnectivity is the second pass over the kernel's facets, in the same
// order as IndexFacets. It emits one counter-clockwise vertex triple per
// non-upper facet, and the matching neighbor triple where slot k is the
// triangle across the edge opposite vertex k, or -1 on the outer boundary.
func ExtractConnectivity(facets []Facet, triIndex []int, ntri int) (triangles, neighbors [][3]int, err error) {
	triangles = make([][3]int, 0, ntri)
	neighbors = make([][3]int, 0, ntri)

	for _, facet := range facets {
		if facet.Upper {
			continue
		}
		var adjacent [3]int
		for k, id := range facet.Neighbors {
			if id < 0 {
				adjacent[k] = -1
				continue
			}
			if id >= len(triIndex) {
				return nil, nil, errors.Wrapf(ErrFacetID, "facet %d has neighbor %d, max is %d", facet.ID, id, len(triIndex)-1)
			}
			adjacent[k] = triIndex[id]
		}
		triangles = append(triangles, Normalize(facet.TopOrient, facet.Vertices))
		neighbors = append(neighbors, Normalize(facet.TopOrient, adjacent))
	}

	if len(triangles) != ntri {
		return nil, nil, errors.Errorf("kernel yielded %d lower facets on the second pass, %d on the first", len(triangles), ntri)
	}
	return triangles, neighbors, nil
}
