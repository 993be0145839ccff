package advanced

import "github.com/pkg/errors"

// IndexFacets is the first pass over the kernel's facets. It gives every
// non-upper facet the next triangle index, in the order the kernel yields
// them, and returns the facet id → triangle index map along with the
// triangle count. Upper facets, and ids the kernel never yielded, map to -1.
//
// Zero triangles is a valid result.
func IndexFacets(facets []Facet, maxFacetID int) (triIndex []int, ntri int, err error) {
	if maxFacetID < -1 {
		return nil, 0, errors.Wrapf(ErrFacetID, "max facet id %d", maxFacetID)
	}
	triIndex = make([]int, maxFacetID+1)
	for i := range triIndex {
		triIndex[i] = -1
	}

	for _, facet := range facets {
		if facet.ID < 0 || facet.ID > maxFacetID {
			return nil, 0, errors.Wrapf(ErrFacetID, "facet id %d not in [0, %d]", facet.ID, maxFacetID)
		}
		if facet.Upper {
			triIndex[facet.ID] = -1
			continue
		}
		triIndex[facet.ID] = ntri
		ntri++
	}
	return triIndex, ntri, nil
}
