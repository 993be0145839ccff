package advanced

// Result holds the output of one triangulation. Triangles[i] lists point
// indices counter-clockwise; Neighbors[i][k] is the triangle across the edge
// opposite Triangles[i][k], or -1 on the boundary.
type Result struct {
	Triangles [][3]int
	Neighbors [][3]int
}

// Triangulate runs the whole pipeline: validate, condition, invoke the kernel,
// index its facets and extract connectivity. The kernel session is torn down
// before returning on every path, panics included.
func Triangulate(x, y []float64, cfg Config) (result *Result, err error) {
	if err := ValidatePoints(x, y); err != nil {
		return nil, err
	}
	coords := Condition(x, y)

	session, err := OpenSession(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			result, err = nil, closeErr
		}
	}()

	facets, maxFacetID, err := session.Invoke(coords, len(x))
	if err != nil {
		return nil, err
	}
	if cfg.TraceFacets {
		session.trace(facets)
	}

	triIndex, ntri, err := IndexFacets(facets, maxFacetID)
	if err != nil {
		return nil, err
	}
	triangles, neighbors, err := ExtractConnectivity(facets, triIndex, ntri)
	if err != nil {
		return nil, err
	}
	return &Result{Triangles: triangles, Neighbors: neighbors}, nil
}
