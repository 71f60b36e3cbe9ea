package tdf

type Point struct {
	X float64 `groups:"basic"`
	Y float64 `groups:"basic"`
	Z float64 `groups:"basic"`
}

// SquaredPlanarDistance is the squared distance between two points in the
// horizontal (x,z) plane. Height is ignored as the map view is top down.
func (p Point) SquaredPlanarDistance(other Point) float64 {
	dx := p.X - other.X
	dz := p.Z - other.Z

	return dx*dx + dz*dz
}

type Segment struct {
	Start Point `groups:"basic"`
	End   Point `groups:"basic"`
}

type Path struct {
	Identifier string `groups:"basic"`
	Label      string `groups:"basic"`

	// IsPrimary marks the forward travel direction. Everything else is the
	// reverse direction unless a label overrides it.
	IsPrimary bool `groups:"basic"`

	Points   []Point   `groups:"basic"`
	Segments []Segment `groups:"basic"`
}

// StartPoint returns the first resolvable coordinate of the path, preferring
// the point list over the segment list.
func (p *Path) StartPoint() (Point, bool) {
	if len(p.Points) > 0 {
		return p.Points[0], true
	}

	if len(p.Segments) > 0 {
		return p.Segments[0].Start, true
	}

	return Point{}, false
}

type Geometry struct {
	Source string `groups:"basic"`

	Paths  []Path  `groups:"basic"`
	Points []Point `groups:"basic"`
}

// NearestPath picks the path whose starting point is closest to the reference
// point in the (x,z) plane, so the map highlights the physical direction
// matching the selected variant. With no reference point the first path is the
// stable default. Paths with no resolvable start coordinate are skipped.
func NearestPath(paths []Path, reference *Point) *Path {
	if len(paths) == 0 {
		return nil
	}

	if reference == nil {
		return &paths[0]
	}

	var nearest *Path
	var nearestDistance float64

	for i := range paths {
		start, ok := paths[i].StartPoint()
		if !ok {
			continue
		}

		distance := start.SquaredPlanarDistance(*reference)

		if nearest == nil || distance < nearestDistance {
			nearest = &paths[i]
			nearestDistance = distance
		}
	}

	if nearest == nil {
		return &paths[0]
	}

	return nearest
}
