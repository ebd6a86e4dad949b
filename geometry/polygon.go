package geometry

import (
	"encoding/json"

	"github.com/Sam-Bouten/compas"
)

// Polygon is a closed planar region bounded by an ordered point loop.
// The closing edge from the last to the first point is implicit.
type Polygon struct {
	Points []Point `json:"points"`
}

// DataType implements compas.Data.
func (p Polygon) DataType() string { return "geometry/Polygon" }

// Centroid returns the arithmetic mean of the polygon's points.
func (p Polygon) Centroid() Point {
	c, _ := Centroid(p.Points)
	return c
}

// Normal returns the polygon normal computed with Newell's method.
// The length of the normal equals twice the polygon area.
func (p Polygon) Normal() Vector {
	var n Vector
	count := len(p.Points)
	for i := 0; i < count; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%count]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// Area returns the area of the polygon.
func (p Polygon) Area() float64 {
	return p.Normal().Length() / 2
}

// IsConvexXY reports whether the polygon is convex when projected onto the
// XY plane. Degenerate polygons with fewer than three points are not convex.
func (p Polygon) IsConvexXY() bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var sign float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
			continue
		}
		if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func init() {
	compas.RegisterData(Polygon{}.DataType(), func(b []byte) (compas.Data, error) {
		var p Polygon
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
		return p, nil
	})
}
