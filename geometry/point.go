package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Point represents a position in 3D space, defined by XYZ coordinates.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// DataType implements compas.Data.
func (p Point) DataType() string { return "geometry/Point" }

// MarshalJSON encodes the point as an [x, y, z] triple.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

// UnmarshalJSON decodes the point from an [x, y, z] triple.
func (p *Point) UnmarshalJSON(b []byte) error {
	var xyz [3]float64
	if err := json.Unmarshal(b, &xyz); err != nil {
		return err
	}
	p.X, p.Y, p.Z = xyz[0], xyz[1], xyz[2]
	return nil
}

// String returns a readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("Point(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}

// Vector returns the position vector of the point.
func (p Point) Vector() Vector {
	return Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Add returns the point translated by a vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point with coordinates scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Div returns the point with coordinates divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// DistanceToPoint returns the distance to another point.
func (p Point) DistanceToPoint(q Point) float64 {
	return p.Sub(q).Length()
}

// DistanceToLine returns the perpendicular distance to a line.
func (p Point) DistanceToLine(l Line) float64 {
	d := l.Direction()
	if d.Length() == 0 {
		return p.DistanceToPoint(l.Start)
	}
	return d.Cross(p.Sub(l.Start)).Length() / d.Length()
}

// DistanceToPlane returns the signed distance to a plane.
// The sign follows the plane normal.
func (p Point) DistanceToPlane(pl Plane) float64 {
	return pl.Normal.Unitized().Dot(p.Sub(pl.Point))
}

// OnLine reports whether the point lies on the infinite line within tol.
func (p Point) OnLine(l Line, tol float64) bool {
	return p.DistanceToLine(l) <= tol
}

// OnSegment reports whether the point lies on the line segment within tol.
func (p Point) OnSegment(l Line, tol float64) bool {
	if !p.OnLine(l, tol) {
		return false
	}
	length := l.Length()
	if length == 0 {
		return p.DistanceToPoint(l.Start) <= tol
	}
	dStart := p.DistanceToPoint(l.Start)
	dEnd := p.DistanceToPoint(l.End)
	return dStart <= length+tol && dEnd <= length+tol
}

// OnPolyline reports whether the point lies on any segment of the polyline
// within tol.
func (p Point) OnPolyline(pl Polyline, tol float64) bool {
	for i := 0; i+1 < len(pl.Points); i++ {
		if p.OnSegment(Line{Start: pl.Points[i], End: pl.Points[i+1]}, tol) {
			return true
		}
	}
	return false
}

// OnCircle reports whether the point lies on the circle within tol.
func (p Point) OnCircle(c Circle, tol float64) bool {
	if math.Abs(p.DistanceToPlane(c.Plane)) > tol {
		return false
	}
	return math.Abs(p.DistanceToPoint(c.Plane.Point)-c.Radius) <= tol
}

// InCircle reports whether the point lies inside the circle, testing
// coplanarity within the default tolerance.
func (p Point) InCircle(c Circle) bool {
	if math.Abs(p.DistanceToPlane(c.Plane)) > Tolerance {
		return false
	}
	return p.DistanceToPoint(c.Plane.Point) <= c.Radius
}

// InTriangle reports whether the point lies in the triangle (a, b, c),
// using the same-side test against the triangle plane normal.
func (p Point) InTriangle(a, b, c Point) bool {
	n := b.Sub(a).Cross(c.Sub(a))
	d0 := b.Sub(a).Cross(p.Sub(a)).Dot(n)
	d1 := c.Sub(b).Cross(p.Sub(b)).Dot(n)
	d2 := a.Sub(c).Cross(p.Sub(c)).Dot(n)
	if d0 >= 0 && d1 >= 0 && d2 >= 0 {
		return true
	}
	return d0 <= 0 && d1 <= 0 && d2 <= 0
}

// BehindPlane reports whether the point lies on the opposite side of the
// plane from its normal.
func (p Point) BehindPlane(pl Plane) bool {
	return p.DistanceToPlane(pl) < 0
}

// InConvexPolygonXY reports whether the point lies inside a convex polygon,
// considering only XY coordinates.
func (p Point) InConvexPolygonXY(poly Polygon) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	var sign float64
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[(i+1)%n]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
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

// InPolygonXY reports whether the point lies inside a polygon, considering
// only XY coordinates. Convex polygons use the winding test, general
// polygons ray casting.
func (p Point) InPolygonXY(poly Polygon) bool {
	if poly.IsConvexXY() {
		return p.InConvexPolygonXY(poly)
	}
	inside := false
	n := len(poly.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := poly.Points[i]
		b := poly.Points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// InPolyhedron reports whether the point lies inside a convex polyhedron,
// by testing that it sits behind the plane of every face.
func (p Point) InPolyhedron(ph *Polyhedron) bool {
	for i := range ph.Faces {
		pl, err := ph.FacePlane(i)
		if err != nil {
			return false
		}
		if p.DistanceToPlane(pl) > 0 {
			return false
		}
	}
	return true
}

// Centroid returns the arithmetic mean of a set of points.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, fmt.Errorf("geometry: centroid of empty point set")
	}
	var c Point
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	return c.Div(float64(len(points))), nil
}

func init() {
	compas.RegisterData(Point{}.DataType(), func(b []byte) (compas.Data, error) {
		var p Point
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
		return p, nil
	})
}
