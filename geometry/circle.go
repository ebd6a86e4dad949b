package geometry

import (
	"encoding/json"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Circle lies on a plane, centered at the plane's base point.
type Circle struct {
	Plane  Plane   `json:"plane"`
	Radius float64 `json:"radius"`
}

// DataType implements compas.Data.
func (c Circle) DataType() string { return "geometry/Circle" }

// Circumference returns the circumference of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Area returns the area of the disk bounded by the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Center returns the center of the circle.
func (c Circle) Center() Point {
	return c.Plane.Point
}

// PointAt returns the point at angle theta (radians) along the circle,
// measured from the plane frame's X axis.
func (c Circle) PointAt(theta float64) (Point, error) {
	f, err := FrameFromPlane(c.Plane)
	if err != nil {
		return Point{}, err
	}
	return f.ToWorld(c.Radius*math.Cos(theta), c.Radius*math.Sin(theta), 0), nil
}

func init() {
	compas.RegisterData(Circle{}.DataType(), func(b []byte) (compas.Data, error) {
		var c Circle
		if err := json.Unmarshal(b, &c); err != nil {
			return nil, err
		}
		return c, nil
	})
}
