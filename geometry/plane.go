package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/Sam-Bouten/compas"
)

// Plane is defined by a base point and a normal vector.
type Plane struct {
	Point  Point  `json:"point"`
	Normal Vector `json:"normal"`
}

// WorldXY returns the plane through the origin with normal along Z.
func WorldXY() Plane {
	return Plane{Normal: UnitZ()}
}

// DataType implements compas.Data.
func (p Plane) DataType() string { return "geometry/Plane" }

// Frame is a coordinate frame: an origin point with two orthonormal axes.
// The Z axis is the cross product of X and Y.
type Frame struct {
	Point Point  `json:"point"`
	XAxis Vector `json:"xaxis"`
	YAxis Vector `json:"yaxis"`
}

// WorldFrame returns the world coordinate frame at the origin.
func WorldFrame() Frame {
	return Frame{XAxis: UnitX(), YAxis: UnitY()}
}

// FrameFromPlane constructs a frame on a plane, with an arbitrary X axis
// perpendicular to the plane normal.
func FrameFromPlane(pl Plane) (Frame, error) {
	n := pl.Normal.Unitized()
	if n.Length() == 0 {
		return Frame{}, fmt.Errorf("geometry: frame from degenerate plane")
	}
	// Pick the world axis least aligned with the normal as a helper.
	helper := UnitX()
	if abs := n.Dot(helper); abs > 0.9 || abs < -0.9 {
		helper = UnitY()
	}
	x := helper.Sub(n.Mul(helper.Dot(n))).Unitized()
	y := n.Cross(x)
	return Frame{Point: pl.Point, XAxis: x, YAxis: y}, nil
}

// DataType implements compas.Data.
func (f Frame) DataType() string { return "geometry/Frame" }

// ZAxis returns the cross product of the X and Y axes.
func (f Frame) ZAxis() Vector {
	return f.XAxis.Cross(f.YAxis)
}

// ToWorld maps local frame coordinates to world coordinates.
func (f Frame) ToWorld(x, y, z float64) Point {
	v := f.XAxis.Mul(x).Add(f.YAxis.Mul(y)).Add(f.ZAxis().Mul(z))
	return f.Point.Add(v)
}

// Plane returns the frame's base plane.
func (f Frame) Plane() Plane {
	return Plane{Point: f.Point, Normal: f.ZAxis()}
}

func init() {
	compas.RegisterData(Plane{}.DataType(), func(b []byte) (compas.Data, error) {
		var p Plane
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
		return p, nil
	})
	compas.RegisterData(Frame{}.DataType(), func(b []byte) (compas.Data, error) {
		var f Frame
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, err
		}
		return f, nil
	})
}
