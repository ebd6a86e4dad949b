package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Vector represents a 3D displacement vector.
// Unlike Point which represents a position, Vector represents a direction and
// magnitude. This semantic distinction helps make code clearer when composing
// geometric operations.
type Vector struct {
	X, Y, Z float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// UnitX returns the unit vector along the X axis.
func UnitX() Vector { return Vector{X: 1} }

// UnitY returns the unit vector along the Y axis.
func UnitY() Vector { return Vector{Y: 1} }

// UnitZ returns the unit vector along the Z axis.
func UnitZ() Vector { return Vector{Z: 1} }

// DataType implements compas.Data.
func (v Vector) DataType() string { return "geometry/Vector" }

// MarshalJSON encodes the vector as an [x, y, z] triple.
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes the vector from an [x, y, z] triple.
func (v *Vector) UnmarshalJSON(b []byte) error {
	var xyz [3]float64
	if err := json.Unmarshal(b, &xyz); err != nil {
		return err
	}
	v.X, v.Y, v.Z = xyz[0], xyz[1], xyz[2]
	return nil
}

// String returns a readable representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("Vector(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared length of the vector.
func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unitized returns a unit vector in the same direction.
// The zero vector unitizes to itself.
func (v Vector) Unitized() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return v.Div(length)
}

// Angle returns the smallest angle between two vectors, in radians.
func (v Vector) Angle(w Vector) float64 {
	a := v.Unitized()
	b := w.Unitized()
	d := a.Dot(b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}

// Lerp performs linear interpolation between two vectors.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

func init() {
	compas.RegisterData(Vector{}.DataType(), func(b []byte) (compas.Data, error) {
		var v Vector
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		return v, nil
	})
}
