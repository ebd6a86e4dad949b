package geometry

import (
	"errors"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Transformation represents a 3D affine transformation as a 4x4 matrix in
// row-major order:
//
//	| m00 m01 m02 m03 |
//	| m10 m11 m12 m13 |
//	| m20 m21 m22 m23 |
//	| m30 m31 m32 m33 |
//
// Points transform as column vectors: p' = M * [x y z 1].
type Transformation struct {
	M [4][4]float64
}

// Identity returns the identity transformation.
func Identity() Transformation {
	var t Transformation
	t.M[0][0] = 1
	t.M[1][1] = 1
	t.M[2][2] = 1
	t.M[3][3] = 1
	return t
}

// Translation creates a translation by a vector.
func Translation(v Vector) Transformation {
	t := Identity()
	t.M[0][3] = v.X
	t.M[1][3] = v.Y
	t.M[2][3] = v.Z
	return t
}

// Scaling creates a scaling about the origin.
func Scaling(sx, sy, sz float64) Transformation {
	t := Identity()
	t.M[0][0] = sx
	t.M[1][1] = sy
	t.M[2][2] = sz
	return t
}

// RotationX creates a rotation about the X axis (angle in radians).
func RotationX(angle float64) Transformation {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	t := Identity()
	t.M[1][1] = cos
	t.M[1][2] = -sin
	t.M[2][1] = sin
	t.M[2][2] = cos
	return t
}

// RotationY creates a rotation about the Y axis (angle in radians).
func RotationY(angle float64) Transformation {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	t := Identity()
	t.M[0][0] = cos
	t.M[0][2] = sin
	t.M[2][0] = -sin
	t.M[2][2] = cos
	return t
}

// RotationZ creates a rotation about the Z axis (angle in radians).
func RotationZ(angle float64) Transformation {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	t := Identity()
	t.M[0][0] = cos
	t.M[0][1] = -sin
	t.M[1][0] = sin
	t.M[1][1] = cos
	return t
}

// Rotation creates a rotation of angle radians about an arbitrary axis
// through the origin, using the Rodrigues formula.
func Rotation(axis Vector, angle float64) Transformation {
	u := axis.Unitized()
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	c := 1 - cos

	t := Identity()
	t.M[0][0] = cos + u.X*u.X*c
	t.M[0][1] = u.X*u.Y*c - u.Z*sin
	t.M[0][2] = u.X*u.Z*c + u.Y*sin
	t.M[1][0] = u.Y*u.X*c + u.Z*sin
	t.M[1][1] = cos + u.Y*u.Y*c
	t.M[1][2] = u.Y*u.Z*c - u.X*sin
	t.M[2][0] = u.Z*u.X*c - u.Y*sin
	t.M[2][1] = u.Z*u.Y*c + u.X*sin
	t.M[2][2] = cos + u.Z*u.Z*c
	return t
}

// Multiply multiplies two transformations (t * other).
// Applying the result is equivalent to applying other first, then t.
func (t Transformation) Multiply(other Transformation) Transformation {
	var r Transformation
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += t.M[i][k] * other.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// TransformPoint applies the transformation to a point.
func (t Transformation) TransformPoint(p Point) Point {
	return Point{
		X: t.M[0][0]*p.X + t.M[0][1]*p.Y + t.M[0][2]*p.Z + t.M[0][3],
		Y: t.M[1][0]*p.X + t.M[1][1]*p.Y + t.M[1][2]*p.Z + t.M[1][3],
		Z: t.M[2][0]*p.X + t.M[2][1]*p.Y + t.M[2][2]*p.Z + t.M[2][3],
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (t Transformation) TransformVector(v Vector) Vector {
	return Vector{
		X: t.M[0][0]*v.X + t.M[0][1]*v.Y + t.M[0][2]*v.Z,
		Y: t.M[1][0]*v.X + t.M[1][1]*v.Y + t.M[1][2]*v.Z,
		Z: t.M[2][0]*v.X + t.M[2][1]*v.Y + t.M[2][2]*v.Z,
	}
}

// TransformPoints applies the transformation to a slice of points, in place.
func (t Transformation) TransformPoints(points []Point) {
	for i := range points {
		points[i] = t.TransformPoint(points[i])
	}
}

// Determinant returns the determinant of the matrix.
func (t Transformation) Determinant() float64 {
	m := &t.M
	// Expansion along the first row over 3x3 cofactors of the lower-right
	// block, folding in the homogeneous row.
	det3 := func(a, b, c, d, e, f, g, h, i float64) float64 {
		return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	}
	return m[0][0]*det3(m[1][1], m[1][2], m[1][3], m[2][1], m[2][2], m[2][3], m[3][1], m[3][2], m[3][3]) -
		m[0][1]*det3(m[1][0], m[1][2], m[1][3], m[2][0], m[2][2], m[2][3], m[3][0], m[3][2], m[3][3]) +
		m[0][2]*det3(m[1][0], m[1][1], m[1][3], m[2][0], m[2][1], m[2][3], m[3][0], m[3][1], m[3][3]) -
		m[0][3]*det3(m[1][0], m[1][1], m[1][2], m[2][0], m[2][1], m[2][2], m[3][0], m[3][1], m[3][2])
}

// Invert returns the inverse transformation, computed by Gauss-Jordan
// elimination with partial pivoting.
// Returns the identity transformation if the matrix is not invertible.
func (t Transformation) Invert() Transformation {
	a := t.M
	inv := Identity().M

	for col := 0; col < 4; col++ {
		// Partial pivoting.
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return Identity()
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale := 1.0 / a[col][col]
		for j := 0; j < 4; j++ {
			a[col][j] *= scale
			inv[col][j] *= scale
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			for j := 0; j < 4; j++ {
				a[row][j] -= factor * a[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}
	return Transformation{M: inv}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (t Transformation) IsIdentity() bool {
	return t == Identity()
}

// Transformable is implemented by geometric items whose defining geometry
// can be transformed in place.
type Transformable interface {
	ApplyTransformation(t Transformation)
}

// ApplyTransformation transforms the point in place.
func (p *Point) ApplyTransformation(t Transformation) {
	*p = t.TransformPoint(*p)
}

// ApplyTransformation transforms the vector in place.
func (v *Vector) ApplyTransformation(t Transformation) {
	*v = t.TransformVector(*v)
}

// ApplyTransformation transforms both endpoints in place.
func (l *Line) ApplyTransformation(t Transformation) {
	l.Start = t.TransformPoint(l.Start)
	l.End = t.TransformPoint(l.End)
}

// ApplyTransformation transforms all points in place.
func (pl *Polyline) ApplyTransformation(t Transformation) {
	t.TransformPoints(pl.Points)
}

// ApplyTransformation transforms all points in place.
func (p *Polygon) ApplyTransformation(t Transformation) {
	t.TransformPoints(p.Points)
}

// ApplyTransformation transforms the base point and normal in place.
func (p *Plane) ApplyTransformation(t Transformation) {
	p.Point = t.TransformPoint(p.Point)
	p.Normal = t.TransformVector(p.Normal)
}

// ApplyTransformation transforms the origin and axes in place.
func (f *Frame) ApplyTransformation(t Transformation) {
	f.Point = t.TransformPoint(f.Point)
	f.XAxis = t.TransformVector(f.XAxis)
	f.YAxis = t.TransformVector(f.YAxis)
}

// ApplyTransformation transforms the circle's plane in place.
// The radius is scaled by the length change of the plane's X direction.
func (c *Circle) ApplyTransformation(t Transformation) {
	c.Plane.ApplyTransformation(t)
	c.Radius *= uniformScale(t)
}

// uniformScale extracts the scale factor along the X axis, used to scale
// radii under (assumed uniform) scaling transforms.
func uniformScale(t Transformation) float64 {
	return t.TransformVector(UnitX()).Length()
}

// ErrNotTransformable reports an item whose geometry cannot be transformed.
var ErrNotTransformable = errors.New("geometry: item is not transformable")

// Transformed applies a transformation to a data item held behind the Data
// interface and returns the transformed item. Pointer items (meshes, shapes)
// are transformed in place; value items (points, lines, polygons) are
// replaced, so callers must use the returned item. Slice-backed values get
// fresh point storage so the caller's item is never written through.
func Transformed(item compas.Data, t Transformation) (compas.Data, error) {
	switch v := item.(type) {
	case Transformable:
		v.ApplyTransformation(t)
		return item, nil
	case Point:
		v.ApplyTransformation(t)
		return v, nil
	case Vector:
		v.ApplyTransformation(t)
		return v, nil
	case Line:
		v.ApplyTransformation(t)
		return v, nil
	case Polyline:
		v.Points = clonePoints(v.Points)
		v.ApplyTransformation(t)
		return v, nil
	case Polygon:
		v.Points = clonePoints(v.Points)
		v.ApplyTransformation(t)
		return v, nil
	case Plane:
		v.ApplyTransformation(t)
		return v, nil
	case Frame:
		v.ApplyTransformation(t)
		return v, nil
	case Circle:
		v.ApplyTransformation(t)
		return v, nil
	default:
		return nil, ErrNotTransformable
	}
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}
