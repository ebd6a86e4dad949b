package geometry

import (
	"encoding/json"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Cylinder is defined by a base circle and a height. The axis runs along the
// circle plane's normal and the solid extends half the height to either side
// of the circle.
type Cylinder struct {
	Circle Circle  `json:"circle"`
	Height float64 `json:"height"`
}

// NewCylinder creates a cylinder on the world XY plane, centered on the
// origin with its axis along Z.
func NewCylinder(radius, height float64) *Cylinder {
	return &Cylinder{Circle: Circle{Plane: WorldXY(), Radius: radius}, Height: height}
}

// DataType implements compas.Data.
func (c *Cylinder) DataType() string { return "geometry/Cylinder" }

// Radius returns the radius of the base circle.
func (c *Cylinder) Radius() float64 { return c.Circle.Radius }

// Volume returns the volume of the cylinder.
func (c *Cylinder) Volume() float64 {
	return math.Pi * c.Circle.Radius * c.Circle.Radius * c.Height
}

// ToMesh converts the cylinder to a mesh with u side quads and n-gon caps.
// The v parameter is ignored. Requires u >= 3.
func (c *Cylinder) ToMesh(u, v int) (*Mesh, error) {
	if u < 3 {
		return nil, ErrMeshResolution
	}
	f, err := FrameFromPlane(c.Circle.Plane)
	if err != nil {
		return nil, err
	}

	h := c.Height / 2
	r := c.Circle.Radius
	vertices := make([]Point, 0, 2*u)
	for seg := 0; seg < u; seg++ {
		phi := 2 * math.Pi * float64(seg) / float64(u)
		x := r * math.Cos(phi)
		y := r * math.Sin(phi)
		vertices = append(vertices, f.ToWorld(x, y, -h))
	}
	for seg := 0; seg < u; seg++ {
		phi := 2 * math.Pi * float64(seg) / float64(u)
		x := r * math.Cos(phi)
		y := r * math.Sin(phi)
		vertices = append(vertices, f.ToWorld(x, y, h))
	}

	var faces [][]int
	// Side quads.
	for seg := 0; seg < u; seg++ {
		next := (seg + 1) % u
		faces = append(faces, []int{u + seg, seg, next, u + next})
	}
	// Caps as n-gons: bottom wound clockwise seen from above (outward down),
	// top counter-clockwise.
	bottom := make([]int, u)
	top := make([]int, u)
	for seg := 0; seg < u; seg++ {
		bottom[seg] = u - 1 - seg
		top[seg] = u + seg
	}
	faces = append(faces, bottom, top)

	return NewMesh(vertices, faces)
}

// ApplyTransformation transforms the base circle in place and scales the
// height by the transform's uniform scale factor.
func (c *Cylinder) ApplyTransformation(t Transformation) {
	c.Circle.ApplyTransformation(t)
	c.Height *= uniformScale(t)
}

func init() {
	compas.RegisterData((&Cylinder{}).DataType(), func(raw []byte) (compas.Data, error) {
		var c Cylinder
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	})
}
