package geometry

import (
	"encoding/json"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Cone is defined by a base circle and a height. The apex sits at the given
// height along the circle plane's normal, above the circle center.
type Cone struct {
	Circle Circle  `json:"circle"`
	Height float64 `json:"height"`
}

// NewCone creates a cone with its base on the world XY plane and apex on the
// positive Z axis.
func NewCone(radius, height float64) *Cone {
	return &Cone{Circle: Circle{Plane: WorldXY(), Radius: radius}, Height: height}
}

// DataType implements compas.Data.
func (c *Cone) DataType() string { return "geometry/Cone" }

// Apex returns the apex point of the cone.
func (c *Cone) Apex() Point {
	return c.Circle.Plane.Point.Add(c.Circle.Plane.Normal.Unitized().Mul(c.Height))
}

// Volume returns the volume of the cone.
func (c *Cone) Volume() float64 {
	return math.Pi * c.Circle.Radius * c.Circle.Radius * c.Height / 3
}

// ToMesh converts the cone to a mesh with u side triangles and an n-gon
// base. The v parameter is ignored. Requires u >= 3.
func (c *Cone) ToMesh(u, v int) (*Mesh, error) {
	if u < 3 {
		return nil, ErrMeshResolution
	}
	f, err := FrameFromPlane(c.Circle.Plane)
	if err != nil {
		return nil, err
	}

	r := c.Circle.Radius
	vertices := make([]Point, 0, u+1)
	for seg := 0; seg < u; seg++ {
		phi := 2 * math.Pi * float64(seg) / float64(u)
		vertices = append(vertices, f.ToWorld(r*math.Cos(phi), r*math.Sin(phi), 0))
	}
	vertices = append(vertices, c.Apex())
	apex := u

	var faces [][]int
	for seg := 0; seg < u; seg++ {
		next := (seg + 1) % u
		faces = append(faces, []int{seg, next, apex})
	}
	base := make([]int, u)
	for seg := 0; seg < u; seg++ {
		base[seg] = u - 1 - seg
	}
	faces = append(faces, base)

	return NewMesh(vertices, faces)
}

// ApplyTransformation transforms the base circle in place and scales the
// height by the transform's uniform scale factor.
func (c *Cone) ApplyTransformation(t Transformation) {
	c.Circle.ApplyTransformation(t)
	c.Height *= uniformScale(t)
}

func init() {
	compas.RegisterData((&Cone{}).DataType(), func(raw []byte) (compas.Data, error) {
		var c Cone
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	})
}
