package geometry

import (
	"encoding/json"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Capsule is a cylinder with hemispherical end caps, defined by its axis
// line and a radius.
type Capsule struct {
	Line   Line    `json:"line"`
	Radius float64 `json:"radius"`
}

// NewCapsule creates a capsule along the Z axis, centered on the origin.
// The length is the distance between the two cap centers.
func NewCapsule(length, radius float64) *Capsule {
	h := length / 2
	return &Capsule{
		Line:   Line{Start: Pt(0, 0, -h), End: Pt(0, 0, h)},
		Radius: radius,
	}
}

// DataType implements compas.Data.
func (c *Capsule) DataType() string { return "geometry/Capsule" }

// Length returns the distance between the two cap centers.
func (c *Capsule) Length() float64 {
	return c.Line.Length()
}

// Volume returns the volume of the capsule.
func (c *Capsule) Volume() float64 {
	r := c.Radius
	return math.Pi*r*r*c.Length() + 4.0/3.0*math.Pi*r*r*r
}

// ToMesh converts the capsule to a mesh with u segments around the axis and
// v rings per hemisphere. Requires u >= 3, v >= 1.
func (c *Capsule) ToMesh(u, v int) (*Mesh, error) {
	if u < 3 || v < 1 {
		return nil, ErrMeshResolution
	}
	axis := c.Line.Direction().Unitized()
	if axis.Length() == 0 {
		axis = UnitZ()
	}
	f, err := FrameFromPlane(Plane{Point: c.Line.Start, Normal: axis})
	if err != nil {
		return nil, err
	}

	length := c.Length()
	r := c.Radius

	// Ring offsets along the axis and ring radii, from the bottom pole to
	// the top pole: bottom hemisphere, cylinder seam, top hemisphere.
	type ring struct{ offset, radius float64 }
	var rings []ring
	for j := 1; j <= v; j++ {
		theta := math.Pi / 2 * float64(j) / float64(v+1)
		rings = append(rings, ring{-r * math.Cos(theta), r * math.Sin(theta)})
	}
	rings = append(rings, ring{0, r}, ring{length, r})
	for j := v; j >= 1; j-- {
		theta := math.Pi / 2 * float64(j) / float64(v+1)
		rings = append(rings, ring{length + r*math.Cos(theta), r * math.Sin(theta)})
	}

	var vertices []Point
	vertices = append(vertices, f.ToWorld(0, 0, -r))
	for _, rg := range rings {
		for seg := 0; seg < u; seg++ {
			phi := 2 * math.Pi * float64(seg) / float64(u)
			vertices = append(vertices, f.ToWorld(rg.radius*math.Cos(phi), rg.radius*math.Sin(phi), rg.offset))
		}
	}
	vertices = append(vertices, f.ToWorld(0, 0, length+r))
	top := len(vertices) - 1

	ringStart := func(idx int) int { return 1 + idx*u }

	var faces [][]int
	// Bottom fan.
	for seg := 0; seg < u; seg++ {
		next := (seg + 1) % u
		faces = append(faces, []int{0, ringStart(0) + next, ringStart(0) + seg})
	}
	// Quads between consecutive rings.
	for idx := 0; idx+1 < len(rings); idx++ {
		a := ringStart(idx)
		b := ringStart(idx + 1)
		for seg := 0; seg < u; seg++ {
			next := (seg + 1) % u
			faces = append(faces, []int{a + seg, a + next, b + next, b + seg})
		}
	}
	// Top fan.
	last := ringStart(len(rings) - 1)
	for seg := 0; seg < u; seg++ {
		next := (seg + 1) % u
		faces = append(faces, []int{top, last + seg, last + next})
	}

	return NewMesh(vertices, faces)
}

// ApplyTransformation transforms the axis line in place and scales the
// radius by the transform's uniform scale factor.
func (c *Capsule) ApplyTransformation(t Transformation) {
	c.Line.ApplyTransformation(t)
	c.Radius *= uniformScale(t)
}

func init() {
	compas.RegisterData((&Capsule{}).DataType(), func(raw []byte) (compas.Data, error) {
		var c Capsule
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, nil
	})
}
