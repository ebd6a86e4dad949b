package geometry

import (
	"encoding/json"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Sphere is defined by a center point and a radius.
type Sphere struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// NewSphere creates a sphere centered on the world origin.
func NewSphere(radius float64) *Sphere {
	return &Sphere{Radius: radius}
}

// DataType implements compas.Data.
func (s *Sphere) DataType() string { return "geometry/Sphere" }

// Volume returns the volume of the sphere.
func (s *Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

// Area returns the surface area of the sphere.
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// ToMesh converts the sphere to a UV mesh with u meridians and v rings.
// Pole caps are triangle fans, the rest quads. Requires u >= 3, v >= 2.
func (s *Sphere) ToMesh(u, v int) (*Mesh, error) {
	if u < 3 || v < 2 {
		return nil, ErrMeshResolution
	}

	var vertices []Point
	// North pole, v-1 interior rings, south pole.
	vertices = append(vertices, Pt(s.Center.X, s.Center.Y, s.Center.Z+s.Radius))
	for ring := 1; ring < v; ring++ {
		theta := math.Pi * float64(ring) / float64(v)
		z := s.Radius * math.Cos(theta)
		r := s.Radius * math.Sin(theta)
		for seg := 0; seg < u; seg++ {
			phi := 2 * math.Pi * float64(seg) / float64(u)
			vertices = append(vertices, Pt(
				s.Center.X+r*math.Cos(phi),
				s.Center.Y+r*math.Sin(phi),
				s.Center.Z+z,
			))
		}
	}
	vertices = append(vertices, Pt(s.Center.X, s.Center.Y, s.Center.Z-s.Radius))
	south := len(vertices) - 1

	ringStart := func(ring int) int { return 1 + (ring-1)*u }

	var faces [][]int
	// North cap.
	for seg := 0; seg < u; seg++ {
		next := (seg + 1) % u
		faces = append(faces, []int{0, ringStart(1) + seg, ringStart(1) + next})
	}
	// Quads between rings.
	for ring := 1; ring < v-1; ring++ {
		a := ringStart(ring)
		b := ringStart(ring + 1)
		for seg := 0; seg < u; seg++ {
			next := (seg + 1) % u
			faces = append(faces, []int{a + seg, b + seg, b + next, a + next})
		}
	}
	// South cap.
	last := ringStart(v - 1)
	for seg := 0; seg < u; seg++ {
		next := (seg + 1) % u
		faces = append(faces, []int{south, last + next, last + seg})
	}

	return NewMesh(vertices, faces)
}

// ApplyTransformation transforms the center in place and scales the radius
// by the transform's uniform scale factor.
func (s *Sphere) ApplyTransformation(t Transformation) {
	s.Center = t.TransformPoint(s.Center)
	s.Radius *= uniformScale(t)
}

func init() {
	compas.RegisterData((&Sphere{}).DataType(), func(raw []byte) (compas.Data, error) {
		var s Sphere
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	})
}
