package geometry

import (
	"encoding/json"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Torus is defined by a plane, an axis radius (distance from the plane's
// base point to the center of the pipe) and a pipe radius.
type Torus struct {
	Plane      Plane   `json:"plane"`
	RadiusAxis float64 `json:"radius_axis"`
	RadiusPipe float64 `json:"radius_pipe"`
}

// NewTorus creates a torus on the world XY plane, centered on the origin.
func NewTorus(radiusAxis, radiusPipe float64) *Torus {
	return &Torus{Plane: WorldXY(), RadiusAxis: radiusAxis, RadiusPipe: radiusPipe}
}

// DataType implements compas.Data.
func (t *Torus) DataType() string { return "geometry/Torus" }

// Volume returns the volume of the torus.
func (t *Torus) Volume() float64 {
	return 2 * math.Pi * math.Pi * t.RadiusAxis * t.RadiusPipe * t.RadiusPipe
}

// Area returns the surface area of the torus.
func (t *Torus) Area() float64 {
	return 4 * math.Pi * math.Pi * t.RadiusAxis * t.RadiusPipe
}

// ToMesh converts the torus to a quad mesh with u segments around the axis
// and v segments around the pipe. Requires u >= 3, v >= 3.
func (t *Torus) ToMesh(u, v int) (*Mesh, error) {
	if u < 3 || v < 3 {
		return nil, ErrMeshResolution
	}
	f, err := FrameFromPlane(t.Plane)
	if err != nil {
		return nil, err
	}

	vertices := make([]Point, 0, u*v)
	for i := 0; i < u; i++ {
		phi := 2 * math.Pi * float64(i) / float64(u)
		for j := 0; j < v; j++ {
			theta := 2 * math.Pi * float64(j) / float64(v)
			d := t.RadiusAxis + t.RadiusPipe*math.Cos(theta)
			vertices = append(vertices, f.ToWorld(
				d*math.Cos(phi),
				d*math.Sin(phi),
				t.RadiusPipe*math.Sin(theta),
			))
		}
	}

	var faces [][]int
	for i := 0; i < u; i++ {
		ni := (i + 1) % u
		for j := 0; j < v; j++ {
			nj := (j + 1) % v
			faces = append(faces, []int{
				i*v + j,
				ni*v + j,
				ni*v + nj,
				i*v + nj,
			})
		}
	}

	return NewMesh(vertices, faces)
}

// ApplyTransformation transforms the plane in place and scales both radii
// by the transform's uniform scale factor.
func (t *Torus) ApplyTransformation(x Transformation) {
	t.Plane.ApplyTransformation(x)
	s := uniformScale(x)
	t.RadiusAxis *= s
	t.RadiusPipe *= s
}

func init() {
	compas.RegisterData((&Torus{}).DataType(), func(raw []byte) (compas.Data, error) {
		var t Torus
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
		return &t, nil
	})
}
