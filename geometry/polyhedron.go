package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Sam-Bouten/compas"
)

// Polyhedron is a solid bounded by planar polygonal faces, given as vertex
// index loops wound counter-clockwise seen from outside.
type Polyhedron struct {
	Vertices []Point `json:"vertices"`
	Faces    [][]int `json:"faces"`
}

// NewTetrahedron creates a regular tetrahedron inscribed in a sphere of the
// given radius, centered on the origin.
func NewTetrahedron(radius float64) *Polyhedron {
	s := radius / math.Sqrt(3)
	return &Polyhedron{
		Vertices: []Point{
			{s, s, s},
			{s, -s, -s},
			{-s, s, -s},
			{-s, -s, s},
		},
		Faces: [][]int{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	}
}

// NewOctahedron creates a regular octahedron inscribed in a sphere of the
// given radius, centered on the origin.
func NewOctahedron(radius float64) *Polyhedron {
	r := radius
	return &Polyhedron{
		Vertices: []Point{
			{r, 0, 0}, {-r, 0, 0},
			{0, r, 0}, {0, -r, 0},
			{0, 0, r}, {0, 0, -r},
		},
		Faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	}
}

// DataType implements compas.Data.
func (p *Polyhedron) DataType() string { return "geometry/Polyhedron" }

// FacePlane returns the plane of face i, through the face centroid with the
// face's Newell normal.
func (p *Polyhedron) FacePlane(i int) (Plane, error) {
	if i < 0 || i >= len(p.Faces) {
		return Plane{}, fmt.Errorf("geometry: face index %d of %d", i, len(p.Faces))
	}
	face := p.Faces[i]
	poly := Polygon{Points: make([]Point, len(face))}
	for j, vi := range face {
		poly.Points[j] = p.Vertices[vi]
	}
	n := poly.Normal().Unitized()
	if n.Length() == 0 {
		return Plane{}, fmt.Errorf("geometry: degenerate face %d", i)
	}
	return Plane{Point: poly.Centroid(), Normal: n}, nil
}

// Volume returns the volume of the polyhedron, computed with the divergence
// theorem over the triangulated faces. The result is only meaningful for
// closed, consistently wound face loops.
func (p *Polyhedron) Volume() float64 {
	var sum float64
	for _, face := range p.Faces {
		for i := 1; i+1 < len(face); i++ {
			a := p.Vertices[face[0]].Vector()
			b := p.Vertices[face[i]].Vector()
			c := p.Vertices[face[i+1]].Vector()
			sum += a.Dot(b.Cross(c))
		}
	}
	return math.Abs(sum) / 6
}

// ToMesh converts the polyhedron to a mesh. The resolution parameters are
// ignored; the faces are copied as-is.
func (p *Polyhedron) ToMesh(u, v int) (*Mesh, error) {
	m := (&Mesh{Vertices: p.Vertices, Faces: p.Faces}).Copy()
	return NewMesh(m.Vertices, m.Faces)
}

// ApplyTransformation transforms all vertices in place.
func (p *Polyhedron) ApplyTransformation(t Transformation) {
	t.TransformPoints(p.Vertices)
}

func init() {
	compas.RegisterData((&Polyhedron{}).DataType(), func(raw []byte) (compas.Data, error) {
		var p Polyhedron
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return &p, nil
	})
}
