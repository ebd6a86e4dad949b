package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/Sam-Bouten/compas"
)

// Mesh is a lightweight polygon-mesh container: a vertex list plus faces
// given as counter-clockwise index loops into the vertex list.
//
// Mesh is the common currency between shapes (ToMesh), the trimesh solver
// hooks, and the drawing layer. It makes no connectivity guarantees beyond
// what its faces state.
type Mesh struct {
	Vertices []Point `json:"vertices"`
	Faces    [][]int `json:"faces"`
}

// NewMesh creates a mesh and validates that all face indices are in range
// and every face has at least three vertices.
func NewMesh(vertices []Point, faces [][]int) (*Mesh, error) {
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("geometry: face %d has %d vertices, need at least 3", fi, len(face))
		}
		for _, vi := range face {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("geometry: face %d references vertex %d of %d", fi, vi, len(vertices))
			}
		}
	}
	return &Mesh{Vertices: vertices, Faces: faces}, nil
}

// DataType implements compas.Data.
func (m *Mesh) DataType() string { return "geometry/Mesh" }

// Copy returns a deep copy of the mesh.
func (m *Mesh) Copy() *Mesh {
	vertices := make([]Point, len(m.Vertices))
	copy(vertices, m.Vertices)
	faces := make([][]int, len(m.Faces))
	for i, face := range m.Faces {
		faces[i] = make([]int, len(face))
		copy(faces[i], face)
	}
	return &Mesh{Vertices: vertices, Faces: faces}
}

// Edges returns the unique undirected edges of the mesh as vertex index
// pairs with the smaller index first.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{})
	var edges [][2]int
	for _, face := range m.Faces {
		n := len(face)
		for i := 0; i < n; i++ {
			a, b := face[i], face[(i+1)%n]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}
	return edges
}

// FaceCentroid returns the centroid of face i.
func (m *Mesh) FaceCentroid(i int) Point {
	face := m.Faces[i]
	points := make([]Point, len(face))
	for j, vi := range face {
		points[j] = m.Vertices[vi]
	}
	c, _ := Centroid(points)
	return c
}

// FaceNormal returns the (unitized) normal of face i, computed with
// Newell's method.
func (m *Mesh) FaceNormal(i int) Vector {
	face := m.Faces[i]
	poly := Polygon{Points: make([]Point, len(face))}
	for j, vi := range face {
		poly.Points[j] = m.Vertices[vi]
	}
	return poly.Normal().Unitized()
}

// Triangles returns the faces of the mesh triangulated by fanning from the
// first vertex of each face. The vertex list is shared, not copied.
func (m *Mesh) Triangles() [][3]int {
	var tris [][3]int
	for _, face := range m.Faces {
		for i := 1; i+1 < len(face); i++ {
			tris = append(tris, [3]int{face[0], face[i], face[i+1]})
		}
	}
	return tris
}

// BoundingBox returns the axis-aligned bounding box of the mesh vertices.
func (m *Mesh) BoundingBox() ([8]Point, error) {
	return BoundingBox(m.Vertices)
}

// ApplyTransformation transforms all vertices in place.
func (m *Mesh) ApplyTransformation(t Transformation) {
	t.TransformPoints(m.Vertices)
}

func init() {
	compas.RegisterData((&Mesh{}).DataType(), func(b []byte) (compas.Data, error) {
		var m Mesh
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
		return &m, nil
	})
}
