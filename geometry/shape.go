package geometry

import (
	"errors"

	"github.com/Sam-Bouten/compas"
)

// ErrMeshResolution indicates a ToMesh call with too few segments.
var ErrMeshResolution = errors.New("geometry: mesh resolution too low")

// Shape is a parametric solid primitive with a to-mesh conversion.
//
// The u parameter controls the resolution around the main axis, v the
// resolution along it. Shapes with no curved surface (Box, Polyhedron)
// ignore both.
type Shape interface {
	compas.Data
	Transformable

	// Volume returns the volume of the solid.
	Volume() float64

	// ToMesh converts the shape to a mesh at the given resolution.
	ToMesh(u, v int) (*Mesh, error)
}

// Shapes implement Shape with pointer receivers; these assertions keep the
// set honest.
var (
	_ Shape = (*Box)(nil)
	_ Shape = (*Sphere)(nil)
	_ Shape = (*Cylinder)(nil)
	_ Shape = (*Cone)(nil)
	_ Shape = (*Torus)(nil)
	_ Shape = (*Capsule)(nil)
	_ Shape = (*Polyhedron)(nil)
)
