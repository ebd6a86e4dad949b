package geometry

import (
	"errors"
	"sync"
)

// ErrNoTrimeshSolver indicates that no parametrisation backend is registered.
// Callers should treat this as "feature unavailable", not as a failure of the
// mesh itself.
var ErrNoTrimeshSolver = errors.New("geometry: no trimesh solver registered")

// TrimeshSolver computes surface parametrisations of triangle meshes.
//
// Implementations are provided by solver packages. Users opt in via blank
// import:
//
//	import _ "github.com/Sam-Bouten/compas/numerical" // registers the gonum solver
type TrimeshSolver interface {
	// Name returns the solver name (e.g., "gonum").
	Name() string

	// Harmonic computes the harmonic parametrisation of a triangle mesh
	// within a fixed circular boundary. It returns the u, v parameters per
	// vertex.
	Harmonic(vertices []Point, faces [][3]int) ([][2]float64, error)

	// LSCM computes the least squares conformal map of a triangle mesh.
	// It returns the u, v parameters per vertex.
	LSCM(vertices []Point, faces [][3]int) ([][2]float64, error)
}

var (
	trimeshMu     sync.RWMutex
	trimeshSolver TrimeshSolver
)

// RegisterTrimeshSolver registers a parametrisation backend.
//
// Only one solver can be registered. Subsequent calls replace the previous
// one. Typical usage is an init function in the solver package.
func RegisterTrimeshSolver(s TrimeshSolver) {
	trimeshMu.Lock()
	defer trimeshMu.Unlock()
	trimeshSolver = s
}

// TrimeshHarmonic computes the harmonic parametrisation of a mesh with the
// registered solver. Faces are triangulated by fanning before dispatch.
// Returns ErrNoTrimeshSolver when no backend is registered.
func TrimeshHarmonic(m *Mesh) ([][2]float64, error) {
	trimeshMu.RLock()
	s := trimeshSolver
	trimeshMu.RUnlock()
	if s == nil {
		return nil, ErrNoTrimeshSolver
	}
	return s.Harmonic(m.Vertices, m.Triangles())
}

// TrimeshLSCM computes the least squares conformal map of a mesh with the
// registered solver. Faces are triangulated by fanning before dispatch.
// Returns ErrNoTrimeshSolver when no backend is registered.
func TrimeshLSCM(m *Mesh) ([][2]float64, error) {
	trimeshMu.RLock()
	s := trimeshSolver
	trimeshMu.RUnlock()
	if s == nil {
		return nil, ErrNoTrimeshSolver
	}
	return s.LSCM(m.Vertices, m.Triangles())
}
