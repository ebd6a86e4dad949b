// Package numerical provides solvers and linear-algebra helpers for
// geometric computing, backed by gonum.
//
// The package covers the matrix constructors used in form finding
// (connectivity, laplacian, equilibrium), general helpers (rank, nullspace,
// RREF), the form-finding solvers FD (force density) and DR (dynamic
// relaxation), and principal component analysis.
//
// Importing the package (including a blank import) registers its gonum-based
// triangle-mesh parametrisation solver with the geometry package:
//
//	import _ "github.com/Sam-Bouten/compas/numerical"
//
//	uv, err := geometry.TrimeshHarmonic(mesh)
package numerical
