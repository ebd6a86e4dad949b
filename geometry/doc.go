// Package geometry provides geometric primitives, transformations, parametric
// shapes, and a lightweight mesh container.
//
// # Primitives
//
// Point and Vector are value types with method-per-operation arithmetic.
// Line, Polyline, Polygon, Plane, Frame and Circle build on them. Point
// carries the query methods of the toolkit: distances to lines and planes,
// membership tests for segments, triangles, circles and polygons.
//
// # Transformations
//
// Transformation is a 4x4 row-major matrix covering translation, scaling and
// rotation, with Multiply composition and TransformPoint/TransformVector
// application. Primitives, meshes and shapes implement Transformable.
//
// # Shapes
//
// A Shape is a parametric solid (box, sphere, cylinder, cone, torus, capsule,
// polyhedron) with a volume and a to-mesh conversion at a chosen resolution.
//
// # Plug-in hooks
//
// Triangle-mesh parametrisation (harmonic, LSCM) is pluggable: backends
// register via RegisterTrimeshSolver, typically from an init function so a
// blank import activates them:
//
//	import _ "github.com/Sam-Bouten/compas/numerical" // registers the gonum solver
package geometry

// Tolerance is the default geometric tolerance used by predicates that accept
// no explicit tolerance.
const Tolerance = 1e-6
