// Package compas is a computational-geometry and CAD-visualization toolkit.
//
// # Overview
//
// compas provides data classes for colors and geometric primitives, numerical
// solvers backed by gonum, and a scene/artist/object abstraction that lets
// geometric entities be drawn and manipulated inside a host application.
//
// # Quick Start
//
//	import (
//	    "github.com/Sam-Bouten/compas/geometry"
//	    "github.com/Sam-Bouten/compas/raster"
//	    "github.com/Sam-Bouten/compas/scene"
//	)
//
//	doc := raster.NewDocument(800, 600)
//	sc := scene.NewScene(doc)
//
//	box := geometry.NewBox(2, 2, 2)
//	obj, _ := sc.Add(box, "box")
//
//	sc.Draw()
//	obj.Transform(geometry.Translation(geometry.Vec(1, 0, 0)))
//	obj.Synchronize()
//	doc.SavePNG("scene.png")
//
// # Architecture
//
// The library is organized into:
//   - Root package: data framework, logging, tolerances
//   - colors: color value type with format conversions
//   - geometry: primitives, transformations, shapes, mesh, trimesh hooks
//   - numerical: gonum-backed solvers (form finding, PCA, linear algebra)
//   - scene: type-keyed object/artist registry and lifecycle
//   - raster: image-based host implementation
//
// # Coordinate System
//
// Geometry lives in a right-handed XYZ world space with Z up. The raster host
// projects onto the XY plane with image coordinates (origin top-left, Y down).
package compas

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
