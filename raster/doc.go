// Package raster provides an image-based scene host.
//
// The Document renders scene objects into an in-memory RGBA image with an
// orthographic top view of the XY plane. Importing the package registers
// artists and object factories for points, lines, polylines, polygons,
// meshes and shapes, so a scene becomes drawable with a blank import:
//
//	import _ "github.com/Sam-Bouten/compas/raster"
//
//	doc := raster.NewDocument(800, 600)
//	sc := scene.NewScene(doc)
//	sc.Add(geometry.Pt(0, 0, 0), "origin")
//	sc.Draw()
//	doc.SavePNG("scene.png")
package raster
