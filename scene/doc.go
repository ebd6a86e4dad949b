// Package scene connects data items to the host they are visualized in.
//
// Items (geometry primitives, shapes, meshes) do not know how to draw
// themselves. Instead, artists translate items into host geometry and
// objects track the host state of one item: its identifier, visibility,
// name, and pending transformations. Both artists and objects dispatch on
// the concrete item type through process-wide registries, so host packages
// activate themselves by registering factories from init:
//
//	import _ "github.com/Sam-Bouten/compas/raster" // registers image artists
//
// A Scene owns the objects added to one host and drives the draw, update,
// and clear lifecycle. Scenes can persist snapshots of their objects to a
// Session for undo and redo.
package scene
