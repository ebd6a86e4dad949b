package geometry

import "errors"

// ErrEmptyPointSet indicates a bounding box was requested for no points.
var ErrEmptyPointSet = errors.New("geometry: bounding box of empty point set")

// BoundingBox computes the axis-aligned minimum bounding box of a set of
// points. It returns the XYZ coordinates of 8 points defining a box:
// the four corners of the bottom face counter-clockwise starting at
// (min, min, min), then the top face in the same order.
func BoundingBox(points []Point) ([8]Point, error) {
	var box [8]Point
	if len(points) == 0 {
		return box, ErrEmptyPointSet
	}
	minP := points[0]
	maxP := points[0]
	for _, p := range points[1:] {
		if p.X < minP.X {
			minP.X = p.X
		}
		if p.X > maxP.X {
			maxP.X = p.X
		}
		if p.Y < minP.Y {
			minP.Y = p.Y
		}
		if p.Y > maxP.Y {
			maxP.Y = p.Y
		}
		if p.Z < minP.Z {
			minP.Z = p.Z
		}
		if p.Z > maxP.Z {
			maxP.Z = p.Z
		}
	}
	box = [8]Point{
		{minP.X, minP.Y, minP.Z},
		{maxP.X, minP.Y, minP.Z},
		{maxP.X, maxP.Y, minP.Z},
		{minP.X, maxP.Y, minP.Z},
		{minP.X, minP.Y, maxP.Z},
		{maxP.X, minP.Y, maxP.Z},
		{maxP.X, maxP.Y, maxP.Z},
		{minP.X, maxP.Y, maxP.Z},
	}
	return box, nil
}

// BoundingBoxXY computes the axis-aligned minimum bounding box of a set of
// points in the XY plane. The Z components of the points are ignored; the
// returned rectangle corners have Z = 0 and run counter-clockwise from
// (min, min).
func BoundingBoxXY(points []Point) ([4]Point, error) {
	var rect [4]Point
	if len(points) == 0 {
		return rect, ErrEmptyPointSet
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	rect = [4]Point{
		{minX, minY, 0},
		{maxX, minY, 0},
		{maxX, maxY, 0},
		{minX, maxY, 0},
	}
	return rect, nil
}
