package geometry

import (
	"encoding/json"

	"github.com/Sam-Bouten/compas"
)

// Box is a rectangular solid centered on the origin of its frame, with its
// sides aligned to the frame axes.
type Box struct {
	Frame Frame   `json:"frame"`
	XSize float64 `json:"xsize"`
	YSize float64 `json:"ysize"`
	ZSize float64 `json:"zsize"`
}

// NewBox creates an axis-aligned box centered on the world origin.
func NewBox(xsize, ysize, zsize float64) *Box {
	return &Box{Frame: WorldFrame(), XSize: xsize, YSize: ysize, ZSize: zsize}
}

// DataType implements compas.Data.
func (b *Box) DataType() string { return "geometry/Box" }

// Volume returns the volume of the box.
func (b *Box) Volume() float64 {
	return b.XSize * b.YSize * b.ZSize
}

// Corners returns the 8 corners of the box: the bottom face counter-clockwise
// starting at (-x, -y, -z) in frame coordinates, then the top face in the
// same order.
func (b *Box) Corners() [8]Point {
	hx, hy, hz := b.XSize/2, b.YSize/2, b.ZSize/2
	return [8]Point{
		b.Frame.ToWorld(-hx, -hy, -hz),
		b.Frame.ToWorld(hx, -hy, -hz),
		b.Frame.ToWorld(hx, hy, -hz),
		b.Frame.ToWorld(-hx, hy, -hz),
		b.Frame.ToWorld(-hx, -hy, hz),
		b.Frame.ToWorld(hx, -hy, hz),
		b.Frame.ToWorld(hx, hy, hz),
		b.Frame.ToWorld(-hx, hy, hz),
	}
}

// ToMesh converts the box to a quad mesh. The resolution parameters are
// ignored.
func (b *Box) ToMesh(u, v int) (*Mesh, error) {
	corners := b.Corners()
	vertices := corners[:]
	faces := [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
	return NewMesh(vertices, faces)
}

// ApplyTransformation transforms the box frame in place.
func (b *Box) ApplyTransformation(t Transformation) {
	b.Frame.ApplyTransformation(t)
}

func init() {
	compas.RegisterData((&Box{}).DataType(), func(raw []byte) (compas.Data, error) {
		var b Box
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return &b, nil
	})
}
