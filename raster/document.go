package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/image/vector"

	"github.com/Sam-Bouten/compas"
	"github.com/Sam-Bouten/compas/colors"
	"github.com/Sam-Bouten/compas/geometry"
)

// drawable is one piece of host geometry: a deep copy of an item together
// with its style. Hosts own their geometry, so transforming a drawable
// never touches the item it came from.
type drawable struct {
	item   compas.Data
	color  colors.Color
	weight float64
}

// Document is an image-backed scene host. Objects are projected
// orthographically onto the XY plane, the world Z axis pointing out of the
// image.
//
// Document implements scene.Host. It is safe for concurrent use.
type Document struct {
	mu      sync.Mutex
	width   int
	height  int
	scale   float64
	center  geometry.Point
	bg      colors.Color
	objects map[uuid.UUID]*drawable
	order   []uuid.UUID
	img     *image.RGBA
	enabled bool
	dirty   bool
}

// NewDocument creates a document of the given pixel size with a white
// background, 50 pixels per world unit, and the world origin at the image
// center.
func NewDocument(width, height int) *Document {
	d := &Document{
		width:   width,
		height:  height,
		scale:   50,
		bg:      colors.White(),
		objects: map[uuid.UUID]*drawable{},
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		enabled: true,
	}
	d.render()
	return d
}

// SetView sets the number of pixels per world unit and the world point
// shown at the image center.
func (d *Document) SetView(scale float64, center geometry.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scale = scale
	d.center = center
}

// SetBackground sets the background color used on the next redraw.
func (d *Document) SetBackground(c colors.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bg = c
}

// EnableRedraw toggles whether Redraw renders. While disabled, redraw
// requests are remembered and honored by the next enabled Redraw.
func (d *Document) EnableRedraw(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = enabled
}

// Redraw renders all host geometry into the image.
func (d *Document) Redraw() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.enabled {
		d.dirty = true
		return
	}
	d.render()
	d.dirty = false
	compas.Logger().Debug("raster: document redrawn", "objects", len(d.order))
}

// Wait implements scene.Host. The document renders synchronously, so there
// is never pending work.
func (d *Document) Wait() {}

// Add inserts host geometry for an item and returns its identifier. The
// item must already be a copy owned by the document; artists deep-copy
// before calling Add.
func (d *Document) Add(item compas.Data, c colors.Color, weight float64) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	guid := uuid.New()
	d.objects[guid] = &drawable{item: item, color: c, weight: weight}
	d.order = append(d.order, guid)
	return guid
}

// Remove deletes the host geometry with the given identifier.
func (d *Document) Remove(guid uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.objects[guid]; !ok {
		return
	}
	delete(d.objects, guid)
	for i, g := range d.order {
		if g == guid {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of host geometry entries.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

// Item returns the host geometry with the given identifier.
func (d *Document) Item(guid uuid.UUID) (compas.Data, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	obj, ok := d.objects[guid]
	if !ok {
		return nil, false
	}
	return obj.item, true
}

// Transform applies a transformation to the host geometry with the given
// identifier.
func (d *Document) Transform(guid uuid.UUID, t geometry.Transformation) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	obj, ok := d.objects[guid]
	if !ok {
		return fmt.Errorf("raster: no host geometry %s", guid)
	}
	item, err := geometry.Transformed(obj.item, t)
	if err != nil {
		return err
	}
	obj.item = item
	return nil
}

// Image returns the rendered image. The document keeps ownership; callers
// must not modify it.
func (d *Document) Image() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.img
}

// SavePNG writes the rendered image to a PNG file.
func (d *Document) SavePNG(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, d.img)
}

// project maps a world point to image coordinates.
func (d *Document) project(p geometry.Point) (float32, float32) {
	x := float64(d.width)/2 + d.scale*(p.X-d.center.X)
	y := float64(d.height)/2 - d.scale*(p.Y-d.center.Y)
	return float32(x), float32(y)
}

// render repaints the background and rasterizes all drawables in insertion
// order. The caller holds the lock.
func (d *Document) render() {
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(d.bg.Color()), image.Point{}, draw.Src)
	for _, guid := range d.order {
		d.rasterize(d.objects[guid])
	}
}

func (d *Document) rasterize(obj *drawable) {
	r := vector.NewRasterizer(d.width, d.height)
	r.DrawOp = draw.Over

	switch item := obj.item.(type) {
	case geometry.Point:
		d.fillDot(r, item, obj.weight)
	case geometry.Line:
		d.strokeSegment(r, item.Start, item.End, obj.weight)
	case geometry.Polyline:
		for i := 1; i < len(item.Points); i++ {
			d.strokeSegment(r, item.Points[i-1], item.Points[i], obj.weight)
		}
	case geometry.Polygon:
		d.fillPolygon(r, item.Points)
	case *geometry.Mesh:
		for _, e := range item.Edges() {
			d.strokeSegment(r, item.Vertices[e[0]], item.Vertices[e[1]], obj.weight)
		}
	default:
		compas.Logger().Warn("raster: skipping undrawable host geometry", "dtype", obj.item.DataType())
		return
	}

	r.Draw(d.img, d.img.Bounds(), image.NewUniform(obj.color.Color()), image.Point{})
}

// fillDot draws a point as a filled circle of the given pixel radius.
func (d *Document) fillDot(r *vector.Rasterizer, p geometry.Point, radius float64) {
	if radius <= 0 {
		radius = 3
	}
	cx, cy := d.project(p)
	const segments = 24
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		x := cx + float32(radius*math.Cos(theta))
		y := cy + float32(radius*math.Sin(theta))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

// strokeSegment draws a segment as a filled quad of the given pixel width.
func (d *Document) strokeSegment(r *vector.Rasterizer, a, b geometry.Point, width float64) {
	if width <= 0 {
		width = 1
	}
	ax, ay := d.project(a)
	bx, by := d.project(b)
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * float32(width/2)
	ny := dx / length * float32(width/2)
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

// fillPolygon draws a closed polygon as a filled path.
func (d *Document) fillPolygon(r *vector.Rasterizer, points []geometry.Point) {
	if len(points) < 3 {
		return
	}
	for i, p := range points {
		x, y := d.project(p)
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}
