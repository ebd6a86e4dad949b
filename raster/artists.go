package raster

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sam-Bouten/compas"
	"github.com/Sam-Bouten/compas/colors"
	"github.com/Sam-Bouten/compas/geometry"
	"github.com/Sam-Bouten/compas/scene"
)

// ErrWrongHost reports a raster artist drawing into a host that is not a
// raster document.
var ErrWrongHost = errors.New("raster: host is not a raster document")

func document(host scene.Host) (*Document, error) {
	doc, ok := host.(*Document)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrWrongHost, host)
	}
	return doc, nil
}

// PointArtist draws points as filled dots.
type PointArtist struct {
	Color colors.Color
	// Size is the dot radius in pixels.
	Size float64
}

func (a *PointArtist) Draw(host scene.Host, item compas.Data) (uuid.UUID, error) {
	doc, err := document(host)
	if err != nil {
		return uuid.Nil, err
	}
	p, ok := item.(geometry.Point)
	if !ok {
		return uuid.Nil, fmt.Errorf("raster: point artist got %T", item)
	}
	return doc.Add(p, a.Color, a.Size), nil
}

// LineArtist draws lines as stroked segments.
type LineArtist struct {
	Color colors.Color
	// Weight is the stroke width in pixels.
	Weight float64
}

func (a *LineArtist) Draw(host scene.Host, item compas.Data) (uuid.UUID, error) {
	doc, err := document(host)
	if err != nil {
		return uuid.Nil, err
	}
	l, ok := item.(geometry.Line)
	if !ok {
		return uuid.Nil, fmt.Errorf("raster: line artist got %T", item)
	}
	return doc.Add(l, a.Color, a.Weight), nil
}

// PolylineArtist draws polylines as stroked segment chains.
type PolylineArtist struct {
	Color  colors.Color
	Weight float64
}

func (a *PolylineArtist) Draw(host scene.Host, item compas.Data) (uuid.UUID, error) {
	doc, err := document(host)
	if err != nil {
		return uuid.Nil, err
	}
	pl, ok := item.(geometry.Polyline)
	if !ok {
		return uuid.Nil, fmt.Errorf("raster: polyline artist got %T", item)
	}
	copied := geometry.Polyline{Points: append([]geometry.Point(nil), pl.Points...)}
	return doc.Add(copied, a.Color, a.Weight), nil
}

// PolygonArtist draws polygons filled.
type PolygonArtist struct {
	Color colors.Color
}

func (a *PolygonArtist) Draw(host scene.Host, item compas.Data) (uuid.UUID, error) {
	doc, err := document(host)
	if err != nil {
		return uuid.Nil, err
	}
	pg, ok := item.(geometry.Polygon)
	if !ok {
		return uuid.Nil, fmt.Errorf("raster: polygon artist got %T", item)
	}
	copied := geometry.Polygon{Points: append([]geometry.Point(nil), pg.Points...)}
	return doc.Add(copied, a.Color, 0), nil
}

// MeshArtist draws meshes as wireframes.
type MeshArtist struct {
	Color  colors.Color
	Weight float64
}

func (a *MeshArtist) Draw(host scene.Host, item compas.Data) (uuid.UUID, error) {
	doc, err := document(host)
	if err != nil {
		return uuid.Nil, err
	}
	m, ok := item.(*geometry.Mesh)
	if !ok {
		return uuid.Nil, fmt.Errorf("raster: mesh artist got %T", item)
	}
	return doc.Add(m.Copy(), a.Color, a.Weight), nil
}

// ShapeArtist draws shapes as wireframes of their tessellation.
type ShapeArtist struct {
	Color  colors.Color
	Weight float64
	// U and V are the tessellation resolution passed to Shape.ToMesh.
	U, V int
}

func (a *ShapeArtist) Draw(host scene.Host, item compas.Data) (uuid.UUID, error) {
	doc, err := document(host)
	if err != nil {
		return uuid.Nil, err
	}
	s, ok := item.(geometry.Shape)
	if !ok {
		return uuid.Nil, fmt.Errorf("raster: shape artist got %T", item)
	}
	m, err := s.ToMesh(a.U, a.V)
	if err != nil {
		return uuid.Nil, fmt.Errorf("raster: tessellating %s: %w", item.DataType(), err)
	}
	return doc.Add(m, a.Color, a.Weight), nil
}

func init() {
	scene.RegisterArtist(geometry.Point{}, func() scene.Artist {
		return &PointArtist{Color: colors.Black(), Size: 3}
	})
	scene.RegisterArtist(geometry.Line{}, func() scene.Artist {
		return &LineArtist{Color: colors.Black(), Weight: 1}
	})
	scene.RegisterArtist(geometry.Polyline{}, func() scene.Artist {
		return &PolylineArtist{Color: colors.Black(), Weight: 1}
	})
	scene.RegisterArtist(geometry.Polygon{}, func() scene.Artist {
		return &PolygonArtist{Color: colors.Silver()}
	})
	scene.RegisterArtist(&geometry.Mesh{}, func() scene.Artist {
		return &MeshArtist{Color: colors.Black(), Weight: 1}
	})

	shapes := []compas.Data{
		&geometry.Box{},
		&geometry.Sphere{},
		&geometry.Cylinder{},
		&geometry.Cone{},
		&geometry.Torus{},
		&geometry.Capsule{},
		&geometry.Polyhedron{},
	}
	for _, s := range shapes {
		scene.RegisterArtist(s, func() scene.Artist {
			return &ShapeArtist{Color: colors.Black(), Weight: 1, U: 16, V: 16}
		})
	}

	drawables := append([]compas.Data{
		geometry.Point{},
		geometry.Line{},
		geometry.Polyline{},
		geometry.Polygon{},
		&geometry.Mesh{},
	}, shapes...)
	for _, proto := range drawables {
		scene.RegisterObject(proto, func(item compas.Data) (*scene.Object, error) {
			return scene.NewObject(item), nil
		})
	}
}
