package geometry

import (
	"encoding/json"

	"github.com/Sam-Bouten/compas"
)

// Line is a segment between two points. Queries that treat it as an infinite
// line use the direction from Start to End.
type Line struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// DataType implements compas.Data.
func (l Line) DataType() string { return "geometry/Line" }

// Direction returns the vector from Start to End.
func (l Line) Direction() Vector {
	return l.End.Sub(l.Start)
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.Direction().Length()
}

// Midpoint returns the midpoint of the segment.
func (l Line) Midpoint() Point {
	return l.Start.Lerp(l.End, 0.5)
}

// PointAt returns the point at parameter t along the segment.
// t=0 is Start, t=1 is End; values outside [0, 1] extrapolate.
func (l Line) PointAt(t float64) Point {
	return l.Start.Lerp(l.End, t)
}

// ClosestPoint returns the point on the segment closest to p.
func (l Line) ClosestPoint(p Point) Point {
	d := l.Direction()
	lenSq := d.LengthSq()
	if lenSq == 0 {
		return l.Start
	}
	t := p.Sub(l.Start).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return l.PointAt(t)
}

// Polyline is an ordered sequence of points connected by segments.
type Polyline struct {
	Points []Point `json:"points"`
}

// DataType implements compas.Data.
func (pl Polyline) DataType() string { return "geometry/Polyline" }

// Length returns the total length of all segments.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 0; i+1 < len(pl.Points); i++ {
		total += pl.Points[i+1].Sub(pl.Points[i]).Length()
	}
	return total
}

// IsClosed reports whether first and last point coincide within tol.
func (pl Polyline) IsClosed(tol float64) bool {
	n := len(pl.Points)
	if n < 2 {
		return false
	}
	return pl.Points[0].DistanceToPoint(pl.Points[n-1]) <= tol
}

func init() {
	compas.RegisterData(Line{}.DataType(), func(b []byte) (compas.Data, error) {
		var l Line
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, err
		}
		return l, nil
	})
	compas.RegisterData(Polyline{}.DataType(), func(b []byte) (compas.Data, error) {
		var pl Polyline
		if err := json.Unmarshal(b, &pl); err != nil {
			return nil, err
		}
		return pl, nil
	})
}
