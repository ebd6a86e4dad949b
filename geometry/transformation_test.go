package geometry

import (
	"errors"
	"math"
	"testing"
)

func transformsClose(a, b Transformation, eps float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(a.M[i][j]-b.M[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func TestTransformationConstructors(t *testing.T) {
	tests := []struct {
		name string
		x    Transformation
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(1, 2, 3), Pt(1, 2, 3)},
		{"translation", Translation(Vec(1, 2, 3)), Pt(0, 0, 0), Pt(1, 2, 3)},
		{"scaling", Scaling(2, 3, 4), Pt(1, 1, 1), Pt(2, 3, 4)},
		{"rotation z quarter", RotationZ(math.Pi / 2), Pt(1, 0, 0), Pt(0, 1, 0)},
		{"rotation x quarter", RotationX(math.Pi / 2), Pt(0, 1, 0), Pt(0, 0, 1)},
		{"rotation y quarter", RotationY(math.Pi / 2), Pt(0, 0, 1), Pt(1, 0, 0)},
		{"axis-angle matches z", Rotation(Vec(0, 0, 1), math.Pi/2), Pt(1, 0, 0), Pt(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.x.TransformPoint(tt.p)
			if !pointsClose(got, tt.want, epsilon) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMultiplyOrder(t *testing.T) {
	// t * other applies other first.
	move := Translation(Vec(1, 0, 0))
	spin := RotationZ(math.Pi / 2)

	got := spin.Multiply(move).TransformPoint(Pt(0, 0, 0))
	if !pointsClose(got, Pt(0, 1, 0), epsilon) {
		t.Errorf("rotate(move(p)) = %v, want (0, 1, 0)", got)
	}

	got = move.Multiply(spin).TransformPoint(Pt(0, 0, 0))
	if !pointsClose(got, Pt(1, 0, 0), epsilon) {
		t.Errorf("move(rotate(p)) = %v, want (1, 0, 0)", got)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	x := Translation(Vec(5, 5, 5))
	if got := x.TransformVector(Vec(1, 2, 3)); got != Vec(1, 2, 3) {
		t.Errorf("TransformVector = %v, want unchanged", got)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		x    Transformation
	}{
		{"translation", Translation(Vec(1, -2, 3))},
		{"scaling", Scaling(2, 4, 0.5)},
		{"rotation", Rotation(Vec(1, 1, 0), 0.7)},
		{"composite", Translation(Vec(1, 2, 3)).Multiply(RotationZ(0.3)).Multiply(Scaling(2, 2, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.x.Invert()
			if !transformsClose(tt.x.Multiply(inv), Identity(), 1e-9) {
				t.Errorf("x * x^-1 != identity:\n%v", tt.x.Multiply(inv))
			}
		})
	}
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	singular := Scaling(1, 1, 0)
	if got := singular.Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert = %v, want identity", got)
	}
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		x    Transformation
		want float64
	}{
		{"identity", Identity(), 1},
		{"scaling", Scaling(2, 3, 4), 24},
		{"rotation", RotationZ(1.2), 1},
		{"flattening", Scaling(1, 1, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Determinant(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Determinant = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyTransformation(t *testing.T) {
	move := Translation(Vec(1, 0, 0))

	p := Pt(0, 0, 0)
	p.ApplyTransformation(move)
	if p != Pt(1, 0, 0) {
		t.Errorf("point = %v, want (1, 0, 0)", p)
	}

	l := Line{Start: Pt(0, 0, 0), End: Pt(0, 1, 0)}
	l.ApplyTransformation(move)
	if l.Start != Pt(1, 0, 0) || l.End != Pt(1, 1, 0) {
		t.Errorf("line = %v", l)
	}

	c := Circle{Plane: WorldXY(), Radius: 2}
	c.ApplyTransformation(Scaling(3, 3, 3))
	if math.Abs(c.Radius-6) > epsilon {
		t.Errorf("scaled circle radius = %v, want 6", c.Radius)
	}
}

func TestTransformed(t *testing.T) {
	move := Translation(Vec(1, 0, 0))

	item, err := Transformed(Pt(0, 0, 0), move)
	if err != nil {
		t.Fatalf("Transformed: %v", err)
	}
	if item.(Point) != Pt(1, 0, 0) {
		t.Errorf("point = %v, want (1, 0, 0)", item)
	}

	m, err := NewMesh([]Point{Pt(0, 0, 0)}, nil)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	item, err = Transformed(m, move)
	if err != nil {
		t.Fatalf("Transformed: %v", err)
	}
	if item.(*Mesh) != m {
		t.Error("pointer item was not transformed in place")
	}
	if m.Vertices[0] != Pt(1, 0, 0) {
		t.Errorf("mesh vertex = %v, want (1, 0, 0)", m.Vertices[0])
	}

	if _, err := Transformed(notTransformable{}, move); !errors.Is(err, ErrNotTransformable) {
		t.Errorf("err = %v, want ErrNotTransformable", err)
	}
}

type notTransformable struct{}

func (notTransformable) DataType() string { return "test/NotTransformable" }

func TestTransformedCopiesSliceBackedValues(t *testing.T) {
	// Two scene objects may hold the same polyline value. Transforming one
	// must not write through the shared backing array into the other.
	pl := Polyline{Points: []Point{Pt(0, 0, 0), Pt(1, 0, 0)}}

	item, err := Transformed(pl, Translation(Vec(0, 1, 0)))
	if err != nil {
		t.Fatalf("Transformed: %v", err)
	}
	got := item.(Polyline)
	if got.Points[0] != Pt(0, 1, 0) || got.Points[1] != Pt(1, 1, 0) {
		t.Errorf("transformed polyline = %v", got.Points)
	}
	if pl.Points[0] != Pt(0, 0, 0) || pl.Points[1] != Pt(1, 0, 0) {
		t.Errorf("original polyline was mutated: %v", pl.Points)
	}

	pg := Polygon{Points: []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0)}}
	item, err = Transformed(pg, Translation(Vec(0, 0, 1)))
	if err != nil {
		t.Fatalf("Transformed: %v", err)
	}
	if pg.Points[0].Z != 0 {
		t.Errorf("original polygon was mutated: %v", pg.Points)
	}
	if item.(Polygon).Points[0].Z != 1 {
		t.Errorf("transformed polygon = %v", item.(Polygon).Points)
	}
}
