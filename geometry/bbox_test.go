package geometry

import "testing"

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{1, 1, 1},
		{-1, 2, 0.5},
		{3, -2, 4},
	}
	box, err := BoundingBox(points)
	if err != nil {
		t.Fatalf("BoundingBox: %v", err)
	}

	want := [8]Point{
		{-1, -2, 0.5},
		{3, -2, 0.5},
		{3, 2, 0.5},
		{-1, 2, 0.5},
		{-1, -2, 4},
		{3, -2, 4},
		{3, 2, 4},
		{-1, 2, 4},
	}
	if box != want {
		t.Errorf("BoundingBox =\n%v\nwant\n%v", box, want)
	}
}

func TestBoundingBoxSinglePoint(t *testing.T) {
	box, err := BoundingBox([]Point{{1, 2, 3}})
	if err != nil {
		t.Fatalf("BoundingBox: %v", err)
	}
	for _, corner := range box {
		if corner != (Point{1, 2, 3}) {
			t.Fatalf("degenerate box corner = %v", corner)
		}
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if _, err := BoundingBox(nil); err != ErrEmptyPointSet {
		t.Errorf("BoundingBox(nil) error = %v, want ErrEmptyPointSet", err)
	}
	if _, err := BoundingBoxXY(nil); err != ErrEmptyPointSet {
		t.Errorf("BoundingBoxXY(nil) error = %v, want ErrEmptyPointSet", err)
	}
}

func TestBoundingBoxXYIgnoresZ(t *testing.T) {
	points := []Point{
		{0, 0, -5},
		{2, 3, 10},
	}
	rect, err := BoundingBoxXY(points)
	if err != nil {
		t.Fatalf("BoundingBoxXY: %v", err)
	}
	want := [4]Point{
		{0, 0, 0},
		{2, 0, 0},
		{2, 3, 0},
		{0, 3, 0},
	}
	if rect != want {
		t.Errorf("BoundingBoxXY = %v, want %v", rect, want)
	}
}
