package numerical

import (
	"math"
	"testing"

	"github.com/Sam-Bouten/compas/geometry"
)

func TestForceDensity(t *testing.T) {
	vertices, edges := square()
	fixed := []int{0, 1, 2, 3}
	q := []float64{1, 1, 1, 1}
	loads := make([]geometry.Vector, 5)
	loads[4] = geometry.Vec(0, 0, -1)

	res, err := ForceDensity(vertices, edges, fixed, q, loads)
	if err != nil {
		t.Fatalf("ForceDensity: %v", err)
	}

	// The loaded center hangs below the centroid of the corners by p/4q.
	center := res.Vertices[4]
	want := geometry.Pt(0.5, 0.5, -0.25)
	if center.Sub(want).Length() > epsilon {
		t.Errorf("center = %+v, want %+v", center, want)
	}
	for _, v := range fixed {
		if res.Vertices[v].Sub(vertices[v]).Length() > epsilon {
			t.Errorf("fixed vertex %d moved to %+v", v, res.Vertices[v])
		}
	}

	// Residuals vanish at the free vertex and carry the reactions at the
	// supports.
	if res.Residuals[4].Length() > 1e-6 {
		t.Errorf("free residual = %+v, want zero", res.Residuals[4])
	}
	var rz float64
	for _, v := range fixed {
		rz += res.Residuals[v].Z
	}
	if !approx(rz, -1) {
		t.Errorf("support residual sum = %v, want -1", rz)
	}

	for e := range edges {
		if !approx(res.Forces[e], res.Lengths[e]) {
			t.Errorf("edge %d: force %v != q * length %v", e, res.Forces[e], res.Lengths[e])
		}
	}
}

func TestForceDensityErrors(t *testing.T) {
	vertices, edges := square()
	if _, err := ForceDensity(vertices, edges, []int{0}, []float64{1}, nil); err == nil {
		t.Error("expected error for mismatched force densities")
	}
	if _, err := ForceDensity(vertices, edges, []int{0, 1, 2, 3, 4}, []float64{1, 1, 1, 1}, nil); err == nil {
		t.Error("expected error for a fully fixed network")
	}
	if _, err := ForceDensity(vertices, edges, []int{7}, []float64{1, 1, 1, 1}, nil); err == nil {
		t.Error("expected range error for fixed vertex")
	}
}

func TestDynamicRelaxation(t *testing.T) {
	vertices, edges := square()
	// Displace the center: relaxation must pull it back to the centroid of
	// the corners.
	vertices[4] = geometry.Pt(0.2, 0.3, 0.5)
	fixed := []int{0, 1, 2, 3}
	q := []float64{1, 1, 1, 1}

	res, err := DynamicRelaxation(vertices, edges, fixed, q, nil, DROptions{})
	if err != nil {
		t.Fatalf("DynamicRelaxation: %v", err)
	}
	want := geometry.Pt(0.5, 0.5, 0)
	if d := res.Vertices[4].Sub(want).Length(); d > 1e-4 {
		t.Errorf("center = %+v, want %+v (off by %v)", res.Vertices[4], want, d)
	}
}

func TestDynamicRelaxationMatchesForceDensity(t *testing.T) {
	vertices, edges := square()
	fixed := []int{0, 1, 2, 3}
	q := []float64{1, 1, 1, 1}
	loads := make([]geometry.Vector, 5)
	loads[4] = geometry.Vec(0, 0, -1)

	fd, err := ForceDensity(vertices, edges, fixed, q, loads)
	if err != nil {
		t.Fatalf("ForceDensity: %v", err)
	}
	dr, err := DynamicRelaxation(vertices, edges, fixed, q, loads, DROptions{MaxIterations: 5000})
	if err != nil {
		t.Fatalf("DynamicRelaxation: %v", err)
	}
	if d := dr.Vertices[4].Sub(fd.Vertices[4]).Length(); d > 1e-4 {
		t.Errorf("methods disagree by %v: dr %+v, fd %+v", d, dr.Vertices[4], fd.Vertices[4])
	}
}

func TestDynamicRelaxationCallback(t *testing.T) {
	vertices, edges := square()
	vertices[4] = geometry.Pt(0.1, 0.1, 1)
	var steps int
	_, err := DynamicRelaxation(vertices, edges, []int{0, 1, 2, 3}, []float64{1, 1, 1, 1}, nil, DROptions{
		Callback: func(it int, xyz []geometry.Point) {
			steps++
			if len(xyz) != 5 {
				t.Fatalf("callback got %d vertices", len(xyz))
			}
			if math.IsNaN(xyz[4].Z) {
				t.Fatal("integration produced NaN")
			}
		},
	})
	if err != nil {
		t.Fatalf("DynamicRelaxation: %v", err)
	}
	if steps == 0 {
		t.Error("callback never invoked")
	}
}
