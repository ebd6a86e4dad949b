package numerical

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Sam-Bouten/compas/geometry"
)

// FDResult holds the outcome of a force-density computation.
type FDResult struct {
	// Vertices are the equilibrium positions, fixed vertices unchanged.
	Vertices []geometry.Point
	// Forces are the axial edge forces, one per edge. Positive is tension.
	Forces []float64
	// Lengths are the equilibrium edge lengths.
	Lengths []float64
	// Residuals are the unbalanced forces per vertex. At free vertices these
	// vanish up to solver precision; at fixed vertices they are the reactions.
	Residuals []geometry.Vector
}

// ForceDensity computes the equilibrium shape of a pin-jointed network with
// prescribed force densities. The linear system
//
//	Ciᵀ Q Ci x = p − Ciᵀ Q Cf xf
//
// is solved per coordinate for the free vertices, with Q the diagonal matrix
// of force densities and Ci, Cf the free and fixed columns of the
// connectivity matrix.
//
// q holds one force density per edge, fixed lists the anchored vertex
// indices, and loads holds one load vector per vertex (nil for an unloaded
// network).
func ForceDensity(vertices []geometry.Point, edges [][2]int, fixed []int, q []float64, loads []geometry.Vector) (*FDResult, error) {
	n := len(vertices)
	m := len(edges)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("numerical: force density needs vertices and edges")
	}
	if len(q) != m {
		return nil, fmt.Errorf("numerical: %d force densities for %d edges", len(q), m)
	}
	if loads != nil && len(loads) != n {
		return nil, fmt.Errorf("numerical: %d loads for %d vertices", len(loads), n)
	}

	isFixed := make(map[int]bool, len(fixed))
	for _, v := range fixed {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("numerical: fixed vertex %d out of range", v)
		}
		isFixed[v] = true
	}
	free := make([]int, 0, n-len(isFixed))
	for v := 0; v < n; v++ {
		if !isFixed[v] {
			free = append(free, v)
		}
	}
	if len(free) == 0 {
		return nil, fmt.Errorf("numerical: no free vertices")
	}

	c, err := ConnectivityMatrix(edges, n)
	if err != nil {
		return nil, err
	}
	ci := columns(c, free)
	cf := columns(c, fixed)

	qd := mat.NewDiagDense(m, append([]float64(nil), q...))

	var ciq mat.Dense
	ciq.Mul(ci.T(), qd)
	var a mat.Dense
	a.Mul(&ciq, ci)

	xyz := mat.NewDense(n, 3, nil)
	for v, p := range vertices {
		xyz.SetRow(v, []float64{p.X, p.Y, p.Z})
	}
	xf := mat.NewDense(len(fixed), 3, nil)
	for i, v := range fixed {
		xf.SetRow(i, []float64{vertices[v].X, vertices[v].Y, vertices[v].Z})
	}

	p := mat.NewDense(len(free), 3, nil)
	if loads != nil {
		for i, v := range free {
			p.SetRow(i, []float64{loads[v].X, loads[v].Y, loads[v].Z})
		}
	}
	if len(fixed) > 0 {
		var cqf mat.Dense
		cqf.Mul(&ciq, cf)
		var shift mat.Dense
		shift.Mul(&cqf, xf)
		p.Sub(p, &shift)
	}

	var xi mat.Dense
	if err := xi.Solve(&a, p); err != nil {
		return nil, fmt.Errorf("numerical: force density solve: %w", err)
	}
	for i, v := range free {
		xyz.SetRow(v, xi.RawRowView(i))
	}

	out := &FDResult{
		Vertices:  make([]geometry.Point, n),
		Forces:    make([]float64, m),
		Lengths:   make([]float64, m),
		Residuals: make([]geometry.Vector, n),
	}
	for v := 0; v < n; v++ {
		row := xyz.RawRowView(v)
		out.Vertices[v] = geometry.Pt(row[0], row[1], row[2])
	}
	for e, edge := range edges {
		l := out.Vertices[edge[1]].Sub(out.Vertices[edge[0]]).Length()
		out.Lengths[e] = l
		out.Forces[e] = q[e] * l
	}

	// r = p − Cᵀ Q C x, evaluated over all vertices.
	var cq mat.Dense
	cq.Mul(c.T(), qd)
	var cqc mat.Dense
	cqc.Mul(&cq, c)
	var internal mat.Dense
	internal.Mul(&cqc, xyz)
	for v := 0; v < n; v++ {
		var load geometry.Vector
		if loads != nil {
			load = loads[v]
		}
		row := internal.RawRowView(v)
		out.Residuals[v] = load.Sub(geometry.Vec(row[0], row[1], row[2]))
	}
	return out, nil
}

// columns extracts a column subset of a matrix in the given order.
func columns(a *mat.Dense, idx []int) *mat.Dense {
	r, _ := a.Dims()
	out := mat.NewDense(r, max(len(idx), 1), nil)
	for j, col := range idx {
		for i := 0; i < r; i++ {
			out.Set(i, j, a.At(i, col))
		}
	}
	return out
}
