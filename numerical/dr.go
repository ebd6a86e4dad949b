package numerical

import (
	"fmt"
	"math"

	"github.com/Sam-Bouten/compas/geometry"
)

// DROptions tune a dynamic relaxation run. The zero value selects sensible
// defaults.
type DROptions struct {
	// MaxIterations caps the number of integration steps. Default 1000.
	MaxIterations int
	// Tolerance is the residual norm below which the network counts as in
	// equilibrium. Default 1e-6.
	Tolerance float64
	// Callback, when set, is invoked after every step with the iteration
	// number and the current vertex positions.
	Callback func(iteration int, vertices []geometry.Point)
}

// DynamicRelaxation finds the equilibrium shape of a pin-jointed network by
// explicit time integration with kinetic damping: vertices move under the
// residual forces and all velocities are reset whenever the kinetic energy of
// the system peaks. q holds one force density per edge and loads one load
// vector per vertex (nil for an unloaded network).
//
// The method handles the same networks as ForceDensity but degrades
// gracefully on ill-conditioned systems where a direct solve fails.
func DynamicRelaxation(vertices []geometry.Point, edges [][2]int, fixed []int, q []float64, loads []geometry.Vector, opts DROptions) (*FDResult, error) {
	n := len(vertices)
	m := len(edges)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("numerical: dynamic relaxation needs vertices and edges")
	}
	if len(q) != m {
		return nil, fmt.Errorf("numerical: %d force densities for %d edges", len(q), m)
	}
	if loads != nil && len(loads) != n {
		return nil, fmt.Errorf("numerical: %d loads for %d vertices", len(loads), n)
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 1000
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-6
	}

	isFixed := make([]bool, n)
	for _, v := range fixed {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("numerical: fixed vertex %d out of range", v)
		}
		isFixed[v] = true
	}

	// Fictitious vertex masses from the incident force densities keep the
	// integration stable for dt = 1.
	mass := make([]float64, n)
	for e, edge := range edges {
		if edge[0] < 0 || edge[0] >= n || edge[1] < 0 || edge[1] >= n {
			return nil, fmt.Errorf("numerical: edge %d out of range", e)
		}
		w := math.Abs(q[e])
		mass[edge[0]] += w
		mass[edge[1]] += w
	}
	for v := range mass {
		if mass[v] == 0 {
			mass[v] = 1
		}
	}

	xyz := make([]geometry.Point, n)
	copy(xyz, vertices)
	vel := make([]geometry.Vector, n)
	res := make([]geometry.Vector, n)

	residuals := func() float64 {
		for v := range res {
			if loads != nil {
				res[v] = loads[v]
			} else {
				res[v] = geometry.Vector{}
			}
		}
		for e, edge := range edges {
			f := xyz[edge[1]].Sub(xyz[edge[0]]).Mul(q[e])
			res[edge[0]] = res[edge[0]].Add(f)
			res[edge[1]] = res[edge[1]].Sub(f)
		}
		norm := 0.0
		for v := range res {
			if isFixed[v] {
				continue
			}
			norm += res[v].LengthSq()
		}
		return math.Sqrt(norm)
	}

	const dt = 1.0
	ekPrev := 0.0
	for it := 0; it < opts.MaxIterations; it++ {
		if residuals() < opts.Tolerance {
			break
		}
		ek := 0.0
		for v := 0; v < n; v++ {
			if isFixed[v] {
				continue
			}
			vel[v] = vel[v].Add(res[v].Mul(dt / mass[v]))
			ek += mass[v] * vel[v].LengthSq()
		}
		if ek < ekPrev {
			// Kinetic energy peaked: drop all velocities and restart the
			// integration from the current geometry.
			for v := range vel {
				vel[v] = geometry.Vector{}
			}
			ekPrev = 0
			continue
		}
		ekPrev = ek
		for v := 0; v < n; v++ {
			if isFixed[v] {
				continue
			}
			xyz[v] = xyz[v].Add(vel[v].Mul(dt))
		}
		if opts.Callback != nil {
			opts.Callback(it, xyz)
		}
	}

	residuals()
	out := &FDResult{
		Vertices:  xyz,
		Forces:    make([]float64, m),
		Lengths:   make([]float64, m),
		Residuals: res,
	}
	for e, edge := range edges {
		l := xyz[edge[1]].Sub(xyz[edge[0]]).Length()
		out.Lengths[e] = l
		out.Forces[e] = q[e] * l
	}
	return out, nil
}
