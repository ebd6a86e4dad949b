package numerical

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Sam-Bouten/compas/geometry"
)

// trimeshSolver implements geometry.TrimeshSolver on top of gonum dense
// solves. It handles disk-topology triangle meshes of moderate size.
type trimeshSolver struct{}

func init() {
	geometry.RegisterTrimeshSolver(trimeshSolver{})
}

func (trimeshSolver) Name() string { return "gonum" }

// Harmonic maps the mesh into the unit disk: the boundary loop is pinned to
// the unit circle by arc length and the interior vertices solve the
// cotangent Laplace equation.
func (trimeshSolver) Harmonic(vertices []geometry.Point, faces [][3]int) ([][2]float64, error) {
	n := len(vertices)
	loop, err := boundaryLoop(faces, n)
	if err != nil {
		return nil, err
	}

	uv := make([][2]float64, n)
	onBoundary := make([]bool, n)
	total := 0.0
	for i, v := range loop {
		onBoundary[v] = true
		total += vertices[v].Sub(vertices[loop[(i+1)%len(loop)]]).Length()
	}
	if total == 0 {
		return nil, fmt.Errorf("numerical: degenerate boundary loop")
	}
	arc := 0.0
	for i, v := range loop {
		theta := 2 * math.Pi * arc / total
		uv[v] = [2]float64{math.Cos(theta), math.Sin(theta)}
		arc += vertices[v].Sub(vertices[loop[(i+1)%len(loop)]]).Length()
	}

	interior := make([]int, 0, n)
	index := make([]int, n)
	for v := 0; v < n; v++ {
		if !onBoundary[v] {
			index[v] = len(interior)
			interior = append(interior, v)
		}
	}
	if len(interior) == 0 {
		return uv, nil
	}

	w, err := cotangentWeights(vertices, faces)
	if err != nil {
		return nil, err
	}

	ni := len(interior)
	a := mat.NewDense(ni, ni, nil)
	b := mat.NewDense(ni, 2, nil)
	for edge, wij := range w {
		i, j := edge[0], edge[1]
		for _, pair := range [2][2]int{{i, j}, {j, i}} {
			p, q := pair[0], pair[1]
			if onBoundary[p] {
				continue
			}
			ip := index[p]
			a.Set(ip, ip, a.At(ip, ip)+wij)
			if onBoundary[q] {
				b.Set(ip, 0, b.At(ip, 0)+wij*uv[q][0])
				b.Set(ip, 1, b.At(ip, 1)+wij*uv[q][1])
			} else {
				iq := index[q]
				a.Set(ip, iq, a.At(ip, iq)-wij)
			}
		}
	}

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, fmt.Errorf("numerical: harmonic solve: %w", err)
	}
	for i, v := range interior {
		uv[v] = [2]float64{x.At(i, 0), x.At(i, 1)}
	}
	return uv, nil
}

// LSCM computes a least squares conformal map. Two boundary vertices are
// pinned at (0,0) and (1,0) and the remaining coordinates minimise the
// conformal energy of every triangle.
func (trimeshSolver) LSCM(vertices []geometry.Point, faces [][3]int) ([][2]float64, error) {
	n := len(vertices)
	loop, err := boundaryLoop(faces, n)
	if err != nil {
		return nil, err
	}

	// Pin the two boundary vertices farthest apart to fix translation,
	// rotation and scale.
	pin0, pin1 := loop[0], loop[len(loop)/2]
	best := vertices[pin0].Sub(vertices[pin1]).LengthSq()
	for i := 0; i < len(loop); i++ {
		for j := i + 1; j < len(loop); j++ {
			d := vertices[loop[i]].Sub(vertices[loop[j]]).LengthSq()
			if d > best {
				best = d
				pin0, pin1 = loop[i], loop[j]
			}
		}
	}

	pinned := map[int][2]float64{
		pin0: {0, 0},
		pin1: {1, 0},
	}
	free := make([]int, 0, n-2)
	index := make([]int, n)
	for v := 0; v < n; v++ {
		if _, ok := pinned[v]; ok {
			index[v] = -1
			continue
		}
		index[v] = len(free)
		free = append(free, v)
	}

	// Two rows per triangle, unknowns ordered u then v per free vertex.
	nf := len(free)
	a := mat.NewDense(2*len(faces), 2*nf, nil)
	rhs := mat.NewVecDense(2*len(faces), nil)
	for f, tri := range faces {
		wr, wi, err := conformalCoefficients(vertices, tri)
		if err != nil {
			return nil, fmt.Errorf("numerical: face %d: %w", f, err)
		}
		for c := 0; c < 3; c++ {
			v := tri[c]
			if p, ok := pinned[v]; ok {
				rhs.SetVec(2*f, rhs.AtVec(2*f)-(wr[c]*p[0]-wi[c]*p[1]))
				rhs.SetVec(2*f+1, rhs.AtVec(2*f+1)-(wi[c]*p[0]+wr[c]*p[1]))
				continue
			}
			iu, iv := 2*index[v], 2*index[v]+1
			a.Set(2*f, iu, wr[c])
			a.Set(2*f, iv, -wi[c])
			a.Set(2*f+1, iu, wi[c])
			a.Set(2*f+1, iv, wr[c])
		}
	}

	var x mat.VecDense
	if err := x.SolveVec(a, rhs); err != nil {
		return nil, fmt.Errorf("numerical: LSCM solve: %w", err)
	}

	uv := make([][2]float64, n)
	for v, p := range pinned {
		uv[v] = p
	}
	for i, v := range free {
		uv[v] = [2]float64{x.AtVec(2 * i), x.AtVec(2*i + 1)}
	}
	return uv, nil
}

// conformalCoefficients returns the per-corner coefficients of the conformal
// energy of a triangle, split into real and imaginary parts. The triangle is
// flattened into its own plane first.
func conformalCoefficients(vertices []geometry.Point, tri [3]int) (wr, wi [3]float64, err error) {
	p0, p1, p2 := vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	x1 := e1.Length()
	if x1 == 0 {
		err = fmt.Errorf("degenerate triangle")
		return
	}
	u := e1.Mul(1 / x1)
	x2 := e2.Dot(u)
	y2 := e1.Cross(e2).Length() / x1
	area := x1 * y2 / 2
	if area < 1e-12 {
		err = fmt.Errorf("degenerate triangle")
		return
	}
	// Local coords: p0 = (0,0), p1 = (x1,0), p2 = (x2,y2). The coefficient of
	// corner j is the difference of the two opposite corners, scaled by
	// sqrt(2A).
	s := math.Sqrt(2 * area)
	wr = [3]float64{(x2 - x1) / s, -x2 / s, x1 / s}
	wi = [3]float64{y2 / s, -y2 / s, 0}
	return
}

// cotangentWeights accumulates the cotangent Laplacian weight of every
// undirected edge, keyed smaller vertex first.
func cotangentWeights(vertices []geometry.Point, faces [][3]int) (map[[2]int]float64, error) {
	w := make(map[[2]int]float64, 3*len(faces))
	for f, tri := range faces {
		for c := 0; c < 3; c++ {
			i, j, k := tri[c], tri[(c+1)%3], tri[(c+2)%3]
			a := vertices[i].Sub(vertices[k])
			b := vertices[j].Sub(vertices[k])
			cross := a.Cross(b).Length()
			if cross < 1e-12 {
				return nil, fmt.Errorf("numerical: degenerate triangle %d", f)
			}
			cot := a.Dot(b) / cross
			key := [2]int{i, j}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			w[key] += cot / 2
		}
	}
	return w, nil
}

// boundaryLoop extracts the single ordered boundary loop of a disk-topology
// triangle mesh. A boundary half-edge is one whose reverse appears in no
// face.
func boundaryLoop(faces [][3]int, n int) ([]int, error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("numerical: mesh has no faces")
	}
	directed := make(map[[2]int]bool, 3*len(faces))
	for f, tri := range faces {
		for c := 0; c < 3; c++ {
			u, v := tri[c], tri[(c+1)%3]
			if u < 0 || u >= n || v < 0 || v >= n {
				return nil, fmt.Errorf("numerical: face %d references vertex out of range", f)
			}
			directed[[2]int{u, v}] = true
		}
	}
	next := make(map[int]int)
	for e := range directed {
		if !directed[[2]int{e[1], e[0]}] {
			next[e[0]] = e[1]
		}
	}
	if len(next) == 0 {
		return nil, fmt.Errorf("numerical: mesh is closed, parametrisation needs a boundary")
	}

	start := -1
	for v := range next {
		if start < 0 || v < start {
			start = v
		}
	}
	loop := make([]int, 0, len(next))
	for v := start; ; {
		loop = append(loop, v)
		w, ok := next[v]
		if !ok {
			return nil, fmt.Errorf("numerical: boundary is not a closed loop")
		}
		if w == start {
			break
		}
		if len(loop) > len(next) {
			return nil, fmt.Errorf("numerical: boundary is not a single loop")
		}
		v = w
	}
	if len(loop) != len(next) {
		return nil, fmt.Errorf("numerical: mesh boundary has more than one loop")
	}
	return loop, nil
}
