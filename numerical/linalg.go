package numerical

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular indicates a linear system without a unique solution.
var ErrSingular = errors.New("numerical: matrix is singular")

// defaultTol is the relative tolerance used to decide the numeric rank.
const defaultTol = 1e-12

// Rank returns the numeric rank of a matrix, counting singular values above
// tol times the largest singular value.
func Rank(a mat.Matrix, tol float64) int {
	if tol <= 0 {
		tol = defaultTol
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return 0
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0
	}
	cutoff := tol * values[0]
	rank := 0
	for _, s := range values {
		if s > cutoff {
			rank++
		}
	}
	return rank
}

// Nullspace returns an orthonormal basis of the right null space of a
// matrix, one column per basis vector. A matrix of full column rank has an
// empty null space and yields nil.
func Nullspace(a mat.Matrix, tol float64) (*mat.Dense, error) {
	if tol <= 0 {
		tol = defaultTol
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFullV) {
		return nil, fmt.Errorf("numerical: SVD factorization failed")
	}
	values := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	_, n := a.Dims()
	cutoff := 0.0
	if len(values) > 0 {
		cutoff = tol * values[0]
	}
	rank := 0
	for _, s := range values {
		if s > cutoff {
			rank++
		}
	}

	if rank == n {
		return nil, nil
	}
	ns := mat.NewDense(n, n-rank, nil)
	for col := rank; col < n; col++ {
		for row := 0; row < n; row++ {
			ns.Set(row, col-rank, v.At(row, col))
		}
	}
	return ns, nil
}

// DOF returns the degrees of freedom of a matrix: the nullity of its columns
// (n - rank) and of its rows (m - rank).
func DOF(a mat.Matrix, tol float64) (cols, rows int) {
	m, n := a.Dims()
	r := Rank(a, tol)
	return n - r, m - r
}

// RREF returns the reduced row echelon form of a matrix, computed by
// Gauss-Jordan elimination with partial pivoting.
func RREF(a mat.Matrix, tol float64) *mat.Dense {
	if tol <= 0 {
		tol = defaultTol
	}
	m, n := a.Dims()
	r := mat.DenseCopyOf(a)

	lead := 0
	for row := 0; row < m && lead < n; row++ {
		// Find the pivot row for this column.
		pivot := -1
		for lead < n {
			best := row
			for i := row + 1; i < m; i++ {
				if math.Abs(r.At(i, lead)) > math.Abs(r.At(best, lead)) {
					best = i
				}
			}
			if math.Abs(r.At(best, lead)) > tol {
				pivot = best
				break
			}
			lead++
		}
		if pivot < 0 {
			break
		}
		if pivot != row {
			swapRows(r, pivot, row)
		}
		scale := r.At(row, lead)
		for j := 0; j < n; j++ {
			r.Set(row, j, r.At(row, j)/scale)
		}
		for i := 0; i < m; i++ {
			if i == row {
				continue
			}
			factor := r.At(i, lead)
			if factor == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				r.Set(i, j, r.At(i, j)-factor*r.At(row, j))
			}
		}
		lead++
	}
	return r
}

func swapRows(a *mat.Dense, i, j int) {
	_, n := a.Dims()
	for col := 0; col < n; col++ {
		vi, vj := a.At(i, col), a.At(j, col)
		a.Set(i, col, vj)
		a.Set(j, col, vi)
	}
}

// Pivots returns the pivot column indices of a matrix's RREF.
func Pivots(a mat.Matrix, tol float64) []int {
	if tol <= 0 {
		tol = defaultTol
	}
	r := RREF(a, tol)
	m, n := r.Dims()
	var pivots []int
	col := 0
	for row := 0; row < m; row++ {
		for col < n && math.Abs(r.At(row, col)) <= tol {
			col++
		}
		if col == n {
			break
		}
		pivots = append(pivots, col)
		col++
	}
	return pivots
}

// Nonpivots returns the free column indices of a matrix's RREF.
func Nonpivots(a mat.Matrix, tol float64) []int {
	pivots := Pivots(a, tol)
	_, n := a.Dims()
	isPivot := make(map[int]bool, len(pivots))
	for _, p := range pivots {
		isPivot[p] = true
	}
	var free []int
	for col := 0; col < n; col++ {
		if !isPivot[col] {
			free = append(free, col)
		}
	}
	return free
}

// NormRow returns the Euclidean norm of each row of a matrix.
func NormRow(a mat.Matrix) []float64 {
	m, n := a.Dims()
	norms := make([]float64, m)
	for i := 0; i < m; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			sum += v * v
		}
		norms[i] = math.Sqrt(sum)
	}
	return norms
}

// NormalizeRow returns a copy of a matrix with each row scaled to unit
// length. Zero rows are left unchanged.
func NormalizeRow(a mat.Matrix) *mat.Dense {
	m, n := a.Dims()
	out := mat.DenseCopyOf(a)
	norms := NormRow(a)
	for i := 0; i < m; i++ {
		if norms[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			out.Set(i, j, out.At(i, j)/norms[i])
		}
	}
	return out
}

// Rot90 rotates each row of an m-by-2 matrix of XY vectors a quarter turn
// counter-clockwise: (x, y) becomes (-y, x).
func Rot90(a mat.Matrix) (*mat.Dense, error) {
	m, n := a.Dims()
	if n != 2 {
		return nil, fmt.Errorf("numerical: Rot90 expects an m-by-2 matrix, got %d columns", n)
	}
	out := mat.NewDense(m, 2, nil)
	for i := 0; i < m; i++ {
		out.Set(i, 0, -a.At(i, 1))
		out.Set(i, 1, a.At(i, 0))
	}
	return out, nil
}

// SolveWithKnown solves A x = b where the entries of x listed in known are
// fixed to the given values. The remaining entries are solved in the
// least-squares sense.
func SolveWithKnown(a *mat.Dense, b []float64, known []int, values []float64) ([]float64, error) {
	if len(known) != len(values) {
		return nil, fmt.Errorf("numerical: %d known indices with %d values", len(known), len(values))
	}
	m, n := a.Dims()
	if len(b) != m {
		return nil, fmt.Errorf("numerical: rhs length %d, want %d", len(b), m)
	}

	isKnown := make(map[int]float64, len(known))
	for i, idx := range known {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("numerical: known index %d out of range", idx)
		}
		isKnown[idx] = values[i]
	}

	var unknown []int
	for j := 0; j < n; j++ {
		if _, ok := isKnown[j]; !ok {
			unknown = append(unknown, j)
		}
	}
	if len(unknown) == 0 {
		x := make([]float64, n)
		for idx, val := range isKnown {
			x[idx] = val
		}
		return x, nil
	}

	// Move known columns to the right-hand side.
	rhs := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		v := b[i]
		for idx, val := range isKnown {
			v -= a.At(i, idx) * val
		}
		rhs.SetVec(i, v)
	}

	sub := mat.NewDense(m, len(unknown), nil)
	for i := 0; i < m; i++ {
		for j, col := range unknown {
			sub.Set(i, j, a.At(i, col))
		}
	}

	var sol mat.VecDense
	if err := sol.SolveVec(sub, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	x := make([]float64, n)
	for idx, val := range isKnown {
		x[idx] = val
	}
	for j, col := range unknown {
		x[col] = sol.AtVec(j)
	}
	return x, nil
}
