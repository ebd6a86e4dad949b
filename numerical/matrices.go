package numerical

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Sam-Bouten/compas/geometry"
)

// ConnectivityMatrix returns the connectivity matrix C of an edge list over
// n vertices: one row per edge with +1 at the start vertex and -1 at the end
// vertex.
func ConnectivityMatrix(edges [][2]int, n int) (*mat.Dense, error) {
	c := mat.NewDense(len(edges), n, nil)
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("numerical: edge %d (%d, %d) out of range for %d vertices", i, e[0], e[1], n)
		}
		c.Set(i, e[0], 1)
		c.Set(i, e[1], -1)
	}
	return c, nil
}

// AdjacencyMatrix returns the symmetric vertex adjacency matrix A of an edge
// list over n vertices.
func AdjacencyMatrix(edges [][2]int, n int) (*mat.Dense, error) {
	a := mat.NewDense(n, n, nil)
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("numerical: edge %d (%d, %d) out of range for %d vertices", i, e[0], e[1], n)
		}
		a.Set(e[0], e[1], 1)
		a.Set(e[1], e[0], 1)
	}
	return a, nil
}

// DegreeMatrix returns the diagonal vertex degree matrix D of an edge list
// over n vertices.
func DegreeMatrix(edges [][2]int, n int) (*mat.Dense, error) {
	a, err := AdjacencyMatrix(edges, n)
	if err != nil {
		return nil, err
	}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a.At(i, j)
		}
		d.Set(i, i, sum)
	}
	return d, nil
}

// LaplacianMatrix returns the graph laplacian L = D - A of an edge list over
// n vertices. With normalize set, rows are divided by the vertex degree,
// giving the random-walk normalized laplacian (isolated vertices keep a
// zero row).
func LaplacianMatrix(edges [][2]int, n int, normalize bool) (*mat.Dense, error) {
	a, err := AdjacencyMatrix(edges, n)
	if err != nil {
		return nil, err
	}
	l := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		var degree float64
		for j := 0; j < n; j++ {
			degree += a.At(i, j)
		}
		l.Set(i, i, degree)
		for j := 0; j < n; j++ {
			if i != j {
				l.Set(i, j, -a.At(i, j))
			}
		}
		if normalize && degree > 0 {
			for j := 0; j < n; j++ {
				l.Set(i, j, l.At(i, j)/degree)
			}
		}
	}
	return l, nil
}

// FaceMatrix returns the face incidence matrix F of a face list over n
// vertices: F[i][j] is 1 when face i uses vertex j.
func FaceMatrix(faces [][]int, n int) (*mat.Dense, error) {
	f := mat.NewDense(len(faces), n, nil)
	for i, face := range faces {
		for _, vi := range face {
			if vi < 0 || vi >= n {
				return nil, fmt.Errorf("numerical: face %d references vertex %d of %d", i, vi, n)
			}
			f.Set(i, vi, 1)
		}
	}
	return f, nil
}

// MassMatrix returns the diagonal mass matrix of per-vertex weights.
func MassMatrix(weights []float64) *mat.DiagDense {
	return mat.NewDiagDense(len(weights), weights)
}

// EquilibriumMatrix returns the equilibrium matrix E of a network: with C the
// connectivity matrix, U and V the diagonal matrices of the edge vectors'
// X and Y components, and Ci the columns of C at the free vertices,
//
//	E = | Ciᵀ U |
//	    | Ciᵀ V |
//
// with one column per edge and two rows per free vertex.
func EquilibriumMatrix(edges [][2]int, xyz []geometry.Point, free []int) (*mat.Dense, error) {
	n := len(xyz)
	c, err := ConnectivityMatrix(edges, n)
	if err != nil {
		return nil, err
	}
	m := len(edges)

	// Edge vector components.
	u := make([]float64, m)
	v := make([]float64, m)
	for i := 0; i < m; i++ {
		var du, dv float64
		for j := 0; j < n; j++ {
			du += c.At(i, j) * xyz[j].X
			dv += c.At(i, j) * xyz[j].Y
		}
		u[i] = du
		v[i] = dv
	}

	e := mat.NewDense(2*len(free), m, nil)
	for fi, vi := range free {
		if vi < 0 || vi >= n {
			return nil, fmt.Errorf("numerical: free vertex %d out of range for %d vertices", vi, n)
		}
		for ei := 0; ei < m; ei++ {
			e.Set(fi, ei, c.At(ei, vi)*u[ei])
			e.Set(len(free)+fi, ei, c.At(ei, vi)*v[ei])
		}
	}
	return e, nil
}
