package numerical

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Sam-Bouten/compas/geometry"
)

// PCA runs a principal component analysis on a point cloud. It returns the
// mean of the cloud, the three principal axes sorted by decreasing spread,
// and the variance captured along each axis. At least two distinct points
// are required.
func PCA(points []geometry.Point) (mean geometry.Point, axes [3]geometry.Vector, values [3]float64, err error) {
	n := len(points)
	if n < 2 {
		err = fmt.Errorf("numerical: PCA needs at least 2 points, got %d", n)
		return
	}
	mean, _ = geometry.Centroid(points)

	data := mat.NewDense(n, 3, nil)
	for i, p := range points {
		data.SetRow(i, []float64{p.X - mean.X, p.Y - mean.Y, p.Z - mean.Z})
	}

	var svd mat.SVD
	if !svd.Factorize(data, mat.SVDThin) {
		err = fmt.Errorf("numerical: SVD factorization failed")
		return
	}
	s := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	// A thin SVD of an n-by-3 matrix yields min(n, 3) singular values, so a
	// two-point cloud produces only two axes. The third is completed as the
	// cross product of the first two, with zero variance along it.
	k := len(s)
	if k > 3 {
		k = 3
	}
	for i := 0; i < k; i++ {
		axes[i] = geometry.Vec(v.At(0, i), v.At(1, i), v.At(2, i))
		values[i] = s[i] * s[i] / float64(n-1)
	}
	if k < 3 {
		axes[2] = axes[0].Cross(axes[1])
	}
	return
}

// PCAFrame fits an oriented frame to a point cloud: the origin at the mean
// and the axes along the two dominant principal directions.
func PCAFrame(points []geometry.Point) (geometry.Frame, error) {
	mean, axes, _, err := PCA(points)
	if err != nil {
		return geometry.Frame{}, err
	}
	return geometry.Frame{Point: mean, XAxis: axes[0], YAxis: axes[1]}, nil
}
