// Package wings computes bounding volumes and best-fit oriented frames for
// point clouds and meshes, for spatial queries such as selection, ray
// picking, culling and broad-phase overlap tests.
//
// The pipeline runs raw points through a convex-hull construction
// (github.com/brodao/wings/hull), accumulates a covariance matrix over the
// hull faces and diagonalizes it to obtain the principal axes of the cloud.
// Those axes orient a tight bounding box (OrientedBox); the axis-aligned
// primitives live in github.com/brodao/wings/bound.
package wings

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"github.com/brodao/wings/hull"
)

// Covariance holds the six independent entries of a symmetric 3x3
// covariance matrix.
type Covariance struct {
	XX, XY, XZ float64
	YY, YZ, ZZ float64
}

// Sym returns the covariance as a gonum symmetric matrix.
func (c Covariance) Sym() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		c.XX, c.XY, c.XZ,
		c.XY, c.YY, c.YZ,
		c.XZ, c.YZ, c.ZZ,
	})
}

// CovarianceMatrix accumulates the covariance of a hull's faces around
// their mean centroid.
//
// The mean is the plain average of the face centroids, not an area- or
// vertex-weighted surface centroid; the accumulation then sums the pairwise
// offset products of every vertex of every face and normalizes by 3N. This
// matches how the hull is consumed downstream: a cheap approximation whose
// eigenvectors are still a good orientation for a tight box.
func CovarianceMatrix(faces []hull.Face) Covariance {
	if len(faces) == 0 {
		return Covariance{}
	}

	var mean mgl64.Vec3
	for _, f := range faces {
		mean = mean.Add(f.Centroid())
	}
	mean = mean.Mul(1 / float64(len(faces)))

	var c Covariance
	for _, f := range faces {
		for _, v := range f.Points {
			r := v.Sub(mean)
			c.XX += r[0] * r[0]
			c.XY += r[0] * r[1]
			c.XZ += r[0] * r[2]
			c.YY += r[1] * r[1]
			c.YZ += r[1] * r[2]
			c.ZZ += r[2] * r[2]
		}
	}

	n := 1 / (3 * float64(len(faces)))
	c.XX *= n
	c.XY *= n
	c.XZ *= n
	c.YY *= n
	c.YZ *= n
	c.ZZ *= n

	return c
}

// EigenVecs computes the principal-axis frame of a point cloud: the
// eigenvalues and eigenvectors of the covariance matrix of its convex hull.
//
// The frame's columns are the unit eigenvectors, pairwise orthogonal, in
// gonum's ascending eigenvalue order (evals[i] pairs with column i). The
// error is non-nil for inputs Quickhull rejects, or if the eigensolver
// fails to converge.
func EigenVecs(points []mgl64.Vec3) (evals [3]float64, frame mgl64.Mat3, err error) {
	faces, err := hull.Quickhull(points)
	if err != nil {
		return evals, frame, err
	}
	return eigenFrame(CovarianceMatrix(faces))
}

// eigenFrame diagonalizes a covariance matrix into (eigenvalues, frame).
func eigenFrame(c Covariance) (evals [3]float64, frame mgl64.Mat3, err error) {
	var eig mat.EigenSym
	if !eig.Factorize(c.Sym(), true) {
		return evals, frame, errors.New("wings: eigen decomposition failed to converge")
	}

	var vals [3]float64
	eig.Values(vals[:])
	evals = vals

	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			frame[col*3+row] = vecs.At(row, col)
		}
	}
	return evals, frame, nil
}
