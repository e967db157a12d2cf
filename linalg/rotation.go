package linalg

import (
	"errors"
	"math"
)

// ErrDegenerateFit is returned by FitRotation when the two vector sets
// differ in length, when fewer than two pairs are supplied, or when the
// fitted quaternion has near-zero norm. Parallel pairs are not detected.
var ErrDegenerateFit = errors.New("linalg: degenerate rotation fit (need >=2 non-parallel vectors)")

// Quat is a unit quaternion (w + xi + yj + zk) representing a rotation.
type Quat struct {
	W, X, Y, Z float64
}

// ToMat3 converts a (assumed unit) quaternion to its rotation matrix.
func (q Quat) ToMat3() Mat3 {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return Mat3{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// FitRotation finds the single rigid rotation R that best maps each
// ideal[i] onto observed[i] in the least-squares sense (Kabsch's problem,
// solved via the quaternion / Bar-Itzhack method: build the symmetric 4x4
// key matrix K from the cross-covariance of the two vector sets, and take
// the eigenvector of its largest eigenvalue as the optimal unit quaternion).
//
// This generalizes the teacher's ops.Eigen (n x n Jacobi sweep, used there
// for general symmetric matrices) to the fixed 4x4 case PTM needs: each
// candidate crystal-structure template supplies its canonical neighbor
// vectors as "ideal", the atom's actual neighbor positions (already
// centered on the atom) as "observed", and FitRotation returns both the
// orientation matrix and an RMSD goodness-of-fit score.
func FitRotation(ideal, observed []Vec3) (rot Mat3, rmsd float64, err error) {
	if len(ideal) != len(observed) || len(ideal) < 2 {
		return Mat3{}, math.Inf(1), ErrDegenerateFit
	}

	// Cross-covariance matrix M = sum_i observed_i * ideal_i^T.
	var m Mat3
	for i := range ideal { //nolint:govet // columns addressed by name for clarity
		o, d := observed[i], ideal[i]
		m[0][0] += o.X * d.X
		m[0][1] += o.X * d.Y
		m[0][2] += o.X * d.Z
		m[1][0] += o.Y * d.X
		m[1][1] += o.Y * d.Y
		m[1][2] += o.Y * d.Z
		m[2][0] += o.Z * d.X
		m[2][1] += o.Z * d.Y
		m[2][2] += o.Z * d.Z
	}

	// Build the symmetric 4x4 Bar-Itzhack "K" matrix from M.
	k := symKeyMatrix(m)

	// Jacobi eigendecomposition of the symmetric 4x4 K; the eigenvector
	// of the largest eigenvalue is the optimal-fit quaternion.
	vals, vecs := jacobiEigen4(k, 60, 1e-14)
	best := 0
	for i := 1; i < 4; i++ {
		if vals[i] > vals[best] {
			best = i
		}
	}
	q := Quat{W: vecs[0][best], X: vecs[1][best], Y: vecs[2][best], Z: vecs[3][best]}
	// Normalize defensively; Jacobi already returns orthonormal columns.
	norm := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if norm < 1e-300 {
		return Mat3{}, math.Inf(1), ErrDegenerateFit
	}
	q.W, q.X, q.Y, q.Z = q.W/norm, q.X/norm, q.Y/norm, q.Z/norm
	rot = q.ToMat3()

	// RMSD of the fit.
	var sumSq float64
	for i := range ideal {
		diff := rot.MulVec(ideal[i]).Sub(observed[i])
		sumSq += diff.LengthSq()
	}
	rmsd = math.Sqrt(sumSq / float64(len(ideal)))
	return rot, rmsd, nil
}

// symKeyMatrix builds the 4x4 symmetric matrix whose dominant eigenvector
// is the optimal rotation quaternion for cross-covariance m (Bar-Itzhack
// 2000 / Horn 1987's q-method).
func symKeyMatrix(m Mat3) [4][4]float64 {
	trace := m[0][0] + m[1][1] + m[2][2]
	var k [4][4]float64
	k[0][0] = trace
	k[0][1] = m[2][1] - m[1][2]
	k[0][2] = m[0][2] - m[2][0]
	k[0][3] = m[1][0] - m[0][1]
	k[1][0] = k[0][1]
	k[1][1] = m[0][0] - m[1][1] - m[2][2]
	k[1][2] = m[0][1] + m[1][0]
	k[1][3] = m[2][0] + m[0][2]
	k[2][0] = k[0][2]
	k[2][1] = k[1][2]
	k[2][2] = -m[0][0] + m[1][1] - m[2][2]
	k[2][3] = m[1][2] + m[2][1]
	k[3][0] = k[0][3]
	k[3][1] = k[1][3]
	k[3][2] = k[2][3]
	k[3][3] = -m[0][0] - m[1][1] + m[2][2]
	return k
}

// jacobiEigen4 computes all eigenvalues/eigenvectors of a symmetric 4x4
// matrix via cyclic Jacobi rotations, the same sweep-until-off-diagonal-
// negligible algorithm as the teacher's ops.Eigen, specialized to n=4 (no
// Dense allocation, fixed-size arrays, unrolled bound checks).
func jacobiEigen4(a [4][4]float64, maxSweeps int, tol float64) (vals [4]float64, vecs [4][4]float64) {
	const n = 4
	v := [n][n]float64{}
	for i := 0; i < n; i++ {
		v[i][i] = 1
	}

	offDiagSq := func(m [n][n]float64) float64 {
		var s float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s += m[i][j] * m[i][j]
			}
		}
		return s
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if offDiagSq(a) < tol {
			break
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				if math.Abs(a[p][q]) < 1e-300 {
					continue
				}
				theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				app, aqq, apq := a[p][p], a[q][q], a[p][q]
				a[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
				a[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
				a[p][q] = 0
				a[q][p] = 0
				for i := 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, aiq := a[i][p], a[i][q]
					a[i][p] = c*aip - s*aiq
					a[p][i] = a[i][p]
					a[i][q] = s*aip + c*aiq
					a[q][i] = a[i][q]
				}
				for i := 0; i < n; i++ {
					vip, viq := v[i][p], v[i][q]
					v[i][p] = c*vip - s*viq
					v[i][q] = s*vip + c*viq
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		vals[i] = a[i][i]
		for j := 0; j < n; j++ {
			vecs[j][i] = v[j][i]
		}
	}
	return vals, vecs
}
