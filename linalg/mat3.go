package linalg

import (
	"fmt"
	"math"

	"github.com/rodyherrera/dxa/dxaerr"
)

// Mat3 is a 3x3 matrix stored row-major. It represents a simulation cell's
// basis H, a local atomic orientation, or a cluster transition's rigid
// rotation TM, depending on context.
type Mat3 [3][3]float64

// Identity returns the 3x3 identity matrix (a self-transition's TM).
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Col returns column c (0,1,2) as a Vec3 — used to read a cell's basis
// vectors out of H, stored column-major.
func (m Mat3) Col(c int) Vec3 {
	return Vec3{m[0][c], m[1][c], m[2][c]}
}

// Row returns row r as a Vec3.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{m[r][0], m[r][1], m[r][2]}
}

// SetCol returns a copy of m with column c replaced by v.
func (m Mat3) SetCol(c int, v Vec3) Mat3 {
	m[0][c], m[1][c], m[2][c] = v.X, v.Y, v.Z
	return m
}

// MulVec returns m*v, treating v as a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m*n — used to compose Frank rotations
// (cluster transition matrices) along a path.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Transpose returns m^T. For an orthogonal rotation matrix this equals the
// inverse and is used in preference to Inverse whenever TM is known to be
// a rigid rotation (the common case for cluster transitions).
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Det returns the determinant of m, used to validate a simulation cell's
// invariant det(H) != 0.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns m^-1 via Gauss-Jordan elimination with partial pivoting
// on [m | I], generalizing the teacher's ops.Inverse (arbitrary n) to the
// fixed n=3 case. Returns dxaerr.ErrNumericDegenerate when m is singular
// (the best available pivot in some column is below eps in magnitude).
func (m Mat3) Inverse() (Mat3, error) {
	const eps = 1e-12
	// Augment [m | I] and reduce via partial-pivot Gauss-Jordan; at n=3
	// this is both simpler and numerically steadier than a two-stage
	// LU-then-substitute pass, while remaining the same "decompose,
	// forward/backward solve per identity column" shape as ops.Inverse.
	var a [3][6]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = m[i][j]
		}
		a[i][3+i] = 1
	}

	for col := 0; col < 3; col++ {
		// Partial pivot: swap in the largest-magnitude row at or below col.
		piv := col
		best := math.Abs(a[col][col])
		for r := col + 1; r < 3; r++ {
			if v := math.Abs(a[r][col]); v > best {
				best, piv = v, r
			}
		}
		if best < eps {
			return Mat3{}, fmt.Errorf("linalg: pivot |%.3e| below tolerance at column %d: %w", best, col, dxaerr.ErrNumericDegenerate)
		}
		if piv != col {
			a[col], a[piv] = a[piv], a[col]
		}
		pivot := a[col][col]
		for j := 0; j < 6; j++ {
			a[col][j] /= pivot
		}
		for r := 0; r < 3; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 6; j++ {
				a[r][j] -= factor * a[col][j]
			}
		}
	}

	var inv Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = a[i][3+j]
		}
	}
	return inv, nil
}

// ApproxEqual reports whether every entry of m and n differ by at most eps,
// the tolerance check behind CA_TRANSITION_MATRIX_EPSILON comparisons.
func (m Mat3) ApproxEqual(n Mat3, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-n[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether m is within eps of the identity matrix — used
// to test that a Frank rotation composed around a closed circuit reduces
// to the identity (no disclination).
func (m Mat3) IsIdentity(eps float64) bool {
	return m.ApproxEqual(Identity(), eps)
}
