// Package linalg provides the fixed-size 3-vector / 3x3-matrix algebra the
// whole DXA pipeline is built on: lattice vectors, simulation-frame
// positions, local atomic orientations and cluster transition rotations.
//
// It generalizes the teacher's matrix/ops package (arbitrary-size Dense
// matrices with LU decomposition, Jacobi eigendecomposition and inversion)
// down to the fixed 3x3 case the lattice geometry actually needs, and adds
// a quaternion-averaging routine (Bar-Itzhack, via the 4x4 symmetric K
// matrix's dominant eigenvector) used by PTM to fit a single best rotation
// to several candidate frame vectors — the same Jacobi sweep ops.Eigen
// performs, specialized to n=4.
package linalg
