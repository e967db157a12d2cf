package latticegen

import (
	"fmt"

	"github.com/rodyherrera/dxa/linalg"
)

// ErrTooFewCells mirrors builder.ErrTooFewVertices: every dimension must
// be at least 1 conventional cell.
var ErrTooFewCells = fmt.Errorf("latticegen: nx, ny, nz must each be >= 1")

// fccBasis lists the 4 fractional-coordinate basis sites of the FCC
// conventional (cubic) cell.
var fccBasis = []linalg.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
	{X: 0.5, Y: 0, Z: 0.5},
	{X: 0, Y: 0.5, Z: 0.5},
}

// bccBasis lists the 2 fractional-coordinate basis sites of the BCC
// conventional (cubic) cell.
var bccBasis = []linalg.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0.5},
}

// FCC returns the basis vectors H for an nx*ny*nz conventional-cell FCC
// box of lattice parameter a, and the atom positions within it, in fixed
// z-major, y-mid, x-minor, basis-site-last order (the 3D analogue of
// builder.Grid's row-major "r,c" ID scheme).
func FCC(nx, ny, nz int, a float64) (linalg.Mat3, []linalg.Vec3, error) {
	return conventionalCell(nx, ny, nz, a, fccBasis)
}

// BCC returns the basis vectors H and atom positions for an nx*ny*nz
// conventional-cell BCC box of lattice parameter a.
func BCC(nx, ny, nz int, a float64) (linalg.Mat3, []linalg.Vec3, error) {
	return conventionalCell(nx, ny, nz, a, bccBasis)
}

func conventionalCell(nx, ny, nz int, a float64, basis []linalg.Vec3) (linalg.Mat3, []linalg.Vec3, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return linalg.Mat3{}, nil, ErrTooFewCells
	}
	h := linalg.Mat3{
		{a * float64(nx), 0, 0},
		{0, a * float64(ny), 0},
		{0, 0, a * float64(nz)},
	}
	positions := make([]linalg.Vec3, 0, nx*ny*nz*len(basis))
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				for _, b := range basis {
					positions = append(positions, linalg.Vec3{
						X: (float64(ix) + b.X) * a,
						Y: (float64(iy) + b.Y) * a,
						Z: (float64(iz) + b.Z) * a,
					})
				}
			}
		}
	}
	return h, positions, nil
}

// FCCEdgeDislocation builds an nxnxn FCC box along z with one extra
// half-plane of atoms inserted along [010] at x>box/2, z<box/2 — a
// minimal synthetic single edge dislocation fixture. The inserted
// half-plane's atoms are appended after the perfect lattice, so their
// indices are a contiguous suffix.
func FCCEdgeDislocation(n int, a float64) (linalg.Mat3, []linalg.Vec3, error) {
	h, positions, err := FCC(n, n, n, a)
	if err != nil {
		return linalg.Mat3{}, nil, err
	}
	half := float64(n) * a / 2
	for iz := 0; iz < n/2; iz++ {
		for iy := 0; iy < n; iy++ {
			positions = append(positions, linalg.Vec3{
				X: half + a/4,
				Y: (float64(iy) + 0.25) * a,
				Z: float64(iz) * a,
			})
		}
	}
	return h, positions, nil
}
