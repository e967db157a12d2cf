package dxa

import (
	"math"

	"github.com/rodyherrera/dxa/linalg"
)

// estimateCutoff returns a CNA neighbor cutoff derived from atom density
// when cfg.CNACutoff is 0 ("estimate from density", spec.md §6). The mean
// nearest-neighbor spacing for N atoms in a cell of volume V is
// approximately (V/N)^(1/3); a factor of 1.25 over that spacing includes
// the full 12-neighbor first shell of FCC/HCP (about 0.79a, between the
// shells at 0.71a and a) without reaching into the second shell. For BCC
// it gives about 0.99a: the 8 nearest neighbors at 0.87a are included,
// the 6 at a are not. This is a from-scratch heuristic — no pack example estimates a
// neighbor cutoff from density, so nothing to ground it on beyond the
// geometry itself (see DESIGN.md).
func estimateCutoff(volume float64, positionCount int) float64 {
	if positionCount == 0 {
		return 0
	}
	spacing := math.Cbrt(volume / float64(positionCount))
	return 1.25 * spacing
}

func cellVolume(h linalg.Mat3) float64 {
	return math.Abs(h.Det())
}
