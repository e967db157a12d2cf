package atom

import (
	"fmt"

	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/dxaerr"
)

// PopulateNeighbors fills every atom's neighbor table from nf (component A's
// output), truncating to MaxAtomNeighbors and recording each neighbor's
// physical displacement implicitly via nf at CNA-bond-check time.
// Truncation order follows nf.Neighbors' deterministic bin-major order,
// so this call is itself fully deterministic.
func PopulateNeighbors(s *Set, nf *cell.NeighborFinder) error {
	for i := range s.Atoms {
		ns := nf.Neighbors(i)
		if len(ns) > MaxAtomNeighbors {
			ns = ns[:MaxAtomNeighbors]
		}
		a := &s.Atoms[i]
		a.NeighborCount = len(ns)
		for slot, n := range ns {
			a.Neighbors[slot] = int32(n.Index)
		}
	}
	return nil
}

// PopulateBonds computes, for every atom, the bit-matrix of which pairs of
// its neighbor-table slots are themselves within nf's cutoff — the
// "neighbor-of-neighbor" relation CNA's signature counting needs (spec
// §4.B). Must run after PopulateNeighbors.
func PopulateBonds(s *Set, nf *cell.NeighborFinder) error {
	for i := range s.Atoms {
		a := &s.Atoms[i]
		for si := 0; si < a.NeighborCount; si++ {
			ni := int(a.Neighbors[si])
			if ni < 0 || ni >= len(s.Atoms) {
				return fmt.Errorf("atom: neighbor index %d out of range for atom %d: %w", ni, i, dxaerr.ErrInvalidInput)
			}
			for sj := si + 1; sj < a.NeighborCount; sj++ {
				nj := int(a.Neighbors[sj])
				a.SetNeighborBond(si, sj, nf.WithinCutoff(ni, nj))
			}
		}
	}
	return nil
}
