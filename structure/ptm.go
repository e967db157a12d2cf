package structure

import (
	"math"

	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/linalg"
)

// ptmTolerance is the RMSD (in direction-cosine units) above which a
// template match is rejected; a neighborhood is OTHER if nothing scores
// below this.
const ptmTolerance = 0.35

// ClassifyPTM runs Polyhedral Template Matching on every atom in s: each
// candidate structure's canonical neighbor directions are greedily
// assigned to the atom's nearest-angle actual neighbor directions, fit
// with a single best rotation (linalg.FitRotation), and scored by RMSD.
// The lowest-RMSD match under ptmTolerance wins and fixes both Structure
// and Orientation; ties are broken in allTemplates' order: cubic
// diamond > hex diamond > FCC > HCP.
func ClassifyPTM(s *atom.Set) Result {
	var res Result
	templates := allTemplates()
	for i := range s.Atoms {
		a := &s.Atoms[i]
		if a.NeighborCount == 0 {
			a.Structure = config.Other
			a.SetFlag(atom.FlagDisordered)
			continue
		}
		// Observed neighbor directions, kept in neighbor-table order so
		// that greedy-assignment ties break deterministically rather
		// than on map/slice iteration order.
		observed := make([]linalg.Vec3, a.NeighborCount)
		for n := 0; n < a.NeighborCount; n++ {
			ni := int(a.Neighbors[n])
			observed[n] = s.Atoms[ni].Position.Sub(a.Position).Normalized()
		}

		bestRMSD := math.Inf(1)
		bestIdx := -1
		var bestRot linalg.Mat3
		for ti, tmpl := range templates {
			if len(observed) < len(tmpl.vectors) {
				continue
			}
			rot, rmsd, ok := fitTemplate(tmpl, observed)
			if !ok {
				continue
			}
			if rmsd < bestRMSD-1e-12 {
				bestRMSD, bestIdx, bestRot = rmsd, ti, rot
			}
			// an exact/near tie keeps the earlier (higher-priority) template
		}

		if bestIdx >= 0 && bestRMSD <= ptmTolerance {
			a.Structure = templates[bestIdx].structure
			a.Orientation = bestRot
			a.ClearFlag(atom.FlagDisordered)
		} else {
			a.Structure = config.Other
			a.SetFlag(atom.FlagDisordered)
		}
	}
	return res
}

// fitTemplate greedily assigns each template direction to its closest
// still-unused observed direction (largest dot product first), then fits
// a single rotation through the resulting correspondence. This
// approximates PTM's real combinatorial graph-matching search (see
// DESIGN.md) with a deterministic greedy heuristic adequate at the
// neighborhood sizes this package handles.
func fitTemplate(t template, observed []linalg.Vec3) (rot linalg.Mat3, rmsd float64, ok bool) {
	used := make([]bool, len(observed))
	ideal := make([]linalg.Vec3, 0, len(t.vectors))
	obs := make([]linalg.Vec3, 0, len(t.vectors))

	for _, tv := range t.vectors {
		best := -1
		bestDot := -2.0
		for oi, od := range observed {
			if used[oi] {
				continue
			}
			if d := tv.Dot(od); d > bestDot {
				bestDot, best = d, oi
			}
		}
		if best < 0 {
			return linalg.Mat3{}, math.Inf(1), false
		}
		used[best] = true
		ideal = append(ideal, tv)
		obs = append(obs, observed[best])
	}

	r, e, err := linalg.FitRotation(ideal, obs)
	if err != nil {
		return linalg.Mat3{}, math.Inf(1), false
	}
	return r, e, true
}
