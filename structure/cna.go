package structure

import (
	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/dxaerr"
	"github.com/rodyherrera/dxa/linalg"
)

// signature is the per-neighbor CNA triple: how many of the
// central atom's other neighbors are also neighbors of this one, how many
// bonds exist among those common neighbors, and the size of the largest
// connected component (the "longest bond chain") in the bond subgraph
// those common neighbors induce.
type signature struct {
	numCommon int
	numBonds  int
	longest   int
}

// Result is what Classify reports back to the orchestrator.
type Result struct {
	Warnings int // count of InvalidInput occurrences (non-fatal)
}

// ClassifyCNA runs Common Neighbor Analysis on every atom in s, writing
// Structure and Orientation in place. Atoms whose neighbor count does not
// match a candidate shell (12 or 14) are classified Other without further
// work.
func ClassifyCNA(s *atom.Set) Result {
	var res Result
	for i := range s.Atoms {
		a := &s.Atoms[i]
		matched := false
		switch a.NeighborCount {
		case 12:
			matched = classifyFCCOrHCP(s, i)
		case 14:
			matched = classifyBCC(s, i)
		}
		if matched {
			continue
		}
		if validateBasalNeighbor(a) != nil {
			res.Warnings++
		}
		a.Structure = config.Other
		a.SetFlag(atom.FlagDisordered)
	}
	return res
}

// classifyFCCOrHCP tests the 12-neighbor signature pattern: FCC is all
// twelve signatures (4,2,1); HCP is six (4,2,1) and six (4,2,2). Returns
// false (leaving classification to the caller) when neither pattern
// matches.
func classifyFCCOrHCP(s *atom.Set, i int) bool {
	a := &s.Atoms[i]
	var count421, count422 int
	for n := 0; n < a.NeighborCount; n++ {
		sig := computeSignature(a, n)
		switch {
		case sig.numCommon == 4 && sig.numBonds == 2 && sig.longest == 1:
			count421++
		case sig.numCommon == 4 && sig.numBonds == 2 && sig.longest == 2:
			count422++
		}
	}
	switch {
	case count421 == 12:
		a.Structure = config.FCC
		fixOrientation(s, i, fccTemplate())
		return true
	case count421 == 6 && count422 == 6:
		a.Structure = config.HCP
		fixOrientation(s, i, hcpTemplate())
		return true
	default:
		return false
	}
}

// classifyBCC tests the 14-neighbor signature pattern: eight (6,6,6) and
// six (4,4,4).
func classifyBCC(s *atom.Set, i int) bool {
	a := &s.Atoms[i]
	var count666, count444 int
	for n := 0; n < a.NeighborCount; n++ {
		sig := computeSignature(a, n)
		switch {
		case sig.numCommon == 6 && sig.numBonds == 6 && sig.longest == 6:
			count666++
		case sig.numCommon == 4 && sig.numBonds == 4 && sig.longest == 4:
			count444++
		}
	}
	if count666 == 8 && count444 == 6 {
		a.Structure = config.BCC
		fixOrientation(s, i, bccTemplate())
		return true
	}
	return false
}

// fixOrientation fixes the local lattice frame for a CNA-classified atom
// by reusing PTM's template-fit rotation (fitTemplate/linalg.FitRotation)
// against the template CNA already knows the atom matches — CNA only
// decides which structure an atom is, so it borrows PTM's least-squares
// fit to produce the orientation every crystalline atom needs downstream
// (the cluster stage compares orientations to grow clusters). Leaves
// a.Orientation at its previous value if the fit degenerates.
func fixOrientation(s *atom.Set, i int, t template) {
	a := &s.Atoms[i]
	if a.NeighborCount < len(t.vectors) {
		return
	}
	observed := make([]linalg.Vec3, a.NeighborCount)
	for n := 0; n < a.NeighborCount; n++ {
		ni := int(a.Neighbors[n])
		observed[n] = s.Atoms[ni].Position.Sub(a.Position).Normalized()
	}
	rot, _, ok := fitTemplate(t, observed)
	if !ok {
		return
	}
	a.Orientation = rot
}

// computeSignature computes the CNA triple for neighbor slot n of atom a.
func computeSignature(a *atom.Atom, n int) signature {
	commonMask := a.Bonds[n] // bit m set => slot m is a common neighbor of a and slot n
	var common []int
	for m := 0; m < a.NeighborCount; m++ {
		if commonMask&(1<<uint(m)) != 0 {
			common = append(common, m)
		}
	}

	numBonds := 0
	for i := 0; i < len(common); i++ {
		for j := i + 1; j < len(common); j++ {
			if a.NeighborBond(common[i], common[j]) {
				numBonds++
			}
		}
	}

	return signature{
		numCommon: len(common),
		numBonds:  numBonds,
		longest:   longestBondChain(a, common),
	}
}

// longestBondChain returns the size of the largest connected component of
// the bond-adjacency subgraph induced by the common-neighbor slots, via an
// iterative BFS over each unvisited slot — a direct generalization of the
// teacher's bfs.BFS walker (queue + visited-set) to this tiny in-memory
// adjacency, see package doc.
func longestBondChain(a *atom.Atom, common []int) int {
	visited := make(map[int]bool, len(common))
	best := 0
	for _, start := range common {
		if visited[start] {
			continue
		}
		size := 0
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			size++
			for _, other := range common {
				if !visited[other] && a.NeighborBond(cur, other) {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
		if size > best {
			best = size
		}
	}
	return best
}

// validateBasalNeighbor reports an InvalidInput warning when an HCP
// candidate is missing the basal-plane common-neighbor pattern CNA
// expects — surfaced to callers that want to aggregate the warning
// counter; classification itself always completes (the atom becomes
// Other on mismatch).
func validateBasalNeighbor(a *atom.Atom) error {
	if a.NeighborCount != 12 {
		return nil
	}
	for n := 0; n < a.NeighborCount; n++ {
		sig := computeSignature(a, n)
		if sig.numCommon != 4 {
			return dxaerr.ErrInvalidInput
		}
	}
	return nil
}
