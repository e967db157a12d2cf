package burgers

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/config"
)

// finalizeSegments re-expresses each surviving segment's Burgers vector in
// a target-structure cluster frame when its current cluster has the wrong
// structure, and orients each line so its dominant axis component is
// positive. Trimming numPreliminaryPoints from each end (spec §4.E.7) is
// not implemented: this pipeline does not distinguish "preliminary"
// refinement points from settled ones, so there is nothing principled to
// trim — see DESIGN.md.
func finalizeSegments(cg *cluster.Graph, bg *Graph, cfg config.Config) {
	n := bg.Segments.Len()
	for i := 0; i < n; i++ {
		idx := arena.Index(i)
		seg := bg.Segments.Get(idx)
		if seg.ReplacedBy.Valid() {
			continue
		}
		reexpressBurgersVector(cg, seg, cfg)
		orientLine(seg)
	}
}

// reexpressBurgersVector walks seg.Cluster's direct transitions (hop
// distance 1) for one landing on a cluster of the target input structure,
// and rotates the Burgers vector into that cluster's frame.
func reexpressBurgersVector(cg *cluster.Graph, seg *DislocationSegment, cfg config.Config) {
	if !seg.Cluster.Valid() {
		return
	}
	cl := cg.Clusters.Get(seg.Cluster)
	if cl.Structure == cfg.InputCrystalStructure {
		return
	}
	for _, tIdx := range cg.TransitionsOf(seg.Cluster) {
		t := cg.Transitions.Get(tIdx)
		if t.To == seg.Cluster {
			continue
		}
		target := cg.Clusters.Get(t.To)
		if target.Structure != cfg.InputCrystalStructure {
			continue
		}
		seg.BurgersVector = t.TM.MulVec(seg.BurgersVector)
		seg.Cluster = t.To
		return
	}
}

// orientLine reverses seg's line, core sizes, Burgers vector, and node
// pair when its dominant-axis displacement is negative, so every output
// line points the same canonical way (tie-break x, y, z, matching
// linalg.Vec3.DominantAxis).
func orientLine(seg *DislocationSegment) {
	if len(seg.Line) < 2 {
		return
	}
	delta := seg.Line[len(seg.Line)-1].Sub(seg.Line[0])
	axis := delta.DominantAxis()
	if delta.Component(axis) >= 0 {
		return
	}
	seg.Line = reverseLine(seg.Line)
	seg.CoreSize = reverseCore(seg.CoreSize)
	seg.BurgersVector = seg.BurgersVector.Neg()
	seg.ForwardNode, seg.BackwardNode = seg.BackwardNode, seg.ForwardNode
}
