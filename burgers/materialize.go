package burgers

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/linalg"
)

// materialize reconstructs the closed walk formed by the two branches that
// just merged at mergeVertex (the one already recorded in s.visited, and
// newEntry, the one about to be), validates it, and on success creates the
// forward/backward circuit pair, their dangling nodes, and the segment
// joining them.
func (s *searchState) materialize(start, mergeVertex arena.Index, newEntry frontierEntry) (arena.Index, bool) {
	path1 := s.chainTo(mergeVertex)
	uOrigin := s.m.Edges.Get(newEntry.parentEdge).Origin
	path2 := append(s.chainTo(uOrigin), newEntry.parentEdge)
	if len(path1) == 0 || len(path2) == 0 {
		return arena.Nil, false
	}

	// Close the loop: start->...->mergeVertex via path1, then
	// mergeVertex->...->start by walking path2 in reverse through its
	// opposite half-edges.
	cycle := make([]arena.Index, 0, len(path1)+len(path2))
	cycle = append(cycle, path1...)
	for i := len(path2) - 1; i >= 0; i-- {
		cycle = append(cycle, s.m.Opposite(path2[i]))
	}

	var physicalSum linalg.Vec3
	burgersTM := linalg.Identity()
	for _, e := range cycle {
		he := s.m.Edges.Get(e)
		physicalSum = physicalSum.Add(he.PhysicalVector)
		tm := linalg.Identity()
		if he.ClusterTransition.Valid() {
			tm = s.cg.Transitions.Get(he.ClusterTransition).TM
		}
		burgersTM = tm.Mul(burgersTM)
	}
	if !physicalSum.IsZero(cluster.LatticeVectorEpsilon) {
		return arena.Nil, false
	}
	if !burgersTM.IsIdentity(cluster.TransitionMatrixEpsilon) {
		return arena.Nil, false
	}
	if circuitsIntersect(s.m, cycle) {
		return arena.Nil, false
	}

	var burgers linalg.Vec3
	tm := linalg.Identity()
	for _, e := range cycle {
		he := s.m.Edges.Get(e)
		burgers = burgers.Add(tm.MulVec(he.ClusterVector))
		if he.ClusterTransition.Valid() {
			tm = s.cg.Transitions.Get(he.ClusterTransition).TM.Mul(tm)
		}
	}
	if burgers.IsZero(cluster.LatticeVectorEpsilon) {
		return arena.Nil, false // closed loop, but a trivial (non-defect) one
	}

	startCluster := s.m.Vertices.Get(start).Cluster
	forwardIdx := s.bg.Circuits.Add(Circuit{Edges: cycle, BurgersVector: burgers, Cluster: startCluster, IsDangling: true, Node: arena.Nil})
	threadCircuit(s.m, forwardIdx, cycle)

	backwardEdges := make([]arena.Index, len(cycle))
	for i, e := range cycle {
		backwardEdges[len(cycle)-1-i] = s.m.Opposite(e)
	}
	backwardIdx := s.bg.Circuits.Add(Circuit{Edges: backwardEdges, BurgersVector: burgers.Neg(), Cluster: startCluster, IsDangling: true, Node: arena.Nil})
	threadCircuit(s.m, backwardIdx, backwardEdges)

	forwardNode := s.bg.addNode(forwardIdx)
	backwardNode := s.bg.addNode(backwardIdx)
	s.bg.Circuits.Get(forwardIdx).Node = forwardNode
	s.bg.Circuits.Get(backwardIdx).Node = backwardNode
	s.bg.addSegment(forwardNode, backwardNode, burgers, startCluster)

	return forwardIdx, true
}

