package burgers

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/mesh"
)

// traceSecondarySegments reruns the same circuit search used for primary
// tracing, restricted to edges no earlier circuit has claimed, so a hole
// left uncovered by refinement and junction formation (a defect neck the
// primary pass's BFS frontier never reached, or reached only through
// edges later rewritten away) still gets a chance to close and carry a
// dislocation. Each secondary circuit gets one search from its seed and one
// refinement bounded by maxCircuitSize, followed by a single junction pass;
// there is no extended-size refinement for secondary circuits.
func traceSecondarySegments(m *mesh.Mesh, cg *cluster.Graph, bg *Graph, maxCircuitSize int) {
	maxDepth := (maxCircuitSize - 1) / 2
	n := m.Vertices.Len()
	for seed := 0; seed < n; seed++ {
		s := &searchState{m: m, cg: cg, bg: bg, maxDepth: maxDepth, restrictUnclaimed: true}
		idx, ok := s.growFrom(arena.Index(seed))
		if !ok {
			continue
		}
		refineCircuit(m, cg, bg, idx, maxCircuitSize)
	}
	formJunctions(m, bg)
}
