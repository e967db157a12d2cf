package burgers

import (
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/mesh"
)

// Build runs the full Burgers-loop pipeline over m: primary circuit
// search at the minimum length, the incremental refine/junction outer
// loop up to cfg.ExtendedCircuitSize (re-running primary search at every
// odd length up to cfg.MaxCircuitSize, per the spec's incremental outer
// loop), secondary-segment tracing over whatever the primary pass left
// uncovered, and finalization.
func Build(m *mesh.Mesh, cg *cluster.Graph, cfg config.Config) *Graph {
	m.BuildAdjacency()
	bg := NewGraph()

	active := SearchPrimary(m, cg, bg, 3)
	for limit := 3; limit <= cfg.ExtendedCircuitSize; limit++ {
		for _, idx := range active {
			refineCircuit(m, cg, bg, idx, limit)
		}
		formJunctions(m, bg)
		if limit%2 == 1 && limit <= cfg.MaxCircuitSize {
			active = append(active, SearchPrimary(m, cg, bg, limit)...)
		}
	}

	traceSecondarySegments(m, cg, bg, cfg.MaxCircuitSize)
	finalizeSegments(cg, bg, cfg)
	return bg
}
