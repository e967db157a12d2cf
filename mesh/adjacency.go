package mesh

import "github.com/rodyherrera/dxa/arena"

// BuildAdjacency indexes every half-edge by its Origin vertex, so later
// stages (burgers' circuit search) can enumerate a vertex's outgoing edges
// without a linear scan per lookup. Call once after Build and before any
// mesh-mutating post-processing pass; a subsequent pass that adds edges
// must call it again to pick up the new edges.
func (m *Mesh) BuildAdjacency() {
	m.outgoing = make(map[arena.Index][]arena.Index, m.Vertices.Len())
	n := m.Edges.Len()
	for i := 0; i < n; i++ {
		e := m.Edges.Get(arena.Index(i))
		m.outgoing[e.Origin] = append(m.outgoing[e.Origin], arena.Index(i))
	}
}

// OutgoingEdges returns every half-edge whose Origin is v, in ascending
// edge-index order (deterministic, since edges are appended in a fixed
// order by Build). Returns nil if BuildAdjacency has not been called.
func (m *Mesh) OutgoingEdges(v arena.Index) []arena.Index {
	return m.outgoing[v]
}

// EdgeBetween returns the half-edge a->b, if one has been created.
func (m *Mesh) EdgeBetween(a, b arena.Index) (arena.Index, bool) {
	idx, ok := m.edgeOfPair[[2]arena.Index{a, b}]
	return idx, ok
}
