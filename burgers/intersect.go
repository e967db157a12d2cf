package burgers

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/mesh"
)

// circuitsIntersect reports whether any edge in cycle is already part of a
// previously materialized circuit.
//
// The full topological crossing test walks the half-edge fan at each
// vertex the two circuits share and counts how often the other circuit's
// edges cross from inside to outside; that requires a complete,
// consistently-oriented face fan at every shared vertex, which this mesh's
// simplified triangle/quad construction does not guarantee everywhere
// (interface atoms at mesh boundaries can have partial fans). Reusing an
// edge already claimed by another circuit is the cheap, always-available
// proxy used here: two circuits that share a half-edge necessarily share
// its two endpoint vertices and, in the common "snagged on the same
// facet" case the full test targets, do cross there. This is a documented
// simplification (see DESIGN.md) relative to the in/out fan count.
func circuitsIntersect(m *mesh.Mesh, cycle []arena.Index) bool {
	for _, e := range cycle {
		if m.Edges.Get(e).Circuit.Valid() {
			return true
		}
	}
	return false
}
