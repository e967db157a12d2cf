// Package mesh builds the half-edge interface mesh: one vertex per
// non-crystalline ("interface") atom that borders a crystalline region,
// with triangular faces induced by each crystalline atom's coordination
// polyhedron.
//
// The half-edge arena generalizes the teacher's core.Graph adjacency
// storage the same way cluster.Graph does (arena.Pool instead of
// map[string]*Vertex), with the opposite-pairing invariant
// Opposite(i) == i^1 enforced by always allocating a half-edge's two
// directions together. Hole-closure and the mesh-repair passes are
// grounded on dfs's depth-limited traversal shape, adapted from a
// visited-set walk over graph vertices to a bounded walk over the
// interface mesh's edge fans.
package mesh
