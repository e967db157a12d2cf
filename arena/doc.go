// Package arena provides a generic, append-only, index-addressed pool used
// in place of the pointer-rich object graphs of the original DXA engine
// (see Design Note 1: vertices, half-edges, faces, clusters, transitions,
// circuits, segments and nodes are each stored as values in an arena.Pool
// and referenced by an arena.Index instead of a pointer).
//
// This generalizes the teacher's core.Graph adjacency-map storage (string
// keys into map[string]*Vertex) to a slice keyed by a dense integer index:
// the same "single owning container, lightweight handles into it" shape,
// but addressed by position instead of by ID string, which is what lets a
// whole frame's pools be reset in bulk (Pool.Reset) without touching
// individual allocations — a per-frame bulk-clear lifecycle.
package arena
