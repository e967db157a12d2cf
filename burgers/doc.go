// Package burgers traces closed Burgers circuits on a mesh.Mesh and turns
// each non-trivial one into a dislocation segment.
//
// The primary search (Build, via growFrom) is a breadth-first walk over
// mesh vertices grounded on the teacher's bfs package: the same
// enqueue/visit/frontier shape, generalized from core.Graph neighbor lists
// to a mesh vertex's outgoing half-edge ring, and from a single scalar
// distance to a pair of accumulators (a lattice-frame coordinate and a
// composed Frank rotation) carried along every path. When two paths from
// the same seed reach one vertex with disagreeing coordinates but
// agreeing rotations, a closed loop with a non-zero lattice vector has
// been found and materialize attempts to turn it into a Circuit.
//
// Refinement (refine.go) dispatches four local rewrite rules against a
// dangling circuit's edges the way the teacher's tsp package dispatches
// two_opt/three_opt moves against a tour: independent functions, tried in
// a fixed priority order (the first that applies wins, each scanning from
// the circuit's first edge), each either improving the circuit or declining.
package burgers
