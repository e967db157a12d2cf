// Package cell implements the simulation cell's basis/origin/PBC
// arithmetic, and a binned neighbor enumerator over a 3D point set
// within a fixed cutoff radius.
//
// The neighbor binning generalizes the teacher's gridgraph package (a 2D
// grid of cells with Conn4/Conn8 neighbor offsets, converted to a
// core.Graph of unit-weight edges) from a dense 2D raster to a sparse 3D
// spatial hash: instead of one vertex per grid cell, atoms are inserted
// into bins sized so that any pair within the cutoff must share a bin or
// lie in one of the 26 adjacent bins — gridgraph's NeighborOffsets()
// precomputed-offset idea, extended from 4/8 to 27 (3x3x3) directions and
// made periodic-aware per axis.
package cell
