// Package structure implements per-atom crystal classification and
// local lattice orientation, via
// either Common Neighbor Analysis (CNA) or Polyhedral Template Matching
// (PTM).
//
// CNA's "longest bond chain" computation — the size of the largest
// connected component in the bond-adjacency subgraph induced by a pair's
// common neighbors — is written as an iterative queue-based walk over a
// tiny in-memory adjacency bitset, generalizing the teacher's bfs package
// (core.Graph traversal with a visited-set and FIFO queue, see
// bfs.BFS's walker) down to the handful of neighbor slots CNA ever needs
// to traverse, where allocating a full core.Graph per atom would dominate
// the cost of the classification itself.
//
// PTM's rotation fit reuses linalg.FitRotation (itself a generalization of
// the teacher's ops.Eigen Jacobi sweep to the fixed 4x4 quaternion case).
package structure
