// Package cluster groups crystalline atoms into connected clusters of
// mutually-compatible local orientation, and records the rotation
// ("transition") between every pair of adjacent clusters.
//
// It generalizes the teacher's core.Graph (vertices, edges, adjacency,
// NewGraph/AddVertex/AddEdge) into a domain-specific Graph whose vertices
// are Clusters and whose edges are Transitions carrying a rotation matrix
// instead of a scalar weight. Cluster growth is a breadth-first walk
// grounded on bfs.BFS's queue/visited/hook shape; the per-cluster hop
// distance from a canonical cluster reuses the teacher's dijkstra
// relaxation loop specialized to unit edge weights (plain BFS layering).
package cluster
