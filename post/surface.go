package post

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/linalg"
	"github.com/rodyherrera/dxa/mesh"
)

// SmoothMeshSurface runs iterations rounds of Taubin smoothing over m's
// vertex positions in place, averaging each vertex against every vertex
// reached by one of its outgoing half-edges — SmoothLine's one-dimensional
// neighbor pair generalized to a full vertex ring. Requires m.BuildAdjacency
// to have already been called (it is, by burgers.Build, before this stage
// runs).
func SmoothMeshSurface(c cell.Cell, m *mesh.Mesh, iterations int) {
	if iterations <= 0 {
		return
	}
	n := m.Vertices.Len()
	positions := make([]linalg.Vec3, n)
	for i := 0; i < n; i++ {
		positions[i] = m.Vertices.Get(arena.Index(i)).Position
	}
	rings := make([][]linalg.Vec3, n)
	for i := 0; i < n; i++ {
		for _, e := range m.OutgoingEdges(arena.Index(i)) {
			rings[i] = append(rings[i], positions[m.Edges.Get(e).Target])
		}
	}
	smoothed := SmoothSurface(c, positions, rings, iterations)
	for i := 0; i < n; i++ {
		m.Vertices.Get(arena.Index(i)).Position = smoothed[i]
	}
}
