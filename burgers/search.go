package burgers

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/linalg"
	"github.com/rodyherrera/dxa/mesh"
)

// frontierEntry is one vertex's state in a single-seed circuit search: the
// lattice-frame coordinate accumulated along the path that reached it, the
// composed Frank rotation along that same path, the half-edge that was
// followed to arrive (arena.Nil at the root), and its BFS depth.
type frontierEntry struct {
	coord      linalg.Vec3
	tm         linalg.Mat3
	parentEdge arena.Index
	depth      int
}

// searchState is the mutable state of one growFrom call.
type searchState struct {
	m        *mesh.Mesh
	cg       *cluster.Graph
	bg       *Graph
	maxDepth int
	visited  map[arena.Index]frontierEntry

	// restrictUnclaimed, when true, skips any edge already claimed by an
	// earlier circuit — used by the secondary-segment pass (secondary.go)
	// to search only the mesh region primary tracing left uncovered.
	restrictUnclaimed bool
}

// SearchPrimary runs one breadth-first circuit search per mesh vertex up
// to depth (maxCircuitSize-1)/2, attempting at most one materialization
// per seed, and returns the newly materialized circuits' indices.
func SearchPrimary(m *mesh.Mesh, cg *cluster.Graph, bg *Graph, maxCircuitSize int) []arena.Index {
	maxDepth := (maxCircuitSize - 1) / 2
	var found []arena.Index
	n := m.Vertices.Len()
	for seed := 0; seed < n; seed++ {
		s := &searchState{m: m, cg: cg, bg: bg, maxDepth: maxDepth}
		if idx, ok := s.growFrom(arena.Index(seed)); ok {
			found = append(found, idx)
		}
	}
	return found
}

// growFrom performs the BFS described in package doc starting at start,
// returning the first successfully materialized circuit, if any.
func (s *searchState) growFrom(start arena.Index) (arena.Index, bool) {
	s.visited = map[arena.Index]frontierEntry{
		start: {coord: linalg.Vec3{}, tm: linalg.Identity(), parentEdge: arena.Nil, depth: 0},
	}
	queue := []arena.Index{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		eu := s.visited[u]
		if eu.depth >= s.maxDepth {
			continue
		}
		for _, edgeIdx := range s.m.OutgoingEdges(u) {
			edge := s.m.Edges.Get(edgeIdx)
			if s.restrictUnclaimed && edge.Circuit.Valid() {
				continue
			}
			v := edge.Target
			transitionTM := linalg.Identity()
			if edge.ClusterTransition.Valid() {
				transitionTM = s.cg.Transitions.Get(edge.ClusterTransition).TM
			}
			newCoord := eu.coord.Add(eu.tm.MulVec(edge.ClusterVector))
			newTM := eu.tm.Mul(transitionTM)

			if existing, seen := s.visited[v]; seen {
				if v == start {
					continue
				}
				if !existing.coord.ApproxEqual(newCoord, cluster.LatticeVectorEpsilon) &&
					existing.tm.ApproxEqual(newTM, cluster.TransitionMatrixEpsilon) {
					newEntry := frontierEntry{coord: newCoord, tm: newTM, parentEdge: edgeIdx, depth: eu.depth + 1}
					if circuitIdx, ok := s.materialize(start, v, newEntry); ok {
						return circuitIdx, true
					}
				}
				continue
			}
			s.visited[v] = frontierEntry{coord: newCoord, tm: newTM, parentEdge: edgeIdx, depth: eu.depth + 1}
			queue = append(queue, v)
		}
	}
	return arena.Nil, false
}

// chainTo reconstructs the root-to-v edge sequence from s.visited's
// parent links, in root->...->v order.
func (s *searchState) chainTo(v arena.Index) []arena.Index {
	var edges []arena.Index
	cur := v
	for {
		e := s.visited[cur]
		if !e.parentEdge.Valid() {
			break
		}
		edges = append(edges, e.parentEdge)
		cur = s.m.Edges.Get(e.parentEdge).Origin
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}

// threadCircuit writes Circuit/CircuitNext onto every half-edge in cycle,
// linking them into a cyclic list matching Circuit.Edges' walk order.
func threadCircuit(m *mesh.Mesh, idx arena.Index, cycle []arena.Index) {
	n := len(cycle)
	for i, e := range cycle {
		he := m.Edges.Get(e)
		he.Circuit = idx
		he.CircuitNext = cycle[(i+1)%n]
	}
}
