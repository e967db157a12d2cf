package cluster

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/config"
)

// BuildGraph walks every crystalline atom in s breadth-first, grouping
// atoms into clusters of compatible local orientation and recording a
// transition for every pair of adjacent atoms that disagree. It writes
// Cluster into each assigned atom. Atom neighbor tables (populated by
// atom.PopulateNeighbors beforehand) are the only adjacency information
// this needs.
//
// If s has no crystalline atom, the returned Graph has zero clusters and
// no transitions — every downstream stage then sees an empty
// defect-adjacency and yields no dislocations.
func BuildGraph(s *atom.Set) *Graph {
	g := NewGraph()
	clusterOf := make([]arena.Index, len(s.Atoms))
	for i := range clusterOf {
		clusterOf[i] = arena.Nil
	}

	// Pass 1: grow clusters via BFS, attaching a neighbor only when its
	// orientation agrees with the cluster's reference orientation (the
	// seed atom's) within TransitionMatrixEpsilon.
	queue := make([]int, 0, len(s.Atoms))
	for seed := range s.Atoms {
		a := &s.Atoms[seed]
		if a.Structure == config.Other || clusterOf[seed].Valid() {
			continue
		}
		cIdx := g.AddCluster(a.Structure, a.Orientation, seed)
		clusterOf[seed] = cIdx
		cl := g.Clusters.Get(cIdx)
		cl.Size++

		queue = queue[:0]
		queue = append(queue, seed)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			ua := &s.Atoms[u]
			for n := 0; n < ua.NeighborCount; n++ {
				v := int(ua.Neighbors[n])
				if clusterOf[v].Valid() {
					continue
				}
				va := &s.Atoms[v]
				if va.Structure != a.Structure {
					continue
				}
				rel := va.Orientation.Mul(a.Orientation.Transpose())
				if !rel.IsIdentity(TransitionMatrixEpsilon) {
					continue
				}
				clusterOf[v] = cIdx
				cl := g.Clusters.Get(cIdx)
				cl.Size++
				queue = append(queue, v)
			}
		}
	}

	// Pass 2: every crystalline-atom neighbor pair straddling two
	// different clusters contributes to (or creates) the transition
	// between those clusters.
	for i := range s.Atoms {
		ci := clusterOf[i]
		if !ci.Valid() {
			continue
		}
		ai := &s.Atoms[i]
		for n := 0; n < ai.NeighborCount; n++ {
			j := int(ai.Neighbors[n])
			cj := clusterOf[j]
			if !cj.Valid() || cj == ci {
				continue
			}
			aj := &s.Atoms[j]
			tm := aj.Orientation.Mul(ai.Orientation.Transpose())
			tIdx := g.AddOrGetTransition(ci, cj, tm)
			t := g.Transitions.Get(tIdx)
			t.Area++
		}
		s.Atoms[i].Cluster = ci
	}

	return g
}
