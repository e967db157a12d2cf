package cluster

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/linalg"
)

// TransitionMatrixEpsilon bounds how far a candidate rotation may deviate
// from identity (same-cluster test) or from another composed rotation
// (Burgers-loop closure test) and still be accepted as "the same".
const TransitionMatrixEpsilon = 0.15

// LatticeVectorEpsilon bounds how far two independently-accumulated
// lattice-frame coordinates may disagree and still be treated as the
// same point.
const LatticeVectorEpsilon = 0.15

// Cluster is a maximal connected region of crystalline atoms sharing one
// reference local orientation, up to TransitionMatrixEpsilon.
type Cluster struct {
	Structure   config.CrystalStructure
	Orientation linalg.Mat3 // reference orientation, fixed at the seed atom
	Seed        int         // atom index that started this cluster
	Size        int         // number of atoms assigned to it

	// Distance is the minimum number of non-self transitions from the
	// canonical cluster (the one containing ComputeDistances' source),
	// filled in by ComputeDistances. -1 until computed or unreachable.
	Distance int
}

// Transition is a deduplicated edge between two distinct clusters (or a
// self-transition when From == To, recorded for completeness but never
// walked by distance relaxation). TM rotates a vector expressed in From's
// lattice frame into To's lattice frame.
type Transition struct {
	From, To arena.Index
	TM       linalg.Mat3
	Area     int // number of atom-pairs that contributed to this transition
	Reverse  arena.Index
}

// Graph is the cluster adjacency graph built by BuildGraph.
type Graph struct {
	Clusters    *arena.Pool[Cluster]
	Transitions *arena.Pool[Transition]

	// pairIndex deduplicates transitions per ordered (From,To) pair; both
	// directions are registered, and each direction accumulates its own Area.
	pairIndex map[[2]arena.Index]arena.Index
}

// NewGraph returns an empty cluster graph ready for BuildGraph or manual
// construction (tests).
func NewGraph() *Graph {
	return &Graph{
		Clusters:    arena.NewPool[Cluster](16),
		Transitions: arena.NewPool[Transition](16),
		pairIndex:   make(map[[2]arena.Index]arena.Index),
	}
}

// AddCluster appends a new cluster and returns its index.
func (g *Graph) AddCluster(structure config.CrystalStructure, orientation linalg.Mat3, seed int) arena.Index {
	return g.Clusters.Add(Cluster{
		Structure:   structure,
		Orientation: orientation,
		Seed:        seed,
		Size:        0,
		Distance:    -1,
	})
}

// AddOrGetTransition returns the existing transition between from and to,
// creating it (plus its reverse) on first use. tm is only used to seed a
// newly-created transition; subsequent calls ignore it.
func (g *Graph) AddOrGetTransition(from, to arena.Index, tm linalg.Mat3) arena.Index {
	key := pairKey(from, to)
	if idx, ok := g.pairIndex[key]; ok {
		return idx
	}
	fwd := g.Transitions.Add(Transition{From: from, To: to, TM: tm})
	var revIdx arena.Index
	if from == to {
		revIdx = fwd
		g.Transitions.Get(fwd).Reverse = fwd
	} else {
		rev := g.Transitions.Add(Transition{From: to, To: from, TM: tm.Transpose(), Reverse: fwd})
		g.Transitions.Get(fwd).Reverse = rev
		revIdx = rev
	}
	g.pairIndex[key] = fwd
	g.pairIndex[pairKey(to, from)] = revIdx
	return fwd
}

func pairKey(a, b arena.Index) [2]arena.Index {
	return [2]arena.Index{a, b}
}

// TransitionsOf returns the indices of every transition whose From endpoint
// is c, in insertion order. Every transition is stored together with its
// reverse, so these reach every cluster adjacent to c.
func (g *Graph) TransitionsOf(c arena.Index) []arena.Index {
	var out []arena.Index
	for i := 0; i < g.Transitions.Len(); i++ {
		idx := arena.Index(i)
		t := g.Transitions.Get(idx)
		if t.From == c {
			out = append(out, idx)
		}
	}
	return out
}
