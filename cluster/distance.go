package cluster

import "github.com/rodyherrera/dxa/arena"

// ComputeDistances runs an unweighted BFS relaxation from source over
// non-self transitions, the teacher's dijkstra relaxation loop specialized
// to unit edge weights, and writes Cluster.Distance for every cluster
// reachable from source. Unreached clusters keep Distance == -1.
func ComputeDistances(g *Graph, source arena.Index) {
	n := g.Clusters.Len()
	for i := 0; i < n; i++ {
		g.Clusters.Get(arena.Index(i)).Distance = -1
	}
	if !source.Valid() || int(source) >= n {
		return
	}
	g.Clusters.Get(source).Distance = 0

	queue := []arena.Index{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		du := g.Clusters.Get(u).Distance
		for _, tIdx := range g.TransitionsOf(u) {
			t := g.Transitions.Get(tIdx)
			if t.From == t.To {
				continue
			}
			v := t.To
			cv := g.Clusters.Get(v)
			if cv.Distance != -1 {
				continue
			}
			cv.Distance = du + 1
			queue = append(queue, v)
		}
	}
}

// SortedTransitions returns every transition index ordered by the minimum
// Distance of its two endpoints, ties broken by insertion order, giving a
// deterministic traversal order over the transitions.
func (g *Graph) SortedTransitions() []arena.Index {
	n := g.Transitions.Len()
	out := make([]arena.Index, n)
	for i := range out {
		out[i] = arena.Index(i)
	}
	key := func(idx arena.Index) int {
		t := g.Transitions.Get(idx)
		df := g.Clusters.Get(t.From).Distance
		dt := g.Clusters.Get(t.To).Distance
		if df == -1 {
			df = int(^uint(0) >> 1)
		}
		if dt == -1 {
			dt = int(^uint(0) >> 1)
		}
		if df < dt {
			return df
		}
		return dt
	}
	// insertion sort: n is small (cluster counts are tiny relative to
	// atom counts) and stability matters more than asymptotic speed.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && key(out[j-1]) > key(out[j]) {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
