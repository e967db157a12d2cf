package cluster

import "github.com/rodyherrera/dxa/arena"

// Connected reports whether every cluster in g is reachable from cluster 0
// via non-self transitions, the way gridgraph.ConnectedComponents reports
// whether a grid graph has a single component: run one BFS and compare the
// visited count against the vertex count.
func (g *Graph) Connected() bool {
	n := g.Clusters.Len()
	if n <= 1 {
		return true
	}
	visited := make([]bool, n)
	visited[0] = true
	count := 1
	queue := []arena.Index{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, tIdx := range g.TransitionsOf(u) {
			t := g.Transitions.Get(tIdx)
			if t.From == t.To {
				continue
			}
			v := int(t.To)
			if visited[v] {
				continue
			}
			visited[v] = true
			count++
			queue = append(queue, t.To)
		}
	}
	return count == n
}
