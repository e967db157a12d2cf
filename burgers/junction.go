package burgers

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/linalg"
	"github.com/rodyherrera/dxa/mesh"
)

// formJunctions marks every circuit whose neighbors (across each edge's
// opposite-face circuit) are all themselves dangling as "completely
// blocked", splices their nodes into junction rings, then resolves each
// ring: a two-arm ring merges its two segments into one continuous line;
// a three-or-more-arm ring extends every arm's line to the ring's
// geometric center and stops refining all of them.
func formJunctions(m *mesh.Mesh, bg *Graph) {
	n := bg.Circuits.Len()
	for i := 0; i < n; i++ {
		idx := arena.Index(i)
		c := bg.Circuits.Get(idx)
		if !c.IsDangling || c.IsCompletelyBlocked {
			continue
		}
		neighbors := neighborCircuits(m, c, idx)
		if len(neighbors) == 0 {
			continue
		}
		allDangling := true
		for _, nb := range neighbors {
			if !bg.Circuits.Get(nb).IsDangling {
				allDangling = false
				break
			}
		}
		if !allDangling {
			continue
		}
		c.IsCompletelyBlocked = true
		for _, nb := range neighbors {
			bg.Circuits.Get(nb).IsCompletelyBlocked = true
			spliceIntoRing(bg, c.Node, bg.Circuits.Get(nb).Node)
		}
	}
	resolveJunctionRings(m, bg)
}

// neighborCircuits collects every distinct other circuit reachable by
// crossing to the opposite side of one of c's edges — the circuit (if
// any) bounding the mesh from the other direction along that boundary.
func neighborCircuits(m *mesh.Mesh, c *Circuit, idx arena.Index) []arena.Index {
	seen := make(map[arena.Index]bool)
	var out []arena.Index
	for _, e := range c.Edges {
		opp := m.Opposite(e)
		nb := m.Edges.Get(opp).Circuit
		if !nb.Valid() || nb == idx || seen[nb] {
			continue
		}
		seen[nb] = true
		out = append(out, nb)
	}
	return out
}

// spliceIntoRing merges the doubly-circular junction rings containing a
// and b, the standard "swap successor pointers" technique for joining two
// circular linked lists.
func spliceIntoRing(bg *Graph, a, b arena.Index) {
	if a == b {
		return
	}
	an, bn := bg.Nodes.Get(a), bg.Nodes.Get(b)
	aNext, bNext := an.JRNext, bn.JRNext
	an.JRNext = bNext
	bg.Nodes.Get(bNext).JRPrev = a
	bn.JRNext = aNext
	bg.Nodes.Get(aNext).JRPrev = b
}

// ringNodes walks JRNext from start until it returns, collecting every
// node in the ring.
func ringNodes(bg *Graph, start arena.Index) []arena.Index {
	ring := []arena.Index{start}
	for cur := bg.Nodes.Get(start).JRNext; cur != start; cur = bg.Nodes.Get(cur).JRNext {
		ring = append(ring, cur)
	}
	return ring
}

// resolveJunctionRings processes every completely-blocked circuit's
// junction ring exactly once.
func resolveJunctionRings(m *mesh.Mesh, bg *Graph) {
	processed := make(map[arena.Index]bool)
	n := bg.Circuits.Len()
	for i := 0; i < n; i++ {
		idx := arena.Index(i)
		c := bg.Circuits.Get(idx)
		if !c.IsCompletelyBlocked || !c.Node.Valid() || processed[c.Node] {
			continue
		}
		ring := ringNodes(bg, c.Node)
		for _, node := range ring {
			processed[node] = true
		}
		switch {
		case len(ring) == 2:
			mergeTwoArmJunction(bg, ring[0], ring[1])
		case len(ring) >= 3:
			extendMultiArmJunction(m, bg, ring)
		}
	}
}

// mergeTwoArmJunction joins the two segments meeting at nodeA/nodeB into
// one continuous segment, reversing lines as needed so they concatenate
// head-to-tail, and marks both originals ReplacedBy the merged segment.
func mergeTwoArmJunction(bg *Graph, nodeA, nodeB arena.Index) {
	segAIdx, segBIdx := bg.Nodes.Get(nodeA).Segment, bg.Nodes.Get(nodeB).Segment
	if !segAIdx.Valid() || !segBIdx.Valid() || segAIdx == segBIdx {
		return
	}
	segA, segB := bg.Segments.Get(segAIdx), bg.Segments.Get(segBIdx)

	otherA := segA.ForwardNode
	if otherA == nodeA {
		otherA = segA.BackwardNode
	}
	otherB := segB.ForwardNode
	if otherB == nodeB {
		otherB = segB.BackwardNode
	}

	lineA, coreA := segA.Line, segA.CoreSize
	if segA.BackwardNode == nodeA {
		lineA, coreA = reverseLine(lineA), reverseCore(coreA)
	}
	lineB, coreB := segB.Line, segB.CoreSize
	if segB.ForwardNode == nodeB {
		lineB, coreB = reverseLine(lineB), reverseCore(coreB)
	}

	merged := append(append([]linalg.Vec3{}, lineA...), lineB...)
	mergedCore := append(append([]int{}, coreA...), coreB...)

	newIdx := bg.Segments.Add(DislocationSegment{
		Line:          merged,
		CoreSize:      mergedCore,
		ForwardNode:   otherA,
		BackwardNode:  otherB,
		BurgersVector: segA.BurgersVector,
		Cluster:       segA.Cluster,
		ReplacedBy:    arena.Nil,
		ID:            bg.nextID,
	})
	bg.nextID++
	oa, ob := bg.Nodes.Get(otherA), bg.Nodes.Get(otherB)
	oa.Segment, ob.Segment = newIdx, newIdx
	oa.Opposite, ob.Opposite = otherB, otherA
	segA.ReplacedBy = newIdx
	segB.ReplacedBy = newIdx

	bg.Circuits.Get(bg.Nodes.Get(nodeA).Circuit).IsDangling = false
	bg.Circuits.Get(bg.Nodes.Get(nodeB).Circuit).IsDangling = false
}

// extendMultiArmJunction extends every arm's polyline to the ring's
// geometric center and stops refining each arm's circuit.
func extendMultiArmJunction(m *mesh.Mesh, bg *Graph, ring []arena.Index) {
	var sum linalg.Vec3
	for _, node := range ring {
		sum = sum.Add(circuitCentroid(m, bg.Circuits.Get(bg.Nodes.Get(node).Circuit)))
	}
	center := sum.Scale(1 / float64(len(ring)))

	for _, node := range ring {
		n := bg.Nodes.Get(node)
		c := bg.Circuits.Get(n.Circuit)
		c.IsDangling = false
		if !n.Segment.Valid() {
			continue
		}
		seg := bg.Segments.Get(n.Segment)
		if seg.ForwardNode == node {
			seg.Line = append(seg.Line, center)
			seg.CoreSize = append(seg.CoreSize, 0)
		} else {
			seg.Line = append([]linalg.Vec3{center}, seg.Line...)
			seg.CoreSize = append([]int{0}, seg.CoreSize...)
		}
	}
}

func reverseLine(line []linalg.Vec3) []linalg.Vec3 {
	out := make([]linalg.Vec3, len(line))
	for i, p := range line {
		out[len(line)-1-i] = p
	}
	return out
}

func reverseCore(core []int) []int {
	out := make([]int, len(core))
	for i, v := range core {
		out[len(core)-1-i] = v
	}
	return out
}
