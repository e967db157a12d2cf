package burgers

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/linalg"
)

// Circuit is a closed walk of mesh half-edges whose summed ClusterVector
// (the Burgers vector) is non-zero. Edges is the materialized walk order,
// a convenience cache of the same cycle threaded onto the underlying
// mesh.HalfEdge.CircuitNext links.
type Circuit struct {
	Edges               []arena.Index
	BurgersVector       linalg.Vec3
	Cluster             arena.Index // cluster frame the Burgers vector is expressed in
	IsDangling          bool
	IsCompletelyBlocked bool
	Node                arena.Index // owning DislocationNode, arena.Nil until a segment is created
	CapEdges            []arena.Index
}

// DislocationNode is one endpoint of a segment: its current Burgers
// circuit, the segment it belongs to, and the node at the segment's other
// end (set when the segment is created). JRNext/JRPrev thread a doubly-circular junction
// ring; a self-pointing node is unattached.
type DislocationNode struct {
	Segment  arena.Index
	Opposite arena.Index
	Circuit  arena.Index
	JRNext   arena.Index
	JRPrev   arena.Index
}

// DislocationSegment is a traced dislocation line: a polyline with a
// per-point core size, two endpoint nodes, and the Burgers vector (a
// cluster vector) it carries. ReplacedBy is set when a junction merge
// absorbs this segment into another; consumers should skip segments with
// ReplacedBy.Valid().
type DislocationSegment struct {
	Line          []linalg.Vec3
	CoreSize      []int
	ForwardNode   arena.Index
	BackwardNode  arena.Index
	BurgersVector linalg.Vec3
	Cluster       arena.Index
	ReplacedBy    arena.Index
	ID            int
}

// Graph owns every pool backing a single frame's Burgers-circuit trace.
type Graph struct {
	Circuits *arena.Pool[Circuit]
	Nodes    *arena.Pool[DislocationNode]
	Segments *arena.Pool[DislocationSegment]
	nextID   int
}

// NewGraph returns an empty Burgers-circuit graph.
func NewGraph() *Graph {
	return &Graph{
		Circuits: arena.NewPool[Circuit](16),
		Nodes:    arena.NewPool[DislocationNode](16),
		Segments: arena.NewPool[DislocationSegment](8),
	}
}

// addNode appends an unattached junction-ring node (self-linked).
func (g *Graph) addNode(circuit arena.Index) arena.Index {
	idx := g.Nodes.Add(DislocationNode{Segment: arena.Nil, Opposite: arena.Nil, Circuit: circuit})
	n := g.Nodes.Get(idx)
	n.JRNext, n.JRPrev = idx, idx
	return idx
}

// segmentOf returns the segment owning the circuit at idx, or nil if the
// circuit has no node yet or the node has no segment.
func (g *Graph) segmentOf(idx arena.Index) *DislocationSegment {
	c := g.Circuits.Get(idx)
	if !c.Node.Valid() {
		return nil
	}
	n := g.Nodes.Get(c.Node)
	if !n.Segment.Valid() {
		return nil
	}
	return g.Segments.Get(n.Segment)
}

// addSegment appends a new segment with the given forward/backward nodes
// and links both nodes back to it.
func (g *Graph) addSegment(forward, backward arena.Index, burgers linalg.Vec3, cluster arena.Index) arena.Index {
	idx := g.Segments.Add(DislocationSegment{
		ForwardNode:   forward,
		BackwardNode:  backward,
		BurgersVector: burgers,
		Cluster:       cluster,
		ReplacedBy:    arena.Nil,
		ID:            g.nextID,
	})
	g.nextID++
	fn, bn := g.Nodes.Get(forward), g.Nodes.Get(backward)
	fn.Segment, bn.Segment = idx, idx
	fn.Opposite, bn.Opposite = backward, forward
	return idx
}
