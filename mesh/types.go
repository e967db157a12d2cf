package mesh

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/linalg"
)

// VertexFlag is a bitmask of per-vertex boolean properties.
type VertexFlag uint8

const (
	// FlagSharedNode marks a vertex produced by duplicate_shared_mesh_nodes
	// splitting an original vertex whose edges formed multiple disconnected
	// face fans.
	FlagSharedNode VertexFlag = 1 << iota
)

// Vertex is one interface-mesh node, in one-to-one correspondence with a
// non-crystalline atom bordering at least one crystalline atom.
type Vertex struct {
	AtomIndex int
	Position  linalg.Vec3
	// Cluster is the owning crystalline neighbor's cluster, or arena.Nil
	// if this vertex has not been associated with one yet.
	Cluster   arena.Index
	FirstEdge arena.Index // arena.Nil until at least one edge touches it
	Flags     VertexFlag
}

// HalfEdge is one directed mesh edge. Every half-edge is allocated in a
// pair with its opposite (Opposite(i) == i^1); Face is arena.Nil when the
// edge bounds no face on this side.
type HalfEdge struct {
	Origin            arena.Index // mesh.Vertex this edge starts at
	Target            arena.Index // mesh.Vertex this edge ends at
	Opposite          arena.Index
	Next              arena.Index // next edge around Face
	Face              arena.Index
	PhysicalVector    linalg.Vec3 // wrap_vector(pos(Target) - pos(Origin))
	ClusterVector     linalg.Vec3 // PhysicalVector expressed in the pivot atom's lattice frame
	ClusterTransition arena.Index // transition from Origin's cluster to Target's

	// IsSFEdge flags an edge crossing a stacking fault. No trace path in
	// burgers reads this yet; it exists so a future stacking-fault pass
	// has somewhere to write.
	IsSFEdge bool

	// Circuit and CircuitNext are owned by package burgers: Circuit is the
	// arena.Index of the Burgers circuit currently threaded through this
	// edge (arena.Nil if none), and CircuitNext is the next edge in that
	// circuit's cyclic walk order.
	Circuit     arena.Index
	CircuitNext arena.Index
}

// Face is a triangular facet of the interface mesh; its three edges are
// reached by following Next from FirstEdge.
type Face struct {
	FirstEdge arena.Index
}

// Mesh is the half-edge interface mesh built by Build.
type Mesh struct {
	Vertices *arena.Pool[Vertex]
	Edges    *arena.Pool[HalfEdge]
	Faces    *arena.Pool[Face]

	vertexOfAtom map[int]arena.Index
	edgeOfPair   map[[2]arena.Index]arena.Index // (originVertex,targetVertex) -> half-edge index
	outgoing     map[arena.Index][]arena.Index  // vertex -> outgoing half-edges, built by BuildAdjacency
}

func newMesh() *Mesh {
	return &Mesh{
		Vertices:     arena.NewPool[Vertex](64),
		Edges:        arena.NewPool[HalfEdge](128),
		Faces:        arena.NewPool[Face](64),
		vertexOfAtom: make(map[int]arena.Index),
		edgeOfPair:   make(map[[2]arena.Index]arena.Index),
	}
}

// Opposite returns the paired half-edge's index.
func (m *Mesh) Opposite(i arena.Index) arena.Index {
	return i ^ 1
}

// NextFaceEdge returns the next edge around e's face.
func (m *Mesh) NextFaceEdge(e arena.Index) arena.Index {
	return m.Edges.Get(e).Next
}
