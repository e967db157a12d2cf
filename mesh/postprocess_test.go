package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/linalg"
)

// singleTriangle builds a minimal one-face mesh over three fresh vertices
// and returns the mesh plus its three outer half-edges (the boundary, each
// currently Face-invalid since no opposing face exists).
func singleTriangle(t *testing.T) (*Mesh, [3]arena.Index) {
	t.Helper()
	m := newMesh()
	v0 := m.Vertices.Add(Vertex{Position: linalg.Vec3{X: 0}, FirstEdge: arena.Nil})
	v1 := m.Vertices.Add(Vertex{Position: linalg.Vec3{X: 1}, FirstEdge: arena.Nil})
	v2 := m.Vertices.Add(Vertex{Position: linalg.Vec3{X: 0, Y: 1}, FirstEdge: arena.Nil})

	addEdge := func(a, b arena.Index, vec linalg.Vec3) arena.Index {
		first := m.Edges.Reserve(2)
		second := first + 1
		*m.Edges.Get(first) = HalfEdge{Origin: a, Target: b, Opposite: second, Next: arena.Nil, Face: arena.Nil, ClusterVector: vec}
		*m.Edges.Get(second) = HalfEdge{Origin: b, Target: a, Opposite: first, Next: arena.Nil, Face: arena.Nil, ClusterVector: vec.Neg()}
		m.edgeOfPair[[2]arena.Index{a, b}] = first
		m.edgeOfPair[[2]arena.Index{b, a}] = second
		return first
	}

	e01 := addEdge(v0, v1, linalg.Vec3{X: 1})
	e12 := addEdge(v1, v2, linalg.Vec3{X: -1, Y: 1})
	e20 := addEdge(v2, v0, linalg.Vec3{Y: -1})
	m.addFace(e01, e12, e20)

	outer := [3]arena.Index{m.Opposite(e20), m.Opposite(e01), m.Opposite(e12)}
	m.BuildAdjacency()
	return m, outer
}

func TestCloseTriangularHolesClosesZeroSumBoundary(t *testing.T) {
	m, _ := singleTriangle(t)
	require.Equal(t, 1, m.Faces.Len())
	closed := CloseTriangularHoles(m)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 2, m.Faces.Len())
	require.NoError(t, Validate(m))
}

func TestCloseTriangularHolesSkipsNonZeroSumBoundary(t *testing.T) {
	m, outer := singleTriangle(t)
	// perturb one boundary edge's lattice vector so the rim no longer sums to zero
	m.Edges.Get(outer[0]).ClusterVector = linalg.Vec3{X: 5}
	closed := CloseTriangularHoles(m)
	assert.Equal(t, 0, closed)
	assert.Equal(t, 1, m.Faces.Len())
}

func TestRemoveUnnecessaryFacetsDissolvesBubblePair(t *testing.T) {
	m, outer := singleTriangle(t)
	// close the hole to get a genuine back-to-back bubble: two faces sharing
	// all three (undirected) vertex pairs.
	closed := CloseTriangularHoles(m)
	require.Equal(t, 1, closed)
	require.Equal(t, 2, m.Faces.Len())
	_ = outer

	removed := RemoveUnnecessaryFacets(m)
	assert.Equal(t, 1, removed)

	for f := 0; f < m.Faces.Len(); f++ {
		face := m.Faces.Get(arena.Index(f))
		assert.False(t, m.Edges.Get(face.FirstEdge).Face.Valid(), "dissolved face's representative edge should no longer claim it")
	}
}

func TestDuplicateSharedMeshNodesSplitsPinchPoint(t *testing.T) {
	m := newMesh()
	// two disjoint triangles glued only at one shared vertex (v0): a pinch
	// point with two disconnected face fans around v0.
	v0 := m.Vertices.Add(Vertex{FirstEdge: arena.Nil})
	v1 := m.Vertices.Add(Vertex{Position: linalg.Vec3{X: 1}, FirstEdge: arena.Nil})
	v2 := m.Vertices.Add(Vertex{Position: linalg.Vec3{X: 0, Y: 1}, FirstEdge: arena.Nil})
	v3 := m.Vertices.Add(Vertex{Position: linalg.Vec3{X: -1}, FirstEdge: arena.Nil})
	v4 := m.Vertices.Add(Vertex{Position: linalg.Vec3{X: 0, Y: -1}, FirstEdge: arena.Nil})

	addEdge := func(a, b arena.Index) arena.Index {
		first := m.Edges.Reserve(2)
		second := first + 1
		*m.Edges.Get(first) = HalfEdge{Origin: a, Target: b, Opposite: second, Next: arena.Nil, Face: arena.Nil}
		*m.Edges.Get(second) = HalfEdge{Origin: b, Target: a, Opposite: first, Next: arena.Nil, Face: arena.Nil}
		m.edgeOfPair[[2]arena.Index{a, b}] = first
		m.edgeOfPair[[2]arena.Index{b, a}] = second
		return first
	}

	e01 := addEdge(v0, v1)
	e12 := addEdge(v1, v2)
	e20 := addEdge(v2, v0)
	m.addFace(e01, e12, e20)

	e03 := addEdge(v0, v3)
	e34 := addEdge(v3, v4)
	e40 := addEdge(v4, v0)
	m.addFace(e03, e34, e40)

	m.BuildAdjacency()
	before := m.Vertices.Len()
	created := DuplicateSharedMeshNodes(m)
	assert.Equal(t, 1, created)
	assert.Equal(t, before+1, m.Vertices.Len())

	m.BuildAdjacency()
	// the two fans must now originate from different vertices
	origin1 := m.Edges.Get(e01).Origin
	origin2 := m.Edges.Get(e03).Origin
	assert.NotEqual(t, origin1, origin2)
	assert.True(t, m.Vertices.Get(origin1).Flags&FlagSharedNode != 0)
	assert.True(t, m.Vertices.Get(origin2).Flags&FlagSharedNode != 0)
}
