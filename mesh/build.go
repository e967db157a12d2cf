package mesh

import (
	"sort"

	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/config"
)

// Build constructs the interface mesh over s: one vertex per non-
// crystalline atom bordering at least one crystalline atom, and
// triangular faces induced by each crystalline atom's bonded-neighbor
// cliques (the triangular FCC/HCP case) or bonded 4-cycles split across
// their shorter diagonal (the quadrilateral BCC case). g supplies the
// cluster each face edge's endpoints belong to, for ClusterTransition.
func Build(c cell.Cell, s *atom.Set, g *cluster.Graph) *Mesh {
	m := newMesh()

	for ai := range s.Atoms {
		at := &s.Atoms[ai]
		if at.Structure != config.Other {
			continue
		}
		var homeCluster arena.Index = arena.Nil
		hasCrystalline := false
		for n := 0; n < at.NeighborCount; n++ {
			nb := &s.Atoms[at.Neighbors[n]]
			if nb.Structure != config.Other {
				hasCrystalline = true
				homeCluster = nb.Cluster
				break
			}
		}
		if !hasCrystalline {
			continue
		}
		idx := m.Vertices.Add(Vertex{AtomIndex: ai, Position: at.Position, Cluster: homeCluster, FirstEdge: arena.Nil})
		m.vertexOfAtom[ai] = idx
	}

	done3 := make(map[[3]int]bool)
	done4 := make(map[[4]int]bool)

	for ci := range s.Atoms {
		piv := &s.Atoms[ci]
		if piv.Structure == config.Other {
			continue
		}
		var slots []int
		for n := 0; n < piv.NeighborCount; n++ {
			if _, ok := m.vertexOfAtom[int(piv.Neighbors[n])]; ok {
				slots = append(slots, n)
			}
		}
		buildTriangles(m, g, c, s, piv, slots, done3)
		buildQuads(m, g, c, s, piv, slots, done4)
	}

	return m
}

func buildTriangles(m *Mesh, g *cluster.Graph, c cell.Cell, s *atom.Set, piv *atom.Atom, slots []int, done map[[3]int]bool) {
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if !piv.NeighborBond(slots[i], slots[j]) {
				continue
			}
			for k := j + 1; k < len(slots); k++ {
				if !piv.NeighborBond(slots[i], slots[k]) || !piv.NeighborBond(slots[j], slots[k]) {
					continue
				}
				a := int(piv.Neighbors[slots[i]])
				b := int(piv.Neighbors[slots[j]])
				d := int(piv.Neighbors[slots[k]])
				key := sortedTriple(a, b, d)
				if done[key] {
					continue
				}
				done[key] = true
				addTriangleFace(m, g, c, s, piv, a, b, d)
			}
		}
	}
}

// buildQuads finds bonded 4-cycles (a-b-d-e-a) among the pivot's interface
// neighbors that are NOT already triangulated by either diagonal bond,
// and splits each across its shorter diagonal into two triangular faces —
// the quadrilateral BCC coordination case.
func buildQuads(m *Mesh, g *cluster.Graph, c cell.Cell, s *atom.Set, piv *atom.Atom, slots []int, done map[[4]int]bool) {
	n := len(slots)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i || !piv.NeighborBond(slots[i], slots[j]) {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j || !piv.NeighborBond(slots[j], slots[k]) {
					continue
				}
				for l := 0; l < n; l++ {
					if l == i || l == j || l == k {
						continue
					}
					if !piv.NeighborBond(slots[k], slots[l]) || !piv.NeighborBond(slots[l], slots[i]) {
						continue
					}
					if piv.NeighborBond(slots[i], slots[k]) || piv.NeighborBond(slots[j], slots[l]) {
						continue // already a plain triangulated quad
					}
					a := int(piv.Neighbors[slots[i]])
					b := int(piv.Neighbors[slots[j]])
					d := int(piv.Neighbors[slots[k]])
					e := int(piv.Neighbors[slots[l]])
					key := sortedQuad(a, b, d, e)
					if done[key] {
						continue
					}
					done[key] = true
					splitQuad(m, g, c, s, piv, a, b, d, e)
				}
			}
		}
	}
}

func splitQuad(m *Mesh, g *cluster.Graph, c cell.Cell, s *atom.Set, piv *atom.Atom, a, b, d, e int) {
	diagAD := c.WrapVector(s.Atoms[d].Position.Sub(s.Atoms[a].Position)).Length()
	diagBE := c.WrapVector(s.Atoms[e].Position.Sub(s.Atoms[b].Position)).Length()
	if diagAD <= diagBE {
		addTriangleFace(m, g, c, s, piv, a, b, d)
		addTriangleFace(m, g, c, s, piv, a, d, e)
	} else {
		addTriangleFace(m, g, c, s, piv, a, b, e)
		addTriangleFace(m, g, c, s, piv, b, d, e)
	}
}

func addTriangleFace(m *Mesh, g *cluster.Graph, c cell.Cell, s *atom.Set, piv *atom.Atom, a, b, d int) {
	vA, vB, vD := m.vertexOfAtom[a], m.vertexOfAtom[b], m.vertexOfAtom[d]
	e0 := m.getOrCreateEdge(g, c, s, piv, vA, vB)
	e1 := m.getOrCreateEdge(g, c, s, piv, vB, vD)
	e2 := m.getOrCreateEdge(g, c, s, piv, vD, vA)
	if m.Edges.Get(e0).Face.Valid() {
		return // this directed edge already bounds a face; leave topology as-is
	}
	m.addFace(e0, e1, e2)
}

func sortedTriple(a, b, d int) [3]int {
	t := []int{a, b, d}
	sort.Ints(t)
	return [3]int{t[0], t[1], t[2]}
}

func sortedQuad(a, b, d, e int) [4]int {
	t := []int{a, b, d, e}
	sort.Ints(t)
	return [4]int{t[0], t[1], t[2], t[3]}
}

// getOrCreateEdge returns the half-edge vA->vB, creating it (and its
// opposite vB->vA) on first use. piv's orientation frames PhysicalVector
// into ClusterVector.
func (m *Mesh) getOrCreateEdge(g *cluster.Graph, c cell.Cell, s *atom.Set, piv *atom.Atom, vA, vB arena.Index) arena.Index {
	key := [2]arena.Index{vA, vB}
	if idx, ok := m.edgeOfPair[key]; ok {
		return idx
	}
	va, vb := m.Vertices.Get(vA), m.Vertices.Get(vB)
	posA, posB := s.Atoms[va.AtomIndex].Position, s.Atoms[vb.AtomIndex].Position
	delta := c.WrapVector(posB.Sub(posA))
	clusterVec := piv.Orientation.Transpose().MulVec(delta)

	var transAB, transBA arena.Index = arena.Nil, arena.Nil
	if va.Cluster.Valid() && vb.Cluster.Valid() {
		ca := g.Clusters.Get(va.Cluster)
		cb := g.Clusters.Get(vb.Cluster)
		tm := cb.Orientation.Mul(ca.Orientation.Transpose())
		transAB = g.AddOrGetTransition(va.Cluster, vb.Cluster, tm)
		transBA = g.AddOrGetTransition(vb.Cluster, va.Cluster, tm.Transpose())
	}

	first := m.Edges.Reserve(2)
	second := first + 1
	*m.Edges.Get(first) = HalfEdge{
		Origin: vA, Target: vB, Opposite: second,
		Next: arena.Nil, Face: arena.Nil,
		PhysicalVector: delta, ClusterVector: clusterVec, ClusterTransition: transAB,
		Circuit: arena.Nil, CircuitNext: arena.Nil,
	}
	*m.Edges.Get(second) = HalfEdge{
		Origin: vB, Target: vA, Opposite: first,
		Next: arena.Nil, Face: arena.Nil,
		PhysicalVector: delta.Neg(), ClusterVector: clusterVec.Neg(), ClusterTransition: transBA,
		Circuit: arena.Nil, CircuitNext: arena.Nil,
	}
	m.edgeOfPair[key] = first
	m.edgeOfPair[[2]arena.Index{vB, vA}] = second

	if !va.FirstEdge.Valid() {
		va.FirstEdge = first
	}
	if !vb.FirstEdge.Valid() {
		vb.FirstEdge = second
	}
	return first
}

// addFace links three edges forming a closed triangle into one face.
func (m *Mesh) addFace(e0, e1, e2 arena.Index) arena.Index {
	faceIdx := m.Faces.Add(Face{FirstEdge: e0})
	edges := [3]arena.Index{e0, e1, e2}
	for i, e := range edges {
		he := m.Edges.Get(e)
		he.Face = faceIdx
		he.Next = edges[(i+1)%3]
	}
	return faceIdx
}
