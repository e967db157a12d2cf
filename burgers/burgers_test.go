package burgers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/latticegen"
	"github.com/rodyherrera/dxa/linalg"
	"github.com/rodyherrera/dxa/mesh"
	"github.com/rodyherrera/dxa/structure"
)

func buildPerfectFCC(t *testing.T) (*mesh.Mesh, *cluster.Graph, config.Config) {
	t.Helper()
	a := 3.615
	h, pts, err := latticegen.FCC(4, 4, 4, a)
	require.NoError(t, err)
	c, err := cell.NewCell(h, linalg.Vec3{}, [3]bool{true, true, true}, 3.09)
	require.NoError(t, err)
	nf, err := cell.NewNeighborFinder(c, pts, 3.09)
	require.NoError(t, err)

	s := atom.NewSet(pts)
	require.NoError(t, atom.PopulateNeighbors(s, nf))
	require.NoError(t, atom.PopulateBonds(s, nf))
	cfg, err := config.New(config.WithIdentificationMode(config.CNA))
	require.NoError(t, err)
	_, err = structure.Classify(cfg, s)
	require.NoError(t, err)

	g := cluster.BuildGraph(s)
	m := mesh.Build(c, s, g)
	return m, g, cfg
}

func buildEdgeDislocation(t *testing.T) (*mesh.Mesh, *cluster.Graph, config.Config) {
	t.Helper()
	a := 3.615
	h, pts, err := latticegen.FCCEdgeDislocation(6, a)
	require.NoError(t, err)
	c, err := cell.NewCell(h, linalg.Vec3{}, [3]bool{true, true, false}, 3.09)
	require.NoError(t, err)
	nf, err := cell.NewNeighborFinder(c, pts, 3.09)
	require.NoError(t, err)

	s := atom.NewSet(pts)
	require.NoError(t, atom.PopulateNeighbors(s, nf))
	require.NoError(t, atom.PopulateBonds(s, nf))
	cfg, err := config.New(
		config.WithIdentificationMode(config.CNA),
		config.WithInputCrystalStructure(config.FCC),
	)
	require.NoError(t, err)
	_, err = structure.Classify(cfg, s)
	require.NoError(t, err)

	g := cluster.BuildGraph(s)
	m := mesh.Build(c, s, g)
	return m, g, cfg
}

func TestBuildOnPerfectLatticeHasNoSegments(t *testing.T) {
	m, g, cfg := buildPerfectFCC(t)
	bg := Build(m, g, cfg)
	assert.Equal(t, 0, bg.Circuits.Len())
	assert.Equal(t, 0, bg.Segments.Len())
}

func TestBuildOnEdgeDislocationProducesConsistentSegments(t *testing.T) {
	m, g, cfg := buildEdgeDislocation(t)
	bg := Build(m, g, cfg)

	n := bg.Segments.Len()
	for i := 0; i < n; i++ {
		seg := bg.Segments.Get(arena.Index(i))
		if seg.ReplacedBy.Valid() {
			continue
		}
		assert.Equal(t, len(seg.Line), len(seg.CoreSize), "segment %d: line/core-size length mismatch", seg.ID)
		assert.True(t, seg.ForwardNode.Valid())
		assert.True(t, seg.BackwardNode.Valid())
	}
}

func TestSearchPrimaryFindsNothingOnAnEmptyMesh(t *testing.T) {
	m, g, cfg := buildPerfectFCC(t)
	m.BuildAdjacency()
	bg := NewGraph()
	found := SearchPrimary(m, g, bg, cfg.MaxCircuitSize)
	assert.Empty(t, found)
}
