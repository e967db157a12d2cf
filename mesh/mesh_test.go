package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/latticegen"
	"github.com/rodyherrera/dxa/linalg"
	"github.com/rodyherrera/dxa/structure"
)

func buildEdgeDislocationSet(t *testing.T) (cell.Cell, *atom.Set) {
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

	cfg, err := config.New(config.WithIdentificationMode(config.CNA))
	require.NoError(t, err)
	_, err = structure.Classify(cfg, s)
	require.NoError(t, err)
	return c, s
}

func TestBuildMeshOnEdgeDislocationHasInterfaceVertices(t *testing.T) {
	c, s := buildEdgeDislocationSet(t)
	otherCount := 0
	for _, a := range s.Atoms {
		if a.Structure == config.Other {
			otherCount++
		}
	}
	require.Greater(t, otherCount, 0, "fixture must contain at least one disordered atom")

	g := cluster.BuildGraph(s)
	m := Build(c, s, g)
	assert.Greater(t, m.Vertices.Len(), 0)

	PostProcess(m)
	assert.NoError(t, Validate(m), "post-processing must not break the half-edge invariants")
}

func TestBuildMeshValidatesOnPerfectLatticeHasNoVertices(t *testing.T) {
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
	m := Build(c, s, g)
	assert.Equal(t, 0, m.Vertices.Len(), "a perfect periodic crystal has no interface atoms")
	require.NoError(t, Validate(m))
}
