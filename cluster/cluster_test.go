package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/latticegen"
	"github.com/rodyherrera/dxa/linalg"
	"github.com/rodyherrera/dxa/structure"
)

func buildFCCSet(t *testing.T, n int, a float64) *atom.Set {
	t.Helper()
	h, pts, err := latticegen.FCC(n, n, n, a)
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
	return s
}

func TestBuildGraphPerfectFCCIsOneCluster(t *testing.T) {
	s := buildFCCSet(t, 4, 3.615)
	g := BuildGraph(s)
	require.Equal(t, 1, g.Clusters.Len())
	cl := g.Clusters.Get(0)
	assert.Equal(t, len(s.Atoms), cl.Size)
	assert.True(t, g.Connected())

	for _, a := range s.Atoms {
		assert.EqualValues(t, 0, a.Cluster)
	}
}

func TestComputeDistancesSourceIsZero(t *testing.T) {
	s := buildFCCSet(t, 3, 3.615)
	g := BuildGraph(s)
	ComputeDistances(g, 0)
	assert.Equal(t, 0, g.Clusters.Get(0).Distance)
}

func TestEmptySetHasNoClusters(t *testing.T) {
	s := atom.NewSet(nil)
	h, _, err := latticegen.FCC(1, 1, 1, 3.615)
	require.NoError(t, err)
	c, err := cell.NewCell(h, linalg.Vec3{}, [3]bool{true, true, true}, 3.09)
	require.NoError(t, err)
	_, err = cell.NewNeighborFinder(c, nil, 3.09)
	require.NoError(t, err)

	g := BuildGraph(s)
	assert.Equal(t, 0, g.Clusters.Len())
	assert.Equal(t, 0, g.Transitions.Len())
	assert.True(t, g.Connected())
}
