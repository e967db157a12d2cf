package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/latticegen"
	"github.com/rodyherrera/dxa/linalg"
)

func TestClassifyCNAPerfectFCC(t *testing.T) {
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
	res, err := Classify(cfg, s)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Warnings)

	fccCount := 0
	for _, at := range s.Atoms {
		if at.Structure == config.FCC {
			fccCount++
		}
	}
	assert.Equal(t, len(pts), fccCount, "every atom in a perfect periodic FCC crystal should classify FCC")
}

func TestClassifyCNABCC(t *testing.T) {
	a := 2.87
	h, pts, err := latticegen.BCC(4, 4, 4, a)
	require.NoError(t, err)
	cutoff := a * 1.2
	c, err := cell.NewCell(h, linalg.Vec3{}, [3]bool{true, true, true}, cutoff)
	require.NoError(t, err)
	nf, err := cell.NewNeighborFinder(c, pts, cutoff)
	require.NoError(t, err)

	s := atom.NewSet(pts)
	require.NoError(t, atom.PopulateNeighbors(s, nf))
	require.NoError(t, atom.PopulateBonds(s, nf))

	res := ClassifyCNA(s)
	assert.Equal(t, 0, res.Warnings)
	bccCount := 0
	for _, at := range s.Atoms {
		if at.Structure == config.BCC {
			bccCount++
		}
	}
	assert.Equal(t, len(pts), bccCount)
}
