package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/linalg"
)

func TestFlags(t *testing.T) {
	var a Atom
	assert.False(t, a.HasFlag(FlagDisordered))
	a.SetFlag(FlagDisordered)
	assert.True(t, a.HasFlag(FlagDisordered))
	a.ClearFlag(FlagDisordered)
	assert.False(t, a.HasFlag(FlagDisordered))
}

func TestNeighborBondSymmetric(t *testing.T) {
	var a Atom
	a.SetNeighborBond(1, 3, true)
	assert.True(t, a.NeighborBond(1, 3))
	assert.True(t, a.NeighborBond(3, 1))
	a.SetNeighborBond(1, 3, false)
	assert.False(t, a.NeighborBond(1, 3))
}

func TestPopulateNeighborsAndBonds(t *testing.T) {
	h := linalg.Mat3{{20, 0, 0}, {0, 20, 0}, {0, 0, 20}}
	c, err := cell.NewCell(h, linalg.Vec3{}, [3]bool{}, 0)
	require.NoError(t, err)
	pts := []linalg.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	}
	nf, err := cell.NewNeighborFinder(c, pts, 1.5)
	require.NoError(t, err)

	s := NewSet(pts)
	require.NoError(t, PopulateNeighbors(s, nf))
	require.NoError(t, PopulateBonds(s, nf))

	assert.Equal(t, 3, s.Atoms[0].NeighborCount)
}
