package latticegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCCAtomCount(t *testing.T) {
	_, pts, err := FCC(4, 4, 4, 3.615)
	require.NoError(t, err)
	assert.Equal(t, 4*4*4*4, len(pts))
}

func TestBCCAtomCount(t *testing.T) {
	_, pts, err := BCC(3, 3, 3, 2.87)
	require.NoError(t, err)
	assert.Equal(t, 3*3*3*2, len(pts))
}

func TestRejectsTooFewCells(t *testing.T) {
	_, _, err := FCC(0, 1, 1, 1)
	require.ErrorIs(t, err, ErrTooFewCells)
}
