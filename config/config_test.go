package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/dxaerr"
)

func TestNewDefaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, 14, c.MaxCircuitSize)
	assert.Equal(t, 32, c.ExtendedCircuitSize)
	assert.Equal(t, CNA, c.IdentificationMode)
}

func TestNewRejectsEvenCircuitSize(t *testing.T) {
	_, err := New(WithMaxCircuitSize(4))
	require.ErrorIs(t, err, dxaerr.ErrConfigInvalid)
}

func TestNewRejectsExtendedBelowMax(t *testing.T) {
	_, err := New(WithMaxCircuitSize(15), WithExtendedCircuitSize(9))
	require.ErrorIs(t, err, dxaerr.ErrConfigInvalid)
}

func TestWithPBC(t *testing.T) {
	c, err := New(WithPBC(true, false, true))
	require.NoError(t, err)
	assert.Equal(t, [3]bool{true, false, true}, c.PBC)
}

func TestStructureStrings(t *testing.T) {
	assert.Equal(t, "FCC", FCC.String())
	assert.Equal(t, "OTHER", Other.String())
	assert.Equal(t, "PTM", PTM.String())
}
