package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodyherrera/dxa/dtw"
	"github.com/rodyherrera/dxa/linalg"
)

// line builds a sequence of points along the X axis so point-to-point
// Euclidean distance reduces to plain scalar difference, keeping these
// cases easy to reason about by hand.
func line(xs ...float64) []linalg.Vec3 {
	pts := make([]linalg.Vec3, len(xs))
	for i, x := range xs {
		pts[i] = linalg.Vec3{X: x}
	}
	return pts
}

func TestAlign_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.Align(nil, line(1, 2, 3), &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first line should error")

	_, _, err = dtw.Align(line(1, 2, 3), nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second line should error")
}

func TestAlign_BadWindowOption(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -2

	_, _, err := dtw.Align(line(1), line(1), &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "Window < -1 must error ErrBadInput")
}

func TestAlign_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.Align(line(1, 2), line(1, 2), &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "ReturnPath without FullMatrix must error ErrPathNeedsMatrix")
}

func TestAlign_IdenticalLinesHaveZeroDistance(t *testing.T) {
	a := line(0, 1, 2)
	b := line(0, 1, 2)
	opts := dtw.DefaultOptions()

	dist, path, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err, "identical lines should not error")
	assert.Equal(t, 0.0, dist, "identical lines must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

func TestAlign_PerfectSubsequenceMatchAndPath(t *testing.T) {
	a := line(1, 2, 3)
	b := line(1, 2, 2, 3) // b re-discretized with an extra duplicated point
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err, "should not error on perfect match")
	assert.Equal(t, 0.0, dist, "a re-discretized copy of the same line costs nothing to align")
	assert.Len(t, path, 4, "path length should be len(a)+(len(b)-len(a))")
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0], "first path point")
	assert.Equal(t, dtw.Coord{I: 2, J: 3}, path[len(path)-1], "last path point")
}

func TestAlign_WindowConstraint(t *testing.T) {
	a := line(1, 2, 3)
	b := line(1, 2, 3, 4)
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.MemoryMode = dtw.FullMatrix

	dist, _, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err, "should not error with window constraint")
	assert.True(t, math.IsInf(dist, 1), "window=0 with length mismatch should yield +Inf")
}

func TestAlign_SlopePenaltyAffectsDistance(t *testing.T) {
	a := line(1, 2, 3)
	b := line(1, 1, 2, 3)

	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	dist0, _, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist0, "zero penalty allows a free extra point")

	opts.SlopePenalty = 1.0
	dist1, _, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, dist1, "penalty=1.0 adds exactly one unit to distance")
}

func TestAlign_TwoRowsMatchesFullMatrixDistanceOnly(t *testing.T) {
	a := line(0, 1, 2, 3)
	b := line(0, 1, 1, 2, 3)

	refOpts := dtw.DefaultOptions()
	refOpts.MemoryMode = dtw.FullMatrix
	refDist, _, _ := dtw.Align(a, b, &refOpts)

	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	dist, path, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, refDist, dist, "TwoRows must match FullMatrix distance")
	assert.Nil(t, path, "TwoRows should not return a path")
}

func TestAlign_NoMemoryMatchesFullMatrixDistanceOnly(t *testing.T) {
	a := line(5, 6, 7)
	b := line(5, 7)

	refOpts := dtw.DefaultOptions()
	refOpts.MemoryMode = dtw.FullMatrix
	refDist, _, _ := dtw.Align(a, b, &refOpts)

	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.NoMemory
	dist, path, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, refDist, dist, "NoMemory must match FullMatrix distance")
	assert.Nil(t, path, "NoMemory should not return a path")
}

func TestAlign_NegativeWindowUnlimited(t *testing.T) {
	a := line(1, 2, 3, 4)
	b := line(1, 2, 3)
	opts := dtw.DefaultOptions()
	opts.Window = -1
	opts.MemoryMode = dtw.FullMatrix

	dist, _, err := dtw.Align(a, b, &opts)
	assert.NoError(t, err)
	assert.False(t, math.IsInf(dist, 1), "Window=-1 must allow alignment")
}

func TestAlign_BadInputCombination(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.MemoryMode = dtw.TwoRows
	opts.ReturnPath = true

	_, _, err := dtw.Align(line(1), line(1), &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "invalid options must return ErrPathNeedsMatrix")
}
