package dxa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/latticegen"
	"github.com/rodyherrera/dxa/linalg"
)

func perfectFCCInput(t *testing.T) FrameInput {
	t.Helper()
	h, pts, err := latticegen.FCC(4, 4, 4, 3.615)
	require.NoError(t, err)
	return FrameInput{Timestep: 0, H: h, PBC: [3]bool{true, true, true}, Positions: pts}
}

func edgeDislocationInput(t *testing.T) FrameInput {
	t.Helper()
	h, pts, err := latticegen.FCCEdgeDislocation(6, 3.615)
	require.NoError(t, err)
	return FrameInput{Timestep: 0, H: h, PBC: [3]bool{true, true, false}, Positions: pts}
}

func baseConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.New(
		config.WithIdentificationMode(config.CNA),
		config.WithInputCrystalStructure(config.FCC),
	)
	require.NoError(t, err)
	return cfg
}

func TestRunFrameOnPerfectLatticeHasNoSegments(t *testing.T) {
	result, err := RunFrame(baseConfig(t), perfectFCCInput(t))
	require.NoError(t, err)
	assert.Empty(t, result.Segments)
	assert.NotEmpty(t, result.Clusters)
	assert.Equal(t, 0, result.Warnings)
}

func TestRunFrameOnEdgeDislocationProducesMeshAndClusters(t *testing.T) {
	result, err := RunFrame(baseConfig(t), edgeDislocationInput(t))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Clusters)
	assert.NotEmpty(t, result.MeshVertices)
	for _, seg := range result.Segments {
		assert.Equal(t, len(seg.Line), len(seg.CoreSize))
		assert.NotEmpty(t, seg.BurgersFractional)
	}
}

func TestRunFrameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Config{MaxCircuitSize: 4} // even, violates Validate
	_, err := RunFrame(cfg, perfectFCCInput(t))
	require.Error(t, err)
}

func TestRunProcessesEveryFrameAndReportsProgressInOrder(t *testing.T) {
	cfg := baseConfig(t)
	inputs := []FrameInput{perfectFCCInput(t), perfectFCCInput(t), perfectFCCInput(t)}

	var completedSeen []int
	results, errs := Run(cfg, inputs, 2, true, func(completed, total int, result *FrameResult) {
		completedSeen = append(completedSeen, completed)
		assert.Equal(t, len(inputs), total)
	})

	require.Len(t, results, len(inputs))
	for i, err := range errs {
		require.NoError(t, err, "frame %d", i)
		require.NotNil(t, results[i])
	}
	assert.Equal(t, []int{1, 2, 3}, completedSeen, "the coordinator increments completed count once per finished frame, in its own serial loop")
}

func TestFractionalStringFormatsHalfLatticeVector(t *testing.T) {
	s := fractionalString(linalg.Vec3{X: 0.5, Y: 0.5, Z: 0})
	assert.Equal(t, "1/2[1 1 0]", s)
}

func TestFractionalStringFormatsIntegerVector(t *testing.T) {
	s := fractionalString(linalg.Vec3{X: 1, Y: 0, Z: 0})
	assert.Equal(t, "[1 0 0]", s)
}

func TestEstimateCutoffScalesWithSpacing(t *testing.T) {
	small := estimateCutoff(1000, 1000) // spacing 1
	large := estimateCutoff(8000, 1000) // spacing 2
	assert.InDelta(t, 2*small, large, 1e-9)
}
