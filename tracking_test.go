package dxa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodyherrera/dxa/linalg"
)

func straightLine(n int, dx float64) []linalg.Vec3 {
	line := make([]linalg.Vec3, n)
	for i := range line {
		line[i] = linalg.Vec3{X: float64(i) + dx, Y: 0, Z: 0}
	}
	return line
}

func TestTrackSegmentsKeepsStableIDAcrossSmallPerturbation(t *testing.T) {
	b := linalg.Vec3{X: 0.5, Y: 0.5, Z: 0}
	prev := []SegmentOutput{
		{ID: 7, Line: straightLine(10, 0), BurgersVector: b},
	}
	curr := []SegmentOutput{
		{ID: 99, Line: straightLine(10, 0.05), BurgersVector: b},
	}

	tracked := TrackSegments(prev, curr)
	assert.Equal(t, 7, tracked[0].ID, "a slightly shifted line should retain its prior segment's ID")
}

func TestTrackSegmentsAssignsFreshIDWhenBurgersVectorDiffers(t *testing.T) {
	prev := []SegmentOutput{
		{ID: 1, Line: straightLine(10, 0), BurgersVector: linalg.Vec3{X: 0.5, Y: 0.5, Z: 0}},
	}
	curr := []SegmentOutput{
		{ID: 42, Line: straightLine(10, 0), BurgersVector: linalg.Vec3{X: 0, Y: 0, Z: 1}},
	}

	tracked := TrackSegments(prev, curr)
	assert.Equal(t, 42, tracked[0].ID, "a differing Burgers vector must never be matched to a prior segment")
}

func TestTrackSegmentsDoesNotAssignSamePrevIDTwice(t *testing.T) {
	b := linalg.Vec3{X: 0.5, Y: 0.5, Z: 0}
	prev := []SegmentOutput{
		{ID: 1, Line: straightLine(10, 0), BurgersVector: b},
	}
	// Two curr segments both plausibly close to the single prior segment;
	// only the closer one may claim its ID.
	curr := []SegmentOutput{
		{ID: 10, Line: straightLine(10, 0.2), BurgersVector: b},
		{ID: 11, Line: straightLine(10, 0.05), BurgersVector: b},
	}

	tracked := TrackSegments(prev, curr)
	assert.Equal(t, 10, tracked[0].ID, "the farther segment keeps its own ID once the closer one claims the match")
	assert.Equal(t, 1, tracked[1].ID, "the closer segment claims the single prior ID")
}
