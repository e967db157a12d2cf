package dxa

import (
	"sort"

	"github.com/rodyherrera/dxa/dtw"
	"github.com/rodyherrera/dxa/linalg"
)

// maxTrackingDTWDistance bounds how dissimilar two lines' shapes may be
// and still be considered the same physical segment across frames. Chosen
// generously relative to a lattice spacing; a caller tracking a specific
// material can tune this by post-filtering TrackSegments' output.
const maxTrackingDTWDistance = 50.0

type trackingPair struct {
	currIdx, prevIdx int
	dist             float64
}

// TrackSegments assigns each segment in curr the ID of whichever segment
// in prev its line most closely matches, by Dynamic Time Warping distance
// between their point sequences — reusing this module's own dtw.Align
// rather than a bespoke shape metric, since a dislocation line
// re-discretized at a different point density between frames is exactly
// the unequal-length-sequence alignment problem DTW solves. Candidates
// are restricted to matching Burgers vectors (a cheap, exact pre-filter)
// before the O(N*M) warp is run. Matches are claimed greedily in
// ascending distance order, so two curr segments never claim the same
// prev ID; a curr segment left unclaimed under maxTrackingDTWDistance
// keeps its own ID (a newly nucleated segment).
func TrackSegments(prev, curr []SegmentOutput) []SegmentOutput {
	out := make([]SegmentOutput, len(curr))
	copy(out, curr)

	byBurgers := make(map[linalg.Vec3][]int)
	for i, p := range prev {
		byBurgers[p.BurgersVector] = append(byBurgers[p.BurgersVector], i)
	}

	opts := dtw.DefaultOptions()
	var pairs []trackingPair
	for i := range out {
		for _, pi := range byBurgers[out[i].BurgersVector] {
			dist, _, err := dtw.Align(out[i].Line, prev[pi].Line, &opts)
			if err != nil || dist >= maxTrackingDTWDistance {
				continue
			}
			pairs = append(pairs, trackingPair{currIdx: i, prevIdx: pi, dist: dist})
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].dist < pairs[b].dist })

	currClaimed := make([]bool, len(out))
	prevClaimed := make([]bool, len(prev))
	for _, p := range pairs {
		if currClaimed[p.currIdx] || prevClaimed[p.prevIdx] {
			continue
		}
		currClaimed[p.currIdx] = true
		prevClaimed[p.prevIdx] = true
		out[p.currIdx].ID = prev[p.prevIdx].ID
	}
	return out
}
