package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/burgers"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/linalg"
)

func cubicCell(t *testing.T, a float64, pbc [3]bool) cell.Cell {
	t.Helper()
	h := linalg.Mat3{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
	c, err := cell.NewCell(h, linalg.Vec3{}, pbc, 0)
	require.NoError(t, err)
	return c
}

func TestCoarsenLineDropsInteriorPointsOnly(t *testing.T) {
	pts := make([]linalg.Vec3, 7)
	core := make([]int, 7)
	for i := range pts {
		pts[i] = linalg.Vec3{X: float64(i)}
		core[i] = i
	}
	outP, outC := CoarsenLine(pts, core, 2)
	assert.Equal(t, pts[0], outP[0], "first point must survive coarsening")
	assert.Equal(t, pts[len(pts)-1], outP[len(outP)-1], "last point must survive coarsening")
	assert.Less(t, len(outP), len(pts))
	assert.Equal(t, len(outP), len(outC))
}

func TestCoarsenLineNoOpBelowStrideTwo(t *testing.T) {
	pts := []linalg.Vec3{{X: 0}, {X: 1}, {X: 2}}
	core := []int{0, 1, 2}
	outP, outC := CoarsenLine(pts, core, 1)
	assert.Equal(t, pts, outP)
	assert.Equal(t, core, outC)
}

func TestSmoothLineDampensZigzagInteriorPoint(t *testing.T) {
	c := cubicCell(t, 100, [3]bool{})
	pts := []linalg.Vec3{{X: 0}, {X: 1, Y: 5}, {X: 2}}
	smoothed := SmoothLine(c, pts, 4, false)
	require.Len(t, smoothed, 3)
	assert.Equal(t, pts[0], smoothed[0], "open line endpoints stay fixed")
	assert.Equal(t, pts[2], smoothed[2])
	assert.Less(t, smoothed[1].Y, pts[1].Y, "interior spike must shrink toward its neighbors")
}

func TestClipLineSplitsAtPeriodicFace(t *testing.T) {
	c := cubicCell(t, 10, [3]bool{true, false, false})
	pts := []linalg.Vec3{{X: 2}, {X: 12}}
	core := []int{3, 1}
	clipped := ClipLine(c, pts, core)
	require.Len(t, clipped, 2, "a line crossing one periodic face splits into two subsegments")
	for _, sub := range clipped {
		require.GreaterOrEqual(t, len(sub.Points), 2)
		assert.Equal(t, len(sub.Points), len(sub.CoreSize))
	}
	assert.True(t, clipped[0].Points[len(clipped[0].Points)-1].ApproxEqual(clipped[1].Points[0], 1e-9),
		"the split point must be coincident across the two subsegments")
}

func TestClipLineNoSplitWithoutPBC(t *testing.T) {
	c := cubicCell(t, 10, [3]bool{})
	pts := []linalg.Vec3{{X: 2}, {X: 12}}
	core := []int{0, 0}
	clipped := ClipLine(c, pts, core)
	require.Len(t, clipped, 1)
}

func buildSegmentGraph(t *testing.T, line []linalg.Vec3, burgersVec linalg.Vec3) *burgers.Graph {
	t.Helper()
	bg := burgers.NewGraph()
	fwd := bg.Nodes.Add(burgers.DislocationNode{Segment: arena.Nil, Opposite: arena.Nil})
	bwd := bg.Nodes.Add(burgers.DislocationNode{Segment: arena.Nil, Opposite: arena.Nil})
	bg.Nodes.Get(fwd).Opposite = bwd
	bg.Nodes.Get(bwd).Opposite = fwd
	idx := bg.Segments.Add(burgers.DislocationSegment{
		Line:          line,
		CoreSize:      make([]int, len(line)),
		ForwardNode:   fwd,
		BackwardNode:  bwd,
		BurgersVector: burgersVec,
		ReplacedBy:    arena.Nil,
	})
	bg.Nodes.Get(fwd).Segment = idx
	bg.Nodes.Get(bwd).Segment = idx
	return bg
}

func TestDensityScalarMatchesLengthOverVolume(t *testing.T) {
	c := cubicCell(t, 10, [3]bool{})
	line := []linalg.Vec3{{X: 0}, {X: 3}, {X: 3, Y: 4}}
	bg := buildSegmentGraph(t, line, linalg.Vec3{X: 1})
	got := DensityScalar(c, bg)
	want := 7.0 / c.Volume()
	assert.InDelta(t, want, got, 1e-9)
}

func TestDensityTensorAccumulatesOuterProduct(t *testing.T) {
	c := cubicCell(t, 10, [3]bool{})
	line := []linalg.Vec3{{X: 0}, {X: 2}}
	b := linalg.Vec3{Y: 3}
	bg := buildSegmentGraph(t, line, b)
	tensor := DensityTensor(c, bg)
	vol := c.Volume()
	assert.InDelta(t, 2*3/vol, tensor[0][1], 1e-9)
	assert.InDelta(t, 0, tensor[0][0], 1e-9)
}

func TestIsClosedLoopRequiresMutualOpposite(t *testing.T) {
	bg := burgers.NewGraph()
	fwd := bg.Nodes.Add(burgers.DislocationNode{Opposite: arena.Nil})
	bwd := bg.Nodes.Add(burgers.DislocationNode{Opposite: arena.Nil})
	idx := bg.Segments.Add(burgers.DislocationSegment{ForwardNode: fwd, BackwardNode: bwd})
	seg := bg.Segments.Get(idx)
	assert.False(t, isClosedLoop(bg, seg), "unset Opposite pointers must not read as closed")

	bg.Nodes.Get(fwd).Opposite = bwd
	bg.Nodes.Get(bwd).Opposite = fwd
	assert.True(t, isClosedLoop(bg, seg))
}
