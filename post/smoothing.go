package post

import (
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/linalg"
)

// taubinLambda and taubinMu are the fixed Taubin smoothing coefficients:
// a shrink pass at lambda followed by an inflate pass at mu, chosen so
// the two passes' low-pass/high-pass frequency responses cancel net
// shrinkage while still damping high-frequency noise.
const (
	taubinLambda = 0.5
	taubinMu     = 1 / (0.1 - 1/taubinLambda)
)

// CoarsenLine drops every k-th interior point (index 1..len-2, the first
// and last points are always kept) before smoothing; k<=1 is a no-op.
// coreSize is decimated in lock-step with points.
func CoarsenLine(points []linalg.Vec3, coreSize []int, k int) ([]linalg.Vec3, []int) {
	if k <= 1 || len(points) <= 2 {
		return points, coreSize
	}
	outP := make([]linalg.Vec3, 0, len(points))
	outC := make([]int, 0, len(coreSize))
	for i, p := range points {
		last := i == len(points)-1
		if i != 0 && !last && i%k == 0 {
			continue
		}
		outP = append(outP, p)
		outC = append(outC, coreSize[i])
	}
	return outP, outC
}

// SmoothLine runs iterations rounds of Taubin smoothing over points. When
// closed is true the line is treated as a cyclic polyline (point 0's
// neighbors are the last and second points, wrapping through c); when
// false the first and last points are held fixed, matching an open curve's
// free-boundary Taubin pass. Displacements use c.WrapVector so periodic
// positions smooth correctly across a cell boundary.
func SmoothLine(c cell.Cell, points []linalg.Vec3, iterations int, closed bool) []linalg.Vec3 {
	if iterations <= 0 || len(points) < 3 {
		return points
	}
	cur := make([]linalg.Vec3, len(points))
	copy(cur, points)
	for iter := 0; iter < iterations; iter++ {
		cur = taubinPass(c, cur, taubinLambda, closed)
		cur = taubinPass(c, cur, taubinMu, closed)
	}
	return cur
}

func taubinPass(c cell.Cell, points []linalg.Vec3, factor float64, closed bool) []linalg.Vec3 {
	n := len(points)
	out := make([]linalg.Vec3, n)
	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			out[i] = points[i]
			continue
		}
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		toPrev := c.WrapVector(prev.Sub(points[i]))
		toNext := c.WrapVector(next.Sub(points[i]))
		laplacian := toPrev.Add(toNext).Scale(0.5)
		out[i] = points[i].Add(laplacian.Scale(factor))
	}
	return out
}

// SmoothSurface runs iterations rounds of Taubin smoothing over a mesh's
// vertex positions, averaging each vertex against its ring of mesh
// neighbors (reached via m.OutgoingEdges), the same lambda/mu pass used
// for lines generalized from a 1-D neighbor pair to a vertex's full ring.
func SmoothSurface(c cell.Cell, positions []linalg.Vec3, rings [][]linalg.Vec3, iterations int) []linalg.Vec3 {
	if iterations <= 0 || len(positions) == 0 {
		return positions
	}
	cur := make([]linalg.Vec3, len(positions))
	copy(cur, positions)
	for iter := 0; iter < iterations; iter++ {
		cur = taubinSurfacePass(c, cur, rings, taubinLambda)
		cur = taubinSurfacePass(c, cur, rings, taubinMu)
	}
	return cur
}

func taubinSurfacePass(c cell.Cell, positions []linalg.Vec3, rings [][]linalg.Vec3, factor float64) []linalg.Vec3 {
	out := make([]linalg.Vec3, len(positions))
	for i, p := range positions {
		ring := rings[i]
		if len(ring) == 0 {
			out[i] = p
			continue
		}
		var sum linalg.Vec3
		for _, neighbor := range ring {
			sum = sum.Add(c.WrapVector(neighbor.Sub(p)))
		}
		laplacian := sum.Scale(1 / float64(len(ring)))
		out[i] = p.Add(laplacian.Scale(factor))
	}
	return out
}
