package post

import (
	"math"

	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/linalg"
)

// ClippedLine is one subsegment of a traced line guaranteed to stay within
// a single periodic image.
type ClippedLine struct {
	Points   []linalg.Vec3
	CoreSize []int
}

// ClipLine splits points (with parallel coreSize) wherever the line's
// reduced coordinate crosses a periodic cell face — an integer boundary on
// a PBC axis — inserting two coincident endpoints there: the last point of
// one subsegment and the first point of the next, per spec.md §4.F "Line
// PBC clipping". Subsegments left with fewer than two points are dropped
// as degenerate. Input points are assumed to already form a continuous
// (unwrapped) trajectory, the natural shape of a traced/smoothed line.
func ClipLine(c cell.Cell, points []linalg.Vec3, coreSize []int) []ClippedLine {
	if len(points) < 2 {
		return nil
	}
	var result []ClippedLine
	curPts := []linalg.Vec3{points[0]}
	curCore := []int{coreSize[0]}

	for i := 0; i < len(points)-1; i++ {
		a := c.ReducedFromAbsolute(points[i])
		b := c.ReducedFromAbsolute(points[i+1])
		after := 0.0
		for {
			t, ok := nextCrossing(c, a, b, after)
			if !ok {
				break
			}
			red := lerpVec(a, b, t)
			pt := c.AbsoluteFromReduced(red)
			core := lerpInt(coreSize[i], coreSize[i+1], t)
			curPts = append(curPts, pt)
			curCore = append(curCore, core)
			result = appendIfValid(result, curPts, curCore)
			curPts = []linalg.Vec3{pt}
			curCore = []int{core}
			after = t
		}
		curPts = append(curPts, points[i+1])
		curCore = append(curCore, coreSize[i+1])
	}
	return appendIfValid(result, curPts, curCore)
}

// nextCrossing finds the smallest t in (after, 1] at which any periodic
// axis's reduced coordinate along a->b crosses an integer boundary.
func nextCrossing(c cell.Cell, a, b linalg.Vec3, after float64) (float64, bool) {
	const eps = 1e-9
	best := math.Inf(1)
	found := false
	for axis := 0; axis < 3; axis++ {
		if !c.PBC[axis] {
			continue
		}
		a0, b0 := a.Component(axis), b.Component(axis)
		delta := b0 - a0
		if math.Abs(delta) < 1e-12 {
			continue
		}
		var boundary float64
		if delta > 0 {
			boundary = math.Floor(a0) + 1
		} else {
			boundary = math.Ceil(a0) - 1
		}
		t := (boundary - a0) / delta
		for t <= after+eps {
			if delta > 0 {
				boundary++
			} else {
				boundary--
			}
			t = (boundary - a0) / delta
		}
		if t > 1+eps {
			continue
		}
		if t < best {
			best, found = t, true
		}
	}
	return best, found
}

func lerpVec(a, b linalg.Vec3, t float64) linalg.Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func lerpInt(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}

func appendIfValid(result []ClippedLine, pts []linalg.Vec3, core []int) []ClippedLine {
	if len(pts) < 2 {
		return result
	}
	ptsCopy := make([]linalg.Vec3, len(pts))
	copy(ptsCopy, pts)
	coreCopy := make([]int, len(core))
	copy(coreCopy, core)
	return append(result, ClippedLine{Points: ptsCopy, CoreSize: coreCopy})
}
