package post

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/burgers"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/linalg"
)

// DensityScalar returns rho = (sum of live segment lengths) / cell volume,
// per spec.md §4.F. Per-step length uses c.WrapVector so a line that
// crosses a periodic face still contributes its true minimum-image length
// rather than an artificially large raw delta.
func DensityScalar(c cell.Cell, bg *burgers.Graph) float64 {
	var total float64
	n := bg.Segments.Len()
	for i := 0; i < n; i++ {
		seg := bg.Segments.Get(arena.Index(i))
		if seg.ReplacedBy.Valid() {
			continue
		}
		total += lineLength(c, seg.Line)
	}
	return total / c.Volume()
}

// DensityTensor returns rho_ij = (sum over segments of delta_i * b_j) /
// cell volume, accumulating the outer product of each step's wrapped
// length vector with its segment's Burgers vector.
func DensityTensor(c cell.Cell, bg *burgers.Graph) linalg.Mat3 {
	var tensor linalg.Mat3
	n := bg.Segments.Len()
	for i := 0; i < n; i++ {
		seg := bg.Segments.Get(arena.Index(i))
		if seg.ReplacedBy.Valid() {
			continue
		}
		for p := 0; p+1 < len(seg.Line); p++ {
			delta := c.WrapVector(seg.Line[p+1].Sub(seg.Line[p]))
			tensor = addOuter(tensor, delta, seg.BurgersVector)
		}
	}
	vol := c.Volume()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tensor[i][j] /= vol
		}
	}
	return tensor
}

func addOuter(m linalg.Mat3, a, b linalg.Vec3) linalg.Mat3 {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] += a.Component(i) * b.Component(j)
		}
	}
	return m
}

func lineLength(c cell.Cell, line []linalg.Vec3) float64 {
	var total float64
	for i := 0; i+1 < len(line); i++ {
		total += c.WrapVector(line[i+1].Sub(line[i])).Length()
	}
	return total
}
