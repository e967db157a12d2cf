package cell

import (
	"fmt"
	"math"

	"github.com/rodyherrera/dxa/linalg"
)

// Cell is the simulation cell: a 3x3 basis matrix H (columns are the basis
// vectors), an origin point, and per-axis periodic flags.
type Cell struct {
	H      linalg.Mat3
	Hinv   linalg.Mat3
	Origin linalg.Vec3
	PBC    [3]bool
}

// NewCell validates H/Origin/PBC against the cell's invariants and
// returns a Cell with its inverse basis precomputed. cutoff is the
// neighbor-search radius used only to validate the PBC-width invariant
// (pass 0 to skip that check, e.g. for a cell with no PBC axes at all).
func NewCell(h linalg.Mat3, origin linalg.Vec3, pbc [3]bool, cutoff float64) (Cell, error) {
	if math.Abs(h.Det()) < 1e-12 {
		return Cell{}, ErrSingularCell
	}
	hinv, err := h.Inverse()
	if err != nil {
		return Cell{}, fmt.Errorf("cell: %w", ErrSingularCell)
	}
	c := Cell{H: h, Hinv: hinv, Origin: origin, PBC: pbc}
	if cutoff > 0 {
		for axis := 0; axis < 3; axis++ {
			if !pbc[axis] {
				continue
			}
			if width := c.H.Col(axis).Length(); width <= 2*cutoff {
				return Cell{}, fmt.Errorf("cell: axis %d width %.6g <= 2*cutoff %.6g: %w", axis, width, 2*cutoff, ErrPBCTooNarrow)
			}
		}
	}
	return c, nil
}

// ReducedFromAbsolute converts an absolute (simulation-frame) point to
// reduced (fractional, basis-relative) coordinates: p_red = Hinv*(p-origin).
func (c Cell) ReducedFromAbsolute(p linalg.Vec3) linalg.Vec3 {
	return c.Hinv.MulVec(p.Sub(c.Origin))
}

// AbsoluteFromReduced converts reduced coordinates back to simulation
// frame: p = H*p_red + origin. Round-trips with ReducedFromAbsolute to
// within floating-point precision.
func (c Cell) AbsoluteFromReduced(p linalg.Vec3) linalg.Vec3 {
	return c.H.MulVec(p).Add(c.Origin)
}

// WrapVector applies minimum-image convention to a displacement vector:
// each periodic axis's reduced component is wrapped into [-0.5, 0.5).
// Idempotent: WrapVector(WrapVector(v)) == WrapVector(v).
func (c Cell) WrapVector(v linalg.Vec3) linalg.Vec3 {
	red := c.Hinv.MulVec(v)
	for axis := 0; axis < 3; axis++ {
		if !c.PBC[axis] {
			continue
		}
		f := red.Component(axis)
		f -= math.Floor(f+0.5)
		red = setComponent(red, axis, f)
	}
	return c.H.MulVec(red)
}

// WrapPoint wraps an absolute point into the cell's fundamental domain on
// every periodic axis, leaving non-periodic axes untouched.
func (c Cell) WrapPoint(p linalg.Vec3) linalg.Vec3 {
	red := c.ReducedFromAbsolute(p)
	for axis := 0; axis < 3; axis++ {
		if !c.PBC[axis] {
			continue
		}
		f := red.Component(axis)
		f -= math.Floor(f)
		red = setComponent(red, axis, f)
	}
	return c.AbsoluteFromReduced(red)
}

// Volume returns |det(H)|, the cell volume used by post.DensityScalar and
// post.DensityTensor.
func (c Cell) Volume() float64 {
	return math.Abs(c.H.Det())
}

func setComponent(v linalg.Vec3, axis int, val float64) linalg.Vec3 {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}
