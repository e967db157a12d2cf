package cell

import (
	"math"

	"github.com/rodyherrera/dxa/linalg"
)

// maxBinsPerAxis caps bin subdivision, mirroring gridgraph's fixed-size
// offset table idea: beyond a point, finer binning stops paying for
// itself and only adds iteration overhead.
const maxBinsPerAxis = 40

// neighborOffsets3x3x3 enumerates all 27 adjacent bin deltas (including the
// center bin itself) in a fixed, deterministic order — the 3D analogue of
// gridgraph's Conn8 offset table, extended from 8 directions to 26 plus
// self.
var neighborOffsets3x3x3 = func() [27][3]int {
	var offs [27][3]int
	i := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				offs[i] = [3]int{dx, dy, dz}
				i++
			}
		}
	}
	return offs
}()

// NeighborFinder bins a fixed point set into a 3D grid sized so that every
// pair within Cutoff shares a bin or one of its 26 neighbors, then answers
// Neighbors(i) queries by scanning just those 27 bins. Cutoff is frozen at
// construction.
type NeighborFinder struct {
	cell      Cell
	cutoff    float64
	cutoffSq  float64
	dims      [3]int
	binSize   linalg.Vec3
	positions []linalg.Vec3
	// bins[binIndex] holds point indices in insertion order — a plain
	// slice standing in for a per-bin intrusive linked list.
	bins map[int][]int
}

// NewNeighborFinder bins positions (already expressed in absolute
// simulation-frame coordinates) for repeated neighbor queries within
// cutoff, honoring c's periodic flags for bin-wrap at the grid boundary.
func NewNeighborFinder(c Cell, positions []linalg.Vec3, cutoff float64) (*NeighborFinder, error) {
	if cutoff <= 0 {
		return nil, ErrNonPositiveCutoff
	}
	nf := &NeighborFinder{
		cell:      c,
		cutoff:    cutoff,
		cutoffSq:  cutoff * cutoff,
		positions: positions,
		bins:      make(map[int][]int, len(positions)),
	}
	for axis := 0; axis < 3; axis++ {
		extent := c.H.Col(axis).Length()
		divisions := int(math.Floor(extent / cutoff))
		if divisions < 1 {
			divisions = 1
		}
		if divisions > maxBinsPerAxis {
			divisions = maxBinsPerAxis
		}
		nf.dims[axis] = divisions
	}
	nf.binSize = linalg.Vec3{
		X: c.H.Col(0).Length() / float64(nf.dims[0]),
		Y: c.H.Col(1).Length() / float64(nf.dims[1]),
		Z: c.H.Col(2).Length() / float64(nf.dims[2]),
	}

	for i, p := range positions {
		bin := nf.binOf(p)
		key := nf.binKey(bin)
		nf.bins[key] = append(nf.bins[key], i)
	}
	return nf, nil
}

// binOf returns the (bx,by,bz) bin coordinate of an absolute point, using
// reduced coordinates so that non-orthogonal cells still bin correctly.
func (nf *NeighborFinder) binOf(p linalg.Vec3) [3]int {
	red := nf.cell.ReducedFromAbsolute(p)
	comps := [3]float64{red.X, red.Y, red.Z}
	var b [3]int
	for axis := 0; axis < 3; axis++ {
		f := comps[axis]
		if nf.cell.PBC[axis] {
			f -= math.Floor(f)
		}
		idx := int(math.Floor(f * float64(nf.dims[axis])))
		if idx < 0 {
			idx = 0
		}
		if idx >= nf.dims[axis] {
			idx = nf.dims[axis] - 1
		}
		b[axis] = idx
	}
	return b
}

func (nf *NeighborFinder) binKey(b [3]int) int {
	return (b[2]*nf.dims[1]+b[1])*nf.dims[0] + b[0]
}

// Neighbor is one result of a Neighbors query: the candidate point's index
// and the (possibly minimum-image-wrapped) displacement from the query
// point to it.
type Neighbor struct {
	Index int
	Delta linalg.Vec3
}

// Neighbors returns every point within cutoff of positions[i], excluding i
// itself, in deterministic bin-major-then-insertion order. Each periodic
// axis is wrapped via minimum image.
func (nf *NeighborFinder) Neighbors(i int) []Neighbor {
	origin := nf.positions[i]
	bin := nf.binOf(origin)
	out := make([]Neighbor, 0, 16)

	for _, off := range neighborOffsets3x3x3 {
		nb := [3]int{bin[0] + off[0], bin[1] + off[1], bin[2] + off[2]}
		ok := true
		for axis := 0; axis < 3; axis++ {
			if nb[axis] < 0 || nb[axis] >= nf.dims[axis] {
				if !nf.cell.PBC[axis] {
					ok = false
					break
				}
				nb[axis] = ((nb[axis] % nf.dims[axis]) + nf.dims[axis]) % nf.dims[axis]
			}
		}
		if !ok {
			continue
		}
		for _, j := range nf.bins[nf.binKey(nb)] {
			if j == i {
				continue
			}
			delta := nf.positions[j].Sub(origin)
			if nf.anyPBC() {
				delta = nf.cell.WrapVector(delta)
			}
			if delta.LengthSq() <= nf.cutoffSq {
				out = append(out, Neighbor{Index: j, Delta: delta})
			}
		}
	}
	return out
}

func (nf *NeighborFinder) anyPBC() bool {
	return nf.cell.PBC[0] || nf.cell.PBC[1] || nf.cell.PBC[2]
}

// Cutoff returns the frozen cutoff radius this finder was built with.
func (nf *NeighborFinder) Cutoff() float64 { return nf.cutoff }

// WithinCutoff reports whether points i and j (by index into the set this
// finder was built over) lie within Cutoff of each other, applying
// minimum-image wrapping when the cell has any periodic axis. Used by CNA
// to test whether two of a candidate atom's neighbors are themselves
// bonded.
func (nf *NeighborFinder) WithinCutoff(i, j int) bool {
	delta := nf.positions[j].Sub(nf.positions[i])
	if nf.anyPBC() {
		delta = nf.cell.WrapVector(delta)
	}
	return delta.LengthSq() <= nf.cutoffSq
}
