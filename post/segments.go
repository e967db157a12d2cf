package post

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/burgers"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/config"
)

// isClosedLoop reports whether seg's two endpoint nodes are each other's
// Opposite — the spec's definition of a closed dislocation loop (§3,
// "Dislocation node"). A two-arm junction merge re-points both outer
// nodes' Opposite at each other (burgers.mergeTwoArmJunction), so a loop
// that closes on itself through one or more junctions satisfies this too.
func isClosedLoop(bg *burgers.Graph, seg *burgers.DislocationSegment) bool {
	if !seg.ForwardNode.Valid() || !seg.BackwardNode.Valid() {
		return false
	}
	fwd := bg.Nodes.Get(seg.ForwardNode)
	bwd := bg.Nodes.Get(seg.BackwardNode)
	return fwd.Opposite == seg.BackwardNode && bwd.Opposite == seg.ForwardNode
}

// SmoothSegments coarsens then Taubin-smooths every live (non-replaced)
// segment's line in place, per cfg.LinePointInterval/LineSmoothingLevel.
func SmoothSegments(c cell.Cell, bg *burgers.Graph, cfg config.Config) {
	n := bg.Segments.Len()
	for i := 0; i < n; i++ {
		idx := arena.Index(i)
		seg := bg.Segments.Get(idx)
		if seg.ReplacedBy.Valid() || len(seg.Line) < 2 {
			continue
		}
		seg.Line, seg.CoreSize = CoarsenLine(seg.Line, seg.CoreSize, cfg.LinePointInterval)
		closed := isClosedLoop(bg, seg)
		seg.Line = SmoothLine(c, seg.Line, cfg.LineSmoothingLevel, closed)
	}
}
