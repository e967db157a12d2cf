package dxa

import (
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/linalg"
)

// FrameInput is one frame's worth of atom-position data, the shape a
// frame parser (out of scope, see spec.md §1) delivers to RunFrame.
type FrameInput struct {
	Timestep  int
	H         linalg.Mat3 // simulation cell basis, column-major
	Origin    linalg.Vec3
	PBC       [3]bool
	Positions []linalg.Vec3
	Tags      []int // optional per-atom integer tags; nil if the parser has none
}

// SegmentOutput is one dislocation segment's reportable fields.
type SegmentOutput struct {
	ID                int
	Line              []linalg.Vec3
	Length            float64
	CoreSize          []int
	BurgersVector     linalg.Vec3
	BurgersFractional string
}

// ClusterOutput is one cluster's reportable fields.
type ClusterOutput struct {
	ID          int
	Structure   config.CrystalStructure
	AtomCount   int
	Orientation linalg.Mat3
}

// TransitionOutput is one cluster transition's reportable fields, as
// indices into FrameResult.Clusters.
type TransitionOutput struct {
	From, To int
	TM       linalg.Mat3
}

// FrameResult is the programmatic output of one RunFrame call; a
// collaborator (out of scope) is responsible for serializing it.
type FrameResult struct {
	Timestep int

	Segments    []SegmentOutput
	Clusters    []ClusterOutput
	Transitions []TransitionOutput

	MeshVertices  []linalg.Vec3
	MeshTriangles [][3]int

	DensityScalar float64
	DensityTensor linalg.Mat3

	// Warnings counts InvalidInput occurrences aggregated during
	// structure classification; the frame still completes.
	Warnings int
}

// ProgressFunc is invoked once per completed frame from Run's coordinator
// goroutine, never concurrently, regardless of how many frames ran in
// parallel.
type ProgressFunc func(completed, total int, result *FrameResult)
