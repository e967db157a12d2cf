package dxa

import (
	"fmt"

	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/burgers"
	"github.com/rodyherrera/dxa/cell"
	"github.com/rodyherrera/dxa/cluster"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/dxalog"
	"github.com/rodyherrera/dxa/linalg"
	"github.com/rodyherrera/dxa/mesh"
	"github.com/rodyherrera/dxa/post"
	"github.com/rodyherrera/dxa/structure"
)

// RunFrame runs one pass of stages A through F over in, per cfg, and
// returns the frame's reportable output. It never mutates cfg or in.
//
// ConfigInvalid and CellDegenerate abort before any stage runs;
// MeshTopologyBroken and NumericDegenerate abort the frame after it
// starts but are returned as plain errors, not panics — the caller
// decides whether to continue a multi-frame run (spec.md §7).
func RunFrame(cfg config.Config, in FrameInput) (*FrameResult, error) {
	log := dxalog.Frame("dxa", in.Timestep)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cutoff := cfg.CNACutoff
	if cutoff == 0 {
		cutoff = estimateCutoff(cellVolume(in.H), len(in.Positions))
		log.Debug().Float64("estimated_cutoff", cutoff).Msg("estimated CNA cutoff from atom density")
	}

	c, err := cell.NewCell(in.H, in.Origin, in.PBC, cutoff)
	if err != nil {
		return nil, fmt.Errorf("dxa: frame %d: %w", in.Timestep, err)
	}

	// --- A: spatial cell & neighbor enumeration ---
	nf, err := cell.NewNeighborFinder(c, in.Positions, cutoff)
	if err != nil {
		return nil, fmt.Errorf("dxa: frame %d: %w", in.Timestep, err)
	}
	s := atom.NewSet(in.Positions)
	if err := atom.PopulateNeighbors(s, nf); err != nil {
		return nil, fmt.Errorf("dxa: frame %d: %w", in.Timestep, err)
	}
	if err := atom.PopulateBonds(s, nf); err != nil {
		return nil, fmt.Errorf("dxa: frame %d: %w", in.Timestep, err)
	}
	log.Debug().Int("atoms", s.Len()).Msg("neighbor lists built")

	// --- B: structure analysis ---
	structResult, err := structure.Classify(cfg, s)
	if err != nil {
		return nil, fmt.Errorf("dxa: frame %d: %w", in.Timestep, err)
	}
	if structResult.Warnings > 0 {
		log.Warn().Int("count", structResult.Warnings).Msg("invalid per-atom input, affected atoms classified OTHER")
	}

	// --- C: cluster graph ---
	cg := cluster.BuildGraph(s)
	log.Debug().Int("clusters", cg.Clusters.Len()).Int("transitions", cg.Transitions.Len()).Msg("cluster graph built")

	// --- D: interface mesh ---
	m := mesh.Build(c, s, cg)
	mesh.PostProcess(m)
	if err := mesh.Validate(m); err != nil {
		return nil, fmt.Errorf("dxa: frame %d: %w", in.Timestep, err)
	}
	log.Debug().Int("vertices", m.Vertices.Len()).Int("faces", m.Faces.Len()).Msg("interface mesh built")

	// --- E: Burgers loop builder ---
	bg := burgers.Build(m, cg, cfg)
	log.Debug().Int("segments", bg.Segments.Len()).Msg("Burgers circuits traced")

	// --- F: output post-processing ---
	post.SmoothSegments(c, bg, cfg)
	post.SmoothMeshSurface(c, m, cfg.DefectMeshSmoothing)
	density := post.DensityScalar(c, bg)
	tensor := post.DensityTensor(c, bg)

	result := &FrameResult{
		Timestep:      in.Timestep,
		Segments:      collectSegments(cfg, c, bg),
		Clusters:      collectClusters(cg),
		Transitions:   collectTransitions(cg),
		MeshVertices:  collectMeshVertices(m),
		MeshTriangles: collectMeshTriangles(m),
		DensityScalar: density,
		DensityTensor: tensor,
		Warnings:      structResult.Warnings,
	}
	return result, nil
}

func collectSegments(cfg config.Config, c cell.Cell, bg *burgers.Graph) []SegmentOutput {
	var out []SegmentOutput
	n := bg.Segments.Len()
	for i := 0; i < n; i++ {
		seg := bg.Segments.Get(arena.Index(i))
		if seg.ReplacedBy.Valid() {
			continue
		}
		if cfg.OnlyPerfectDislocations && !isPerfectBurgersVector(seg.BurgersVector) {
			continue
		}
		out = append(out, SegmentOutput{
			ID:                seg.ID,
			Line:              seg.Line,
			Length:            segmentLength(c, seg.Line),
			CoreSize:          seg.CoreSize,
			BurgersVector:     seg.BurgersVector,
			BurgersFractional: fractionalString(seg.BurgersVector),
		})
	}
	return out
}

// isPerfectBurgersVector reports whether v's components are all within
// lattice-vector tolerance of an integer — a "perfect" (as opposed to
// partial) dislocation per cfg.OnlyPerfectDislocations.
func isPerfectBurgersVector(v linalg.Vec3) bool {
	const eps = cluster.LatticeVectorEpsilon
	return closeToInt(v.X, eps) && closeToInt(v.Y, eps) && closeToInt(v.Z, eps)
}

func segmentLength(c cell.Cell, line []linalg.Vec3) float64 {
	var total float64
	for i := 0; i+1 < len(line); i++ {
		total += c.WrapVector(line[i+1].Sub(line[i])).Length()
	}
	return total
}

func collectClusters(cg *cluster.Graph) []ClusterOutput {
	n := cg.Clusters.Len()
	out := make([]ClusterOutput, n)
	for i := 0; i < n; i++ {
		cl := cg.Clusters.Get(arena.Index(i))
		out[i] = ClusterOutput{
			ID:          i,
			Structure:   cl.Structure,
			AtomCount:   cl.Size,
			Orientation: cl.Orientation,
		}
	}
	return out
}

func collectTransitions(cg *cluster.Graph) []TransitionOutput {
	n := cg.Transitions.Len()
	out := make([]TransitionOutput, n)
	for i := 0; i < n; i++ {
		t := cg.Transitions.Get(arena.Index(i))
		out[i] = TransitionOutput{From: int(t.From), To: int(t.To), TM: t.TM}
	}
	return out
}

func collectMeshVertices(m *mesh.Mesh) []linalg.Vec3 {
	n := m.Vertices.Len()
	out := make([]linalg.Vec3, n)
	for i := 0; i < n; i++ {
		out[i] = m.Vertices.Get(arena.Index(i)).Position
	}
	return out
}

func collectMeshTriangles(m *mesh.Mesh) [][3]int {
	n := m.Faces.Len()
	out := make([][3]int, 0, n)
	for i := 0; i < n; i++ {
		idx := arena.Index(i)
		face := m.Faces.Get(idx)
		e0 := face.FirstEdge
		if m.Edges.Get(e0).Face != idx {
			continue // dissolved by RemoveUnnecessaryFacets; its edges point elsewhere now
		}
		e1 := m.Edges.Get(e0).Next
		e2 := m.Edges.Get(e1).Next
		v0 := int(m.Edges.Get(e0).Origin)
		v1 := int(m.Edges.Get(e1).Origin)
		v2 := int(m.Edges.Get(e2).Origin)
		out = append(out, [3]int{v0, v1, v2})
	}
	return out
}

