package mesh

import (
	"fmt"

	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/dxaerr"
)

// Validate checks the half-edge topology invariants and returns the first
// violation found, wrapped in dxaerr.ErrMeshTopologyBroken.
func Validate(m *Mesh) error {
	n := m.Edges.Len()
	for i := 0; i < n; i++ {
		idx := arena.Index(i)
		e := m.Edges.Get(idx)
		opp := m.Edges.Get(e.Opposite)
		if opp.Opposite != idx {
			return fmt.Errorf("mesh: edge %d opposite is not involutive: %w", i, dxaerr.ErrMeshTopologyBroken)
		}
		if e.Face.Valid() != opp.Face.Valid() {
			return fmt.Errorf("mesh: edge %d face-nil mismatch with its opposite: %w", i, dxaerr.ErrMeshTopologyBroken)
		}
	}

	fn := m.Faces.Len()
	for f := 0; f < fn; f++ {
		face := m.Faces.Get(arena.Index(f))
		e0 := face.FirstEdge
		e1 := m.Edges.Get(e0).Next
		e2 := m.Edges.Get(e1).Next
		back := m.Edges.Get(e2).Next
		if back != e0 {
			return fmt.Errorf("mesh: face %d does not close after 3 edges: %w", f, dxaerr.ErrMeshTopologyBroken)
		}
		sum := m.Edges.Get(e0).ClusterVector.Add(m.Edges.Get(e1).ClusterVector).Add(m.Edges.Get(e2).ClusterVector)
		if !sum.IsZero(1e-6) {
			return fmt.Errorf("mesh: face %d lattice vectors do not sum to zero: %w", f, dxaerr.ErrMeshTopologyBroken)
		}
	}
	return nil
}
