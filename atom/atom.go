package atom

import (
	"github.com/rodyherrera/dxa/arena"
	"github.com/rodyherrera/dxa/config"
	"github.com/rodyherrera/dxa/linalg"
)

// MaxAtomNeighbors bounds the per-atom neighbor table; BCC's 14 shell is
// the largest candidate signature the structure stage inspects, so the
// table is sized generously above that to tolerate disordered atoms with
// irregular coordination.
const MaxAtomNeighbors = 20

// Flag is a bitmask of per-atom boolean properties.
type Flag uint16

const (
	FlagDisordered Flag = 1 << iota
	FlagNonBulk
	FlagISF
	FlagTB
	FlagSharedNode
	FlagVisited
	FlagDisclinationBorder
)

// Atom is one per-atom record. Position is set once at construction and
// never mutated; every other field is populated by later stages.
type Atom struct {
	Position linalg.Vec3

	Structure   config.CrystalStructure
	Orientation linalg.Mat3 // valid only when Structure != Other

	// NeighborCount is the number of valid entries in Neighbors/Bonds.
	NeighborCount int
	Neighbors     [MaxAtomNeighbors]int32 // indices into the owning Set
	// Bonds[i] is a bitmask over neighbor slots: bit j set means
	// Neighbors[i] and Neighbors[j] are themselves within the CNA cutoff —
	// a bit-matrix of pairwise neighbor-of-neighbor relationships, packed
	// as one uint32 per neighbor slot since MaxAtomNeighbors <= 32.
	Bonds [MaxAtomNeighbors]uint32

	Flags   Flag
	Cluster arena.Index // arena.Nil until assigned by the cluster stage

	// Transient, frame-scoped working fields, reset at the start of each
	// stage that uses them.
	WalkDepth int
	PBCImage  int
}

// HasFlag reports whether f is set.
func (a *Atom) HasFlag(f Flag) bool { return a.Flags&f != 0 }

// SetFlag sets f.
func (a *Atom) SetFlag(f Flag) { a.Flags |= f }

// ClearFlag clears f.
func (a *Atom) ClearFlag(f Flag) { a.Flags &^= f }

// NeighborBond reports whether neighbor slots i and j (indices into
// a.Neighbors, not atom indices) are themselves bonded.
func (a *Atom) NeighborBond(i, j int) bool {
	return a.Bonds[i]&(1<<uint(j)) != 0
}

// SetNeighborBond records whether neighbor slots i and j are bonded,
// symmetrically.
func (a *Atom) SetNeighborBond(i, j int, bonded bool) {
	if bonded {
		a.Bonds[i] |= 1 << uint(j)
		a.Bonds[j] |= 1 << uint(i)
	} else {
		a.Bonds[i] &^= 1 << uint(j)
		a.Bonds[j] &^= 1 << uint(i)
	}
}

// Set is the per-frame collection of atoms, addressed by plain int index
// (atoms are never individually freed within a frame, so a dense slice —
// rather than an arena.Pool — is sufficient and avoids an extra
// indirection on the hottest per-atom loops).
type Set struct {
	Atoms []Atom
}

// NewSet builds a Set from absolute simulation-frame positions.
func NewSet(positions []linalg.Vec3) *Set {
	atoms := make([]Atom, len(positions))
	for i, p := range positions {
		atoms[i] = Atom{Position: p, Cluster: arena.Nil}
	}
	return &Set{Atoms: atoms}
}

// Len returns the number of atoms.
func (s *Set) Len() int { return len(s.Atoms) }
