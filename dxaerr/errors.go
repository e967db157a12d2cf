// Package dxaerr collects the sentinel error kinds shared across every DXA
// pipeline stage (cell, structure, cluster, mesh, burgers, post, dxa).
//
// Each sentinel is a distinct error *kind*, not a single fixed message:
// call sites wrap it with fmt.Errorf("...: %w", dxaerr.ErrXxx) to attach
// frame-specific detail while keeping errors.Is/errors.As matching stable
// across the whole pipeline, the same convention the teacher corpus uses
// per-package (core.ErrVertexNotFound, bfs.ErrWeightedGraph, ops.ErrSingular).
package dxaerr

import "errors"

var (
	// ErrConfigInvalid marks a Config that failed validation before any
	// work began: circuit-size bounds violated, non-positive cutoff, etc.
	// Fatal for the run; the frame is never started.
	ErrConfigInvalid = errors.New("dxa: configuration invalid")

	// ErrCellDegenerate marks a simulation cell with det(H) == 0, or a
	// periodic axis narrower than 2*cutoff. Fatal for the frame; aborts
	// before any neighbor list is built.
	ErrCellDegenerate = errors.New("dxa: simulation cell degenerate")

	// ErrInputTruncated marks a frame parser that reached EOF mid-frame
	// or failed I/O. Surfaced to the parser's caller, not retried here.
	ErrInputTruncated = errors.New("dxa: input truncated")

	// ErrInvalidInput marks a per-atom structural precondition violation
	// (e.g. an HCP candidate missing its basal neighbor). Non-fatal: the
	// offending atom is classified OTHER and a warning counter increments.
	ErrInvalidInput = errors.New("dxa: invalid per-atom input")

	// ErrMeshTopologyBroken marks a violated half-edge invariant
	// (opposite(opposite(e)) != e, face edge-sum nonzero, mismatched
	// face presence across an opposite pair). Fatal for the frame.
	ErrMeshTopologyBroken = errors.New("dxa: mesh topology broken")

	// ErrNumericDegenerate marks a singular matrix encountered while
	// inverting an orientation or solving a rotation fit. Fatal for the
	// frame, not for the run.
	ErrNumericDegenerate = errors.New("dxa: numeric degeneracy")
)

// Fatal reports whether err (or anything it wraps) is one of the sentinel
// kinds that must abort the current frame. ErrInvalidInput is deliberately
// excluded: it is aggregated as a warning and the frame continues.
func Fatal(err error) bool {
	switch {
	case errors.Is(err, ErrConfigInvalid):
		return true
	case errors.Is(err, ErrCellDegenerate):
		return true
	case errors.Is(err, ErrMeshTopologyBroken):
		return true
	case errors.Is(err, ErrNumericDegenerate):
		return true
	default:
		return false
	}
}
