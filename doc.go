// Package dxa drives one frame of the dislocation-extraction pipeline
// end to end: spatial cell and neighbor enumeration (package cell),
// per-atom structure classification (package structure), cluster graph
// construction (package cluster), interface mesh building (package mesh),
// Burgers circuit tracing (package burgers), and output post-processing
// (package post). RunFrame runs the chain once; Run drives a sequence of
// frames, optionally in parallel, invoking a progress callback once per
// completed frame from a single coordinator goroutine.
//
// Every per-frame pool (cell's neighbor bins, the mesh arena, the Burgers
// graph) is local to its RunFrame call and discarded at the end — nothing
// here persists state across frames beyond what a caller keeps in the
// returned FrameResult.
package dxa
