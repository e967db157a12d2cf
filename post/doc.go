// Package post runs the output post-processing pass over a traced
// dislocation network: polyline coarsening and Taubin smoothing of
// segment lines, Taubin smoothing of the interface mesh surface,
// periodic-boundary clipping of lines into single-image subsegments, and
// the scalar/tensor dislocation density statistics.
//
// Taubin smoothing and PBC clipping are new numeric routines over
// linalg.Vec3 arithmetic and cell.Cell's wrap helpers; nothing in the
// example pack smooths a polyline or a mesh. Line coarsening ("drop every
// k-th interior point before smoothing") generalizes the teacher's dtw
// package's windowed-downsampling shape (dtw.go's Sakoe-Chiba band
// narrows which index pairs participate; here a stride narrows which
// interior points survive) from sequence alignment to polyline decimation.
package post
