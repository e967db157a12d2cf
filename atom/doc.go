// Package atom defines the per-atom data record the rest of the pipeline
// mutates in place: an immutable position plus the classification,
// neighbor table, local orientation, flags and cluster link that the
// structure, cluster and mesh stages populate successively.
package atom
