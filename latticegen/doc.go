// Package latticegen generates synthetic perfect-crystal atom coordinate
// sets for tests and end-to-end scenario validation.
//
// It generalizes the teacher's builder package (deterministic,
// option-configured graph constructors — Grid(rows,cols), Cycle(n),
// Complete(n) — each a small closure validated up front and then run in
// O(vertices+edges) with a fixed ID scheme) to 3D conventional-cell
// crystal lattices: FCC(nx,ny,nz,a) and BCC(nx,ny,nz,a) each emit atom
// positions in the same deterministic, axis-major order builder.Grid
// emits vertex IDs in, just over cells of a 3D lattice instead of a 2D
// grid.
package latticegen
