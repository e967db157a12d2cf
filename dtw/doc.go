// Package dtw aligns two dislocation line point sequences with Dynamic
// Time Warping, giving a shape-similarity distance that tolerates the
// two lines being discretized at different point densities — exactly
// what happens when the same physical segment is re-traced (and
// re-smoothed) in consecutive simulation frames.
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	dist, _, err := dtw.Align(lineA, lineB, &opts)
//
// Performance:
//
//   - Time:   O(N*M) for lines of N and M points
//   - Memory: O(N*M) (FullMatrix, needed for ReturnPath) or O(M)
//     (NoMemory/TwoRows, distance only)
package dtw
