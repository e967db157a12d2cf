package dtw

import (
	"math"

	"github.com/rodyherrera/dxa/linalg"
)

// Coord is one step of the optimal alignment: point I of line a matched
// against point J of line b.
type Coord struct {
	I, J int
}

// Align computes the Dynamic Time Warping distance between two
// dislocation lines' point sequences, and optionally the point-to-point
// alignment path if opts.ReturnPath is set. The local cost between two
// points is their Euclidean separation (linalg.Vec3.Sub(...).Length()),
// so the result is a true geometric shape distance rather than a
// per-coordinate one.
//
// Time complexity:    O(N*M) where N=len(a), M=len(b)
// Memory complexity:  O(M) for NoMemory and TwoRows (two rows of M+1),
//
//	O(N*M) for FullMatrix (with backtrace support).
func Align(a, b []linalg.Vec3, opts *Options) (dist float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if err = opts.Validate(); err != nil {
		return 0, nil, err
	}

	penalty := opts.SlopePenalty
	window := opts.Window
	mode := opts.MemoryMode
	needPath := opts.ReturnPath
	infinity := math.Inf(1)
	prevRow := make([]float64, m+1)
	currRow := make([]float64, m+1)

	// Row 0: aligning a zero-length prefix of a with any non-empty
	// prefix of b is impossible.
	var j int
	for j = 1; j <= m; j++ {
		prevRow[j] = infinity
	}

	var dpMatrix [][]float64
	if mode == FullMatrix {
		dpMatrix = make([][]float64, n+1)
		dpMatrix[0] = make([]float64, m+1)
		copy(dpMatrix[0], prevRow)
	}

	var i int
	var localCost, matchCost, insertCost, deleteCost, bestPrev float64
	for i = 1; i <= n; i++ {
		currRow[0] = infinity

		for j = 1; j <= m; j++ {
			if window >= 0 && abs(i-j) > window {
				currRow[j] = infinity
				continue
			}

			localCost = a[i-1].Sub(b[j-1]).Length()

			matchCost = prevRow[j-1]            // align a[i-1] with b[j-1]
			insertCost = prevRow[j] + penalty   // a[i-1] unmatched in b (advance i)
			deleteCost = currRow[j-1] + penalty // b[j-1] unmatched in a (advance j)

			bestPrev = min3(matchCost, insertCost, deleteCost)
			currRow[j] = localCost + bestPrev
		}

		if mode == FullMatrix {
			rowCopy := make([]float64, m+1)
			copy(rowCopy, currRow)
			dpMatrix[i] = rowCopy
		}

		prevRow, currRow = currRow, prevRow
	}

	dist = prevRow[m]

	if needPath {
		path, err = backtrack(dpMatrix, a, b, opts)
	}

	return dist, path, err
}

// backtrack reconstructs the alignment path from dpMatrix, walking
// backward from (N,M) to (0,0) along minimal-cost moves.
func backtrack(dp [][]float64, a, b []linalg.Vec3, opts *Options) ([]Coord, error) {
	i, j := len(a), len(b)
	path := make([]Coord, 0, i+j)

	for i > 0 || j > 0 {
		var x, y int
		if i > 0 && j > 0 {
			x, y = i-1, j-1
		} else if i > 0 {
			x, y = i-1, 0
		} else {
			x, y = 0, j-1
		}
		path = append(path, Coord{I: x, J: y})

		moved := false
		var localCost float64
		if i > 0 && j > 0 {
			localCost = a[i-1].Sub(b[j-1]).Length()
		}
		curr := dp[i][j] - localCost

		if i > 0 && j > 0 && almostEqual(curr, dp[i-1][j-1]) {
			i, j = i-1, j-1
			moved = true
		}
		if !moved && i > 0 && almostEqual(curr, dp[i-1][j]+opts.SlopePenalty) {
			i--
			moved = true
		}
		if !moved && j > 0 && almostEqual(curr, dp[i][j-1]+opts.SlopePenalty) {
			j--
			moved = true
		}

		if !moved {
			return nil, ErrIncompletePath
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, nil
}

func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) <= eps
}
