package dtw_test

import (
	"testing"

	"github.com/rodyherrera/dxa/dtw"
	"github.com/rodyherrera/dxa/linalg"
)

// benchmarkAlign runs Align on two synthetic straight dislocation lines of
// n and m points, sized like the longer lines this pipeline's segment
// extraction produces for a multi-thousand-atom frame.
func benchmarkAlign(b *testing.B, n, m int, opts dtw.Options) {
	a := make([]linalg.Vec3, n)
	for i := range a {
		a[i] = linalg.Vec3{X: float64(i)}
	}
	line2 := make([]linalg.Vec3, m)
	for j := range line2 {
		line2[j] = linalg.Vec3{X: float64(j)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := dtw.Align(a, line2, &opts)
		if err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

func BenchmarkAlign_FullMatrixSmall(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	benchmarkAlign(b, 100, 100, opts)
}

func BenchmarkAlign_FullMatrixMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	benchmarkAlign(b, 500, 500, opts)
}

func BenchmarkAlign_TwoRowsSmall(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkAlign(b, 100, 100, opts)
}

func BenchmarkAlign_TwoRowsMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkAlign(b, 500, 500, opts)
}

func BenchmarkAlign_NoMemorySmall(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.NoMemory
	benchmarkAlign(b, 100, 100, opts)
}

func BenchmarkAlign_NoMemoryMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.NoMemory
	benchmarkAlign(b, 500, 500, opts)
}

// BenchmarkAlign_WindowConstraint benchmarks FullMatrix with a strict
// window on mismatched lengths, the shape a real window-limited tracking
// call would take if a caller ever bounded how far a segment may drift.
func BenchmarkAlign_WindowConstraint(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	opts.Window = 0
	benchmarkAlign(b, 100, 101, opts)
}
