package dxa

import (
	"fmt"
	"math"

	"github.com/rodyherrera/dxa/linalg"
)

// fractionalString renders a lattice-frame vector in the crystallographic
// "1/d[h k l]" notation spec.md §6 asks for alongside the simulation-frame
// form, by searching for the smallest common denominator (up to 24, the
// lowest common multiple of every denominator the pipeline's FCC/BCC/HCP
// templates use) that brings every component within tolerance of an
// integer numerator. Falls back to plain decimal components when no such
// denominator is found (a vector that isn't a rational combination of
// lattice directions, e.g. an unrefined Burgers vector).
func fractionalString(v linalg.Vec3) string {
	const maxDenom = 24
	const eps = 1e-3
	for d := 1; d <= maxDenom; d++ {
		h := v.X * float64(d)
		k := v.Y * float64(d)
		l := v.Z * float64(d)
		if closeToInt(h, eps) && closeToInt(k, eps) && closeToInt(l, eps) {
			hi, ki, li := int(math.Round(h)), int(math.Round(k)), int(math.Round(l))
			g := gcd3(iabs(hi), iabs(ki), iabs(li))
			g = gcd(g, d)
			if g > 1 {
				hi, ki, li, d = hi/g, ki/g, li/g, d/g
			}
			if d == 1 {
				return fmt.Sprintf("[%d %d %d]", hi, ki, li)
			}
			return fmt.Sprintf("1/%d[%d %d %d]", d, hi, ki, li)
		}
	}
	return fmt.Sprintf("[%.4f %.4f %.4f]", v.X, v.Y, v.Z)
}

func closeToInt(f, eps float64) bool {
	return math.Abs(f-math.Round(f)) <= eps
}

func iabs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func gcd3(a, b, c int) int {
	return gcd(gcd(a, b), c)
}
