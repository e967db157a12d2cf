package linalg

import "math"

// Vec3 is a 3-tuple of reals: a simulation-frame position/delta or a
// lattice-frame vector, depending on context.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

// Neg returns -a.
func (a Vec3) Neg() Vec3 { return Vec3{-a.X, -a.Y, -a.Z} }

// Dot returns the scalar dot product a.b.
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the vector cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// LengthSq returns |a|^2. Cheaper than Length when only a cutoff comparison
// is needed (see cell.NeighborFinder, which compares against r_c^2).
func (a Vec3) LengthSq() float64 { return a.Dot(a) }

// Length returns the Euclidean norm |a|.
func (a Vec3) Length() float64 { return math.Sqrt(a.LengthSq()) }

// Normalized returns a/|a|, or the zero vector if a is (numerically) zero.
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l < 1e-300 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// ApproxEqual reports whether a and b differ by at most eps on every axis,
// the componentwise tolerance check used throughout the pipeline (e.g.
// lattice-vector equality).
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// IsZero reports whether a is within eps of the zero vector.
func (a Vec3) IsZero(eps float64) bool {
	return a.ApproxEqual(Vec3{}, eps)
}

// DominantAxis returns the index (0=x,1=y,2=z) of the axis with the
// greatest absolute component, ties broken toward the lower index x,y,z —
// used to pick a stable line-orientation axis.
func (a Vec3) DominantAxis() int {
	abs := [3]float64{math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z)}
	best := 0
	for i := 1; i < 3; i++ {
		if abs[i] > abs[best] {
			best = i
		}
	}
	return best
}

// Component returns the i-th component (0=x,1=y,2=z).
func (a Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}
