package robot

import "math"

// Vec3 is a 3D coordinate value. It is passed and stored by value;
// arithmetic methods return new values and never mutate the receiver.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// NormSq is the squared Euclidean length. Termination checks compare
// NormSq against tolerance squared so the hot path never takes a root.
func (v Vec3) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Norm is the Euclidean length. Reporting only, not for per-step
// comparisons.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// IsValid reports whether all components are finite.
func (v Vec3) IsValid() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
