package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation can be expressed by an axis, a line from the origin to a point on the unit sphere
// given by (rx, ry, rz), and a rotation around that axis, theta. Multiplying the axis by theta
// gives the R3 form, a vector whose length is the angle.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates a zero rotation about the z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// ToQuat converts an R4 axis angle to a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) ToQuat() Quaternion {
	if r4.norm() == 0 {
		return Identity()
	}
	sinA := math.Sin(r4.Theta / 2)
	r4.Normalize()
	return NewQuaternion(math.Cos(r4.Theta/2), r4.RX*sinA, r4.RY*sinA, r4.RZ*sinA)
}

// Normalize scales the x, y, and z components of a R4 axis angle to be on the unit sphere.
// A zero axis is left untouched.
func (r4 *R4AA) Normalize() {
	norm := r4.norm()
	if norm == 0.0 {
		return
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
}

func (r4 *R4AA) norm() float64 {
	return math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
}

// ToR3 converts an R4 angle axis to R3.
func (r4 *R4AA) ToR3() r3.Vector {
	return r3.Vector{X: r4.RX * r4.Theta, Y: r4.RY * r4.Theta, Z: r4.RZ * r4.Theta}
}

// R3ToR4 converts an R3 angle axis to R4.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta == 0 {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}

// QuatToR4AA converts a unit quaternion to an axis angle in the same way the C++ Eigen library does.
// q and -q are the same rotation, so the result is the shorter one, with Theta in [0, π].
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q Quaternion) *R4AA {
	denom := q.Vector().Norm()
	if denom < 1e-6 {
		return NewR4AA()
	}
	if q.Real < 0 {
		denom = -denom
	}
	angle := 2 * math.Atan2(math.Abs(denom), math.Abs(q.Real))
	return &R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}
