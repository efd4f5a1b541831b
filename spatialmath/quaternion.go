// Package spatialmath defines the unit quaternion value type used to describe orientations on the 3-sphere
// and the relative rotations between them.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is an immutable unit quaternion stored scalar first: Real is w, and Imag, Jmag, Kmag are x, y, z.
// The same slot order is used by the sampler, the relative rotation math and the serialized rows.
type Quaternion quat.Number

// Identity returns the quaternion which signifies no rotation.
func Identity() Quaternion {
	return Quaternion{Real: 1}
}

// NewQuaternion builds a quaternion from its scalar-first components.
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// FromArray builds a quaternion from a scalar-first array.
func FromArray(a [4]float64) Quaternion {
	return NewQuaternion(a[0], a[1], a[2], a[3])
}

// Number returns the underlying gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number(q)
}

// Array returns the components in scalar-first order.
func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}

// Vector returns the x, y, z part of the quaternion.
func (q Quaternion) Vector() r3.Vector {
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Norm returns the euclidean norm of the four components.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// Compose returns a∘b, i.e. the rotation b applied in the frame reached by a.
func Compose(a, b Quaternion) Quaternion {
	return Quaternion(quat.Mul(a.Number(), b.Number()))
}

// ConjugateInverse returns the conjugate of q, which is its inverse when q is a unit quaternion.
func ConjugateInverse(q Quaternion) Quaternion {
	return Quaternion(quat.Conj(q.Number()))
}

// RelativeRotation returns the transformation t such that Compose(from, t) == to.
func RelativeRotation(from, to Quaternion) Quaternion {
	return Compose(ConjugateInverse(from), to)
}

// DifferenceNorm returns the euclidean norm of the component-wise difference of a and b.
// It does not identify q with -q.
func DifferenceNorm(a, b Quaternion) float64 {
	return quat.Abs(quat.Sub(a.Number(), b.Number()))
}

// AlmostEqual reports whether every component of a and b differs by at most tol.
func AlmostEqual(a, b Quaternion, tol float64) bool {
	return math.Abs(a.Real-b.Real) <= tol &&
		math.Abs(a.Imag-b.Imag) <= tol &&
		math.Abs(a.Jmag-b.Jmag) <= tol &&
		math.Abs(a.Kmag-b.Kmag) <= tol
}

// IsUnit reports whether the norm of q is within tol of 1.
func IsUnit(q Quaternion, tol float64) bool {
	return math.Abs(q.Norm()-1) < tol
}

// AxisAngles returns the orientation in axis angle representation.
func (q Quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q)
}
