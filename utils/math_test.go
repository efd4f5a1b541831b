package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, RadToDeg(math.Pi), test.ShouldAlmostEqual, 180)
	test.That(t, DegToRad(90), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestNormalize(t *testing.T) {
	test.That(t, Normalize(0, -1, 1), test.ShouldAlmostEqual, 0.5)
	test.That(t, Normalize(-1, -1, 1), test.ShouldAlmostEqual, 0)
	test.That(t, Normalize(3, -1, 1), test.ShouldAlmostEqual, 1)
	test.That(t, Normalize(2, 2, 2), test.ShouldAlmostEqual, 0.5)
	test.That(t, Clamp(-4, 0, 1), test.ShouldEqual, 0)
}
