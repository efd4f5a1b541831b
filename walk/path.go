package walk

import "go.viam.com/hyperwalk/spatialmath"

// A Step is one entry of a Path: the orientation reached and the transformation applied to the
// previous orientation to reach it.
type Step struct {
	Orientation    spatialmath.Quaternion
	Transformation spatialmath.Quaternion
	// SpaceIndex is the index of Orientation in the Space it was chosen from.
	SpaceIndex int
	// Score is the value that ranked this candidate.
	Score float64
}

// Path is an ordered sequence of Steps starting from the identity orientation.
type Path []Step

// Orientations returns the orientation of every step in order.
func (p Path) Orientations() []spatialmath.Quaternion {
	out := make([]spatialmath.Quaternion, len(p))
	for i, s := range p {
		out[i] = s.Orientation
	}
	return out
}

// Transformations returns the transformation of every step in order.
func (p Path) Transformations() []spatialmath.Quaternion {
	out := make([]spatialmath.Quaternion, len(p))
	for i, s := range p {
		out[i] = s.Transformation
	}
	return out
}

// SpaceIndices returns the space index of every step in order.
func (p Path) SpaceIndices() []int {
	out := make([]int, len(p))
	for i, s := range p {
		out[i] = s.SpaceIndex
	}
	return out
}
