package sampling

import (
	"github.com/pkg/errors"

	"go.viam.com/hyperwalk/spatialmath"
)

// unitTolerance bounds how far a member's norm may drift from 1.
const unitTolerance = 1e-9

// Space is a fixed population of pairwise distinct unit quaternions stored contiguously.
// Members are addressed by index; a Space is read only once built.
type Space struct {
	members []spatialmath.Quaternion
	index   map[spatialmath.Quaternion]int
}

func newEmptySpace(capacity int) *Space {
	return &Space{
		members: make([]spatialmath.Quaternion, 0, capacity),
		index:   make(map[spatialmath.Quaternion]int, capacity),
	}
}

// NewSpace builds a Space from an explicit list of members. It fails if a member is not a unit
// quaternion or if two members are exactly equal.
func NewSpace(members []spatialmath.Quaternion) (*Space, error) {
	s := newEmptySpace(len(members))
	for i, q := range members {
		if !spatialmath.IsUnit(q, unitTolerance) {
			return nil, errors.Errorf("member %d (%v) is not a unit quaternion, norm %v", i, q.Array(), q.Norm())
		}
		if !s.add(q) {
			return nil, errors.Errorf("member %d (%v) is a duplicate of member %d", i, q.Array(), s.index[q])
		}
	}
	return s, nil
}

// add appends q unless an equal member is already present.
func (s *Space) add(q spatialmath.Quaternion) bool {
	if _, ok := s.index[q]; ok {
		return false
	}
	s.index[q] = len(s.members)
	s.members = append(s.members, q)
	return true
}

// Len returns the number of members.
func (s *Space) Len() int {
	return len(s.members)
}

// At returns the member at index i.
func (s *Space) At(i int) spatialmath.Quaternion {
	return s.members[i]
}

// Members returns a copy of the members in index order.
func (s *Space) Members() []spatialmath.Quaternion {
	out := make([]spatialmath.Quaternion, len(s.members))
	copy(out, s.members)
	return out
}

// IndexOf returns the index of q, or -1 if q is not a member.
func (s *Space) IndexOf(q spatialmath.Quaternion) int {
	if i, ok := s.index[q]; ok {
		return i
	}
	return -1
}

// Contains reports whether q is exactly equal to a member.
func (s *Space) Contains(q spatialmath.Quaternion) bool {
	_, ok := s.index[q]
	return ok
}
