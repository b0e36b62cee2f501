package relation

import (
	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
)

// GroupMap is a partial, insertion-ordered mapping from GroupVar to an
// assigned group.Element. It grows as slots are assigned and never
// shrinks; an assigned slot can only ever be reassigned the same value.
type GroupMap struct {
	g    group.Group
	vals []group.Element
}

func newGroupMap(g group.Group) *GroupMap {
	return &GroupMap{g: g}
}

// Set assigns value to var. Reassigning the same value is a no-op.
// Reassigning a different value returns errs.ErrConflictingAssignment,
// since that always indicates a caller bug rather than a proof failure.
func (m *GroupMap) Set(v GroupVar, value group.Element) error {
	if v.idx >= len(m.vals) {
		grown := make([]group.Element, v.idx+1)
		copy(grown, m.vals)
		m.vals = grown
	}
	if existing := m.vals[v.idx]; existing != nil {
		if existing.IsEqual(value) {
			return nil
		}
		return errs.ErrConflictingAssignment
	}
	m.vals[v.idx] = value
	return nil
}

// Get returns the element assigned to var, or errs.ErrUnassignedGroupVar
// if no value has been assigned yet.
func (m *GroupMap) Get(v GroupVar) (group.Element, error) {
	if v.idx >= len(m.vals) || m.vals[v.idx] == nil {
		return nil, errs.ErrUnassignedGroupVar
	}
	return m.vals[v.idx], nil
}
