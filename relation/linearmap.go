package relation

import (
	"math/big"

	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
)

// LinearMap is the list of constraint equations over a fixed group,
// together with the group-element values assigned so far and the current
// allocation counters. It has no notion of which GroupVars are "image"
// variables; LinearRelation adds that.
type LinearMap struct {
	// Group is the prime-order group the relation is defined over.
	Group group.Group
	// Constraints holds one LinearCombination per equation, in order.
	Constraints []LinearCombination
	// Elements holds the assigned group-element values.
	Elements *GroupMap
	// NumScalars is the number of scalar variables allocated so far.
	NumScalars int
	// NumElements is the number of group variables allocated so far.
	NumElements int
}

func newLinearMap(g group.Group) *LinearMap {
	return &LinearMap{Group: g, Elements: newGroupMap(g)}
}

// Append pushes a new constraint equation onto the map.
func (m *LinearMap) Append(lc LinearCombination) {
	m.Constraints = append(m.Constraints, lc)
}

// Evaluate computes, for each constraint in order, the multi-scalar
// multiplication Σ over its terms of scalars[t.Scalar]*Elements[t.Elem].
// It returns errs.ErrInvalidInstanceWitnessPair if len(scalars) does not
// match NumScalars, and errs.ErrUnassignedGroupVar if a referenced element
// has no assigned value.
func (m *LinearMap) Evaluate(scalars []*big.Int) ([]group.Element, error) {
	if len(scalars) != m.NumScalars {
		return nil, errs.ErrInvalidInstanceWitnessPair
	}

	out := make([]group.Element, len(m.Constraints))
	for j, lc := range m.Constraints {
		acc := m.Group.Identity()
		for _, t := range lc.Terms {
			base, err := m.Elements.Get(t.Elem)
			if err != nil {
				return nil, err
			}
			scaled := m.Group.Element().Scale(base, scalars[t.Scalar.idx])
			acc = m.Group.Element().Add(acc, scaled)
		}
		out[j] = acc
	}
	return out, nil
}
