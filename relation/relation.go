package relation

import (
	"encoding/binary"
	"math/big"

	"github.com/takakv/sigma-go/group"
)

// LinearRelation couples a LinearMap with an image: the ordered list of
// GroupVars that name the public left-hand side of each equation. It is
// the statement half of a Sigma protocol proof of knowledge.
type LinearRelation struct {
	*LinearMap
	// Image holds, for each equation j, the GroupVar naming Xⱼ.
	Image []GroupVar
}

// New creates an empty LinearRelation over g.
func New(g group.Group) *LinearRelation {
	return &LinearRelation{LinearMap: newLinearMap(g)}
}

// AllocateScalar reserves a new scalar variable and returns its handle.
// Indices are dense and monotonically increasing from zero.
func (r *LinearRelation) AllocateScalar() ScalarVar {
	v := ScalarVar{idx: r.NumScalars}
	r.NumScalars++
	return v
}

// AllocateScalars reserves n new scalar variables in one call, returned in
// allocation order.
func (r *LinearRelation) AllocateScalars(n int) []ScalarVar {
	out := make([]ScalarVar, n)
	for i := range out {
		out[i] = r.AllocateScalar()
	}
	return out
}

// AllocateElement reserves a new group variable and returns its handle.
func (r *LinearRelation) AllocateElement() GroupVar {
	v := GroupVar{idx: r.NumElements}
	r.NumElements++
	return v
}

// AllocateElements reserves n new group variables in one call, returned in
// allocation order.
func (r *LinearRelation) AllocateElements(n int) []GroupVar {
	out := make([]GroupVar, n)
	for i := range out {
		out[i] = r.AllocateElement()
	}
	return out
}

// AppendEquation adds the equation lhs = rhs to the relation.
func (r *LinearRelation) AppendEquation(lhs GroupVar, rhs LinearCombination) {
	r.Append(rhs)
	r.Image = append(r.Image, lhs)
}

// AllocateEq allocates a fresh GroupVar, appends the equation (var = rhs),
// and returns var so the caller can later assign its computed image.
func (r *LinearRelation) AllocateEq(rhs LinearCombination) GroupVar {
	v := r.AllocateElement()
	r.AppendEquation(v, rhs)
	return v
}

// SetElement assigns value to var. See GroupMap.Set for the conflicting-
// assignment rule.
func (r *LinearRelation) SetElement(v GroupVar, value group.Element) error {
	return r.Elements.Set(v, value)
}

// SetElements assigns each (var, value) pair of the map. Pairs are visited
// in Go's map iteration order, which is unspecified; the first failing
// assignment's error is returned, and pairs visited before it stay assigned.
func (r *LinearRelation) SetElements(assignments map[GroupVar]group.Element) error {
	for v, val := range assignments {
		if err := r.SetElement(v, val); err != nil {
			return err
		}
	}
	return nil
}

// ComputeImage evaluates the relation at scalars and assigns the result of
// equation j into the GroupMap slot named by Image[j]. It is the inverse
// of building a relation symbolically and then deriving the public
// statement from a known witness.
func (r *LinearRelation) ComputeImage(scalars []*big.Int) error {
	if len(r.Image) != len(r.Constraints) {
		panic("relation: image and constraint counts differ")
	}
	values, err := r.Evaluate(scalars)
	if err != nil {
		return err
	}
	for j, value := range values {
		if err := r.SetElement(r.Image[j], value); err != nil {
			return err
		}
	}
	return nil
}

// ImageElements returns the currently assigned value of each image
// variable, in equation order. It fails with errs.ErrUnassignedGroupVar if
// any image slot has not yet been assigned.
func (r *LinearRelation) ImageElements() ([]group.Element, error) {
	out := make([]group.Element, len(r.Image))
	for i, v := range r.Image {
		val, err := r.Elements.Get(v)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// IsTrivial reports whether every image variable is assigned and equal to
// the group's identity — the all-identity statement that a Sigma protocol
// must refuse to prove, since it is satisfied by any witness. It returns
// false if any image slot is still unassigned.
func (r *LinearRelation) IsTrivial() bool {
	vals, err := r.ImageElements()
	if err != nil {
		return false
	}
	for _, v := range vals {
		if !v.IsIdentity() {
			return false
		}
	}
	return true
}

// Label returns the deterministic byte string encoding the shape of the
// relation: the number of equations, and for each equation (in order) the
// image variable's index, the term count, and each term's (scalar, elem)
// index pair. All widths are fixed 32-bit little-endian integers. Label
// depends only on variable indices and term/equation order, never on
// assigned element values.
func (r *LinearRelation) Label() []byte {
	ne := len(r.Image)
	if ne != len(r.Constraints) {
		panic("relation: image and constraint counts differ")
	}

	buf := make([]byte, 4)
	out := make([]byte, 0, 4+ne*8)

	binary.LittleEndian.PutUint32(buf, uint32(ne))
	out = append(out, buf...)

	for j, lc := range r.Constraints {
		binary.LittleEndian.PutUint32(buf, uint32(r.Image[j].idx))
		out = append(out, buf...)

		binary.LittleEndian.PutUint32(buf, uint32(len(lc.Terms)))
		out = append(out, buf...)

		for _, t := range lc.Terms {
			binary.LittleEndian.PutUint32(buf, uint32(t.Scalar.idx))
			out = append(out, buf...)
			binary.LittleEndian.PutUint32(buf, uint32(t.Elem.idx))
			out = append(out, buf...)
		}
	}

	return out
}

// CommitBytesLen returns the number of bytes a commitment to this
// relation occupies on the wire: one canonical element encoding per
// equation.
func (r *LinearRelation) CommitBytesLen() int {
	return len(r.Constraints) * r.Group.ElementLen()
}
