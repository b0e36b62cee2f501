package relation

// Term is the formal product s * P of a scalar variable and a group
// variable. It carries no coefficient: the spec's canonical form
// Xⱼ = Σᵢ aᵢⱼ·Pᵢ draws its coefficients aᵢⱼ directly from the witness
// scalars, not from a constant stored alongside the term.
type Term struct {
	Scalar ScalarVar
	Elem   GroupVar
}

// NewTerm builds a Term from a scalar and a group variable.
func NewTerm(s ScalarVar, p GroupVar) Term {
	return Term{Scalar: s, Elem: p}
}

// LinearCombination is an ordered sum of Terms, Σᵢ sᵢ·Pᵢ. Term order is
// part of the statement's identity: it is encoded into the label (see
// LinearRelation.Label) and therefore affects the Fiat-Shamir challenge.
type LinearCombination struct {
	Terms []Term
}

// NewLinearCombination builds a LinearCombination from the given terms, in
// order.
func NewLinearCombination(terms ...Term) LinearCombination {
	cp := make([]Term, len(terms))
	copy(cp, terms)
	return LinearCombination{Terms: cp}
}
