package relation

import "math/big"

// Expr is a builder for a LinearCombination, assembled from Terms by
// addition, constant weighting, and negation. Go has no operator
// overloading, so where the term algebra reads `a + b`, `k * term`, `-x`
// in the original formulation, Expr offers Plus, Weight, and Negate
// methods instead. Expr adds no cryptographic semantics of its own; it is
// purely a convenience compiler down to a coefficient-free
// LinearCombination (see Compile).
type Expr struct {
	terms []weightedTerm
}

type weightedTerm struct {
	scalar ScalarVar
	elem   GroupVar
	weight *big.Int // nil means weight 1
}

// T starts an Expr from a single bare term s*P.
func T(s ScalarVar, p GroupVar) Expr {
	return Expr{terms: []weightedTerm{{scalar: s, elem: p}}}
}

// Plus returns the sum of e and other, preserving term order (e's terms
// first).
func (e Expr) Plus(other Expr) Expr {
	out := make([]weightedTerm, 0, len(e.terms)+len(other.terms))
	out = append(out, e.terms...)
	out = append(out, other.terms...)
	return Expr{terms: out}
}

// Minus returns e + (-other).
func (e Expr) Minus(other Expr) Expr {
	return e.Plus(other.Negate())
}

// Weight multiplies every term of e by the constant k, distributing over
// sums the way the original term algebra's `Sum * k` does.
func (e Expr) Weight(k *big.Int) Expr {
	out := make([]weightedTerm, len(e.terms))
	for i, t := range e.terms {
		w := new(big.Int).Set(k)
		if t.weight != nil {
			w.Mul(w, t.weight)
		}
		out[i] = weightedTerm{scalar: t.scalar, elem: t.elem, weight: w}
	}
	return Expr{terms: out}
}

// Negate returns -e, i.e. e.Weight(-1).
func (e Expr) Negate() Expr {
	return e.Weight(big.NewInt(-1))
}

// Compile lowers e into a coefficient-free LinearCombination against r.
//
// A term with weight 1 (the default, unweighted case) passes through
// unchanged. A term with a nontrivial weight k requires its GroupVar to
// already have an assigned value in r — Expr has no mechanism for
// deferred scaling — and is realized by allocating a fresh GroupVar bound
// to k times that value, so the LinearCombination that results still
// carries no coefficient of its own (matching the core Term's shape and
// leaving the statement label's fixed layout untouched). A term with
// weight zero is dropped, per the term algebra's rule that zero-
// coefficient weights collapse.
func (e Expr) Compile(r *LinearRelation) (LinearCombination, error) {
	terms := make([]Term, 0, len(e.terms))
	for _, t := range e.terms {
		if t.weight == nil || t.weight.Cmp(big.NewInt(1)) == 0 {
			terms = append(terms, Term{Scalar: t.scalar, Elem: t.elem})
			continue
		}
		if t.weight.Sign() == 0 {
			continue
		}

		base, err := r.Elements.Get(t.elem)
		if err != nil {
			return LinearCombination{}, err
		}
		scaled := r.Group.Element().Scale(base, t.weight)
		derived := r.AllocateElement()
		if err := r.SetElement(derived, scaled); err != nil {
			return LinearCombination{}, err
		}
		terms = append(terms, Term{Scalar: t.scalar, Elem: derived})
	}
	return LinearCombination{Terms: terms}, nil
}
