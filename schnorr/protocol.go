// Package schnorr implements the generalized Schnorr Sigma protocol for a
// linear relation: honest commit/response, the verifier's equality check,
// and the HVZK simulator that produces identically-distributed
// transcripts without a witness.
package schnorr

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
	"github.com/takakv/sigma-go/relation"
)

// Protocol is a Schnorr Sigma protocol instance over a single
// relation.LinearRelation. It owns that relation exclusively; nothing
// else should mutate it once a Protocol has been built over it.
type Protocol struct {
	Relation *relation.LinearRelation
}

// New wraps r as a Schnorr Sigma protocol.
func New(r *relation.LinearRelation) *Protocol {
	return &Protocol{Relation: r}
}

// ProverState carries the nonces and witness between ProverCommit and
// ProverResponse within a single proof attempt. It must not be reused
// across attempts: a fresh ProverCommit call draws fresh nonces.
type ProverState struct {
	nonces  []*big.Int
	witness []*big.Int
}

// ProverCommit draws a fresh, independent nonce per witness entry,
// computes the commitment T = evaluate(nonces), and returns it alongside
// the state needed to answer a challenge.
//
// It refuses to prove a trivially-true statement (an all-identity image),
// and rejects a witness whose length does not match the relation's
// scalar count, both with errs.ErrInvalidInstanceWitnessPair.
func (p *Protocol) ProverCommit(witness []*big.Int, rng io.Reader) ([]group.Element, *ProverState, error) {
	if len(witness) != p.Relation.NumScalars {
		return nil, nil, errs.ErrInvalidInstanceWitnessPair
	}
	if p.Relation.IsTrivial() {
		return nil, nil, errs.ErrInvalidInstanceWitnessPair
	}

	n := p.Relation.Group.N()
	nonces := make([]*big.Int, len(witness))
	for i := range nonces {
		r, err := rand.Int(rng, n)
		if err != nil {
			return nil, nil, err
		}
		nonces[i] = r
	}

	T, err := p.Relation.Evaluate(nonces)
	if err != nil {
		return nil, nil, err
	}

	w := make([]*big.Int, len(witness))
	copy(w, witness)
	return T, &ProverState{nonces: nonces, witness: w}, nil
}

// ProverResponse computes z[i] = r[i] + c*w[i] mod N from the state
// returned by ProverCommit and the Fiat-Shamir challenge c.
func (p *Protocol) ProverResponse(state *ProverState, challenge *big.Int) ([]*big.Int, error) {
	if len(state.nonces) != p.Relation.NumScalars || len(state.witness) != p.Relation.NumScalars {
		return nil, errs.ErrInvalidInstanceWitnessPair
	}

	n := p.Relation.Group.N()
	z := make([]*big.Int, len(state.nonces))
	for i := range z {
		zi := new(big.Int).Mul(state.witness[i], challenge)
		zi.Add(zi, state.nonces[i])
		zi.Mod(zi, n)
		z[i] = zi
	}
	return z, nil
}

// Verifier checks that evaluate(z) == c*X + T componentwise, where X is
// the relation's assigned image.
func (p *Protocol) Verifier(T []group.Element, challenge *big.Int, z []*big.Int) error {
	if len(T) != len(p.Relation.Constraints) || len(z) != p.Relation.NumScalars {
		return errs.ErrInvalidInstanceWitnessPair
	}

	images, err := p.Relation.ImageElements()
	if err != nil {
		return err
	}
	lhs, err := p.Relation.Evaluate(z)
	if err != nil {
		return err
	}

	g := p.Relation.Group
	for j := range T {
		rhs := g.Element().Add(g.Element().Scale(images[j], challenge), T[j])
		if !lhs[j].IsEqual(rhs) {
			return errs.ErrVerificationFailure
		}
	}
	return nil
}
