package schnorr

import (
	"io"
	"math/big"

	"crypto/rand"

	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
)

// GetCommitment recovers the commitment T implied by a (challenge,
// response) pair: T[j] = evaluate(z)[j] - c*X[j]. It is the mechanism
// behind both compact-proof verification and HVZK simulation.
func (p *Protocol) GetCommitment(challenge *big.Int, z []*big.Int) ([]group.Element, error) {
	if len(z) != p.Relation.NumScalars {
		return nil, errs.ErrInvalidInstanceWitnessPair
	}

	images, err := p.Relation.ImageElements()
	if err != nil {
		return nil, err
	}
	responseImage, err := p.Relation.Evaluate(z)
	if err != nil {
		return nil, err
	}

	g := p.Relation.Group
	T := make([]group.Element, len(images))
	for j := range images {
		scaled := g.Element().Scale(images[j], challenge)
		T[j] = g.Element().Subtract(responseImage[j], scaled)
	}
	return T, nil
}

// SimulateProof produces a (T, z) pair for the given challenge without
// knowledge of a witness: each response entry is sampled independently
// and uniformly from the scalar field (a prior variant of this simulator
// sampled one scalar and repeated it across every position, which does
// not reproduce the honest distribution; this samples each entry on its
// own), and T is recovered via GetCommitment so the pair verifies.
func (p *Protocol) SimulateProof(challenge *big.Int, rng io.Reader) ([]group.Element, []*big.Int, error) {
	n := p.Relation.Group.N()
	z := make([]*big.Int, p.Relation.NumScalars)
	for i := range z {
		zi, err := rand.Int(rng, n)
		if err != nil {
			return nil, nil, err
		}
		z[i] = zi
	}

	T, err := p.GetCommitment(challenge, z)
	if err != nil {
		return nil, nil, err
	}
	return T, z, nil
}

// SimulateTranscript samples a uniform challenge and simulates a full
// (T, c, z) transcript for it.
func (p *Protocol) SimulateTranscript(rng io.Reader) ([]group.Element, *big.Int, []*big.Int, error) {
	n := p.Relation.Group.N()
	c, err := rand.Int(rng, n)
	if err != nil {
		return nil, nil, nil, err
	}
	T, z, err := p.SimulateProof(c, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	return T, c, z, nil
}
