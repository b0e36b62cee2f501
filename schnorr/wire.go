package schnorr

import (
	"math/big"

	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
)

func serializeScalar(s *big.Int, length int) []byte {
	out := make([]byte, length)
	s.FillBytes(out)
	return out
}

// SerializeBatchable encodes (T, z) as serialize_elements(T) ‖
// serialize_scalars(z): the concatenation of each commitment element's
// canonical encoding, followed by each response scalar's canonical
// encoding. No length prefixes are added — the relation's shape and the
// group's encoding sizes fix every field's width.
func (p *Protocol) SerializeBatchable(T []group.Element, z []*big.Int) ([]byte, error) {
	g := p.Relation.Group
	if len(T) != len(p.Relation.Constraints) || len(z) != p.Relation.NumScalars {
		return nil, errs.ErrInvalidInstanceWitnessPair
	}

	out := make([]byte, 0, len(T)*g.ElementLen()+len(z)*g.ScalarLen())
	for _, e := range T {
		b, err := e.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	for _, s := range z {
		out = append(out, serializeScalar(s, g.ScalarLen())...)
	}
	return out, nil
}

// DeserializeBatchable parses the wire format produced by
// SerializeBatchable. Any length other than
// Ne*ElementLen + NumScalars*ScalarLen, or a non-canonical element
// encoding, is reported as errs.ErrVerificationFailure: an attacker-
// supplied proof must not be able to distinguish a malformed proof from
// one that simply fails the algebraic check.
func (p *Protocol) DeserializeBatchable(data []byte) ([]group.Element, []*big.Int, error) {
	g := p.Relation.Group
	ne := len(p.Relation.Constraints)
	ns := p.Relation.NumScalars
	want := ne*g.ElementLen() + ns*g.ScalarLen()
	if len(data) != want {
		return nil, nil, errs.ErrVerificationFailure
	}

	T := make([]group.Element, ne)
	off := 0
	for i := 0; i < ne; i++ {
		el := g.Element()
		if err := el.UnmarshalBinary(data[off : off+g.ElementLen()]); err != nil {
			return nil, nil, errs.ErrVerificationFailure
		}
		T[i] = el
		off += g.ElementLen()
	}

	z := make([]*big.Int, ns)
	for i := 0; i < ns; i++ {
		z[i] = new(big.Int).SetBytes(data[off : off+g.ScalarLen()])
		off += g.ScalarLen()
	}

	return T, z, nil
}

// SerializeCompact encodes (c, z) as serialize_scalar(c) ‖
// serialize_scalars(z). The commitment is not included; a verifier
// recovers it via GetCommitment.
func (p *Protocol) SerializeCompact(challenge *big.Int, z []*big.Int) ([]byte, error) {
	g := p.Relation.Group
	if len(z) != p.Relation.NumScalars {
		return nil, errs.ErrInvalidInstanceWitnessPair
	}

	out := make([]byte, 0, (len(z)+1)*g.ScalarLen())
	out = append(out, serializeScalar(challenge, g.ScalarLen())...)
	for _, s := range z {
		out = append(out, serializeScalar(s, g.ScalarLen())...)
	}
	return out, nil
}

// DeserializeCompact parses the wire format produced by
// SerializeCompact. Any length other than (NumScalars+1)*ScalarLen is
// reported as errs.ErrProofSizeMismatch.
func (p *Protocol) DeserializeCompact(data []byte) (*big.Int, []*big.Int, error) {
	g := p.Relation.Group
	ns := p.Relation.NumScalars
	sl := g.ScalarLen()
	want := (ns + 1) * sl
	if len(data) != want {
		return nil, nil, errs.ErrProofSizeMismatch
	}

	challenge := new(big.Int).SetBytes(data[:sl])
	z := make([]*big.Int, ns)
	for i := 0; i < ns; i++ {
		z[i] = new(big.Int).SetBytes(data[sl+i*sl : sl+(i+1)*sl])
	}
	return challenge, z, nil
}
