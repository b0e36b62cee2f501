// Package fiatshamir binds a Schnorr Sigma protocol to a domain-separated
// transcript, turning the interactive protocol into a non-interactive
// proof of knowledge.
package fiatshamir

import (
	"io"
	"math/big"

	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
	"github.com/takakv/sigma-go/schnorr"
	"github.com/takakv/sigma-go/sponge"
)

// Wrapper owns a Schnorr protocol and a template codec. Every Prove or
// Verify call clones the template rather than mutating it, so the
// wrapper is safe to reuse across many independent proofs of the same
// statement, including concurrently.
type Wrapper struct {
	protocol *schnorr.Protocol
	template *sponge.Codec
}

// New constructs a wrapper around protocol. iv is a caller-chosen,
// fixed-length domain separator (16 or 32 bytes recommended); the
// library never defaults one. protocolIdentifier further separates
// distinct protocol instantiations sharing an IV (e.g. a version or
// cipher-suite string).
//
// New absorbs protocolIdentifier and then protocol.Relation.Label() into
// the template codec before returning. Without binding the statement
// label here, two distinct relations sharing an IV would derive
// challenges from the same transcript prefix and could collide.
func New(iv, protocolIdentifier []byte, protocol *schnorr.Protocol) *Wrapper {
	codec := sponge.NewCodec(protocol.Relation.Group, iv)
	codec.ProverMessage(protocolIdentifier).ProverMessage(protocol.Relation.Label())
	return &Wrapper{protocol: protocol, template: codec}
}

func serializeElements(T []group.Element) ([]byte, error) {
	var out []byte
	for _, e := range T {
		b, err := e.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Prove drives the wrapped protocol's commit/respond pair, deriving the
// challenge from a clone of the template codec after absorbing the
// commitment's canonical serialization. Before returning, it locally
// verifies the resulting transcript as a self-consistency check.
func (w *Wrapper) Prove(witness []*big.Int, rng io.Reader) ([]group.Element, *big.Int, []*big.Int, error) {
	codec := w.template.Clone()

	T, state, err := w.protocol.ProverCommit(witness, rng)
	if err != nil {
		return nil, nil, nil, err
	}

	data, err := serializeElements(T)
	if err != nil {
		return nil, nil, nil, err
	}
	c := codec.ProverMessage(data).VerifierChallenge()

	z, err := w.protocol.ProverResponse(state, c)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := w.protocol.Verifier(T, c, z); err != nil {
		return nil, nil, nil, errs.ErrVerificationFailure
	}
	return T, c, z, nil
}

// Verify recomputes the challenge from T and checks it against c before
// delegating to the wrapped protocol's verifier.
func (w *Wrapper) Verify(T []group.Element, c *big.Int, z []*big.Int) error {
	codec := w.template.Clone()
	data, err := serializeElements(T)
	if err != nil {
		return errs.ErrVerificationFailure
	}
	expected := codec.ProverMessage(data).VerifierChallenge()
	if expected.Cmp(c) != 0 {
		return errs.ErrVerificationFailure
	}
	return w.protocol.Verifier(T, c, z)
}

// ProveBatchable produces a non-interactive proof in the batchable wire
// format.
func (w *Wrapper) ProveBatchable(witness []*big.Int, rng io.Reader) ([]byte, error) {
	T, _, z, err := w.Prove(witness, rng)
	if err != nil {
		return nil, err
	}
	return w.protocol.SerializeBatchable(T, z)
}

// VerifyBatchable verifies a proof in the batchable wire format.
func (w *Wrapper) VerifyBatchable(proof []byte) error {
	T, z, err := w.protocol.DeserializeBatchable(proof)
	if err != nil {
		return err
	}

	codec := w.template.Clone()
	data, err := serializeElements(T)
	if err != nil {
		return errs.ErrVerificationFailure
	}
	c := codec.ProverMessage(data).VerifierChallenge()
	return w.protocol.Verifier(T, c, z)
}

// ProveCompact produces a non-interactive proof in the compact wire
// format.
func (w *Wrapper) ProveCompact(witness []*big.Int, rng io.Reader) ([]byte, error) {
	_, c, z, err := w.Prove(witness, rng)
	if err != nil {
		return nil, err
	}
	return w.protocol.SerializeCompact(c, z)
}

// VerifyCompact verifies a proof in the compact wire format, recovering
// the commitment from (c, z) before absorbing it and comparing challenges
// exactly as a batchable verification would.
func (w *Wrapper) VerifyCompact(proof []byte) error {
	c, z, err := w.protocol.DeserializeCompact(proof)
	if err != nil {
		return err
	}
	T, err := w.protocol.GetCommitment(c, z)
	if err != nil {
		return err
	}
	return w.Verify(T, c, z)
}
