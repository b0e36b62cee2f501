package sponge

import (
	"math/big"

	"github.com/takakv/sigma-go/group"
)

// oversampleBytes is the number of extra bytes squeezed beyond the
// scalar field's own byte length before reducing modulo the group order,
// so that the reduction bias is negligible.
const oversampleBytes = 16

// Codec is the Fiat-Shamir transcript built on top of a Duplex: it
// absorbs an initialization vector at construction, and from then on
// exposes ProverMessage (absorb, chaining) and VerifierChallenge (squeeze
// a uniformly-distributed scalar) to the Sigma protocol core.
type Codec struct {
	d *Duplex
	g group.Group
}

// NewCodec initializes a codec over g's scalar field, absorbing iv into a
// fresh sponge.
func NewCodec(g group.Group, iv []byte) *Codec {
	c := &Codec{d: New(), g: g}
	c.d.Absorb(iv)
	return c
}

// ProverMessage absorbs data and returns the receiver, so calls can chain:
// codec.ProverMessage(a).ProverMessage(b).VerifierChallenge().
func (c *Codec) ProverMessage(data []byte) *Codec {
	c.d.Absorb(data)
	return c
}

// VerifierChallenge squeezes enough bytes to sample a scalar from the
// group's field with negligible bias, and reduces it modulo the group
// order. Calling it does not consume the sponge: the same absorbed
// sequence always yields the same challenge, and further ProverMessage
// calls are still well defined afterward.
func (c *Codec) VerifierChallenge() *big.Int {
	n := c.g.N()
	byteLen := (n.BitLen()+7)/8 + oversampleBytes
	raw := c.d.Squeeze(byteLen)
	x := new(big.Int).SetBytes(raw)
	return x.Mod(x, n)
}

// Clone returns an independent copy of the codec, sharing no state with
// the receiver.
func (c *Codec) Clone() *Codec {
	return &Codec{d: c.d.Clone(), g: c.g}
}
