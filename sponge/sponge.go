// Package sponge provides the duplex sponge construction the Fiat-Shamir
// codec is built on: an absorb/squeeze XOF state that deterministically
// turns an absorbed transcript into challenge bytes, and can be cloned
// cheaply so a caller can squeeze a preview without disturbing the
// state it squeezed from.
package sponge

import "golang.org/x/crypto/sha3"

// Duplex is a duplex sponge backed by a SHAKE256 extendable-output
// function. Absorb writes into the running state; Squeeze reads from a
// clone of that state, so the original remains open to further
// absorption — the sponge equivalent of peeking at the output stream
// without consuming it.
type Duplex struct {
	h sha3.ShakeHash
}

// New returns an empty duplex sponge.
func New() *Duplex {
	return &Duplex{h: sha3.NewShake256()}
}

// Absorb mixes data into the sponge state.
func (d *Duplex) Absorb(data []byte) {
	_, _ = d.h.Write(data)
}

// Squeeze returns n bytes derived from everything absorbed so far,
// without consuming the underlying state: the same sequence of Absorb
// calls followed by Squeeze always yields the same output, regardless of
// how many times Squeeze has already been called.
func (d *Duplex) Squeeze(n int) []byte {
	clone := d.h.Clone()
	out := make([]byte, n)
	_, _ = clone.Read(out)
	return out
}

// Clone returns an independent copy of the sponge's current state.
func (d *Duplex) Clone() *Duplex {
	return &Duplex{h: d.h.Clone()}
}
