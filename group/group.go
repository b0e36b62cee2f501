// Package group provides the prime-order group abstraction that the sigma
// protocol core builds on. It is a thin, uniform wrapper around several
// concrete backends (NIST curves and Ristretto255 via circl, secp256k1 via
// zkrp's p256 package, BLS12-381 G1 via gnark-crypto, and a safe-prime
// multiplicative group), so the rest of the module can be written once
// against Group/Element and instantiated against any of them.
package group

import (
	"encoding"
	"math/big"
)

// Element represents an element of a prime-order group.
type Element interface {
	// Add sets the receiver to X + Y, and returns it.
	Add(X, Y Element) Element
	// Subtract sets the receiver to X - Y and returns it.
	Subtract(X, Y Element) Element
	// Negate sets the receiver to -X, and returns it.
	Negate(X Element) Element
	// Scale performs the group operation s times with X,
	// sets the receiver to the result, and returns it.
	Scale(X Element, s *big.Int) Element
	// BaseScale performs the group operation s times with the
	// group's generator, sets the receiver to the result, and returns it.
	BaseScale(s *big.Int) Element
	// Set sets the receiver to X, and returns it.
	Set(X Element) Element
	// SetBytes recovers a group element from a byte representation,
	// sets the receiver to this element, and returns it.
	SetBytes(b []byte) Element
	// IsEqual returns true if the receiver is equal to X.
	IsEqual(X Element) bool
	// IsIdentity returns true if the receiver is the group's
	// identity element.
	IsIdentity() bool
	// String returns a string representation of the element.
	String() string
	// BinaryMarshaler returns the canonical, fixed-length byte
	// representation of the element.
	encoding.BinaryMarshaler
	// BinaryUnmarshaler recovers an element from a byte representation
	// produced by encoding.BinaryMarshaler, rejecting anything that is
	// not exactly Group.ElementLen() bytes or not canonical.
	encoding.BinaryUnmarshaler
}

// Group represents a prime-order group over a prime-order field.
// The group can be either multiplicative or additive.
type Group interface {
	// Name returns the name of the group.
	Name() string

	// Element creates a new, zero-valued group element.
	Element() Element
	// Generator creates a group element set to the group's generator.
	Generator() Element
	// Identity creates a group element set to the group's identity element.
	Identity() Element

	// Random returns a uniformly sampled element from the group by
	// sampling a random scalar r and returning rG.
	Random() Element

	// P returns the prime order of the field over which the group is
	// defined.
	P() *big.Int
	// N returns the prime order of the group.
	N() *big.Int

	// ElementLen returns the length, in bytes, of the canonical
	// fixed-length encoding produced by Element.MarshalBinary for this
	// group.
	ElementLen() int
	// ScalarLen returns the length, in bytes, of the canonical
	// fixed-length encoding of a scalar (an element of Z_N) for this
	// group, as used by the sigma protocol core.
	ScalarLen() int
}

// scalarLen returns the number of bytes needed to hold any element of
// Z_n in a fixed-width, big-endian encoding.
func scalarLen(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}
