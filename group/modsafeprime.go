package group

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// ModPElement is an element of the multiplicative subgroup of Z_p^* of
// prime order (p-1)/2, for a safe prime p.
type ModPElement struct {
	group *ModPGroup
	val   *big.Int
}

// ModPGroup is a safe-prime multiplicative group, as used by classical
// finite-field ElGamal and Diffie-Hellman.
type ModPGroup struct {
	gen        *big.Int
	fieldOrder *big.Int
	groupOrder *big.Int
	name       string
	elementLen int
}

func (g *ModPGroup) Name() string {
	return g.name
}

func (g *ModPGroup) equals(h Group) bool {
	if g == h {
		return true
	}
	gh, ok := h.(*ModPGroup)
	if !ok {
		return false
	}
	return g.fieldOrder.Cmp(gh.fieldOrder) == 0 && g.gen.Cmp(gh.gen) == 0
}

func (g *ModPGroup) P() *big.Int {
	return g.fieldOrder
}

func (g *ModPGroup) N() *big.Int {
	return g.groupOrder
}

func (g *ModPGroup) ElementLen() int {
	return g.elementLen
}

func (g *ModPGroup) ScalarLen() int {
	return scalarLen(g.groupOrder)
}

func (g *ModPGroup) Generator() Element {
	return &ModPElement{
		group: g,
		val:   new(big.Int).Set(g.gen),
	}
}

func (g *ModPGroup) Identity() Element {
	return &ModPElement{
		group: g,
		val:   big.NewInt(1),
	}
}

func (g *ModPGroup) Random() Element {
	r, _ := rand.Int(rand.Reader, g.groupOrder)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *ModPGroup) Element() Element {
	return &ModPElement{
		group: g,
		val:   new(big.Int),
	}
}

func (e *ModPElement) check(a Element) *ModPElement {
	ey, ok := a.(*ModPElement)
	if !ok {
		panic("incompatible group element type")
	}
	if !e.group.equals(ey.group) {
		panic("incompatible groups")
	}
	return ey
}

func (e *ModPElement) Add(a Element, b Element) Element {
	ex := e.check(a)
	ey := e.check(b)
	e.val = new(big.Int).Mul(ex.val, ey.val)
	e.val.Mod(e.val, e.group.fieldOrder)
	return e
}

func (e *ModPElement) Subtract(a Element, b Element) Element {
	tmp := e.group.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *ModPElement) Negate(a Element) Element {
	ex := e.check(a)
	e.val = new(big.Int).ModInverse(ex.val, e.group.fieldOrder)
	return e
}

func (e *ModPElement) IsEqual(b Element) bool {
	ey := e.check(b)
	return e.val.Cmp(ey.val) == 0
}

func (e *ModPElement) Set(a Element) Element {
	ex := e.check(a)
	e.val = new(big.Int).Set(ex.val)
	return e
}

func (e *ModPElement) SetBytes(b []byte) Element {
	e.val = new(big.Int).SetBytes(b)
	return e
}

func (e *ModPElement) Scale(a Element, s *big.Int) Element {
	ex := e.check(a)
	e.val = new(big.Int).Exp(ex.val, s, e.group.fieldOrder)
	return e
}

func (e *ModPElement) BaseScale(s *big.Int) Element {
	e.val = new(big.Int).Exp(e.group.gen, s, e.group.fieldOrder)
	return e
}

func (e *ModPElement) String() string {
	return e.val.String()
}

func (e *ModPElement) IsIdentity() bool {
	return e.val.Cmp(big.NewInt(1)) == 0
}

// MarshalBinary encodes the element as a fixed-width big-endian integer,
// padded to the byte length of the field order.
func (e *ModPElement) MarshalBinary() ([]byte, error) {
	l := e.group.elementLen
	b := e.val.Bytes()
	if len(b) > l {
		return nil, fmt.Errorf("group: modp element overflows %d bytes", l)
	}
	out := make([]byte, l)
	copy(out[l-len(b):], b)
	return out, nil
}

// UnmarshalBinary recovers an element from the encoding produced by
// MarshalBinary, rejecting inputs of the wrong length and values that are
// not elements of the prime-order subgroup.
func (e *ModPElement) UnmarshalBinary(data []byte) error {
	if len(data) != e.group.elementLen {
		return fmt.Errorf("group: modp encoding must be %d bytes, got %d", e.group.elementLen, len(data))
	}
	val := new(big.Int).SetBytes(data)
	if val.Sign() == 0 || val.Cmp(e.group.fieldOrder) >= 0 ||
		new(big.Int).Exp(val, e.group.groupOrder, e.group.fieldOrder).Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("group: modp encoding is not an element of the group")
	}
	e.val = val
	return nil
}

// NewModPGroup constructs a safe-prime multiplicative group from a
// hex-encoded field order (whitespace is ignored, to allow the RFC 3526
// formatting convention) and a hex-encoded generator.
func NewModPGroup(name string, fieldOrder, generator string) Group {
	repr := strings.Join(strings.Fields(fieldOrder), "")

	ffOrder, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		panic("invalid group definition")
	}

	gen, ok := new(big.Int).SetString(generator, 16)
	if !ok {
		panic("invalid generator")
	}

	genOrder := new(big.Int).Set(ffOrder)
	genOrder.Sub(genOrder, big.NewInt(1))
	genOrder.Div(genOrder, big.NewInt(2))

	return &ModPGroup{
		fieldOrder: ffOrder,
		groupOrder: genOrder,
		gen:        gen,
		name:       name,
		elementLen: scalarLen(ffOrder),
	}
}
