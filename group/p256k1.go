package group

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ing-bank/zkrp/crypto/p256"
)

type p256k1Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
	coordLen   int
}

type p256k1Point struct {
	curve *p256k1Group
	val   *p256.P256
}

func (g *p256k1Group) Name() string {
	return g.name
}

func (g *p256k1Group) P() *big.Int {
	return g.fieldOrder
}

func (g *p256k1Group) N() *big.Int {
	return g.curveOrder
}

func (g *p256k1Group) ElementLen() int {
	return 2 * g.coordLen
}

func (g *p256k1Group) ScalarLen() int {
	return scalarLen(g.curveOrder)
}

func (g *p256k1Group) Generator() Element {
	return &p256k1Point{
		curve: g,
		val:   new(p256.P256).ScalarBaseMult(big.NewInt(1)),
	}
}

func (g *p256k1Group) Identity() Element {
	return &p256k1Point{
		curve: g,
		val:   new(p256.P256).SetInfinity(),
	}
}

func (g *p256k1Group) Random() Element {
	r, _ := rand.Int(rand.Reader, g.curveOrder)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *p256k1Group) Element() Element {
	return &p256k1Point{
		curve: g,
		val:   new(p256.P256),
	}
}

func (e *p256k1Point) check(a Element) *p256k1Point {
	ey, ok := a.(*p256k1Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ey
}

func (e *p256k1Point) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = new(p256.P256).Multiply(ca.val, cb.val)
	return e
}

func (e *p256k1Point) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *p256k1Point) Negate(a Element) Element {
	ca := e.check(a)
	e.val = new(p256.P256).ScalarMult(ca.val, big.NewInt(-1))
	return e
}

func (e *p256k1Point) IsEqual(b Element) bool {
	cb := e.check(b)
	zero := big.NewInt(0)

	xIsEq := false
	yIsEq := false

	if e.val.X == nil || e.val.X.Cmp(zero) == 0 {
		xIsEq = cb.val.X == nil || cb.val.X.Cmp(zero) == 0
	} else if cb.val.X == nil || cb.val.X.Cmp(zero) == 0 {
		xIsEq = false
	} else {
		xIsEq = e.val.X.Cmp(cb.val.X) == 0
	}

	if e.val.Y == nil || e.val.Y.Cmp(zero) == 0 {
		yIsEq = cb.val.Y == nil || cb.val.Y.Cmp(zero) == 0
	} else if cb.val.Y == nil || cb.val.Y.Cmp(zero) == 0 {
		yIsEq = false
	} else {
		yIsEq = e.val.Y.Cmp(cb.val.Y) == 0
	}

	return xIsEq && yIsEq
}

func (e *p256k1Point) Set(a Element) Element {
	ca := e.check(a)
	e.val = new(p256.P256).Add(new(p256.P256).SetInfinity(), ca.val)
	return e
}

func (e *p256k1Point) SetBytes(b []byte) Element {
	l := e.curve.coordLen
	xBytes := b[:l]
	yBytes := b[l:]
	e.val = new(p256.P256).SetInfinity()
	e.val.X = new(big.Int).SetBytes(xBytes)
	e.val.Y = new(big.Int).SetBytes(yBytes)
	return e
}

func (e *p256k1Point) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	e.val = new(p256.P256).ScalarMult(ca.val, s)
	return e
}

func (e *p256k1Point) BaseScale(s *big.Int) Element {
	e.val = new(p256.P256).ScalarBaseMult(s)
	return e
}

func (e *p256k1Point) String() string {
	return e.val.String()
}

func (e *p256k1Point) IsIdentity() bool {
	if e.val.X == nil && e.val.Y == nil {
		return true
	}
	return e.val.X.Cmp(big.NewInt(0)) == 0 && e.val.Y.Cmp(big.NewInt(0)) == 0
}

// MarshalBinary encodes the point as the fixed-width concatenation of its
// affine X and Y coordinates, each padded to curve.coordLen bytes. The
// identity is encoded as all zero bytes.
func (e *p256k1Point) MarshalBinary() ([]byte, error) {
	l := e.curve.coordLen
	out := make([]byte, 2*l)
	if e.val.X != nil {
		xb := e.val.X.Bytes()
		if len(xb) > l {
			return nil, fmt.Errorf("group: secp256k1 X coordinate overflows %d bytes", l)
		}
		copy(out[l-len(xb):l], xb)
	}
	if e.val.Y != nil {
		yb := e.val.Y.Bytes()
		if len(yb) > l {
			return nil, fmt.Errorf("group: secp256k1 Y coordinate overflows %d bytes", l)
		}
		copy(out[2*l-len(yb):], yb)
	}
	return out, nil
}

// UnmarshalBinary recovers a point from the encoding produced by
// MarshalBinary. It rejects any input whose length is not exactly
// 2*curve.coordLen bytes, and any pair of coordinates other than the
// all-zero identity encoding that is not a point on y^2 = x^3 + 7.
func (e *p256k1Point) UnmarshalBinary(data []byte) error {
	l := e.curve.coordLen
	if len(data) != 2*l {
		return fmt.Errorf("group: secp256k1 encoding must be %d bytes, got %d", 2*l, len(data))
	}
	x := new(big.Int).SetBytes(data[:l])
	y := new(big.Int).SetBytes(data[l:])
	if x.Sign() != 0 || y.Sign() != 0 {
		p := e.curve.fieldOrder
		lhs := new(big.Int).Mul(y, y)
		lhs.Mod(lhs, p)
		rhs := new(big.Int).Exp(x, big.NewInt(3), p)
		rhs.Add(rhs, big.NewInt(7))
		rhs.Mod(rhs, p)
		if x.Cmp(p) >= 0 || y.Cmp(p) >= 0 || lhs.Cmp(rhs) != 0 {
			return fmt.Errorf("group: secp256k1 encoding is not a point on the curve")
		}
	}
	e.SetBytes(data)
	return nil
}

// SecP256k1 returns the secp256k1 group, backed by zkrp's p256 package
// (despite the package name, it implements the Bitcoin/Ethereum curve).
func SecP256k1() Group {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	return &p256k1Group{
		fieldOrder: p,
		curveOrder: n,
		name:       "secp256k1",
		coordLen:   32,
	}
}
