package group

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// bls12381Group is the G1 subgroup of the BLS12-381 pairing-friendly
// curve, backed by gnark-crypto. It is the curve named by the reference
// test vectors (spec.md §8).
type bls12381Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type bls12381Point struct {
	curve *bls12381Group
	val   bls12381.G1Jac
}

func (g *bls12381Group) Name() string {
	return g.name
}

func (g *bls12381Group) P() *big.Int {
	return g.fieldOrder
}

func (g *bls12381Group) N() *big.Int {
	return g.curveOrder
}

// ElementLen is the length, in bytes, of a compressed G1 point.
func (g *bls12381Group) ElementLen() int {
	return 48
}

// ScalarLen is the length, in bytes, of a canonical Fr scalar.
func (g *bls12381Group) ScalarLen() int {
	return 32
}

func (g *bls12381Group) Generator() Element {
	_, _, gen, _ := bls12381.Generators()
	e := &bls12381Point{curve: g}
	e.val.FromAffine(&gen)
	return e
}

func (g *bls12381Group) Identity() Element {
	return &bls12381Point{curve: g}
}

func (g *bls12381Group) Random() Element {
	r, _ := rand.Int(rand.Reader, g.curveOrder)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *bls12381Group) Element() Element {
	return &bls12381Point{curve: g}
}

func (e *bls12381Point) check(a Element) *bls12381Point {
	ea, ok := a.(*bls12381Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ea
}

func (e *bls12381Point) affine() bls12381.G1Affine {
	affs := bls12381.BatchJacobianToAffineG1([]bls12381.G1Jac{e.val})
	return affs[0]
}

func (e *bls12381Point) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	var sum bls12381.G1Jac
	sum.Set(&ca.val)
	sum.AddAssign(&cb.val)
	e.val = sum
	return e
}

func (e *bls12381Point) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *bls12381Point) Negate(a Element) Element {
	ca := e.check(a)
	var neg bls12381.G1Jac
	neg.Neg(&ca.val)
	e.val = neg
	return e
}

func (e *bls12381Point) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	var res bls12381.G1Jac
	res.ScalarMultiplication(&ca.val, s)
	e.val = res
	return e
}

func (e *bls12381Point) BaseScale(s *big.Int) Element {
	_, _, gen, _ := bls12381.Generators()
	var genJac bls12381.G1Jac
	genJac.FromAffine(&gen)
	genJac.ScalarMultiplication(&genJac, s)
	e.val = genJac
	return e
}

func (e *bls12381Point) Set(a Element) Element {
	ca := e.check(a)
	e.val.Set(&ca.val)
	return e
}

func (e *bls12381Point) SetBytes(b []byte) Element {
	var aff bls12381.G1Affine
	_ = aff.Unmarshal(b)
	e.val.FromAffine(&aff)
	return e
}

func (e *bls12381Point) IsEqual(b Element) bool {
	cb := e.check(b)
	ea := e.affine()
	eb := cb.affine()
	return ea.Equal(&eb)
}

func (e *bls12381Point) IsIdentity() bool {
	return e.val.Z.IsZero()
}

func (e *bls12381Point) String() string {
	b, _ := e.MarshalBinary()
	return hex.EncodeToString(b)
}

// MarshalBinary encodes the point as a 48-byte compressed G1 element.
func (e *bls12381Point) MarshalBinary() ([]byte, error) {
	aff := e.affine()
	out := aff.Bytes()
	return out[:], nil
}

// UnmarshalBinary recovers a point from the 48-byte compressed encoding
// produced by MarshalBinary, rejecting input of any other length.
func (e *bls12381Point) UnmarshalBinary(data []byte) error {
	if len(data) != e.curve.ElementLen() {
		return fmt.Errorf("group: bls12-381 encoding must be %d bytes, got %d", e.curve.ElementLen(), len(data))
	}
	var aff bls12381.G1Affine
	if err := aff.Unmarshal(data); err != nil {
		return err
	}
	e.val.FromAffine(&aff)
	return nil
}

// BLS12381G1 returns the G1 subgroup of BLS12-381, backed by gnark-crypto.
func BLS12381G1() Group {
	p, _ := new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	n, _ := new(big.Int).SetString(
		"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

	return &bls12381Group{
		fieldOrder: p,
		curveOrder: n,
		name:       "BLS12-381-G1",
	}
}
