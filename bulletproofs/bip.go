/*
 * Copyright (C) 2019 ING BANK N.V.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package bulletproofs

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"github.com/takakv/sigma-go/group"

	"github.com/ing-bank/zkrp/crypto/p256"
	"github.com/ing-bank/zkrp/util/bn"
	"github.com/ing-bank/zkrp/util/byteconversion"
)

var SEEDU = "BulletproofsDoesNotNeedTrustedSetupU"

// InnerProductParamsSP holds the generators shared by proveInnerProductSP
// and VerifySP, carried over the caller's backend group rather than a
// hardcoded curve.
type InnerProductParamsSP struct {
	N  int64
	Cc *big.Int
	Uu group.Element
	H  group.Element
	Gg []group.Element
	Hh []group.Element
	P  group.Element
	SP group.Group
}

// InnerProductProofSP is the transcript produced by the recursive
// inner-product halving argument: the round commitments Ls/Rs and the
// final scalars A, B.
type InnerProductProofSP struct {
	N      int64
	Ls     []group.Element
	Rs     []group.Element
	U      group.Element
	P      group.Element
	Gg     group.Element
	Hh     group.Element
	A      *big.Int
	B      *big.Int
	Params InnerProductParamsSP
}

// setupInnerProductSP derives the P256-seeded generators used by the
// inner-product argument, mapping them onto the caller's group via their
// byte encoding when no explicit generators are supplied.
func setupInnerProductSP(H group.Element, g, h []group.Element, c *big.Int, N int64, SP group.Group) (InnerProductParamsSP, error) {
	var params InnerProductParamsSP

	if N <= 0 {
		return params, errors.New("N must be greater than zero")
	}
	params.N = N

	if H == nil {
		tmp, _ := p256.MapToGroup(SEEDH)
		tmpX := tmp.X.Bytes()
		tmpY := tmp.Y.Bytes()
		params.H = SP.Element().SetBytes(append(tmpX, tmpY...))
	} else {
		params.H = H
	}
	if g == nil {
		params.Gg = make([]group.Element, params.N)
		for i := int64(0); i < params.N; i++ {
			tmp, _ := p256.MapToGroup(SEEDH + "g" + fmt.Sprint(i))
			tmpX := tmp.X.Bytes()
			tmpY := tmp.Y.Bytes()
			params.Gg[i] = SP.Element().SetBytes(append(tmpX, tmpY...))
		}
	} else {
		params.Gg = g
	}
	if h == nil {
		params.Hh = make([]group.Element, params.N)
		for i := int64(0); i < params.N; i++ {
			tmp, _ := p256.MapToGroup(SEEDH + "h" + fmt.Sprint(i))
			tmpX := tmp.X.Bytes()
			tmpY := tmp.Y.Bytes()
			params.Hh[i] = SP.Element().SetBytes(append(tmpX, tmpY...))
		}
	} else {
		params.Hh = h
	}
	params.Cc = c

	tmp, _ := p256.MapToGroup(SEEDU)
	tmpX := tmp.X.Bytes()
	tmpY := tmp.Y.Bytes()
	params.Uu = SP.Element().SetBytes(append(tmpX, tmpY...))
	params.P = SP.Identity()
	params.SP = SP

	return params, nil
}

// proveInnerProductSP runs the Bulletproofs inner-product argument for
// <a,b> = c, binding the blinding factor u^(x*c) into P before the
// recursive halving.
func proveInnerProductSP(a, b []*big.Int, P group.Element, params InnerProductParamsSP) (InnerProductProofSP, error) {
	var (
		proof InnerProductProofSP
		Ls    []group.Element
		Rs    []group.Element
	)

	n := int64(len(a))
	m := int64(len(b))
	if n != m {
		return proof, errors.New("size of first array argument must be equal to the second")
	}

	// Fiat-Shamir: x = Hash(g,h,P,c)
	x, _ := hashIPSP(params.Gg, params.Hh, P, params.Cc, params.N)
	ux := params.SP.Element().Scale(params.Uu, x)
	uxc := params.SP.Element().Scale(ux, params.Cc)
	PP := params.SP.Element().Add(P, uxc)

	proof = computeBipRecursiveSP(a, b, params.Gg, params.Hh, ux, PP, n, Ls, Rs, params.SP)
	proof.Params = params
	proof.Params.P = PP
	return proof, nil
}

// computeBipRecursiveSP halves the vectors a, b, g, h at each round,
// folding the witness and generators by the round challenge until a
// single (a, b) scalar pair remains.
func computeBipRecursiveSP(a, b []*big.Int, g, h []group.Element, u, P group.Element, n int64, Ls, Rs []group.Element, SP group.Group) InnerProductProofSP {
	var proof InnerProductProofSP

	if n == 1 {
		proof.A = a[0]
		proof.B = b[0]
		proof.Gg = g[0]
		proof.Hh = h[0]
		proof.P = P
		proof.U = u
		proof.Ls = Ls
		proof.Rs = Rs
	} else {
		nprime := n / 2

		cL, _ := ScalarProduct(a[:nprime], b[nprime:])
		cR, _ := ScalarProduct(a[nprime:], b[:nprime])

		L, _ := VectorExpSP(g[nprime:], a[:nprime], SP)
		Lh, _ := VectorExpSP(h[:nprime], b[nprime:], SP)
		L = SP.Element().Add(L, Lh)
		L = SP.Element().Add(L, SP.Element().Scale(u, cL))

		R, _ := VectorExpSP(g[:nprime], a[nprime:], SP)
		Rh, _ := VectorExpSP(h[nprime:], b[:nprime], SP)
		R = SP.Element().Add(R, Rh)
		R = SP.Element().Add(R, SP.Element().Scale(u, cR))

		x, _, _ := HashBPSP(L, R)
		xinv := bn.ModInverse(x, ORDER)

		gprime, _ := VectorECAdd(vectorScalarExpSP(g[:nprime], xinv, SP), vectorScalarExpSP(g[nprime:], x, SP), SP)
		hprime, _ := VectorECAdd(vectorScalarExpSP(h[:nprime], x, SP), vectorScalarExpSP(h[nprime:], xinv, SP), SP)

		x2 := bn.Mod(bn.Multiply(x, x), ORDER)
		x2inv := bn.ModInverse(x2, ORDER)
		Pprime := SP.Element().Add(SP.Element().Scale(L, x2), P)
		Pprime = SP.Element().Add(Pprime, SP.Element().Scale(R, x2inv))

		aprime, _ := VectorAdd(mustScalarMul(a[:nprime], x), mustScalarMul(a[nprime:], xinv), ORDER)
		bprime, _ := VectorAdd(mustScalarMul(b[:nprime], xinv), mustScalarMul(b[nprime:], x), ORDER)

		Ls = append(Ls, L)
		Rs = append(Rs, R)
		proof = computeBipRecursiveSP(aprime, bprime, gprime, hprime, u, Pprime, nprime, Ls, Rs, SP)
	}
	proof.N = n
	return proof
}

// mustScalarMul is VectorScalarMul without the never-returned error,
// kept local so computeBipRecursiveSP's fold stays a single expression.
func mustScalarMul(a []*big.Int, b *big.Int) []*big.Int {
	result, _ := VectorScalarMul(a, b, ORDER)
	return result
}

// VerifySP recomputes the folded generators and commitment from the
// proof's round transcript and checks P' == g'^a.h'^b.u^(a*b).
func (proof InnerProductProofSP) VerifySP() (bool, error) {
	logn := len(proof.Ls)

	gprime := proof.Params.Gg
	hprime := proof.Params.Hh
	Pprime := proof.Params.P
	nprime := proof.N
	for i := int64(0); i < int64(logn); i++ {
		nprime = nprime / 2
		x, _, _ := HashBPSP(proof.Ls[i], proof.Rs[i])
		xinv := bn.ModInverse(x, ORDER)

		ngprime, _ := VectorECAdd(vectorScalarExpSP(gprime[:nprime], xinv, proof.Params.SP), vectorScalarExpSP(gprime[nprime:], x, proof.Params.SP), proof.Params.SP)
		nhprime, _ := VectorECAdd(vectorScalarExpSP(hprime[:nprime], x, proof.Params.SP), vectorScalarExpSP(hprime[nprime:], xinv, proof.Params.SP), proof.Params.SP)
		gprime, hprime = ngprime, nhprime

		x2 := bn.Mod(bn.Multiply(x, x), ORDER)
		x2inv := bn.ModInverse(x2, ORDER)
		Pprime = proof.Params.SP.Element().Add(Pprime, proof.Params.SP.Element().Scale(proof.Ls[i], x2))
		Pprime = proof.Params.SP.Element().Add(Pprime, proof.Params.SP.Element().Scale(proof.Rs[i], x2inv))
	}

	ab := bn.Mod(bn.Multiply(proof.A, proof.B), ORDER)

	rhs := proof.Params.SP.Element().Scale(gprime[0], proof.A)
	hb := proof.Params.SP.Element().Scale(hprime[0], proof.B)
	rhs = proof.Params.SP.Element().Add(rhs, hb)
	rhs = proof.Params.SP.Element().Add(rhs, proof.Params.SP.Element().Scale(proof.U, ab))

	nP := proof.Params.SP.Element().Negate(Pprime)
	nP = proof.Params.SP.Element().Add(nP, rhs)

	return nP.IsIdentity(), nil
}

// hashIPSP derives the Fiat-Shamir challenge binding P, c, and the
// generator vectors together before the recursive argument starts.
func hashIPSP(g, h []group.Element, P group.Element, c *big.Int, n int64) (*big.Int, error) {
	digest := sha256.New()
	digest.Write([]byte(P.String()))

	for i := int64(0); i < n; i++ {
		digest.Write([]byte(g[i].String()))
		digest.Write([]byte(h[i].String()))
	}

	digest.Write([]byte(c.String()))
	return byteconversion.FromByteArray(digest.Sum(nil))
}

// commitInnerProductSP computes g^a.h^b, the vector Pedersen commitment
// the inner-product argument proves a contraction of.
func commitInnerProductSP(g, h []group.Element, a, b []*big.Int, SP group.Group) group.Element {
	ga, _ := VectorExpSP(g, a, SP)
	hb, _ := VectorExpSP(h, b, SP)
	return SP.Element().Add(ga, hb)
}

// vectorScalarExpSP computes a[i]^b for each i.
func vectorScalarExpSP(a []group.Element, b *big.Int, SP group.Group) []group.Element {
	result := make([]group.Element, len(a))
	for i := range a {
		result[i] = SP.Element().Scale(a[i], b)
	}
	return result
}
