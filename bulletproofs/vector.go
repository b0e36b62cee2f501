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
	"math/big"

	"github.com/takakv/sigma-go/group"

	"github.com/ing-bank/zkrp/util/bn"
	"github.com/ing-bank/zkrp/util/byteconversion"
)

/*
VectorCopy returns a vector composed by copies of a.
*/
func VectorCopy(a *big.Int, n int64) ([]*big.Int, error) {
	var (
		i      int64
		result []*big.Int
	)
	result = make([]*big.Int, n)
	i = 0
	for i < n {
		result[i] = a
		i = i + 1
	}
	return result, nil
}

/*
VectorConvertToBig converts an array of int64 to an array of big.Int.
*/
func VectorConvertToBig(a []int64, n int64) ([]*big.Int, error) {
	var (
		i      int64
		result []*big.Int
	)
	result = make([]*big.Int, n)
	i = 0
	for i < n {
		result[i] = new(big.Int).SetInt64(a[i])
		i = i + 1
	}
	return result, nil
}

/*
VectorAdd computes vector addition componentwisely.
*/
func VectorAdd(a, b []*big.Int, mod *big.Int) ([]*big.Int, error) {
	var (
		result  []*big.Int
		i, n, m int64
	)
	n = int64(len(a))
	m = int64(len(b))
	if n != m {
		return nil, errors.New("Size of first argument is different from size of second argument.")
	}
	i = 0
	result = make([]*big.Int, n)
	for i < n {
		result[i] = bn.Add(a[i], b[i])
		result[i] = bn.Mod(result[i], mod)
		i = i + 1
	}
	return result, nil
}

/*
VectorSub computes vector subtraction componentwisely.
*/
func VectorSub(a, b []*big.Int, mod *big.Int) ([]*big.Int, error) {
	var (
		result  []*big.Int
		i, n, m int64
	)
	n = int64(len(a))
	m = int64(len(b))
	if n != m {
		return nil, errors.New("Size of first argument is different from size of second argument.")
	}
	i = 0
	result = make([]*big.Int, n)
	for i < n {
		result[i] = bn.Sub(a[i], b[i])
		result[i] = bn.Mod(result[i], mod)
		i = i + 1
	}
	return result, nil
}

func VectorAddConst(a []*big.Int, c *big.Int, mod *big.Int) []*big.Int {
	result := make([]*big.Int, len(a))
	for i := range result {
		result[i] = new(big.Int).Add(a[i], c)
		result[i].Mod(result[i], mod)
	}
	return result
}

/*
VectorScalarMul computes vector scalar multiplication componentwisely.
*/
func VectorScalarMul(a []*big.Int, b *big.Int, mod *big.Int) ([]*big.Int, error) {
	var (
		result []*big.Int
		i, n   int64
	)
	n = int64(len(a))
	i = 0
	result = make([]*big.Int, n)
	for i < n {
		result[i] = bn.Multiply(a[i], b)
		result[i] = bn.Mod(result[i], mod)
		i = i + 1
	}
	return result, nil
}

/*
VectorMul computes vector multiplication componentwisely.
*/
func VectorMul(a, b []*big.Int, mod *big.Int) ([]*big.Int, error) {
	var (
		result  []*big.Int
		i, n, m int64
	)
	n = int64(len(a))
	m = int64(len(b))
	if n != m {
		return nil, errors.New("Size of first argument is different from size of second argument.")
	}
	i = 0
	result = make([]*big.Int, n)
	for i < n {
		result[i] = bn.Multiply(a[i], b[i])
		result[i] = bn.Mod(result[i], mod)
		i = i + 1
	}
	return result, nil
}

func VectorInnerProduct(a, b []*big.Int, mod *big.Int) *big.Int {
	result := big.NewInt(0)
	for i := range a {
		tmp := new(big.Int).Mul(a[i], b[i])
		result.Add(result, tmp.Mod(tmp, mod))
	}
	result.Mod(result, mod)
	return result
}

// IsPowerOfTwo reports whether n is a power of two (n > 0).
func IsPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// powerOf returns [1, x, x^2, ..., x^(n-1)] mod ORDER, the power vector
// the range-proof polynomial identities are built from.
func powerOf(x *big.Int, n int64) []*big.Int {
	result := make([]*big.Int, n)
	result[0] = big.NewInt(1)
	for i := int64(1); i < n; i++ {
		result[i] = bn.Mod(bn.Multiply(result[i-1], x), ORDER)
	}
	return result
}

// CommitG1SP computes a Pedersen commitment to value under blind, using
// SP's generator as the value base and H as the blinding base.
func CommitG1SP(value, blind *big.Int, H group.Element, SP group.Group) (group.Element, error) {
	return SP.Element().Add(SP.Element().BaseScale(value), SP.Element().Scale(H, blind)), nil
}

// ScalarProduct computes <a,b> mod ORDER, the contraction the
// inner-product argument halves on each round.
func ScalarProduct(a, b []*big.Int) (*big.Int, error) {
	if len(a) != len(b) {
		return nil, errors.New("size of first argument is different from size of second argument")
	}
	return VectorInnerProduct(a, b, ORDER), nil
}

// VectorExpSP computes the vector Pedersen commitment sum(g[i]^a[i])
// over SP, folding a generator vector and a scalar vector into a single
// element.
func VectorExpSP(g []group.Element, a []*big.Int, SP group.Group) (group.Element, error) {
	n := len(g)
	if n != len(a) {
		return nil, errors.New("size of first argument is different from size of second argument")
	}
	result := SP.Identity()
	for i := 0; i < n; i++ {
		result = SP.Element().Add(result, SP.Element().Scale(g[i], a[i]))
	}
	return result, nil
}

// HashBPSP derives the paired (y, z)-style Fiat-Shamir challenges used
// across the Bulletproofs range-proof rounds from two round commitments.
// Most call sites only need the first challenge and discard the second.
func HashBPSP(a, b group.Element) (*big.Int, *big.Int, error) {
	digest := sha256.New()
	digest.Write([]byte(a.String()))
	digest.Write([]byte(b.String()))
	digest.Write([]byte{0})
	x, err := byteconversion.FromByteArray(digest.Sum(nil))
	if err != nil {
		return nil, nil, err
	}

	digest = sha256.New()
	digest.Write([]byte(a.String()))
	digest.Write([]byte(b.String()))
	digest.Write([]byte{1})
	y, err := byteconversion.FromByteArray(digest.Sum(nil))
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

/*
VectorECAdd computes vector EC addition componentwisely.
*/
func VectorECAdd(a, b []group.Element, SP group.Group) ([]group.Element, error) {
	var (
		result  []group.Element
		i, n, m int64
	)
	n = int64(len(a))
	m = int64(len(b))
	if n != m {
		return nil, errors.New("Size of first argument is different from size of second argument.")
	}
	result = make([]group.Element, n)
	i = 0
	for i < n {
		// result[i] = new(p256.P256).Multiply(a[i], b[i])
		result[i] = SP.Element().Add(a[i], b[i])
		i = i + 1
	}
	return result, nil
}
