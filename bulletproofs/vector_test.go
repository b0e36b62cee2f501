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
	"github.com/takakv/sigma-go/group"
	"math/big"
	"testing"

	"github.com/ing-bank/zkrp/util/intconversion"
)

/*
Test method VectorCopy, which simply copies the first input argument to size n vector.
*/
func TestVectorCopy(t *testing.T) {
	var (
		result []*big.Int
	)
	result, _ = VectorCopy(big.NewInt(1), 3)
	ok := result[0].Cmp(big.NewInt(1)) == 0
	ok = ok && (result[1].Cmp(big.NewInt(1)) == 0)
	ok = ok && (result[2].Cmp(big.NewInt(1)) == 0)
	if ok != true {
		t.Errorf("Assert failure: expected true, actual: %t", ok)
	}
}

/*
Test method VectorConvertToBig.
*/
func TestVectorConvertToBig(t *testing.T) {
	var (
		result []*big.Int
		a      []int64
	)
	a = make([]int64, 3)
	a[0] = 3
	a[1] = 4
	a[2] = 5
	result, _ = VectorConvertToBig(a, 3)
	ok := result[0].Cmp(big.NewInt(3)) == 0
	ok = ok && (result[1].Cmp(big.NewInt(4)) == 0)
	ok = ok && (result[2].Cmp(big.NewInt(5)) == 0)
	if ok != true {
		t.Errorf("Assert failure: expected true, actual: %t", ok)
	}
}

/*
Tests Vector addition.
*/
func TestVectorAdd(t *testing.T) {
	var (
		a, b []*big.Int
	)
	var SecP256k1Group = group.SecP256k1()

	a = make([]*big.Int, 3)
	b = make([]*big.Int, 3)
	a[0] = new(big.Int).SetInt64(7)
	a[1] = new(big.Int).SetInt64(8)
	a[2] = new(big.Int).SetInt64(9)
	b[0] = new(big.Int).SetInt64(3)
	b[1] = new(big.Int).SetInt64(30)
	b[2] = new(big.Int).SetInt64(40)
	result, _ := VectorAdd(a, b, SecP256k1Group.N())
	ok := result[0].Cmp(new(big.Int).SetInt64(10)) == 0
	ok = ok && (result[1].Cmp(intconversion.BigFromBase10("38")) == 0)
	ok = ok && (result[2].Cmp(intconversion.BigFromBase10("49")) == 0)
	if ok != true {
		t.Errorf("Assert failure: expected true, actual: %t", ok)
	}
}

/*
Tests Vector subtraction.
*/
func TestVectorSub(t *testing.T) {
	var (
		a, b []*big.Int
	)
	var SecP256k1Group = group.SecP256k1()

	a = make([]*big.Int, 3)
	b = make([]*big.Int, 3)
	a[0] = new(big.Int).SetInt64(7)
	a[1] = new(big.Int).SetInt64(8)
	a[2] = new(big.Int).SetInt64(9)
	b[0] = new(big.Int).SetInt64(3)
	b[1] = new(big.Int).SetInt64(30)
	b[2] = new(big.Int).SetInt64(40)
	result, _ := VectorSub(a, b, SecP256k1Group.N())
	ok := result[0].Cmp(new(big.Int).SetInt64(4)) == 0
	ok = ok && (result[1].Cmp(intconversion.BigFromBase10("115792089237316195423570985008687907852837564279074904382605163141518161494315")) == 0)
	ok = ok && (result[2].Cmp(intconversion.BigFromBase10("115792089237316195423570985008687907852837564279074904382605163141518161494306")) == 0)
	if ok != true {
		t.Errorf("Assert failure: expected true, actual: %t", ok)
	}
}

/*
Tests Vector componentwise multiplication.
*/
func TestVectorMul(t *testing.T) {
	var (
		a, b []*big.Int
	)
	var SecP256k1Group = group.SecP256k1()

	a = make([]*big.Int, 3)
	b = make([]*big.Int, 3)
	a[0] = new(big.Int).SetInt64(7)
	a[1] = new(big.Int).SetInt64(8)
	a[2] = new(big.Int).SetInt64(9)
	b[0] = new(big.Int).SetInt64(3)
	b[1] = new(big.Int).SetInt64(30)
	b[2] = new(big.Int).SetInt64(40)
	result, _ := VectorMul(a, b, SecP256k1Group.N())
	ok := result[0].Cmp(new(big.Int).SetInt64(21)) == 0
	ok = ok && (result[1].Cmp(new(big.Int).SetInt64(240)) == 0)
	ok = ok && (result[2].Cmp(new(big.Int).SetInt64(360)) == 0)

	if ok != true {
		t.Errorf("Assert failure: expected true, actual: %t", ok)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int64{1, 2, 4, 1024} {
		if !IsPowerOfTwo(n) {
			t.Errorf("expected %d to be reported as a power of two", n)
		}
	}
	for _, n := range []int64{0, -2, 3, 5, 1023} {
		if IsPowerOfTwo(n) {
			t.Errorf("expected %d not to be reported as a power of two", n)
		}
	}
}

func TestPowerOf(t *testing.T) {
	result := powerOf(big.NewInt(3), 4)
	want := []int64{1, 3, 9, 27}
	for i, w := range want {
		if result[i].Cmp(big.NewInt(w)) != 0 {
			t.Errorf("powerOf(3, 4)[%d] = %s, want %d", i, result[i].String(), w)
		}
	}
}

func TestScalarProductAgainstVectorInnerProduct(t *testing.T) {
	a := []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(5)}
	b := []*big.Int{big.NewInt(7), big.NewInt(11), big.NewInt(13)}

	got, err := ScalarProduct(a, b)
	if err != nil {
		t.Fatalf("ScalarProduct returned an error: %v", err)
	}
	want := VectorInnerProduct(a, b, ORDER)
	if got.Cmp(want) != 0 {
		t.Errorf("ScalarProduct = %s, want %s", got.String(), want.String())
	}
}

func TestVectorExpSPMatchesManualFold(t *testing.T) {
	SP := group.SecP256k1()
	g := []group.Element{SP.Random(), SP.Random(), SP.Random()}
	a := []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(5)}

	got, err := VectorExpSP(g, a, SP)
	if err != nil {
		t.Fatalf("VectorExpSP returned an error: %v", err)
	}

	want := SP.Identity()
	for i := range g {
		want = SP.Element().Add(want, SP.Element().Scale(g[i], a[i]))
	}
	if !got.IsEqual(want) {
		t.Errorf("VectorExpSP result did not match the manually folded commitment")
	}
}

func TestHashBPSPIsDeterministicAndBindsBothInputs(t *testing.T) {
	SP := group.SecP256k1()
	a, b := SP.Random(), SP.Random()

	x1, y1, err := HashBPSP(a, b)
	if err != nil {
		t.Fatalf("HashBPSP returned an error: %v", err)
	}
	x2, y2, _ := HashBPSP(a, b)
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Errorf("HashBPSP is not deterministic for identical inputs")
	}
	if x1.Cmp(y1) == 0 {
		t.Errorf("HashBPSP returned identical x and y challenges")
	}

	x3, _, _ := HashBPSP(b, a)
	if x1.Cmp(x3) == 0 {
		t.Errorf("HashBPSP did not bind the order of its inputs")
	}
}
