package schnorr

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
	"github.com/takakv/sigma-go/relation"
)

func discreteLogProtocol(t *testing.T, g group.Group) (*Protocol, *big.Int) {
	t.Helper()
	r := relation.New(g)
	x := r.AllocateScalar()
	base := r.AllocateElement()
	if err := r.SetElement(base, g.Generator()); err != nil {
		t.Fatal(err)
	}
	img := r.AllocateEq(relation.NewLinearCombination(relation.NewTerm(x, base)))

	secret := big.NewInt(12345)
	if err := r.ComputeImage([]*big.Int{secret}); err != nil {
		t.Fatal(err)
	}
	_ = img
	return New(r), secret
}

func TestHonestTranscriptVerifies(t *testing.T) {
	g := group.Ristretto255()
	p, secret := discreteLogProtocol(t, g)

	T, state, err := p.ProverCommit([]*big.Int{secret}, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	c := big.NewInt(999)
	z, err := p.ProverResponse(state, c)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Verifier(T, c, z); err != nil {
		t.Fatalf("honest transcript failed to verify: %v", err)
	}
}

func TestTamperedResponseFails(t *testing.T) {
	g := group.Ristretto255()
	p, secret := discreteLogProtocol(t, g)

	T, state, err := p.ProverCommit([]*big.Int{secret}, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	c := big.NewInt(999)
	z, err := p.ProverResponse(state, c)
	if err != nil {
		t.Fatal(err)
	}

	z[0] = new(big.Int).Add(z[0], big.NewInt(1))
	if err := p.Verifier(T, c, z); !errors.Is(err, errs.ErrVerificationFailure) {
		t.Fatalf("want ErrVerificationFailure, got %v", err)
	}
}

func TestTrivialStatementRefused(t *testing.T) {
	g := group.Ristretto255()
	r := relation.New(g)
	x := r.AllocateScalar()
	base := r.AllocateElement()
	_ = r.SetElement(base, g.Generator())
	img := r.AllocateElement()
	r.AppendEquation(img, relation.NewLinearCombination(relation.NewTerm(x, base)))
	_ = r.SetElement(img, g.Identity())

	p := New(r)
	_, _, err := p.ProverCommit([]*big.Int{big.NewInt(0)}, rand.Reader)
	if !errors.Is(err, errs.ErrInvalidInstanceWitnessPair) {
		t.Fatalf("want ErrInvalidInstanceWitnessPair, got %v", err)
	}
}

func TestSimulatedTranscriptVerifies(t *testing.T) {
	g := group.Ristretto255()
	p, _ := discreteLogProtocol(t, g)

	T, c, z, err := p.SimulateTranscript(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Verifier(T, c, z); err != nil {
		t.Fatalf("simulated transcript failed to verify: %v", err)
	}
}

func TestSimulatedResponsesAreIndependent(t *testing.T) {
	g := group.Ristretto255()
	p, _ := discreteLogProtocol(t, g)

	r := relation.New(g)
	x1, x2 := r.AllocateScalar(), r.AllocateScalar()
	base := r.AllocateElement()
	_ = r.SetElement(base, g.Generator())
	r.AllocateEq(relation.NewLinearCombination(relation.NewTerm(x1, base), relation.NewTerm(x2, base)))
	if err := r.ComputeImage([]*big.Int{big.NewInt(3), big.NewInt(5)}); err != nil {
		t.Fatal(err)
	}
	pp := New(r)

	_, z, err := pp.SimulateProof(big.NewInt(777), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if z[0].Cmp(z[1]) == 0 {
		t.Error("simulated response entries were equal; want independent sampling")
	}
	_ = p
}

func TestBatchableRoundTrip(t *testing.T) {
	g := group.Ristretto255()
	p, secret := discreteLogProtocol(t, g)

	T, state, err := p.ProverCommit([]*big.Int{secret}, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	c := big.NewInt(42)
	z, err := p.ProverResponse(state, c)
	if err != nil {
		t.Fatal(err)
	}

	data, err := p.SerializeBatchable(T, z)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != len(T)*g.ElementLen()+len(z)*g.ScalarLen() {
		t.Errorf("unexpected batchable proof length %d", len(data))
	}

	gotT, gotZ, err := p.DeserializeBatchable(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := range T {
		if !T[i].IsEqual(gotT[i]) {
			t.Errorf("commitment %d mismatch after round trip", i)
		}
	}
	for i := range z {
		if z[i].Cmp(gotZ[i]) != 0 {
			t.Errorf("response %d mismatch after round trip", i)
		}
	}
}

func TestDeserializeBatchableRejectsBadLength(t *testing.T) {
	g := group.Ristretto255()
	p, _ := discreteLogProtocol(t, g)

	_, _, err := p.DeserializeBatchable([]byte{1, 2, 3})
	if !errors.Is(err, errs.ErrVerificationFailure) {
		t.Fatalf("want ErrVerificationFailure, got %v", err)
	}
}

func TestCompactRoundTripRecoversCommitment(t *testing.T) {
	g := group.Ristretto255()
	p, secret := discreteLogProtocol(t, g)

	T, state, err := p.ProverCommit([]*big.Int{secret}, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	c := big.NewInt(13)
	z, err := p.ProverResponse(state, c)
	if err != nil {
		t.Fatal(err)
	}

	data, err := p.SerializeCompact(c, z)
	if err != nil {
		t.Fatal(err)
	}

	gotC, gotZ, err := p.DeserializeCompact(data)
	if err != nil {
		t.Fatal(err)
	}
	if gotC.Cmp(c) != 0 {
		t.Error("challenge mismatch after compact round trip")
	}

	recoveredT, err := p.GetCommitment(gotC, gotZ)
	if err != nil {
		t.Fatal(err)
	}
	for i := range T {
		if !T[i].IsEqual(recoveredT[i]) {
			t.Errorf("recovered commitment %d does not match original", i)
		}
	}
}

func TestDeserializeCompactRejectsBadLength(t *testing.T) {
	g := group.Ristretto255()
	p, _ := discreteLogProtocol(t, g)

	_, _, err := p.DeserializeCompact([]byte{1, 2, 3})
	if !errors.Is(err, errs.ErrProofSizeMismatch) {
		t.Fatalf("want ErrProofSizeMismatch, got %v", err)
	}
}
