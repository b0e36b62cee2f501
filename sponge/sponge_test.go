package sponge

import (
	"bytes"
	"testing"

	"github.com/takakv/sigma-go/group"
)

func TestDuplexDeterministic(t *testing.T) {
	a := New()
	a.Absorb([]byte("hello"))
	out1 := a.Squeeze(32)

	b := New()
	b.Absorb([]byte("hello"))
	out2 := b.Squeeze(32)

	if !bytes.Equal(out1, out2) {
		t.Error("same absorbed sequence produced different squeeze output")
	}
}

func TestDuplexSqueezeDoesNotConsume(t *testing.T) {
	d := New()
	d.Absorb([]byte("transcript"))

	first := d.Squeeze(16)
	second := d.Squeeze(16)
	if !bytes.Equal(first, second) {
		t.Error("squeezing twice without absorbing gave different output")
	}

	d.Absorb([]byte("more"))
	third := d.Squeeze(16)
	if bytes.Equal(first, third) {
		t.Error("absorbing more data did not change the squeeze output")
	}
}

func TestDuplexCloneIndependence(t *testing.T) {
	d := New()
	d.Absorb([]byte("base"))

	clone := d.Clone()
	clone.Absorb([]byte("extra"))

	out1 := d.Squeeze(16)
	out2 := clone.Squeeze(16)
	if bytes.Equal(out1, out2) {
		t.Error("mutating a clone affected the original sponge")
	}
}

func TestCodecChallengeDeterministic(t *testing.T) {
	g := group.Ristretto255()
	iv := bytes.Repeat([]byte{0x42}, 32)

	c1 := NewCodec(g, iv).ProverMessage([]byte("commitment"))
	c2 := NewCodec(g, iv).ProverMessage([]byte("commitment"))

	if c1.VerifierChallenge().Cmp(c2.VerifierChallenge()) != 0 {
		t.Error("same IV and absorbed messages produced different challenges")
	}
}

func TestCodecChallengeBindsIV(t *testing.T) {
	g := group.Ristretto255()

	c1 := NewCodec(g, bytes.Repeat([]byte{0x01}, 32)).ProverMessage([]byte("commitment"))
	c2 := NewCodec(g, bytes.Repeat([]byte{0x02}, 32)).ProverMessage([]byte("commitment"))

	if c1.VerifierChallenge().Cmp(c2.VerifierChallenge()) == 0 {
		t.Error("different IVs produced the same challenge")
	}
}

func TestCodecChallengeInRange(t *testing.T) {
	g := group.Ristretto255()
	c := NewCodec(g, bytes.Repeat([]byte{0x09}, 32)).ProverMessage([]byte("m"))
	chal := c.VerifierChallenge()
	if chal.Sign() < 0 || chal.Cmp(g.N()) >= 0 {
		t.Error("challenge is not in [0, N)")
	}
}
