package relation

import (
	"errors"
	"math/big"
	"testing"

	"github.com/takakv/sigma-go/errs"
	"github.com/takakv/sigma-go/group"
)

func discreteLogRelation(g group.Group) (*LinearRelation, ScalarVar, GroupVar, GroupVar) {
	r := New(g)
	x := r.AllocateScalar()
	base := r.AllocateElement()
	img := r.AllocateElement()
	r.AppendEquation(img, NewLinearCombination(NewTerm(x, base)))
	return r, x, base, img
}

func TestLinearRelationEvaluateDiscreteLog(t *testing.T) {
	g := group.Ristretto255()
	r, x, base, _ := discreteLogRelation(g)
	if err := r.SetElement(base, g.Generator()); err != nil {
		t.Fatal(err)
	}

	scalar := big.NewInt(7)
	got, err := r.Evaluate([]*big.Int{scalar})
	if err != nil {
		t.Fatal(err)
	}
	want := g.Element().BaseScale(scalar)
	if !got[0].IsEqual(want) {
		t.Error("evaluate mismatch for discrete log relation")
	}
	_ = x
}

func TestLinearRelationUnassignedElement(t *testing.T) {
	g := group.Ristretto255()
	r, _, _, _ := discreteLogRelation(g)

	_, err := r.Evaluate([]*big.Int{big.NewInt(1)})
	if !errors.Is(err, errs.ErrUnassignedGroupVar) {
		t.Fatalf("want ErrUnassignedGroupVar, got %v", err)
	}
}

func TestLinearRelationWitnessLengthMismatch(t *testing.T) {
	g := group.Ristretto255()
	r, _, base, _ := discreteLogRelation(g)
	_ = r.SetElement(base, g.Generator())

	_, err := r.Evaluate([]*big.Int{big.NewInt(1), big.NewInt(2)})
	if !errors.Is(err, errs.ErrInvalidInstanceWitnessPair) {
		t.Fatalf("want ErrInvalidInstanceWitnessPair, got %v", err)
	}
}

func TestGroupMapConflictingAssignment(t *testing.T) {
	g := group.Ristretto255()
	r := New(g)
	v := r.AllocateElement()

	if err := r.SetElement(v, g.Generator()); err != nil {
		t.Fatal(err)
	}
	// Re-assigning the same value is a no-op.
	if err := r.SetElement(v, g.Generator()); err != nil {
		t.Fatal(err)
	}
	// Re-assigning a different value is a conflict.
	other := g.Element().BaseScale(big.NewInt(2))
	if err := r.SetElement(v, other); !errors.Is(err, errs.ErrConflictingAssignment) {
		t.Fatalf("want ErrConflictingAssignment, got %v", err)
	}
}

func TestComputeImageAndLabel(t *testing.T) {
	g := group.Ristretto255()
	r := New(g)
	x := r.AllocateScalar()
	rr := r.AllocateScalar()
	gVar := r.AllocateElement()
	hVar := r.AllocateElement()
	_ = r.SetElement(gVar, g.Generator())
	_ = r.SetElement(hVar, g.Element().BaseScale(big.NewInt(9)))

	img := r.AllocateEq(NewLinearCombination(NewTerm(x, gVar), NewTerm(rr, hVar)))

	witness := []*big.Int{big.NewInt(3), big.NewInt(5)}
	if err := r.ComputeImage(witness); err != nil {
		t.Fatal(err)
	}

	vals, err := r.ImageElements()
	if err != nil {
		t.Fatal(err)
	}
	want := g.Element().Add(
		g.Element().BaseScale(big.NewInt(3)),
		g.Element().Scale(g.Element().BaseScale(big.NewInt(9)), big.NewInt(5)),
	)
	if !vals[0].IsEqual(want) {
		t.Error("compute_image produced wrong element")
	}
	_ = img

	label1 := r.Label()

	r2 := New(g)
	x2 := r2.AllocateScalar()
	rr2 := r2.AllocateScalar()
	hVar2 := r2.AllocateElement()
	gVar2 := r2.AllocateElement()
	// Swap term order: label must differ.
	r2.AllocateEq(NewLinearCombination(NewTerm(rr2, hVar2), NewTerm(x2, gVar2)))
	label2 := r2.Label()

	if string(label1) == string(label2) {
		t.Error("swapping term order did not change the label")
	}
}

func TestExprCompile(t *testing.T) {
	g := group.Ristretto255()
	r := New(g)
	x := r.AllocateScalar()
	base := r.AllocateElement()
	_ = r.SetElement(base, g.Generator())

	// 2*(x*base) should compile to a single-term combination over a
	// derived element equal to 2*base.
	lc, err := T(x, base).Weight(big.NewInt(2)).Compile(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(lc.Terms) != 1 {
		t.Fatalf("want 1 term, got %d", len(lc.Terms))
	}
	derivedVal, err := r.Elements.Get(lc.Terms[0].Elem)
	if err != nil {
		t.Fatal(err)
	}
	want := g.Element().BaseScale(big.NewInt(2))
	if !derivedVal.IsEqual(want) {
		t.Error("weighted term did not scale the base element")
	}
}

func TestExprZeroWeightCollapses(t *testing.T) {
	g := group.Ristretto255()
	r := New(g)
	x := r.AllocateScalar()
	y := r.AllocateScalar()
	base := r.AllocateElement()
	_ = r.SetElement(base, g.Generator())

	lc, err := T(x, base).Weight(big.NewInt(0)).Plus(T(y, base)).Compile(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(lc.Terms) != 1 || lc.Terms[0].Scalar != y {
		t.Errorf("zero-weight term did not collapse: %+v", lc.Terms)
	}
}
