package idtree_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sandglass/treeclocks/idtree"
)

func TestForkJoinIdentity(t *testing.T) {
	// Scenario S1.
	c := qt.New(t)
	a, b := idtree.Fork(idtree.One)
	_, cc := idtree.Fork(b)
	got := idtree.Join(a, cc)
	c.Assert(got.String(), qt.Equals, "(1, (0, 1))")
}

func TestForkDisjoint(t *testing.T) {
	c := qt.New(t)
	cases := []idtree.IdTree{
		idtree.Zero,
		idtree.One,
		idtree.NewSplit(idtree.One, idtree.Zero),
		idtree.NewSplit(idtree.Zero, idtree.One),
	}
	for _, id := range cases {
		a, b := idtree.Fork(id)
		c.Assert(meet(a, b).IsZero(), qt.IsTrue, qt.Commentf("fork(%v) not disjoint: %v, %v", id, a, b))
	}
}

func TestForkJoinInverse(t *testing.T) {
	c := qt.New(t)
	cases := []idtree.IdTree{
		idtree.Zero,
		idtree.One,
		idtree.NewSplit(idtree.One, idtree.Zero),
		idtree.NewSplit(idtree.NewSplit(idtree.One, idtree.Zero), idtree.Zero),
	}
	for _, id := range cases {
		a, b := idtree.Fork(id)
		c.Assert(idtree.Join(a, b).Equal(id), qt.IsTrue, qt.Commentf("fork-join roundtrip failed for %v", id))
	}
}

func TestJoinIdempotentCommutative(t *testing.T) {
	c := qt.New(t)
	a := idtree.NewSplit(idtree.One, idtree.Zero)
	b := idtree.NewSplit(idtree.Zero, idtree.One)
	c.Assert(idtree.Join(a, a).Equal(a), qt.IsTrue)
	c.Assert(idtree.Join(a, b).Equal(idtree.Join(b, a)), qt.IsTrue)
}

func TestParseRoundTrip(t *testing.T) {
	c := qt.New(t)
	for _, s := range []string{"0", "1", "(1, 0)", "(0, (1, 0))"} {
		got, err := idtree.Parse(s)
		c.Assert(err, qt.IsNil)
		c.Assert(got.String(), qt.Equals, s)
	}
}

func TestParseErrors(t *testing.T) {
	c := qt.New(t)
	_, err := idtree.Parse("(1, 0")
	c.Assert(err, qt.ErrorIs, idtree.ErrNoSplit)
	_, err = idtree.Parse("2")
	c.Assert(err, qt.ErrorIs, idtree.ErrInvalidValue)
	_, err = idtree.Parse("x")
	c.Assert(err, qt.ErrorIs, idtree.ErrUnknownToken)
}

// meet computes the pointwise AND of two identities, used only by tests to
// check forked shares are disjoint.
func meet(a, b idtree.IdTree) idtree.IdTree {
	switch {
	case a.IsZero() || b.IsZero():
		return idtree.Zero
	case a.IsOne():
		return b
	case b.IsOne():
		return a
	default:
		al, ar, _ := a.IsSplit()
		bl, br, _ := b.IsSplit()
		return idtree.NewSplit(meet(al, bl), meet(ar, br))
	}
}
