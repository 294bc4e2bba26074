package intset_test

import (
	"slices"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sandglass/treeclocks/intset"
)

func TestAddHasRemove(t *testing.T) {
	c := qt.New(t)
	s := intset.New()
	s.Add(3)
	s.Add(130)
	c.Assert(s.Has(3), qt.IsTrue)
	c.Assert(s.Has(130), qt.IsTrue)
	c.Assert(s.Has(4), qt.IsFalse)
	s.Remove(3)
	c.Assert(s.Has(3), qt.IsFalse)
}

func TestUnionAll(t *testing.T) {
	c := qt.New(t)
	a := intset.New(1, 5, 64)
	b := intset.New(2, 64, 200)
	u := intset.New().Union(a, b)
	got := slices.Collect(u.All())
	c.Assert(got, qt.DeepEquals, []int{1, 2, 5, 64, 200})
}

func TestLen(t *testing.T) {
	c := qt.New(t)
	s := intset.New(1, 2, 3)
	c.Assert(s.Len(), qt.Equals, 3)
}
