package eventtree

import "github.com/sandglass/treeclocks/idtree"

// Diff computes the saturating pointwise difference max(a-b, 0), isolating
// what b is missing relative to a.
func Diff(a, b EventTree) EventTree {
	if av, ok := a.IsLeaf(); ok {
		if bv, ok := b.IsLeaf(); ok {
			return Leaf(satSub(av, bv))
		}
	}
	av, al, ar := asNode(a)
	bv, bl, br := asNode(b)
	return NewNode(0, Diff(lift(al, av), lift(bl, bv)), Diff(lift(ar, av), lift(br, bv)))
}

func satSub(a, b uint64) uint64 {
	if a <= b {
		return 0
	}
	return a - b
}

// Contains reports whether t has any strictly positive value anywhere
// within id's region.
func Contains(t EventTree, id idtree.IdTree) bool {
	if id.IsZero() {
		return false
	}
	if v, ok := t.IsLeaf(); ok {
		return v > 0
	}
	v, l, r := t.IsNodeMust()
	if v > 0 {
		return true
	}
	if id.IsOne() {
		return Contains(l, idtree.One) || Contains(r, idtree.One)
	}
	il, ir, _ := id.IsSplit()
	return Contains(l, il) || Contains(r, ir)
}
