package eventtree

import (
	"github.com/sandglass/treeclocks/idtree"
	"golang.org/x/xerrors"
)

// ErrStructuralMismatch is returned by Event when asked to inflate a region
// the caller's identity does not own at all.
var ErrStructuralMismatch = xerrors.New("eventtree: structural mismatch between event tree and identity")

// fill inflates t using structure already present, without adding new
// nodes, restricted to the region owned by id.
func fill(t EventTree, id idtree.IdTree) EventTree {
	if id.IsZero() {
		return t
	}
	if id.IsOne() {
		return Leaf(t.Max())
	}
	il, ir, _ := id.IsSplit()
	v, el, er := asNode(t)
	fl := fill(el, il)
	fr := fill(er, ir)
	if il.IsOne() {
		fl = Leaf(max64(fl.Max(), fr.Min()))
	}
	if ir.IsOne() {
		fr = Leaf(max64(fr.Max(), fl.Min()))
	}
	return NewNode(v, fl, fr)
}

// grow inflates t by adding structure, restricted to the region owned by
// id, returning the new tree and a cost that prefers shallow local growth.
func grow(t EventTree, id idtree.IdTree, n int) (EventTree, int) {
	if v, ok := t.IsLeaf(); ok {
		if id.IsOne() {
			return Leaf(v + 1), 0
		}
		// Expand the leaf to Node(v, Leaf(0), Leaf(0)) without
		// normalizing: NewNode would immediately collapse this shape
		// back to Leaf(v) since its two children are equal, undoing
		// the very expansion grow needs to recurse into.
		zero := Leaf(0)
		expanded := EventTree{k: nodeKind, v: v, l: &zero, r: &zero}
		node, cost := grow(expanded, id, n)
		return node, cost + n
	}
	v, el, er := t.IsNodeMust()
	il, ir, _ := id.IsSplit()
	switch {
	case il.IsZero():
		gr, cost := grow(er, ir, n)
		return NewNode(v, el, gr), cost + 1
	case ir.IsZero():
		gl, cost := grow(el, il, n)
		return NewNode(v, gl, er), cost + 1
	default:
		gl, costL := grow(el, il, n)
		gr, costR := grow(er, ir, n)
		if costL <= costR {
			return NewNode(v, gl, er), costL + 1
		}
		return NewNode(v, el, gr), costR + 1
	}
}

// IsNodeMust is like IsNode but panics on a Leaf; used only internally
// where the caller has already checked IsLeaf.
func (t EventTree) IsNodeMust() (uint64, EventTree, EventTree) {
	v, l, r, ok := t.IsNode()
	if !ok {
		panic("eventtree: IsNodeMust called on a Leaf")
	}
	return v, l, r
}

// Event produces a history strictly greater than self, localized to id's
// region. A Zero id owns no region to inflate; that is a structural
// mismatch, signaled distinctly from parse errors.
func Event(self EventTree, id idtree.IdTree) (EventTree, error) {
	if id.IsZero() {
		return EventTree{}, xerrors.Errorf("eventtree: event(%v, %v): %w", self, id, ErrStructuralMismatch)
	}
	filled := fill(self, id)
	if !filled.Equal(self) {
		return filled, nil
	}
	grown, _ := grow(self, id, self.Depth()+1)
	return grown, nil
}
