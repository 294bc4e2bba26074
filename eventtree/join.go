package eventtree

// Join computes the publish-merge of two event histories: the pointwise
// maximum of a and b.
func Join(a, b EventTree) EventTree {
	if a.k == leafKind && b.k == leafKind {
		return Leaf(max64(a.v, b.v))
	}
	if a.v > b.v {
		a, b = b, a
	}
	av, al, ar := asNode(a)
	bv, bl, br := asNode(b)
	d := bv - av
	return NewNode(av, Join(al, lift(bl, d)), Join(ar, lift(br, d)))
}
