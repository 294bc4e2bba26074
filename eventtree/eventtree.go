// Package eventtree implements the event algebra of an interval tree clock:
// a finite binary tree of counters describing how many events have been
// observed at each point of the unit interval.
package eventtree

type kind uint8

const (
	leafKind kind = iota
	nodeKind
)

// EventTree is an immutable causal-history tree. The zero value is Leaf(0).
type EventTree struct {
	k    kind
	v    uint64
	l, r *EventTree
}

// Leaf returns a tree whose every point has seen exactly v events.
func Leaf(v uint64) EventTree {
	return EventTree{k: leafKind, v: v}
}

// NewNode builds Node(v, l, r), normalizing per the two tree-normalization
// rules: a node whose children are equal leaves collapses into a single
// leaf, and a node is sunk so its children's minimum is always 0.
func NewNode(v uint64, l, r EventTree) EventTree {
	if l.k == leafKind && r.k == leafKind && l.v == r.v {
		return Leaf(v + l.v)
	}
	m := min64(l.Min(), r.Min())
	if m > 0 {
		l = sink(l, m)
		r = sink(r, m)
	}
	return EventTree{k: nodeKind, v: v + m, l: &l, r: &r}
}

// IsLeaf reports whether t is a Leaf, returning its value.
func (t EventTree) IsLeaf() (v uint64, ok bool) {
	if t.k != leafKind {
		return 0, false
	}
	return t.v, true
}

// IsNode reports whether t is a Node, returning its root and children.
func (t EventTree) IsNode() (v uint64, l, r EventTree, ok bool) {
	if t.k != nodeKind {
		return 0, EventTree{}, EventTree{}, false
	}
	return t.v, *t.l, *t.r, true
}

// Root returns the root counter: v for Leaf(v) and Node(v, _, _).
func (t EventTree) Root() uint64 { return t.v }

// Min returns the minimum pointwise value.
func (t EventTree) Min() uint64 { return t.v }

// Max returns the maximum pointwise value.
func (t EventTree) Max() uint64 {
	if t.k == leafKind {
		return t.v
	}
	return t.v + max64(t.l.Max(), t.r.Max())
}

// Depth returns the number of levels: 1 for a Leaf, 1+max(child depth) for
// a Node.
func (t EventTree) Depth() int {
	if t.k == leafKind {
		return 1
	}
	return 1 + maxInt(t.l.Depth(), t.r.Depth())
}

// Equal reports structural equality. EventTree values are always kept
// normalized, so structural equality coincides with semantic equality.
func (t EventTree) Equal(other EventTree) bool {
	if t.k != other.k {
		return false
	}
	if t.k == leafKind {
		return t.v == other.v
	}
	return t.v == other.v && t.l.Equal(*other.l) && t.r.Equal(*other.r)
}

// lift adds m to the root of t.
func lift(t EventTree, m uint64) EventTree {
	if t.k == leafKind {
		return Leaf(t.v + m)
	}
	l, r := *t.l, *t.r
	return EventTree{k: nodeKind, v: t.v + m, l: &l, r: &r}
}

// sink subtracts m from the root of t. The caller guarantees m <= t.Root().
func sink(t EventTree, m uint64) EventTree {
	if t.k == leafKind {
		return Leaf(t.v - m)
	}
	l, r := *t.l, *t.r
	return EventTree{k: nodeKind, v: t.v - m, l: &l, r: &r}
}

// asNode expands a Leaf(v) into the equivalent Node(v, Leaf(0), Leaf(0)); a
// Node is returned unchanged.
func asNode(t EventTree) (v uint64, l, r EventTree) {
	if t.k == leafKind {
		return t.v, Leaf(0), Leaf(0)
	}
	return t.v, *t.l, *t.r
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
