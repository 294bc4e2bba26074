// Package itcindex routes identity regions to storage slots for a
// replicated map, and answers sparse queries against a partial event tree.
package itcindex

import (
	"iter"

	"github.com/sandglass/treeclocks/eventtree"
	"github.com/sandglass/treeclocks/idtree"
	"github.com/sandglass/treeclocks/intset"
)

type kind uint8

const (
	unknownKind kind = iota
	slotKind
	splitKind
)

// ItcIndex is an immutable routing tree shape-matching the identity space.
// The zero value is Unknown.
type ItcIndex struct {
	k    kind
	slot int
	l, r *ItcIndex
}

// Unknown marks a sub-region with no routed slot.
var Unknown = ItcIndex{k: unknownKind}

// NewSlot routes an entire region to storage slot s.
func NewSlot(s int) ItcIndex {
	return ItcIndex{k: slotKind, slot: s}
}

// NewSplit builds a bisected routing, normalizing Split(Unknown,Unknown) to
// Unknown and Split(Slot(s),Slot(s)) to Slot(s).
func NewSplit(l, r ItcIndex) ItcIndex {
	if l.k == unknownKind && r.k == unknownKind {
		return Unknown
	}
	if l.k == slotKind && r.k == slotKind && l.slot == r.slot {
		return NewSlot(l.slot)
	}
	return ItcIndex{k: splitKind, l: &l, r: &r}
}

// IsSlot reports whether idx routes its whole region to a single slot.
func (idx ItcIndex) IsSlot() (s int, ok bool) {
	if idx.k != slotKind {
		return 0, false
	}
	return idx.slot, true
}

// IsSplit reports whether idx bisects its region, returning the two halves.
func (idx ItcIndex) IsSplit() (l, r ItcIndex, ok bool) {
	if idx.k != splitKind {
		return ItcIndex{}, ItcIndex{}, false
	}
	return *idx.l, *idx.r, true
}

// Get returns the slot routed to id, if any.
func (idx ItcIndex) Get(id idtree.IdTree) (int, bool) {
	if idx.k == unknownKind || id.IsZero() {
		return 0, false
	}
	if s, ok := idx.IsSlot(); ok && id.IsOne() {
		return s, true
	}
	l, r, ok := idx.IsSplit()
	if !ok {
		return 0, false
	}
	il, ir, ok := id.IsSplit()
	if !ok {
		return 0, false
	}
	if s, ok := l.Get(il); ok {
		return s, true
	}
	return r.Get(ir)
}

// Insert routes id to slot, returning the updated tree and the set of slot
// indices displaced by the change.
func Insert(idx ItcIndex, id idtree.IdTree, slot int) (ItcIndex, *intset.Set) {
	displaced := intset.New()
	result := insert(idx, id, slot, displaced)
	return result, displaced
}

func insert(idx ItcIndex, id idtree.IdTree, slot int, displaced *intset.Set) ItcIndex {
	if id.IsZero() {
		return idx
	}
	switch idx.k {
	case unknownKind:
		if id.IsOne() {
			return NewSlot(slot)
		}
		il, ir, _ := id.IsSplit()
		return NewSplit(
			insert(Unknown, il, slot, displaced),
			insert(Unknown, ir, slot, displaced),
		)
	case slotKind:
		old := idx.slot
		if id.IsOne() {
			displaced.Add(old)
			return NewSlot(slot)
		}
		il, ir, _ := id.IsSplit()
		result := NewSplit(
			insert(Unknown, il, slot, displaced),
			insert(Unknown, ir, slot, displaced),
		)
		displaced.Add(old)
		return result
	default: // splitKind
		l0, r0, _ := idx.IsSplit()
		if id.IsOne() {
			insert(l0, idtree.One, slot, displaced)
			insert(r0, idtree.One, slot, displaced)
			return NewSlot(slot)
		}
		il, ir, _ := id.IsSplit()
		return NewSplit(
			insert(l0, il, slot, displaced),
			insert(r0, ir, slot, displaced),
		)
	}
}

// Purge prunes slot from exactly the region covered by id, leaving other
// mappings untouched.
func Purge(idx ItcIndex, id idtree.IdTree, slot int) ItcIndex {
	if id.IsZero() {
		return idx
	}
	switch idx.k {
	case unknownKind:
		return idx
	case slotKind:
		if idx.slot != slot {
			return idx
		}
		if id.IsOne() {
			return Unknown
		}
		il, ir, _ := id.IsSplit()
		return NewSplit(Purge(idx, il, slot), Purge(idx, ir, slot))
	default: // splitKind
		l0, r0, _ := idx.IsSplit()
		if id.IsOne() {
			return NewSplit(Purge(l0, idtree.One, slot), Purge(r0, idtree.One, slot))
		}
		il, ir, _ := id.IsSplit()
		return NewSplit(Purge(l0, il, slot), Purge(r0, ir, slot))
	}
}

// Query returns, as a lazy non-restartable iterator, every slot whose
// identity region contains any point where et is non-zero.
func (idx ItcIndex) Query(et eventtree.EventTree) iter.Seq[int] {
	return func(yield func(int) bool) {
		query(idx, et, yield)
	}
}

var one = eventtree.Leaf(1)

func query(idx ItcIndex, et eventtree.EventTree, yield func(int) bool) bool {
	if idx.k == unknownKind {
		return true
	}
	if v, ok := et.IsLeaf(); ok {
		if v == 0 {
			return true
		}
		if s, ok := idx.IsSlot(); ok {
			return yield(s)
		}
		l, r, _ := idx.IsSplit()
		if !query(l, one, yield) {
			return false
		}
		return query(r, one, yield)
	}
	v, el, er, _ := et.IsNode()
	if s, ok := idx.IsSlot(); ok {
		if v > 0 {
			return yield(s)
		}
		if !query(idx, el, yield) {
			return false
		}
		return query(idx, er, yield)
	}
	l, r, _ := idx.IsSplit()
	if v > 0 {
		if !query(l, one, yield) {
			return false
		}
		return query(r, one, yield)
	}
	if !query(l, el, yield) {
		return false
	}
	return query(r, er, yield)
}
