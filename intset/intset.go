// Package intset provides a small bitset of non-negative ints, used to
// accumulate the set of storage slots displaced by an ItcIndex.Insert.
package intset

import "iter"

const wbits = 64

// Set is a mutable set of non-negative ints backed by a growable bitmap.
type Set struct {
	bits []uint64
}

// New returns a new empty set, optionally seeded with members.
func New(members ...int) *Set {
	s := &Set{}
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add inserts x into the set, growing the backing bitmap if needed.
func (s *Set) Add(x int) {
	word := x / wbits
	for word >= len(s.bits) {
		s.bits = append(s.bits, 0)
	}
	s.bits[word] |= 1 << uint(x%wbits)
}

// Remove deletes x from the set; a no-op if x is absent.
func (s *Set) Remove(x int) {
	word := x / wbits
	if word >= len(s.bits) {
		return
	}
	s.bits[word] &^= 1 << uint(x%wbits)
}

// Has reports whether x is a member of the set.
func (s *Set) Has(x int) bool {
	word := x / wbits
	if word >= len(s.bits) {
		return false
	}
	return s.bits[word]&(1<<uint(x%wbits)) != 0
}

// Union sets the receiver to the union of a and b.
func (s *Set) Union(a, b *Set) *Set {
	n := len(a.bits)
	if len(b.bits) > n {
		n = len(b.bits)
	}
	s.bits = make([]uint64, n)
	for i := 0; i < n; i++ {
		var aw, bw uint64
		if i < len(a.bits) {
			aw = a.bits[i]
		}
		if i < len(b.bits) {
			bw = b.bits[i]
		}
		s.bits[i] = aw | bw
	}
	return s
}

// Len returns the number of members.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.bits {
		for w != 0 {
			w &= w - 1
			n++
		}
	}
	return n
}

// All returns an iterator over the set's members in ascending order.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, w := range s.bits {
			for b := 0; b < wbits; b++ {
				if w&(1<<uint(b)) != 0 {
					if !yield(i*wbits + b) {
						return
					}
				}
			}
		}
	}
}
