// Package itcmap implements a causally-consistent replicated map keyed by
// an identity share, using an event tree as its causal timestamp and
// producing minimal delta patches for peer synchronization.
package itcmap

import (
	"fmt"
	"log"
	"strings"

	"github.com/kr/text"

	"github.com/sandglass/treeclocks/eventtree"
	"github.com/sandglass/treeclocks/heap"
	"github.com/sandglass/treeclocks/idtree"
	"github.com/sandglass/treeclocks/itcindex"
)

// Entry pairs an identity with a value; it is the unit a Patch carries and
// the unit Insert/Apply report as displaced or added.
type Entry[V any] struct {
	ID    idtree.IdTree
	Value V
}

// Patch is the delta produced by Diff and consumed by Apply. It is the
// only type intended to cross the peer boundary.
type Patch[V any] struct {
	Timestamp eventtree.EventTree
	Entries   []Entry[V]
}

type record[V any] struct {
	id    idtree.IdTree
	value V
}

// ItcMap is a replicated causal map. The zero value is not usable; build
// one with New.
type ItcMap[V any] struct {
	timestamp eventtree.EventTree
	data      []*record[V]
	index     itcindex.ItcIndex
	free      *heap.Heap[int]
	logger    *log.Logger
}

// Option configures an ItcMap at construction time.
type Option[V any] func(*ItcMap[V])

// WithLogger directs Insert/Apply activity to l. The default is silent.
func WithLogger[V any](l *log.Logger) Option[V] {
	return func(m *ItcMap[V]) { m.logger = l }
}

// WithCapacityHint preallocates the map's slot storage.
func WithCapacityHint[V any](n int) Option[V] {
	return func(m *ItcMap[V]) { m.data = make([]*record[V], 0, n) }
}

// New returns an empty map with timestamp Leaf(0).
func New[V any](opts ...Option[V]) *ItcMap[V] {
	m := &ItcMap[V]{
		timestamp: eventtree.Leaf(0),
		index:     itcindex.Unknown,
		free:      heap.New[int](nil, func(a, b int) bool { return a < b }, nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Timestamp returns the map's current causal clock.
func (m *ItcMap[V]) Timestamp() eventtree.EventTree { return m.timestamp }

// Get looks up the value stored under id. A region hit under a different,
// merely overlapping id is not a match.
func (m *ItcMap[V]) Get(id idtree.IdTree) (V, bool) {
	var zero V
	s, ok := m.index.Get(id)
	if !ok {
		return zero, false
	}
	r := m.data[s]
	if r == nil || !r.id.Equal(id) {
		return zero, false
	}
	return r.value, true
}

// Insert records v under id, advancing the map's timestamp, and returns
// any previously stored entries it displaced (an upsert under the same id
// displaces exactly its own previous value).
func (m *ItcMap[V]) Insert(id idtree.IdTree, v V) ([]Entry[V], error) {
	t, err := eventtree.Event(m.timestamp, id)
	if err != nil {
		return nil, err
	}
	m.timestamp = t
	displaced := m.insertWithoutEvent(id, v)
	m.logf("insert", len(displaced))
	return displaced, nil
}

func (m *ItcMap[V]) insertWithoutEvent(id idtree.IdTree, v V) []Entry[V] {
	if s, ok := m.index.Get(id); ok {
		if r := m.data[s]; r != nil && r.id.Equal(id) {
			prev := r.value
			r.value = v
			return []Entry[V]{{ID: id, Value: prev}}
		}
	}
	newSlot := m.allocSlot()
	m.data[newSlot] = &record[V]{id: id, value: v}
	idx, displacedSlots := itcindex.Insert(m.index, id, newSlot)
	m.index = idx

	var displaced []Entry[V]
	for d := range displacedSlots.All() {
		taken := m.data[d]
		m.data[d] = nil
		m.freeSlot(d)
		if taken == nil {
			continue
		}
		m.index = itcindex.Purge(m.index, taken.id, d)
		displaced = append(displaced, Entry[V]{ID: taken.id, Value: taken.value})
	}
	return displaced
}

func (m *ItcMap[V]) allocSlot() int {
	if m.free.Len() > 0 {
		return m.free.Pop()
	}
	m.data = append(m.data, nil)
	return len(m.data) - 1
}

func (m *ItcMap[V]) freeSlot(s int) {
	m.free.Push(s)
}

// Event advances the timestamp as if id had changed, without touching
// stored values. It reports whether id is currently tracked at all.
func (m *ItcMap[V]) Event(id idtree.IdTree) (bool, error) {
	if _, ok := m.index.Get(id); !ok {
		return false, nil
	}
	t, err := eventtree.Event(m.timestamp, id)
	if err != nil {
		return false, err
	}
	m.timestamp = t
	return true, nil
}

// Diff computes the delta the caller holds beyond peerTimestamp: the
// entries whose identity region intersects what peerTimestamp is missing.
func (m *ItcMap[V]) Diff(peerTimestamp eventtree.EventTree) Patch[V] {
	diffTree := eventtree.Diff(m.timestamp, peerTimestamp)
	var entries []Entry[V]
	for s := range m.index.Query(diffTree) {
		if r := m.data[s]; r != nil {
			entries = append(entries, Entry[V]{ID: r.id, Value: r.value})
		}
	}
	return Patch[V]{Timestamp: m.timestamp, Entries: entries}
}

// Apply merges a peer's patch, keeping only entries the receiver does not
// already have equally-or-more-recent information about, and advances the
// timestamp to the join of both sides.
func (m *ItcMap[V]) Apply(patch Patch[V]) (added, removed []Entry[V]) {
	incoming := eventtree.Diff(patch.Timestamp, m.timestamp)

	var keptIDs []idtree.IdTree
	for _, e := range patch.Entries {
		if !eventtree.Contains(incoming, e.ID) {
			continue
		}
		removed = append(removed, m.insertWithoutEvent(e.ID, e.Value)...)
		keptIDs = append(keptIDs, e.ID)
	}
	m.timestamp = eventtree.Join(m.timestamp, patch.Timestamp)

	for _, id := range keptIDs {
		if v, ok := m.Get(id); ok {
			added = append(added, Entry[V]{ID: id, Value: v})
		}
	}
	m.logf("apply", len(keptIDs))
	return added, removed
}

func (m *ItcMap[V]) logf(op string, n int) {
	if m.logger != nil {
		m.logger.Printf("itcmap: %s touched %d slot(s)", op, n)
	}
}

// Dump renders the map's timestamp and routing index for debugging, with
// the index tree indented beneath the timestamp line.
func (m *ItcMap[V]) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "timestamp: %s\n", m.timestamp.String())
	b.WriteString("index:\n")
	b.WriteString(text.Indent(m.index.Dump()+"\n", "  "))
	return b.String()
}
