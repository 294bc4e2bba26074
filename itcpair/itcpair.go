// Package itcpair binds an identity share to a causal timestamp, the unit
// a single interval-tree-clock participant carries around.
package itcpair

import (
	"fmt"

	"github.com/sandglass/treeclocks/eventtree"
	"github.com/sandglass/treeclocks/idtree"
)

// ItcPair is a participant's (identity, timestamp) pair.
type ItcPair struct {
	ID        idtree.IdTree
	Timestamp eventtree.EventTree
}

// New returns the seed pair: full ownership, no observed events.
func New() ItcPair {
	return ItcPair{ID: idtree.One, Timestamp: eventtree.Leaf(0)}
}

// Fork splits p's identity into two disjoint shares. p keeps one share in
// place; the other is returned as a new pair sharing p's timestamp.
func (p *ItcPair) Fork() ItcPair {
	a, b := idtree.Fork(p.ID)
	p.ID = a
	return ItcPair{ID: b, Timestamp: p.Timestamp}
}

// Event records a local happening, localized to p's own identity.
func (p *ItcPair) Event() error {
	t, err := eventtree.Event(p.Timestamp, p.ID)
	if err != nil {
		return err
	}
	p.Timestamp = t
	return nil
}

// Sync merges a remote timestamp into p's own, without touching identity.
func (p *ItcPair) Sync(peerTimestamp eventtree.EventTree) {
	p.Timestamp = eventtree.Join(p.Timestamp, peerTimestamp)
}

// Join merges a peer pair fully into p: timestamps are joined and
// identities are reunified.
func (p *ItcPair) Join(peer ItcPair) {
	p.Sync(peer.Timestamp)
	p.ID = idtree.Join(p.ID, peer.ID)
}

// String renders p as "id | timestamp".
func (p ItcPair) String() string {
	return fmt.Sprintf("%s | %s", p.ID, p.Timestamp)
}
