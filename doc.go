// Package treeclocks re-exports the tree-clocks kernel's core types at a
// single import path, mirroring the flat public surface of the original
// implementation this module was derived from.
package treeclocks

import (
	"github.com/sandglass/treeclocks/eventtree"
	"github.com/sandglass/treeclocks/idtree"
	"github.com/sandglass/treeclocks/itcmap"
	"github.com/sandglass/treeclocks/itcpair"
)

type (
	// IdTree is an identity share over the algebra's [0,1) interval.
	IdTree = idtree.IdTree
	// EventTree is a causal-history counter tree.
	EventTree = eventtree.EventTree
	// Pair binds an identity share to a causal timestamp.
	Pair = itcpair.ItcPair
)

// NewPair returns a seed pair: id = One, timestamp = Leaf(0).
func NewPair() Pair { return itcpair.New() }

// NewMap returns an empty replicated map keyed by identity share. Map, Entry
// and Patch stay under itcmap rather than being aliased here: a generic type
// alias that introduces its own type parameter needs a newer language
// version than this module targets.
func NewMap[V any](opts ...itcmap.Option[V]) *itcmap.ItcMap[V] { return itcmap.New[V](opts...) }
