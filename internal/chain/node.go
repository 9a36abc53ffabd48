// Package chain keeps the in-memory block index the consensus checks walk.
package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// Node is one block's position in the block tree. Its fields never change once it is connected.
type Node struct {
	parent    *Node
	hash      chainhash.Hash
	height    int32
	timestamp int64
	bits      uint32
	track     model.Track
}

// NewNode builds a node for header on top of parent. A nil parent makes a root at height zero.
func NewNode(header *wire.BlockHeader, track model.Track, parent *Node) *Node {
	return newNode(header, track, parent, 0)
}

func newNode(header *wire.BlockHeader, track model.Track, parent *Node, rootHeight int32) *Node {
	node := &Node{
		parent:    parent,
		hash:      header.BlockHash(),
		timestamp: header.Timestamp.Unix(),
		bits:      header.Bits,
		track:     track,
		height:    rootHeight,
	}
	if parent != nil {
		node.height = parent.height + 1
	}
	return node
}

// Parent returns the previous block, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Hash() chainhash.Hash { return n.hash }

func (n *Node) Height() int32 { return n.height }

// Timestamp is the block time in unix seconds.
func (n *Node) Timestamp() int64 { return n.timestamp }

// Bits is the packed target the block declared.
func (n *Node) Bits() uint32 { return n.bits }

func (n *Node) Track() model.Track { return n.track }

// Ancestor returns the node depth blocks back, or the root when the chain is shorter.
func (n *Node) Ancestor(depth int32) *Node {
	node := n
	for ; depth > 0 && node.parent != nil; depth-- {
		node = node.parent
	}
	return node
}

// AncestorAt returns the ancestor at height, or nil when height is outside [0, n.Height()].
func (n *Node) AncestorAt(height int32) *Node {
	if height < 0 || height > n.height {
		return nil
	}
	node := n
	for node != nil && node.height != height {
		node = node.parent
	}
	return node
}

// LastOfTrack walks back to the newest node of track, stopping at the root when none exists.
func (n *Node) LastOfTrack(track model.Track) *Node {
	node := n
	for node != nil && node.parent != nil && node.track != track {
		node = node.parent
	}
	return node
}

// PrevOfTrack returns the closest strict ancestor of track, or nil when there is none.
func (n *Node) PrevOfTrack(track model.Track) *Node {
	for node := n.parent; node != nil; node = node.parent {
		if node.track == track {
			return node
		}
	}
	return nil
}

// FindFork returns the newest node both a and b descend from, or nil when they share no ancestor.
func FindFork(a, b *Node) *Node {
	if a == nil || b == nil {
		return nil
	}
	for a.height > b.height && a.parent != nil {
		a = a.parent
	}
	for b.height > a.height && b.parent != nil {
		b = b.parent
	}
	for a != nil && b != nil && a != b {
		a, b = a.parent, b.parent
	}
	if a != b {
		return nil
	}
	return a
}
