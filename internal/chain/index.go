package chain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

var (
	// ErrUnknownParent is returned when a header does not connect to the index.
	ErrUnknownParent = errors.New("unknown parent block")
	// ErrDuplicate is returned when a header is already indexed.
	ErrDuplicate = errors.New("block already indexed")
)

// Index stores block nodes by hash and tracks the tip with the greatest height.
// Readers may walk nodes concurrently; AddNode is serialised by the index lock.
type Index struct {
	mu    sync.RWMutex
	nodes map[chainhash.Hash]*Node
	tip   *Node
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{nodes: make(map[chainhash.Hash]*Node)}
}

// AddNode connects header to its parent. The first header added becomes the root at height zero.
func (i *Index) AddNode(header *wire.BlockHeader, track model.Track) (*Node, error) {
	return i.add(header, track, 0)
}

// AddRoot starts an empty index at height, used when resuming from a stored checkpoint.
func (i *Index) AddRoot(header *wire.BlockHeader, track model.Track, height int32) (*Node, error) {
	if i.Len() > 0 {
		return nil, errors.New("index already has a root")
	}
	return i.add(header, track, height)
}

func (i *Index) add(header *wire.BlockHeader, track model.Track, rootHeight int32) (*Node, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	hash := header.BlockHash()
	if _, ok := i.nodes[hash]; ok {
		return nil, fmt.Errorf("%s: %w", hash, ErrDuplicate)
	}

	var parent *Node
	if len(i.nodes) > 0 {
		var ok bool
		parent, ok = i.nodes[header.PrevBlock]
		if !ok {
			return nil, fmt.Errorf("%s parent %s: %w", hash, header.PrevBlock, ErrUnknownParent)
		}
	}

	node := newNode(header, track, parent, rootHeight)
	i.nodes[hash] = node
	if i.tip == nil || node.height > i.tip.height {
		i.tip = node
	}
	return node, nil
}

// LookupNode returns the node for hash.
func (i *Index) LookupNode(hash chainhash.Hash) (*Node, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	node, ok := i.nodes[hash]
	return node, ok
}

// Tip returns the highest node, or nil for an empty index.
func (i *Index) Tip() *Node {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tip
}

// Len returns the number of indexed nodes.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.nodes)
}

// Locator returns tip-first hashes with exponentially growing gaps, ending at the root.
func Locator(tip *Node) []chainhash.Hash {
	if tip == nil {
		return nil
	}
	var (
		hashes []chainhash.Hash
		step   int32 = 1
	)
	for node := tip; ; {
		hashes = append(hashes, node.hash)
		if node.parent == nil {
			return hashes
		}
		if len(hashes) >= 10 {
			step *= 2
		}
		node = node.Ancestor(step)
	}
}
