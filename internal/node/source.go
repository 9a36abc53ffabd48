package node

import (
	"context"
	"fmt"
	"math"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/pkg/safe"
)

// BlockSource fetches decoded blocks by height.
type BlockSource struct {
	rpc BlockRPC
}

// NewBlockSource creates a BlockSource.
func NewBlockSource(rpc BlockRPC) *BlockSource {
	return &BlockSource{rpc: rpc}
}

// LatestHeight returns the node's best height.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves and decodes the block at height.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	raw, err := s.rpc.GetRawBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	block, err := model.DecodeBlock(raw)
	if err != nil {
		return nil, fmt.Errorf("decode block %s: %w", hash, err)
	}
	if got := block.Hash(); got != *hash {
		return nil, fmt.Errorf("block at height %d hashes to %s, node reported %s", height, got, hash)
	}
	return block, nil
}
