package follower

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}
	BlockValidator interface {
		Tip() *chain.Node
		HasBlock(hash chainhash.Hash) bool
		IndexBlock(block *model.Block, height int32) (*chain.Node, error)
		ProcessBlock(ctx context.Context, block *model.Block) (model.BlockVerdict, error)
	}
	Checkpoint interface {
		MaxValidatedHeight(ctx context.Context, network model.Network) (uint64, bool, error)
	}
	FollowerMetrics interface {
		ObserveFetchTip(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
	}
)
