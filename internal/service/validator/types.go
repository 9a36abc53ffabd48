package validator

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RetargetEngine interface {
		NextRequiredTarget(tip *chain.Node, track model.Track) uint32
	}
	TxChecker interface {
		CheckStructure(tx *model.Transaction, checkDuplicateInputs bool) error
		CheckContextual(tx *model.Transaction, prev *chain.Node) error
	}
	Notifier interface {
		BlockChecked(block *model.Block, err error)
		AcceptedBlockHeader(node *chain.Node)
		BlockConnected(block *model.Block, node *chain.Node)
		BlockDisconnected(block *model.Block, node *chain.Node)
		UpdatedBlockTip(tip, fork *chain.Node, initialDownload bool)
		ChainStateFlushed(locator []chainhash.Hash) error
	}
	VerdictWriter interface {
		WriteVerdict(ctx context.Context, verdict model.BlockVerdict) error
		WriteRejections(ctx context.Context, rejections []model.TxRejection) error
	}
	ValidatorMetrics interface {
		ObserveBlock(track model.Track, reason string, started time.Time)
		ObserveTxRejection(reason string, penalizable bool)
		ObserveReorg(depth int)
	}
)
