package txindex

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/signals"
)

// SubscriberID is the id the index registers under.
const SubscriberID = "txindex"

// Registrar is the part of the dispatcher the index subscribes through.
type Registrar interface {
	Register(id string, handlers signals.Handlers) error
}

// Subscribe keeps the index in step with connected and disconnected blocks and persists the locator
// on every chain state flush.
func (s *Store) Subscribe(r Registrar) error {
	return r.Register(SubscriberID, signals.Handlers{
		BlockConnected: func(block *model.Block, node *chain.Node) {
			if err := s.ConnectBlock(block, node.Height()); err != nil {
				s.logger.Error("index connected block", zap.Stringer("hash", node.Hash()), zap.Error(err))
			}
		},
		BlockDisconnected: func(block *model.Block, node *chain.Node) {
			if err := s.DisconnectBlock(block); err != nil {
				s.logger.Error("unindex disconnected block", zap.Stringer("hash", node.Hash()), zap.Error(err))
			}
		},
		ChainStateFlushed: func(locator []chainhash.Hash) {
			if err := s.SetBestLocator(locator); err != nil {
				s.logger.Error("persist best locator", zap.Error(err))
			}
		},
	})
}
