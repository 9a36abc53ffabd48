// Package signals fans validation events out to registered subscribers.
package signals

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// Handlers is the set of callbacks a subscriber registers. Nil entries are skipped.
type Handlers struct {
	// UpdatedBlockTip fires when the active tip changes. fork is the last common ancestor.
	UpdatedBlockTip func(tip, fork *chain.Node, initialDownload bool)

	TransactionAdded  func(tx *model.Transaction)
	BlockConnected    func(block *model.Block, node *chain.Node)
	BlockDisconnected func(block *model.Block, node *chain.Node)

	// ChainStateFlushed always runs on the background queue.
	ChainStateFlushed func(locator []chainhash.Hash)

	// BlockChecked receives the verdict of a full block check. err is nil for a valid block.
	BlockChecked func(block *model.Block, err error)

	NewPoWValidBlock    func(node *chain.Node, block *model.Block)
	AcceptedBlockHeader func(node *chain.Node)
	NotifyHeaderTip     func(node *chain.Node, initialDownload bool)

	TransactionLock       func(tx *model.Transaction)
	ChainLock             func(node *chain.Node)
	GovernanceVote        func(vote chainhash.Hash)
	GovernanceObject      func(object chainhash.Hash)
	DoubleSpendAttempt    func(current, conflicting *model.Transaction)
	MasternodeListChanged func(undo bool)
}

// Channel names used for metrics and logging.
const (
	ChannelUpdatedBlockTip       = "updated_block_tip"
	ChannelTransactionAdded      = "transaction_added"
	ChannelBlockConnected        = "block_connected"
	ChannelBlockDisconnected     = "block_disconnected"
	ChannelChainStateFlushed     = "chain_state_flushed"
	ChannelBlockChecked          = "block_checked"
	ChannelNewPoWValidBlock      = "new_pow_valid_block"
	ChannelAcceptedBlockHeader   = "accepted_block_header"
	ChannelNotifyHeaderTip       = "notify_header_tip"
	ChannelTransactionLock       = "transaction_lock"
	ChannelChainLock             = "chain_lock"
	ChannelGovernanceVote        = "governance_vote"
	ChannelGovernanceObject      = "governance_object"
	ChannelDoubleSpendAttempt    = "double_spend_attempt"
	ChannelMasternodeListChanged = "masternode_list_changed"
)
