// Package node reads blocks from a full node over JSON-RPC.
package node

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ObservedClient wraps the btcd rpc client with metrics instrumentation.
type ObservedClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented RPC client.
func NewObservedClient(client RPCClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the height of the node's best block.
func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetRawBlock returns the serialized block. The typed btcd call cannot be used because the block carries
// special transaction payloads and a trailing signature.
func (r *ObservedClient) GetRawBlock(hash *chainhash.Hash) (raw []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_block", err, started)
	}()

	hashParam, err := json.Marshal(hash.String())
	if err != nil {
		return nil, err
	}
	res, err := r.client.RawRequest("getblock", []json.RawMessage{hashParam, json.RawMessage("0")})
	if err != nil {
		return nil, err
	}

	var encoded string
	if err = json.Unmarshal(res, &encoded); err != nil {
		return nil, fmt.Errorf("decode getblock result: %w", err)
	}
	raw, err = hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode block hex: %w", err)
	}
	return raw, nil
}
