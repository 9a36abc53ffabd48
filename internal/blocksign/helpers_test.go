package blocksign

import (
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var testTime = time.Unix(1_700_000_000, 0)

func ecdsaSign(key *btcec.PrivateKey, hash chainhash.Hash) []byte {
	return ecdsa.SignCompact(key, hash[:], true)
}
