// Package txindex keeps a local bbolt index from transaction hash to block location.
package txindex

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/blocksign"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/pkg/safe"
)

var (
	bucketTxs     = []byte("txs")
	bucketSigners = []byte("signers")
	bucketMeta    = []byte("meta")

	keyBestLocator = []byte("best_locator")
)

// ErrNotFound is returned when a key is not in the index.
var ErrNotFound = errors.New("not found")

const locationSize = chainhash.HashSize + 4 + 4

// Location is where a transaction was included.
type Location struct {
	BlockHash chainhash.Hash
	Height    int32
	Position  uint32
}

func (l Location) encode() []byte {
	buf := make([]byte, locationSize)
	copy(buf, l.BlockHash[:])
	binary.BigEndian.PutUint32(buf[chainhash.HashSize:], uint32(l.Height))
	binary.BigEndian.PutUint32(buf[chainhash.HashSize+4:], l.Position)
	return buf
}

func decodeLocation(b []byte) (Location, error) {
	if len(b) != locationSize {
		return Location{}, fmt.Errorf("location of %d bytes", len(b))
	}
	var l Location
	copy(l.BlockHash[:], b)
	l.Height = int32(binary.BigEndian.Uint32(b[chainhash.HashSize:]))
	l.Position = binary.BigEndian.Uint32(b[chainhash.HashSize+4:])
	return l, nil
}

// Store is the transaction location index.
type Store struct {
	db      *bolt.DB
	logger  *zap.Logger
	metrics *metrics.TxIndex
}

// Open opens or creates the index file at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("txindex path required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketTxs, bucketSigners, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("create bucket %s: %w", string(b), err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:      db,
		logger:  logger.With(zap.String("component", "txindex")),
		metrics: metrics.NewTxIndex(),
	}, nil
}

// Close releases the index file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ConnectBlock records the location of every transaction in block and the block's signing identity.
func (s *Store) ConnectBlock(block *model.Block, height int32) (err error) {
	defer func(started time.Time) { s.metrics.Observe("connect_block", err, started) }(time.Now())

	blockHash := block.Hash()
	signer, signerErr := blocksign.ExtractSigningIdentity(block)

	return s.db.Update(func(tx *bolt.Tx) error {
		txs := tx.Bucket(bucketTxs)
		for i, t := range block.Transactions {
			hash := t.Hash()
			pos, err := safe.Uint32(i)
			if err != nil {
				return err
			}
			loc := Location{BlockHash: blockHash, Height: height, Position: pos}
			if err := txs.Put(hash[:], loc.encode()); err != nil {
				return fmt.Errorf("put tx %s: %w", hash, err)
			}
		}
		if signerErr != nil {
			return nil
		}
		if err := tx.Bucket(bucketSigners).Put(blockHash[:], signer[:]); err != nil {
			return fmt.Errorf("put signer %s: %w", blockHash, err)
		}
		return nil
	})
}

// DisconnectBlock removes the entries ConnectBlock wrote for block.
func (s *Store) DisconnectBlock(block *model.Block) (err error) {
	defer func(started time.Time) { s.metrics.Observe("disconnect_block", err, started) }(time.Now())

	blockHash := block.Hash()
	return s.db.Update(func(tx *bolt.Tx) error {
		txs := tx.Bucket(bucketTxs)
		for _, t := range block.Transactions {
			hash := t.Hash()
			if err := txs.Delete(hash[:]); err != nil {
				return fmt.Errorf("delete tx %s: %w", hash, err)
			}
		}
		return tx.Bucket(bucketSigners).Delete(blockHash[:])
	})
}

// FindTx returns the location of a transaction.
func (s *Store) FindTx(hash chainhash.Hash) (Location, error) {
	var loc Location
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketTxs).Get(hash[:])
		if v == nil {
			return fmt.Errorf("tx %s: %w", hash, ErrNotFound)
		}
		var err error
		loc, err = decodeLocation(v)
		return err
	})
	return loc, err
}

// SignerOf returns the signing identity recorded for a block.
func (s *Store) SignerOf(blockHash chainhash.Hash) (model.KeyID, error) {
	var id model.KeyID
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSigners).Get(blockHash[:])
		if v == nil {
			return fmt.Errorf("block %s: %w", blockHash, ErrNotFound)
		}
		var ok bool
		if id, ok = model.KeyIDFromBytes(v); !ok {
			return fmt.Errorf("signer of %d bytes", len(v))
		}
		return nil
	})
	return id, err
}

// SetBestLocator persists the locator of the last flushed chain state.
func (s *Store) SetBestLocator(locator []chainhash.Hash) (err error) {
	defer func(started time.Time) { s.metrics.Observe("set_best_locator", err, started) }(time.Now())

	buf := make([]byte, 0, len(locator)*chainhash.HashSize)
	for _, h := range locator {
		buf = append(buf, h[:]...)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyBestLocator, buf)
	})
}

// BestLocator returns the last persisted locator, or ErrNotFound before the first flush.
func (s *Store) BestLocator() ([]chainhash.Hash, error) {
	var locator []chainhash.Hash
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketMeta).Get(keyBestLocator)
		if v == nil {
			return fmt.Errorf("best locator: %w", ErrNotFound)
		}
		if len(v)%chainhash.HashSize != 0 {
			return fmt.Errorf("best locator of %d bytes", len(v))
		}
		locator = make([]chainhash.Hash, len(v)/chainhash.HashSize)
		for i := range locator {
			copy(locator[i][:], v[i*chainhash.HashSize:])
		}
		return nil
	})
	return locator, err
}
