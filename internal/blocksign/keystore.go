package blocksign

import (
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// ErrKeyNotFound is returned when the key store has no key for an identity.
var ErrKeyNotFound = errors.New("key not found")

// KeyStore looks up signing keys by identity. It is owned by the caller.
type KeyStore interface {
	Lookup(id model.KeyID) (*btcec.PrivateKey, error)
}

// MemoryKeyStore is a KeyStore backed by a map, indexed by the compressed and uncompressed key hashes.
type MemoryKeyStore struct {
	mu   sync.RWMutex
	keys map[model.KeyID]*btcec.PrivateKey
}

// NewMemoryKeyStore returns an empty store.
func NewMemoryKeyStore() *MemoryKeyStore {
	return &MemoryKeyStore{keys: make(map[model.KeyID]*btcec.PrivateKey)}
}

// AddKey registers key and returns its compressed identity.
func (s *MemoryKeyStore) AddKey(key *btcec.PrivateKey) model.KeyID {
	pub := key.PubKey()
	compressed := model.KeyIDFromPubKey(pub.SerializeCompressed())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[compressed] = key
	s.keys[model.KeyIDFromPubKey(pub.SerializeUncompressed())] = key
	return compressed
}

// ImportWIF decodes a wallet import format string and registers the key.
func (s *MemoryKeyStore) ImportWIF(encoded string) (model.KeyID, error) {
	wif, err := btcutil.DecodeWIF(encoded)
	if err != nil {
		return model.KeyID{}, fmt.Errorf("decode wif: %w", err)
	}
	return s.AddKey(wif.PrivKey), nil
}

// Lookup implements KeyStore.
func (s *MemoryKeyStore) Lookup(id model.KeyID) (*btcec.PrivateKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrKeyNotFound)
	}
	return key, nil
}
