// Package spork tracks the governance flags that gate optional consensus strictness.
package spork

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ID identifies a spork.
type ID int32

const (
	InstantSendEnabled           ID = 10001
	InstantSendBlockFiltering    ID = 10002
	InstantSendMaxValue          ID = 10004
	NewSigs                      ID = 10005
	MasternodePaymentEnforcement ID = 10007
	SuperblocksEnabled           ID = 10008
	MasternodePayUpdatedNodes    ID = 10009
	ReconsiderBlocks             ID = 10011
	RequireSentinelFlag          ID = 10013
	DeterministicMNsEnabled      ID = 10014
	InstantSendAutolocks         ID = 10015
	QuorumDKGEnabled             ID = 10016
	PosDisabled                  ID = 10025
	PowDisabled                  ID = 10026
)

// Off is the activation time used for disabled sporks (2099-01-01).
const Off int64 = 4070908800

var names = map[ID]string{
	InstantSendEnabled:           "SPORK_2_INSTANTSEND_ENABLED",
	InstantSendBlockFiltering:    "SPORK_3_INSTANTSEND_BLOCK_FILTERING",
	InstantSendMaxValue:          "SPORK_5_INSTANTSEND_MAX_VALUE",
	NewSigs:                      "SPORK_6_NEW_SIGS",
	MasternodePaymentEnforcement: "SPORK_8_MASTERNODE_PAYMENT_ENFORCEMENT",
	SuperblocksEnabled:           "SPORK_9_SUPERBLOCKS_ENABLED",
	MasternodePayUpdatedNodes:    "SPORK_10_MASTERNODE_PAY_UPDATED_NODES",
	ReconsiderBlocks:             "SPORK_12_RECONSIDER_BLOCKS",
	RequireSentinelFlag:          "SPORK_14_REQUIRE_SENTINEL_FLAG",
	DeterministicMNsEnabled:      "SPORK_15_DETERMINISTIC_MNS_ENABLED",
	InstantSendAutolocks:         "SPORK_16_INSTANTSEND_AUTOLOCKS",
	QuorumDKGEnabled:             "SPORK_17_QUORUM_DKG_ENABLED",
	PosDisabled:                  "SPORK_25_POS_DISABLED_FLAG",
	PowDisabled:                  "SPORK_26_POW_DISABLED_FLAG",
}

var defaults = map[ID]int64{
	InstantSendEnabled:           0,
	InstantSendBlockFiltering:    0,
	InstantSendMaxValue:          1000,
	NewSigs:                      Off,
	MasternodePaymentEnforcement: Off,
	SuperblocksEnabled:           Off,
	MasternodePayUpdatedNodes:    Off,
	ReconsiderBlocks:             0,
	RequireSentinelFlag:          Off,
	DeterministicMNsEnabled:      Off,
	InstantSendAutolocks:         Off,
	QuorumDKGEnabled:             Off,
	PosDisabled:                  Off,
	PowDisabled:                  Off,
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}

// IDByName resolves a spork name.
func IDByName(name string) (ID, error) {
	for id, n := range names {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown spork %q", name)
}

// Flags answers whether a spork is currently enforced.
type Flags interface {
	IsActive(id ID) bool
}

// Entry is a spork with its current value.
type Entry struct {
	ID     ID
	Name   string
	Value  int64
	Active bool
}

// Manager holds spork values. A spork is active once its value, an epoch time, is in the past.
type Manager struct {
	mu     sync.RWMutex
	values map[ID]int64
	now    func() time.Time
}

// NewManager returns a manager initialised with the network defaults.
func NewManager() *Manager {
	values := make(map[ID]int64, len(defaults))
	for id, v := range defaults {
		values[id] = v
	}
	return &Manager{values: values, now: time.Now}
}

// Set overrides the value of a known spork.
func (m *Manager) Set(id ID, value int64) error {
	if _, ok := names[id]; !ok {
		return fmt.Errorf("unknown spork id %d", id)
	}
	m.mu.Lock()
	m.values[id] = value
	m.mu.Unlock()
	return nil
}

// Value returns the current value of a spork, or -1 when it is unknown.
func (m *Manager) Value(id ID) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[id]
	if !ok {
		return -1
	}
	return v
}

// IsActive implements Flags.
func (m *Manager) IsActive(id ID) bool {
	v := m.Value(id)
	if v < 0 {
		return false
	}
	return v < m.now().Unix()
}

// All lists every known spork ordered by id.
func (m *Manager) All() []Entry {
	ids := make([]ID, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, Entry{
			ID:     id,
			Name:   id.String(),
			Value:  m.Value(id),
			Active: m.IsActive(id),
		})
	}
	return entries
}
