// Package model defines domain models shared by the consensus validation core.
package model

import "fmt"

// Network names a chain the validator follows.
type Network string

var (
	Mainnet Network = "main"
	Testnet Network = "test"
	Devnet  Network = "devnet"
	Regtest Network = "regtest"
)

// Track discriminates the work and stake sub-chains.
type Track uint8

const (
	// TrackWork marks proof-of-work blocks.
	TrackWork Track = iota
	// TrackStake marks proof-of-stake blocks.
	TrackStake
)

func (t Track) String() string {
	if t == TrackStake {
		return "stake"
	}
	return "work"
}

// ParseTrack maps a stored track label back to a Track.
func ParseTrack(s string) (Track, error) {
	switch s {
	case "work":
		return TrackWork, nil
	case "stake":
		return TrackStake, nil
	default:
		return 0, fmt.Errorf("unknown track %q", s)
	}
}
