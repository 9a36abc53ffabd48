// Package validation defines the rejection type shared by the consensus checks.
package validation

import (
	"errors"
	"fmt"
)

// Kind classifies a rejection.
type Kind int

const (
	// KindConsensus is an absolute rule violation. The sender is penalized.
	KindConsensus Kind = iota
	// KindContextual depends on height or a governance flag.
	KindContextual
)

func (k Kind) String() string {
	switch k {
	case KindConsensus:
		return "consensus"
	case KindContextual:
		return "contextual"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Reason codes. Peers and RPC clients match on these strings verbatim.
const (
	ReasonVinEmpty           = "bad-txns-vin-empty"
	ReasonVoutEmpty          = "bad-txns-vout-empty"
	ReasonOversize           = "bad-txns-oversize"
	ReasonPayloadOversize    = "bad-txns-payload-oversize"
	ReasonVoutNegative       = "bad-txns-vout-negative"
	ReasonVoutTooLarge       = "bad-txns-vout-toolarge"
	ReasonTxOutTotalTooLarge = "bad-txns-txouttotal-toolarge"
	ReasonInputsDuplicate    = "bad-txns-inputs-duplicate"
	ReasonCoinbaseLength     = "bad-cb-length"
	ReasonPrevOutNull        = "bad-txns-prevout-null"
	ReasonType               = "bad-txns-type"
	ReasonCoinbaseType       = "bad-txns-cb-type"
	ReasonCoinStakeType      = "bad-txns-cs-type"

	// Block level reasons reported by the validator service.
	ReasonBadDiffBits   = "bad-diffbits"
	ReasonHighHash      = "high-hash"
	ReasonBadSignature  = "bad-blk-sig"
	ReasonUnknownParent = "prev-blk-not-found"
)

// RuleError is a rejection carrying a stable reason code.
type RuleError struct {
	Reason      string
	Kind        Kind
	Description string
}

func (e *RuleError) Error() string {
	if e.Description == "" {
		return e.Reason
	}
	return e.Reason + ": " + e.Description
}

// Consensus returns a consensus rejection.
func Consensus(reason, format string, args ...any) *RuleError {
	return &RuleError{Reason: reason, Kind: KindConsensus, Description: fmt.Sprintf(format, args...)}
}

// Contextual returns a contextual rejection.
func Contextual(reason, format string, args ...any) *RuleError {
	return &RuleError{Reason: reason, Kind: KindContextual, Description: fmt.Sprintf(format, args...)}
}

// IsPenalizable reports whether err wraps a consensus rejection.
func IsPenalizable(err error) bool {
	var ruleErr *RuleError
	return errors.As(err, &ruleErr) && ruleErr.Kind == KindConsensus
}

// ReasonOf returns the reason code wrapped in err, or "" when err is not a rejection.
func ReasonOf(err error) string {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Reason
	}
	return ""
}
