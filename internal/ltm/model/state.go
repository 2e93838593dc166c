// Package model holds the value types shared by the covenant engine, the codecs and the indexer.
package model

import "github.com/btcsuite/btcd/wire"

// Phase is the lifecycle position of a token lineage.
type Phase string

const (
	PhaseGenesis  Phase = "genesis"
	PhaseActive   Phase = "active"
	PhaseDepleted Phase = "depleted"
)

// FungibleTokenState is the generic BSV-20 v2 token capability carried by every covenant output.
type FungibleTokenState struct {
	// ID is empty until the genesis output is spent for the first time.
	ID       string
	Symbol   string
	Max      uint64
	Decimals uint8
	Supply   uint64
}

// TokenState is an immutable snapshot of one covenant output in a lock-to-mint lineage.
// Transitions produce a new value; a TokenState is never updated in place by the engine.
type TokenState struct {
	FungibleTokenState
	LockDuration uint64
	Multiplier   uint64
	LastHeight   uint32
}

// Phase reports where the state sits in the GENESIS -> ACTIVE -> DEPLETED machine.
func (s TokenState) Phase() Phase {
	switch {
	case s.Supply == 0:
		return PhaseDepleted
	case s.ID == "":
		return PhaseGenesis
	default:
		return PhaseActive
	}
}

// IsGenesis reports whether the token id has not been bound yet.
func (s TokenState) IsGenesis() bool {
	return s.ID == ""
}

// CovenantUTXO is a covenant output as found on chain: where it lives and what it carries.
type CovenantUTXO struct {
	Outpoint wire.OutPoint
	Value    uint64
	State    TokenState
}
