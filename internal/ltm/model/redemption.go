package model

import "time"

// RedemptionStatus tells whether an observed spend satisfied the covenant rules.
type RedemptionStatus string

const (
	RedemptionValid    RedemptionStatus = "valid"
	RedemptionRejected RedemptionStatus = "rejected"
)

// Redemption is one observed spend of a covenant output, as stored by the indexer.
type Redemption struct {
	Coin            Coin
	Network         Network
	LineageID       string
	// Step numbers the spends of a lineage from 1.
	Step            uint64
	TokenID         string
	BlockHeight     uint64
	BlockTime       time.Time
	TxID            string
	InputIndex      uint32
	SpentTxID       string
	SpentVout       uint32
	LockTime        uint32
	Sequence        uint32
	LockUntil       uint64
	LockAmount      uint64
	LockRecipient   string
	RewardRecipient string
	Reward          uint64
	SupplyBefore    uint64
	SupplyAfter     uint64
	Status          RedemptionStatus
	Reason          string
}

// Depleted reports whether this redemption terminated the lineage.
func (r Redemption) Depleted() bool {
	return r.Status == RedemptionValid && r.SupplyAfter == 0
}
