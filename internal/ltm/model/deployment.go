package model

// Deployment holds the parameters fixed when a lock-to-mint token is issued.
type Deployment struct {
	Symbol       string
	Max          uint64
	Decimals     uint8
	Multiplier   uint64
	LockDuration uint64
	StartHeight  uint32
}
