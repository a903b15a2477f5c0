package model

import "time"

// PenaltyID identifies a single penalty entry.
// IDs are assigned monotonically by the storage backend and double as
// the tie-breaker when two entries share a timestamp.
type PenaltyID int64

// DefaultPenaltyReason is recorded when no reason is supplied for an award
const DefaultPenaltyReason = "No reason provided"

// DefaultAdjustmentReason is recorded when no reason is supplied for a removal
const DefaultAdjustmentReason = "Adjustment"

// PenaltyEntry is one positive-point record attributed to a driver.
// Entries are append-only; the only mutation ever applied is the
// in-place reduction performed by the removal algorithm, and an entry
// reduced to zero is deleted rather than stored.
type PenaltyEntry struct {
	ID       PenaltyID
	DriverID DriverID
	Points   int // always > 0 in storage
	Reason   string
	IssuedAt time.Time
}
