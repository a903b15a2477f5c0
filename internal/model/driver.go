package model

import "time"

// DriverID uniquely identifies a driver across the system.
// It is an opaque stable identifier, typically the id assigned by the
// chat platform the league runs on.
type DriverID string

// Driver represents a league participant tracked by the steward service
type Driver struct {
	ID          DriverID
	DisplayName string // informational only, never part of an invariant
	CreatedAt   time.Time
}
