package response

import (
	"time"

	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/services/auth"
)

// Driver represents a driver in API responses
type Driver struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// DriverFromModel converts a model.Driver to a response Driver
func DriverFromModel(d *model.Driver) Driver {
	return Driver{
		ID:          string(d.ID),
		DisplayName: d.DisplayName,
	}
}

// DriverList is the response for listing drivers
type DriverList struct {
	Drivers []Driver `json:"drivers"`
}

// DriverListFromModel converts a slice of model drivers
func DriverListFromModel(drivers []*model.Driver) DriverList {
	out := DriverList{Drivers: make([]Driver, 0, len(drivers))}
	for _, d := range drivers {
		out.Drivers = append(out.Drivers, DriverFromModel(d))
	}
	return out
}

// PenaltyEntry represents one penalty record in API responses
type PenaltyEntry struct {
	ID       int64     `json:"id"`
	Points   int       `json:"points"`
	Reason   string    `json:"reason"`
	IssuedAt time.Time `json:"issued_at"`
}

// PenaltyEntryFromModel converts a model.PenaltyEntry
func PenaltyEntryFromModel(e *model.PenaltyEntry) PenaltyEntry {
	return PenaltyEntry{
		ID:       int64(e.ID),
		Points:   e.Points,
		Reason:   e.Reason,
		IssuedAt: e.IssuedAt,
	}
}

// PenaltyHistory is the response for a driver's penalty history
type PenaltyHistory struct {
	DriverID    string         `json:"driver_id"`
	TotalPoints int            `json:"total_points"`
	Entries     []PenaltyEntry `json:"entries"`
}

// PenaltyHistoryFromModel converts a slice of model entries
func PenaltyHistoryFromModel(driverID model.DriverID, entries []*model.PenaltyEntry) PenaltyHistory {
	out := PenaltyHistory{
		DriverID: string(driverID),
		Entries:  make([]PenaltyEntry, 0, len(entries)),
	}
	for _, e := range entries {
		out.TotalPoints += e.Points
		out.Entries = append(out.Entries, PenaltyEntryFromModel(e))
	}
	return out
}

// PointTotal is the response for a driver's point total
type PointTotal struct {
	DriverID    string `json:"driver_id"`
	TotalPoints int    `json:"total_points"`
}

// AwardResult is the response for a penalty award
type AwardResult struct {
	DriverID    string `json:"driver_id"`
	Points      int    `json:"points"`
	TotalPoints int    `json:"total_points"`
}

// RemovalResult is the response for a penalty removal
type RemovalResult struct {
	DriverID    string `json:"driver_id"`
	Removed     int    `json:"removed"`
	TotalPoints int    `json:"total_points"`
}

// Ban represents a ban in API responses
type Ban struct {
	ID       int64  `json:"id"`
	DriverID string `json:"driver_id"`
	Kind     string `json:"kind"`
	Reason   string `json:"reason"`
	IssuedAt string `json:"issued_at"`
}

// BanFromModel converts a model.Ban
func BanFromModel(b *model.Ban) Ban {
	return Ban{
		ID:       int64(b.ID),
		DriverID: string(b.DriverID),
		Kind:     string(b.Kind),
		Reason:   b.Reason,
		IssuedAt: b.IssuedAt,
	}
}

// BanList is the response for listing active bans
type BanList struct {
	Bans []Ban `json:"bans"`
}

// BanListFromModel converts a slice of model bans
func BanListFromModel(bans []*model.Ban) BanList {
	out := BanList{Bans: make([]Ban, 0, len(bans))}
	for _, b := range bans {
		out.Bans = append(out.Bans, BanFromModel(b))
	}
	return out
}

// BanRemovalResult is the response for a ban removal
type BanRemovalResult struct {
	DriverID string `json:"driver_id"`
	Kind     string `json:"kind"`
	Removed  int    `json:"removed"`
}

// SweepResult is the response for a sweep of expired bans
type SweepResult struct {
	Removed int `json:"removed"`
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Username     string    `json:"username"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Username:     s.Username,
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}
