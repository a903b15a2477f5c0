package model

import (
	"fmt"
	"time"
)

// BanID identifies a single ban record
type BanID int64

// BanKind is the closed set of ban categories a driver can hold.
// A driver may accumulate multiple bans of the same kind via manual
// commands; the automatic deriver only ever reasons about "has at
// least one ban of this kind".
type BanKind string

const (
	BanKindQuali BanKind = "quali"
	BanKindRace  BanKind = "race"
)

// ParseBanKind validates a textual ban kind at the boundary
func ParseBanKind(s string) (BanKind, error) {
	switch BanKind(s) {
	case BanKindQuali:
		return BanKindQuali, nil
	case BanKindRace:
		return BanKindRace, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBanKind, s)
}

// DefaultBanReason is recorded when no reason is supplied for a manual ban
const DefaultBanReason = "No reason provided"

// BanTimeLayout is the canonical layout new ban timestamps are written in.
// Records imported from the previous incarnation of the service may
// instead carry ISO-8601 timestamps, so ParseBanTime accepts both.
const BanTimeLayout = "2006-01-02 15:04:05"

// banTimeLayouts lists the accepted encodings, tried in order
var banTimeLayouts = []string{
	BanTimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseBanTime parses a stored ban timestamp.
// An error here means the record's age cannot be determined; callers
// must treat that as "leave the ban alone", never as "expired".
func ParseBanTime(s string) (time.Time, error) {
	for _, layout := range banTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable ban timestamp %q", s)
}

// Ban is an active participation ban for a driver.
// Automatic bans are created and removed by the deriver as a function
// of total penalty points; manual bans are created by steward command.
// The two are not distinguished in storage.
type Ban struct {
	ID       BanID
	DriverID DriverID
	Kind     BanKind
	Reason   string
	IssuedAt string // textual timestamp, see ParseBanTime
}
