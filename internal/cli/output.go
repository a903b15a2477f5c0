package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Driver:
		o.printDriver(v)
	case DriverList:
		o.printDriverList(v)
	case PenaltyHistory:
		o.printPenaltyHistory(v)
	case PointTotal:
		o.printPointTotal(v)
	case AwardResult:
		o.printAwardResult(v)
	case RemovalResult:
		o.printRemovalResult(v)
	case Ban:
		o.printBan(v)
	case BanList:
		o.printBanList(v)
	case BanRemovalResult:
		o.printBanRemovalResult(v)
	case SweepResult:
		o.printSweepResult(v)
	case AuthResult:
		o.printAuthResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Driver response type (matches API)
type Driver struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// DriverList response type
type DriverList struct {
	Drivers []Driver `json:"drivers"`
}

// PenaltyEntry response type
type PenaltyEntry struct {
	ID       int64  `json:"id"`
	Points   int    `json:"points"`
	Reason   string `json:"reason"`
	IssuedAt string `json:"issued_at"`
}

// PenaltyHistory response type
type PenaltyHistory struct {
	DriverID    string         `json:"driver_id"`
	TotalPoints int            `json:"total_points"`
	Entries     []PenaltyEntry `json:"entries"`
}

// PointTotal response type
type PointTotal struct {
	DriverID    string `json:"driver_id"`
	TotalPoints int    `json:"total_points"`
}

// AwardResult response type
type AwardResult struct {
	DriverID    string `json:"driver_id"`
	Points      int    `json:"points"`
	TotalPoints int    `json:"total_points"`
}

// RemovalResult response type
type RemovalResult struct {
	DriverID    string `json:"driver_id"`
	Removed     int    `json:"removed"`
	TotalPoints int    `json:"total_points"`
}

// Ban response type
type Ban struct {
	ID       int64  `json:"id"`
	DriverID string `json:"driver_id"`
	Kind     string `json:"kind"`
	Reason   string `json:"reason"`
	IssuedAt string `json:"issued_at"`
}

// BanList response type
type BanList struct {
	Bans []Ban `json:"bans"`
}

// BanRemovalResult response type
type BanRemovalResult struct {
	DriverID string `json:"driver_id"`
	Kind     string `json:"kind"`
	Removed  int    `json:"removed"`
}

// SweepResult response type
type SweepResult struct {
	Removed int `json:"removed"`
}

// AuthResult response type
type AuthResult struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
	ExpiresAt    string `json:"expires_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printDriver(d Driver) {
	fmt.Printf("Driver: %s (%s)\n", d.DisplayName, d.ID)
}

func (o *Output) printDriverList(l DriverList) {
	fmt.Printf("Drivers (%d):\n", len(l.Drivers))
	for _, d := range l.Drivers {
		fmt.Printf("  - %s (%s)\n", d.DisplayName, d.ID)
	}
}

func (o *Output) printPenaltyHistory(h PenaltyHistory) {
	fmt.Printf("Driver: %s\n", h.DriverID)
	fmt.Printf("Total Points: %d\n", h.TotalPoints)
	fmt.Printf("Entries (%d):\n", len(h.Entries))
	for _, e := range h.Entries {
		reason := e.Reason
		if reason == "" {
			reason = "-"
		}
		fmt.Printf("  - %d pts at %s: %s\n", e.Points, e.IssuedAt, reason)
	}
}

func (o *Output) printPointTotal(p PointTotal) {
	fmt.Printf("Driver: %s\n", p.DriverID)
	fmt.Printf("Total Points: %d\n", p.TotalPoints)
}

func (o *Output) printAwardResult(a AwardResult) {
	fmt.Printf("Awarded %d points to %s\n", a.Points, a.DriverID)
	fmt.Printf("Total Points: %d\n", a.TotalPoints)
}

func (o *Output) printRemovalResult(r RemovalResult) {
	fmt.Printf("Removed %d points from %s\n", r.Removed, r.DriverID)
	fmt.Printf("Total Points: %d\n", r.TotalPoints)
}

func (o *Output) printBan(b Ban) {
	fmt.Printf("Ban: %s ban for %s\n", b.Kind, b.DriverID)
	fmt.Printf("Reason: %s\n", b.Reason)
	fmt.Printf("Issued: %s\n", b.IssuedAt)
}

func (o *Output) printBanList(l BanList) {
	fmt.Printf("Active Bans (%d):\n", len(l.Bans))
	for _, b := range l.Bans {
		fmt.Printf("  - %s: %s ban issued %s (%s)\n", b.DriverID, b.Kind, b.IssuedAt, b.Reason)
	}
}

func (o *Output) printBanRemovalResult(r BanRemovalResult) {
	fmt.Printf("Removed %d %s ban(s) for %s\n", r.Removed, r.Kind, r.DriverID)
}

func (o *Output) printSweepResult(s SweepResult) {
	fmt.Printf("Swept %d expired ban(s)\n", s.Removed)
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Logged in as: %s\n", a.Username)
	fmt.Printf("Token: %s\n", a.SessionToken)
	fmt.Printf("Expires: %s\n", a.ExpiresAt)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
