package model

import "time"

// Steward is an account authorized to perform mutating operations:
// registering drivers, awarding and removing penalty points, and
// managing bans. Read operations require no account.
type Steward struct {
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
