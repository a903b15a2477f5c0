package request

// LoginRequest is the request body for steward login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateStewardRequest is the request body for creating a steward account
type CreateStewardRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterDriverRequest is the request body for registering a driver
type RegisterDriverRequest struct {
	DriverID    string `json:"driver_id"`
	DisplayName string `json:"display_name,omitempty"`
}

// AwardPenaltyRequest is the request body for awarding penalty points
type AwardPenaltyRequest struct {
	Points int    `json:"points"`
	Reason string `json:"reason,omitempty"`
}

// RemovePenaltyRequest is the request body for removing penalty points
type RemovePenaltyRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason,omitempty"`
}

// AddBanRequest is the request body for adding a manual ban
type AddBanRequest struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
}
