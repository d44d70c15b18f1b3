package domain

import (
	"context"
	"time"
)

// Preference keys persisted per client
const (
	PrefOnboardingSeen = "onboarding_seen"
	PrefUserName       = "user_name"
)

// Calculation modes recorded in the calculation log
const (
	ModeHistory = "HISTORY"
	ModeFuture  = "FUTURE"
)

// Preferences is the persisted UI state of one client
type Preferences struct {
	ClientID       string `json:"client_id"`
	OnboardingSeen bool   `json:"onboarding_seen"`
	UserName       string `json:"user_name"`
}

// CalculationLog is one persisted calculation with its raw JSON payloads
type CalculationLog struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Request   []byte    `json:"request"`
	Result    []byte    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// DataRepository defines the interface for data persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type DataRepository interface {
	// GetPreference returns the stored value and whether it exists
	GetPreference(ctx context.Context, clientID, key string) (string, bool, error)

	// SetPreference upserts a key/value pair for a client
	SetPreference(ctx context.Context, clientID, key, value string) error

	// SaveCalculationLog persists a calculation request/result
	SaveCalculationLog(ctx context.Context, entry CalculationLog) error

	// Health checks database connectivity
	Health(ctx context.Context) error
}
