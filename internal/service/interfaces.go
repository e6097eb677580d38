// Package service defines the contracts between the interaction loop and
// its collaborators.
package service

import (
	"context"
	"time"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// Storage is the persistence contract: the preference store plus the
// append-only decision, correction and classification logs. Preference
// writes are additive merges; there is no delete API.
type Storage interface {
	// Preference store
	GetPreferences(ctx context.Context) (model.Preferences, error)
	AddKeywordBoost(ctx context.Context, keyword, category string, delta float64) error
	SetPersonCategory(ctx context.Context, person, category string) error

	// Decision history (append-only)
	AppendDecision(ctx context.Context, decision model.Decision) error
	GetDecisions(ctx context.Context, limit int) ([]model.Decision, error)

	// Corrections
	RecordCorrection(ctx context.Context, correction model.Correction) error
	GetCorrectionsSince(ctx context.Context, since time.Time) ([]model.Correction, error)

	// Classification log
	LogClassification(ctx context.Context, entry model.LogEntry) error
	GetClassificationsSince(ctx context.Context, since time.Time) ([]model.LogEntry, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for persistence operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
