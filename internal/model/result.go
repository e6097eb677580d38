// Package model defines the core domain models used throughout the application.
package model

import (
	"path/filepath"
	"time"
)

// Outcome indicates how a classification run ended.
type Outcome string

// Outcome constants.
const (
	// OutcomeTargetReached means confidence met the target threshold.
	OutcomeTargetReached Outcome = "TARGET_REACHED"
	// OutcomeRoundsExhausted means the question budget ran out.
	OutcomeRoundsExhausted Outcome = "ROUNDS_EXHAUSTED"
	// OutcomeUserSkipped means the operator aborted a question.
	OutcomeUserSkipped Outcome = "USER_SKIPPED"
	// OutcomeManualReview means confidence was too low to keep asking.
	OutcomeManualReview Outcome = "MANUAL_REVIEW"
	// OutcomeBestGuess means no useful question could be built.
	OutcomeBestGuess Outcome = "BEST_GUESS"
)

// ManualReviewCategory is the terminal category assigned when confidence
// falls below the manual-review floor.
const ManualReviewCategory = "manual_review"

// Result represents a file after classification. It is mutated in place
// through the interaction loop and treated as immutable once returned.
type Result struct {
	ClassifiedAt  time.Time
	File          FileInfo
	Category      string
	Subcategory   string
	PrimaryPerson string
	Outcome       Outcome
	Reasoning     []string
	Tags          []string
	People        []string
	Projects      []string
	Confidence    float64
	Rounds        int
	ContentUsed   bool
}

// AddReason appends a reasoning step. Reasoning is append-only within a run.
func (r *Result) AddReason(reason string) {
	if reason == "" {
		return
	}
	r.Reasoning = append(r.Reasoning, reason)
}

// AddTag adds a tag if not already present.
func (r *Result) AddTag(tag string) {
	for _, t := range r.Tags {
		if t == tag {
			return
		}
	}
	r.Tags = append(r.Tags, tag)
}

// AddConfidence adjusts confidence by delta, clamped to [0, 100].
func (r *Result) AddConfidence(delta float64) {
	r.Confidence = ClampConfidence(r.Confidence + delta)
}

// SuggestedPath returns the destination path the external mover should use.
func (r *Result) SuggestedPath() string {
	if r.Subcategory != "" {
		return filepath.Join(r.Category, r.Subcategory, r.File.Name)
	}
	return filepath.Join(r.Category, r.File.Name)
}

// ClampConfidence clamps a confidence value to [0, 100].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
