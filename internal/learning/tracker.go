// Package learning tracks corrections and computes rolling accuracy
// metrics over the classification log. It is purely observational: it
// never feeds back into scoring.
package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/service"
)

// Milestone thresholds: compare the current window against the same
// window ending ~30 days earlier.
const (
	milestoneLookback        = 30 * 24 * time.Hour
	accuracyMilestoneDelta   = 0.10
	confidenceMilestoneDelta = 5.0
)

// CategoryMetrics aggregates per-category counts in a window.
type CategoryMetrics struct {
	Classifications int
	Corrections     int
}

// Report is the windowed accuracy summary.
type Report struct {
	PerCategory     map[string]CategoryMetrics
	Classifications int
	Corrections     int
	AccuracyRate    float64
	AvgConfidence   float64
}

// Milestone marks a detected improvement over the prior window.
type Milestone struct {
	Kind   string
	Before float64
	After  float64
}

// Tracker computes metrics from a Storage.
type Tracker struct {
	storage service.Storage
}

// NewTracker creates a learning tracker.
func NewTracker(storage service.Storage) *Tracker {
	return &Tracker{storage: storage}
}

// RecordCorrection stores an operator override made outside the live
// interaction loop.
func (t *Tracker) RecordCorrection(ctx context.Context, file, original, corrected string, originalConfidence float64, reason string) error {
	if corrected == "" {
		return fmt.Errorf("corrected category cannot be empty")
	}

	return t.storage.RecordCorrection(ctx, model.Correction{
		FilePath:           file,
		OriginalCategory:   original,
		CorrectedCategory:  corrected,
		OriginalConfidence: originalConfidence,
		CorrectionDate:     time.Now(),
		Reason:             reason,
	})
}

// Accuracy computes the rolling metrics for the last windowDays days.
func (t *Tracker) Accuracy(ctx context.Context, windowDays int) (Report, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	end := time.Now()
	return t.accuracyWindow(ctx, end.Add(-time.Duration(windowDays)*24*time.Hour), end)
}

func (t *Tracker) accuracyWindow(ctx context.Context, start, end time.Time) (Report, error) {
	report := Report{PerCategory: make(map[string]CategoryMetrics)}

	entries, err := t.storage.GetClassificationsSince(ctx, start)
	if err != nil {
		return report, fmt.Errorf("failed to load classification log: %w", err)
	}
	corrections, err := t.storage.GetCorrectionsSince(ctx, start)
	if err != nil {
		return report, fmt.Errorf("failed to load corrections: %w", err)
	}

	var confidenceSum float64
	for _, e := range entries {
		if e.ClassifiedAt.After(end) {
			continue
		}
		report.Classifications++
		confidenceSum += e.Confidence
		m := report.PerCategory[e.Category]
		m.Classifications++
		report.PerCategory[e.Category] = m
	}
	for _, c := range corrections {
		if c.CorrectionDate.After(end) {
			continue
		}
		report.Corrections++
		m := report.PerCategory[c.OriginalCategory]
		m.Corrections++
		report.PerCategory[c.OriginalCategory] = m
	}

	if report.Classifications > 0 {
		rate := float64(report.Classifications-report.Corrections) / float64(report.Classifications)
		if rate < 0 {
			rate = 0
		}
		report.AccuracyRate = rate
		report.AvgConfidence = confidenceSum / float64(report.Classifications)
	}

	return report, nil
}

// Milestones compares the current window to the same-length window
// ending ~30 days earlier and reports improvements of at least 10%
// accuracy or 5 points of average confidence.
func (t *Tracker) Milestones(ctx context.Context, windowDays int) ([]Milestone, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	window := time.Duration(windowDays) * 24 * time.Hour
	now := time.Now()

	current, err := t.accuracyWindow(ctx, now.Add(-window), now)
	if err != nil {
		return nil, err
	}
	priorEnd := now.Add(-milestoneLookback)
	prior, err := t.accuracyWindow(ctx, priorEnd.Add(-window), priorEnd)
	if err != nil {
		return nil, err
	}

	// No baseline means no milestone; improvement over nothing is noise.
	if prior.Classifications == 0 || current.Classifications == 0 {
		return nil, nil
	}

	var milestones []Milestone
	if current.AccuracyRate-prior.AccuracyRate >= accuracyMilestoneDelta {
		milestones = append(milestones, Milestone{
			Kind:   "accuracy",
			Before: prior.AccuracyRate,
			After:  current.AccuracyRate,
		})
	}
	if current.AvgConfidence-prior.AvgConfidence >= confidenceMilestoneDelta {
		milestones = append(milestones, Milestone{
			Kind:   "confidence",
			Before: prior.AvgConfidence,
			After:  current.AvgConfidence,
		})
	}

	return milestones, nil
}
