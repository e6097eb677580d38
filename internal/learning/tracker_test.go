package learning_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/learning"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/storage"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/testutil"
)

func logEntry(t *testing.T, store *storage.SQLiteStorage, at time.Time, category string, confidence float64) {
	t.Helper()
	require.NoError(t, store.LogClassification(context.Background(), model.LogEntry{
		ClassifiedAt: at,
		FileName:     "file.pdf",
		Category:     category,
		Outcome:      model.OutcomeTargetReached,
		Confidence:   confidence,
	}))
}

func correctAt(t *testing.T, store *storage.SQLiteStorage, at time.Time, original string) {
	t.Helper()
	require.NoError(t, store.RecordCorrection(context.Background(), model.Correction{
		CorrectionDate:    at,
		FilePath:          "/inbox/file.pdf",
		OriginalCategory:  original,
		CorrectedCategory: "personal_documents",
	}))
}

func TestAccuracy(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := learning.NewTracker(store)
	now := time.Now()

	for i := 0; i < 4; i++ {
		logEntry(t, store, now.Add(-time.Duration(i+1)*24*time.Hour), "financial", 80)
	}
	correctAt(t, store, now.Add(-24*time.Hour), "financial")

	report, err := tracker.Accuracy(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Classifications)
	assert.Equal(t, 1, report.Corrections)
	assert.InDelta(t, 0.75, report.AccuracyRate, 0.0001)
	assert.InDelta(t, 80.0, report.AvgConfidence, 0.0001)

	fin := report.PerCategory["financial"]
	assert.Equal(t, 4, fin.Classifications)
	assert.Equal(t, 1, fin.Corrections)
}

func TestAccuracy_NeverNegative(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := learning.NewTracker(store)
	now := time.Now()

	logEntry(t, store, now.Add(-24*time.Hour), "financial", 60)
	correctAt(t, store, now.Add(-23*time.Hour), "financial")
	correctAt(t, store, now.Add(-22*time.Hour), "financial")

	report, err := tracker.Accuracy(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.AccuracyRate, "more corrections than classifications clamps to zero")
}

func TestAccuracy_EmptyWindow(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := learning.NewTracker(store)

	report, err := tracker.Accuracy(context.Background(), 30)
	require.NoError(t, err)
	assert.Zero(t, report.Classifications)
	assert.Zero(t, report.AccuracyRate)
	assert.Zero(t, report.AvgConfidence)
}

func TestMilestones(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := learning.NewTracker(store)
	now := time.Now()
	prior := now.Add(-32 * 24 * time.Hour)

	// Prior window: 50% accuracy at average confidence 60.
	logEntry(t, store, prior, "financial", 60)
	logEntry(t, store, prior.Add(time.Hour), "financial", 60)
	correctAt(t, store, prior.Add(2*time.Hour), "financial")

	// Current window: perfect accuracy at average confidence 90.
	logEntry(t, store, now.Add(-24*time.Hour), "financial", 90)
	logEntry(t, store, now.Add(-23*time.Hour), "financial", 90)

	milestones, err := tracker.Milestones(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, milestones, 2)

	kinds := []string{milestones[0].Kind, milestones[1].Kind}
	assert.Contains(t, kinds, "accuracy")
	assert.Contains(t, kinds, "confidence")
}

func TestMilestones_NoBaseline(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := learning.NewTracker(store)

	// Only current-window activity: improvement over nothing is not a
	// milestone.
	logEntry(t, store, time.Now().Add(-time.Hour), "financial", 95)

	milestones, err := tracker.Milestones(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, milestones)
}

func TestRecordCorrection_RequiresCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	tracker := learning.NewTracker(store)

	err := tracker.RecordCorrection(context.Background(), "/inbox/x.pdf", "financial", "", 50, "")
	assert.Error(t, err)
}
