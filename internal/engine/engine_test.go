package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/extract"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/testutil"
)

// stubSource returns fixed content, or fails so the engine analyzes the
// filename only.
type stubSource struct {
	text string
	ok   bool
}

func (s stubSource) Extract(_ context.Context, _ string) extract.Extraction {
	if !s.ok {
		return extract.Extraction{Err: errors.New("stubbed failure")}
	}
	return extract.Extraction{Success: true, Text: s.text}
}

// weakCatalog has two categories whose signals are too faint to ever
// reach the target, which exercises the round cap.
func weakCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Document{
		Categories: map[string]catalog.Category{
			"alpha": {Keywords: []string{"zig"}, Weights: map[string]float64{"zig": 0.2}},
			"beta":  {Keywords: []string{"zag"}, Weights: map[string]float64{"zag": 0.15}},
		},
	})
	require.NoError(t, err)
	return cat
}

func TestClassifyFile_TargetReachedWithoutQuestions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	mock := NewMockAnswerer()
	source := stubSource{ok: true, text: "AGREEMENT pursuant to the SAG-AFTRA basic agreement, Hawkins unit"}
	eng := New(catalog.Default(), store, source, mock)

	res, err := eng.ClassifyFile(context.Background(), "/inbox/Netflix_Contract_2024.pdf")
	require.NoError(t, err)

	assert.Equal(t, "entertainment_industry", res.Category)
	assert.GreaterOrEqual(t, res.Confidence, 85.0)
	assert.Equal(t, model.OutcomeTargetReached, res.Outcome)
	assert.Zero(t, res.Rounds, "strong signals must not cost the operator a question")
	assert.Empty(t, mock.Asked())
	assert.True(t, res.ContentUsed)
}

func TestClassifyFile_RoundCapIsHard(t *testing.T) {
	store := testutil.SetupTestDB(t)
	mock := NewMockAnswerer(0, 0, 0, 0, 0)
	eng := NewWithConfig(weakCatalog(t), store, stubSource{}, mock, Config{
		TargetConfidence:  99.5,
		ManualReviewFloor: 10,
		MaxQuestions:      2,
	})

	res, err := eng.ClassifyFile(context.Background(), "/inbox/zig_zag.qqq")
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeRoundsExhausted, res.Outcome)
	assert.Equal(t, 2, res.Rounds, "the loop must stop exactly at the question budget")
	assert.Len(t, mock.Asked(), 2)
	assert.Equal(t, "alpha", res.Category)
	assert.Less(t, res.Confidence, 99.5)
}

func TestClassifyFile_ManualReviewFloor(t *testing.T) {
	store := testutil.SetupTestDB(t)
	mock := NewMockAnswerer()
	eng := New(catalog.Default(), store, stubSource{}, mock)

	res, err := eng.ClassifyFile(context.Background(), "/inbox/zzqx.qqq")
	require.NoError(t, err)

	assert.Equal(t, model.ManualReviewCategory, res.Category)
	assert.Equal(t, model.OutcomeManualReview, res.Outcome)
	assert.Empty(t, mock.Asked(), "hopeless files must not waste operator questions")

	entries, err := store.GetClassificationsSince(context.Background(), time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ManualReviewCategory, entries[0].Category)
}

func TestClassifyFile_AbortKeepsBestKnownResult(t *testing.T) {
	store := testutil.SetupTestDB(t)
	mock := NewMockAnswerer().AbortAt(0)
	eng := NewWithConfig(weakCatalog(t), store, stubSource{}, mock, Config{
		TargetConfidence:  99.5,
		ManualReviewFloor: 10,
		MaxQuestions:      2,
	})

	res, err := eng.ClassifyFile(context.Background(), "/inbox/zig_zag.qqq")
	require.NoError(t, err, "an aborted question is not a failure")

	assert.Equal(t, model.OutcomeUserSkipped, res.Outcome)
	assert.Equal(t, "alpha", res.Category, "the best-known category survives the abort")
	assert.Zero(t, res.Rounds)

	// Nothing was learned from the aborted question.
	decisions, err := store.GetDecisions(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestClassifyFile_AnswersTeachTheStore(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	cat, err := catalog.New(catalog.Document{
		Categories: map[string]catalog.Category{
			"entertainment_industry": {Keywords: []string{"casting"}},
		},
		People: []string{"River", "Avery"},
	})
	require.NoError(t, err)

	mock := NewMockAnswerer(0) // "This file belongs to River"
	eng := New(cat, store, stubSource{}, mock)

	res, err := eng.ClassifyFile(ctx, "/inbox/casting_river_avery.qqq")
	require.NoError(t, err)

	assert.Equal(t, "River", res.PrimaryPerson)
	assert.Equal(t, "entertainment_industry", res.Category)
	assert.Equal(t, model.OutcomeTargetReached, res.Outcome)
	assert.Equal(t, 1, res.Rounds)

	prefs, err := store.GetPreferences(ctx)
	require.NoError(t, err)
	learned, ok := prefs.PersonCategory("River")
	require.True(t, ok)
	assert.Equal(t, "entertainment_industry", learned)
	assert.InDelta(t, 0.1, prefs.KeywordBoost("casting", "entertainment_industry"), 0.0001)

	decisions, err := store.GetDecisions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, model.UncertaintyPersonIdentification, decisions[0].QuestionType)

	// A later file mentioning only River now lands in their category
	// instead of manual review.
	bulk := NewWithConfig(cat, store, stubSource{}, mock, Config{MaxQuestions: 0})
	later, err := bulk.ClassifyFile(ctx, "/inbox/river_memo.qqq")
	require.NoError(t, err)
	assert.Equal(t, "entertainment_industry", later.Category)
	assert.InDelta(t, 30.0, later.Confidence, 0.001)
	assert.Equal(t, model.OutcomeRoundsExhausted, later.Outcome)
	assert.Zero(t, later.Rounds)
}

func TestClassifyFile_BestGuessWhenNoQuestionFits(t *testing.T) {
	store := testutil.SetupTestDB(t)
	mock := NewMockAnswerer()

	// Single category, single keyword: nothing to ask about.
	cat, err := catalog.New(catalog.Document{
		Categories: map[string]catalog.Category{
			"alpha": {Keywords: []string{"zig"}, Weights: map[string]float64{"zig": 0.3}},
		},
	})
	require.NoError(t, err)

	eng := New(cat, store, stubSource{}, mock)
	res, err := eng.ClassifyFile(context.Background(), "/inbox/zig.qqq")
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeBestGuess, res.Outcome)
	assert.Equal(t, "alpha", res.Category)
	assert.Empty(t, mock.Asked())
}
