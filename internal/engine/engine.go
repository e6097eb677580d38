// Package engine implements the interaction loop that turns raw scores
// into a final classification, asking the operator bounded questions
// when confidence is low and feeding answers back into the preference
// store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/common"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/extract"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/question"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/scoring"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/service"
)

// keywordLearnRate is the boost merged into the preference store for
// each matched keyword of an accepted answer's category.
const keywordLearnRate = 0.1

// Config holds configuration options for the interaction loop.
type Config struct {
	// TargetConfidence ends the loop once reached.
	TargetConfidence float64
	// ManualReviewFloor routes hopeless files to manual review instead
	// of asking more questions.
	ManualReviewFloor float64
	// MaxQuestions caps interaction rounds per file. Zero means never
	// ask (bulk mode).
	MaxQuestions int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TargetConfidence:  85,
		ManualReviewFloor: 20,
		MaxQuestions:      3,
	}
}

// Engine orchestrates Scoring -> AwaitingAnswer -> Learning rounds for
// one file at a time.
type Engine struct {
	catalog  *catalog.Catalog
	storage  service.Storage
	source   extract.Source
	answerer Answerer
	config   Config
}

// New creates an engine with the default configuration.
func New(cat *catalog.Catalog, storage service.Storage, source extract.Source, answerer Answerer) *Engine {
	return NewWithConfig(cat, storage, source, answerer, DefaultConfig())
}

// NewWithConfig creates an engine with a custom configuration.
func NewWithConfig(cat *catalog.Catalog, storage service.Storage, source extract.Source, answerer Answerer, config Config) *Engine {
	if config.TargetConfidence <= 0 {
		config.TargetConfidence = 85
	}
	if config.ManualReviewFloor <= 0 {
		config.ManualReviewFloor = 20
	}
	if config.MaxQuestions < 0 {
		config.MaxQuestions = 0
	}
	return &Engine{
		catalog:  cat,
		storage:  storage,
		source:   source,
		answerer: answerer,
		config:   config,
	}
}

// loop states.
type state int

const (
	stateScoring state = iota
	stateAwaitingAnswer
	stateLearning
	stateDone
)

// ClassifyFile runs the full interaction loop for one file. It never
// returns an error for scoring, extraction or persistence problems;
// those degrade and are recorded on the result. The returned result is
// final: callers must not mutate it.
func (e *Engine) ClassifyFile(ctx context.Context, path string) (*model.Result, error) {
	file := model.NewFileInfo(path)

	result := &model.Result{
		File:         file,
		ClassifiedAt: time.Now(),
	}

	extraction := e.source.Extract(ctx, path)
	content := ""
	if extraction.Success {
		content = extraction.Text
		result.ContentUsed = true
	} else {
		result.AddReason("content extraction unavailable, analyzing filename only")
		slog.Debug("Content extraction failed, using filename only",
			"file", file.Name, "error", extraction.Err)
	}

	var (
		current  = stateScoring
		pending  *model.Question
		chosen   model.Option
		analysis scoring.Analysis
		scores   scoring.Scores
		// pinned is the category an answer fixed; bonus accumulates the
		// confidence deltas answers added. Re-scoring respects both.
		pinned string
		bonus  float64
	)

	for current != stateDone {
		switch current {
		case stateScoring:
			prefs := e.loadPreferences(ctx, result)
			analysis = scoring.Analyze(file, content, e.catalog, prefs)
			scores = scoring.Score(analysis, e.catalog, prefs)

			e.applyResolution(result, analysis, scores, pinned, bonus)

			switch {
			case result.Confidence >= e.config.TargetConfidence:
				result.Outcome = model.OutcomeTargetReached
				current = stateDone
			case result.Confidence < e.config.ManualReviewFloor:
				result.AddReason(fmt.Sprintf("confidence %.0f below review floor, flagging for manual review", result.Confidence))
				result.Category = model.ManualReviewCategory
				result.Subcategory = ""
				result.Outcome = model.OutcomeManualReview
				current = stateDone
			case result.Rounds >= e.config.MaxQuestions:
				result.Outcome = model.OutcomeRoundsExhausted
				current = stateDone
			default:
				pending = question.Plan(result, analysis, scores, e.catalog, prefs)
				if pending == nil {
					result.Outcome = model.OutcomeBestGuess
					current = stateDone
				} else {
					current = stateAwaitingAnswer
				}
			}

		case stateAwaitingAnswer:
			answer, err := e.answerer.Ask(ctx, *pending)
			if err != nil {
				if !errors.Is(err, ErrAborted) && !errors.Is(err, context.Canceled) {
					common.LogError(err, "Answerer failed, keeping best-known result",
						common.Fields{"file": file.Name})
				}
				result.AddReason("question skipped by operator")
				result.Outcome = model.OutcomeUserSkipped
				current = stateDone
				continue
			}
			if answer.OptionIndex < 0 || answer.OptionIndex >= len(pending.Options) {
				slog.Warn("Answer option out of range, keeping best-known result",
					"file", file.Name, "option", answer.OptionIndex)
				result.Outcome = model.OutcomeUserSkipped
				current = stateDone
				continue
			}

			chosen = pending.Options[answer.OptionIndex]
			result.Apply(chosen.Impact)
			result.AddReason(fmt.Sprintf("answered %q: %s", pending.Type, chosen.Label))
			for _, p := range chosen.Impact {
				switch patch := p.(type) {
				case model.SetCategory:
					pinned = patch.Category
				case model.AddConfidence:
					bonus += patch.Delta
				}
			}
			current = stateLearning

		case stateLearning:
			e.learn(ctx, result, pending, chosen, scores)
			result.Rounds++
			current = stateScoring
		}
	}

	e.logResult(ctx, result)

	return result, nil
}

// applyResolution merges a fresh scoring pass into the result, honoring
// a category pinned by an earlier answer and the accumulated answer
// confidence.
func (e *Engine) applyResolution(result *model.Result, analysis scoring.Analysis, scores scoring.Scores, pinned string, bonus float64) {
	result.People = analysis.People
	result.Projects = analysis.Projects

	if pinned != "" {
		boosted := scoring.ApplyPrecedence(scores, analysis, e.catalog)
		score := boosted[pinned].Score
		if score > 1 {
			score = 1
		}
		result.Category = pinned
		result.Confidence = model.ClampConfidence(score*100 + bonus)
		return
	}

	res := scoring.Resolve(scores, analysis, e.catalog)
	result.Category = res.Category
	result.Confidence = model.ClampConfidence(res.Confidence + bonus)
	for _, r := range res.Reasoning {
		result.AddReason(r)
	}
}

// loadPreferences degrades to an empty snapshot on storage failure:
// classification still proceeds, just without learned boosts.
func (e *Engine) loadPreferences(ctx context.Context, result *model.Result) model.Preferences {
	prefs, err := e.storage.GetPreferences(ctx)
	if err != nil {
		common.LogError(err, "Failed to load preferences, scoring without boosts",
			common.Fields{"file": result.File.Name})
		return model.Preferences{}
	}
	return prefs
}

// learn persists an accepted answer: person preference, keyword boosts
// for the chosen category, and the decision history entry. Failures are
// logged and swallowed; the file still classifies, it just doesn't
// teach.
func (e *Engine) learn(ctx context.Context, result *model.Result, q *model.Question, chosen model.Option, scores scoring.Scores) {
	retryOpts := service.RetryOptions{
		MaxAttempts:  2,
		InitialDelay: 50 * time.Millisecond,
	}

	if result.PrimaryPerson != "" && result.Category != "" {
		err := common.WithRetry(ctx, func() error {
			return e.storage.SetPersonCategory(ctx, result.PrimaryPerson, result.Category)
		}, retryOpts)
		if err != nil {
			common.LogError(err, "Failed to persist person preference",
				common.Fields{"person": result.PrimaryPerson})
		}
	}

	if sc, ok := scores[result.Category]; ok {
		for _, kw := range sc.MatchedKeywords {
			keyword := strings.ToLower(kw)
			err := common.WithRetry(ctx, func() error {
				return e.storage.AddKeywordBoost(ctx, keyword, result.Category, keywordLearnRate)
			}, retryOpts)
			if err != nil {
				common.LogError(err, "Failed to persist keyword boost",
					common.Fields{"keyword": keyword, "category": result.Category})
			}
		}
	}

	decision := model.Decision{
		ID:           uuid.New().String(),
		Timestamp:    time.Now(),
		FileName:     result.File.Name,
		QuestionType: q.Type,
		UserChoice:   chosen.Label,
		Impact:       describeImpact(chosen.Impact),
	}
	if err := e.storage.AppendDecision(ctx, decision); err != nil {
		common.LogError(err, "Failed to append decision history",
			common.Fields{"file": result.File.Name})
	}
}

func describeImpact(impact model.Impact) string {
	parts := make([]string, 0, len(impact))
	for _, p := range impact {
		switch patch := p.(type) {
		case model.SetCategory:
			parts = append(parts, "category="+patch.Category)
		case model.SetSubcategory:
			parts = append(parts, "subcategory="+patch.Subcategory)
		case model.SetPrimaryPerson:
			parts = append(parts, "person="+patch.Person)
		case model.AddConfidence:
			parts = append(parts, fmt.Sprintf("confidence%+.0f", patch.Delta))
		}
	}
	return strings.Join(parts, " ")
}

func (e *Engine) logResult(ctx context.Context, result *model.Result) {
	entry := model.LogEntry{
		ClassifiedAt: result.ClassifiedAt,
		FileName:     result.File.Name,
		Category:     result.Category,
		Confidence:   result.Confidence,
		Rounds:       result.Rounds,
		Outcome:      result.Outcome,
	}
	if err := e.storage.LogClassification(ctx, entry); err != nil {
		common.LogError(err, "Failed to log classification",
			common.Fields{"file": result.File.Name})
	}
}
