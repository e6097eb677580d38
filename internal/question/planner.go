// Package question builds bounded disambiguation questions for files the
// scoring engine is unsure about. The planner only ever returns a
// question worth asking: anything degenerate collapses to nil.
package question

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/scoring"
)

// Confidence deltas applied by accepted answers.
const (
	personAnswerBoost      = 20.0
	personOnlyBoost        = 10.0
	familyAnswerBoost      = 20.0
	subcategoryAnswerBoost = 15.0
	conflictAnswerBoost    = 15.0
)

// Category families used to type business-vs-creative uncertainty.
var (
	businessFamily = map[string]bool{
		"financial":              true,
		"entertainment_industry": true,
	}
	creativeFamily = map[string]bool{
		"creative_projects": true,
	}
	entertainmentAdjacent = map[string]bool{
		"entertainment_industry": true,
	}
)

// placeholderLabels are labels that carry no information. Emitting one of
// these is the historical bug the degenerate-question guard exists for.
var placeholderLabels = map[string]bool{
	"":              true,
	"unknown":       true,
	"none":          true,
	"n/a":           true,
	"uncategorized": true,
}

// Plan decides why confidence is low and builds a 2-3 option question,
// or returns nil when no meaningful question can be constructed.
func Plan(res *model.Result, a scoring.Analysis, scores scoring.Scores, cat *catalog.Catalog, prefs model.Preferences) *model.Question {
	var q *model.Question

	switch {
	case len(a.People) > 1:
		q = planPersonQuestion(a, res, prefs)
	case hasBusinessAndCreative(scores):
		q = planFamilyQuestion(scores, cat)
	case entertainmentAdjacent[res.Category]:
		q = planEntertainmentQuestion(res)
	default:
		q = planConflictQuestion(res, scores, cat)
	}

	if !valid(q) {
		return nil
	}
	return q
}

func planPersonQuestion(a scoring.Analysis, res *model.Result, prefs model.Preferences) *model.Question {
	people := a.People
	if len(people) > 2 {
		people = people[:2]
	}

	opts := make([]model.Option, 0, len(people)+1)
	for _, person := range people {
		impact := model.Impact{model.SetPrimaryPerson{Person: person}}
		if preferred, ok := prefs.PersonCategory(person); ok {
			impact = append(impact,
				model.SetCategory{Category: preferred},
				model.AddConfidence{Delta: personAnswerBoost})
		} else {
			impact = append(impact, model.AddConfidence{Delta: personOnlyBoost})
		}
		opts = append(opts, model.Option{
			Label:  fmt.Sprintf("This file belongs to %s", person),
			Impact: impact,
		})
	}
	opts = append(opts, model.Option{
		Label:  "It relates to both of them",
		Impact: model.Impact{model.AddConfidence{Delta: personOnlyBoost}},
	})

	return &model.Question{
		Type:      model.UncertaintyPersonIdentification,
		Text:      fmt.Sprintf("%s mentions more than one person. Whose file is it?", res.File.Name),
		Reasoning: fmt.Sprintf("detected people: %s", strings.Join(a.People, ", ")),
		Options:   opts,
	}
}

func hasBusinessAndCreative(scores scoring.Scores) bool {
	var business, creative bool
	for id, sc := range scores {
		if len(sc.MatchedKeywords) == 0 {
			continue
		}
		if businessFamily[id] {
			business = true
		}
		if creativeFamily[id] {
			creative = true
		}
	}
	return business && creative
}

func planFamilyQuestion(scores scoring.Scores, cat *catalog.Catalog) *model.Question {
	business := bestInFamily(scores, cat, businessFamily)
	creative := bestInFamily(scores, cat, creativeFamily)
	if business == "" || creative == "" {
		return nil
	}

	return &model.Question{
		Type:      model.UncertaintyBusinessVsCreative,
		Text:      "This file has both business and creative signals. Which is it?",
		Reasoning: fmt.Sprintf("business keywords point at %s, creative keywords at %s", business, creative),
		Options: []model.Option{
			{
				Label: fmt.Sprintf("Business paperwork (%s)", business),
				Impact: model.Impact{
					model.SetCategory{Category: business},
					model.AddConfidence{Delta: familyAnswerBoost},
				},
			},
			{
				Label: fmt.Sprintf("Creative work (%s)", creative),
				Impact: model.Impact{
					model.SetCategory{Category: creative},
					model.AddConfidence{Delta: familyAnswerBoost},
				},
			},
		},
	}
}

func bestInFamily(scores scoring.Scores, cat *catalog.Catalog, family map[string]bool) string {
	best := ""
	bestScore := -1.0
	for id, sc := range scores {
		if !family[id] || len(sc.MatchedKeywords) == 0 {
			continue
		}
		if sc.Score > bestScore || (sc.Score == bestScore && cat.Order(id) < cat.Order(best)) {
			best, bestScore = id, sc.Score
		}
	}
	return best
}

func planEntertainmentQuestion(res *model.Result) *model.Question {
	sub := func(name string) model.Impact {
		return model.Impact{
			model.SetSubcategory{Subcategory: name},
			model.AddConfidence{Delta: subcategoryAnswerBoost},
		}
	}

	return &model.Question{
		Type:      model.UncertaintyEntertainment,
		Text:      fmt.Sprintf("What kind of industry file is %s?", res.File.Name),
		Reasoning: "category is entertainment-adjacent but the subcategory is unclear",
		Options: []model.Option{
			{Label: "Contract or business paperwork", Impact: sub("contracts")},
			{Label: "Production or episode material", Impact: sub("production")},
			{Label: "Press or publicity", Impact: sub("press")},
		},
	}
}

func planConflictQuestion(res *model.Result, scores scoring.Scores, cat *catalog.Catalog) *model.Question {
	alternatives := rankedAlternatives(res.Category, scores, cat)
	if len(alternatives) == 0 {
		return nil
	}
	if len(alternatives) > 2 {
		alternatives = alternatives[:2]
	}

	opts := []model.Option{{
		Label:  fmt.Sprintf("Keep %s", res.Category),
		Impact: model.Impact{model.AddConfidence{Delta: conflictAnswerBoost}},
	}}
	for _, alt := range alternatives {
		opts = append(opts, model.Option{
			Label: fmt.Sprintf("It belongs in %s (matched: %s)", alt,
				strings.Join(scores[alt].MatchedKeywords, ", ")),
			Impact: model.Impact{
				model.SetCategory{Category: alt},
				model.AddConfidence{Delta: conflictAnswerBoost},
			},
		})
	}

	return &model.Question{
		Type:      model.UncertaintyCategoryConflict,
		Text:      fmt.Sprintf("Where should %s go?", res.File.Name),
		Reasoning: fmt.Sprintf("more than one category matched, best guess is %s", res.Category),
		Options:   opts,
	}
}

// rankedAlternatives returns non-winning categories that matched at
// least one keyword, strongest first, catalog order breaking ties.
func rankedAlternatives(winner string, scores scoring.Scores, cat *catalog.Catalog) []string {
	alts := make([]string, 0, len(scores))
	for id, sc := range scores {
		if id == winner || len(sc.MatchedKeywords) == 0 {
			continue
		}
		alts = append(alts, id)
	}
	sort.Slice(alts, func(i, j int) bool {
		si, sj := scores[alts[i]].Score, scores[alts[j]].Score
		if si != sj {
			return si > sj
		}
		return cat.Order(alts[i]) < cat.Order(alts[j])
	})
	return alts
}

// valid enforces the degenerate-question guard: 2-3 options, every label
// meaningful.
func valid(q *model.Question) bool {
	if q == nil || len(q.Options) < 2 || len(q.Options) > 3 {
		return false
	}
	for _, opt := range q.Options {
		if placeholderLabels[strings.ToLower(strings.TrimSpace(opt.Label))] {
			return false
		}
	}
	return true
}
