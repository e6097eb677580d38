package scoring

import (
	"fmt"
	"strings"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

const (
	// fallbackFloor is the working-range score below which the visual
	// fallback engages.
	fallbackFloor = 0.3
	// visualFallbackConfidence is the fixed confidence assigned when a
	// recognizable visual file matched nothing else. The file is never
	// left unclassified.
	visualFallbackConfidence = 40.0
	// visualCategoryID is the category forced by the fallback.
	visualCategoryID = "visual_media"
)

// Resolution is the single category the resolver picked.
type Resolution struct {
	Category   string
	Reasoning  []string
	Confidence float64
}

// ApplyPrecedence returns a copy of the scores with the ordered
// precedence-rule boosts applied. Within one rule the first matching
// trigger consumes the boost; later triggers add nothing. Policy kept
// from the original system (anti-double-counting); revisit rather than
// silently change.
func ApplyPrecedence(scores Scores, a Analysis, cat *catalog.Catalog) Scores {
	boosted := make(Scores, len(scores))
	for id, sc := range scores {
		boosted[id] = sc
	}

	for _, rule := range cat.Precedence {
		for _, trigger := range rule.Triggers {
			if !strings.Contains(a.SearchText, strings.ToLower(trigger)) {
				continue
			}
			sc := boosted[rule.Category]
			sc.Score += rule.Boost
			sc.Reasoning = append(sc.Reasoning,
				fmt.Sprintf("precedence rule %q (+%.2f)", trigger, rule.Boost))
			boosted[rule.Category] = sc
			break
		}
	}

	return boosted
}

// Resolve applies the ordered precedence rules, picks the best category
// and converts its score to a confidence in [0, 100]. Ties break by
// catalog declaration order, never randomly.
func Resolve(scores Scores, a Analysis, cat *catalog.Catalog) Resolution {
	boosted := ApplyPrecedence(scores, a, cat)

	best := ""
	bestScore := -1.0
	for id, sc := range boosted {
		score := sc.Score
		if score > 1 {
			score = 1
		}
		switch {
		case score > bestScore:
			best, bestScore = id, score
		case score == bestScore && cat.Order(id) < cat.Order(best):
			best = id
		}
	}

	if bestScore < fallbackFloor && isVisualExtension(a.File.Ext, cat) {
		return Resolution{
			Category:   visualCategoryID,
			Confidence: visualFallbackConfidence,
			Reasoning:  []string{fmt.Sprintf("visual fallback: %s is a recognized visual type", a.File.Ext)},
		}
	}

	if best == "" {
		// Nothing matched at all. Return the first catalog category at
		// zero confidence so callers always get a pair; the interaction
		// loop routes anything this weak to manual review.
		res := Resolution{Reasoning: []string{"no signals matched"}}
		if len(cat.Categories) > 0 {
			res.Category = cat.Categories[0].ID
		}
		return res
	}

	return Resolution{
		Category:   best,
		Confidence: model.ClampConfidence(bestScore * 100),
		Reasoning:  boosted[best].Reasoning,
	}
}

func isVisualExtension(ext string, cat *catalog.Catalog) bool {
	if ext == "" {
		return false
	}
	if visual, ok := cat.Category(visualCategoryID); ok {
		for _, e := range visual.Extensions {
			if strings.EqualFold(e, ext) {
				return true
			}
		}
		return false
	}
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".heic", ".mov", ".mp4", ".avi":
		return true
	}
	return false
}
