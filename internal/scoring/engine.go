package scoring

import (
	"fmt"
	"strings"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// Signal weights. Categories are scored independently with no
// cross-category normalization; ties are resolved later by the
// precedence resolver.
const (
	multiKeywordBonus     = 0.1
	patternBonus          = 0.2
	extensionBonus        = 0.3
	strongExtensionBonus  = 0.4
	personBonus           = 0.25
	projectBonus          = 0.25
	currentYearBonus      = 0.15
	anyYearBonus          = 0.05
	mimePrefixBonus       = 0.2
	mimeTypeBonus         = 0.1
	personPreferenceBoost = 0.3
)

// Extensions that carry more signal than the default bonus.
var strongExtensions = map[string]bool{
	".pdf": true,
	".mov": true,
	".mp4": true,
}

// ScoredCategory is one category's independent score with the reasoning
// that produced it.
type ScoredCategory struct {
	Reasoning       []string
	Score           float64
	MatchedKeywords []string
}

// Scores maps category id to its score. A file matching nothing yields
// an empty map, never an error.
type Scores map[string]ScoredCategory

// Score evaluates every catalog category against the analyzed file.
// Each score is clamped to [0, 1] before return.
func Score(a Analysis, cat *catalog.Catalog, prefs model.Preferences) Scores {
	scores := make(Scores)

	for i := range cat.Categories {
		c := &cat.Categories[i]
		sc := scoreCategory(a, c, cat, prefs)
		if sc.Score <= 0 {
			continue
		}
		if sc.Score > 1 {
			sc.Score = 1
		}
		scores[c.ID] = sc
	}

	return scores
}

func scoreCategory(a Analysis, c *catalog.Category, cat *catalog.Catalog, prefs model.Preferences) ScoredCategory {
	var sc ScoredCategory

	add := func(amount float64, reason string) {
		sc.Score += amount
		sc.Reasoning = append(sc.Reasoning, fmt.Sprintf("%s (+%.2f)", reason, amount))
	}

	// Keyword hits: exact substring match on the lower-cased text.
	for _, kw := range c.Keywords {
		lower := strings.ToLower(kw)
		if !strings.Contains(a.SearchText, lower) {
			continue
		}
		sc.MatchedKeywords = append(sc.MatchedKeywords, kw)
		add(c.KeywordWeight(kw), fmt.Sprintf("keyword %q", kw))
	}
	if len(sc.MatchedKeywords) > 1 {
		add(multiKeywordBonus, fmt.Sprintf("%d distinct keywords", len(sc.MatchedKeywords)))
	}

	for _, re := range cat.Patterns(c.ID) {
		if re.MatchString(a.SearchText) {
			add(patternBonus, fmt.Sprintf("pattern %q", re.String()))
		}
	}

	for _, ext := range c.Extensions {
		if !strings.EqualFold(ext, a.File.Ext) {
			continue
		}
		bonus := extensionBonus
		if strongExtensions[a.File.Ext] {
			bonus = strongExtensionBonus
		}
		add(bonus, fmt.Sprintf("extension %s", a.File.Ext))
		break
	}

	// Signals that apply regardless of category: they raise confidence
	// without changing the ranking.
	if sc.Score > 0 {
		if len(a.People) > 0 {
			add(personBonus, fmt.Sprintf("person detected (%s)", strings.Join(a.People, ", ")))
		}
		if len(a.Projects) > 0 {
			add(projectBonus, fmt.Sprintf("project detected (%s)", strings.Join(a.Projects, ", ")))
		}
		if a.CurrentYear {
			add(currentYearBonus, "current year in text")
		} else if a.AnyYear {
			add(anyYearBonus, "date indicator in text")
		}
		if bonus, kind := mimeAlignment(c.ID, a.File.Ext); bonus > 0 {
			add(bonus, fmt.Sprintf("content type aligns (%s)", kind))
		}
	}

	for _, sp := range cat.Specials {
		if sp.Category == c.ID && strings.Contains(a.SearchText, strings.ToLower(sp.Trigger)) {
			add(sp.Boost, fmt.Sprintf("special pattern %q", sp.Trigger))
		}
	}

	// Learned preferences: a person whose preferred category matches
	// adds a fixed boost, and every matched keyword contributes its
	// accumulated boost for this category.
	for _, person := range a.People {
		if preferred, ok := prefs.PersonCategory(person); ok && preferred == c.ID {
			add(personPreferenceBoost, fmt.Sprintf("learned preference: %s -> %s", person, c.ID))
		}
	}
	for _, kw := range sc.MatchedKeywords {
		if boost := prefs.KeywordBoost(strings.ToLower(kw), c.ID); boost > 0 {
			add(boost, fmt.Sprintf("learned keyword boost %q", kw))
		}
	}

	return sc
}
