package model

import "time"

// Preferences is a read-only snapshot of the preference store, consumed
// by the scoring engine. Boosts accumulate additively and are never
// decremented by the core.
type Preferences struct {
	// PersonCategories maps a person name to their learned category.
	PersonCategories map[string]string
	// KeywordBoosts maps keyword -> category -> accumulated boost.
	KeywordBoosts map[string]map[string]float64
}

// PersonCategory returns the learned category for a person, if any.
func (p Preferences) PersonCategory(name string) (string, bool) {
	cat, ok := p.PersonCategories[name]
	return cat, ok
}

// KeywordBoost returns the accumulated boost for a keyword/category pair.
func (p Preferences) KeywordBoost(keyword, category string) float64 {
	return p.KeywordBoosts[keyword][category]
}

// Decision is one entry in the append-only decision history.
type Decision struct {
	Timestamp    time.Time
	ID           string
	FileName     string
	QuestionType UncertaintyType
	UserChoice   string
	Impact       string
}

// Correction records an operator override made outside the live
// interaction loop.
type Correction struct {
	CorrectionDate     time.Time
	FilePath           string
	OriginalCategory   string
	CorrectedCategory  string
	Reason             string
	OriginalConfidence float64
}

// LogEntry records one finished classification for auditing and for the
// learning tracker's accuracy denominator.
type LogEntry struct {
	ClassifiedAt time.Time
	FileName     string
	Category     string
	Outcome      Outcome
	Confidence   float64
	Rounds       int
}
