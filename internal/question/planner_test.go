package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/scoring"
)

func planFor(t *testing.T, path, content string, prefs model.Preferences) (*model.Question, *model.Result) {
	t.Helper()
	cat := catalog.Default()
	a := scoring.Analyze(model.NewFileInfo(path), content, cat, prefs)
	scores := scoring.Score(a, cat, prefs)
	resolution := scoring.Resolve(scores, a, cat)

	res := &model.Result{
		File:       a.File,
		Category:   resolution.Category,
		Confidence: resolution.Confidence,
		People:     a.People,
	}
	return Plan(res, a, scores, cat, prefs), res
}

func TestPlan_PersonIdentification(t *testing.T) {
	prefs := model.Preferences{
		PersonCategories: map[string]string{
			"River": "entertainment_industry",
			"Avery": "creative_projects",
		},
	}

	q, _ := planFor(t, "/inbox/river_avery_schedule.qqq", "meeting with river and avery", prefs)
	require.NotNil(t, q)
	assert.Equal(t, model.UncertaintyPersonIdentification, q.Type)
	require.Len(t, q.Options, 3)
	assert.Contains(t, q.Options[0].Label, "Avery")
	assert.Contains(t, q.Options[1].Label, "River")
	assert.Equal(t, "It relates to both of them", q.Options[2].Label)

	// A person with a learned category carries that category in the impact.
	var sawCategory bool
	for _, p := range q.Options[0].Impact {
		if sc, ok := p.(model.SetCategory); ok {
			sawCategory = true
			assert.Equal(t, "creative_projects", sc.Category)
		}
	}
	assert.True(t, sawCategory)
}

func TestPlan_BusinessVsCreativeBeatsConflict(t *testing.T) {
	// Keywords from both families: the planner must type this as
	// business-vs-creative, not as a generic category conflict.
	q, _ := planFor(t, "/inbox/residual_song_notes.qqq", "residual and royalty statement for the new song", model.Preferences{})
	require.NotNil(t, q)
	assert.Equal(t, model.UncertaintyBusinessVsCreative, q.Type)
	require.Len(t, q.Options, 2)

	assert.Contains(t, q.Options[0].Label, "entertainment_industry")
	assert.Contains(t, q.Options[1].Label, "creative_projects")
	for _, opt := range q.Options {
		var sawCategory bool
		for _, p := range opt.Impact {
			if _, ok := p.(model.SetCategory); ok {
				sawCategory = true
			}
		}
		assert.True(t, sawCategory, "every family option pins a category")
	}
}

func TestPlan_EntertainmentSubcategory(t *testing.T) {
	q, res := planFor(t, "/inbox/casting_memo.qqq", "casting session notes", model.Preferences{})
	require.Equal(t, "entertainment_industry", res.Category)
	require.NotNil(t, q)
	assert.Equal(t, model.UncertaintyEntertainment, q.Type)
	assert.Len(t, q.Options, 3)
}

func TestPlan_CategoryConflict(t *testing.T) {
	// Financial and technical keywords, no creative family involvement.
	q, res := planFor(t, "/inbox/payroll_export.qqq", "payroll statement", model.Preferences{})
	require.Equal(t, "financial", res.Category)
	require.NotNil(t, q)
	assert.Equal(t, model.UncertaintyCategoryConflict, q.Type)

	require.GreaterOrEqual(t, len(q.Options), 2)
	assert.Equal(t, "Keep financial", q.Options[0].Label)
	assert.Contains(t, q.Options[1].Label, "technical")
}

func TestPlan_DegenerateCollapsesToNil(t *testing.T) {
	// Only one category matched: a conflict question would have a single
	// option, so no question may be produced at all.
	q, _ := planFor(t, "/inbox/passport_renewal.qqq", "", model.Preferences{})
	assert.Nil(t, q)
}

func TestValid(t *testing.T) {
	opt := func(label string) model.Option { return model.Option{Label: label} }

	tests := []struct {
		name string
		q    *model.Question
		want bool
	}{
		{name: "nil question", q: nil, want: false},
		{name: "one option", q: &model.Question{Options: []model.Option{opt("a")}}, want: false},
		{name: "four options", q: &model.Question{Options: []model.Option{opt("a"), opt("b"), opt("c"), opt("d")}}, want: false},
		{name: "placeholder label", q: &model.Question{Options: []model.Option{opt("Keep it"), opt("Unknown")}}, want: false},
		{name: "blank label", q: &model.Question{Options: []model.Option{opt("Keep it"), opt("  ")}}, want: false},
		{name: "two real options", q: &model.Question{Options: []model.Option{opt("Keep it"), opt("Move it")}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valid(tt.q))
		})
	}
}
