package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/engine"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

func sampleQuestion() model.Question {
	return model.Question{
		Type: model.UncertaintyCategoryConflict,
		Text: "Where should demo_take3.wav go?",
		Options: []model.Option{
			{Label: "Keep creative_projects"},
			{Label: "It belongs in technical"},
		},
	}
}

func TestAsk_PicksOption(t *testing.T) {
	var out bytes.Buffer
	a := NewAnswerer(strings.NewReader("2\n"), &out)

	answer, err := a.Ask(context.Background(), sampleQuestion())
	require.NoError(t, err)
	assert.Equal(t, 1, answer.OptionIndex, "displayed numbers are 1-based")
	assert.NotEmpty(t, answer.ID)
	assert.Contains(t, out.String(), "It belongs in technical")
}

func TestAsk_RetriesOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	a := NewAnswerer(strings.NewReader("9\nwat\n1\n"), &out)

	answer, err := a.Ask(context.Background(), sampleQuestion())
	require.NoError(t, err)
	assert.Equal(t, 0, answer.OptionIndex)
	assert.Contains(t, out.String(), "Please enter 1-2 or s")
}

func TestAsk_SkipAborts(t *testing.T) {
	for _, input := range []string{"s\n", "skip\n", "S\n"} {
		a := NewAnswerer(strings.NewReader(input), &bytes.Buffer{})
		_, err := a.Ask(context.Background(), sampleQuestion())
		assert.ErrorIs(t, err, engine.ErrAborted, "input %q", input)
	}
}

func TestAsk_EOFAborts(t *testing.T) {
	a := NewAnswerer(strings.NewReader(""), &bytes.Buffer{})
	_, err := a.Ask(context.Background(), sampleQuestion())
	assert.ErrorIs(t, err, engine.ErrAborted)
}

func TestFormatResult(t *testing.T) {
	res := &model.Result{
		File:          model.NewFileInfo("/inbox/demo_take3.wav"),
		Category:      "creative_projects",
		Subcategory:   "music",
		PrimaryPerson: "River",
		Confidence:    92,
		Outcome:       model.OutcomeTargetReached,
		Reasoning:     []string{`keyword "demo" (+0.50)`},
	}

	rendered := FormatResult(res)
	assert.Contains(t, rendered, "demo_take3.wav")
	assert.Contains(t, rendered, "creative_projects")
	assert.Contains(t, rendered, "music")
	assert.Contains(t, rendered, "River")
	assert.Contains(t, rendered, "92%")
	assert.Contains(t, rendered, "TARGET_REACHED")
}
