package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/engine"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// Answerer runs the question picker as a full-screen prompt. It
// implements engine.Answerer.
type Answerer struct{}

// NewAnswerer creates a TUI answerer.
func NewAnswerer() *Answerer {
	return &Answerer{}
}

// Ask presents the picker and waits for a choice. Skipping, quitting or
// canceling the context all report ErrAborted so the loop keeps the
// best-known result.
func (a *Answerer) Ask(ctx context.Context, q model.Question) (model.Answer, error) {
	program := tea.NewProgram(NewModel(q), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return model.Answer{}, engine.ErrAborted
		}
		return model.Answer{}, fmt.Errorf("question picker failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Choice() < 0 {
		return model.Answer{}, engine.ErrAborted
	}

	return model.Answer{
		ID:          uuid.New().String(),
		OptionIndex: m.Choice(),
		AnsweredAt:  time.Now(),
	}, nil
}
