package engine

import (
	"context"
	"errors"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// ErrAborted is returned by an Answerer when the operator cancels a
// question. The loop falls back to the best-known result instead of
// failing the file.
var ErrAborted = errors.New("question aborted")

// Answerer is the suspension point of the interaction loop: it blocks
// until the operator (or a test stub, or a TUI) picks an option, and
// must honor context cancellation.
type Answerer interface {
	Ask(ctx context.Context, q model.Question) (model.Answer, error)
}

// AnswerFunc adapts a function to the Answerer interface.
type AnswerFunc func(ctx context.Context, q model.Question) (model.Answer, error)

// Ask implements Answerer.
func (f AnswerFunc) Ask(ctx context.Context, q model.Question) (model.Answer, error) {
	return f(ctx, q)
}
