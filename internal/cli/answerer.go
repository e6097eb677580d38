package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/engine"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// Answerer asks disambiguation questions on the terminal. It implements
// engine.Answerer.
type Answerer struct {
	reader *CancellableReader
	writer io.Writer
}

// NewAnswerer creates a terminal answerer. Nil reader/writer default to
// stdin/stdout.
func NewAnswerer(reader io.Reader, writer io.Writer) *Answerer {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Answerer{
		reader: NewCancellableReader(reader),
		writer: writer,
	}
}

// Ask renders the question and blocks until the operator picks an
// option, enters "s" to skip, or the context is canceled.
func (a *Answerer) Ask(ctx context.Context, q model.Question) (model.Answer, error) {
	var b strings.Builder
	b.WriteString(q.Text)
	if q.Reasoning != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(q.Reasoning))
	}
	b.WriteString("\n")
	for i, opt := range q.Options {
		b.WriteString(fmt.Sprintf("\n  [%d] %s", i+1, opt.Label))
	}
	b.WriteString("\n\n  [s] Skip this question")

	if _, err := fmt.Fprintln(a.writer, RenderBox("Quick question", b.String())); err != nil {
		return model.Answer{}, fmt.Errorf("failed to write question: %w", err)
	}

	for {
		if _, err := fmt.Fprint(a.writer, FormatPrompt("Choice")); err != nil {
			return model.Answer{}, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := a.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, ErrInputCancelled) || errors.Is(err, io.EOF) {
				return model.Answer{}, engine.ErrAborted
			}
			return model.Answer{}, fmt.Errorf("failed to read answer: %w", err)
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "s" || choice == "skip" {
			return model.Answer{}, engine.ErrAborted
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(q.Options) {
			if _, err := fmt.Fprintln(a.writer, FormatWarning(fmt.Sprintf("Please enter 1-%d or s", len(q.Options)))); err != nil {
				return model.Answer{}, fmt.Errorf("failed to write warning: %w", err)
			}
			continue
		}

		return model.Answer{
			ID:          uuid.New().String(),
			OptionIndex: n - 1,
			AnsweredAt:  time.Now(),
		}, nil
	}
}

// FormatResult renders a finished classification for display.
func FormatResult(res *model.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Category:   %s\n", SuccessStyle.Render(res.Category)))
	if res.Subcategory != "" {
		b.WriteString(fmt.Sprintf("Subcategory: %s\n", res.Subcategory))
	}
	if res.PrimaryPerson != "" {
		b.WriteString(fmt.Sprintf("Person:     %s\n", res.PrimaryPerson))
	}
	b.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", res.Confidence))
	b.WriteString(fmt.Sprintf("Suggested:  %s\n", res.SuggestedPath()))
	b.WriteString(fmt.Sprintf("Outcome:    %s", res.Outcome))

	if len(res.Reasoning) > 0 {
		b.WriteString("\n\nReasoning:")
		for _, r := range res.Reasoning {
			b.WriteString("\n  • " + SubtleStyle.Render(r))
		}
	}

	return RenderBox(res.File.Name, b.String())
}
