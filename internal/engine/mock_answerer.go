package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// MockAnswerer is a test implementation of the Answerer interface. It
// replays a scripted sequence of option indexes and records every
// question it was asked.
type MockAnswerer struct {
	asked   []model.Question
	script  []int
	next    int
	abortAt int
	mu      sync.Mutex
}

// NewMockAnswerer creates a mock that answers with the given option
// indexes in order. When the script runs out it keeps answering 0.
func NewMockAnswerer(script ...int) *MockAnswerer {
	return &MockAnswerer{script: script, abortAt: -1}
}

// AbortAt makes the mock return ErrAborted on the nth question (0-based).
func (m *MockAnswerer) AbortAt(n int) *MockAnswerer {
	m.abortAt = n
	return m
}

// Ask records the question and returns the next scripted answer.
func (m *MockAnswerer) Ask(_ context.Context, q model.Question) (model.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := m.next
	m.next++
	m.asked = append(m.asked, q)

	if m.abortAt >= 0 && index == m.abortAt {
		return model.Answer{}, ErrAborted
	}

	choice := 0
	if index < len(m.script) {
		choice = m.script[index]
	}

	return model.Answer{
		ID:          uuid.New().String(),
		OptionIndex: choice,
		AnsweredAt:  time.Now(),
	}, nil
}

// Asked returns a copy of every question the mock received.
func (m *MockAnswerer) Asked() []model.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Question, len(m.asked))
	copy(out, m.asked)
	return out
}
