package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// AppendDecision appends one decision to the history. The history is
// append-only; nothing in the core ever updates or deletes a row.
func (s *SQLiteStorage) AppendDecision(ctx context.Context, decision model.Decision) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(decision.ID, "decision.ID"); err != nil {
		return err
	}
	if decision.Timestamp.IsZero() {
		decision.Timestamp = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decision_history (id, timestamp, file_name, question_type, user_choice, impact)
		VALUES (?, ?, ?, ?, ?, ?)
	`, decision.ID, decision.Timestamp, decision.FileName,
		string(decision.QuestionType), decision.UserChoice, decision.Impact)

	if err != nil {
		return fmt.Errorf("failed to append decision: %w", err)
	}

	return nil
}

// GetDecisions returns the most recent decisions, newest first.
func (s *SQLiteStorage) GetDecisions(ctx context.Context, limit int) ([]model.Decision, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, file_name, question_type, user_choice, COALESCE(impact, '')
		FROM decision_history
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var decisions []model.Decision
	for rows.Next() {
		var d model.Decision
		var qt string
		if err := rows.Scan(&d.ID, &d.Timestamp, &d.FileName, &qt, &d.UserChoice, &d.Impact); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		d.QuestionType = model.UncertaintyType(qt)
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decisions: %w", err)
	}

	return decisions, nil
}
