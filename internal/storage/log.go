package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// LogClassification appends one finished classification to the audit log.
func (s *SQLiteStorage) LogClassification(ctx context.Context, entry model.LogEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(entry.FileName, "entry.FileName"); err != nil {
		return err
	}
	if entry.ClassifiedAt.IsZero() {
		entry.ClassifiedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classification_log (file_name, category, confidence, rounds, outcome, classified_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.FileName, entry.Category, entry.Confidence, entry.Rounds,
		string(entry.Outcome), entry.ClassifiedAt)

	if err != nil {
		return fmt.Errorf("failed to log classification: %w", err)
	}

	return nil
}

// GetClassificationsSince returns log entries at or after the given time.
func (s *SQLiteStorage) GetClassificationsSince(ctx context.Context, since time.Time) ([]model.LogEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT file_name, category, confidence, rounds, outcome, classified_at
		FROM classification_log
		WHERE classified_at >= ?
		ORDER BY classified_at
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query classification log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		var outcome string
		if err := rows.Scan(&e.FileName, &e.Category, &e.Confidence, &e.Rounds, &outcome, &e.ClassifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		e.Outcome = model.Outcome(outcome)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate classification log: %w", err)
	}

	return entries, nil
}
