package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// RecordCorrection appends an operator override to the correction log.
func (s *SQLiteStorage) RecordCorrection(ctx context.Context, correction model.Correction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(correction.FilePath, "correction.FilePath"); err != nil {
		return err
	}
	if err := validateString(correction.CorrectedCategory, "correction.CorrectedCategory"); err != nil {
		return err
	}
	if correction.CorrectionDate.IsZero() {
		correction.CorrectionDate = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO corrections (file_path, original_category, corrected_category, original_confidence, correction_date, reason)
		VALUES (?, ?, ?, ?, ?, ?)
	`, correction.FilePath, correction.OriginalCategory, correction.CorrectedCategory,
		correction.OriginalConfidence, correction.CorrectionDate, correction.Reason)

	if err != nil {
		return fmt.Errorf("failed to record correction: %w", err)
	}

	return nil
}

// GetCorrectionsSince returns corrections made at or after the given time.
func (s *SQLiteStorage) GetCorrectionsSince(ctx context.Context, since time.Time) ([]model.Correction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT file_path, original_category, corrected_category, original_confidence, correction_date, COALESCE(reason, '')
		FROM corrections
		WHERE correction_date >= ?
		ORDER BY correction_date
	`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query corrections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var corrections []model.Correction
	for rows.Next() {
		var c model.Correction
		if err := rows.Scan(&c.FilePath, &c.OriginalCategory, &c.CorrectedCategory,
			&c.OriginalConfidence, &c.CorrectionDate, &c.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		corrections = append(corrections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate corrections: %w", err)
	}

	return corrections, nil
}
