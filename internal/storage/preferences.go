package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

// GetPreferences loads the full preference snapshot used by scoring.
func (s *SQLiteStorage) GetPreferences(ctx context.Context) (model.Preferences, error) {
	prefs := model.Preferences{
		PersonCategories: make(map[string]string),
		KeywordBoosts:    make(map[string]map[string]float64),
	}

	if err := validateContext(ctx); err != nil {
		return prefs, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, category FROM person_preferences`)
	if err != nil {
		return prefs, fmt.Errorf("failed to load person preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name, category string
		if err := rows.Scan(&name, &category); err != nil {
			return prefs, fmt.Errorf("failed to scan person preference: %w", err)
		}
		prefs.PersonCategories[name] = category
	}
	if err := rows.Err(); err != nil {
		return prefs, fmt.Errorf("failed to iterate person preferences: %w", err)
	}

	boostRows, err := s.db.QueryContext(ctx, `SELECT keyword, category, boost FROM keyword_boosts`)
	if err != nil {
		return prefs, fmt.Errorf("failed to load keyword boosts: %w", err)
	}
	defer func() { _ = boostRows.Close() }()

	for boostRows.Next() {
		var keyword, category string
		var boost float64
		if err := boostRows.Scan(&keyword, &category, &boost); err != nil {
			return prefs, fmt.Errorf("failed to scan keyword boost: %w", err)
		}
		if prefs.KeywordBoosts[keyword] == nil {
			prefs.KeywordBoosts[keyword] = make(map[string]float64)
		}
		prefs.KeywordBoosts[keyword][category] = boost
	}
	if err := boostRows.Err(); err != nil {
		return prefs, fmt.Errorf("failed to iterate keyword boosts: %w", err)
	}

	return prefs, nil
}

// AddKeywordBoost merges a boost delta into the store. The upsert is
// additive inside a single statement, so concurrent learners on the same
// key commute instead of overwriting each other.
func (s *SQLiteStorage) AddKeywordBoost(ctx context.Context, keyword, category string, delta float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(keyword, "keyword"); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO keyword_boosts (keyword, category, boost, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(keyword, category) DO UPDATE SET
			boost = boost + excluded.boost,
			updated_at = excluded.updated_at
	`, keyword, category, delta, time.Now())

	if err != nil {
		return fmt.Errorf("failed to add keyword boost: %w", err)
	}

	return nil
}

// SetPersonCategory records a person's preferred category.
func (s *SQLiteStorage) SetPersonCategory(ctx context.Context, person, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(person, "person"); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO person_preferences (name, category, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			category = excluded.category,
			updated_at = excluded.updated_at
	`, person, category, time.Now())

	if err != nil {
		return fmt.Errorf("failed to set person preference: %w", err)
	}

	return nil
}
