package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/extract"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/testutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestClassifyBatch(t *testing.T) {
	store := testutil.SetupTestDB(t)
	dir := t.TempDir()

	paths := []string{
		writeFile(t, dir, "invoice_1001.txt", "invoice payment due, tax statement attached"),
		writeFile(t, dir, "lyrics_draft_v2.txt", "lyrics for the new song, rough draft"),
		writeFile(t, dir, "mystery.qqq", ""),
	}

	eng := New(catalog.Default(), store, extract.NewLocalSource(0), NewMockAnswerer())
	results := eng.ClassifyBatch(context.Background(), paths, 2)

	require.Len(t, results, 3)
	for i, br := range results {
		assert.Equal(t, paths[i], br.Path, "results keep input order")
		require.NoError(t, br.Err)
		require.NotNil(t, br.Result)
	}

	assert.Equal(t, "financial", results[0].Result.Category)
	assert.Equal(t, "creative_projects", results[1].Result.Category)
	assert.Equal(t, model.ManualReviewCategory, results[2].Result.Category)

	// Bulk mode never asks and never writes preferences.
	prefs, err := store.GetPreferences(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prefs.PersonCategories)
	assert.Empty(t, prefs.KeywordBoosts)

	decisions, err := store.GetDecisions(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestClassifyBatch_CanceledContext(t *testing.T) {
	store := testutil.SetupTestDB(t)
	dir := t.TempDir()

	paths := []string{
		writeFile(t, dir, "a.txt", "invoice"),
		writeFile(t, dir, "b.txt", "invoice"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(catalog.Default(), store, extract.NewLocalSource(0), NewMockAnswerer())
	results := eng.ClassifyBatch(ctx, paths, 1)

	require.Len(t, results, 2)
	for _, br := range results {
		assert.Equal(t, context.Canceled, br.Err)
	}
}

func TestClassifyBatch_NoPaths(t *testing.T) {
	store := testutil.SetupTestDB(t)
	eng := New(catalog.Default(), store, extract.NewLocalSource(0), NewMockAnswerer())
	assert.Empty(t, eng.ClassifyBatch(context.Background(), nil, 4))
}
