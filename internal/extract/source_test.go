package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("casting notes for season two"), 0o600))

	ex := NewLocalSource(0).Extract(context.Background(), path)
	require.NoError(t, ex.Err)
	assert.True(t, ex.Success)
	assert.Equal(t, "casting notes for season two", ex.Text)
}

func TestExtract_TruncatesAtCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", 100)), 0o600))

	ex := NewLocalSource(16).Extract(context.Background(), path)
	require.True(t, ex.Success)
	assert.Len(t, ex.Text, 16)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mov")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01}, 0o600))

	ex := NewLocalSource(0).Extract(context.Background(), path)
	assert.False(t, ex.Success, "unsupported formats degrade, they do not fail the file")
	assert.ErrorContains(t, ex.Err, "no extractor")
}

func TestExtract_MissingFile(t *testing.T) {
	ex := NewLocalSource(0).Extract(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	assert.False(t, ex.Success)
	assert.Error(t, ex.Err)
}

func TestExtract_BinaryPosingAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o600))

	ex := NewLocalSource(0).Extract(context.Background(), path)
	assert.False(t, ex.Success)
	assert.ErrorContains(t, ex.Err, "not valid text")
}

func TestExtract_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := NewLocalSource(0).Extract(ctx, "anything.txt")
	assert.False(t, ex.Success)
	assert.ErrorIs(t, ex.Err, context.Canceled)
}

func TestExtract_MalformedPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 not really a pdf"), 0o600))

	ex := NewLocalSource(0).Extract(context.Background(), path)
	assert.False(t, ex.Success)
	assert.Error(t, ex.Err)
}
