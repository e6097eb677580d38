package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_AddConfidence(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{name: "simple add", start: 50, delta: 20, want: 70},
		{name: "clamps at 100", start: 95, delta: 20, want: 100},
		{name: "clamps at 0", start: 5, delta: -20, want: 0},
		{name: "negative delta", start: 50, delta: -10, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Result{Confidence: tt.start}
			r.AddConfidence(tt.delta)
			assert.Equal(t, tt.want, r.Confidence)
		})
	}
}

func TestResult_Apply(t *testing.T) {
	r := Result{
		File:       NewFileInfo("/inbox/demo_take3.wav"),
		Category:   "technical",
		Confidence: 40,
	}

	r.Apply(Impact{
		SetCategory{Category: "creative_projects"},
		SetSubcategory{Subcategory: "music"},
		SetPrimaryPerson{Person: "River"},
		AddConfidence{Delta: 75},
	})

	assert.Equal(t, "creative_projects", r.Category)
	assert.Equal(t, "music", r.Subcategory)
	assert.Equal(t, "River", r.PrimaryPerson)
	assert.Equal(t, 100.0, r.Confidence, "confidence delta must clamp")
}

func TestResult_SuggestedPath(t *testing.T) {
	r := Result{
		File:     NewFileInfo("/inbox/lease_2024.pdf"),
		Category: "personal_documents",
	}
	assert.Equal(t, filepath.Join("personal_documents", "lease_2024.pdf"), r.SuggestedPath())

	r.Subcategory = "housing"
	assert.Equal(t, filepath.Join("personal_documents", "housing", "lease_2024.pdf"), r.SuggestedPath())
}

func TestResult_AddTag(t *testing.T) {
	var r Result
	r.AddTag("archive")
	r.AddTag("archive")
	r.AddTag("current")
	assert.Equal(t, []string{"archive", "current"}, r.Tags)
}

func TestNewFileInfo(t *testing.T) {
	info := NewFileInfo("/inbox/Netflix_Contract_2024.PDF")
	assert.Equal(t, "Netflix_Contract_2024.PDF", info.Name)
	assert.Equal(t, ".pdf", info.Ext)
}
