package catalog

// Default returns the built-in catalog so the tool works with zero setup.
// Declaration order here is the tie-break order.
func Default() *Catalog {
	cats := []Category{
		{
			ID:       "financial",
			Keywords: []string{"invoice", "receipt", "tax", "payment", "statement", "budget", "expense", "payroll", "1099", "w-2"},
			Weights: map[string]float64{
				"invoice": 0.6,
				"tax":     0.6,
				"1099":    0.7,
				"w-2":     0.7,
			},
			Patterns:           []string{`\binv[-_ ]?\d{3,}\b`, `\bq[1-4][-_ ]?20\d{2}\b`},
			Extensions:         []string{".pdf", ".csv", ".xlsx", ".qbo"},
			ActiveKeywords:     []string{"due", "unpaid", "current"},
			ArchiveKeywords:    []string{"paid", "filed", "closed"},
			AgeThresholdMonths: 18,
		},
		{
			ID:       "entertainment_industry",
			Keywords: []string{"contract", "agreement", "residual", "royalty", "casting", "audition", "sag-aftra", "netflix", "hawkins", "episode", "season", "series"},
			Weights: map[string]float64{
				"sag-aftra": 0.4,
				"hawkins":   0.4,
				"residual":  0.5,
				"contract":  0.4,
			},
			Patterns:           []string{`\bs\d{1,2}e\d{1,2}\b`, `\bepisode[-_ ]?\d+\b`},
			Extensions:         []string{".pdf", ".doc", ".docx"},
			ActiveKeywords:     []string{"current", "airing", "production"},
			ArchiveKeywords:    []string{"wrapped", "cancelled"},
			AgeThresholdMonths: 24,
		},
		{
			ID:       "creative_projects",
			Keywords: []string{"script", "draft", "lyrics", "demo", "mix", "song", "album", "story", "novel", "screenplay", "treatment"},
			Weights: map[string]float64{
				"screenplay": 0.6,
				"lyrics":     0.6,
			},
			Patterns:           []string{`\bdraft[-_ ]?v?\d+\b`, `\btake[-_ ]?\d+\b`},
			Extensions:         []string{".fdx", ".logicx", ".wav", ".aiff", ".mid", ".txt", ".md"},
			ActiveKeywords:     []string{"wip", "draft", "current"},
			ArchiveKeywords:    []string{"final", "released", "shelved"},
			AgeThresholdMonths: 12,
		},
		{
			ID:                 "visual_media",
			Keywords:           []string{"photo", "screenshot", "scan", "headshot", "poster", "artwork", "footage"},
			Patterns:           []string{`\bimg[-_ ]?\d{3,}\b`, `\bdsc[-_ ]?\d{3,}\b`, `\bscreen\s?shot\b`},
			Extensions:         []string{".jpg", ".jpeg", ".png", ".gif", ".heic", ".tiff", ".mov", ".mp4", ".avi", ".mkv"},
			AgeThresholdMonths: 36,
		},
		{
			ID:       "personal_documents",
			Keywords: []string{"passport", "insurance", "medical", "lease", "license", "prescription", "appointment", "vaccination"},
			Weights: map[string]float64{
				"passport": 0.7,
				"lease":    0.6,
			},
			Extensions:         []string{".pdf", ".jpg", ".png"},
			AgeThresholdMonths: 60,
		},
		{
			ID:                 "technical",
			Keywords:           []string{"backup", "config", "export", "log", "readme", "install", "setup"},
			Patterns:           []string{`\bv\d+\.\d+(\.\d+)?\b`},
			Extensions:         []string{".zip", ".tar", ".gz", ".json", ".yaml", ".sql", ".dmg"},
			AgeThresholdMonths: 6,
		},
	}

	doc := Document{
		Version: 1,
		SpecialPatterns: []SpecialPattern{
			{Trigger: "invoice", Category: "financial", Boost: 0.5},
			{Trigger: "tax return", Category: "financial", Boost: 0.5},
			{Trigger: "sag-aftra", Category: "entertainment_industry", Boost: 0.4},
			{Trigger: "call sheet", Category: "entertainment_industry", Boost: 0.4},
			{Trigger: "screenplay", Category: "creative_projects", Boost: 0.4},
		},
		Precedence: []PrecedenceRule{
			{Category: "financial", Triggers: []string{"invoice", "1099", "w-2", "tax return"}, Boost: 0.3},
			{Category: "entertainment_industry", Triggers: []string{"sag-aftra", "residual", "casting"}, Boost: 0.3},
			{Category: "personal_documents", Triggers: []string{"passport", "medical", "prescription"}, Boost: 0.25},
		},
	}

	c, err := newFromSlice(doc, cats)
	if err != nil {
		// Defaults are compiled in; a failure here is a programming error.
		panic(err)
	}
	return c
}
