// Package scoring implements the confidence-scoring engine and the
// precedence resolver. Both are pure: they read the catalog and a
// preference snapshot and never write anywhere.
package scoring

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/catalog"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Analysis holds the signals extracted from one file before scoring.
type Analysis struct {
	File        model.FileInfo
	SearchText  string
	People      []string
	Projects    []string
	ContentUsed bool
	CurrentYear bool
	AnyYear     bool
}

// Analyze lowercases the filename and content into one search text and
// detects people, projects and date indicators. People come from the
// catalog's known-people list plus any person the preference store has
// learned about.
func Analyze(file model.FileInfo, content string, cat *catalog.Catalog, prefs model.Preferences) Analysis {
	text := strings.ToLower(file.Name)
	if content != "" {
		text += " " + strings.ToLower(content)
	}

	a := Analysis{
		File:        file,
		SearchText:  text,
		ContentUsed: content != "",
	}

	seen := make(map[string]bool)
	detect := func(name string) {
		lower := strings.ToLower(name)
		if lower == "" || seen[lower] {
			return
		}
		if strings.Contains(text, lower) {
			seen[lower] = true
			a.People = append(a.People, name)
		}
	}
	for _, p := range cat.People {
		detect(p)
	}
	// Sorted so repeated runs see people in the same order.
	learned := make([]string, 0, len(prefs.PersonCategories))
	for p := range prefs.PersonCategories {
		learned = append(learned, p)
	}
	sort.Strings(learned)
	for _, p := range learned {
		detect(p)
	}

	for _, proj := range cat.Projects {
		if strings.Contains(text, strings.ToLower(proj)) {
			a.Projects = append(a.Projects, proj)
		}
	}

	currentYear := strconv.Itoa(time.Now().Year())
	a.CurrentYear = strings.Contains(text, currentYear)
	a.AnyYear = a.CurrentYear || yearRe.MatchString(text)

	return a
}
