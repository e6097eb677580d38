// Package catalog loads and holds the versioned rule catalog that drives
// scoring. A catalog is immutable during a classification call; it changes
// only through an explicit reload, never through the learning loop.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Category holds the scoring rules for one category.
type Category struct {
	ID                 string             `json:"-"`
	Keywords           []string           `json:"keywords"`
	Weights            map[string]float64 `json:"confidence_weights"`
	Patterns           []string           `json:"patterns"`
	Extensions         []string           `json:"file_types"`
	ActiveKeywords     []string           `json:"active_keywords"`
	ArchiveKeywords    []string           `json:"archive_keywords"`
	AgeThresholdMonths int                `json:"age_threshold_months"`
}

// KeywordWeight returns the configured weight for a keyword, or the
// default weight when the keyword carries no explicit weight.
func (c *Category) KeywordWeight(keyword string) float64 {
	if w, ok := c.Weights[keyword]; ok {
		return w
	}
	return DefaultKeywordWeight
}

// DefaultKeywordWeight applies to keywords without an explicit weight.
const DefaultKeywordWeight = 0.5

// SpecialPattern is a hard-coded trigger/category pair with a fixed boost.
type SpecialPattern struct {
	Trigger  string  `json:"trigger"`
	Category string  `json:"category"`
	Boost    float64 `json:"boost"`
}

// PrecedenceRule is an ordered override: when any trigger matches, the
// named category receives the boost. The first matching trigger consumes
// the boost for the whole rule; later triggers in the same rule add
// nothing. Kept from the original system as an anti-double-counting
// policy choice, flagged for review rather than silently changed.
type PrecedenceRule struct {
	Category string   `json:"category"`
	Triggers []string `json:"triggers"`
	Boost    float64  `json:"boost"`
}

// Document is the persisted catalog format consumed at bootstrap.
type Document struct {
	Categories      map[string]Category `json:"categories"`
	SpecialPatterns []SpecialPattern    `json:"special_patterns"`
	Precedence      []PrecedenceRule    `json:"precedence"`
	People          []string            `json:"people"`
	Projects        []string            `json:"projects"`
	Version         int                 `json:"version"`
}

// Catalog is the compiled, read-only rule table.
type Catalog struct {
	compiled   map[string][]*regexp.Regexp
	order      map[string]int
	Categories []Category
	Specials   []SpecialPattern
	Precedence []PrecedenceRule
	People     []string
	Projects   []string
	Version    int
}

// New compiles a document into a catalog. Category order is the sorted
// id order, which makes tie-breaking deterministic for map-based
// documents.
func New(doc Document) (*Catalog, error) {
	ids := make([]string, 0, len(doc.Categories))
	for id := range doc.Categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cats := make([]Category, 0, len(ids))
	for _, id := range ids {
		c := doc.Categories[id]
		c.ID = id
		cats = append(cats, c)
	}

	return newFromSlice(doc, cats)
}

func newFromSlice(doc Document, cats []Category) (*Catalog, error) {
	c := &Catalog{
		Categories: cats,
		Specials:   doc.SpecialPatterns,
		Precedence: doc.Precedence,
		People:     doc.People,
		Projects:   doc.Projects,
		Version:    doc.Version,
		compiled:   make(map[string][]*regexp.Regexp),
		order:      make(map[string]int, len(cats)),
	}

	for i, cat := range c.Categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category at position %d has no id", i)
		}
		if _, dup := c.order[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		c.order[cat.ID] = i

		for _, p := range cat.Patterns {
			expr := p
			if !strings.HasPrefix(expr, "(?i)") {
				expr = "(?i)" + expr
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("category %q: bad pattern %q: %w", cat.ID, p, err)
			}
			c.compiled[cat.ID] = append(c.compiled[cat.ID], re)
		}
	}

	for _, sp := range c.Specials {
		if _, ok := c.order[sp.Category]; !ok {
			return nil, fmt.Errorf("special pattern %q targets unknown category %q", sp.Trigger, sp.Category)
		}
	}
	for i, rule := range c.Precedence {
		if _, ok := c.order[rule.Category]; !ok {
			return nil, fmt.Errorf("precedence rule %d targets unknown category %q", i, rule.Category)
		}
	}

	return c, nil
}

// Load reads and compiles a catalog document from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied catalog path
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("catalog %s defines no categories", path)
	}

	return New(doc)
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (*Category, bool) {
	i, ok := c.order[id]
	if !ok {
		return nil, false
	}
	return &c.Categories[i], true
}

// Order returns the declaration index of a category, used for
// deterministic tie-breaking. Unknown categories sort last.
func (c *Catalog) Order(id string) int {
	if i, ok := c.order[id]; ok {
		return i
	}
	return len(c.Categories)
}

// Patterns returns the compiled regex patterns for a category.
func (c *Catalog) Patterns(id string) []*regexp.Regexp {
	return c.compiled[id]
}
