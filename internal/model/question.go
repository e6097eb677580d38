package model

import "time"

// UncertaintyType classifies why confidence is low, selecting which
// question template applies.
type UncertaintyType string

// Uncertainty type constants, in planner decision order.
const (
	UncertaintyPersonIdentification UncertaintyType = "person_identification"
	UncertaintyBusinessVsCreative   UncertaintyType = "business_vs_creative"
	UncertaintyEntertainment        UncertaintyType = "entertainment_specific"
	UncertaintyCategoryConflict     UncertaintyType = "category_conflict"
)

// Patch is one explicit mutation a chosen answer applies to a Result.
// The set of kinds is closed: SetCategory, SetSubcategory,
// SetPrimaryPerson and AddConfidence.
type Patch interface {
	isPatch()
}

// SetCategory replaces the result category.
type SetCategory struct {
	Category string
}

func (SetCategory) isPatch() {}

// SetSubcategory replaces the result subcategory.
type SetSubcategory struct {
	Subcategory string
}

func (SetSubcategory) isPatch() {}

// SetPrimaryPerson sets the person the file belongs to.
type SetPrimaryPerson struct {
	Person string
}

func (SetPrimaryPerson) isPatch() {}

// AddConfidence adds a confidence delta, clamped by Apply.
type AddConfidence struct {
	Delta float64
}

func (AddConfidence) isPatch() {}

// Impact is the ordered list of patches an option carries.
type Impact []Patch

// Apply mutates the result with every patch in the impact.
func (r *Result) Apply(impact Impact) {
	for _, p := range impact {
		switch patch := p.(type) {
		case SetCategory:
			r.Category = patch.Category
		case SetSubcategory:
			r.Subcategory = patch.Subcategory
		case SetPrimaryPerson:
			r.PrimaryPerson = patch.Person
		case AddConfidence:
			r.AddConfidence(patch.Delta)
		}
	}
}

// Option is one selectable answer to a disambiguation question.
type Option struct {
	Label  string
	Impact Impact
}

// Question is a bounded multiple-choice prompt generated when confidence
// is below the target threshold. Ephemeral: created and consumed within
// one interaction round.
type Question struct {
	Type      UncertaintyType
	Text      string
	Reasoning string
	Options   []Option
}

// Answer records the operator's choice for one question.
type Answer struct {
	AnsweredAt  time.Time
	ID          string
	OptionIndex int
}
