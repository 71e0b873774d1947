package engine

import (
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
)

// AttributeRoll is the audit trail for one generated attribute.
type AttributeRoll struct {
	Attribute string
	Notation  string
	Dice      []int
	Steps     []string
	Value     int
}

// RollAttributesInput requests a fresh attribute set. Age is recorded by the
// caller as the draft's last-rolled age; the engine does not apply age
// effects here.
type RollAttributesInput struct{}

// RollAttributesOutput contains the rolled attributes and per-attribute
// audit trails, in catalog declaration order.
type RollAttributesOutput struct {
	Attributes *coc7e.Attributes
	Rolls      []AttributeRoll
}

// ApplyAgeModifiersInput contains raw attributes plus the age context
type ApplyAgeModifiersInput struct {
	Attributes *coc7e.Attributes
	Age        int
	Allocation coc7e.AgePenaltyAllocation
}

// ApplyAgeModifiersOutput contains the age-adjusted attributes
type ApplyAgeModifiersOutput struct {
	Attributes *coc7e.Attributes
}

// CalculateDerivedStatsInput contains final attributes plus age
type CalculateDerivedStatsInput struct {
	Attributes *coc7e.Attributes
	Age        int
}

// CalculateDerivedStatsOutput contains the derived-stat bundle
type CalculateDerivedStatsOutput struct {
	HitPoints   int
	MagicPoints int
	Sanity      int
	Move        int
	Build       int
	DamageBonus string
}

// EvaluateOccupationPointsInput evaluates an occupation's point formula.
// Choices maps formula group index to an alternative identifier; groups left
// out resolve to their best alternative.
type EvaluateOccupationPointsInput struct {
	Occupation string
	Attributes *coc7e.Attributes
	Choices    map[int]string
}

// EvaluateOccupationPointsOutput contains the evaluated total and the
// alternative used for every group, fallback picks included.
type EvaluateOccupationPointsOutput struct {
	Total  int
	Chosen map[int]string
}

// DefaultOccupationChoicesInput requests default choice-group picks
type DefaultOccupationChoicesInput struct {
	Occupation string
}

// DefaultOccupationChoicesOutput maps each group label to its default picks
type DefaultOccupationChoicesOutput struct {
	Choices map[string][]string
}

// ComputeSkillBreakdownInput contains attributes and both point buckets
type ComputeSkillBreakdownInput struct {
	Attributes *coc7e.Attributes
	Allocation coc7e.SkillAllocation
}

// ComputeSkillBreakdownOutput maps canonical skill names to breakdowns
type ComputeSkillBreakdownOutput struct {
	Skills map[string]coc7e.ComputedSkill
}

// ValidateSkillAllocationInput mirrors the skill validator's contract.
// Attributes are optional; without them the creation-cap check is skipped.
type ValidateSkillAllocationInput struct {
	OccupationBudget int
	PersonalBudget   int
	Occupation       map[string]int
	Personal         map[string]int
	CreditRating     int
	Attributes       *coc7e.Attributes
}

// ValidateSkillAllocationOutput contains ordered allocation issues
type ValidateSkillAllocationOutput struct {
	Issues []coc7e.Issue
}

// ValidateStepInput names a wizard step and the full draft snapshot
type ValidateStepInput struct {
	Step  int
	Draft *coc7e.Draft
}

// ValidateStepOutput contains the step's ordered issues. Valid is false when
// any issue carries error severity; callers block forward navigation on it.
type ValidateStepOutput struct {
	Valid  bool
	Issues []coc7e.Issue
}
