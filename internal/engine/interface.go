// Package engine defines the rules-engine boundary consumed by UI and export
// collaborators. Every operation is pure: it reads the draft snapshot and
// catalog handed to the adapter and returns computed values or ordered
// issues, never mutating its inputs.
package engine

import (
	"context"
)

// Engine provides the character-creation rules calculations
type Engine interface {
	// Attribute generation and age adjustment
	RollAttributes(ctx context.Context, input *RollAttributesInput) (*RollAttributesOutput, error)
	ApplyAgeModifiers(ctx context.Context, input *ApplyAgeModifiersInput) (*ApplyAgeModifiersOutput, error)

	// Derived statistics
	CalculateDerivedStats(
		ctx context.Context,
		input *CalculateDerivedStatsInput,
	) (*CalculateDerivedStatsOutput, error)

	// Occupation point formulas and choice groups
	EvaluateOccupationPoints(
		ctx context.Context,
		input *EvaluateOccupationPointsInput,
	) (*EvaluateOccupationPointsOutput, error)
	DefaultOccupationChoices(
		ctx context.Context,
		input *DefaultOccupationChoicesInput,
	) (*DefaultOccupationChoicesOutput, error)

	// Skill allocation
	ComputeSkillBreakdown(
		ctx context.Context,
		input *ComputeSkillBreakdownInput,
	) (*ComputeSkillBreakdownOutput, error)
	ValidateSkillAllocation(
		ctx context.Context,
		input *ValidateSkillAllocationInput,
	) (*ValidateSkillAllocationOutput, error)

	// Wizard step validation
	ValidateStep(ctx context.Context, input *ValidateStepInput) (*ValidateStepOutput, error)

	// Utility methods
	Hard(value int) int
	Extreme(value int) int
}
