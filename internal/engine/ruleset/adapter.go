// Package ruleset provides the concrete implementation of the engine
// interface by composing the rules packages over a catalog.
package ruleset

import (
	"context"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/engine"
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
	"github.com/arkham-tools/investigator-api/internal/rules/age"
	"github.com/arkham-tools/investigator-api/internal/rules/derived"
	"github.com/arkham-tools/investigator-api/internal/rules/dice"
	"github.com/arkham-tools/investigator-api/internal/rules/formula"
	"github.com/arkham-tools/investigator-api/internal/rules/skills"
)

// Adapter implements the engine.Engine interface over a rules catalog
type Adapter struct {
	catalog    *catalog.Catalog
	generator  *dice.Generator
	modifier   *age.Modifier
	calculator *derived.Calculator
	resolver   *skills.Resolver
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller rpgdice.Roller
	Catalog    *catalog.Catalog
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	return nil
}

// NewAdapter creates a rules-engine adapter over the provided catalog
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	generator, err := dice.NewGenerator(&dice.Config{Roller: cfg.DiceRoller})
	if err != nil {
		return nil, err
	}

	modifier, err := age.NewModifier(&age.Config{
		Generator: generator,
		Bands:     cfg.Catalog.AgeBands,
	})
	if err != nil {
		return nil, err
	}

	calculator, err := derived.NewCalculator(&derived.Config{
		MoveRules:     cfg.Catalog.MoveRules,
		MovePenalties: cfg.Catalog.MovePenalties,
		BuildRanges:   cfg.Catalog.BuildRanges,
		BuildOverflow: cfg.Catalog.BuildOverflow,
	})
	if err != nil {
		return nil, err
	}

	resolver, err := skills.NewResolver(&skills.Config{
		Skills:           cfg.Catalog.Skills,
		CreationSkillCap: cfg.Catalog.CreationSkillCap,
		AbsoluteSkillCap: cfg.Catalog.AbsoluteSkillCap,
		HardDivisor:      cfg.Catalog.HardDivisor,
		ExtremeDivisor:   cfg.Catalog.ExtremeDivisor,
	})
	if err != nil {
		return nil, err
	}

	return &Adapter{
		catalog:    cfg.Catalog,
		generator:  generator,
		modifier:   modifier,
		calculator: calculator,
		resolver:   resolver,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// RollAttributes rolls every attribute declared by the catalog and returns
// the clamped values alongside the per-attribute audit trails.
func (a *Adapter) RollAttributes(
	_ context.Context,
	_ *engine.RollAttributesInput,
) (*engine.RollAttributesOutput, error) {
	attrs := &coc7e.Attributes{}
	rolls := make([]engine.AttributeRoll, 0, len(a.catalog.AttributeRolls))

	for _, ar := range a.catalog.AttributeRolls {
		detailed, err := a.generator.RollDetailed(ar.Spec)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", ar.Attribute)
		}

		value := detailed.Value
		if value < dice.AttributeMin {
			value = dice.AttributeMin
		}
		if value > dice.AttributeMax {
			value = dice.AttributeMax
		}

		if err := setAttribute(attrs, ar.Attribute, value); err != nil {
			return nil, err
		}
		rolls = append(rolls, engine.AttributeRoll{
			Attribute: ar.Attribute,
			Notation:  detailed.Notation,
			Dice:      detailed.Dice,
			Steps:     detailed.Steps,
			Value:     value,
		})
	}

	return &engine.RollAttributesOutput{Attributes: attrs, Rolls: rolls}, nil
}

// ApplyAgeModifiers returns a copy of the attributes adjusted for age.
func (a *Adapter) ApplyAgeModifiers(
	_ context.Context,
	input *engine.ApplyAgeModifiersInput,
) (*engine.ApplyAgeModifiersOutput, error) {
	if input.Attributes == nil {
		return nil, errors.InvalidArgument("attributes are required")
	}

	adjusted, err := a.modifier.Apply(*input.Attributes, input.Age, input.Allocation)
	if err != nil {
		return nil, err
	}

	return &engine.ApplyAgeModifiersOutput{Attributes: &adjusted}, nil
}

// CalculateDerivedStats computes the derived-stat bundle.
func (a *Adapter) CalculateDerivedStats(
	_ context.Context,
	input *engine.CalculateDerivedStatsInput,
) (*engine.CalculateDerivedStatsOutput, error) {
	stats, err := a.calculator.Stats(input.Attributes, input.Age)
	if err != nil {
		return nil, err
	}

	return &engine.CalculateDerivedStatsOutput{
		HitPoints:   stats.HitPoints,
		MagicPoints: stats.MagicPoints,
		Sanity:      stats.Sanity,
		Move:        stats.Move,
		Build:       stats.Build,
		DamageBonus: stats.DamageBonus,
	}, nil
}

// EvaluateOccupationPoints evaluates the occupation's point formula with the
// supplied choices, maximizing any group left unchosen.
func (a *Adapter) EvaluateOccupationPoints(
	_ context.Context,
	input *engine.EvaluateOccupationPointsInput,
) (*engine.EvaluateOccupationPointsOutput, error) {
	if input.Attributes == nil {
		return nil, errors.InvalidArgument("attributes are required")
	}

	occ := a.catalog.Occupation(input.Occupation)
	if occ == nil {
		return nil, errors.NotFoundf("occupation %q not found", input.Occupation)
	}

	parsed, err := formula.Parse(occ.PointsFormula)
	if err != nil {
		return nil, err
	}

	result, err := parsed.Evaluate(input.Attributes.Table(), input.Choices)
	if err != nil {
		return nil, err
	}

	return &engine.EvaluateOccupationPointsOutput{
		Total:  result.Total,
		Chosen: result.Chosen,
	}, nil
}

// DefaultOccupationChoices produces default choice-group picks for the
// occupation, never defaulting a forbidden skill.
func (a *Adapter) DefaultOccupationChoices(
	_ context.Context,
	input *engine.DefaultOccupationChoicesInput,
) (*engine.DefaultOccupationChoicesOutput, error) {
	occ := a.catalog.Occupation(input.Occupation)
	if occ == nil {
		return nil, errors.NotFoundf("occupation %q not found", input.Occupation)
	}

	return &engine.DefaultOccupationChoicesOutput{
		Choices: a.resolver.DefaultChoices(occ),
	}, nil
}

// ComputeSkillBreakdown returns the per-skill breakdown for both buckets.
func (a *Adapter) ComputeSkillBreakdown(
	_ context.Context,
	input *engine.ComputeSkillBreakdownInput,
) (*engine.ComputeSkillBreakdownOutput, error) {
	breakdown, err := a.resolver.ComputeSkillBreakdown(input.Attributes, input.Allocation)
	if err != nil {
		return nil, err
	}
	return &engine.ComputeSkillBreakdownOutput{Skills: breakdown}, nil
}

// ValidateSkillAllocation checks the point buckets against their budgets.
func (a *Adapter) ValidateSkillAllocation(
	_ context.Context,
	input *engine.ValidateSkillAllocationInput,
) (*engine.ValidateSkillAllocationOutput, error) {
	issues := a.resolver.ValidateAllocation(&skills.AllocationInput{
		OccupationBudget: input.OccupationBudget,
		PersonalBudget:   input.PersonalBudget,
		Occupation:       input.Occupation,
		Personal:         input.Personal,
		CreditRating:     input.CreditRating,
		Attributes:       input.Attributes,
	})
	return &engine.ValidateSkillAllocationOutput{Issues: issues}, nil
}

// Hard is the half-value success threshold.
func (a *Adapter) Hard(value int) int {
	return derived.Hard(value)
}

// Extreme is the fifth-value success threshold.
func (a *Adapter) Extreme(value int) int {
	return derived.Extreme(value)
}

func setAttribute(attrs *coc7e.Attributes, mnemonic string, value int) error {
	switch mnemonic {
	case coc7e.AttrStrength:
		attrs.Strength = value
	case coc7e.AttrConstitution:
		attrs.Constitution = value
	case coc7e.AttrSize:
		attrs.Size = value
	case coc7e.AttrDexterity:
		attrs.Dexterity = value
	case coc7e.AttrAppearance:
		attrs.Appearance = value
	case coc7e.AttrIntelligence:
		attrs.Intelligence = value
	case coc7e.AttrPower:
		attrs.Power = value
	case coc7e.AttrEducation:
		attrs.Education = value
	case coc7e.AttrLuck:
		attrs.Luck = value
	default:
		return errors.Configurationf("catalog declares unknown attribute %q", mnemonic)
	}
	return nil
}
