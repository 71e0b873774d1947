// Package age applies age-band effects to freshly rolled attributes: the
// player-distributed penalty deductions and the education improvement checks.
package age

import (
	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
	"github.com/arkham-tools/investigator-api/internal/rules/dice"
)

var (
	improvementCheckSpec = catalog.RollSpec{Count: 1, Sides: 100, Multiplier: 1}
	improvementGainSpec  = catalog.RollSpec{Count: 1, Sides: 10, Multiplier: 1}
)

// Config holds the dependencies for the modifier
type Config struct {
	Generator *dice.Generator
	Bands     []catalog.AgeBand
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if len(c.Bands) == 0 {
		vb.RequiredField("Bands")
	}

	return vb.Build()
}

// Modifier adjusts attributes for the investigator's age.
type Modifier struct {
	generator *dice.Generator
	bands     []catalog.AgeBand
}

// NewModifier creates a modifier with the provided dependencies
func NewModifier(cfg *Config) (*Modifier, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Modifier{generator: cfg.Generator, bands: cfg.Bands}, nil
}

// Apply returns the attributes adjusted for age: penalty deductions from the
// player's allocation, the band's flat APP/EDU losses, and the education
// improvement checks. The deduction totals are NOT verified or clamped here;
// the step validator surfaces mismatches so the player can fix the
// allocation instead of the engine silently repairing it.
func (m *Modifier) Apply(
	attrs coc7e.Attributes,
	investigatorAge int,
	alloc coc7e.AgePenaltyAllocation,
) (coc7e.Attributes, error) {
	band := m.band(investigatorAge)
	if band == nil {
		return attrs, errors.Configurationf("no age band covers age %d", investigatorAge)
	}

	if band.Youth {
		attrs.Strength -= alloc.YouthStrength
		attrs.Size -= alloc.YouthSize
	} else if band.PenaltyTotal > 0 {
		attrs.Strength -= alloc.MatureStrength
		attrs.Constitution -= alloc.MatureConstitution
		attrs.Dexterity -= alloc.MatureDexterity
	}

	attrs.Appearance -= band.AppearanceLoss
	attrs.Education -= band.EducationLoss

	for i := 0; i < band.EducationChecks; i++ {
		improved, err := m.improveEducation(attrs.Education)
		if err != nil {
			return attrs, err
		}
		attrs.Education = improved
	}

	return attrs, nil
}

// improveEducation performs one improvement check: a percentile roll above
// the current value earns a 1D10 gain, capped at 99.
func (m *Modifier) improveEducation(education int) (int, error) {
	check, err := m.generator.Roll(improvementCheckSpec)
	if err != nil {
		return education, errors.Wrap(err, "failed education improvement check")
	}
	if check <= education {
		return education, nil
	}

	gain, err := m.generator.Roll(improvementGainSpec)
	if err != nil {
		return education, errors.Wrap(err, "failed education improvement roll")
	}

	education += gain
	if education > dice.AttributeMax {
		education = dice.AttributeMax
	}
	return education, nil
}

func (m *Modifier) band(investigatorAge int) *catalog.AgeBand {
	for i := range m.bands {
		b := &m.bands[i]
		if investigatorAge >= b.MinAge && investigatorAge <= b.MaxAge {
			return b
		}
	}
	return nil
}
