package ruleset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/engine"
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
)

// fixedRoller lands every die on the same face.
type fixedRoller struct {
	face int
}

func (r *fixedRoller) Roll(_ int) (int, error) { return r.face, nil }

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.face
	}
	return faces, nil
}

func newTestAdapter(t *testing.T, face int) *Adapter {
	t.Helper()
	adapter, err := NewAdapter(&AdapterConfig{
		DiceRoller: &fixedRoller{face: face},
		Catalog:    catalog.Default(),
	})
	require.NoError(t, err)
	return adapter
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{Catalog: catalog.Default()})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("missing catalog", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &fixedRoller{face: 1}})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "catalog is required")
	})

	t.Run("valid config", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{
			DiceRoller: &fixedRoller{face: 1},
			Catalog:    catalog.Default(),
		})
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})
}

func TestRollAttributes(t *testing.T) {
	adapter := newTestAdapter(t, 3)

	output, err := adapter.RollAttributes(context.Background(), &engine.RollAttributesInput{})
	require.NoError(t, err)

	// Every die lands on 3: 3d6x5 = 45, (2d6+6)x5 = 60.
	assert.Equal(t, 45, output.Attributes.Strength)
	assert.Equal(t, 45, output.Attributes.Constitution)
	assert.Equal(t, 60, output.Attributes.Size)
	assert.Equal(t, 45, output.Attributes.Dexterity)
	assert.Equal(t, 45, output.Attributes.Appearance)
	assert.Equal(t, 60, output.Attributes.Intelligence)
	assert.Equal(t, 45, output.Attributes.Power)
	assert.Equal(t, 60, output.Attributes.Education)
	assert.Equal(t, 45, output.Attributes.Luck)

	require.Len(t, output.Rolls, 9)
	assert.Equal(t, coc7e.AttrStrength, output.Rolls[0].Attribute)
	assert.Equal(t, "3D6x5", output.Rolls[0].Notation)
	assert.Equal(t, []int{3, 3, 3}, output.Rolls[0].Dice)
	assert.Equal(t, 45, output.Rolls[0].Value)
	assert.NotEmpty(t, output.Rolls[0].Steps)
	assert.Equal(t, coc7e.AttrSize, output.Rolls[2].Attribute)
	assert.Equal(t, "2D6+6x5", output.Rolls[2].Notation)
	assert.Equal(t, 60, output.Rolls[2].Value)
}

func TestApplyAgeModifiers(t *testing.T) {
	adapter := newTestAdapter(t, 3)

	t.Run("requires attributes", func(t *testing.T) {
		_, err := adapter.ApplyAgeModifiers(context.Background(), &engine.ApplyAgeModifiersInput{
			Age: 30,
		})
		assert.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("adult band leaves attributes intact on a failed check", func(t *testing.T) {
		input := &engine.ApplyAgeModifiersInput{
			Attributes: &coc7e.Attributes{Strength: 50, Education: 60},
			Age:        30,
		}

		output, err := adapter.ApplyAgeModifiers(context.Background(), input)
		require.NoError(t, err)

		// The improvement check rolls 3, which does not beat EDU 60.
		assert.Equal(t, 50, output.Attributes.Strength)
		assert.Equal(t, 60, output.Attributes.Education)
		// The input draft is never mutated.
		assert.Equal(t, 60, input.Attributes.Education)
	})

	t.Run("youth band applies the allocation and education loss", func(t *testing.T) {
		output, err := adapter.ApplyAgeModifiers(context.Background(), &engine.ApplyAgeModifiersInput{
			Attributes: &coc7e.Attributes{Strength: 50, Size: 60, Education: 60},
			Age:        17,
			Allocation: coc7e.AgePenaltyAllocation{YouthStrength: 2, YouthSize: 3},
		})
		require.NoError(t, err)

		assert.Equal(t, 48, output.Attributes.Strength)
		assert.Equal(t, 57, output.Attributes.Size)
		assert.Equal(t, 55, output.Attributes.Education)
	})
}

func TestCalculateDerivedStats(t *testing.T) {
	adapter := newTestAdapter(t, 3)

	output, err := adapter.CalculateDerivedStats(context.Background(), &engine.CalculateDerivedStatsInput{
		Attributes: &coc7e.Attributes{
			Strength: 50, Constitution: 50, Size: 50, Dexterity: 50, Power: 50,
		},
		Age: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, output.HitPoints)
	assert.Equal(t, 10, output.MagicPoints)
	assert.Equal(t, 50, output.Sanity)
	assert.Equal(t, 8, output.Move)
	assert.Equal(t, 0, output.Build)
	assert.Equal(t, "0", output.DamageBonus)
}

func TestEvaluateOccupationPoints(t *testing.T) {
	adapter := newTestAdapter(t, 3)
	attrs := &coc7e.Attributes{Education: 80, Dexterity: 70, Strength: 60}

	t.Run("maximizes unchosen groups", func(t *testing.T) {
		output, err := adapter.EvaluateOccupationPoints(context.Background(),
			&engine.EvaluateOccupationPointsInput{
				Occupation: "Private Investigator",
				Attributes: attrs,
			})
		require.NoError(t, err)

		// EDU x2 + (DES x2 o FUE x2): 160 + max(140, 120).
		assert.Equal(t, 300, output.Total)
		assert.Equal(t, map[int]string{0: "DESx2"}, output.Chosen)
	})

	t.Run("honors an explicit choice", func(t *testing.T) {
		output, err := adapter.EvaluateOccupationPoints(context.Background(),
			&engine.EvaluateOccupationPointsInput{
				Occupation: "Private Investigator",
				Attributes: attrs,
				Choices:    map[int]string{0: "FUEx2"},
			})
		require.NoError(t, err)

		assert.Equal(t, 280, output.Total)
		assert.Equal(t, map[int]string{0: "FUEx2"}, output.Chosen)
	})

	t.Run("unknown occupation", func(t *testing.T) {
		_, err := adapter.EvaluateOccupationPoints(context.Background(),
			&engine.EvaluateOccupationPointsInput{
				Occupation: "Lighthouse Keeper",
				Attributes: attrs,
			})
		assert.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("requires attributes", func(t *testing.T) {
		_, err := adapter.EvaluateOccupationPoints(context.Background(),
			&engine.EvaluateOccupationPointsInput{Occupation: "Private Investigator"})
		assert.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestDefaultOccupationChoices(t *testing.T) {
	adapter := newTestAdapter(t, 3)

	output, err := adapter.DefaultOccupationChoices(context.Background(),
		&engine.DefaultOccupationChoicesInput{Occupation: "Private Investigator"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Charm"}, output.Choices["social"])
	assert.Equal(t, []string{"Fighting"}, output.Choices["trade"])

	_, err = adapter.DefaultOccupationChoices(context.Background(),
		&engine.DefaultOccupationChoicesInput{Occupation: "Lighthouse Keeper"})
	assert.True(t, errors.IsNotFound(err))
}

func TestComputeSkillBreakdown(t *testing.T) {
	adapter := newTestAdapter(t, 3)

	output, err := adapter.ComputeSkillBreakdown(context.Background(),
		&engine.ComputeSkillBreakdownInput{
			Attributes: &coc7e.Attributes{Dexterity: 60},
			Allocation: coc7e.SkillAllocation{
				Occupation: map[string]int{"Library Use": 40},
			},
		})
	require.NoError(t, err)

	skill := output.Skills["Library Use"]
	assert.Equal(t, 20, skill.Base)
	assert.Equal(t, 60, skill.Total)
	assert.Equal(t, 30, skill.Hard)
	assert.Equal(t, 12, skill.Extreme)
}

func TestValidateSkillAllocation(t *testing.T) {
	adapter := newTestAdapter(t, 3)

	output, err := adapter.ValidateSkillAllocation(context.Background(),
		&engine.ValidateSkillAllocationInput{
			OccupationBudget: 100,
			PersonalBudget:   40,
			Occupation:       map[string]int{"Library Use": 120},
			Personal:         map[string]int{"Ride": 40},
			Attributes:       &coc7e.Attributes{},
		})
	require.NoError(t, err)

	codes := issueCodes(output.Issues)
	assert.Contains(t, codes, coc7e.IssueOccupationPointsExceeded)
	assert.NotContains(t, codes, coc7e.IssuePersonalPointsExceeded)
	assert.True(t, coc7e.HasErrors(output.Issues))
}

func TestHardExtreme(t *testing.T) {
	adapter := newTestAdapter(t, 3)

	assert.Equal(t, 37, adapter.Hard(75))
	assert.Equal(t, 15, adapter.Extreme(75))
	assert.Equal(t, 0, adapter.Hard(1))
}

func issueCodes(issues []coc7e.Issue) []string {
	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	return codes
}
