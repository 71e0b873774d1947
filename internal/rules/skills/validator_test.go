package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
)

func issueCodes(issues []coc7e.Issue) []string {
	codes := make([]string, len(issues))
	for i, issue := range issues {
		codes[i] = issue.Code
	}
	return codes
}

func TestComputeSkillBreakdown(t *testing.T) {
	r := newTestResolver(t)
	attrs := &coc7e.Attributes{Dexterity: 50, Education: 70}

	breakdown, err := r.ComputeSkillBreakdown(attrs, coc7e.SkillAllocation{
		Occupation: map[string]int{"Drive Automobile (or truck)": 10},
		Personal:   map[string]int{"Dodge": 15},
	})
	require.NoError(t, err)

	drive, ok := breakdown["Drive Auto"]
	require.True(t, ok, "aliased entry resolves to the canonical skill")
	assert.Equal(t, coc7e.ComputedSkill{Base: 20, Hard: 15, Extreme: 6, Total: 30}, drive)

	dodge, ok := breakdown["Dodge"]
	require.True(t, ok)
	assert.Equal(t, coc7e.ComputedSkill{Base: 25, Hard: 20, Extreme: 8, Total: 40}, dodge)
}

func TestComputeSkillBreakdown_MergesBuckets(t *testing.T) {
	r := newTestResolver(t)
	attrs := &coc7e.Attributes{}

	breakdown, err := r.ComputeSkillBreakdown(attrs, coc7e.SkillAllocation{
		Occupation: map[string]int{"Psychology": 30},
		Personal:   map[string]int{"psychology": 20},
	})
	require.NoError(t, err)

	psi := breakdown["Psychology"]
	assert.Equal(t, 60, psi.Total, "base 10 + 30 + 20")
}

func TestComputeSkillBreakdown_UnknownSkill(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.ComputeSkillBreakdown(&coc7e.Attributes{}, coc7e.SkillAllocation{
		Occupation: map[string]int{"Basket Weaving": 10},
	})
	require.Error(t, err)
}

func TestValidateAllocation_ForbiddenSkill(t *testing.T) {
	r := newTestResolver(t)

	issues := r.ValidateAllocation(&AllocationInput{
		OccupationBudget: 100,
		PersonalBudget:   100,
		Occupation:       map[string]int{"Psychology": 10},
		Personal:         map[string]int{"Mythos": 10},
	})

	assert.Contains(t, issueCodes(issues), coc7e.IssueForbiddenSkill)
}

func TestValidateAllocation_CreditExcludedFromSums(t *testing.T) {
	r := newTestResolver(t)

	issues := r.ValidateAllocation(&AllocationInput{
		OccupationBudget: 120,
		PersonalBudget:   100,
		Occupation:       map[string]int{"Credit": 50, "Psychology": 10},
		Personal:         map[string]int{"Credit": 90, "History": 20},
		CreditRating:     70,
	})

	codes := issueCodes(issues)
	assert.NotContains(t, codes, coc7e.IssueOccupationPointsExceeded)
	assert.NotContains(t, codes, coc7e.IssuePersonalPointsExceeded)
	// 10 of 50 occupation points and 20 of 100 personal points spent.
	assert.Contains(t, codes, coc7e.IssueOccupationPointsPending)
	assert.Contains(t, codes, coc7e.IssuePersonalPointsPending)
}

func TestValidateAllocation_Budgets(t *testing.T) {
	r := newTestResolver(t)

	t.Run("exceeded", func(t *testing.T) {
		issues := r.ValidateAllocation(&AllocationInput{
			OccupationBudget: 40,
			PersonalBudget:   20,
			Occupation:       map[string]int{"Psychology": 30, "History": 25},
			Personal:         map[string]int{"Swim": 25},
			CreditRating:     10,
		})

		codes := issueCodes(issues)
		assert.Contains(t, codes, coc7e.IssueOccupationPointsExceeded)
		assert.Contains(t, codes, coc7e.IssuePersonalPointsExceeded)
	})

	t.Run("exactly spent", func(t *testing.T) {
		issues := r.ValidateAllocation(&AllocationInput{
			OccupationBudget: 40,
			PersonalBudget:   25,
			Occupation:       map[string]int{"Psychology": 30},
			Personal:         map[string]int{"Swim": 25},
			CreditRating:     10,
		})

		assert.Empty(t, issueCodes(issues))
	})

	t.Run("exceeded carries error severity", func(t *testing.T) {
		issues := r.ValidateAllocation(&AllocationInput{
			OccupationBudget: 10,
			Occupation:       map[string]int{"Psychology": 30},
		})

		require.NotEmpty(t, issues)
		assert.Equal(t, coc7e.SeverityError, issues[0].Severity)
	})
}

func TestValidateAllocation_Caps(t *testing.T) {
	r := newTestResolver(t)
	attrs := &coc7e.Attributes{Dexterity: 50, Education: 70}

	t.Run("creation cap needs attributes", func(t *testing.T) {
		in := &AllocationInput{
			OccupationBudget: 100,
			PersonalBudget:   0,
			// Base 25 + 60 = 85, above the creation ceiling of 75.
			Occupation: map[string]int{"Spot Hidden": 60},
			Attributes: attrs,
		}

		assert.Contains(t, issueCodes(r.ValidateAllocation(in)), coc7e.IssueSkillCreationCapExceeded)

		in.Attributes = nil
		assert.NotContains(t, issueCodes(r.ValidateAllocation(in)), coc7e.IssueSkillCreationCapExceeded)
	})

	t.Run("absolute cap independent of attributes", func(t *testing.T) {
		issues := r.ValidateAllocation(&AllocationInput{
			OccupationBudget: 200,
			PersonalBudget:   0,
			Occupation:       map[string]int{"Psychology": 70},
			Personal:         map[string]int{"Psychology": 40},
		})

		assert.Contains(t, issueCodes(issues), coc7e.IssueSkillAbsoluteCapExceeded)
	})
}

func TestValidateSpentSkills(t *testing.T) {
	r := newTestResolver(t)

	issues := r.ValidateSpentSkills(
		map[string]int{"Spot Hidden": 120},
		map[string]int{"Mythos": 10},
	)

	codes := issueCodes(issues)
	assert.Contains(t, codes, coc7e.IssueForbiddenSkill)
	assert.Contains(t, codes, coc7e.IssueSkillAbsoluteCapExceeded)
	// No budgets are supplied, so no budget findings can appear.
	assert.NotContains(t, codes, coc7e.IssueOccupationPointsExceeded)
	assert.NotContains(t, codes, coc7e.IssueOccupationPointsPending)
	assert.NotContains(t, codes, coc7e.IssuePersonalPointsPending)
}
