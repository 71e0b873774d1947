package ruleset

import (
	"context"
	"fmt"
	"sort"

	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/engine"
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
	"github.com/arkham-tools/investigator-api/internal/rules/formula"
	"github.com/arkham-tools/investigator-api/internal/rules/skills"
)

// ValidateStep checks one wizard step of the draft snapshot. Incomplete work
// surfaces as issues, not Go errors; errors are reserved for malformed input
// and broken catalog data.
func (a *Adapter) ValidateStep(
	_ context.Context,
	input *engine.ValidateStepInput,
) (*engine.ValidateStepOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}
	if input.Step < coc7e.StepFirst || input.Step > coc7e.StepLast {
		return nil, errors.InvalidArgumentf("step %d is out of range [%d, %d]",
			input.Step, coc7e.StepFirst, coc7e.StepLast)
	}

	draft := input.Draft
	var issues []coc7e.Issue
	var err error

	switch input.Step {
	case coc7e.StepAge:
		issues, err = a.validateAgeStep(draft)
	case coc7e.StepAttributes:
		issues = validateAttributesStep(draft)
	case coc7e.StepSkills:
		issues, err = a.validateSkillsStep(draft)
	default:
		// Occupation is required from its own step onward. Identity and the
		// later free-form steps carry content the engine does not judge.
		if input.Step >= coc7e.StepOccupation {
			issues = a.validateOccupationStep(draft)
		}
	}
	if err != nil {
		return nil, err
	}

	return &engine.ValidateStepOutput{
		Valid:  !coc7e.HasErrors(issues),
		Issues: issues,
	}, nil
}

// validateAgeStep checks that the penalty allocation distributes exactly the
// points the draft's age band demands.
func (a *Adapter) validateAgeStep(draft *coc7e.Draft) ([]coc7e.Issue, error) {
	band := a.catalog.Band(draft.Age)
	if band == nil {
		return nil, errors.Configurationf("no age band covers age %d", draft.Age)
	}

	var issues []coc7e.Issue
	if band.Youth {
		if got := draft.AgePenalty.YouthTotal(); got != band.PenaltyTotal {
			issues = append(issues, coc7e.Error(coc7e.IssueAgeYouthPenaltyMismatch,
				fmt.Sprintf("age %d requires %d points deducted from strength and size, got %d",
					draft.Age, band.PenaltyTotal, got)))
		}
	} else if band.PenaltyTotal > 0 {
		if got := draft.AgePenalty.MatureTotal(); got != band.PenaltyTotal {
			issues = append(issues, coc7e.Error(coc7e.IssueAgeMaturePenaltyMismatch,
				fmt.Sprintf("age %d requires %d points deducted across strength, constitution, and dexterity, got %d",
					draft.Age, band.PenaltyTotal, got)))
		}
	}
	return issues, nil
}

// validateAttributesStep flags rolled attributes that predate an age change,
// since age effects were baked in at roll time.
func validateAttributesStep(draft *coc7e.Draft) []coc7e.Issue {
	if draft.Mode != coc7e.ModeRolled || draft.Attributes == nil {
		return nil
	}
	if draft.LastRolledAge != draft.Age {
		return []coc7e.Issue{coc7e.Warning(coc7e.IssueAgeRollMismatch,
			fmt.Sprintf("attributes were rolled at age %d but the draft's age is now %d; re-roll to apply the new age",
				draft.LastRolledAge, draft.Age))}
	}
	return nil
}

// validateOccupationStep requires a known occupation selection.
func (a *Adapter) validateOccupationStep(draft *coc7e.Draft) []coc7e.Issue {
	if draft.Occupation == nil || draft.Occupation.Name == "" {
		return []coc7e.Issue{coc7e.Error(coc7e.IssueMissingOccupation,
			"an occupation must be selected before this step")}
	}
	if a.catalog.Occupation(draft.Occupation.Name) == nil {
		return []coc7e.Issue{coc7e.Error(coc7e.IssueMissingOccupation,
			fmt.Sprintf("occupation %q is not in the catalog", draft.Occupation.Name))}
	}
	return nil
}

// validateSkillsStep checks every occupation-bucket skill against the
// selection's allowance and then runs the full allocation validation with the
// budgets the draft implies.
func (a *Adapter) validateSkillsStep(draft *coc7e.Draft) ([]coc7e.Issue, error) {
	issues := a.validateOccupationStep(draft)
	if coc7e.HasErrors(issues) {
		return issues, nil
	}
	occ := a.catalog.Occupation(draft.Occupation.Name)

	for _, name := range sortedKeys(draft.Skills.Occupation) {
		if draft.Skills.Occupation[name] <= 0 || a.resolver.IsReserved(name) {
			continue
		}
		if !a.resolver.IsAllowed(occ, draft.Occupation, name) {
			issues = append(issues, coc7e.Error(coc7e.IssueInvalidOccupationSkill,
				fmt.Sprintf("%s is not an occupation skill for %s", name, occ.Name)))
		}
	}

	// The budget comparisons need the attribute table (formula evaluation for
	// the occupation bucket, INT for the personal one); the forbidden and
	// ceiling checks do not, so they run regardless.
	if draft.Attributes == nil {
		spent := a.resolver.ValidateSpentSkills(draft.Skills.Occupation, draft.Skills.Personal)
		return append(issues, spent...), nil
	}

	occupationBudget, err := a.occupationBudget(occ, draft)
	if err != nil {
		return nil, err
	}
	personalBudget := draft.Attributes.Intelligence * a.catalog.PersonalPointsFactor

	allocationIssues := a.resolver.ValidateAllocation(&skills.AllocationInput{
		OccupationBudget: occupationBudget,
		PersonalBudget:   personalBudget,
		Occupation:       draft.Skills.Occupation,
		Personal:         draft.Skills.Personal,
		CreditRating:     draft.Occupation.CreditRating,
		Attributes:       draft.Attributes,
	})
	return append(issues, allocationIssues...), nil
}

// occupationBudget evaluates the occupation's point formula with the draft's
// formula choices, maximizing any group left unchosen.
func (a *Adapter) occupationBudget(occ *catalog.Occupation, draft *coc7e.Draft) (int, error) {
	parsed, err := formula.Parse(occ.PointsFormula)
	if err != nil {
		return 0, err
	}
	result, err := parsed.Evaluate(draft.Attributes.Table(), draft.Occupation.FormulaChoices)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
