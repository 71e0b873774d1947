package skills

import (
	"fmt"
	"sort"

	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
)

// ComputeSkillBreakdown returns the {base, hard, extreme, total} breakdown
// for every skill appearing in either allocation bucket, keyed by canonical
// name. Aliased spellings in the two buckets merge onto one entry.
func (r *Resolver) ComputeSkillBreakdown(
	attrs *coc7e.Attributes,
	alloc coc7e.SkillAllocation,
) (map[string]coc7e.ComputedSkill, error) {
	points := make(map[string]int)
	for _, bucket := range []map[string]int{alloc.Occupation, alloc.Personal} {
		for name, allocated := range bucket {
			canonical, ok := r.Canonical(name)
			if !ok {
				return nil, errors.Configurationf("unknown skill %q in allocation", name)
			}
			points[canonical] += allocated
		}
	}

	breakdown := make(map[string]coc7e.ComputedSkill, len(points))
	for canonical, allocated := range points {
		base, err := r.BaseValue(canonical, attrs)
		if err != nil {
			return nil, err
		}
		total := base + allocated
		breakdown[canonical] = coc7e.ComputedSkill{
			Base:    base,
			Hard:    total / r.cfg.HardDivisor,
			Extreme: total / r.cfg.ExtremeDivisor,
			Total:   total,
		}
	}
	return breakdown, nil
}

// AllocationInput carries everything ValidateAllocation needs. Attributes
// are optional: without them the creation-cap check is skipped because skill
// bases cannot be computed.
type AllocationInput struct {
	OccupationBudget int
	PersonalBudget   int
	Occupation       map[string]int
	Personal         map[string]int
	CreditRating     int
	Attributes       *coc7e.Attributes
}

// ValidateAllocation checks both point buckets against their budgets and the
// per-skill ceilings, returning ordered issues. The credit-rating
// pseudo-skill is excluded from every sum and from the forbidden check.
func (r *Resolver) ValidateAllocation(in *AllocationInput) []coc7e.Issue {
	var issues []coc7e.Issue

	issues = append(issues, r.forbiddenIssues(in.Occupation)...)
	issues = append(issues, r.forbiddenIssues(in.Personal)...)

	occupationBudget := in.OccupationBudget - in.CreditRating
	occupationSpent := r.spendableSum(in.Occupation)
	switch {
	case occupationSpent > occupationBudget:
		issues = append(issues, coc7e.Error(coc7e.IssueOccupationPointsExceeded,
			fmt.Sprintf("occupation skill points spent (%d) exceed the budget of %d",
				occupationSpent, occupationBudget)))
	case occupationSpent < occupationBudget:
		issues = append(issues, coc7e.Warning(coc7e.IssueOccupationPointsPending,
			fmt.Sprintf("%d occupation skill points remain to be spent",
				occupationBudget-occupationSpent)))
	}

	personalSpent := r.spendableSum(in.Personal)
	switch {
	case personalSpent > in.PersonalBudget:
		issues = append(issues, coc7e.Error(coc7e.IssuePersonalPointsExceeded,
			fmt.Sprintf("personal interest points spent (%d) exceed the budget of %d",
				personalSpent, in.PersonalBudget)))
	case personalSpent < in.PersonalBudget:
		issues = append(issues, coc7e.Warning(coc7e.IssuePersonalPointsPending,
			fmt.Sprintf("%d personal interest points remain to be spent",
				in.PersonalBudget-personalSpent)))
	}

	issues = append(issues, r.capIssues(in)...)
	return issues
}

// ValidateSpentSkills returns only the attribute-independent findings for
// both buckets: forbidden skills holding points and per-skill ceilings.
// Budget comparisons need budgets the caller may not be able to compute yet;
// these checks never do.
func (r *Resolver) ValidateSpentSkills(occupation, personal map[string]int) []coc7e.Issue {
	var issues []coc7e.Issue
	issues = append(issues, r.forbiddenIssues(occupation)...)
	issues = append(issues, r.forbiddenIssues(personal)...)
	issues = append(issues, r.capIssues(&AllocationInput{
		Occupation: occupation,
		Personal:   personal,
	})...)
	return issues
}

// forbiddenIssues flags non-allocatable skills holding points in a bucket.
func (r *Resolver) forbiddenIssues(bucket map[string]int) []coc7e.Issue {
	var issues []coc7e.Issue
	for _, name := range sortedKeys(bucket) {
		if bucket[name] <= 0 || r.IsReserved(name) {
			continue
		}
		if r.IsForbidden(name) {
			canonical, _ := r.Canonical(name)
			issues = append(issues, coc7e.Error(coc7e.IssueForbiddenSkill,
				fmt.Sprintf("%s cannot receive points during creation", canonical)))
		}
	}
	return issues
}

// capIssues flags skills whose computed total breaks the creation-time or
// absolute ceiling. Without attributes the base is unknowable, so only the
// allocated points are held against the absolute ceiling.
func (r *Resolver) capIssues(in *AllocationInput) []coc7e.Issue {
	totals := make(map[string]int)
	for _, bucket := range []map[string]int{in.Occupation, in.Personal} {
		for name, allocated := range bucket {
			if r.IsReserved(name) {
				continue
			}
			canonical, ok := r.Canonical(name)
			if !ok {
				canonical = name
			}
			totals[canonical] += allocated
		}
	}

	var issues []coc7e.Issue
	for _, name := range sortedKeys(totals) {
		total := totals[name]
		if in.Attributes != nil {
			base, err := r.BaseValue(name, in.Attributes)
			if err == nil {
				total += base
			}
			if total > r.cfg.CreationSkillCap && total <= r.cfg.AbsoluteSkillCap {
				issues = append(issues, coc7e.Error(coc7e.IssueSkillCreationCapExceeded,
					fmt.Sprintf("%s total %d exceeds the creation ceiling of %d",
						name, total, r.cfg.CreationSkillCap)))
			}
		}
		if total > r.cfg.AbsoluteSkillCap {
			issues = append(issues, coc7e.Error(coc7e.IssueSkillAbsoluteCapExceeded,
				fmt.Sprintf("%s total %d exceeds the absolute ceiling of %d",
					name, total, r.cfg.AbsoluteSkillCap)))
		}
	}
	return issues
}

// spendableSum totals a bucket excluding the credit-rating pseudo-skill.
func (r *Resolver) spendableSum(bucket map[string]int) int {
	sum := 0
	for name, points := range bucket {
		if r.IsReserved(name) {
			continue
		}
		sum += points
	}
	return sum
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
