// Package skills resolves skill names against the catalog (aliases, generic
// specialization expansion, innate base values, occupation allowances) and
// validates creation-time point allocation.
package skills

import (
	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
)

// Config holds the catalog data the resolver reads
type Config struct {
	Skills []catalog.Skill
	// CreationSkillCap is the soft per-skill ceiling during creation;
	// AbsoluteSkillCap is the hard ceiling.
	CreationSkillCap int
	AbsoluteSkillCap int
	// HardDivisor and ExtremeDivisor derive the secondary thresholds of a
	// skill breakdown.
	HardDivisor    int
	ExtremeDivisor int
}

// Validate ensures all required catalog data is provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Skills) == 0 {
		vb.RequiredField("Skills")
	}
	if c.CreationSkillCap <= 0 {
		vb.RequiredField("CreationSkillCap")
	}
	if c.AbsoluteSkillCap <= 0 {
		vb.RequiredField("AbsoluteSkillCap")
	}
	if c.HardDivisor <= 0 {
		vb.RequiredField("HardDivisor")
	}
	if c.ExtremeDivisor <= 0 {
		vb.RequiredField("ExtremeDivisor")
	}

	return vb.Build()
}

// Resolver answers skill-name questions against an immutable catalog.
type Resolver struct {
	cfg   Config
	index map[string]*catalog.Skill
}

// NewResolver creates a resolver over the provided catalog skills
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &Resolver{cfg: *cfg, index: make(map[string]*catalog.Skill)}
	for i := range cfg.Skills {
		skill := &cfg.Skills[i]
		for _, name := range append([]string{skill.Name}, skill.Aliases...) {
			key := Normalize(name)
			if existing, ok := r.index[key]; ok && existing != skill {
				return nil, errors.Configurationf(
					"skill name %q resolves to both %q and %q", name, existing.Name, skill.Name)
			}
			r.index[key] = skill
		}
	}

	return r, nil
}

// Lookup resolves a skill name or alias to its catalog entry.
func (r *Resolver) Lookup(name string) (*catalog.Skill, bool) {
	skill, ok := r.index[Normalize(name)]
	return skill, ok
}

// Canonical returns the catalog name for any spelling of a skill.
func (r *Resolver) Canonical(name string) (string, bool) {
	skill, ok := r.Lookup(name)
	if !ok {
		return "", false
	}
	return skill.Name, true
}

// IsGeneric reports whether the name is an expandable placeholder.
func (r *Resolver) IsGeneric(name string) bool {
	skill, ok := r.Lookup(name)
	return ok && len(skill.Specializations) > 0
}

// Expand returns the concrete allocation targets for a name: the declared
// specializations for a generic placeholder, otherwise the canonical name
// itself. The placeholder never appears in its own expansion.
func (r *Resolver) Expand(name string) []string {
	skill, ok := r.Lookup(name)
	if !ok {
		return nil
	}
	if len(skill.Specializations) > 0 {
		out := make([]string, len(skill.Specializations))
		copy(out, skill.Specializations)
		return out
	}
	return []string{skill.Name}
}

// BaseValue computes a skill's innate starting score: a fixed constant or an
// attribute fraction, per the catalog entry.
func (r *Resolver) BaseValue(name string, attrs *coc7e.Attributes) (int, error) {
	skill, ok := r.Lookup(name)
	if !ok {
		return 0, errors.Configurationf("unknown skill %q", name)
	}

	if skill.BaseAttribute == "" {
		return skill.Base, nil
	}

	if attrs == nil {
		return 0, errors.InvalidArgumentf(
			"skill %q has an attribute-derived base and requires attributes", skill.Name)
	}
	value, ok := attrs.Table()[skill.BaseAttribute]
	if !ok {
		return 0, errors.Configurationf(
			"skill %q derives its base from unknown attribute %q", skill.Name, skill.BaseAttribute)
	}
	if skill.BaseDivisor > 1 {
		return value / skill.BaseDivisor, nil
	}
	return value, nil
}

// IsForbidden reports whether the skill can never receive creation points.
// The credit-rating pseudo-skill is not forbidden; it is governed by the
// occupation's credit range instead.
func (r *Resolver) IsForbidden(name string) bool {
	skill, ok := r.Lookup(name)
	return ok && skill.Forbidden
}

// IsReserved reports whether the name is the credit-rating pseudo-skill,
// which is tracked in allocation maps but excluded from budget sums.
func (r *Resolver) IsReserved(name string) bool {
	canonical, ok := r.Canonical(name)
	return ok && canonical == coc7e.ReservedCreditRating
}

// IsAllowed reports whether a skill may receive occupation points under the
// given selection: it must appear in the selection's direct list, in any
// choice-group pick, or in the occupation's catalog skill list. A generic
// entry anywhere in those lists permits each of its specializations.
func (r *Resolver) IsAllowed(
	occ *catalog.Occupation,
	sel *coc7e.OccupationSelection,
	name string,
) bool {
	canonical, ok := r.Canonical(name)
	if !ok {
		return false
	}

	for _, entry := range sel.Skills {
		if r.entryPermits(entry, canonical) {
			return true
		}
	}
	for _, picks := range sel.ChoiceGroups {
		for _, entry := range picks {
			if r.entryPermits(entry, canonical) {
				return true
			}
		}
	}
	if occ != nil {
		for _, entry := range occ.Skills {
			if r.entryPermits(entry, canonical) {
				return true
			}
		}
	}
	return false
}

// DefaultChoices produces a default pick per choice group: the first Count
// non-forbidden options in declaration order. Forbidden skills (Cthulhu
// Mythos above all) are never defaulted, even when nominally eligible.
func (r *Resolver) DefaultChoices(occ *catalog.Occupation) map[string][]string {
	defaults := make(map[string][]string, len(occ.ChoiceGroups))
	for _, group := range occ.ChoiceGroups {
		var picks []string
		for _, option := range group.Options {
			if len(picks) == group.Count {
				break
			}
			if r.IsForbidden(option) {
				continue
			}
			picks = append(picks, option)
		}
		defaults[group.Label] = picks
	}
	return defaults
}

// entryPermits reports whether a list entry covers the candidate skill,
// expanding generic entries to their specializations.
func (r *Resolver) entryPermits(entry, canonical string) bool {
	entrySkill, ok := r.Lookup(entry)
	if !ok {
		return false
	}
	if len(entrySkill.Specializations) > 0 {
		for _, spec := range entrySkill.Specializations {
			if specName, ok := r.Canonical(spec); ok && specName == canonical {
				return true
			}
		}
		return false
	}
	return entrySkill.Name == canonical
}
