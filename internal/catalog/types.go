// Package catalog defines the rule data the engine consumes: age bands,
// derived-stat tables, skills, and occupations. The engine treats a Catalog
// as immutable configuration; schema validation happens upstream, before the
// data reaches this process.
package catalog

// RollSpec is a compound dice notation: roll Count dice of Sides, add Plus
// to the sum, multiply by Multiplier.
type RollSpec struct {
	Count      int
	Sides      int
	Plus       int
	Multiplier int
}

// AttributeRoll binds a roll spec to the attribute mnemonic it generates.
type AttributeRoll struct {
	Attribute string
	Spec      RollSpec
}

// AgeBand describes one age bracket and its creation-time effects. Bands are
// matched by inclusive [MinAge, MaxAge]; numeric boundaries are data, not
// constants, so a revised rulebook table slots in without code changes.
type AgeBand struct {
	MinAge int
	MaxAge int
	// PenaltyTotal is the number of points the player must distribute across
	// the band's deduction attributes (youth: STR/SIZ; mature: STR/CON/DEX).
	PenaltyTotal int
	// AppearanceLoss is subtracted from APP outright.
	AppearanceLoss int
	// EducationLoss is subtracted from EDU outright (youth band only).
	EducationLoss int
	// EducationChecks is how many improvement checks EDU receives.
	EducationChecks int
	// Youth marks the pre-adulthood band.
	Youth bool
}

// Comparison relates an attribute to SIZ in a move-rate condition.
type Comparison string

// Move-rate comparisons
const (
	CompareBelowSize Comparison = "below_size"
	CompareAboveSize Comparison = "above_size"
	CompareAny       Comparison = "any"
)

// MoveRule is one row of the ordered move-rate table; the first matching row
// wins.
type MoveRule struct {
	Strength  Comparison
	Dexterity Comparison
	Rate      int
}

// MovePenalty subtracts from the move rate once the investigator reaches
// MinAge.
type MovePenalty struct {
	MinAge  int
	Penalty int
}

// BuildRange maps an inclusive STR+SIZ range to a damage bonus and build.
type BuildRange struct {
	Min         int
	Max         int
	DamageBonus string
	Build       int
}

// BuildOverflow extends the build table past its last range: every Span
// points add BuildStep to build and DiceStep dice of DieSides to the damage
// bonus.
type BuildOverflow struct {
	Span      int
	BuildStep int
	DiceStep  int
	DieSides  int
}

// Skill is one catalog skill entry.
type Skill struct {
	Name string
	// Base is the innate starting value when BaseAttribute is empty.
	Base int
	// BaseAttribute derives the base from an attribute mnemonic divided by
	// BaseDivisor (a divisor of 0 means use the attribute value directly).
	BaseAttribute string
	BaseDivisor   int
	// Specializations marks a generic placeholder entry that expands to the
	// listed concrete skills. The placeholder itself is never a valid
	// allocation target.
	Specializations []string
	// Aliases are alternate phrasings that resolve to this entry.
	Aliases []string
	// Forbidden skills can never receive creation points or appear as
	// default choice-group picks.
	Forbidden bool
}

// ChoiceGroup is a set of skill options from which Count must be picked.
type ChoiceGroup struct {
	Label   string
	Count   int
	Options []string
}

// Occupation is one catalog occupation entry.
type Occupation struct {
	Name          string
	Skills        []string
	ChoiceGroups  []ChoiceGroup
	PointsFormula string
	CreditMin     int
	CreditMax     int
}

// Catalog bundles every rule table the engine needs.
type Catalog struct {
	AttributeRolls []AttributeRoll
	AgeBands       []AgeBand
	MoveRules      []MoveRule
	MovePenalties  []MovePenalty
	BuildRanges    []BuildRange
	BuildOverflow  BuildOverflow
	Skills         []Skill
	Occupations    []Occupation
	// PersonalPointsFactor multiplies INT to produce the personal budget.
	PersonalPointsFactor int
	// CreationSkillCap is the soft per-skill ceiling during creation;
	// AbsoluteSkillCap is the hard ceiling.
	CreationSkillCap int
	AbsoluteSkillCap int
	// HardDivisor and ExtremeDivisor derive secondary thresholds.
	HardDivisor    int
	ExtremeDivisor int
}

// Band returns the age band covering age, or nil when none matches.
func (c *Catalog) Band(age int) *AgeBand {
	for i := range c.AgeBands {
		b := &c.AgeBands[i]
		if age >= b.MinAge && age <= b.MaxAge {
			return b
		}
	}
	return nil
}

// Occupation returns the occupation entry with the given name, or nil.
func (c *Catalog) Occupation(name string) *Occupation {
	for i := range c.Occupations {
		if c.Occupations[i].Name == name {
			return &c.Occupations[i]
		}
	}
	return nil
}
