// Package derived computes the statistics that fall out of final attributes:
// hit points, magic points, sanity, move rate, and build/damage bonus.
package derived

import (
	"fmt"

	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
	"github.com/arkham-tools/investigator-api/internal/errors"
)

// Move rate never drops below 1, regardless of age penalties. The rulebook
// tables leave this unstated.
const moveRateFloor = 1

// Stats is the derived-stat bundle for a sheet.
type Stats struct {
	HitPoints   int
	MagicPoints int
	Sanity      int
	Move        int
	Build       int
	DamageBonus string
}

// Config holds the catalog tables the calculator reads
type Config struct {
	MoveRules     []catalog.MoveRule
	MovePenalties []catalog.MovePenalty
	BuildRanges   []catalog.BuildRange
	BuildOverflow catalog.BuildOverflow
}

// Validate ensures all required tables are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.MoveRules) == 0 {
		vb.RequiredField("MoveRules")
	}
	if len(c.BuildRanges) == 0 {
		vb.RequiredField("BuildRanges")
	}

	return vb.Build()
}

// Calculator derives statistics from attributes. All methods are pure.
type Calculator struct {
	moveRules     []catalog.MoveRule
	movePenalties []catalog.MovePenalty
	buildRanges   []catalog.BuildRange
	buildOverflow catalog.BuildOverflow
}

// NewCalculator creates a calculator over the provided tables
func NewCalculator(cfg *Config) (*Calculator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Calculator{
		moveRules:     cfg.MoveRules,
		movePenalties: cfg.MovePenalties,
		buildRanges:   cfg.BuildRanges,
		buildOverflow: cfg.BuildOverflow,
	}, nil
}

// Stats computes the full derived-stat bundle.
func (c *Calculator) Stats(attrs *coc7e.Attributes, investigatorAge int) (*Stats, error) {
	if attrs == nil {
		return nil, errors.InvalidArgument("attributes are required")
	}

	damageBonus, build, err := c.BuildAndDamageBonus(attrs.Strength + attrs.Size)
	if err != nil {
		return nil, err
	}

	return &Stats{
		HitPoints:   (attrs.Constitution + attrs.Size) / 10,
		MagicPoints: attrs.Power / 5,
		Sanity:      attrs.Power,
		Move:        c.MoveRate(attrs, investigatorAge),
		Build:       build,
		DamageBonus: damageBonus,
	}, nil
}

// MoveRate resolves the ordered condition table (first match wins) and
// subtracts the age-decade penalty, floored at 1.
func (c *Calculator) MoveRate(attrs *coc7e.Attributes, investigatorAge int) int {
	rate := 0
	for _, rule := range c.moveRules {
		if matches(rule.Strength, attrs.Strength, attrs.Size) &&
			matches(rule.Dexterity, attrs.Dexterity, attrs.Size) {
			rate = rule.Rate
			break
		}
	}

	penalty := 0
	for _, p := range c.movePenalties {
		if investigatorAge >= p.MinAge && p.Penalty > penalty {
			penalty = p.Penalty
		}
	}

	rate -= penalty
	if rate < moveRateFloor {
		rate = moveRateFloor
	}
	return rate
}

// BuildAndDamageBonus resolves STR+SIZ against the inclusive range table;
// sums past the last range use the catalog overflow rule instead of failing.
func (c *Calculator) BuildAndDamageBonus(sum int) (string, int, error) {
	for _, r := range c.buildRanges {
		if sum >= r.Min && sum <= r.Max {
			return r.DamageBonus, r.Build, nil
		}
	}

	top := c.buildRanges[len(c.buildRanges)-1]
	if sum <= top.Max {
		return "", 0, errors.Configurationf("no build range covers STR+SIZ sum %d", sum)
	}

	overflow := c.buildOverflow
	if overflow.Span <= 0 {
		return "", 0, errors.Configurationf(
			"STR+SIZ sum %d exceeds build table and no overflow rule is declared", sum)
	}

	steps := (sum-top.Max-1)/overflow.Span + 1
	build := top.Build + steps*overflow.BuildStep
	dice := 1 + steps*overflow.DiceStep
	return fmt.Sprintf("+%dD%d", dice, overflow.DieSides), build, nil
}

// Hard is the half-value success threshold.
func Hard(value int) int {
	return value / 2
}

// Extreme is the fifth-value success threshold.
func Extreme(value int) int {
	return value / 5
}

func matches(cmp catalog.Comparison, value, size int) bool {
	switch cmp {
	case catalog.CompareBelowSize:
		return value < size
	case catalog.CompareAboveSize:
		return value > size
	default:
		return true
	}
}
