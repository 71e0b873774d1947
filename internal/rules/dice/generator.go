// Package dice implements the compound-notation dice generator behind
// attribute rolls. All randomness flows through an injectable roller so that
// tests and reroll features can supply deterministic sequences.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/errors"
)

// Attribute rolls are clamped to the playable range.
const (
	AttributeMin = 1
	AttributeMax = 99
)

// Regex for compound notation like "3d6x5" or "2d6+6x5"
var notationRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:\+(\d+))?(?:x(\d+))?$`)

// Config holds the dependencies for the generator
type Config struct {
	Roller rpgdice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Generator rolls compound dice specs.
type Generator struct {
	roller rpgdice.Roller
}

// NewGenerator creates a generator with the provided dependencies
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Generator{roller: cfg.Roller}, nil
}

// DetailedRoll carries the audit trail for a single compound roll: the
// notation label, each intermediate computation step, and the final value.
type DetailedRoll struct {
	Notation string
	Dice     []int
	Steps    []string
	Value    int
}

// Notation renders a spec as compact notation, e.g. "3D6x5" or "2D6+6x5".
func Notation(spec catalog.RollSpec) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dD%d", spec.Count, spec.Sides)
	if spec.Plus > 0 {
		fmt.Fprintf(&sb, "+%d", spec.Plus)
	}
	if spec.Multiplier > 1 {
		fmt.Fprintf(&sb, "x%d", spec.Multiplier)
	}
	return sb.String()
}

// ParseNotation parses compound notation like "3d6x5" or "2d6+6x5".
func ParseNotation(notation string) (catalog.RollSpec, error) {
	matches := notationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return catalog.RollSpec{}, errors.InvalidArgumentf(
			"invalid dice notation: %s (expected format: XdY[+Z][xK])", notation)
	}

	spec := catalog.RollSpec{Multiplier: 1}
	spec.Count, _ = strconv.Atoi(matches[1])
	spec.Sides, _ = strconv.Atoi(matches[2])
	if matches[3] != "" {
		spec.Plus, _ = strconv.Atoi(matches[3])
	}
	if matches[4] != "" {
		spec.Multiplier, _ = strconv.Atoi(matches[4])
	}

	if spec.Count <= 0 || spec.Sides <= 0 {
		return catalog.RollSpec{}, errors.InvalidArgumentf(
			"dice count and size must be positive: %s", notation)
	}

	return spec, nil
}

// Roll rolls the spec and returns the scaled result.
func (g *Generator) Roll(spec catalog.RollSpec) (int, error) {
	detailed, err := g.RollDetailed(spec)
	if err != nil {
		return 0, err
	}
	return detailed.Value, nil
}

// RollAttribute rolls the spec and clamps the result to the attribute range.
func (g *Generator) RollAttribute(spec catalog.RollSpec) (int, error) {
	value, err := g.Roll(spec)
	if err != nil {
		return 0, err
	}
	return clampAttribute(value), nil
}

// RollDetailed rolls the spec and returns the full audit trail alongside the
// final value. Attribute-range clamping is the caller's concern; the trail
// reports the raw computation.
func (g *Generator) RollDetailed(spec catalog.RollSpec) (*DetailedRoll, error) {
	if spec.Count <= 0 || spec.Sides <= 0 {
		return nil, errors.InvalidArgumentf(
			"dice count and size must be positive: got %dd%d", spec.Count, spec.Sides)
	}

	rolls, err := g.roller.RollN(spec.Count, spec.Sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", Notation(spec))
	}

	sum := 0
	for _, r := range rolls {
		sum += r
	}

	notation := Notation(spec)
	steps := []string{
		fmt.Sprintf("%s: rolled %v", notation, rolls),
		fmt.Sprintf("sum = %d", sum),
	}

	value := sum
	if spec.Plus > 0 {
		value += spec.Plus
		steps = append(steps, fmt.Sprintf("+%d = %d", spec.Plus, value))
	}
	if spec.Multiplier > 1 {
		value *= spec.Multiplier
		steps = append(steps, fmt.Sprintf("x%d = %d", spec.Multiplier, value))
	}

	return &DetailedRoll{
		Notation: notation,
		Dice:     rolls,
		Steps:    steps,
		Value:    value,
	}, nil
}

func clampAttribute(value int) int {
	if value < AttributeMin {
		return AttributeMin
	}
	if value > AttributeMax {
		return AttributeMax
	}
	return value
}
