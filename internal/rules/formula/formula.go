// Package formula interprets occupation skill-point formulas such as
// "EDU x4" or "EDU x2 + (DES x2 o FUE x2)". A formula is a sum of terms;
// a parenthesized term offers alternatives joined by the word "o", and the
// player (or the maximizer) picks one per group.
//
// The parser produces a structured term list with groups pre-numbered in
// declaration order, so choice maps are never coupled to the string layout.
package formula

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arkham-tools/investigator-api/internal/errors"
)

var alternativeRegex = regexp.MustCompile(`^(?i)([a-z]+)x(\d+)$`)

// Alternative is a single "attribute times factor" contribution.
type Alternative struct {
	Attribute string
	Factor    int
}

// Identifier renders the alternative in the choice-map format: the uppercase
// mnemonic, the letter x, and the factor, with no separating space.
func (a Alternative) Identifier() string {
	return a.Attribute + "x" + strconv.Itoa(a.Factor)
}

// Term is one summand. Plain terms carry a single alternative and Group -1;
// parenthesized groups carry one or more alternatives and a 0-based group
// index counting groups left to right.
type Term struct {
	Alternatives []Alternative
	Group        int
}

// Formula is a parsed occupation point formula.
type Formula struct {
	Source string
	Terms  []Term
}

// Groups returns the number of alternative groups in the formula.
func (f *Formula) Groups() int {
	n := 0
	for _, t := range f.Terms {
		if t.Group >= 0 {
			n++
		}
	}
	return n
}

// Result is the outcome of an evaluation: the point total and, per group,
// the alternative that contributed to it.
type Result struct {
	Total  int
	Chosen map[int]string
}

// Parse builds a Formula from its source string.
func Parse(source string) (*Formula, error) {
	chunks, err := splitTerms(source)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, errors.FormulaResolutionf("empty formula %q", source)
	}

	f := &Formula{Source: source}
	group := 0
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if strings.HasPrefix(chunk, "(") && strings.HasSuffix(chunk, ")") {
			alts, err := parseAlternatives(source, chunk[1:len(chunk)-1])
			if err != nil {
				return nil, err
			}
			f.Terms = append(f.Terms, Term{Alternatives: alts, Group: group})
			group++
			continue
		}

		alt, err := parseAlternative(source, chunk)
		if err != nil {
			return nil, err
		}
		f.Terms = append(f.Terms, Term{Alternatives: []Alternative{alt}, Group: -1})
	}

	return f, nil
}

// Evaluate computes the total using the supplied per-group choices. A group
// missing from choices falls back to its best alternative, so a partial
// choice map never fails; a choice that names an alternative the group does
// not declare is a resolution error. The returned Chosen map records the
// identifier used for every group, fallback picks included.
func (f *Formula) Evaluate(attrs map[string]int, choices map[int]string) (*Result, error) {
	result := &Result{Chosen: make(map[int]string)}

	for _, term := range f.Terms {
		if term.Group < 0 {
			value, err := f.contribution(attrs, term.Alternatives[0])
			if err != nil {
				return nil, err
			}
			result.Total += value
			continue
		}

		choice, explicit := choices[term.Group]
		var picked Alternative
		var value int
		if explicit {
			alt, ok := findAlternative(term.Alternatives, choice)
			if !ok {
				return nil, errors.FormulaResolutionf(
					"formula %q group %d has no alternative %q", f.Source, term.Group, choice)
			}
			v, err := f.contribution(attrs, alt)
			if err != nil {
				return nil, err
			}
			picked, value = alt, v
		} else {
			alt, v, err := f.best(attrs, term.Alternatives)
			if err != nil {
				return nil, err
			}
			picked, value = alt, v
		}

		result.Total += value
		result.Chosen[term.Group] = picked.Identifier()
	}

	return result, nil
}

// Maximize evaluates the formula picking, for each group independently, the
// alternative with the highest contribution. Ties resolve to the
// first-declared alternative.
func (f *Formula) Maximize(attrs map[string]int) (*Result, error) {
	return f.Evaluate(attrs, nil)
}

func (f *Formula) best(attrs map[string]int, alts []Alternative) (Alternative, int, error) {
	bestAlt := alts[0]
	bestValue, err := f.contribution(attrs, bestAlt)
	if err != nil {
		return Alternative{}, 0, err
	}

	for _, alt := range alts[1:] {
		value, err := f.contribution(attrs, alt)
		if err != nil {
			return Alternative{}, 0, err
		}
		if value > bestValue {
			bestAlt, bestValue = alt, value
		}
	}
	return bestAlt, bestValue, nil
}

func (f *Formula) contribution(attrs map[string]int, alt Alternative) (int, error) {
	value, ok := attrs[alt.Attribute]
	if !ok {
		return 0, errors.FormulaResolutionf(
			"formula %q references unknown attribute %q", f.Source, alt.Attribute)
	}
	return value * alt.Factor, nil
}

func findAlternative(alts []Alternative, choice string) (Alternative, bool) {
	key := strings.ToUpper(strings.ReplaceAll(choice, " ", ""))
	for _, alt := range alts {
		if strings.ToUpper(alt.Identifier()) == key {
			return alt, true
		}
	}
	return Alternative{}, false
}

// splitTerms splits on top-level '+' while tracking paren depth.
func splitTerms(source string) ([]string, error) {
	var chunks []string
	depth := 0
	start := 0
	for i, r := range source {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.FormulaResolutionf("unbalanced parentheses in formula %q", source)
			}
		case '+':
			if depth == 0 {
				chunks = append(chunks, source[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.FormulaResolutionf("unbalanced parentheses in formula %q", source)
	}
	chunks = append(chunks, source[start:])

	out := chunks[:0]
	for _, c := range chunks {
		if strings.TrimSpace(c) == "" {
			return nil, errors.FormulaResolutionf("empty term in formula %q", source)
		}
		out = append(out, c)
	}
	return out, nil
}

// parseAlternatives splits a group body on the standalone word "o".
func parseAlternatives(source, body string) ([]Alternative, error) {
	var alts []Alternative
	var current []string
	flush := func() error {
		if len(current) == 0 {
			return errors.FormulaResolutionf("empty alternative in formula %q", source)
		}
		alt, err := parseAlternative(source, strings.Join(current, ""))
		if err != nil {
			return err
		}
		alts = append(alts, alt)
		current = nil
		return nil
	}

	for _, field := range strings.Fields(body) {
		if strings.EqualFold(field, "o") {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, field)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return alts, nil
}

func parseAlternative(source, text string) (Alternative, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(text), " ", "")
	matches := alternativeRegex.FindStringSubmatch(compact)
	if matches == nil {
		return Alternative{}, errors.FormulaResolutionf(
			"malformed term %q in formula %q (expected ATTR xK)", strings.TrimSpace(text), source)
	}

	factor, err := strconv.Atoi(matches[2])
	if err != nil || factor <= 0 {
		return Alternative{}, errors.FormulaResolutionf(
			"invalid factor in term %q of formula %q", strings.TrimSpace(text), source)
	}

	return Alternative{Attribute: strings.ToUpper(matches[1]), Factor: factor}, nil
}
