package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/arkham-tools/investigator-api/internal/catalog"
	"github.com/arkham-tools/investigator-api/internal/engine"
	"github.com/arkham-tools/investigator-api/internal/engine/ruleset"
	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
)

var rollAge int

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a fresh set of attributes",
	Long:  `Roll the nine attributes, apply the age band's automatic effects, and print the attributes with their derived statistics as JSON.`,
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().IntVar(&rollAge, "age", 25, "investigator age")
}

// rollResult is the JSON shape printed by the roll command.
type rollResult struct {
	Age         int                    `json:"age"`
	Attributes  *coc7e.Attributes      `json:"attributes"`
	Rolls       []engine.AttributeRoll `json:"rolls"`
	HitPoints   int                    `json:"hit_points"`
	MagicPoints int                    `json:"magic_points"`
	Sanity      int                    `json:"sanity"`
	Move        int                    `json:"move"`
	Build       int                    `json:"build"`
	DamageBonus string                 `json:"damage_bonus"`
	Issues      []coc7e.Issue          `json:"issues,omitempty"`
}

// ageIssues validates the age step for a bare roll. The command distributes
// no penalty points, so youth and mature ages report their mismatch here
// instead of hiding it behind clean JSON.
func ageIssues(ctx context.Context, adapter *ruleset.Adapter, age int, attrs *coc7e.Attributes) ([]coc7e.Issue, error) {
	output, err := adapter.ValidateStep(ctx, &engine.ValidateStepInput{
		Step: coc7e.StepAge,
		Draft: &coc7e.Draft{
			Mode:          coc7e.ModeRolled,
			Age:           age,
			LastRolledAge: age,
			Attributes:    attrs,
		},
	})
	if err != nil {
		return nil, err
	}
	return output.Issues, nil
}

func runRoll(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	adapter, err := ruleset.NewAdapter(&ruleset.AdapterConfig{
		DiceRoller: dice.DefaultRoller,
		Catalog:    catalog.Default(),
	})
	if err != nil {
		return err
	}

	rolled, err := adapter.RollAttributes(ctx, &engine.RollAttributesInput{})
	if err != nil {
		return err
	}
	slog.Info("Attributes rolled", "age", rollAge)

	aged, err := adapter.ApplyAgeModifiers(ctx, &engine.ApplyAgeModifiersInput{
		Attributes: rolled.Attributes,
		Age:        rollAge,
	})
	if err != nil {
		return err
	}

	stats, err := adapter.CalculateDerivedStats(ctx, &engine.CalculateDerivedStatsInput{
		Attributes: aged.Attributes,
		Age:        rollAge,
	})
	if err != nil {
		return err
	}

	issues, err := ageIssues(ctx, adapter, rollAge, aged.Attributes)
	if err != nil {
		return err
	}
	if coc7e.HasErrors(issues) {
		slog.Warn("Age step reported issues; distribute the penalty points before finalizing",
			"age", rollAge, "issues", len(issues))
	}

	result := rollResult{
		Age:         rollAge,
		Attributes:  aged.Attributes,
		Rolls:       rolled.Rolls,
		HitPoints:   stats.HitPoints,
		MagicPoints: stats.MagicPoints,
		Sanity:      stats.Sanity,
		Move:        stats.Move,
		Build:       stats.Build,
		DamageBonus: stats.DamageBonus,
		Issues:      issues,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
