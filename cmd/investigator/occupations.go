package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkham-tools/investigator-api/internal/catalog"
)

var occupationsCmd = &cobra.Command{
	Use:   "occupations",
	Short: "List the catalog occupations",
	RunE:  runOccupations,
}

// occupationSummary is the JSON shape printed per occupation.
type occupationSummary struct {
	Name          string `json:"name"`
	PointsFormula string `json:"points_formula"`
	CreditMin     int    `json:"credit_min"`
	CreditMax     int    `json:"credit_max"`
}

func runOccupations(_ *cobra.Command, _ []string) error {
	cat := catalog.Default()

	summaries := make([]occupationSummary, 0, len(cat.Occupations))
	for _, occ := range cat.Occupations {
		summaries = append(summaries, occupationSummary{
			Name:          occ.Name,
			PointsFormula: occ.PointsFormula,
			CreditMin:     occ.CreditMin,
			CreditMax:     occ.CreditMax,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summaries)
}
