// Package main is the entry point for the investigator CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "investigator",
	Short: "Call of Cthulhu 7e investigator creation tools",
	Long:  `Investigator rolls attributes, applies age effects, and computes the derived statistics of a Call of Cthulhu 7e character sheet.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(occupationsCmd)
}
