// Package cli implements the cobra command tree driving the projection
// engine. Commands wire the driven adapters for the selected scenario and
// call the core through its driving port.
package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/prospekt-cli/internal/logger"
)

var (
	dataDir     string
	verboseFlag bool
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "prospekt",
	Short: "Multi-indicator scenario projections from historical workbooks",
	Long: `Prospekt projects economic, environmental, and social indicators from
historical tabular data. It reads a multi-tab input workbook, runs the
configured projection method per indicator, merges historical and projected
values into a per-scenario output workbook with provenance tags, and renders
one figure per indicator.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "data folder holding input, scenarios, and output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context, v string) error {
	version = v
	rootCmd.Version = v
	return rootCmd.ExecuteContext(ctx)
}

// Paths derived from the data folder. The layout matches what init creates:
//
//	<data>/input/input.xlsx
//	<data>/scenarios/<id>.toml
//	<data>/output/<id>_output/projected_data.xlsx
//	<data>/output/<id>_output/figures/
func inputPath() string {
	return filepath.Join(dataDir, "input", "input.xlsx")
}

func scenarioPath(scenarioID string) string {
	return filepath.Join(dataDir, "scenarios", scenarioID+".toml")
}

func outputDir(scenarioID string) string {
	return filepath.Join(dataDir, "output", scenarioID+"_output")
}

func outputPath(scenarioID string) string {
	return filepath.Join(outputDir(scenarioID), "projected_data.xlsx")
}

func figuresDir(scenarioID string) string {
	return filepath.Join(outputDir(scenarioID), "figures")
}
