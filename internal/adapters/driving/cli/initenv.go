package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/prospekt-cli/internal/adapters/driven/config/file"
	"github.com/veldt-labs/prospekt-cli/internal/adapters/driven/workbook/xlsx"
	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

var (
	initScenario   string
	initIndicators []string
	initHorizon    int
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise the data folders and a scenario stub",
	Long: `Creates the data folder layout for a scenario: the input folder, a
scenario TOML stub for the given indicators, an empty output workbook with
one tab per indicator plus the projection log, and the figures folder.
Existing files are left untouched.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initScenario, "scenario", "s", "S1", "scenario id to initialise")
	initCmd.Flags().StringSliceVarP(&initIndicators, "indicators", "i", nil, "indicator ids to configure (required)")
	initCmd.Flags().IntVar(&initHorizon, "horizon", 2040, "horizon end year for the scenario stub")
	_ = initCmd.MarkFlagRequired("indicators")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	for _, dir := range []string{
		filepath.Join(dataDir, "input"),
		filepath.Join(dataDir, "scenarios"),
		outputDir(initScenario),
		figuresDir(initScenario),
	} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	scenario := scenarioPath(initScenario)
	if _, err := os.Stat(scenario); os.IsNotExist(err) {
		params := domain.ScenarioParameters{
			ScenarioID:     initScenario,
			HorizonEndYear: initHorizon,
			Indicators:     make(map[string]domain.IndicatorConfig, len(initIndicators)),
		}
		// Stub every indicator with holdlast; analysts swap in the real
		// method and options per indicator.
		for _, id := range initIndicators {
			params.Indicators[id] = domain.IndicatorConfig{Method: "holdlast"}
		}
		if err := file.SaveScenario(scenario, params); err != nil {
			return fmt.Errorf("write scenario stub: %w", err)
		}
		cmd.Printf("Created scenario stub %s\n", scenario)
	} else {
		cmd.Printf("Scenario file exists: %s\n", scenario)
	}

	output := outputPath(initScenario)
	if err := xlsx.InitWorkbook(output, initIndicators); err != nil {
		return fmt.Errorf("create output workbook: %w", err)
	}
	cmd.Printf("Initialised scenario %s under %s\n", initScenario, dataDir)
	return nil
}
