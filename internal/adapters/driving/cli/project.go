package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/veldt-labs/prospekt-cli/internal/adapters/driven/config/file"
	ggfigures "github.com/veldt-labs/prospekt-cli/internal/adapters/driven/figures/gg"
	"github.com/veldt-labs/prospekt-cli/internal/adapters/driven/workbook/xlsx"
	"github.com/veldt-labs/prospekt-cli/internal/capabilities"
	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
	"github.com/veldt-labs/prospekt-cli/internal/core/ports/driving"
	"github.com/veldt-labs/prospekt-cli/internal/core/services"
	"github.com/veldt-labs/prospekt-cli/internal/logger"
)

var (
	projectScenario   string
	projectIndicators []string
	projectOverwrite  bool
	projectNoFigures  bool
	projectWatch      bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run scenario projections over the input workbook",
	Long: `Runs the configured projection method for each selected indicator and
merges the results into the scenario's output workbook. Indicators that
already have a projection are skipped unless --overwrite is set. A failure
in one indicator never aborts the run; it is recorded in the projection log
and the remaining indicators continue.`,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&projectScenario, "scenario", "s", "S1", "scenario id to run")
	projectCmd.Flags().StringSliceVarP(&projectIndicators, "indicators", "i", nil, "indicator ids to process (default: all configured)")
	projectCmd.Flags().BoolVar(&projectOverwrite, "overwrite", false, "re-project indicators that already have a projection")
	projectCmd.Flags().BoolVar(&projectNoFigures, "no-figures", false, "skip figure rendering")
	projectCmd.Flags().BoolVarP(&projectWatch, "watch", "w", false, "re-run whenever the input workbook changes")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	runner, err := buildRunner(projectScenario)
	if err != nil {
		return err
	}

	cfg := domain.RunConfig{
		Scenario:     runner.params,
		IndicatorIDs: projectIndicators,
		Overwrite:    projectOverwrite,
		Figures:      !projectNoFigures,
	}

	if err := runOnce(cmd, runner.service, cfg); err != nil {
		return err
	}
	if !projectWatch {
		return nil
	}
	return watchAndRerun(cmd, runner.service, cfg)
}

// scenarioRunner bundles a wired projection service with the scenario
// parameters it was built for.
type scenarioRunner struct {
	params  domain.ScenarioParameters
	service driving.ProjectionRunner
}

// buildRunner wires the driven adapters for one scenario: workbook reader,
// capability registry, output store, and figure renderer.
func buildRunner(scenarioID string) (*scenarioRunner, error) {
	params, err := file.LoadScenario(scenarioPath(scenarioID))
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	registry, err := capabilities.NewRegistry(params)
	if err != nil {
		return nil, fmt.Errorf("build capability registry: %w", err)
	}

	units := make(map[string]string, len(params.Indicators))
	for id, cfg := range params.Indicators {
		units[id] = cfg.Unit
	}

	service := services.NewProjectionService(
		xlsx.NewReader(inputPath(), units),
		registry,
		xlsx.NewStore(outputPath(scenarioID)),
		ggfigures.NewRenderer(figuresDir(scenarioID)),
		ggfigures.DefaultTheme(),
	)
	return &scenarioRunner{params: params, service: service}, nil
}

func runOnce(cmd *cobra.Command, runner driving.ProjectionRunner, cfg domain.RunConfig) error {
	result, err := runner.Run(cmd.Context(), cfg)
	if err != nil {
		cmd.PrintErrf("Run aborted: %v\nThe previous output was not modified.\n", err)
		return err
	}
	cmd.Print(renderSummary(result))
	return nil
}

// watchAndRerun re-runs the scenario whenever the input workbook changes.
// Writes are debounced because editors and copies emit bursts of events.
func watchAndRerun(cmd *cobra.Command, runner driving.ProjectionRunner, cfg domain.RunConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	input := inputPath()
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(input), err)
	}
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", input)

	ctx := cmd.Context()
	var debounce *time.Timer
	rerun := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(input) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		case <-rerun:
			cmd.Printf("Input changed, re-running scenario %s...\n", cfg.Scenario.ScenarioID)
			if err := runOnce(cmd, runner, cfg); err != nil && !isRecoverable(err) {
				return err
			}
		}
	}
}

// isRecoverable reports whether a watch-mode run failure should keep the
// watcher alive. Input schema problems are worth waiting out - the analyst
// is probably mid-edit.
func isRecoverable(err error) bool {
	return errors.Is(err, domain.ErrSchemaValidation) || errors.Is(err, domain.ErrMissingIndicatorTab)
}
