package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lguedesdm/ai-metadata-enricher/internal/assets"
	"github.com/lguedesdm/ai-metadata-enricher/internal/config"
	"github.com/lguedesdm/ai-metadata-enricher/internal/logging"
	"github.com/lguedesdm/ai-metadata-enricher/internal/state"
	"github.com/lguedesdm/ai-metadata-enricher/internal/tui"
	"github.com/lguedesdm/ai-metadata-enricher/pkg/changedetect"
	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

var scanCmd = &cobra.Command{
	Use:   "scan <project_path>",
	Short: "Fingerprint all assets in a project and decide what to reprocess",
	Long: `Scan the asset sources of a project, fingerprint every asset record and
decide per asset whether enrichment must run again (REPROCESS) or can be
skipped (SKIP).

The project is described by ` + config.ConfigFileName + ` in the project directory.
Decisions compare each fingerprint against the state recorded by the last
scan; assets without recorded state are always reprocessed. Pass --update
to record the new fingerprints after the scan.

Examples:
  # Dry-run scan against recorded state
  ame scan ./my-catalog

  # Scan and record the new fingerprints
  ame scan ./my-catalog --update

  # Machine-readable report
  ame scan ./my-catalog --json`,
	Args: RequireProjectPath,
	RunE: runScan,
}

var (
	scanStateFile string
	scanUpdate    bool
	scanJSON      bool
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanStateFile, "state", "", "Override the state file from "+config.ConfigFileName)
	scanCmd.Flags().BoolVar(&scanUpdate, "update", false, "Record the new fingerprints after the scan")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output the scan report as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	_ = godotenv.Load()

	cfg, err := config.Load(projectPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("%w: %s not found in %s", enricher.ErrInvalidConfig, config.ConfigFileName, projectPath)
		}
		return err
	}

	statePath := cfg.StateFile
	if scanStateFile != "" {
		statePath = scanStateFile
	}
	if !filepath.IsAbs(statePath) {
		statePath = filepath.Join(projectPath, statePath)
	}

	logger.Verbose("Project path: %s", projectPath)
	logger.Verbose("State file: %s", statePath)
	logger.Verbose("Sources: %v", cfg.Sources)

	store, err := state.Load(statePath)
	if err != nil {
		return err
	}

	report := enricher.ScanReport{ScanID: uuid.NewString()}
	logger.Verbose("Scan ID: %s", report.ScanID)

	for _, source := range cfg.Sources {
		sourcePath := source
		if !filepath.IsAbs(sourcePath) {
			sourcePath = filepath.Join(projectPath, sourcePath)
		}

		paths, err := assets.Discover(sourcePath)
		if err != nil {
			return err
		}
		logger.Verbose("Source %s: %d asset file(s)", source, len(paths))

		for _, path := range paths {
			result, err := scanAsset(path, store)
			if err != nil {
				return err
			}
			report.Results = append(report.Results, result)
			if result.Decision == string(changedetect.DecisionReprocess) {
				report.Reprocess++
			} else {
				report.Skip++
			}
		}
	}

	if scanUpdate {
		for _, result := range report.Results {
			store.Set(result.AssetID, result.Fingerprint)
		}
		if err := store.Save(statePath); err != nil {
			return err
		}
		logger.Verbose("Recorded %d fingerprint(s) to %s", len(report.Results), statePath)
	}

	return printScanReport(report)
}

func scanAsset(path string, store *state.Store) (enricher.ScanResult, error) {
	asset, err := assets.ReadAsset(path)
	if err != nil {
		return enricher.ScanResult{}, err
	}

	assetID, ok := asset[enricher.FieldAssetID].(string)
	if !ok || assetID == "" {
		return enricher.ScanResult{}, fmt.Errorf("%w: asset file %s has no %q field",
			enricher.ErrMissingRequiredField, path, enricher.FieldAssetID)
	}

	fingerprint, err := changedetect.ComputeHash(asset)
	if err != nil {
		return enricher.ScanResult{}, fmt.Errorf("asset file %s: %w", path, err)
	}

	var previous any
	if prior, ok := store.Get(assetID); ok {
		previous = prior
	}

	return enricher.ScanResult{
		Path:        path,
		AssetID:     assetID,
		Fingerprint: fingerprint,
		Decision:    string(changedetect.Decide(fingerprint, previous)),
	}, nil
}

func printScanReport(report enricher.ScanReport) error {
	if scanJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	for _, result := range report.Results {
		line := fmt.Sprintf("%-9s %s (%s)", result.Decision, result.AssetID, result.Path)
		if result.Decision == string(changedetect.DecisionReprocess) {
			fmt.Fprintln(os.Stderr, tui.RenderStatus(tui.WarningStyle, tui.SymbolChanged, line))
		} else {
			fmt.Fprintln(os.Stderr, tui.RenderStatus(tui.SuccessStyle, tui.SymbolOK, line))
		}
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Scan %s: %d asset(s), %d to reprocess, %d to skip\n",
		report.ScanID, len(report.Results), report.Reprocess, report.Skip)
	return nil
}
