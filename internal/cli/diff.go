package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lguedesdm/ai-metadata-enricher/internal/assets"
	"github.com/lguedesdm/ai-metadata-enricher/internal/tui"
	"github.com/lguedesdm/ai-metadata-enricher/pkg/changedetect"
)

var diffCmd = &cobra.Command{
	Use:   "diff <asset_file> <asset_file>",
	Short: "Compare two asset records by material content",
	Long: `Compare two asset records and report whether their material content is
equivalent. Records are compared after normalization, so differences in
volatile fields, field order or collection order never count as changes.

When the records differ, the material fields that changed are listed.

Examples:
  # Compare two exports of the same asset
  ame diff ./before.json ./after.json

  # Machine-readable output
  ame diff ./before.json ./after.json --json`,
	Args: RequireTwoAssetFiles,
	RunE: runDiff,
}

var diffJSON bool

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "Output comparison as JSON")
}

func runDiff(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Comparing %s and %s\n", args[0], args[1])
	}

	left, err := assets.ReadAsset(args[0])
	if err != nil {
		return err
	}
	right, err := assets.ReadAsset(args[1])
	if err != nil {
		return err
	}

	leftHash, err := changedetect.ComputeHash(left)
	if err != nil {
		return fmt.Errorf("asset file %s: %w", args[0], err)
	}
	rightHash, err := changedetect.ComputeHash(right)
	if err != nil {
		return fmt.Errorf("asset file %s: %w", args[1], err)
	}

	equal := leftHash == rightHash

	var changed []string
	if !equal {
		changed, err = changedFields(left, right)
		if err != nil {
			return err
		}
	}

	if diffJSON {
		result := map[string]interface{}{
			"equal":            equal,
			"leftFingerprint":  leftHash,
			"rightFingerprint": rightHash,
			"changedFields":    changed,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	if equal {
		fmt.Fprintln(os.Stderr, tui.RenderStatus(tui.SuccessStyle, tui.SymbolOK, "material content is equivalent"))
	} else {
		fmt.Fprintln(os.Stderr, tui.RenderStatus(tui.WarningStyle, tui.SymbolChanged, "material content differs:"))
		for _, field := range changed {
			fmt.Fprintf(os.Stderr, "    %s\n", field)
		}
	}
	return nil
}

// changedFields compares the normalized material views field by field.
func changedFields(left, right map[string]any) ([]string, error) {
	leftView, err := changedetect.HashComponents(left)
	if err != nil {
		return nil, err
	}
	rightView, err := changedetect.HashComponents(right)
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, field := range changedetect.MaterialFields() {
		lv, lok := leftView[field]
		rv, rok := rightView[field]
		if !lok && !rok {
			continue
		}
		if lok != rok {
			changed = append(changed, field)
			continue
		}
		lb, err := changedetect.MarshalCanonical(lv)
		if err != nil {
			return nil, err
		}
		rb, err := changedetect.MarshalCanonical(rv)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(lb, rb) {
			changed = append(changed, field)
		}
	}
	return changed, nil
}
