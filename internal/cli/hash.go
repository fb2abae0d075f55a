package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lguedesdm/ai-metadata-enricher/internal/assets"
	"github.com/lguedesdm/ai-metadata-enricher/pkg/changedetect"
)

var hashCmd = &cobra.Command{
	Use:   "hash <asset_file>",
	Short: "Compute the fingerprint of an asset record",
	Long: `Compute the deterministic fingerprint of a metadata asset record.

The fingerprint covers only the material field contract: volatile
bookkeeping fields (lastUpdated, scanId, auditInfo, ...), field order and
collection order do not affect it. Two records describing the same material
content always produce the same fingerprint.

Examples:
  # Print the fingerprint
  ame hash ./assets/sales.orders.json

  # Show the normalized material view the fingerprint is computed over
  ame hash ./assets/sales.orders.json --components

  # Machine-readable output
  ame hash ./assets/sales.orders.json --json`,
	Args: RequireAssetFile,
	RunE: runHash,
}

var (
	hashComponents bool
	hashJSON       bool
)

func init() {
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().BoolVar(&hashComponents, "components", false, "Print the normalized material view instead of the fingerprint")
	hashCmd.Flags().BoolVar(&hashJSON, "json", false, "Output as JSON")
}

func runHash(cmd *cobra.Command, args []string) error {
	path := args[0]
	verbose := getVerboseFlag(cmd)

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Asset file: %s\n", path)
	}

	asset, err := assets.ReadAsset(path)
	if err != nil {
		return err
	}

	if hashComponents {
		normalized, err := changedetect.HashComponents(asset)
		if err != nil {
			return err
		}
		canonical, err := changedetect.MarshalCanonical(normalized)
		if err != nil {
			return err
		}
		fmt.Println(string(canonical))
		return nil
	}

	fingerprint, err := changedetect.ComputeHash(asset)
	if err != nil {
		return err
	}

	if hashJSON {
		result := map[string]interface{}{
			"path":        path,
			"fingerprint": fingerprint,
		}
		if id, ok := asset["id"].(string); ok {
			result["assetId"] = id
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	fmt.Println(fingerprint)
	return nil
}
