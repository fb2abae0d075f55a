package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/changedetect"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Show the field contract",
	Long: `Show the field contract that fingerprinting applies.

Material fields participate in the fingerprint. Volatile fields are
bookkeeping written by scanners and never affect the fingerprint; neither
do fields starting with an underscore or fields outside the contract.

Examples:
  # Human-readable contract
  ame fields

  # Machine-readable output
  ame fields --json`,
	Args: cobra.NoArgs,
	RunE: runFields,
}

var fieldsJSON bool

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "Output the contract as JSON")
}

func runFields(cmd *cobra.Command, args []string) error {
	if fieldsJSON {
		result := map[string]interface{}{
			"contractVersion": string(changedetect.Latest),
			"materialFields":  changedetect.MaterialFields(),
			"volatileFields":  changedetect.VolatileFields(),
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	fmt.Fprintf(os.Stderr, "Field contract version %s\n\n", changedetect.Latest)
	fmt.Fprintln(os.Stderr, "Material fields (fingerprinted):")
	for _, field := range changedetect.MaterialFields() {
		fmt.Fprintf(os.Stderr, "  %s\n", field)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Volatile fields (ignored):")
	for _, field := range changedetect.VolatileFields() {
		fmt.Fprintf(os.Stderr, "  %s\n", field)
	}
	fmt.Fprintln(os.Stderr, "  _* (any underscore-prefixed field)")
	return nil
}
