package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lguedesdm/ai-metadata-enricher/internal/tui"
	"github.com/lguedesdm/ai-metadata-enricher/internal/validation"
	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

var validateCmd = &cobra.Command{
	Use:   "validate <output_file>",
	Short: "Validate an enrichment output against the output contract",
	Long: `Validate an enrichment output document before accepting it.

Validation runs in two layers:
  1. Structural: the document must be a single flat YAML mapping with
     exactly the contract fields, in contract order, with no comments.
  2. Semantic: the description must be substantive and grounded, the
     confidence must come from the closed set, and every source must be a
     concrete document reference.

Semantic rules only run when the structure is valid. Use '-' to read the
document from stdin.

Examples:
  # Validate a file
  ame validate ./out/sales.orders.yaml

  # Validate from a pipe
  generate-output | ame validate -

  # Machine-readable output
  ame validate ./out/sales.orders.yaml --json`,
	Args: RequireOutputFile,
	RunE: runValidate,
}

var validateJSON bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation results as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	text, err := readValidateInput(args[0])
	if err != nil {
		return err
	}

	structural, semantic := validation.ValidateOutput(text)
	valid := structural.Valid && semantic.Valid

	if validateJSON {
		result := map[string]interface{}{
			"valid":             valid,
			"structural_errors": structural.StructuralErrors,
			"semantic_errors":   semantic.SemanticErrors,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	} else {
		for _, e := range structural.StructuralErrors {
			fmt.Fprintf(os.Stderr, "  structural: %s\n", e)
		}
		for _, e := range semantic.SemanticErrors {
			fmt.Fprintf(os.Stderr, "  semantic: %s\n", e)
		}
		if valid {
			fmt.Fprintln(os.Stderr, tui.RenderStatus(tui.SuccessStyle, tui.SymbolOK, "output passes validation"))
		} else {
			fmt.Fprintln(os.Stderr, tui.RenderStatus(tui.ErrorStyle, tui.SymbolFail, "output rejected"))
		}
	}

	if !valid {
		return fmt.Errorf("%w: %d structural, %d semantic error(s)",
			enricher.ErrOutputRejected, len(structural.StructuralErrors), len(semantic.SemanticErrors))
	}
	return nil
}

func readValidateInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read output file %s: %w", path, err)
	}
	return string(data), nil
}
