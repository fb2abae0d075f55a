package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireAssetFile validates that exactly one asset_file argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireAssetFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <asset_file>

Usage: %s

Example:
  %s ./assets/sales.orders.json`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireTwoAssetFiles validates that exactly two asset_file arguments are provided.
func RequireTwoAssetFiles(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf(`requires exactly 2 arguments: <asset_file> <asset_file>

Usage: %s

Example:
  %s ./before.json ./after.json`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// RequireOutputFile validates that exactly one output_file argument is provided.
// "-" is accepted and means stdin.
func RequireOutputFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <output_file>

Usage: %s

Example:
  %s ./out/sales.orders.yaml`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireProjectPath validates that exactly one project_path argument is provided.
func RequireProjectPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <project_path>

Usage: %s

Example:
  %s ./my-catalog`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
