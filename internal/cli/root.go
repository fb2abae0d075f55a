package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
  __ _ _ __ ___   ___
 / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \
| (_| | | | | | |  __/
 \__,_|_| |_| |_|\___|`

var rootCmd = &cobra.Command{
	Use:   "ame",
	Short: "Deterministic change detection for metadata assets",
	Long: asciiLogo + `

ame fingerprints metadata asset records so enrichment runs can skip assets
whose material content has not changed. Fingerprints depend only on the
material field contract: volatile bookkeeping fields, field order and
collection order never affect the result.

It also validates enrichment outputs against the output contract before
they are accepted.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Malformed asset record
  12 - Enrichment output rejected by validation
  13 - Corrupt scan state`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for ame")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
