// =============================================================================
// CSV to SEPA XML Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sepaconv)
//   ├── convertCmd (sepaconv convert)
//   ├── generateCmd (sepaconv generate)
//   ├── doctorCmd (sepaconv doctor)
//   └── versionCmd (sepaconv version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --quiet)
//   2. Loading the YAML configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/config"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// quiet suppresses console output below warning level.
var quiet bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sepaconv",
	Short: "CSV to SEPA XML Converter - Transform payment lists into pain.001.001.03 files",
	Long: `CSV to SEPA XML Converter reads payment rows from CSV or Excel files,
validates them against SEPA rules (IBAN MOD-97 checksums, BIC format,
positive two-decimal amounts), and produces an ISO 20022 pain.001.001.03
Customer Credit Transfer Initiation file ready for bank upload.

Invalid rows never reach the XML: they are collected into a rejection
report next to the input so the source data can be corrected and re-run.

Example Usage:
  sepaconv convert payments.csv payments_sepa.xml
  sepaconv convert payments.xlsx --debtor-name "ACME GmbH"
  sepaconv generate --rows 1000 sample.csv
  sepaconv doctor`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig reads the configuration file named by --config. A missing
// file yields the built-in defaults.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger builds the logger for a command run from the global flags and
// the configured log file.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.New(logging.Options{
		LogFile: cfg.LogFile,
		Verbose: verbose,
		Quiet:   quiet,
	})
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&quiet,
		"quiet",
		"q",
		false,
		"Suppress console output below warning level",
	)
}
