// =============================================================================
// CSV to SEPA XML Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV to SEPA XML Converter CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   sepaconv convert in.csv out.xml  - Convert a payment file to pain.001 XML
//   sepaconv generate sample.csv     - Generate sample payment data
//   sepaconv doctor                  - Print environment diagnostics
//   sepaconv version                 - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/csv-to-sepa-xml/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
