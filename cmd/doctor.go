// =============================================================================
// CSV to SEPA XML Converter - Doctor Command
// =============================================================================
//
// This file defines the 'doctor' command, which collects environment
// information for troubleshooting. It checks the Go runtime, the
// configuration file, and write access to the directories the converter
// needs.
//
// COMMAND USAGE:
//   sepaconv doctor
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/validation"
	"github.com/ginjaninja78/csv-to-sepa-xml/pkg/utils"
)

// doctorCmd represents the 'doctor' command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment and configuration",
	Long: `The doctor command prints environment information useful when the
converter misbehaves: runtime details, which configuration file is in
effect, the resolved debtor account, and whether the working and report
directories are writable.`,
	RunE: runDoctor,
}

// runDoctor prints the diagnostic report.
func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println("=================================================================")
	fmt.Println("CSV to SEPA XML Converter - Diagnostics")
	fmt.Println("=================================================================")

	fmt.Println("\nRuntime:")
	fmt.Printf("  Go Version:   %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  CPUs:         %d\n", runtime.NumCPU())

	wd, err := os.Getwd()
	if err != nil {
		wd = fmt.Sprintf("unavailable (%v)", err)
	}
	fmt.Printf("  Working Dir:  %s\n", wd)

	fmt.Println("\nConfiguration:")
	if utils.FileExists(cfgFile) {
		fmt.Printf("  Config File:  %s\n", cfgFile)
	} else {
		fmt.Printf("  Config File:  %s (not found, using defaults)\n", cfgFile)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("  Load Error:   %v\n", err)
		return nil
	}

	debtor := cfg.ResolveDebtor("", "", "")
	fmt.Printf("  Log File:     %s\n", cfg.LogFile)
	fmt.Printf("  Debtor Name:  %s\n", debtor.Name)
	fmt.Printf("  Debtor IBAN:  %s\n", debtor.IBAN)
	fmt.Printf("  Debtor BIC:   %s\n", debtor.BIC)

	fmt.Println("\nDebtor Account Checks:")
	printCheck("IBAN", validation.ValidateIBAN(debtor.IBAN))
	printCheck("BIC", validation.ValidateBIC(debtor.BIC, debtor.IBAN, nil))

	fmt.Println("\nWrite Access:")
	printWritable("Working Dir", wd)
	if cfg.ReportDir != "" {
		printWritable("Report Dir", cfg.ReportDir)
	}

	fmt.Printf("\nSEPA country table: %d countries supported\n", validation.SupportedCountries())
	fmt.Println("=================================================================")

	return nil
}

// printCheck prints a single pass/fail line for a validation outcome.
func printCheck(label string, outcome validation.Outcome) {
	if outcome.Valid {
		fmt.Printf("  %-12s OK\n", label+":")
	} else {
		fmt.Printf("  %-12s FAIL - %s\n", label+":", outcome.Err)
	}
}

// printWritable prints a single pass/fail line for directory write access.
func printWritable(label, dir string) {
	if utils.WritableDir(dir) {
		fmt.Printf("  %-12s %s (writable)\n", label+":", dir)
	} else {
		fmt.Printf("  %-12s %s (NOT writable)\n", label+":", dir)
	}
}

// init registers the doctor command.
func init() {
	rootCmd.AddCommand(doctorCmd)
}
