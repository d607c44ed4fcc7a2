// =============================================================================
// CSV to SEPA XML Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the main command for turning a
// payment list into a SEPA XML file.
//
// COMMAND USAGE:
//   sepaconv convert <input> [output] [flags]
//
// FLAGS:
//   --debtor-name   : Debtor (payer) name, overrides the configuration
//   --debtor-iban   : Debtor IBAN, overrides the configuration
//   --debtor-bic    : Debtor BIC, overrides the configuration
//   --error-report  : Path for the rejection report CSV
//   --output-format : File-name template for a derived output path
//
// When the output path is omitted it is derived from the input file name
// ("payments.csv" -> "payments_sepa.xml"), or from the --output-format
// template ("{original}_{uuid}" and friends) when one is given.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/converter"
	"github.com/ginjaninja78/csv-to-sepa-xml/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// debtorName overrides the configured debtor name.
var debtorName string

// debtorIBAN overrides the configured debtor IBAN.
var debtorIBAN string

// debtorBIC overrides the configured debtor BIC.
var debtorBIC string

// errorReportPath is the explicit location for the rejection report.
var errorReportPath string

// outputFormat is the file-name template for a derived output path.
var outputFormat string

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <input> [output]",
	Short: "Convert a CSV or XLSX payment list to a SEPA pain.001 XML file",
	Long: `The convert command reads payment rows from the input file, validates
each row against SEPA rules, and writes the valid payments as a single
pain.001.001.03 payment batch.

Rows that fail validation are written to a rejection report CSV along
with their error details. The conversion succeeds as long as at least
one row validates; it fails only when the input cannot be read or no
row at all is acceptable.

The debtor account (the paying side) comes from the configuration file
and can be overridden per run with the --debtor-* flags.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

// runConvert executes the conversion pipeline and prints the summary.
func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if !utils.FileExists(inputPath) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	outputPath := resolveOutputPath(args, outputFormat)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	debtor := cfg.ResolveDebtor(debtorName, debtorIBAN, debtorBIC)

	conv := converter.New(converter.Options{
		InputPath:       inputPath,
		OutputPath:      outputPath,
		ErrorReportPath: errorReportPath,
		ReportDir:       cfg.ReportDir,
		Debtor:          debtor,
		Logger:          logger,
	})

	result, err := conv.Run()
	if err != nil {
		if result.ErrorReportFile != "" {
			fmt.Printf("Rejection report: %s\n", result.ErrorReportFile)
		}
		return err
	}

	fmt.Println("\nSUCCESS: SEPA XML created")
	fmt.Printf("  Input:    %s\n", inputPath)
	fmt.Printf("  Output:   %s\n", result.OutputFile)
	fmt.Printf("  Payments: %d\n", result.Stats.PaymentsAccepted)
	fmt.Printf("  Total:    EUR %s\n", result.Stats.TotalAmount.StringFixed(2))
	fmt.Printf("  Debtor:   %s\n", debtor.Name)

	if result.Stats.PaymentsRejected > 0 {
		fmt.Printf("  Rejected: %d row(s), see %s\n", result.Stats.PaymentsRejected, result.ErrorReportFile)
	}

	return nil
}

// resolveOutputPath determines the XML output location: an explicit
// second argument wins, then an --output-format template expanded next to
// the input, then the plain "{input}_sepa.xml" derivation.
func resolveOutputPath(args []string, format string) string {
	inputPath := args[0]
	if len(args) == 2 {
		return args[1]
	}
	if format != "" {
		name := utils.GenerateOutputFileName(format, inputPath)
		return filepath.Join(filepath.Dir(inputPath), name)
	}
	return utils.DefaultOutputPath(inputPath)
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the convert command and its flags.
func init() {
	convertCmd.Flags().StringVar(&debtorName, "debtor-name", "", "Debtor (payer) name")
	convertCmd.Flags().StringVar(&debtorIBAN, "debtor-iban", "", "Debtor IBAN")
	convertCmd.Flags().StringVar(&debtorBIC, "debtor-bic", "", "Debtor BIC")
	convertCmd.Flags().StringVar(&errorReportPath, "error-report", "", "Path for the rejection report CSV")
	convertCmd.Flags().StringVar(&outputFormat, "output-format", "",
		"Output file-name template ({original}, {uuid}, {timestamp}, {date}, {time})")

	rootCmd.AddCommand(convertCmd)
}
