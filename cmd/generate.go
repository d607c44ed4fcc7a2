// =============================================================================
// CSV to SEPA XML Converter - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which produces sample payment
// CSV files for testing and demonstrations.
//
// COMMAND USAGE:
//   sepaconv generate [output] [flags]
//
// FLAGS:
//   --rows         : Number of data rows to generate (default 100)
//   --invalid-rate : Fraction of rows to deliberately corrupt (default 0)
//   --seed         : Random seed, 0 uses the current time
//
// Generated IBANs are synthesized with correct MOD-97 check digits, so a
// generated file converts cleanly unless --invalid-rate is set.
//
// =============================================================================

package cmd

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/validation"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// generateRows is the number of data rows to generate.
var generateRows int

// invalidRate is the fraction of rows to corrupt, between 0 and 1.
var invalidRate float64

// generateSeed fixes the random source for reproducible files.
var generateSeed int64

// =============================================================================
// SAMPLE DATA POOLS
// =============================================================================

var firstNames = []string{
	"Maria", "Hans", "Sophie", "Lukas", "Emma", "Felix", "Anna", "Maximilian",
	"Laura", "Paul", "Julia", "Leon", "Giovanni", "Francesco", "Marco",
	"Jean", "Pierre", "Michel", "Carlos", "Juan", "Jose", "Elena", "Ana",
}

var lastNames = []string{
	"Schmidt", "Mueller", "Schneider", "Fischer", "Weber", "Meyer", "Wagner",
	"Rossi", "Russo", "Ferrari", "Martin", "Bernard", "Dubois",
	"Garcia", "Rodriguez", "Martinez", "Popescu", "Ionescu", "Popa",
}

var companySuffixes = []string{
	"GmbH", "AG", "KG", "Consulting", "Services", "Solutions", "Group",
	"Trading", "Partners", "Logistics",
}

var referenceTypes = []string{
	"Invoice", "Contract", "Payment", "Salary", "Consulting", "Services",
	"Order", "Commission", "Refund", "Subscription", "License", "Maintenance",
}

// bbanSpec describes how to synthesize a BBAN for one country: a fixed
// bank-code prefix followed by random digits up to the country's IBAN
// length. The BICs listed are real and pass format validation.
type bbanSpec struct {
	country string
	prefix  string
	bics    []string
}

var bbanSpecs = []bbanSpec{
	{"DE", "37040044", []string{"COBADEFFXXX", "DEUTDEFFXXX", "INGDDEFFXXX"}},
	{"FR", "30006000", []string{"BNPAFRPPXXX", "AGRIFRPPXXX", "SOGEFRPPXXX"}},
	{"ES", "21000418", []string{"CAIXESBBXXX", "BBVAESMM", "BSCHESMM"}},
	{"NL", "ABNA", []string{"ABNANL2AXXX", "RABONL2UXXX", "INGBNL2AXXX"}},
	{"BE", "539", []string{"GKCCBEBB", "KREDBEBB", "GEBABEBB"}},
	{"AT", "19043", []string{"BKAUATWWXXX", "GIBAATWWXXX", "RLNWATWWXXX"}},
}

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate [output]",
	Short: "Generate a sample payment CSV file",
	Long: `The generate command writes a CSV file of synthetic payments in the
input format the convert command expects. IBANs are built with correct
MOD-97 check digits across several SEPA countries.

With --invalid-rate a fraction of the rows is deliberately corrupted
(broken check digits, malformed BICs, negative amounts) to exercise the
rejection reporting. Use --seed for reproducible output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

// runGenerate writes the sample file.
func runGenerate(cmd *cobra.Command, args []string) error {
	output := "sample_payments.csv"
	if len(args) == 1 {
		output = args[0]
	}

	if invalidRate < 0 || invalidRate > 1 {
		return fmt.Errorf("invalid --invalid-rate %v: must be between 0 and 1", invalidRate)
	}

	seed := generateSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(types.RequiredFields); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	corrupted := 0
	for i := 0; i < generateRows; i++ {
		row := generatePayment(rng, i)
		if rng.Float64() < invalidRate {
			corruptPayment(rng, row)
			corrupted++
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	fmt.Printf("Generated %d payment row(s) in %s", generateRows, output)
	if corrupted > 0 {
		fmt.Printf(" (%d deliberately invalid)", corrupted)
	}
	fmt.Println()

	return nil
}

// generatePayment builds one valid payment row in RequiredFields order.
func generatePayment(rng *rand.Rand, index int) []string {
	spec := bbanSpecs[rng.Intn(len(bbanSpecs))]

	length, _ := validation.IBANLengthForCountry(spec.country)
	bban := spec.prefix
	for len(bban) < length-4 {
		bban += string(rune('0' + rng.Intn(10)))
	}
	iban := spec.country + validation.ComputeCheckDigits(spec.country, bban) + bban

	var name string
	if rng.Float64() < 0.7 {
		name = firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
	} else {
		name = lastNames[rng.Intn(len(lastNames))] + " " + companySuffixes[rng.Intn(len(companySuffixes))]
	}

	amount := fmt.Sprintf("%.2f", 50.0+rng.Float64()*49950.0)
	reference := fmt.Sprintf("%s %d", referenceTypes[rng.Intn(len(referenceTypes))], 2024001+index)

	return []string{name, iban, spec.bics[rng.Intn(len(spec.bics))], amount, reference}
}

// corruptPayment breaks one field of the row so validation rejects it.
// Row layout follows types.RequiredFields: name, iban, bic, amount, reference.
func corruptPayment(rng *rand.Rand, row []string) {
	switch rng.Intn(3) {
	case 0:
		// Check digits "00" and "01" are never valid under MOD-97.
		row[1] = row[1][:2] + "00" + row[1][4:]
	case 1:
		row[2] = "BAD"
	case 2:
		row[3] = "-" + row[3]
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command and its flags.
func init() {
	generateCmd.Flags().IntVar(&generateRows, "rows", 100, "Number of data rows to generate")
	generateCmd.Flags().Float64Var(&invalidRate, "invalid-rate", 0, "Fraction of rows to deliberately corrupt (0..1)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 uses the current time)")

	rootCmd.AddCommand(generateCmd)
}
