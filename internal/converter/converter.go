// =============================================================================
// CSV to SEPA XML Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates the entire
// pipeline for a single file, from tabular input to SEPA XML output.
//
// CONVERSION PIPELINE:
//   1. Read the input file (CSV or XLSX)
//   2. Validate every row and partition into valid / rejected
//   3. Write the rejection report if any rows were rejected
//   4. Build the pain.001.001.03 document from the valid payments
//   5. Serialize and write the output file
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/config"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/ingest"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/logging"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/report"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/sepa"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/tabreader"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
	"github.com/ginjaninja78/csv-to-sepa-xml/pkg/utils"
)

// =============================================================================
// OPTIONS AND RESULT STRUCTURES
// =============================================================================

// Options configures a single conversion run.
type Options struct {
	// InputPath is the CSV or XLSX file to convert.
	InputPath string

	// OutputPath is where the SEPA XML is written.
	OutputPath string

	// ErrorReportPath is where the rejection report is written. When empty
	// it is derived from the input file name, placed in ReportDir.
	ErrorReportPath string

	// ReportDir is the directory for derived report paths. Empty means
	// "next to the input file". Created if it does not exist. Ignored
	// when ErrorReportPath is set.
	ReportDir string

	// Debtor identifies the paying account placed in the group header
	// and payment information block.
	Debtor config.DebtorProfile

	// Logger receives progress and warning messages. Defaults to a no-op
	// logger when nil.
	Logger logging.Logger

	// Clock supplies the current time for message IDs and report naming.
	// Defaults to time.Now.
	Clock func() time.Time
}

// Result represents the outcome of a conversion run.
type Result struct {
	// OutputFile is the path to the generated XML file.
	OutputFile string

	// ErrorReportFile is the path to the rejection report, or empty when
	// every row validated.
	ErrorReportFile string

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about a conversion run.
type Stats struct {
	// RowsRead is the number of data rows read from the input.
	RowsRead int

	// PaymentsAccepted is the number of rows that passed validation.
	PaymentsAccepted int

	// PaymentsRejected is the number of rows that failed validation.
	PaymentsRejected int

	// TotalAmount is the control sum over the accepted payments, in EUR.
	TotalAmount decimal.Decimal

	// ProcessingTime is the time taken for the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter runs the conversion pipeline.
type Converter struct {
	opts   Options
	logger logging.Logger
	clock  func() time.Time
}

// New creates a Converter for the given options.
func New(opts Options) *Converter {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Converter{opts: opts, logger: logger, clock: clock}
}

// Run executes the conversion pipeline.
//
// RETURNS:
//   - A Result struct with the output locations and statistics.
//   - An error if the input cannot be read, no row validates, or an
//     output file cannot be written. Individual invalid rows are not
//     errors; they land in the rejection report.
func (c *Converter) Run() (Result, error) {
	startWall := time.Now()
	result := Result{}

	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	c.logger.Info("Processing file: %s", c.opts.InputPath)

	records, header, err := tabreader.ReadFile(c.opts.InputPath)
	if err != nil {
		return result, fmt.Errorf("failed to read input: %w", err)
	}

	result.Stats.RowsRead = len(records)
	c.logger.Debug("Read %d data row(s)", len(records))

	// =========================================================================
	// STEP 2 + 3: VALIDATE, PARTITION, REPORT REJECTIONS
	// =========================================================================
	// The ingestor validates each row and hands rejected rows to the
	// reporter. Report writing failures are logged but do not abort the
	// run; a missing error report must never block a valid payment batch.

	reportPath := c.opts.ErrorReportPath
	if reportPath == "" {
		if c.opts.ReportDir != "" {
			if err := utils.EnsureDir(c.opts.ReportDir); err != nil {
				c.logger.Warn("%v", err)
			}
		}
		reportPath = report.DefaultPath(c.opts.InputPath, c.opts.ReportDir, c.clock())
	}
	reporter := &trackingReporter{inner: report.NewCSVReporter(reportPath, header)}

	ingestor := ingest.New(reporter, c.logger.Warn)
	batch, err := ingestor.Ingest(records)
	if reporter.wrote {
		result.ErrorReportFile = reportPath
	}
	if err != nil {
		return result, err
	}

	result.Stats.PaymentsAccepted = len(batch.Valid)
	result.Stats.PaymentsRejected = len(batch.Rejected)
	result.Stats.TotalAmount = batch.TotalAmount()

	if len(batch.Rejected) > 0 {
		c.logger.Warn("%d row(s) rejected, details in %s", len(batch.Rejected), reportPath)
	}

	// =========================================================================
	// STEP 4: BUILD THE SEPA DOCUMENT
	// =========================================================================

	builder := sepa.NewBuilder()
	builder.Clock = c.clock
	doc := builder.Build(batch.Valid, c.opts.Debtor)

	c.logger.Debug("Built document %s with %d transaction(s)",
		doc.CstmrCdtTrfInitn.GrpHdr.MsgId, len(batch.Valid))

	// =========================================================================
	// STEP 5: SERIALIZE AND WRITE OUTPUT
	// =========================================================================

	xmlBytes, err := sepa.Serialize(doc)
	if err != nil {
		return result, fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := os.WriteFile(c.opts.OutputPath, xmlBytes, 0644); err != nil {
		return result, fmt.Errorf("failed to write output file: %w", err)
	}

	result.OutputFile = c.opts.OutputPath
	result.Stats.ProcessingTime = time.Since(startWall)

	c.logger.Info("Wrote %d payment(s) totalling %s EUR to %s",
		result.Stats.PaymentsAccepted, result.Stats.TotalAmount.StringFixed(2), c.opts.OutputPath)

	return result, nil
}

// trackingReporter records whether a report was actually written, so the
// Result only names a report file that exists.
type trackingReporter struct {
	inner *report.CSVReporter
	wrote bool
}

func (t *trackingReporter) Report(rejected []types.RowResult) error {
	if err := t.inner.Report(rejected); err != nil {
		return err
	}
	t.wrote = true
	return nil
}
