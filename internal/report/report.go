// =============================================================================
// CSV to SEPA XML Converter - Rejection Report
// =============================================================================
//
// Writes the rejection report: one CSV row per rejected payment, carrying
// the user-facing row number, every original field, and the row's error
// messages joined with " | ". The report exists so an operator can fix the
// source data without digging through logs.
//
// FORMAT:
//   row_number,<input columns in file order>,error_details
//
// For the plain five-column input that is:
//   row_number,name,iban,bic,amount,reference,error_details
//
// =============================================================================

package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
)

// errorSeparator joins a row's individual error messages in the
// error_details column.
const errorSeparator = " | "

// CSVReporter writes rejection reports to a fixed path. It satisfies
// ingest.RejectionReporter.
type CSVReporter struct {
	// Path is the output file. The parent directory must exist.
	Path string

	// Columns names the input's columns in file order. Every listed
	// column is reproduced in the report, so rows with extra columns
	// beyond the required ones come back complete. Empty falls back to
	// the required columns.
	Columns []string
}

// NewCSVReporter creates a reporter writing to path, reproducing the
// given input columns.
func NewCSVReporter(path string, columns []string) *CSVReporter {
	return &CSVReporter{Path: path, Columns: columns}
}

// Report writes one row per rejected record. Called by the ingestor only
// when at least one row was rejected.
func (r *CSVReporter) Report(rejected []types.RowResult) error {
	file, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("failed to create rejection report: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	columns := r.Columns
	if len(columns) == 0 {
		columns = types.RequiredFields
	}

	header := append(append([]string{"row_number"}, columns...), "error_details")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range rejected {
		out := make([]string, 0, len(header))
		out = append(out, strconv.Itoa(row.RowNumber))
		for _, field := range columns {
			out = append(out, row.Record[field])
		}
		out = append(out, strings.Join(row.Errors, errorSeparator))

		if err := writer.Write(out); err != nil {
			return fmt.Errorf("failed to write report row %d: %w", row.RowNumber, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush rejection report: %w", err)
	}

	return nil
}

// DefaultPath derives the report location from the input file:
// "payments.csv" becomes "payments_errors_20240315_103000.csv" in dir
// (or next to the input when dir is empty).
func DefaultPath(inputPath, dir string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	name := fmt.Sprintf("%s_errors_%s.csv", base, now.Format("20060102_150405"))
	return filepath.Join(dir, name)
}
