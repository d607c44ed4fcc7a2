// =============================================================================
// CSV to SEPA XML Converter - Table Reader
// =============================================================================
//
// This module turns an input payment file into the ordered RawRecord
// sequence the ingestor consumes. Two formats are supported, selected by
// file extension:
//   - .csv          : streamed through encoding/csv
//   - .xlsx / .xlsm : first worksheet, read via excelize
//
// The reader owns the header contract: the first row must name every
// required column (name, iban, bic, amount, reference). A missing column
// is fatal and reported before any row validation runs. Extra columns are
// carried along untouched.
//
// =============================================================================

package tabreader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
)

// MissingColumnsError reports required columns absent from the header row.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("input is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ReadFile reads a payment file and returns its rows in input order,
// together with the cleaned header naming every column in file order.
// Downstream consumers need the header to reproduce the input's column
// layout, e.g. in the rejection report. The format is chosen by
// extension; anything unrecognized is rejected.
func ReadFile(path string) ([]types.RawRecord, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	default:
		return nil, nil, fmt.Errorf("unsupported input format %q (expected .csv or .xlsx)", filepath.Ext(path))
	}
}

// checkHeader validates the header contract and returns the cleaned
// header slice.
func checkHeader(header []string) ([]string, error) {
	cleaned := make([]string, len(header))
	present := make(map[string]bool, len(header))

	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(stripBOM(h)))
		cleaned[i] = h
		present[h] = true
	}

	var missing []string
	for _, required := range types.RequiredFields {
		if !present[required] {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Missing: missing}
	}

	return cleaned, nil
}

// rowToRecord maps one data row onto the header. Short rows yield empty
// values for the trailing columns.
func rowToRecord(header []string, row []string) types.RawRecord {
	record := make(types.RawRecord, len(header))
	for i, h := range header {
		if i < len(row) {
			record[h] = strings.TrimSpace(row[i])
		} else {
			record[h] = ""
		}
	}
	return record
}

// isRowEmpty reports whether a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// stripBOM removes a UTF-8 byte order mark, which spreadsheet exports
// like to prepend to the first header cell.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
