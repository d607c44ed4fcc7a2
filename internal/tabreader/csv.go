// =============================================================================
// CSV to SEPA XML Converter - CSV Reader
// =============================================================================
//
// Streams a CSV payment file row by row. The reader is tolerant of the
// quirks of legacy exports: variable field counts, lazy quoting, and
// leading whitespace. Fully empty rows are skipped.
//
// =============================================================================

package tabreader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
)

// ReadCSV reads every payment row from a CSV file. The returned header
// lists the file's columns in input order.
func ReadCSV(path string) ([]types.RawRecord, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return readCSVFrom(bufio.NewReader(file))
}

// readCSVFrom parses CSV content from any reader. Split out for tests.
func readCSVFrom(r io.Reader) ([]types.RawRecord, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &MissingColumnsError{Missing: types.RequiredFields}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	header, err := checkHeader(headerRow)
	if err != nil {
		return nil, nil, err
	}

	var records []types.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		if isRowEmpty(row) {
			continue
		}

		records = append(records, rowToRecord(header, row))
	}

	return records, header, nil
}
