// =============================================================================
// CSV to SEPA XML Converter - XLSX Reader
// =============================================================================
//
// Reads payment rows from the first worksheet of an Excel workbook. Cell
// values arrive as the formatted strings excelize produces, which matches
// the CSV path: validation always sees what the user sees in the sheet.
//
// =============================================================================

package tabreader

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads every payment row from the first sheet of a workbook.
// The returned header lists the sheet's columns in input order.
func ReadXLSX(path string) ([]types.RawRecord, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, nil, &MissingColumnsError{Missing: types.RequiredFields}
	}

	header, err := checkHeader(rows[0])
	if err != nil {
		return nil, nil, err
	}

	var records []types.RawRecord
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			// Trailing blank rows are common in hand-edited sheets.
			continue
		}
		records = append(records, rowToRecord(header, row))
	}

	return records, header, nil
}
