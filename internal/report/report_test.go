package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
)

func rejectedRow(rowNumber int, name string, errors ...string) types.RowResult {
	return types.RowResult{
		Record: types.RawRecord{
			"name":      name,
			"iban":      "XX00INVALID",
			"bic":       "SHORT",
			"amount":    "-5",
			"reference": "INV-1",
		},
		RowNumber: rowNumber,
		Valid:     false,
		Errors:    errors,
	}
}

func readReport(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestReportWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")
	reporter := NewCSVReporter(path, nil)

	err := reporter.Report([]types.RowResult{
		rejectedRow(2, "Alice", "Invalid IBAN for 'Alice': XX00INVALID - Invalid or unsupported SEPA country code: XX"),
		rejectedRow(5, "Bob", "Invalid BIC for 'Bob': SHORT - BIC must be 8 or 11 characters", "Invalid amount for 'Bob': -5"),
	})
	require.NoError(t, err)

	rows := readReport(t, path)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"row_number", "name", "iban", "bic", "amount", "reference", "error_details"}, rows[0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "Alice", rows[1][1])
	assert.Equal(t, "5", rows[2][0])

	// Multiple errors are joined in a single cell.
	assert.Equal(t, "Invalid BIC for 'Bob': SHORT - BIC must be 8 or 11 characters | Invalid amount for 'Bob': -5", rows[2][6])
}

func TestReportPreservesOriginalFieldValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")
	reporter := NewCSVReporter(path, nil)

	row := rejectedRow(3, "Carol", "Invalid amount for 'Carol': -5")
	require.NoError(t, reporter.Report([]types.RowResult{row}))

	rows := readReport(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"3", "Carol", "XX00INVALID", "SHORT", "-5", "INV-1", "Invalid amount for 'Carol': -5"}, rows[1])
}

func TestReportReproducesAllInputColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")
	columns := []string{"name", "iban", "bic", "amount", "reference", "department"}
	reporter := NewCSVReporter(path, columns)

	row := rejectedRow(2, "Alice", "bad")
	row.Record["department"] = "SALES"
	require.NoError(t, reporter.Report([]types.RowResult{row}))

	rows := readReport(t, path)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"row_number", "name", "iban", "bic", "amount", "reference", "department", "error_details"}, rows[0])
	// Columns beyond the required five must come back with their values.
	assert.Equal(t, []string{"2", "Alice", "XX00INVALID", "SHORT", "-5", "INV-1", "SALES", "bad"}, rows[1])
}

func TestReportFailsOnMissingDirectory(t *testing.T) {
	reporter := NewCSVReporter(filepath.Join(t.TempDir(), "missing", "errors.csv"), nil)

	err := reporter.Report([]types.RowResult{rejectedRow(2, "Alice", "bad")})
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	path := DefaultPath(filepath.Join("data", "payments.csv"), "", now)
	assert.Equal(t, filepath.Join("data", "payments_errors_20240315_103000.csv"), path)

	path = DefaultPath("payments.xlsx", "reports", now)
	assert.Equal(t, filepath.Join("reports", "payments_errors_20240315_103000.csv"), path)
}
