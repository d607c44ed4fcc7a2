package validation

import (
	"fmt"
	"testing"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goodRecord() types.RawRecord {
	return types.RawRecord{
		"name":      "Maria Schmidt",
		"iban":      "DE44500105175407324931",
		"bic":       "COBADEFFXXX",
		"amount":    "1500.00",
		"reference": "Invoice 2024-001",
	}
}

func TestValidateRowCleanRecordYieldsValidatedPayment(t *testing.T) {
	result, payment := ValidateRow(goodRecord(), 2, nil)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, result.RowNumber)

	require.NotNil(t, payment)
	assert.Equal(t, "Maria Schmidt", payment.Name)
	assert.Equal(t, "DE44500105175407324931", payment.IBAN)
	assert.Equal(t, "COBADEFFXXX", payment.BIC)
	assert.Equal(t, "Invoice 2024-001", payment.Reference)
	assert.Equal(t, "1500", payment.Amount.String())
	assert.Equal(t, 2, payment.RowNumber)
}

func TestValidateRowCollectsEveryFieldError(t *testing.T) {
	record := types.RawRecord{
		"name":      "",
		"iban":      "DE123",
		"bic":       "SHORT",
		"amount":    "-5",
		"reference": "",
	}

	result, payment := ValidateRow(record, 7, nil)

	assert.False(t, result.Valid)
	assert.Nil(t, payment)
	require.Len(t, result.Errors, 4)

	assert.Contains(t, result.Errors[0], "Row 7: Name is empty")
	// After the name error, subsequent messages use the row-number
	// placeholder as the payee label and quote the offending value.
	assert.Contains(t, result.Errors[1], "Invalid IBAN for 'Row 7': DE123")
	assert.Contains(t, result.Errors[2], "Invalid BIC for 'Row 7': SHORT")
	assert.Contains(t, result.Errors[3], "Invalid amount for 'Row 7': -5")
}

func TestValidateRowSingleBadFieldRejectsRow(t *testing.T) {
	record := goodRecord()
	record["iban"] = "DE89370400440532013001" // check digit off by one

	result, payment := ValidateRow(record, 3, nil)

	assert.False(t, result.Valid)
	assert.Nil(t, payment)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Invalid IBAN for 'Maria Schmidt'")
	assert.Contains(t, result.Errors[0], "check digit")
}

func TestValidateRowEmptyReferenceIsWarningOnly(t *testing.T) {
	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	record := goodRecord()
	record["reference"] = "  "

	result, payment := ValidateRow(record, 4, warn)

	assert.True(t, result.Valid, "empty reference must not reject the row")
	require.NotNil(t, payment)
	assert.Equal(t, "", payment.Reference)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Reference is empty")
	assert.Contains(t, warnings[0], "Row 4")
}

func TestValidateRowNormalizesWireForm(t *testing.T) {
	record := goodRecord()
	record["iban"] = "DE44 5001 0517 5407 3249 31"
	record["bic"] = "cobadeffxxx"

	result, payment := ValidateRow(record, 2, nil)

	assert.True(t, result.Valid, "errors: %v", result.Errors)
	require.NotNil(t, payment)
	assert.Equal(t, "DE44500105175407324931", payment.IBAN)
	assert.Equal(t, "COBADEFFXXX", payment.BIC)
}

func TestValidateRowTrimsFieldValues(t *testing.T) {
	record := types.RawRecord{
		"name":      "  Hans Weber  ",
		"iban":      " DE44500105175407324931 ",
		"bic":       " BNPAFRPP ",
		"amount":    " 12.34 ",
		"reference": " ref ",
	}

	result, payment := ValidateRow(record, 2, nil)

	assert.True(t, result.Valid, "errors: %v", result.Errors)
	require.NotNil(t, payment)
	assert.Equal(t, "Hans Weber", payment.Name)
	assert.Equal(t, "DE44500105175407324931", payment.IBAN)
	assert.Equal(t, "ref", payment.Reference)
}
