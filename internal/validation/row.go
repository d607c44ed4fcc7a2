// =============================================================================
// CSV to SEPA XML Converter - Row Validation
// =============================================================================
//
// Composes the field validators over one payment record. Every failing
// field contributes a message naming the field, the payee, and the
// offending raw value; validation never stops at the first problem, so a
// rejected row's report lists everything wrong with it at once.
//
// A ValidatedPayment is returned only when the row is clean. That type is
// the document builder's admission ticket: there is no other way to
// construct one, so unvalidated data cannot reach XML generation.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
)

// ValidateRow validates one payment record. rowNumber is the user-facing
// row number (2 for the first data row). The returned ValidatedPayment is
// nil unless the row passed every check.
func ValidateRow(record types.RawRecord, rowNumber int, warn WarnFunc) (types.RowResult, *types.ValidatedPayment) {
	result := types.RowResult{
		Record:    record,
		RowNumber: rowNumber,
	}

	name := record.Get("name")
	if name == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Name is empty", rowNumber))
		// Keep validating the rest of the row; later messages fall back
		// to the row number as the payee label.
		name = fmt.Sprintf("Row %d", rowNumber)
	}

	iban := record.Get("iban")
	if outcome := ValidateIBAN(iban); !outcome.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid IBAN for '%s': %s - %s", name, iban, outcome.Err))
	}

	bic := record.Get("bic")
	if outcome := ValidateBIC(bic, iban, warn); !outcome.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid BIC for '%s': %s - %s", name, bic, outcome.Err))
	}

	amountRaw := record.Get("amount")
	amountOutcome := ValidateAmount(amountRaw)
	if !amountOutcome.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid amount for '%s': %s - %s", name, amountRaw, amountOutcome.Err))
	}

	// An empty reference is allowed on the wire (RmtInf is optional) but
	// worth surfacing for operational visibility.
	reference := record.Get("reference")
	if reference == "" {
		warn.warnf("Row %d ('%s'): Reference is empty", rowNumber, name)
	}

	result.Valid = len(result.Errors) == 0
	if !result.Valid {
		return result, nil
	}

	// Store the wire form: the validators accept paper-format IBANs and
	// lowercase BICs, but the document must carry the normalized values.
	return result, &types.ValidatedPayment{
		Name:      name,
		IBAN:      strings.ReplaceAll(iban, " ", ""),
		BIC:       strings.ToUpper(bic),
		Reference: reference,
		Amount:    amountOutcome.Value,
		RowNumber: rowNumber,
	}
}
