// =============================================================================
// CSV to SEPA XML Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - tabreader
//   - validation
//   - ingest
//   - sepa
//   - report
//
// =============================================================================

package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUT RECORD TYPES
// =============================================================================

// RawRecord is one input row as delivered by the table reader: a mapping
// from column header to the raw string value. Additional columns beyond the
// required ones are carried along but ignored by validation.
type RawRecord map[string]string

// RequiredFields lists the columns every input file must provide.
// A missing column is a fatal ingestion error, reported before any row
// validation runs.
var RequiredFields = []string{"name", "iban", "bic", "amount", "reference"}

// Get returns the named field with surrounding whitespace removed.
func (r RawRecord) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// =============================================================================
// VALIDATION RESULT TYPES
// =============================================================================

// RowResult is the validation outcome for a single input row.
type RowResult struct {
	// Record is the original input row, unchanged.
	Record RawRecord

	// RowNumber is the user-facing row number. Numbering starts at 2
	// because row 1 of the source file is the header, so the number
	// matches what the user sees in a spreadsheet.
	RowNumber int

	// Valid is true when Errors is empty.
	Valid bool

	// Errors holds every failing field's message, in validation order.
	Errors []string
}

// ValidatedPayment is a payment that has passed row validation. It is only
// ever produced by the row validator, which makes "the document builder
// receives pre-validated input" a property of the type system rather than
// a convention.
type ValidatedPayment struct {
	Name      string
	IBAN      string
	BIC       string
	Reference string

	// Amount is the parsed payment amount, at most 2 decimal places.
	Amount decimal.Decimal

	// RowNumber is the source row this payment came from.
	RowNumber int
}

// =============================================================================
// BATCH TYPES
// =============================================================================

// PaymentBatch is the result of ingesting one input file: every row lands
// in exactly one of the two partitions, both in original row order.
type PaymentBatch struct {
	// Valid contains the payments that passed all field validations.
	Valid []ValidatedPayment

	// Rejected contains the rows that failed validation, with their
	// error messages attached.
	Rejected []RowResult
}

// TotalRows returns the number of input rows the batch was built from.
func (b *PaymentBatch) TotalRows() int {
	return len(b.Valid) + len(b.Rejected)
}

// TotalAmount returns the exact decimal sum of all valid payment amounts.
func (b *PaymentBatch) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Valid {
		total = total.Add(p.Amount)
	}
	return total
}
