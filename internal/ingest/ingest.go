// =============================================================================
// CSV to SEPA XML Converter - Payment Ingestor
// =============================================================================
//
// The ingestor consumes the raw records produced by a table reader, runs
// row validation over each, and partitions the batch into valid payments
// and rejected rows. Row order is preserved within both partitions and
// every input row lands in exactly one of them.
//
// Rejected rows trigger the injected RejectionReporter. Reporting is
// advisory: a reporter failure is logged through the warning sink and the
// valid partition is still returned.
//
// =============================================================================

package ingest

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-sepa-xml/internal/types"
	"github.com/ginjaninja78/csv-to-sepa-xml/internal/validation"
)

// firstDataRow is the user-facing number of the first data row. Row 1 of
// the source file is the header.
const firstDataRow = 2

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// RejectionReporter renders a report of rejected rows. Implementations own
// the output format and destination; the ingestor only decides when to
// call it.
type RejectionReporter interface {
	Report(rejected []types.RowResult) error
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// EmptyInputError is the fatal condition for a batch that cannot produce a
// document: no input rows at all, or no row survived validation.
type EmptyInputError struct {
	Reason string
}

func (e *EmptyInputError) Error() string {
	return e.Reason
}

// =============================================================================
// INGESTOR
// =============================================================================

// Ingestor validates and partitions one batch of raw records.
type Ingestor struct {
	// Reporter receives the rejected rows. May be nil.
	Reporter RejectionReporter

	// Warn receives validator warnings and advisory failures. May be nil.
	Warn validation.WarnFunc
}

// New creates an Ingestor.
func New(reporter RejectionReporter, warn validation.WarnFunc) *Ingestor {
	return &Ingestor{Reporter: reporter, Warn: warn}
}

// Ingest validates every record in order and returns the partitioned
// batch. Row numbers start at 2 to match spreadsheet line numbers.
//
// Returns an *EmptyInputError when records is empty or no row passed
// validation - a batch with zero valid payments is not actionable.
func (in *Ingestor) Ingest(records []types.RawRecord) (*types.PaymentBatch, error) {
	if len(records) == 0 {
		return nil, &EmptyInputError{Reason: "input contains no payment rows"}
	}

	batch := &types.PaymentBatch{}

	for i, record := range records {
		rowNumber := firstDataRow + i

		result, payment := validation.ValidateRow(record, rowNumber, in.Warn)
		if result.Valid {
			batch.Valid = append(batch.Valid, *payment)
		} else {
			batch.Rejected = append(batch.Rejected, result)
		}
	}

	if len(batch.Rejected) > 0 && in.Reporter != nil {
		if err := in.Reporter.Report(batch.Rejected); err != nil {
			// Advisory only: a failed report never blocks the valid set.
			in.warnf("failed to write rejection report: %v", err)
		}
	}

	if len(batch.Valid) == 0 {
		return nil, &EmptyInputError{
			Reason: fmt.Sprintf("no valid payments found (%d row(s) rejected)", len(batch.Rejected)),
		}
	}

	return batch, nil
}

func (in *Ingestor) warnf(format string, args ...interface{}) {
	if in.Warn != nil {
		in.Warn(format, args...)
	}
}
