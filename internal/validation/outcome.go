// =============================================================================
// CSV to SEPA XML Converter - Validation Outcome Types
// =============================================================================
//
// Field-level validation never returns a Go error: a failed check is data,
// not an exceptional condition. Each validator returns an Outcome that is
// either valid or carries a human-readable failure message. The amount
// validator additionally carries the parsed decimal value on success.
//
// Warnings (conditions worth flagging that do not invalidate a row, such as
// a BIC/IBAN country mismatch) are reported through an injected WarnFunc so
// the validators stay pure and independently testable.
//
// =============================================================================

package validation

import (
	"github.com/shopspring/decimal"
)

// Outcome is the result of validating a single field.
type Outcome struct {
	// Valid is true when every check passed.
	Valid bool

	// Err is the human-readable failure message. Empty when Valid.
	Err string
}

// AmountOutcome is the result of validating an amount field. On success it
// carries the parsed value so callers never re-parse the string.
type AmountOutcome struct {
	Outcome

	// Value is the parsed amount. Only meaningful when Valid.
	Value decimal.Decimal
}

// WarnFunc receives advisory diagnostics from validators. A nil WarnFunc
// silently discards warnings.
type WarnFunc func(format string, args ...interface{})

// warnf safely invokes a possibly-nil WarnFunc.
func (w WarnFunc) warnf(format string, args ...interface{}) {
	if w != nil {
		w(format, args...)
	}
}

// valid returns a passing outcome.
func valid() Outcome {
	return Outcome{Valid: true}
}

// invalid returns a failing outcome with the given message.
func invalid(msg string) Outcome {
	return Outcome{Valid: false, Err: msg}
}
