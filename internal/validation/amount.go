// =============================================================================
// CSV to SEPA XML Converter - Amount Validation
// =============================================================================
//
// A payment amount must parse as a decimal number, be strictly positive,
// and carry at most 2 decimal places. The decimal-place check runs against
// the original input string, not the parsed value: "1.005" must be rejected
// even though rounding would make it presentable.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateAmount validates a payment amount string and, on success, carries
// the parsed value so callers never re-parse.
func ValidateAmount(raw string) AmountOutcome {
	s := strings.TrimSpace(raw)
	if s == "" {
		return AmountOutcome{Outcome: invalid("Amount is empty")}
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return AmountOutcome{Outcome: invalid(fmt.Sprintf("Amount is not a valid number: %s", raw))}
	}

	if !value.IsPositive() {
		return AmountOutcome{Outcome: invalid(fmt.Sprintf("Amount must be greater than 0 (got %s)", value))}
	}

	// Textual check on the input, not the parsed value.
	if dot := strings.Index(s, "."); dot >= 0 {
		fraction := s[dot+1:]
		if len(fraction) > 2 {
			return AmountOutcome{
				Outcome: invalid(fmt.Sprintf("Amount cannot have more than 2 decimal places (got %d)", len(fraction))),
			}
		}
	}

	return AmountOutcome{Outcome: valid(), Value: value}
}
