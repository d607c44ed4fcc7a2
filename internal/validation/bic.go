// =============================================================================
// CSV to SEPA XML Converter - BIC Validation
// =============================================================================
//
// A BIC (ISO 9362) is 8 or 11 characters:
//   positions 1-4  : bank code, letters
//   positions 5-6  : country code, letters
//   positions 7-8  : location code, alphanumeric
//   positions 9-11 : branch code, alphanumeric (11-character form only)
//
// When the creditor's IBAN is supplied, its country code is compared with
// the BIC's. A mismatch is reported as a warning, not a failure:
// cross-border correspondent-bank setups are legitimate.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"
)

// ValidateBIC validates a BIC/SWIFT code. ibanForCrossCheck may be empty;
// when given, its country code is cross-checked against the BIC's and a
// mismatch goes to the warning sink.
func ValidateBIC(raw, ibanForCrossCheck string, warn WarnFunc) Outcome {
	bic := strings.ToUpper(strings.TrimSpace(raw))
	if bic == "" {
		return invalid("BIC is empty")
	}

	if len(bic) != 8 && len(bic) != 11 {
		return invalid(fmt.Sprintf("BIC must be exactly 8 or 11 characters (got %d)", len(bic)))
	}

	if !isAlnum(bic) {
		return invalid("BIC must contain only letters and digits")
	}

	if !isAlpha(bic[:4]) {
		return invalid("BIC positions 1-4 (bank code) must be letters")
	}

	if !isAlpha(bic[4:6]) {
		return invalid("BIC positions 5-6 (country code) must be letters")
	}

	// Positions 7-8 (location) and 9-11 (branch) are alphanumeric, which
	// the whole-string check above already guarantees. The branch check
	// stays explicit so an 11-character BIC failure names the right part.
	if !isAlnum(bic[6:8]) {
		return invalid("BIC positions 7-8 (location code) must be alphanumeric")
	}

	if len(bic) == 11 && !isAlnum(bic[8:11]) {
		return invalid("BIC positions 9-11 (branch code) must be alphanumeric")
	}

	if len(ibanForCrossCheck) >= 2 {
		ibanCountry := strings.ToUpper(ibanForCrossCheck[:2])
		bicCountry := bic[4:6]
		if ibanCountry != bicCountry {
			warn.warnf("BIC country code (%s) does not match IBAN country code (%s)", bicCountry, ibanCountry)
		}
	}

	return valid()
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isUpperAlpha(s[i]) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isUpperAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
