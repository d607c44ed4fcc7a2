// =============================================================================
// CSV to SEPA XML Converter - IBAN Validation
// =============================================================================
//
// Validates an IBAN in stages:
//   1. Character set: uppercase letters and digits only
//   2. Minimum length (15, the shortest SEPA IBAN, Norway)
//   3. Country code present in the SEPA table
//   4. Exact length for that country
//   5. ISO 7064 MOD-97-10 check digits
//
// The MOD-97 step rearranges the IBAN (first four characters moved to the
// end), maps letters to two-digit numbers (A=10 ... Z=35), and interprets
// the result as one decimal numeral. That numeral routinely exceeds 30
// digits, so the arithmetic MUST use arbitrary-precision integers: a fixed
// 64-bit integer silently overflows and corrupts validation for longer
// IBANs.
//
// =============================================================================

package validation

import (
	"fmt"
	"math/big"
	"strings"
)

// minIBANLength is the length of the shortest valid SEPA IBAN (NO, 15).
const minIBANLength = 15

var mod97 = big.NewInt(97)

// ValidateIBAN validates IBAN format, country code, length, and check
// digits. It is pure: same input, same outcome, no I/O.
func ValidateIBAN(raw string) Outcome {
	iban := strings.TrimSpace(raw)
	if iban == "" {
		return invalid("IBAN is empty")
	}

	// Paper-format IBANs carry grouping spaces; strip them before the
	// character-set check.
	iban = strings.ReplaceAll(iban, " ", "")

	for _, r := range iban {
		if !isUpperAlpha(byte(r)) && !isDigit(byte(r)) {
			return invalid("IBAN must contain only uppercase letters and digits (no spaces or special characters)")
		}
	}

	if len(iban) < minIBANLength {
		return invalid(fmt.Sprintf("IBAN too short (got %d chars, minimum is %d)", len(iban), minIBANLength))
	}

	countryCode := iban[:2]
	expectedLength, ok := IBANLengthForCountry(countryCode)
	if !ok {
		return invalid(fmt.Sprintf("Invalid or unsupported SEPA country code: %s", countryCode))
	}

	if len(iban) != expectedLength {
		return invalid(fmt.Sprintf("Wrong length for %s (expected %d chars, got %d)", countryCode, expectedLength, len(iban)))
	}

	if !checkMod97(iban) {
		return invalid("Invalid IBAN check digit (MOD-97 validation failed)")
	}

	return valid()
}

// checkMod97 performs the ISO 7064 MOD-97-10 check. The IBAN must already
// be uppercase alphanumeric.
func checkMod97(iban string) bool {
	// Move the first four characters (country code + check digits) to
	// the end, then expand letters to their two-digit values.
	rearranged := iban[4:] + iban[:4]

	var numeral strings.Builder
	numeral.Grow(len(rearranged) * 2)

	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if isDigit(c) {
			numeral.WriteByte(c)
		} else {
			// A=10, B=11, ..., Z=35
			fmt.Fprintf(&numeral, "%d", int(c)-'A'+10)
		}
	}

	value, ok := new(big.Int).SetString(numeral.String(), 10)
	if !ok {
		return false
	}

	return new(big.Int).Mod(value, mod97).Int64() == 1
}

// ComputeCheckDigits returns the two MOD-97 check digits for a country code
// and BBAN (the account part of the IBAN). Used by the sample-data
// generator; validation never calls it.
func ComputeCheckDigits(countryCode, bban string) string {
	rearranged := bban + countryCode + "00"

	var numeral strings.Builder
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if isDigit(c) {
			numeral.WriteByte(c)
		} else {
			fmt.Fprintf(&numeral, "%d", int(c)-'A'+10)
		}
	}

	value, ok := new(big.Int).SetString(numeral.String(), 10)
	if !ok {
		return "00"
	}

	remainder := new(big.Int).Mod(value, mod97).Int64()
	return fmt.Sprintf("%02d", 98-remainder)
}

func isUpperAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
