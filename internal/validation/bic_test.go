package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBIC(t *testing.T) {
	cases := []struct {
		bic     string
		valid   bool
		errPart string
		desc    string
	}{
		{"COBADEFFXXX", true, "", "valid 11-char BIC"},
		{"BNPAFRPP", true, "", "valid 8-char BIC"},
		{"cobadeffxxx", true, "", "lowercase input is normalized"},
		{" DEUTDEFF ", true, "", "surrounding whitespace is trimmed"},
		{"", false, "BIC is empty", "empty input"},
		{"SHORT", false, "8 or 11 characters", "too short"},
		{"TOOLONGBICCODE", false, "8 or 11 characters", "too long"},
		{"COBADEFF9", false, "8 or 11 characters", "nine characters"},
		{"COBA-EFF", false, "only letters and digits", "special character"},
		{"1234DEFFXXX", false, "bank code", "digits in bank code"},
		{"COBA12FFXXX", false, "country code", "digits in country code"},
	}

	for _, tc := range cases {
		outcome := ValidateBIC(tc.bic, "", nil)
		assert.Equal(t, tc.valid, outcome.Valid, "%s: %q -> %s", tc.desc, tc.bic, outcome.Err)
		if tc.errPart != "" {
			assert.Contains(t, outcome.Err, tc.errPart, tc.desc)
		}
	}
}

func TestValidateBICCountryMismatchIsWarningNotError(t *testing.T) {
	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	// French BIC against a German IBAN: legitimate cross-border setup,
	// must stay valid but be flagged.
	outcome := ValidateBIC("BNPAFRPP", "DE44500105175407324931", warn)
	assert.True(t, outcome.Valid)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "FR")
	assert.Contains(t, warnings[0], "DE")

	// Matching countries: no warning.
	warnings = nil
	outcome = ValidateBIC("COBADEFFXXX", "DE44500105175407324931", warn)
	assert.True(t, outcome.Valid)
	assert.Empty(t, warnings)
}

func TestValidateBICNilWarnSinkIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		ValidateBIC("BNPAFRPP", "DE44500105175407324931", nil)
	})
}
