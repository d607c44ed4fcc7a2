// =============================================================================
// CSV to SEPA XML Converter - SEPA Country Table
// =============================================================================
//
// IBAN lengths are fixed per country. The table below covers every SEPA
// scheme country; an IBAN whose country code is not listed here is rejected
// as unsupported.
//
// =============================================================================

package validation

// sepaCountryIBANLengths maps SEPA country codes to their required IBAN
// length. Source: ECB SEPA country list / IBAN registry.
var sepaCountryIBANLengths = map[string]int{
	"AD": 24, // Andorra
	"AL": 28, // Albania
	"AT": 20, // Austria
	"BE": 16, // Belgium
	"BG": 22, // Bulgaria
	"CH": 21, // Switzerland
	"CY": 28, // Cyprus
	"CZ": 24, // Czech Republic
	"DE": 22, // Germany
	"DK": 18, // Denmark
	"EE": 20, // Estonia
	"ES": 24, // Spain
	"FI": 18, // Finland
	"FR": 27, // France
	"GB": 22, // United Kingdom
	"GI": 23, // Gibraltar
	"GR": 27, // Greece
	"HR": 21, // Croatia
	"HU": 28, // Hungary
	"IE": 22, // Ireland
	"IS": 26, // Iceland
	"IT": 27, // Italy
	"LI": 21, // Liechtenstein
	"LT": 20, // Lithuania
	"LU": 20, // Luxembourg
	"LV": 21, // Latvia
	"MC": 27, // Monaco
	"MD": 24, // Moldova
	"ME": 22, // Montenegro
	"MK": 19, // North Macedonia
	"MT": 31, // Malta
	"NL": 18, // Netherlands
	"NO": 15, // Norway
	"PL": 28, // Poland
	"PT": 25, // Portugal
	"RO": 24, // Romania
	"RS": 22, // Serbia
	"SE": 24, // Sweden
	"SI": 19, // Slovenia
	"SK": 24, // Slovakia
	"SM": 27, // San Marino
	"VA": 22, // Vatican City State
}

// IBANLengthForCountry returns the required IBAN length for a SEPA country
// code, and whether the country is part of the scheme at all.
func IBANLengthForCountry(countryCode string) (int, bool) {
	length, ok := sepaCountryIBANLengths[countryCode]
	return length, ok
}

// SupportedCountries returns the number of countries in the SEPA table.
func SupportedCountries() int {
	return len(sepaCountryIBANLengths)
}
