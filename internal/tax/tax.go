// Package tax provides the static U.S. state sales-tax table used at
// checkout. Tax is best effort: an unrecognized or missing state yields a
// zero rate rather than an error.
package tax

import (
	"regexp"
	"strings"
)

// stateRates maps two-letter state abbreviations to sales-tax rates.
var stateRates = map[string]float64{
	"AL": 0.04, "AK": 0, "AZ": 0.056, "AR": 0.065, "CA": 0.0725,
	"CO": 0.029, "CT": 0.0635, "DE": 0, "DC": 0.06, "FL": 0.06,
	"GA": 0.04, "HI": 0.04, "ID": 0.06, "IL": 0.0625, "IN": 0.07,
	"IA": 0.06, "KS": 0.065, "KY": 0.06, "LA": 0.0445, "ME": 0.055,
	"MD": 0.06, "MA": 0.0625, "MI": 0.06, "MN": 0.06875, "MS": 0.07,
	"MO": 0.04225, "MT": 0, "NE": 0.055, "NV": 0.0685, "NH": 0,
	"NJ": 0.06625, "NM": 0.05125, "NY": 0.04, "NC": 0.0475, "ND": 0.05,
	"OH": 0.0575, "OK": 0.045, "OR": 0, "PA": 0.06, "RI": 0.07,
	"SC": 0.06, "SD": 0.042, "TN": 0.07, "TX": 0.0625, "UT": 0.061,
	"VT": 0.06, "VA": 0.053, "WA": 0.065, "WV": 0.06, "WI": 0.05, "WY": 0.04,
}

// statePattern matches a two-letter state code followed by a 5-digit zip
// (optionally with a 4-digit extension) at the end of a shipping address.
var statePattern = regexp.MustCompile(`([A-Z]{2})\s+\d{5}(-\d{4})?$`)

// Rate returns the sales-tax rate for a state abbreviation. The input is
// trimmed and upper-cased; unknown states return 0.
func Rate(state string) float64 {
	return stateRates[strings.ToUpper(strings.TrimSpace(state))]
}

// StateFromAddress extracts the state code from a free-text shipping
// address. Returns the empty string when the address does not end with a
// recognisable "ST 12345" pattern.
func StateFromAddress(address string) string {
	match := statePattern.FindStringSubmatch(strings.TrimSpace(address))
	if match == nil {
		return ""
	}
	return match[1]
}

// RateForAddress combines StateFromAddress and Rate.
func RateForAddress(address string) float64 {
	return Rate(StateFromAddress(address))
}
