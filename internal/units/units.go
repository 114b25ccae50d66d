// Package units parses free-text capacity and price strings from retailer
// pages into canonical integer values (bytes and cents). Both parsers are
// pure functions so adapters can be tested without any transport in place.
package units

import (
	"regexp"
	"strconv"
	"strings"

	"hddwatch/pricereport/pkg/errors"
)

// unitScale maps capacity unit tokens to bytes per unit. Drive vendors
// market capacity in decimal units (TB = 10^12, GB = 10^9), never the
// binary 2^40/2^30 convention, so decimal is canonical here. Binary forms
// (TiB, GiB) are left unrecognized on purpose rather than converted.
var unitScale = map[string]int64{
	"t":         1_000_000_000_000,
	"tb":        1_000_000_000_000,
	"terabyte":  1_000_000_000_000,
	"terabytes": 1_000_000_000_000,
	"g":         1_000_000_000,
	"gb":        1_000_000_000,
	"gigabyte":  1_000_000_000,
	"gigabytes": 1_000_000_000,
}

var (
	// Terabyte tokens are searched before gigabyte tokens, and gigabyte
	// magnitudes must have 3-5 digits. Drive titles carry interface speeds
	// ("SATA 6Gb/s") next to the real capacity; without the ordering and the
	// digit bound those would read as a 6 GB drive.
	terabyteRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(terabytes?|tb|t)\b`)
	gigabyteRe = regexp.MustCompile(`(?i)\b(\d{3,5})\s*(gigabytes?|gb|g)\b`)

	currencyRe = regexp.MustCompile(`(?i)USD|CAD|EUR|GBP|[$£€]`)
	rangeRe    = regexp.MustCompile(`\d\s*(?:[-–—]|\bto\b)\s*(?:USD|CAD|EUR|GBP|[$£€])?\s*\d`)
	amountRe   = regexp.MustCompile(`^(\d+)(?:\.(\d{1,2}))?$`)
)

// ParseCapacity extracts the capacity token from text and returns the exact
// byte count under the decimal convention ("4TB" -> 4_000_000_000_000,
// "512GB" -> 512_000_000_000). Terabyte tokens win over gigabyte tokens
// anywhere in the text; fractional magnitudes like "1.5TB" are supported for
// terabytes. Fails with an unparsable-unit error when no token matches.
func ParseCapacity(text string) (int64, error) {
	m := terabyteRe.FindStringSubmatch(text)
	if m == nil {
		m = gigabyteRe.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, errors.NewUnit(text)
	}

	scale := unitScale[strings.ToLower(m[2])]
	bytes, ok := scaleDecimal(m[1], scale)
	if !ok {
		return 0, errors.NewUnit(text)
	}
	return bytes, nil
}

// scaleDecimal multiplies a decimal magnitude string by scale using integer
// arithmetic only. Returns false when the fraction is finer than the scale
// can represent.
func scaleDecimal(num string, scale int64) (int64, bool) {
	whole, frac, _ := strings.Cut(num, ".")

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}
	bytes := w * scale

	for _, d := range frac {
		scale /= 10
		if scale == 0 {
			return 0, false
		}
		bytes += int64(d-'0') * scale
	}
	return bytes, true
}

// ParsePrice parses a currency-prefixed decimal price string into integer
// cents. Thousands separators are stripped; price ranges ("$50–$60") fail
// rather than guessing one bound.
func ParsePrice(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, errors.NewPrice(text, "empty price string")
	}
	if rangeRe.MatchString(trimmed) {
		return 0, errors.NewPrice(text, "price range")
	}

	cleaned := currencyRe.ReplaceAllString(trimmed, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	// Keep only the leading amount; listings append per-unit suffixes
	// like "89.99 /each".
	if i := strings.IndexFunc(cleaned, func(r rune) bool { return r == ' ' || r == '/' }); i >= 0 {
		cleaned = cleaned[:i]
	}

	m := amountRe.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, errors.NewPrice(text, "not a decimal amount")
	}

	dollars, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, errors.NewPrice(text, "amount out of range")
	}

	cents := dollars * 100
	if m[2] != "" {
		f, _ := strconv.ParseInt(m[2], 10, 64)
		if len(m[2]) == 1 {
			f *= 10
		}
		cents += f
	}
	return cents, nil
}
