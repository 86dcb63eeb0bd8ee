package billtext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	amountShape   = regexp.MustCompile(`^(?:PHP)?\s*([0-9][0-9,]*)\.(\d{2})$`)
	dateShape     = regexp.MustCompile(`^(\d{1,2})([./-])(\d{1,2})([./-])(\d{4})$`)
)

// normalizeViews derives the two read-only views every downstream stage
// works from: raw keeps line breaks (table structure lives in them),
// flattened collapses all whitespace so header labels match regardless
// of where the source wrapped.
func normalizeViews(text string) (raw, flattened string) {
	raw = strings.ReplaceAll(text, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	flattened = strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
	return raw, flattened
}

// ParseAmount converts a currency-formatted substring into a decimal
// value: the fixed PHP prefix and comma grouping are stripped, the rest
// must be a base-10 number with exactly two fractional digits. A nil
// result means "could not parse"; a literal 0.00 parses to a real zero.
func ParseAmount(s string) *decimal.Decimal {
	m := amountShape.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "") + "." + m[2])
	if err != nil {
		return nil
	}
	return &d
}

// NormalizeDate re-renders M/D/YYYY (also "-" and "." separators) as
// YYYY-MM-DD with zero-padded month and day. Anything else is returned
// unchanged; the engine never guesses a date it cannot parse.
func NormalizeDate(s string) string {
	m := dateShape.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	// both separators must be the same character; RE2 has no
	// backreferences, so the captures are compared here
	if m[2] != m[4] {
		return s
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return s
	}
	return fmt.Sprintf("%s-%02d-%02d", m[5], month, day)
}
