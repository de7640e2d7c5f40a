// Package normalize holds the shared helpers used to line up job postings
// coming from structurally different upstream APIs: dedupe keys, URL host
// extraction, salary formatting and timestamp parsing.
package normalize

import (
	"math"
	"net/url"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Key lowercases s, drops everything that is not a letter, digit or
// space, and collapses whitespace runs to a single space. Only used to
// build dedupe keys; never exposed to clients.
func Key(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Host returns the hostname of u with a leading "www." stripped, or an
// empty string when u is not a valid absolute URL.
func Host(u string) string {
	parsed, err := url.Parse(u)
	if err != nil || !parsed.IsAbs() {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// currencySymbols maps the ISO codes the upstream APIs actually send.
// Anything else falls back to a plain dollar prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"AUD": "A$",
	"GBP": "£",
	"EUR": "€",
}

// FormatSalaryRange renders a human-readable salary from numeric bounds.
// NaN (or an infinite value) marks an absent bound. Both bounds absent
// yields ""; equal bounds (after rounding) yield a single amount; a unit
// is appended as a "/unit" suffix.
func FormatSalaryRange(min, max float64, currency, unit string) string {
	hasMin := isFinite(min)
	hasMax := isFinite(max)
	if !hasMin && !hasMax {
		return ""
	}

	suffix := ""
	if unit != "" {
		suffix = "/" + unit
	}

	if hasMin && hasMax {
		if math.Round(min) == math.Round(max) {
			return Currency(min, currency) + suffix
		}
		return Currency(min, currency) + "–" + Currency(max, currency) + suffix
	}

	v := min
	if !hasMin {
		v = max
	}
	return Currency(v, currency) + suffix
}

// Currency formats an amount as a grouped integer with a currency symbol,
// e.g. Currency(50000, "USD") == "$50,000". Unknown codes use "$".
func Currency(n float64, code string) string {
	sym, ok := currencySymbols[strings.ToUpper(code)]
	if !ok {
		sym = "$"
	}
	return sym + printer.Sprintf("%d", int64(math.Round(n)))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// timeLayouts covers the posting date shapes the three upstreams emit:
// full RFC 3339, zone-less ISO timestamps and bare dates.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// ParseTimestamp parses a posting date, reporting false when the value is
// missing or in a shape none of the upstreams should produce.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortTime converts a posting date to epoch milliseconds for recency
// sorting. Unparsable and missing values map to 0 so they sort last.
func SortTime(s string) int64 {
	t, ok := ParseTimestamp(s)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}
