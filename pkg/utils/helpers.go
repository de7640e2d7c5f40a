package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetStringOrDefault returns the value if not empty, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseInt parses s as a base-10 integer, returning def when s is empty
// or not a number.
func ParseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// Clamp bounds n to the inclusive range [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Truncate caps s at max bytes, appending an ellipsis when cut. Used to
// keep upstream bodies out of logs and error responses.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// AsFloat64 coerces a decoded JSON value into a float64. The upstream
// APIs are loose about numeric typing: the same salary field can arrive
// as a number or as a digit string depending on the record.
func AsFloat64(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	case int:
		return float64(t), true
	}
	return 0, false
}

// AsInt coerces a decoded JSON value into an int, returning def when the
// value is absent or non-numeric.
func AsInt(v interface{}, def int) int {
	if f, ok := AsFloat64(v); ok {
		return int(f)
	}
	return def
}

// AsString returns v when it is a string, otherwise "".
func AsString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
