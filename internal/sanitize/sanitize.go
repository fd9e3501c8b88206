// Package sanitize HTML-escapes user-supplied strings before they reach
// handlers, so stored values are safe to render verbatim.
package sanitize

import (
	"html"
	"strings"
)

// String trims surrounding whitespace and escapes HTML entities.
func String(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// Value sanitizes a decoded JSON value recursively. Strings are escaped and
// trimmed; objects and arrays get fresh copies with sanitized members; numbers,
// booleans and null pass through unchanged. The input is never mutated.
func Value(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return String(val)
	case map[string]interface{}:
		sanitized := make(map[string]interface{}, len(val))
		for key, item := range val {
			sanitized[key] = Value(item)
		}
		return sanitized
	case []interface{}:
		sanitized := make([]interface{}, len(val))
		for i, item := range val {
			sanitized[i] = Value(item)
		}
		return sanitized
	default:
		return v
	}
}
