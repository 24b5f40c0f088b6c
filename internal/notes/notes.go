// Package notes canonicalizes the free-text attention_needed and
// critical_issue annotations before classification.
package notes

import (
	"fmt"
	"strings"
)

// Normalize reduces a raw annotation value to its canonical form: the
// trimmed string, or "" when the value is absent or not a scalar.
// A whitespace-only note is indistinguishable from a missing one.
func Normalize(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	default:
		// Composite values (slices, maps, structs) are malformed input
		// for a note field.
		return ""
	}
}

// Filter normalizes each value and drops the empties, preserving order.
// The result never contains "".
func Filter(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if n := Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// FilterAny is Filter over values of unknown type.
func FilterAny(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if n := Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}
