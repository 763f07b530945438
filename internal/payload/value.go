package payload

import "encoding/json"

// Decoded JSON is heterogeneous, so every field access has to check the
// dynamic type. These helpers centralize the checks, in particular the bool
// hazard: a JSON true/false must never pass for a number.

// AsString extracts a string value.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsInt extracts an integer value. Bodies are decoded with json.Number, so a
// literal like 2 is accepted while 2.5, "2" and true are not.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// AsNumber extracts a numeric value, integer or floating point.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
