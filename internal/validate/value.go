// Package validate implements the manifest validation pipeline: the
// structural gate, the tiered field passes, and the shape checks.
package validate

import "fmt"

// asObject returns the value as an object. Arrays are never objects even
// though both decode from collection syntax.
func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// asArray returns the value as an array.
func asArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// typeName returns the manifest-level type label for a decoded value.
// Labels follow the document syntax (object, array, string, number,
// boolean, null), not Go type names.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// isEmptyScalar reports whether a present value counts as empty:
// null or the empty string. Zero and false are values, not absence.
func isEmptyScalar(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
