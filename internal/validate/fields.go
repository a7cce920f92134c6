package validate

import (
	"github.com/NielsdaWheelz/speccheck/internal/findings"
	"github.com/NielsdaWheelz/speccheck/internal/schema"
)

// presence classifies a field's value for the tiered passes.
type presence int

const (
	fieldMissing         presence = iota // key absent
	fieldEmpty                           // nil or empty string
	fieldEmptyCollection                 // array of length zero
	fieldPresent
)

// classify determines a field's presence state in the spec record.
func classify(record map[string]any, field string) presence {
	v, ok := record[field]
	if !ok {
		return fieldMissing
	}
	if isEmptyScalar(v) {
		return fieldEmpty
	}
	if arr, ok := asArray(v); ok && len(arr) == 0 {
		return fieldEmptyCollection
	}
	return fieldPresent
}

// RequiredFields runs the required pass: every name in the registry's
// required list is classified, and every classification records a finding.
// Failures are errors; the pass never short-circuits, so a failing field
// does not hide findings for the fields after it.
func RequiredFields(record map[string]any, reg schema.Registry, c *findings.Collector) {
	for _, field := range reg.Required {
		switch classify(record, field) {
		case fieldMissing:
			c.Error("required field is missing", field)
		case fieldEmpty:
			c.Error("required field is empty", field)
		case fieldEmptyCollection:
			c.Error("required field is an empty array", field)
		case fieldPresent:
			c.Success("required field present", field)
		}
	}
}

// RecommendedFields runs the recommended pass. Classification matches the
// required pass; failures are warnings and never affect the pass/fail
// outcome.
func RecommendedFields(record map[string]any, reg schema.Registry, c *findings.Collector) {
	for _, field := range reg.Recommended {
		switch classify(record, field) {
		case fieldMissing:
			c.Warning("recommended field is missing", field)
		case fieldEmpty:
			c.Warning("recommended field is empty", field)
		case fieldEmptyCollection:
			c.Warning("recommended field is an empty array", field)
		case fieldPresent:
			c.Success("recommended field present", field)
		}
	}
}

// OptionalFields runs the optional pass. Optional fields are never
// empty-checked: any present value counts as present, absence is
// informational only.
func OptionalFields(record map[string]any, reg schema.Registry, c *findings.Collector) {
	for _, field := range reg.Optional {
		if _, ok := record[field]; ok {
			c.Success("optional field present", field)
		} else {
			c.Info("optional field not set", field)
		}
	}
}
