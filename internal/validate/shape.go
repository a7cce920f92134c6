package validate

import (
	"fmt"

	"github.com/NielsdaWheelz/speccheck/internal/findings"
	"github.com/NielsdaWheelz/speccheck/internal/schema"
)

// Shapes runs every shape rule in the registry against the spec record.
// Each check applies only when its field is present: absence is already
// reported by the tiered passes and is never re-reported here.
func Shapes(record map[string]any, reg schema.Registry, c *findings.Collector) {
	for _, field := range reg.StringArrays {
		stringArrayShape(record, field, c)
	}
	for _, rule := range reg.Objects {
		objectShape(record, rule, c)
	}
	for _, rule := range reg.ObjectArrays {
		objectArrayShape(record, rule, c)
	}
	for _, rule := range reg.Scalars {
		scalarShape(record, rule, c)
	}
}

// stringArrayShape verifies every element of an array-valued field is a
// string. Offenders yield one aggregate error for the whole field, not one
// per element. A present non-array value is skipped: the required-field
// collection check upstream already covers it.
func stringArrayShape(record map[string]any, field string, c *findings.Collector) {
	v, ok := record[field]
	if !ok {
		return
	}
	arr, ok := asArray(v)
	if !ok {
		return
	}

	bad := 0
	for _, elem := range arr {
		if _, ok := elem.(string); !ok {
			bad++
		}
	}
	if bad > 0 {
		c.Error(fmt.Sprintf("must contain only strings, found %d non-string element(s)", bad), field)
	}
}

// objectShape verifies a nested-object field carries every required
// subfield with a usable value. Emptiness is strict: a missing key, nil,
// or the empty string fails; zero and false are values and pass. Each
// failing subfield records its own error addressed parent.subfield; a
// clean object records one success for the whole field.
func objectShape(record map[string]any, rule schema.ObjectRule, c *findings.Collector) {
	v, ok := record[rule.Field]
	if !ok {
		return
	}
	obj, ok := asObject(v)
	if !ok {
		return
	}

	clean := true
	for _, sub := range rule.Subfields {
		sv, ok := obj[sub]
		if !ok || isEmptyScalar(sv) {
			c.Error("required subfield is missing or empty", rule.Field+"."+sub)
			clean = false
		}
	}
	if clean {
		c.Success("all required subfields present", rule.Field)
	}
}

// objectArrayShape verifies an array-of-objects field. A present non-array
// value is one error for the field. Each element is checked against the
// rule's subfield set with errors addressed field[index].subfield, and one
// success finding always reports the total element count, regardless of
// per-element errors.
func objectArrayShape(record map[string]any, rule schema.ObjectRule, c *findings.Collector) {
	v, ok := record[rule.Field]
	if !ok {
		return
	}
	arr, ok := asArray(v)
	if !ok {
		c.Error(fmt.Sprintf("must be an array of objects, got %s", typeName(v)), rule.Field)
		return
	}

	for i, elem := range arr {
		addr := fmt.Sprintf("%s[%d]", rule.Field, i)

		obj, ok := asObject(elem)
		if !ok {
			c.Error(fmt.Sprintf("element must be an object, got %s", typeName(elem)), addr)
			continue
		}
		for _, sub := range rule.Subfields {
			sv, ok := obj[sub]
			if !ok || isEmptyScalar(sv) {
				c.Error("required subfield is missing or empty", addr+"."+sub)
			}
		}
	}

	c.Success(fmt.Sprintf("checked %d element(s)", len(arr)), rule.Field)
}

// scalarShape verifies a present field's runtime type matches its declared
// type exactly. Absence never records a finding: presence is governed
// solely by the tiered passes.
func scalarShape(record map[string]any, rule schema.ScalarRule, c *findings.Collector) {
	v, ok := record[rule.Field]
	if !ok {
		return
	}

	match := false
	switch rule.Type {
	case schema.TypeString:
		_, match = v.(string)
	case schema.TypeBoolean:
		_, match = v.(bool)
	}
	if !match {
		c.Error(fmt.Sprintf("must be %s, got %s", rule.Type, typeName(v)), rule.Field)
	}
}
