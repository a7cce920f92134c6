package validate

import (
	"fmt"

	"github.com/NielsdaWheelz/speccheck/internal/findings"
	"github.com/NielsdaWheelz/speccheck/internal/schema"
)

// Structural checks the outer shape of a parsed manifest before any field
// is inspected. The checks run in a fixed order and short-circuit on the
// first failure: exactly one error finding is recorded and the caller must
// not proceed to field or shape validation.
//
// On full success one success finding is recorded and the inner spec record
// is returned.
func Structural(doc any, reg schema.Registry, c *findings.Collector) (map[string]any, bool) {
	root, ok := asObject(doc)
	if !ok {
		c.Error(fmt.Sprintf("manifest root must be an object, got %s", typeName(doc)), "")
		return nil, false
	}

	if len(root) != 1 {
		c.Error(fmt.Sprintf("manifest root must have exactly one key, found %d", len(root)), "")
		return nil, false
	}

	container, ok := root[reg.Container]
	if !ok {
		c.Error(fmt.Sprintf("manifest root key must be %q", reg.Container), "")
		return nil, false
	}

	arr, ok := asArray(container)
	if !ok {
		c.Error(fmt.Sprintf("%q must be an array, got %s", reg.Container, typeName(container)), reg.Container)
		return nil, false
	}

	if len(arr) != 1 {
		c.Error(fmt.Sprintf("%q must contain exactly one spec record, found %d", reg.Container, len(arr)), reg.Container)
		return nil, false
	}

	record, ok := asObject(arr[0])
	if !ok {
		c.Error(fmt.Sprintf("spec record must be an object, got %s", typeName(arr[0])), reg.Container)
		return nil, false
	}

	c.Success("manifest structure is valid", "")
	return record, true
}
