package validate

import (
	"github.com/NielsdaWheelz/speccheck/internal/findings"
	"github.com/NielsdaWheelz/speccheck/internal/schema"
)

// Run executes the full validation pipeline over a parsed manifest:
// structural gate, then the required, recommended, and optional field
// passes, then the shape checks. Every outcome lands in the collector;
// the document itself is never mutated.
//
// A structural failure stops the run before any field is inspected.
func Run(doc any, reg schema.Registry, c *findings.Collector) {
	record, ok := Structural(doc, reg, c)
	if !ok {
		return
	}

	RequiredFields(record, reg, c)
	RecommendedFields(record, reg, c)
	OptionalFields(record, reg, c)
	Shapes(record, reg, c)
}
