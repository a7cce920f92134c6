package validate

import (
	"testing"

	"github.com/NielsdaWheelz/speccheck/internal/findings"
	"github.com/NielsdaWheelz/speccheck/internal/schema"
)

func TestStructural_RootNotObject(t *testing.T) {
	tests := []struct {
		name string
		doc  any
	}{
		{"nil", nil},
		{"array", []any{}},
		{"string", "specs"},
		{"number", float64(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := findings.NewCollector()
			record, ok := Structural(tt.doc, schema.Default(), c)
			if ok || record != nil {
				t.Fatalf("Structural(%v) accepted a non-object root", tt.doc)
			}
			if c.Count(findings.SeverityError) != 1 {
				t.Errorf("error count = %d, want 1", c.Count(findings.SeverityError))
			}
			if c.Len() != 1 {
				t.Errorf("total findings = %d, want 1 (short-circuit)", c.Len())
			}
		})
	}
}

func TestStructural_ShortCircuit(t *testing.T) {
	// One error finding per failure mode, nothing after it.
	tests := []struct {
		name string
		doc  any
	}{
		{"two keys", map[string]any{"specs": []any{}, "extra": true}},
		{"wrong key", map[string]any{"spex": []any{map[string]any{}}}},
		{"container not array", map[string]any{"specs": map[string]any{}}},
		{"empty array", map[string]any{"specs": []any{}}},
		{"two elements", map[string]any{"specs": []any{map[string]any{}, map[string]any{}}}},
		{"element not object", map[string]any{"specs": []any{"record"}}},
		{"element nil", map[string]any{"specs": []any{nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := findings.NewCollector()
			_, ok := Structural(tt.doc, schema.Default(), c)
			if ok {
				t.Fatal("expected structural failure")
			}
			if c.Len() != 1 {
				t.Fatalf("total findings = %d, want exactly 1", c.Len())
			}
			if c.Count(findings.SeverityError) != 1 {
				t.Errorf("error count = %d, want 1", c.Count(findings.SeverityError))
			}
		})
	}
}

func TestStructural_Success(t *testing.T) {
	record := map[string]any{"title": "My Spec"}
	doc := map[string]any{"specs": []any{record}}

	c := findings.NewCollector()
	got, ok := Structural(doc, schema.Default(), c)
	if !ok {
		t.Fatal("expected structural success")
	}
	if got["title"] != "My Spec" {
		t.Errorf("returned record title = %v, want %q", got["title"], "My Spec")
	}
	if c.Count(findings.SeveritySuccess) != 1 {
		t.Errorf("success count = %d, want 1", c.Count(findings.SeveritySuccess))
	}
	if c.Count(findings.SeverityError) != 0 {
		t.Errorf("error count = %d, want 0", c.Count(findings.SeverityError))
	}
}
