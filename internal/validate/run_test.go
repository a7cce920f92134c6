package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NielsdaWheelz/speccheck/internal/findings"
	"github.com/NielsdaWheelz/speccheck/internal/schema"
)

// validSpec returns a spec record with every required field populated and
// no recommended or optional fields. Copy-on-call so tests can mutate it.
func validSpec() map[string]any {
	return map[string]any{
		"title":                "Test Specification",
		"description":          "A test spec",
		"author":               "Test Author",
		"spec_directory":       "./spec",
		"spec_terms_directory": "terms",
		"output_path":          "./docs",
		"markdown_paths":       []any{"intro.md", "terms.md"},
		"logo":                 "logo.svg",
		"logo_link":            "https://example.com",
		"source": map[string]any{
			"host":    "github",
			"account": "example",
			"repo":    "test-spec",
			"branch":  "main",
		},
	}
}

func wrap(record map[string]any) map[string]any {
	return map[string]any{"specs": []any{record}}
}

func runDoc(t *testing.T, doc any) findings.Results {
	t.Helper()
	c := findings.NewCollector()
	Run(doc, schema.Default(), c)
	return c.Results()
}

func errorFields(r findings.Results) []string {
	var out []string
	for _, f := range r.BySeverity(findings.SeverityError) {
		out = append(out, f.Field)
	}
	return out
}

// Scenario: all required fields valid, source complete, no optional fields.
func TestRun_CleanManifest(t *testing.T) {
	r := runDoc(t, wrap(validSpec()))

	if !r.Pass {
		t.Fatalf("expected pass, errors: %v", r.BySeverity(findings.SeverityError))
	}
	if n := r.Counts[findings.SeverityError]; n != 0 {
		t.Errorf("error count = %d, want 0", n)
	}
	if n := r.Counts[findings.SeverityWarning]; n != 1 {
		t.Errorf("warning count = %d, want 1 (favicon missing)", n)
	}
	if n := r.Counts[findings.SeverityInfo]; n != 2 {
		t.Errorf("info count = %d, want 2 (anchor_symbol, katex)", n)
	}
	// structure + 10 required + source subfields = 12
	if n := r.Counts[findings.SeveritySuccess]; n != 12 {
		t.Errorf("success count = %d, want 12", n)
	}
}

func TestRun_MissingTitle(t *testing.T) {
	spec := validSpec()
	delete(spec, "title")
	r := runDoc(t, wrap(spec))

	if r.Pass {
		t.Fatal("expected fail")
	}
	want := []string{"title"}
	if diff := cmp.Diff(want, errorFields(r)); diff != "" {
		t.Errorf("error fields mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_EmptyMarkdownPaths(t *testing.T) {
	spec := validSpec()
	spec["markdown_paths"] = []any{}
	r := runDoc(t, wrap(spec))

	if r.Pass {
		t.Fatal("expected fail")
	}
	want := []string{"markdown_paths"}
	if diff := cmp.Diff(want, errorFields(r)); diff != "" {
		t.Errorf("error fields mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_KatexTypeMismatch(t *testing.T) {
	spec := validSpec()
	spec["katex"] = "true"
	r := runDoc(t, wrap(spec))

	if r.Pass {
		t.Fatal("expected fail")
	}
	want := []string{"katex"}
	if diff := cmp.Diff(want, errorFields(r)); diff != "" {
		t.Errorf("error fields mismatch (-want +got):\n%s", diff)
	}

	// The optional pass still sees katex as present.
	var optional []findings.Finding
	for _, f := range r.BySeverity(findings.SeveritySuccess) {
		if f.Field == "katex" {
			optional = append(optional, f)
		}
	}
	if len(optional) != 1 {
		t.Errorf("katex success findings = %d, want 1 (type check is independent of presence)", len(optional))
	}
}

func TestRun_ExternalSpecsSubfields(t *testing.T) {
	spec := validSpec()
	spec["external_specs"] = []any{
		map[string]any{"external_spec": "x"},
	}
	r := runDoc(t, wrap(spec))

	if r.Pass {
		t.Fatal("expected fail")
	}
	want := []string{
		"external_specs[0].gh_page",
		"external_specs[0].url",
		"external_specs[0].terms_dir",
	}
	if diff := cmp.Diff(want, errorFields(r)); diff != "" {
		t.Errorf("error fields mismatch (-want +got):\n%s", diff)
	}

	counted := false
	for _, f := range r.BySeverity(findings.SeveritySuccess) {
		if f.Field == "external_specs" && f.Message == "checked 1 element(s)" {
			counted = true
		}
	}
	if !counted {
		t.Error("expected a success finding reporting one external_specs entry")
	}
}

func TestRun_StructuralFailureStopsFieldChecks(t *testing.T) {
	doc := map[string]any{
		"specs": []any{validSpec()},
		"other": true,
	}
	r := runDoc(t, doc)

	if r.Pass {
		t.Fatal("expected fail")
	}
	if len(r.Findings) != 1 {
		t.Fatalf("total findings = %d, want exactly 1 (no field-level findings)", len(r.Findings))
	}
	if r.Findings[0].Severity != findings.SeverityError {
		t.Errorf("finding severity = %s, want error", r.Findings[0].Severity)
	}
}

func TestRun_Idempotent(t *testing.T) {
	spec := validSpec()
	spec["external_specs"] = []any{
		map[string]any{"external_spec": "x", "gh_page": "p"},
	}
	doc := wrap(spec)

	first := runDoc(t, doc)
	second := runDoc(t, doc)

	if diff := cmp.Diff(first.Findings, second.Findings); diff != "" {
		t.Errorf("re-validating the same document changed the finding sequence:\n%s", diff)
	}
}
