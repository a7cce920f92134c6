package findings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeverity_IsValid(t *testing.T) {
	tests := []struct {
		sev  Severity
		want bool
	}{
		{SeverityError, true},
		{SeverityWarning, true},
		{SeverityInfo, true},
		{SeveritySuccess, true},
		{Severity(""), false},
		{Severity("fatal"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.sev), func(t *testing.T) {
			if got := tt.sev.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.sev, got, tt.want)
			}
		})
	}
}

func TestCollector_InsertionOrderPreserved(t *testing.T) {
	c := NewCollector()
	c.Success("structure ok", "")
	c.Error("missing required field", "title")
	c.Warning("missing recommended field", "favicon")
	c.Error("missing required field", "logo")

	want := []Finding{
		{Severity: SeveritySuccess, Message: "structure ok"},
		{Severity: SeverityError, Message: "missing required field", Field: "title"},
		{Severity: SeverityWarning, Message: "missing recommended field", Field: "favicon"},
		{Severity: SeverityError, Message: "missing required field", Field: "logo"},
	}

	res := c.Results()
	if diff := cmp.Diff(want, res.Findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestCollector_Counts(t *testing.T) {
	c := NewCollector()
	c.Error("e1", "")
	c.Error("e2", "")
	c.Warning("w1", "")
	c.Info("i1", "")
	c.Success("s1", "")
	c.Success("s2", "")
	c.Success("s3", "")

	tests := []struct {
		sev  Severity
		want int
	}{
		{SeverityError, 2},
		{SeverityWarning, 1},
		{SeverityInfo, 1},
		{SeveritySuccess, 3},
	}
	for _, tt := range tests {
		if got := c.Count(tt.sev); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.sev, got, tt.want)
		}
	}
	if c.Len() != 7 {
		t.Errorf("Len() = %d, want 7", c.Len())
	}
}

func TestCollector_Pass(t *testing.T) {
	c := NewCollector()
	if !c.Pass() {
		t.Error("empty collector should pass")
	}

	c.Warning("w", "")
	c.Info("i", "")
	c.Success("s", "")
	if !c.Pass() {
		t.Error("warnings and info should not affect pass")
	}

	c.Error("e", "")
	if c.Pass() {
		t.Error("an error finding should fail the run")
	}
}

func TestResults_SnapshotIsolation(t *testing.T) {
	c := NewCollector()
	c.Error("first", "")

	res := c.Results()
	c.Error("second", "")

	if len(res.Findings) != 1 {
		t.Errorf("snapshot length = %d, want 1", len(res.Findings))
	}
	if res.Counts[SeverityError] != 1 {
		t.Errorf("snapshot error count = %d, want 1", res.Counts[SeverityError])
	}
	if c.Count(SeverityError) != 2 {
		t.Errorf("collector error count = %d, want 2", c.Count(SeverityError))
	}
}

func TestResults_BySeverity(t *testing.T) {
	c := NewCollector()
	c.Error("e1", "a")
	c.Success("s1", "")
	c.Error("e2", "b")
	c.Info("i1", "")

	res := c.Results()

	errs := res.BySeverity(SeverityError)
	want := []Finding{
		{Severity: SeverityError, Message: "e1", Field: "a"},
		{Severity: SeverityError, Message: "e2", Field: "b"},
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("BySeverity(error) mismatch (-want +got):\n%s", diff)
	}

	if got := res.BySeverity(SeverityWarning); len(got) != 0 {
		t.Errorf("BySeverity(warning) = %v, want empty", got)
	}
}

func TestResults_PassFlag(t *testing.T) {
	c := NewCollector()
	c.Warning("w", "")
	if res := c.Results(); !res.Pass {
		t.Error("Results.Pass = false, want true for warning-only run")
	}

	c.Error("e", "")
	if res := c.Results(); res.Pass {
		t.Error("Results.Pass = true, want false after error")
	}
}
