// Package findings provides the result model shared by all validators and
// reporters: typed findings, an append-only collector, and an immutable
// snapshot for rendering.
package findings

// Severity classifies a single validation outcome.
type Severity string

// Valid severity values.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Order is the fixed severity order used by both reporters.
var Order = []Severity{SeverityError, SeverityWarning, SeverityInfo, SeveritySuccess}

// IsValid returns true if the severity is one of the known values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo, SeveritySuccess:
		return true
	default:
		return false
	}
}

// Finding is one recorded validation outcome. Findings are immutable:
// created exactly once per check, never edited or removed.
type Finding struct {
	Severity Severity
	Message  string
	Field    string // optional; empty when the finding addresses the whole document
}

// Collector accumulates findings for one validation run. It is append-only:
// insertion order is preserved and nothing is ever removed or mutated.
// A single Collector is owned by the run and passed by pointer to every
// validator; reporters consume the Results snapshot instead.
type Collector struct {
	findings []Finding
	counts   map[Severity]int
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{counts: make(map[Severity]int, len(Order))}
}

// Add appends a finding and increments the matching severity counter.
func (c *Collector) Add(sev Severity, msg, field string) {
	c.findings = append(c.findings, Finding{Severity: sev, Message: msg, Field: field})
	c.counts[sev]++
}

// Error appends an error finding.
func (c *Collector) Error(msg, field string) {
	c.Add(SeverityError, msg, field)
}

// Warning appends a warning finding.
func (c *Collector) Warning(msg, field string) {
	c.Add(SeverityWarning, msg, field)
}

// Info appends an info finding.
func (c *Collector) Info(msg, field string) {
	c.Add(SeverityInfo, msg, field)
}

// Success appends a success finding.
func (c *Collector) Success(msg, field string) {
	c.Add(SeveritySuccess, msg, field)
}

// Count returns the number of findings recorded with the given severity.
func (c *Collector) Count(sev Severity) int {
	return c.counts[sev]
}

// Len returns the total number of findings.
func (c *Collector) Len() int {
	return len(c.findings)
}

// Pass reports whether the run passed: true iff zero error findings exist.
func (c *Collector) Pass() bool {
	return c.counts[SeverityError] == 0
}

// Results returns an immutable snapshot of the collector for reporting.
// The snapshot copies the finding sequence, so later appends to the
// collector never reach a reporter.
func (c *Collector) Results() Results {
	cp := make([]Finding, len(c.findings))
	copy(cp, c.findings)

	counts := make(map[Severity]int, len(c.counts))
	for sev, n := range c.counts {
		counts[sev] = n
	}

	return Results{
		Findings: cp,
		Counts:   counts,
		Pass:     c.Pass(),
	}
}

// Results is a finalized, read-only view of one validation run.
// Reporters consume Results and must not modify it.
type Results struct {
	Findings []Finding
	Counts   map[Severity]int
	Pass     bool
}

// BySeverity returns the findings of one severity in insertion order.
func (r Results) BySeverity(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
