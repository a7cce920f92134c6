package render

import (
	"fmt"
	"io"

	"github.com/NielsdaWheelz/speccheck/internal/findings"
)

// consoleHeadings maps each severity to its console group heading.
var consoleHeadings = map[findings.Severity]string{
	findings.SeverityError:   "errors",
	findings.SeverityWarning: "warnings",
	findings.SeverityInfo:    "info",
	findings.SeveritySuccess: "passed checks",
}

// WriteConsole renders the human-readable report: findings grouped by
// severity in the fixed order error, warning, info, success, one line per
// finding, then a severity-count summary and a pass/fail banner. Empty
// groups are omitted.
func WriteConsole(w io.Writer, r findings.Results, meta Meta) error {
	if _, err := fmt.Fprintf(w, "speccheck: %s\n", meta.DocPath); err != nil {
		return err
	}

	for _, sev := range findings.Order {
		group := r.BySeverity(sev)
		if len(group) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s:\n", consoleHeadings[sev]); err != nil {
			return err
		}
		for _, f := range group {
			if _, err := fmt.Fprintln(w, "  "+FormatFinding(f)); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nsummary: %d error(s), %d warning(s), %d info, %d success\n",
		r.Counts[findings.SeverityError],
		r.Counts[findings.SeverityWarning],
		r.Counts[findings.SeverityInfo],
		r.Counts[findings.SeveritySuccess],
	); err != nil {
		return err
	}

	banner := "result: FAIL"
	if r.Pass {
		banner = "result: PASS"
	}
	_, err := fmt.Fprintln(w, banner)
	return err
}

// FormatFinding renders one finding as a single line: the message, plus
// the bracketed field name when the finding addresses a field.
func FormatFinding(f findings.Finding) string {
	if f.Field == "" {
		return f.Message
	}
	return fmt.Sprintf("%s [%s]", f.Message, f.Field)
}
