package render

import (
	"bytes"
	"html/template"
	"time"

	"github.com/NielsdaWheelz/speccheck/internal/findings"
)

// htmlSection is one non-empty severity group in the HTML report.
type htmlSection struct {
	Class    string
	Heading  string
	Findings []findings.Finding
	Count    int
}

// htmlData is the template input for one report.
type htmlData struct {
	Status      string
	StatusClass string
	DocPath     string
	ReportPath  string
	GeneratedAt string
	Tool        string
	RunID       string
	Sections    []htmlSection
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>speccheck report: {{.DocPath}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1c1e21; }
  h1 { font-size: 1.4rem; }
  .badge { display: inline-block; padding: 0.2rem 0.8rem; border-radius: 0.3rem; color: #fff; font-weight: 700; }
  .badge.pass { background: #2e7d32; }
  .badge.fail { background: #c62828; }
  table.meta { border-collapse: collapse; margin: 1rem 0; }
  table.meta th, table.meta td { text-align: left; padding: 0.25rem 0.9rem 0.25rem 0; font-size: 0.9rem; }
  table.meta th { color: #5f6368; font-weight: 600; }
  section { margin: 1.2rem 0; }
  section h2 { font-size: 1.05rem; border-bottom: 1px solid #ddd; padding-bottom: 0.2rem; }
  ul { list-style: none; padding-left: 0; }
  li { padding: 0.15rem 0; font-size: 0.92rem; }
  li .field { color: #5f6368; font-family: ui-monospace, monospace; }
  section.error h2 { color: #c62828; }
  section.warning h2 { color: #e65100; }
  section.info h2 { color: #1565c0; }
  section.success h2 { color: #2e7d32; }
</style>
</head>
<body>
<h1>speccheck report <span class="badge {{.StatusClass}}">{{.Status}}</span></h1>
<table class="meta">
  <tr><th>Manifest</th><td>{{.DocPath}}</td></tr>
  <tr><th>Report</th><td>{{.ReportPath}}</td></tr>
  <tr><th>Generated</th><td>{{.GeneratedAt}}</td></tr>
  <tr><th>Validator</th><td>{{.Tool}}</td></tr>
  <tr><th>Run ID</th><td>{{.RunID}}</td></tr>
</table>
{{range .Sections}}<section class="{{.Class}}">
<h2>{{.Heading}} ({{.Count}})</h2>
<ul>
{{range .Findings}}<li>{{.Message}}{{if .Field}} <span class="field">[{{.Field}}]</span>{{end}}</li>
{{end}}</ul>
</section>
{{end}}</body>
</html>
`))

// htmlHeadings maps each severity to its HTML section heading.
var htmlHeadings = map[findings.Severity]string{
	findings.SeverityError:   "Errors",
	findings.SeverityWarning: "Warnings",
	findings.SeverityInfo:    "Info",
	findings.SeveritySuccess: "Passed checks",
}

// HTML renders the standalone HTML report for a finalized findings
// snapshot. Output is deterministic for a given (results, meta) pair:
// sections follow the fixed severity order and the timestamp comes from
// the supplied metadata, never the wall clock.
func HTML(r findings.Results, meta Meta) ([]byte, error) {
	data := htmlData{
		Status:      "FAIL",
		StatusClass: "fail",
		DocPath:     meta.DocPath,
		ReportPath:  meta.ReportPath,
		GeneratedAt: meta.GeneratedAt.UTC().Format(time.RFC3339),
		Tool:        meta.Tool,
		RunID:       meta.RunID,
	}
	if r.Pass {
		data.Status = "PASS"
		data.StatusClass = "pass"
	}

	for _, sev := range findings.Order {
		group := r.BySeverity(sev)
		if len(group) == 0 {
			continue
		}
		data.Sections = append(data.Sections, htmlSection{
			Class:    string(sev),
			Heading:  htmlHeadings[sev],
			Findings: group,
			Count:    len(group),
		})
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
