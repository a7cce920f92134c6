// Package commands implements speccheck CLI commands.
package commands

import (
	"io"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/speccheck/internal/artifact"
	"github.com/NielsdaWheelz/speccheck/internal/errors"
	"github.com/NielsdaWheelz/speccheck/internal/findings"
	"github.com/NielsdaWheelz/speccheck/internal/fs"
	"github.com/NielsdaWheelz/speccheck/internal/logger"
	"github.com/NielsdaWheelz/speccheck/internal/manifest"
	"github.com/NielsdaWheelz/speccheck/internal/render"
	"github.com/NielsdaWheelz/speccheck/internal/schema"
	"github.com/NielsdaWheelz/speccheck/internal/validate"
)

// CheckOpts holds options for the check command.
type CheckOpts struct {
	// ManifestPath is the manifest to validate. Empty means
	// specs.json in the working directory.
	ManifestPath string
}

// Check implements the default `speccheck [manifest]` command: load the
// manifest, validate it, render the console report to stdout, and write
// the HTML report next to the manifest.
//
// The returned error drives the exit code. A failed validation returns
// E_VALIDATION_FAILED; an unreadable or unparsable manifest returns the
// ingestion error after rendering a report with its single error finding.
// A failed HTML write is logged and never changes the validation outcome.
func Check(fsys fs.FS, cwd string, opts CheckOpts, now func() time.Time, stdout io.Writer) error {
	log := logger.For("check")

	docPath := opts.ManifestPath
	if docPath == "" {
		docPath = manifest.DefaultFilename
	}
	if !filepath.IsAbs(docPath) {
		docPath = filepath.Join(cwd, docPath)
	}
	reportPath := artifact.ReportPath(docPath)

	c := findings.NewCollector()
	meta := render.NewMeta(docPath, reportPath, now())

	data, err := manifest.Load(fsys, docPath)
	if err != nil {
		// Nothing was read, so there is nothing to write an HTML
		// report about either.
		c.Error("manifest could not be read: "+docPath, "")
		if werr := render.WriteConsole(stdout, c.Results(), meta); werr != nil {
			return errors.Wrap(errors.EInternal, "failed to render console report", werr)
		}
		return err
	}

	doc, err := manifest.Parse(data, manifest.DetectFormat(docPath))
	if err != nil {
		c.Error("manifest could not be parsed: "+err.Error(), "")
		results := c.Results()
		if werr := render.WriteConsole(stdout, results, meta); werr != nil {
			return errors.Wrap(errors.EInternal, "failed to render console report", werr)
		}
		writeReport(fsys, log, results, meta)
		return err
	}

	validate.Run(doc, schema.Default(), c)
	results := c.Results()

	if err := render.WriteConsole(stdout, results, meta); err != nil {
		return errors.Wrap(errors.EInternal, "failed to render console report", err)
	}
	writeReport(fsys, log, results, meta)

	if !results.Pass {
		return errors.NewWithDetails(errors.EValidationFailed,
			"manifest validation failed",
			map[string]string{
				"manifest": docPath,
				"report":   reportPath,
				"errors":   strconv.Itoa(results.Counts[findings.SeverityError]),
				"warnings": strconv.Itoa(results.Counts[findings.SeverityWarning]),
				"run_id":   meta.RunID,
			})
	}
	return nil
}

// writeReport renders and writes the HTML report. Failures are logged as
// warnings only: the validation outcome is already fixed by the findings.
func writeReport(fsys fs.FS, log *zap.SugaredLogger, r findings.Results, meta render.Meta) {
	html, err := render.HTML(r, meta)
	if err != nil {
		log.Warnw("failed to render HTML report", "report", meta.ReportPath, "error", err)
		return
	}
	if err := artifact.Write(fsys, meta.ReportPath, html); err != nil {
		log.Warnw("failed to write HTML report", "report", meta.ReportPath, "error", err)
	}
}
