// Package artifact places and writes the generated HTML report.
package artifact

import (
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/speccheck/internal/errors"
	"github.com/NielsdaWheelz/speccheck/internal/fs"
)

// reportSuffix is appended to the manifest base name to form the report
// file name.
const reportSuffix = "-report.html"

// ReportPath derives the HTML report path for a manifest: a sibling file
// named after the manifest with its extension replaced by the fixed
// report suffix. specs.json becomes specs-report.html.
func ReportPath(docPath string) string {
	dir := filepath.Dir(docPath)
	base := filepath.Base(docPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+reportSuffix)
}

// Write stores the report atomically via a temp file and rename, so a
// previous report is never left half-overwritten. The report is rewritten
// on every run.
func Write(fsys fs.FS, path string, data []byte) error {
	if err := fs.WriteFileAtomic(fsys, path, data, 0o644); err != nil {
		return errors.WrapWithDetails(errors.EReportWriteFailed,
			"failed to write HTML report: "+path, err,
			map[string]string{"report": path})
	}
	return nil
}
