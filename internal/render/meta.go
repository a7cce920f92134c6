// Package render provides output formatting for speccheck reports.
// Both renderers are pure functions over a finalized findings snapshot;
// neither touches the collector or performs I/O of its own.
package render

import (
	"time"

	"github.com/google/uuid"

	"github.com/NielsdaWheelz/speccheck/internal/version"
)

// Meta carries the per-run metadata both reporters render alongside the
// findings: where the manifest came from, where the HTML report goes, and
// when/by what the report was generated.
type Meta struct {
	DocPath     string
	ReportPath  string
	GeneratedAt time.Time
	Tool        string
	RunID       string
}

// NewMeta builds the metadata for one validation run. The timestamp is
// supplied by the caller so reports stay deterministic under test.
func NewMeta(docPath, reportPath string, generatedAt time.Time) Meta {
	return Meta{
		DocPath:     docPath,
		ReportPath:  reportPath,
		GeneratedAt: generatedAt,
		Tool:        "speccheck " + version.FullVersion(),
		RunID:       uuid.NewString(),
	}
}
