// Package manifest handles loading and parsing of spec-site manifest files.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/speccheck/internal/errors"
	"github.com/NielsdaWheelz/speccheck/internal/fs"
)

// DefaultFilename is the manifest looked for when no path is given.
const DefaultFilename = "specs.json"

// Format identifies the encoding of a manifest file.
type Format string

// Supported manifest encodings.
const (
	FormatJSON Format = "JSON"
	FormatYAML Format = "YAML"
)

// DetectFormat picks the manifest encoding from the file extension.
// .yaml and .yml parse as YAML; everything else parses as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the manifest bytes at path.
// Returns E_MANIFEST_NOT_FOUND if the file does not exist or cannot be read.
func Load(fsys fs.FS, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewWithDetails(errors.EManifestNotFound,
				"manifest not found: "+path,
				map[string]string{"manifest": path})
		}
		return nil, errors.WrapWithDetails(errors.EManifestNotFound,
			"failed to read manifest: "+path, err,
			map[string]string{"manifest": path})
	}
	return data, nil
}

// Parse decodes manifest bytes into a generic document value.
//
// The result is deliberately untyped (any, not map[string]any): structural
// validation owns the judgement of whether the root is an object, so a
// syntactically valid document with the wrong root shape must survive
// parsing and reach the validator.
//
// Returns E_MANIFEST_INVALID if the bytes are not valid JSON/YAML.
func Parse(data []byte, format Format) (any, error) {
	var doc any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithDetails(errors.EManifestInvalid,
				"invalid YAML: "+err.Error(), err,
				map[string]string{"format": string(FormatYAML)})
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithDetails(errors.EManifestInvalid,
				"invalid JSON: "+err.Error(), err,
				map[string]string{"format": string(FormatJSON)})
		}
	}

	return doc, nil
}
