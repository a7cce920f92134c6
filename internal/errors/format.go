// Package errors provides error formatting for speccheck CLI output.
package errors

import (
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose enables detailed error output with more context keys.
	Verbose bool
}

// Context key whitelist (default mode, in emission order).
var defaultContextKeys = []string{
	"manifest",
	"report",
	"format",
	"field",
	"errors",
}

// Additional context keys for verbose mode.
var verboseContextKeys = []string{
	"manifest",
	"report",
	"format",
	"field",
	"errors",
	"warnings",
	"run_id",
}

// Truncation limits for context values.
const (
	maxValueLen      = 256 // max chars for single-line context values
	maxExtraValueLen = 128 // max chars for extra section values
)

// Format formats an error for display without I/O.
// This is a pure function; it never reads files or performs network I/O.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	se, ok := AsSpeccheckError(err)
	if !ok {
		// Fallback for non-SpeccheckError errors
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	// Line 1: error_code
	sb.WriteString("error_code: ")
	sb.WriteString(string(se.Code))
	sb.WriteString("\n")

	// Line 2: message
	sb.WriteString(se.Msg)
	sb.WriteString("\n")

	if len(se.Details) > 0 {
		sb.WriteString("\n")
	}

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printedKeys := make(map[string]bool)

	// Print whitelisted context keys in order
	for _, key := range contextKeys {
		val, ok := se.Details[key]
		if !ok || val == "" {
			continue
		}
		printedKeys[key] = true
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(sanitizeValue(val, maxValueLen))
		sb.WriteString("\n")
	}

	// In verbose mode, print remaining keys under an extra section
	if opts.Verbose && len(se.Details) > 0 {
		var extraKeys []string
		for key := range se.Details {
			if !printedKeys[key] {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				val := se.Details[key]
				if val == "" {
					continue
				}
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(val, maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	// Try lines (suggestions for common errors)
	for _, try := range deriveTryLines(se) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue sanitizes a value for single-line context output:
// trailing whitespace trimmed, newlines escaped, truncated to maxLen.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(se *SpeccheckError) []string {
	if se == nil {
		return nil
	}

	var lines []string

	switch se.Code {
	case EManifestNotFound:
		lines = append(lines, "speccheck init")
	case EManifestExists:
		lines = append(lines, "speccheck init --force")
	}

	return lines
}
