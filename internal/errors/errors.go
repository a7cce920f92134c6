// Package errors defines the stable error code system for speccheck.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract for scripts and CI wrappers.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Manifest ingestion error codes
	EManifestNotFound Code = "E_MANIFEST_NOT_FOUND" // input path does not exist or is unreadable
	EManifestInvalid  Code = "E_MANIFEST_INVALID"   // input bytes are not valid JSON/YAML
	EManifestExists   Code = "E_MANIFEST_EXISTS"    // init target already exists without --force

	// Validation outcome error codes
	EValidationFailed  Code = "E_VALIDATION_FAILED"   // run finished with one or more error findings
	EReportWriteFailed Code = "E_REPORT_WRITE_FAILED" // HTML report could not be written
)

// SpeccheckError is the standard error type for speccheck errors.
type SpeccheckError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *SpeccheckError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *SpeccheckError) Unwrap() error {
	return e.Cause
}

// ExitCodeError wraps an error with an explicit process exit code.
type ExitCodeError struct {
	Err  error
	Code int
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

func (e *ExitCodeError) ExitCode() int {
	return e.Code
}

// WithExitCode wraps err with a specific process exit code.
func WithExitCode(err error, code int) error {
	return &ExitCodeError{Err: err, Code: code}
}

// New creates a new SpeccheckError with the given code and message.
func New(code Code, msg string) error {
	return &SpeccheckError{Code: code, Msg: msg}
}

// NewWithDetails creates a new SpeccheckError with code, message, and details.
// Details map is defensively copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &SpeccheckError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new SpeccheckError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &SpeccheckError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new SpeccheckError wrapping an underlying error with details.
// Details map is defensively copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &SpeccheckError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a SpeccheckError.
func GetCode(err error) Code {
	var se *SpeccheckError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// AsSpeccheckError returns (*SpeccheckError, true) if err is or wraps a SpeccheckError.
func AsSpeccheckError(err error) (*SpeccheckError, bool) {
	var se *SpeccheckError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// copyDetails returns a defensive copy of the details map, or nil if empty/nil.
func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ec, ok := err.(interface{ ExitCode() int }); ok {
		return ec.ExitCode()
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var se *SpeccheckError
	if errors.As(err, &se) {
		_, _ = fmt.Fprintf(w, "error_code: %s\n", se.Code)
		_, _ = fmt.Fprintln(w, se.Msg)
	} else {
		// Fallback for non-SpeccheckError errors (should not happen in practice)
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
