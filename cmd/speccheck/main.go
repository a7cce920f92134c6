// Command speccheck validates a spec-site build manifest and renders
// console and HTML reports.
package main

import (
	"os"

	"github.com/NielsdaWheelz/speccheck/internal/cli/cobra"
	"github.com/NielsdaWheelz/speccheck/internal/errors"
	"github.com/NielsdaWheelz/speccheck/internal/logger"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	_ = logger.Sync()
	if err != nil {
		// Use verbose mode if --verbose global flag was set
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
