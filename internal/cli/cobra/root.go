// Package cobra provides the Cobra-based CLI command tree for speccheck.
package cobra

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/speccheck/internal/commands"
	"github.com/NielsdaWheelz/speccheck/internal/errors"
	"github.com/NielsdaWheelz/speccheck/internal/fs"
	"github.com/NielsdaWheelz/speccheck/internal/version"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose bool
}

// globalOpts stores the parsed global options for access by main.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command for speccheck. Running the
// root command itself validates a manifest: the single optional positional
// argument is the manifest path, defaulting to specs.json in the working
// directory.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "speccheck [manifest]",
		Short: "Validate a spec-site build manifest",
		Long: `speccheck - validate a spec-site build manifest

Speccheck checks a specs.json (or YAML) manifest against the fixed
spec-site field rules, prints a console report, writes an HTML report
next to the manifest, and exits 0 on pass, 1 on fail.`,
		Version:       version.FullVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true, // We handle usage printing manually
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to get working directory", err)
			}

			opts := commands.CheckOpts{}
			if len(args) == 1 {
				opts.ManifestPath = args[0]
			}

			return commands.Check(fs.NewRealFS(), cwd, opts, time.Now, cmd.OutOrStdout())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "show detailed error context")

	// Disable Cobra's default completion command (we register our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newInitCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
