package cobra

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/speccheck/internal/commands"
	"github.com/NielsdaWheelz/speccheck/internal/errors"
	"github.com/NielsdaWheelz/speccheck/internal/fs"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter specs.json",
		Long: `Create a starter specs.json in the current directory.
The template populates every required field with a placeholder that
validates cleanly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to get working directory", err)
			}

			opts := commands.InitOpts{Force: force}
			return commands.Init(fs.NewRealFS(), cwd, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing specs.json")

	return cmd
}
