package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NielsdaWheelz/speccheck/internal/errors"
	"github.com/NielsdaWheelz/speccheck/internal/fs"
	"github.com/NielsdaWheelz/speccheck/internal/manifest"
	"github.com/NielsdaWheelz/speccheck/internal/scaffold"
)

// InitOpts holds options for the init command.
type InitOpts struct {
	Force bool
}

// Init implements the `speccheck init` command: write a starter
// specs.json in the working directory. An existing manifest is never
// overwritten unless --force is given.
func Init(fsys fs.FS, cwd string, opts InitOpts, stdout io.Writer) error {
	path := filepath.Join(cwd, manifest.DefaultFilename)

	_, err := fsys.Stat(path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.EInternal, "failed to check "+manifest.DefaultFilename, err)
	}

	if exists && !opts.Force {
		return errors.NewWithDetails(errors.EManifestExists,
			manifest.DefaultFilename+" already exists; use --force to overwrite",
			map[string]string{"manifest": path})
	}

	state := "created"
	if exists {
		state = "overwritten"
	}

	if err := fs.WriteFileAtomic(fsys, path, []byte(scaffold.SpecsJSONTemplate), 0o644); err != nil {
		return errors.Wrap(errors.EInternal, "failed to write "+manifest.DefaultFilename, err)
	}

	_, _ = fmt.Fprintf(stdout, "manifest: %s\n", path)
	_, _ = fmt.Fprintf(stdout, "state: %s\n", state)
	return nil
}
