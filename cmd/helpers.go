package cmd

import (
	"fmt"
	"io"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/glopal/services/internal/config"
	"github.com/glopal/services/internal/manager"
	"github.com/glopal/services/internal/render"
	"github.com/glopal/services/internal/root"
	"github.com/glopal/services/internal/runner"
	"github.com/glopal/services/internal/service"
	"github.com/glopal/services/internal/store"
)

// errReported marks a failure whose message has already been printed.
const errReported = errors.ConstError("failure already reported")

// openManager resolves the base directory once and wires the store and
// shell into a manager.
func openManager() (*manager.Manager, *store.Store, error) {
	base, err := root.BaseDir(homeDir)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(root.ConfigPath(base))
	if err != nil {
		return nil, nil, err
	}

	path := registryPath
	if path == "" {
		path = cfg.Registry
	}
	if path == "" {
		path = root.RegistryPath(base)
	}

	sh, err := runner.NewShell(cfg.Shell)
	if err != nil {
		return nil, nil, err
	}
	st := store.New(path)
	return manager.New(st, sh), st, nil
}

// exitCode maps an error onto the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errors.NotImplemented):
		return 0
	case errors.Is(err, errors.NotValid), errors.Is(err, errors.NotFound):
		return 2
	default:
		return 1
	}
}

func printError(w io.Writer, err error) {
	if service.IsUserFacing(err) {
		fmt.Fprintln(w, render.NoticeStyle.Render(capitalize(err.Error())+"."))
		return
	}
	fmt.Fprintln(w, render.ErrorStyle.Render("error: "+err.Error()))
}

// targetFromFlags builds a target from a positional key or --id/--name.
func targetFromFlags(cmd *cobra.Command, args []string, id int, name string) (service.Target, error) {
	idSet := cmd.Flags().Changed("id")
	nameSet := cmd.Flags().Changed("name")

	if len(args) > 0 {
		if idSet || nameSet {
			return service.Target{}, errors.NotValidf("a key together with --id or --name")
		}
		return service.ParseKey(args[0]), nil
	}

	var t service.Target
	if idSet {
		if id < 1 {
			return t, errors.NotValidf("id %d", id)
		}
		t.ID = &id
	}
	if nameSet {
		t.Name = &name
	}
	return t, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
