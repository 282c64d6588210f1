package cmd

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/glopal/services/internal/manager"
	"github.com/glopal/services/internal/render"
	"github.com/glopal/services/internal/service"
)

type actionFlags struct {
	id   int
	name string
}

func newActionCmd(action service.Action, short string) *cobra.Command {
	var f actionFlags
	c := &cobra.Command{
		Use:     action.String() + " [id|name]",
		Aliases: []string{action.String() + "-services"},
		Short:   short,
		Long: short + `.

Without an id or a name the first registered service (id 1) is used.
A numeric key is treated as an id, anything else as a name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := targetFromFlags(cmd, args, f.id, f.name)
			if err != nil {
				return err
			}
			return runAction(cmd, t, action)
		},
	}
	c.Flags().IntVarP(&f.id, "id", "i", 0, "Service id")
	c.Flags().StringVarP(&f.name, "name", "n", "", "Service name")
	return c
}

func init() {
	rootCmd.AddCommand(
		newActionCmd(service.Start, "Start a service using its stored command"),
		newActionCmd(service.Stop, "Stop a service using its stored command"),
		newActionCmd(service.Restart, "Restart a service using its stored command"),
	)
}

func runAction(cmd *cobra.Command, t service.Target, action service.Action) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	res, err := m.Prepare(t, action)
	if errors.Is(err, errors.NotImplemented) {
		fmt.Fprintf(cmd.OutOrStdout(), "Command not implemented: service '%s' has no %s command.\n", res.Service.Name, action)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s service '%s' with command: '%s'\n", action.Verb(), res.Service.Name, res.Command)
	res, err = m.Run(res)
	if err != nil {
		return err
	}
	return reportResult(cmd, res)
}

func reportResult(cmd *cobra.Command, res manager.Result) error {
	if res.Success() {
		fmt.Fprintln(cmd.OutOrStdout(), render.SuccessStyle.Render("Command executed with success."))
		if out := strings.TrimRight(res.Output.Stdout, "\n"); out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	}
	msg := fmt.Sprintf("Command failed with exit status %d.", res.Output.ExitCode)
	fmt.Fprintln(cmd.ErrOrStderr(), render.ErrorStyle.Render(msg))
	if out := strings.TrimRight(res.Output.Stderr, "\n"); out != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), out)
	}
	return errReported
}
