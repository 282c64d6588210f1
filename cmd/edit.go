package cmd

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/glopal/services/internal/manager"
)

var editCmd = &cobra.Command{
	Use:     "edit",
	Aliases: []string{"edit-services"},
	Short:   "Edit a service, saving only the fields given",
	Long: `Edit a service, saving only the fields given.

Passing an empty value to --start, --stop or --restart clears that command.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

var (
	editID      int
	editName    string
	editStart   string
	editStop    string
	editRestart string
)

func init() {
	editCmd.Flags().IntVarP(&editID, "id", "i", 0, "Service id")
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "Set the service name")
	editCmd.Flags().StringVar(&editStart, "start", "", "Set the start command")
	editCmd.Flags().StringVar(&editStop, "stop", "", "Set the stop command")
	editCmd.Flags().StringVar(&editRestart, "restart", "", "Set the restart command")
	_ = editCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	c := changesFromFlags(cmd)
	if c.Empty() {
		return errors.NotValidf("edit without fields; use --name, --start, --stop or --restart")
	}

	m, _, err := openManager()
	if err != nil {
		return err
	}

	if _, err := m.Edit(editID, c); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Service %d edited.\n", editID)
	return nil
}

// changesFromFlags returns a change for every flag set on the command line,
// including flags explicitly set to "".
func changesFromFlags(cmd *cobra.Command) manager.Changes {
	var c manager.Changes
	flags := cmd.Flags()
	pick := func(name string, v string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return &v
	}
	c.Name = pick("name", editName)
	c.StartCommand = pick("start", editStart)
	c.StopCommand = pick("stop", editStop)
	c.RestartCommand = pick("restart", editRestart)
	return c
}
