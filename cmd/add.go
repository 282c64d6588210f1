package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glopal/services/internal/service"
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"add-services"},
	Short:   "Register a new service",
	Example: `  services add --name web --start "docker start web" --stop "docker stop web"`,
	Args:    cobra.NoArgs,
	RunE:    runAdd,
}

var (
	addName    string
	addStart   string
	addStop    string
	addRestart string
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Service name")
	addCmd.Flags().StringVar(&addStart, "start", "", "Command that starts the service")
	addCmd.Flags().StringVar(&addStop, "stop", "", "Command that stops the service")
	addCmd.Flags().StringVar(&addRestart, "restart", "", "Command that restarts the service")
	_ = addCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	svc, err := m.Add(addName, service.Str(addStart), service.Str(addStop), service.Str(addRestart))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Service added with id %d.\n", svc.ID)
	return nil
}
