package cmd

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/glopal/services/internal/manager"
	"github.com/glopal/services/internal/render"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"list-services"},
	Short:   "List all registered services",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listMatch  string
	listFormat string
)

func init() {
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only show services whose name matches a glob")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format: table or json")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listFormat != "table" && listFormat != "json" {
		return errors.NotValidf("format %q", listFormat)
	}

	m, _, err := openManager()
	if err != nil {
		return err
	}

	services, err := m.List()
	if errors.Is(err, manager.ErrEmpty) {
		if listFormat == "json" {
			return render.JSON(cmd.OutOrStdout(), nil)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No services found.")
		return nil
	}
	if err != nil {
		return err
	}

	services, err = render.Filter(services, listMatch)
	if err != nil {
		return err
	}

	if listFormat == "json" {
		return render.JSON(cmd.OutOrStdout(), services)
	}
	if len(services) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No services match %q.\n", listMatch)
		return nil
	}
	return render.Table(cmd.OutOrStdout(), services)
}
