package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove [id|name]",
	Aliases: []string{"rm", "remove-services"},
	Short:   "Remove a service and renumber the remaining ids",
	Long: `Remove a service and renumber the remaining ids.

With both --id and --name, every service matching either one is removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

var (
	removeID   int
	removeName string
)

func init() {
	removeCmd.Flags().IntVarP(&removeID, "id", "i", 0, "Service id")
	removeCmd.Flags().StringVarP(&removeName, "name", "n", "", "Service name")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	t, err := targetFromFlags(cmd, args, removeID, removeName)
	if err != nil {
		return err
	}

	m, _, err := openManager()
	if err != nil {
		return err
	}

	n, err := m.Remove(t)
	if err != nil {
		return err
	}

	if n == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), "Service removed.")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%d services removed.\n", n)
	}
	return nil
}
