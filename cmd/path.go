package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glopal/services/internal/root"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the registry file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openManager()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), st.Path())
		if !root.Exists(filepath.Dir(st.Path())) {
			logger.Infof("%s does not exist yet; it is created on the first add", filepath.Dir(st.Path()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
