package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/spf13/cobra"
)

var logger = loggo.GetLogger("services.cmd")

var (
	homeDir      string
	registryPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "services",
	Short: "Register shell commands as named services and run them",
	Long: `services keeps a list of named services in a JSON file under a hidden
directory in your home (~/.cli/services.json). Each service can hold a start,
stop and restart command. Commands run through the shell and are addressed by
the service id or name.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setupLogging() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Base directory (default: $SERVICES_HOME or ~/.cli)")
	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", "", "Registry file (default: <home>/services.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

func setupLogging() error {
	level := "INFO"
	if verbose {
		level = "DEBUG"
	}
	if _, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(os.Stderr, formatLog)); err != nil {
		return errors.Trace(err)
	}
	return loggo.ConfigureLoggers("<root>=" + level)
}

func formatLog(entry loggo.Entry) string {
	if entry.Level == loggo.INFO {
		return entry.Message
	}
	return fmt.Sprintf("%s: %s", strings.ToLower(entry.Level.String()), entry.Message)
}
