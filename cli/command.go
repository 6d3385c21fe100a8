package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/jsontree/logging"
)

// CommandOptions holds the flags common to jsontree commands.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
}

// NewStandardCommand creates a command with the standard jsontree flags and
// styled help attached.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to jsontree.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger creates a logger honoring the command's --verbose flag.
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	entry := logging.NewLogger("cli")
	logger := entry.Logger

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

// GetOptions extracts the common options from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
	}
}
