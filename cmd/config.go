package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/jsontree/cli"
	"github.com/grovetools/jsontree/config"
)

func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Shows the configuration after merging jsontree.yml with defaults.
Useful for checking which file was picked up and what values apply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			cfg, err := config.Load(opts.ConfigFile)
			if err != nil {
				return cli.NewErrorHandler(opts.Verbose).Handle(err)
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}
}
