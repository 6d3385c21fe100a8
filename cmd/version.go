package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/jsontree/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print detailed version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetInfo().String())
		},
	}
}
