package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/jsontree/version"
)

// SetVersionTemplate wires the build metadata into cobra's --version output.
func SetVersionTemplate(cmd *cobra.Command) {
	info := version.GetInfo()
	cmd.Version = info.Version
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
  Go:        %s
  Platform:  %s
`, info.Commit, info.BuildDate, info.GoVersion, info.Platform))
}
