package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/internal"
)

// versionCommand builds an executable's "version" subcommand.
type versionCommand struct {
	appName string
}

var _ cobraCommand = (*versionCommand)(nil)

// NewVersionCommand constructs a "version" subcommand for appName.
func NewVersionCommand(appName string) *cobra.Command {
	versCmd := &versionCommand{appName: appName}
	return versCmd.Build()
}

func (versCmd *versionCommand) Build() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + versCmd.appName + ".",
		Long:  `Print the version number of ` + versCmd.appName + `.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(versCmd.appName + " v" + internal.Version)
		},
	}
}
