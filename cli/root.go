package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCommand builds an executable's root command, the one every
// subcommand hangs off of.
type rootCommand struct {
	use   string
	short string
	long  string
}

var _ cobraCommand = (*rootCommand)(nil)

// NewRootCommand constructs a root command for the given executable's
// use, short and long descriptions.
func NewRootCommand(use, short, long string) *cobra.Command {
	rootCmd := &rootCommand{use: use, short: short, long: long}
	return rootCmd.Build()
}

func (rootCmd *rootCommand) Build() *cobra.Command {
	return &cobra.Command{
		Use:   rootCmd.use,
		Short: rootCmd.short,
		Long:  rootCmd.long,
	}
}

// ExecuteRoot runs rootCmd and exits the process with a non-zero
// status if it returns an error.
func ExecuteRoot(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
