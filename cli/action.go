package cli

import (
	"github.com/spf13/cobra"
)

// actionCommand builds a subcommand whose behavior is an arbitrary
// cobra RunE function, generalizing the narrower per-purpose
// run/init commands of a directory-style server to the open set of
// subcommands a history tool needs (build, append, prove, verify,
// kv get/put, history verify, ...).
type actionCommand struct {
	use     string
	short   string
	long    string
	runFunc func(cmd *cobra.Command, args []string) error
	setup   func(cmd *cobra.Command)
}

var _ cobraCommand = (*actionCommand)(nil)

// NewActionCommand constructs a subcommand named use that runs
// runFunc. setup, if non-nil, is called once on the built command to
// register flags before it is returned.
func NewActionCommand(use, short, long string, runFunc func(cmd *cobra.Command, args []string) error, setup func(cmd *cobra.Command)) *cobra.Command {
	ac := &actionCommand{use: use, short: short, long: long, runFunc: runFunc, setup: setup}
	return ac.Build()
}

func (ac *actionCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   ac.use,
		Short: ac.short,
		Long:  ac.long,
		RunE:  ac.runFunc,
	}
	if ac.setup != nil {
		ac.setup(cmd)
	}
	return cmd
}
