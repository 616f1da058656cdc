package cmd

import (
	"github.com/chronicle-sys/chronicle-go/cli"
)

// RootCmd represents the base "chroniclectl" command when called
// without any subcommands.
var RootCmd = cli.NewRootCommand("chroniclectl",
	"Inspect and append to a history-authenticating Merkle tree",
	`chroniclectl manages a single append-only key/value store backed by
a history-authenticating Merkle tree: every write is a new leaf, every
write is provable by a membership proof against the root that followed
it, and every earlier root is provable by an incremental proof against
any later one.`)

func init() {
	RootCmd.PersistentFlags().String("config", "config.toml", "path to chroniclectl's config file")
	RootCmd.AddCommand(cli.NewVersionCommand("chroniclectl"))
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(proveMembershipCmd)
	RootCmd.AddCommand(verifyMembershipCmd)
	RootCmd.AddCommand(proveIncrementalCmd)
	RootCmd.AddCommand(verifyIncrementalCmd)
	RootCmd.AddCommand(historyVerifyCmd)
}
