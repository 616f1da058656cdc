// Package cli supplies small cobra.Command builders shared by
// chronicle's command-line tools, so each tool wires together the same
// handful of command shapes instead of constructing cobra.Command
// literals by hand.
package cli

import (
	"github.com/spf13/cobra"
)

// cobraCommand is implemented by every command builder in this
// package.
type cobraCommand interface {
	Build() *cobra.Command
}
