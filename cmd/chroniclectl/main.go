// Executable chronicle administration client. Run "chroniclectl help"
// for usage instructions.
package main

import (
	"github.com/chronicle-sys/chronicle-go/cli"
	"github.com/chronicle-sys/chronicle-go/cmd/chroniclectl/internal/cmd"
)

func main() {
	cli.ExecuteRoot(cmd.RootCmd)
}
