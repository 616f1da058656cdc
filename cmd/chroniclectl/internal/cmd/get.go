package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/cli"
)

var getCmd = cli.NewActionCommand("get <key>",
	"Print the most recently written value for a key.",
	`Print the most recently written value for key, along with the
ordinal it was written at.`,
	runGet, nil)

func runGet(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("get requires exactly 1 argument: <key>")
	}
	conf := loadConfigOrExit(cmd)
	s, db, err := openStore(conf)
	if err != nil {
		return err
	}
	defer db.Close()

	kvs, err := s.Load()
	if err != nil {
		return err
	}
	value, ordinal, err := kvs.Get([]byte(args[0]))
	if err != nil {
		return err
	}
	fmt.Printf("ordinal=%d value=%q\n", ordinal, value)
	return nil
}
