package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/cli"
	"github.com/chronicle-sys/chronicle-go/merklekv"
)

var listCmd = cli.NewActionCommand("list",
	"List stored entries, optionally restricted to an ordinal range.",
	`List every entry ever written, in ordinal order. With --from and/or
--to, list only the entries whose ordinal falls in [from, to).`,
	runList,
	func(cmd *cobra.Command) {
		cmd.Flags().Uint64("from", 0, "first ordinal to include")
		cmd.Flags().Uint64("to", 0, "ordinal to stop before (0 means no upper bound)")
	})

func runList(cmd *cobra.Command, args []string) error {
	conf := loadConfigOrExit(cmd)
	s, db, err := openStore(conf)
	if err != nil {
		return err
	}
	defer db.Close()

	from, _ := cmd.Flags().GetUint64("from")
	to, _ := cmd.Flags().GetUint64("to")

	var entries []merklekv.Entry
	if from == 0 && to == 0 {
		entries, err = s.AllEntries()
	} else if to == 0 {
		entries, err = s.RangeEntries(from, math.MaxUint64)
	} else {
		entries, err = s.RangeEntries(from, to)
	}
	if err != nil {
		return err
	}
	for i, e := range entries {
		fmt.Printf("%d: %q = %q\n", from+uint64(i), e.Key, e.Value)
	}
	return nil
}
