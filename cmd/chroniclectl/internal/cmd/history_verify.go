package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/cli"
)

var historyVerifyCmd = cli.NewActionCommand("history-verify",
	"Verify every checkpoint in the signing history chain.",
	`Load every signed checkpoint written so far and verify its
signature and its linkage to the checkpoint before it, against the
public key at --verify-key (default: the config's verify_key_path).`,
	runHistoryVerify,
	func(cmd *cobra.Command) {
		cmd.Flags().String("verify-key", "", "path to the ed25519 public key (default: config's verify_key_path)")
	})

func runHistoryVerify(cmd *cobra.Command, args []string) error {
	conf := loadConfigOrExit(cmd)
	keyPath, _ := cmd.Flags().GetString("verify-key")
	if keyPath == "" {
		keyPath = conf.VerifyKeyPath
	}
	pub, err := loadVerifyKey(keyPath)
	if err != nil {
		return err
	}

	s, db, err := openStore(conf)
	if err != nil {
		return err
	}
	defer db.Close()

	roots, err := s.LoadAndVerifyChain(pub)
	if err != nil {
		return err
	}
	fmt.Printf("OK: %d checkpoint(s) verified\n", len(roots))
	return nil
}
