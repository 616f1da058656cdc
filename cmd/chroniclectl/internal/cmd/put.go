package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/cli"
	"github.com/chronicle-sys/chronicle-go/history"
)

var putCmd = cli.NewActionCommand("put <key> <value>",
	"Append a key/value write.",
	`Append a new write for key, save it, and checkpoint the resulting
root into the signing history chain.`,
	runPut, nil)

func runPut(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("put requires exactly 2 arguments: <key> <value>")
	}
	conf := loadConfigOrExit(cmd)
	log := newLogger(conf)
	defer log.Sync()
	s, db, err := openStore(conf)
	if err != nil {
		return err
	}
	defer db.Close()

	priv, err := loadSigningKey(conf)
	if err != nil {
		return err
	}
	pub, err := loadVerifyKey(conf.VerifyKeyPath)
	if err != nil {
		return err
	}

	kvs, err := s.Load()
	if err != nil {
		return err
	}
	ord, err := kvs.Put([]byte(args[0]), []byte(args[1]))
	if err != nil {
		return err
	}
	if err := s.Save(kvs); err != nil {
		return err
	}

	roots, err := s.LoadChain()
	if err != nil {
		return err
	}
	chain := history.ImportChain(pub, roots)
	if _, err := chain.Append(priv, kvs.Tree()); err != nil {
		return err
	}
	if err := s.SaveChain(chain); err != nil {
		return err
	}

	log.Info("wrote entry", "ordinal", ord, "root", kvs.Tree().RootDigest().String())
	fmt.Printf("ordinal=%d root=%s\n", ord, kvs.Tree().RootDigest())
	return nil
}
