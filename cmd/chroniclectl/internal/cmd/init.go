package cmd

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ed25519"

	"github.com/chronicle-sys/chronicle-go/cli"
	"github.com/chronicle-sys/chronicle-go/config"
	"github.com/chronicle-sys/chronicle-go/logging"
)

var initCmd = cli.NewActionCommand("init",
	"Create a configuration file and signing keypair.",
	`Create a configuration file and an ed25519 signing keypair for a new
chronicle store in the current directory.`,
	runInit,
	func(cmd *cobra.Command) {
		cmd.Flags().String("backend", "memory", "storage backend: memory, leveldb or badger")
		cmd.Flags().String("data-dir", "chronicle-data", "directory for the on-disk database")
	})

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	backend, _ := cmd.Flags().GetString("backend")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	if err := os.WriteFile("sign.key", priv, 0600); err != nil {
		return err
	}
	if err := os.WriteFile("sign.pub", pub, 0644); err != nil {
		return err
	}

	conf := config.Default()
	conf.Path = path
	conf.Backend = backend
	conf.DataDir = dataDir
	conf.SigningKeyPath = "sign.key"
	conf.VerifyKeyPath = "sign.pub"
	conf.Logger = &logging.Config{Environment: "development"}
	if err := conf.Save(); err != nil {
		return err
	}

	fmt.Println("wrote", path, "sign.key", "sign.pub")
	return nil
}
