package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ed25519"

	"github.com/chronicle-sys/chronicle-go/config"
	"github.com/chronicle-sys/chronicle-go/logging"
	"github.com/chronicle-sys/chronicle-go/storage/kv"
	"github.com/chronicle-sys/chronicle-go/storage/kv/badgerkv"
	"github.com/chronicle-sys/chronicle-go/storage/kv/leveldbkv"
	"github.com/chronicle-sys/chronicle-go/storage/kv/memkv"
	"github.com/chronicle-sys/chronicle-go/store"
)

const configMissingUsage = `
Couldn't load chronicle's config file.

Run
  chroniclectl init
first. This creates config.toml and an ed25519 signing keypair in the
current directory. If you keep the config file somewhere else, point
at it with --config.
`

func loadConfigOrExit(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	conf := &config.Config{}
	if err := conf.Load(path); err != nil {
		fmt.Println(err)
		fmt.Print(configMissingUsage)
		os.Exit(1)
	}
	return conf
}

func openDB(conf *config.Config) (kv.DB, error) {
	switch conf.Backend {
	case "leveldb":
		return leveldbkv.OpenDB(conf.DataDir)
	case "badger":
		return badgerkv.OpenDB(conf.DataDir)
	case "memory", "":
		return memkv.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", conf.Backend)
	}
}

func newLogger(conf *config.Config) *logging.Logger {
	lconf := conf.Logger
	if lconf == nil {
		lconf = &logging.Config{Environment: "production"}
	}
	l, err := logging.New(lconf)
	if err != nil {
		fmt.Println("warning: bad logger config, falling back to production:", err)
		l, _ = logging.New(&logging.Config{Environment: "production"})
	}
	return l
}

func openStore(conf *config.Config) (*store.Store, kv.DB, error) {
	db, err := openDB(conf)
	if err != nil {
		return nil, nil, err
	}
	return store.Open(db), db, nil
}

func loadSigningKey(conf *config.Config) (ed25519.PrivateKey, error) {
	b, err := os.ReadFile(conf.SigningKeyPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read signing key: %v", err)
	}
	if len(b) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("signing key must be %d bytes (got %d)", ed25519.PrivateKeySize, len(b))
	}
	return ed25519.PrivateKey(b), nil
}

func loadVerifyKey(path string) (ed25519.PublicKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read verify key: %v", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("verify key must be %d bytes (got %d)", ed25519.PublicKeySize, len(b))
	}
	return ed25519.PublicKey(b), nil
}
