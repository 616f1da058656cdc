// Package config loads chronicle's TOML-encoded configuration files,
// following the loader/encoding split the rest of this module's
// tooling uses for its own application configs.
package config

import (
	"fmt"

	"github.com/chronicle-sys/chronicle-go/logging"
)

// AppConfig abstracts over the encoding used to load and save a
// configuration value.
type AppConfig interface {
	Load(path string) error
	Save() error
	GetPath() string
}

// Config is chronicle's application-level configuration: where to
// store data, which backend to store it in, the logging setup, and
// the path to the ed25519 signing key used to checkpoint history.
type Config struct {
	Path string `toml:"-"`

	// DataDir holds the on-disk database, if Backend is not "memory".
	DataDir string `toml:"data_dir"`
	// Backend selects the storage/kv implementation: "leveldb",
	// "badger", or "memory".
	Backend string `toml:"backend"`
	// SigningKeyPath is the path to a 64-byte ed25519 private key used
	// to sign history checkpoints.
	SigningKeyPath string `toml:"signing_key_path"`
	// VerifyKeyPath is the path to the 32-byte ed25519 public key
	// matching SigningKeyPath.
	VerifyKeyPath string `toml:"verify_key_path"`

	Logger *logging.Config `toml:"logger"`
}

var _ AppConfig = (*Config)(nil)

// Default returns a Config with the in-memory backend and a
// development logger, suitable for a first run before any config file
// exists.
func Default() *Config {
	return &Config{
		Backend: "memory",
		Logger:  &logging.Config{Environment: "development"},
	}
}

// GetPath returns the file the config was loaded from, or will be
// saved to.
func (c *Config) GetPath() string { return c.Path }

// Load reads and decodes a TOML configuration file at path into c.
func (c *Config) Load(path string) error {
	c.Path = path
	if err := NewTomlLoader().Decode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Save encodes c as TOML and writes it to c.Path.
func (c *Config) Save() error {
	if c.Path == "" {
		return fmt.Errorf("config: Save called with no Path set")
	}
	return NewTomlLoader().Encode(c)
}
