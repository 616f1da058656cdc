package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigLoader encodes and decodes an AppConfig. Only TOML is
// supported today, but the split mirrors the teacher application's
// encoding-pluggable loader.
type ConfigLoader interface {
	Encode(conf AppConfig) error
	Decode(conf AppConfig) error
}

// TomlLoader implements ConfigLoader for TOML-encoded files.
type TomlLoader struct{}

var _ ConfigLoader = (*TomlLoader)(nil)

// NewTomlLoader returns a ConfigLoader for TOML.
func NewTomlLoader() ConfigLoader { return &TomlLoader{} }

// Encode writes conf to conf.GetPath() in TOML.
func (ld *TomlLoader) Encode(conf AppConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return err
	}
	return os.WriteFile(conf.GetPath(), buf.Bytes(), 0644)
}

// Decode reads conf.GetPath() as TOML into conf.
func (ld *TomlLoader) Decode(conf AppConfig) error {
	if _, err := toml.DecodeFile(conf.GetPath(), conf); err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}
	return nil
}
