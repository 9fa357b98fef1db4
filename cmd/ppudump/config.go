package main

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"nespu/internal/log"
)

// Config is ppudump's optional on-disk configuration. There is no
// OS-specific config-directory lookup: callers pass an explicit path via
// --config instead.
type Config struct {
	OutDir string `toml:"out_dir"`
	Frames int    `toml:"frames"`
}

func defaultConfig() Config {
	return Config{OutDir: ".", Frames: 2}
}

// LoadConfigOrDefault loads cfg from path, or returns defaultConfig() if
// path is empty. A path that does not exist yet is seeded with the defaults,
// leaving the user a template to edit.
func LoadConfigOrDefault(path string) Config {
	cfg := defaultConfig()
	if path == "" {
		return cfg
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveConfig(cfg, path); err != nil {
			log.ModEmu.Warnf("seeding config %s: %v", path, err)
		}
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(cfg Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
