package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tool defaults, loaded from
// <user config dir>/dxfhatch/config.toml when present.
type Config struct {
	// Revision is the default target revision for roundtrip.
	Revision string `toml:"revision"`
	// CodePage is the $DWGCODEPAGE assumed for pre-R2007 files.
	CodePage string `toml:"codepage"`
}

// defaultConfig is used when no config file exists.
func defaultConfig() Config {
	return Config{
		Revision: "R2000",
		CodePage: "ANSI_1252",
	}
}

// loadConfig reads the TOML config file, falling back to defaults when
// the file does not exist. Unset keys keep their defaults.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, "dxfhatch", "config.toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Revision == "" {
		cfg.Revision = defaultConfig().Revision
	}
	if cfg.CodePage == "" {
		cfg.CodePage = defaultConfig().CodePage
	}
	return cfg, nil
}
