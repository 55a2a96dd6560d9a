package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "MKLINK_"

//go:embed defaults.toml
var defaultConfig []byte

type Config struct {
	Locale      string      `koanf:"locale"`
	Executables Executables `koanf:"executables"`
	Elevation   Elevation   `koanf:"elevation"`
	Log         Log         `koanf:"log"`
}

// Executables name the programs that perform the actual link creation.
type Executables struct {
	Shell      string `koanf:"shell"`
	PowerShell string `koanf:"powershell"`
}

type Elevation struct {
	Command string `koanf:"command"`
}

type Log struct {
	File bool `koanf:"file"`
}

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultPath is the user config file consulted when no explicit path is
// given.
func DefaultPath() (string, error) {
	return xdg.SearchConfigFile("mklink/config.toml")
}

// Load layers the embedded defaults, the config file at path and MKLINK_*
// environment variables, in that order. An empty path falls back to
// DefaultPath and is skipped when no such file exists; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		// SearchConfigFile errors when nothing is found, which is fine.
		path, _ = DefaultPath()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Executables.Shell == "" || cfg.Executables.PowerShell == "" {
		return nil, errors.New("config: executables.shell and executables.powershell must not be empty")
	}

	return &cfg, nil
}
