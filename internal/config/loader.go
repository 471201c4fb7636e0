package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding the YAML config path.
const PathEnv = "CONFIG_PATH"

const defaultPath = "./config.yaml"

// Load resolves the config file from CONFIG_PATH, falling back to
// ./config.yaml when that exists, and then to environment variables alone.
// Environment variables always win over the file. An explicit CONFIG_PATH
// that cannot be read is an error.
func Load() (*Config, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return LoadFrom(path)
	}
	if _, err := os.Stat(defaultPath); err == nil {
		return LoadFrom(defaultPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", defaultPath, err)
	}
	return LoadFrom("")
}

// LoadFrom reads path (when non-empty) plus the environment and validates
// the result. Defaults come from the env-default tags.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Usage lists every environment variable with its default, for -help output.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return fmt.Sprintf("config: describe env: %v", err)
	}
	return text
}
