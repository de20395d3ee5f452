package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/flashquiz/internal/validation"
)

// EnvPrefix marks environment variables read as configuration
const EnvPrefix = "FLASHQUIZ_"

// Config represents the application configuration
type Config struct {
	DB          DBConfig    `koanf:"db"`
	Log         LogConfig   `koanf:"log"`
	ColorScheme ColorScheme `koanf:"theme"`
}

// DBConfig locates the store file
type DBConfig struct {
	Path          string `koanf:"path" validate:"required"`
	BusyTimeoutMS int    `koanf:"busy_timeout_ms" validate:"gte=0"`
}

// LogConfig controls where diagnostics go. An empty File discards them.
type LogConfig struct {
	File   string `koanf:"file"`
	Level  string `koanf:"level" validate:"oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// FlagKeys maps persistent flag names to config keys
var FlagKeys = map[string]string{
	"db":        "db.path",
	"log-file":  "log.file",
	"log-level": "log.level",
	"theme":     "theme.preset",
}

var defaults = map[string]any{
	"db.path":            "flashcards.db",
	"db.busy_timeout_ms": 5000,
	"log.file":           "",
	"log.level":          "info",
	"log.format":         "text",
	"theme.preset":       "default",
}

// Load layers configuration: defaults, then the YAML file, then FLASHQUIZ_*
// environment variables, then explicitly set flags. An empty path falls back
// to the user's config directory; a missing default file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	explicit := path != ""
	if !explicit {
		if p, err := getConfigPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := FlagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()

	if err := validation.Validator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey turns FLASHQUIZ_DB_BUSY_TIMEOUT_MS into db.busy_timeout_ms.
// Only the first underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "flashquiz", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "flashquiz", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.ColorScheme.ApplyDefaults()
}
