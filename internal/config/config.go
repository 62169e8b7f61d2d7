package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig selects the level and destination of structured logs. An empty
// File discards logs while the wizard owns the terminal and writes to
// stderr otherwise.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowHelp bool `mapstructure:"show_help"`
}

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"db":        "database.path",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads configuration from defaults, an optional TOML file and the
// environment (prefix SCHOLARFORM_). Flags in flags that were set on the
// command line take precedence over all three.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".scholarform", "scholarform.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.show_help", true)

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("SCHOLARFORM_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "scholarform"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SCHOLARFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Database.Path = expandHome(c.Database.Path, home)
	c.Log.File = expandHome(c.Log.File, home)
	return c, nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
