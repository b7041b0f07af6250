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

// Settings holds runtime options for the terminal host.
type Settings struct {
	FPS     int    `mapstructure:"fps"`
	Caption bool   `mapstructure:"caption"`
	LogFile string `mapstructure:"log_file"`
}

// ErrInvalidFPS is returned when the configured frame rate is out of range.
var ErrInvalidFPS = errors.New("fps out of range")

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		FPS:     DefaultFPS,
		Caption: true,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/diya-scene/config.toml
// (or the platform equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "diya-scene", "config.toml"), nil
}

// Load reads settings from defaults, an optional TOML file, DIYA_* env vars and
// any flags in fs that were set on the command line, in increasing priority.
// An empty path falls back to DefaultConfigPath; a missing default file is not
// an error, a missing explicit file is.
func Load(path string, fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	def := DefaultSettings()
	v.SetDefault("fps", def.FPS)
	v.SetDefault("caption", def.Caption)
	v.SetDefault("log_file", def.LogFile)

	v.SetConfigType("toml")
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err == nil {
			path = p
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range map[string]string{"fps": "fps", "log_file": "log-file"} {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("no-caption"); f != nil && f.Changed {
			v.Set("caption", f.Value.String() != "true")
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case explicit:
				return Settings{}, fmt.Errorf("read config %s: %w", path, err)
			case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			default:
				return Settings{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every field is usable by the host.
func (s Settings) Validate() error {
	if s.FPS < MinFPS || s.FPS > MaxFPS {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidFPS, s.FPS, MinFPS, MaxFPS)
	}
	return nil
}
