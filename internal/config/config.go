// Package config loads editor settings from YAML and environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the root configuration structure
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds editing preferences
type UIConfig struct {
	TabWidth int `mapstructure:"tab_width"`
	MaxLines int `mapstructure:"max_lines"`
}

// LogConfig holds logging preferences
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Load reads configuration from an explicit file when path is non-empty,
// otherwise from $HOME/.config/mktxt or the working directory. Environment
// variables prefixed MKTXT_ override file values. A missing config file is
// not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/mktxt")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("MKTXT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration values
func Validate(cfg *Config) error {
	if cfg.UI.TabWidth < 1 || cfg.UI.TabWidth > 16 {
		return fmt.Errorf("ui.tab_width must be between 1 and 16, got %d", cfg.UI.TabWidth)
	}
	if cfg.UI.MaxLines < 0 {
		return fmt.Errorf("ui.max_lines must be >= 0, got %d", cfg.UI.MaxLines)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	valid := false
	for _, level := range validLevels {
		if cfg.Log.Level == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log.level must be one of: %v, got %s", validLevels, cfg.Log.Level)
	}
	return nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("ui.tab_width", 4)
	v.SetDefault("ui.max_lines", 10000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
}
