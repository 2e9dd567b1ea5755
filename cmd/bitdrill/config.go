package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/bitdrill/internal/game"
	"github.com/tinytelemetry/bitdrill/internal/model"
)

const (
	defaultCountdown = model.DefaultCountdown
	defaultSkin      = model.DefaultSkin
)

// appConfig is the runtime configuration after file, env and flags are merged.
type appConfig struct {
	Countdown  int    `mapstructure:"countdown"`
	Seed       uint64 `mapstructure:"seed"`
	Skin       string `mapstructure:"skin"`
	LogFile    string `mapstructure:"log-file"`
	ConfigPath string `mapstructure:"-"` // not from config file
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "bitdrill"), nil
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	configDir, err := defaultConfigDir()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetEnvPrefix("BITDRILL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("countdown", defaultCountdown)
	v.SetDefault("seed", 0)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("log-file", "")

	if configPath == "" {
		configPath = filepath.Join(configDir, "config.yml")
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigPath = configPath

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	if c.Countdown < game.MinCountdown || c.Countdown > game.MaxCountdown {
		return fmt.Errorf("countdown must be between %d and %d seconds, got %d",
			game.MinCountdown, game.MaxCountdown, c.Countdown)
	}
	return nil
}
