// Package config loads workspace configuration from .advent.toml at the
// workspace root. A missing file or key falls back to the default year, so a
// bare checkout works without any setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	DefaultYear = 2025

	configName      = ".advent"
	configType      = "toml"
	configFile      = ".advent.toml"
	yearKey         = "year"
	configFileMode  = 0o644
	tempFilePattern = ".advent-*.toml.tmp"
)

type Config struct {
	Year int `toml:"year"`
}

func Load(root string) (Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(root)
	v.SetDefault(yearKey, DefaultYear)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read workspace config: %w", err)
		}
	}

	cfg := Config{Year: v.GetInt(yearKey)}
	if cfg.Year == 0 {
		cfg.Year = DefaultYear
	}

	return cfg, nil
}

func Path(root string) string {
	return filepath.Join(root, configFile)
}

// Write persists the config atomically via temp file + rename.
func Write(root string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode workspace config: %w", err)
	}

	tempFile, err := os.CreateTemp(root, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, Path(root)); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	return nil
}
