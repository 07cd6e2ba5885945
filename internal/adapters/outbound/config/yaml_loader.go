package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/scoopctl/scoopctl/internal/domain"
)

const fileName = ".scoopctl.yaml"

// YAMLLoader reads shop configuration from .scoopctl.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .scoopctl.yaml from dir. Returns DefaultShopConfig if the
// file does not exist; fields the file leaves unset fall back to their
// defaults.
func (l *YAMLLoader) Load(dir string) (domain.ShopConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultShopConfig(), nil
		}
		return domain.ShopConfig{}, err
	}

	var cfg domain.ShopConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ShopConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ShopConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeDefaults(cfg), nil
}

// mergeDefaults fills unset fields from the default configuration.
// Explicit values always win.
func mergeDefaults(cfg domain.ShopConfig) domain.ShopConfig {
	defaults := domain.DefaultShopConfig()
	if cfg.ShopName == "" {
		cfg.ShopName = defaults.ShopName
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.Currency == "" {
		cfg.Currency = defaults.Currency
	}
	if cfg.IDScheme == "" {
		cfg.IDScheme = defaults.IDScheme
	}
	return cfg
}
