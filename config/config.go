// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config loads and validates migration settings. Values come from
// defaults, then an optional file, then ZWLMIGRATE_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitfsorg/zwl-zewif-go/logging"
	"github.com/bitfsorg/zwl-zewif-go/migrate"
	"github.com/bitfsorg/zwl-zewif-go/store"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ZWLMIGRATE_LOG_LEVEL.
const EnvPrefix = "ZWLMIGRATE"

// DefaultFileName is the file ConfigPath resolves to.
const DefaultFileName = "zwl-migrate.yaml"

const (
	keyLogLevel    = "log_level"
	keyLogPretty   = "log_pretty"
	keyAccountName = "account_name"
	keyStorePath   = "store_path"
	keySealSeed    = "seal_seed"

	keySealPassphrase = "seal_passphrase"
)

// Config holds migration settings.
type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	LogPretty   bool   `mapstructure:"log_pretty"`
	AccountName string `mapstructure:"account_name"`

	// StorePath is the bbolt file migrated containers are written to.
	// Empty disables persistence.
	StorePath string `mapstructure:"store_path"`

	// SealSeed encrypts seed material in the store under SealPassphrase.
	SealSeed bool `mapstructure:"seal_seed"`

	// SealPassphrase is read from ZWLMIGRATE_SEAL_PASSPHRASE and never
	// written by SaveConfig.
	SealPassphrase string `mapstructure:"seal_passphrase"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		AccountName: migrate.DefaultAccountName,
	}
}

// ConfigPath returns the configuration file path inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, DefaultFileName)
}

func newViper() *viper.Viper {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyLogPretty, def.LogPretty)
	v.SetDefault(keyAccountName, def.AccountName)
	v.SetDefault(keyStorePath, def.StorePath)
	v.SetDefault(keySealSeed, def.SealSeed)
	v.SetDefault(keySealPassphrase, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// configType picks the viper codec for path. Files without an extension
// are read as YAML.
func configType(path string) string {
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "yaml"
}

// LoadConfig reads settings from path. An empty path loads defaults and
// environment overrides only. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return Config{}, errors.Wrapf(ErrConfigNotFound, "%s", path)
			}
			return Config{}, errors.Wrap(err, "config: stat")
		}
		v.SetConfigFile(path)
		v.SetConfigType(configType(path))
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(ErrInvalidConfig, "%s: %v", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "unmarshal: %v", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories as needed.
// The format follows the file extension.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "config: create directory")
	}

	v := viper.New()
	v.SetConfigType(configType(path))
	v.Set(keyLogLevel, cfg.LogLevel)
	v.Set(keyLogPretty, cfg.LogPretty)
	v.Set(keyAccountName, cfg.AccountName)
	v.Set(keyStorePath, cfg.StorePath)
	v.Set(keySealSeed, cfg.SealSeed)

	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "config: write %s", path)
	}
	return nil
}

// OpenStore opens the bbolt store at StorePath.
func (c *Config) OpenStore() (store.Store, error) {
	if c.StorePath == "" {
		return nil, ErrStorePathRequired
	}
	return store.OpenBoltStore(c.StorePath)
}

// PutOptions returns the store write options. The seed is sealed only
// when SealSeed is set.
func (c *Config) PutOptions() store.PutOptions {
	if !c.SealSeed {
		return store.PutOptions{}
	}
	return store.PutOptions{Passphrase: c.SealPassphrase}
}

// Logger builds the logger described by c.
func (c *Config) Logger() zerolog.Logger {
	return logging.New(c.LogLevel, c.LogPretty)
}

// MigratorOptions maps c onto migrator options.
func (c *Config) MigratorOptions() []migrate.Option {
	return []migrate.Option{
		migrate.WithLogger(c.Logger()),
		migrate.WithAccountName(c.AccountName),
	}
}
