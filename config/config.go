// Package config loads the settings of the keyset-browse command.
//
// Settings come from an optional YAML file and KEYSET_ environment variables,
// e.g. KEYSET_DATABASE_DSN overrides database.dsn.
package config

import (
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/spf13/viper"

	"github.com/nrfta/keyset-go"
)

const envPrefix = "KEYSET"

// Config represents the configuration implementation.
type Config struct {
	Database *Database
	Paging   *Paging
	Logger   *Logger
	Viper    *viper.Viper
}

// LoadConfig loads the configuration from configPath.
// An empty configPath looks for keyset.yaml in the working directory and
// $HOME/.keyset, and falls back to defaults and environment when none exists.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("keyset")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.keyset")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := &Config{
		Database: getDatabaseConfig(v),
		Paging:   getPagingConfig(v),
		Logger:   getLoggerConfig(v),
		Viper:    v,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail much later.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return errors.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}
	if c.Paging.DefaultSize <= 0 || c.Paging.MaxSize <= 0 {
		return errors.New("config: paging sizes must be positive")
	}
	if c.Paging.DefaultSize > c.Paging.MaxSize {
		return errors.Errorf("config: paging.default_size %d exceeds paging.max_size %d",
			c.Paging.DefaultSize, c.Paging.MaxSize)
	}
	return nil
}

// PageConfig converts the paging section into a keyset.PageConfig.
func (c *Config) PageConfig() *keyset.PageConfig {
	return keyset.NewPageConfig().
		WithDefaultSize(c.Paging.DefaultSize).
		WithMaxSize(c.Paging.MaxSize)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "file:fitness.db?_foreign_keys=on")
	v.SetDefault("paging.default_size", keyset.DefaultPageSize)
	v.SetDefault("paging.max_size", keyset.DefaultMaxPageSize)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
}
