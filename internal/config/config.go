// Package config resolves taskcli settings from flags, environment,
// an optional config file and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pablasso/taskcli/internal/logging"
	"github.com/pablasso/taskcli/internal/store"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. TASKCLI_FILE.
	EnvPrefix = "TASKCLI"

	configName = ".taskcli"
	envFile    = ".env"

	KeyFile     = "file"
	KeyLogLevel = "log_level"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	File     string `mapstructure:"file" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration into v and returns the decoded result.
// Flags must already be bound to v. configFile, when set, must exist;
// otherwise .taskcli.{yaml,toml,json} is looked up in the working
// directory and then the home directory.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFile, store.DefaultFile)
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Source = v.ConfigFileUsed()

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
