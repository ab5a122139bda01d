package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Wordlist WordlistConfig `mapstructure:"wordlist"`
	Log      LogConfig      `mapstructure:"log"`
	Shell    ShellConfig    `mapstructure:"shell"`
}

type WordlistConfig struct {
	Path string `mapstructure:"path" envconfig:"WORDLIST" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

type ShellConfig struct {
	Prompt   string        `mapstructure:"prompt" envconfig:"PROMPT" validate:"required"`
	CacheTTL time.Duration `mapstructure:"cache_ttl" envconfig:"CACHE_TTL" validate:"min=0"`
}

const envPrefix = "passcheck"

// Load reads the optional YAML config file, applies PASSCHECK_* environment
// overrides on top, and validates the result. An absent config file is not
// an error: defaults plus environment are enough to run.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("wordlist.path", "common.txt")
	v.SetDefault("log.level", "info")
	v.SetDefault("shell.prompt", "Enter password (or type 'exit' to quit): ")
	v.SetDefault("shell.cache_ttl", 5*time.Minute)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for _, section := range []interface{}{&cfg.Wordlist, &cfg.Log, &cfg.Shell} {
		if err := envconfig.Process(envPrefix, section); err != nil {
			return nil, fmt.Errorf("failed to apply env overrides: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
