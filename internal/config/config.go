// Package config provides Viper-based configuration with environment
// variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"ledgerdesk/arap/internal/logging"
)

var envOnce sync.Once

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Dir string `mapstructure:"dir" yaml:"dir"`
	} `mapstructure:"data" yaml:"data"`

	Import struct {
		// Aliases is an optional YAML file with extra accepted column
		// names per canonical field.
		Aliases string `mapstructure:"aliases" yaml:"aliases"`
	} `mapstructure:"import" yaml:"import"`
}

// LoadEnv loads a .env file from the working directory or project root,
// if one exists. Missing files are not an error.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// Load reads arap.yaml from the working directory or ~/.config/arap,
// applies ARAP_* environment overrides and fills in defaults. A missing
// config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("arap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "arap"))
	}

	v.SetEnvPrefix("ARAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("import.aliases", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigureLogging builds the application logger from the configuration.
func ConfigureLogging(cfg *Config) logging.Logger {
	return logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".arap")
}
