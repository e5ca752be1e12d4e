// Package config loads runtime settings from the environment and an
// optional config file. Environment variables win over the file.
//
// Environment variables:
//
//	PORT            listen port (default: 8080)
//	DB_PATH         SQLite database file (default: ./data/peticao.db)
//	LOG_LEVEL       debug, info, warn (or warning), error (default: info)
//	COURT           court used for jurisprudence lookups (default: TRT-2)
//	PETICAO_CONFIG  path to a YAML, JSON or TOML config file
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmynk/peticao/pkg/logging"
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	Port     int    `mapstructure:"port"`
	DBPath   string `mapstructure:"db_path"`
	LogLevel string `mapstructure:"log_level"`
	Court    string `mapstructure:"court"`
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("db_path", "./data/peticao.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("court", "TRT-2")
	v.AutomaticEnv()
	_ = v.BindEnv("config", "PETICAO_CONFIG")
	return v
}

// Load reads the configuration. configFile overrides PETICAO_CONFIG; when
// both are empty only defaults and environment are used.
func Load(configFile string) (Config, error) {
	v := newViper()

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("database path is empty")
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
