// internal/config/config.go

// Package config loads promstats settings from flags, environment and an
// optional config file through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PROMSTATS_PRECISION.
const EnvPrefix = "PROMSTATS"

// Server holds the HTTP API settings.
type Server struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`
	// ReadTimeout bounds reading a request, including the body.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Config contains application settings shared by the CLI, explorer and server.
type Config struct {
	// Quantiles are reported by summaries when the caller does not pick any.
	Quantiles []float64 `mapstructure:"quantiles"`
	// Precision is the number of decimals printed; -1 selects the shortest exact form.
	Precision int `mapstructure:"precision"`
	// Debug enables pp dumps and the explorer's debug.log.
	Debug bool `mapstructure:"debug"`
	// Input is the default series file.
	Input string `mapstructure:"input"`
	// Server configures `promstats serve`.
	Server Server `mapstructure:"server"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("quantiles", []float64{0.5, 0.9, 0.99})
	v.SetDefault("precision", -1)
	v.SetDefault("debug", false)
	v.SetDefault("input", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 60*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
}

// Load resolves the configuration held by v. When path is empty a
// promstats.{yaml,json,toml} in the working directory is used if present;
// an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("promstats")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with no file, env or flags applied.
// It panics if the registered defaults do not decode into Config.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// Validate checks ranges that would otherwise surface as confusing output.
func (c Config) Validate() error {
	if c.Precision < -1 {
		return fmt.Errorf("precision must be -1 or greater, got %d", c.Precision)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr must not be empty")
	}
	return nil
}
