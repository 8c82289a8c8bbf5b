// Package config defines the MechParse application configuration and its
// loading from files and environment variables via viper.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
)

// Config is the root configuration for both the CLI and the API server.
type Config struct {
	Server  ServerConfig      `mapstructure:"server" json:"server"`
	Log     logging.LogConfig `mapstructure:"log" json:"log"`
	Parser  ParserConfig      `mapstructure:"parser" json:"parser"`
	Metrics MetricsConfig     `mapstructure:"metrics" json:"metrics"`
}

// ServerConfig holds the HTTP listener settings for the API server.
type ServerConfig struct {
	Host string `mapstructure:"host" json:"host"`
	Port int    `mapstructure:"port" json:"port"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" json:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`

	// MaxBodyBytes caps the accepted request body size. Mechanism files are
	// text; tens of megabytes covers the largest published mechanisms.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" json:"max_body_bytes"`
}

// ParserConfig holds tunables for the kinetics parsing service.
type ParserConfig struct {
	// Workers bounds the number of reaction entries parsed concurrently
	// within one block. Zero or negative selects the default.
	Workers int `mapstructure:"workers" json:"workers"`

	// FailFast stops a block parse at the first malformed entry instead of
	// collecting all entry failures.
	FailFast bool `mapstructure:"fail_fast" json:"fail_fast"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" json:"path"`
}

// Default values applied by ApplyDefaults.
const (
	DefaultServerHost      = "0.0.0.0"
	DefaultServerPort      = 8080
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 64 << 20

	DefaultParserWorkers = 4

	DefaultMetricsPath = "/metrics"
)

// ApplyDefaults fills zero-valued fields with their defaults. Called by the
// loader after unmarshalling; exported so hand-built configs in tests can be
// completed the same way.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultServerHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Parser.Workers <= 0 {
		c.Parser.Workers = DefaultParserWorkers
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Log.Level == "" {
		c.Log.Level = logging.LevelInfo
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// Validate reports the first configuration error found, or nil.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("config: server.max_body_bytes must be non-negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q not supported", c.Log.Format)
	}
	return nil
}

// Addr returns the host:port the API server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
