package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "MECHPARSE"

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registering defaults makes every key known to viper, which is what
	// lets AutomaticEnv overrides surface through Unmarshal.
	v.SetDefault("server.host", DefaultServerHost)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("parser.workers", DefaultParserWorkers)
	v.SetDefault("parser.fail_fast", false)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.path", DefaultMetricsPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mechparse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/mechparse")
	}
	return v
}

// Load reads configuration from the given file path, overlaid with
// MECHPARSE_* environment variables. An empty path searches the default
// locations; a missing file there is not an error, environment variables and
// defaults still apply.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read %q: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv builds a configuration from environment variables and defaults
// only, with no file involved.
func LoadFromEnv() (*Config, error) {
	v := newViper("")
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal environment: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on error. Intended for main functions where
// a bad configuration should abort startup.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Watch reloads the configuration whenever the file at path changes and
// invokes onChange with the fresh value. Reload failures are reported to
// onError and the previous configuration stays in effect. Watch does not
// block; it returns after installing the watcher.
func Watch(path string, onChange func(*Config), onError func(error)) error {
	if path == "" {
		return fmt.Errorf("config: watch requires an explicit file path")
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read %q: %w", path, err)
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			if onError != nil {
				onError(fmt.Errorf("config: reload unmarshal failed: %w", err))
			}
			return
		}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
	return nil
}
