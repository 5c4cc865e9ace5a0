// Package config holds the run configuration of rangefold, read from an
// optional TOML file and overridden by command line flags.
//
// Example file:
//
//	log_level = "debug"
//	log_format = "json"
//	domain_max = 4294967296
//	parallel = true
//	workers = 4
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"rangefold/internal/rangemap"
)

// Config is the run configuration.
type Config struct {
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `toml:"log_format"`
	// DomainMax is the exclusive upper bound of every stage map.
	DomainMax int64 `toml:"domain_max"`
	// Parallel pre-composes the stages concurrently.
	Parallel bool `toml:"parallel"`
	// Workers bounds the goroutines of a parallel run; 0 uses GOMAXPROCS.
	Workers int `toml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  "warning",
		LogFormat: "text",
		DomainMax: rangemap.MaxID,
	}
}

// LoadFile reads a TOML file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	c := Default()

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return nil, fmt.Errorf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return c, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q, expected text or json", c.LogFormat)
	}

	if err := c.Domain().Validate(); err != nil {
		return fmt.Errorf("invalid domain_max: %w", err)
	}

	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d, expected 0 or more", c.Workers)
	}

	return nil
}

// Domain returns the domain every stage map is built for.
func (c *Config) Domain() rangemap.Domain {
	return rangemap.Domain{Max: c.DomainMax}
}

// NewLogger creates a logger writing to out with the configured level and
// format.
func (c *Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)

	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return l, nil
}
