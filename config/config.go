// SPDX-License-Identifier: MIT

// Package config loads waypath settings.
//
// Priority: environment > YAML file > defaults. Command-line flags are
// applied on top by the CLI.
//
// Example file:
//
//	data:
//	  edges: data/edges.txt
//	  coordinates: data/coordinates.csv
//	search:
//	  strategy: astar
//	  max_depth: 0        # 0 = number of nodes
//	  reopen_closed: false
//	  trace_expansions: false
//	server:
//	  addr: ":8080"
//	  read_timeout: 5s
//	  write_timeout: 10s
//	  shutdown_grace: 5s
//	log:
//	  level: info
//	  format: text
//	trace:
//	  exporter: none      # none | stdout
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/A-Alhammadi/Intro-to-AI/logging"
	"github.com/A-Alhammadi/Intro-to-AI/route"
	"github.com/A-Alhammadi/Intro-to-AI/telemetry"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete waypath configuration.
type Config struct {
	Data   DataConfig   `json:"data" yaml:"data"`
	Search SearchConfig `json:"search" yaml:"search"`
	Server ServerConfig `json:"server" yaml:"server"`
	Log    LogConfig    `json:"log" yaml:"log"`
	Trace  TraceConfig  `json:"trace" yaml:"trace"`
}

// DataConfig locates the input files.
type DataConfig struct {
	Edges       string `json:"edges" yaml:"edges"`
	Coordinates string `json:"coordinates" yaml:"coordinates"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	Strategy        string `json:"strategy" yaml:"strategy"`
	MaxDepth        int    `json:"max_depth" yaml:"max_depth"`
	ReopenClosed    bool   `json:"reopen_closed" yaml:"reopen_closed"`
	TraceExpansions bool   `json:"trace_expansions" yaml:"trace_expansions"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr          string        `json:"addr" yaml:"addr"`
	ReadTimeout   time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout  time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ShutdownGrace time.Duration `json:"shutdown_grace" yaml:"shutdown_grace"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// TraceConfig selects the span exporter.
type TraceConfig struct {
	Exporter string `json:"exporter" yaml:"exporter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: DataConfig{
			Edges:       "edges.txt",
			Coordinates: "coordinates.csv",
		},
		Search: SearchConfig{
			Strategy: route.AStar.String(),
		},
		Server: ServerConfig{
			Addr:          ":8080",
			ReadTimeout:   5 * time.Second,
			WriteTimeout:  10 * time.Second,
			ShutdownGrace: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		Trace: TraceConfig{
			Exporter: telemetry.ExporterNone,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with WAYPATH_* environment variables, and validates
// the result. Unknown keys in the file are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// decode strictly unmarshals YAML over cfg. An empty document keeps cfg.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overrides cfg from the environment.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"WAYPATH_EDGES":       &cfg.Data.Edges,
		"WAYPATH_COORDINATES": &cfg.Data.Coordinates,
		"WAYPATH_STRATEGY":    &cfg.Search.Strategy,
		"WAYPATH_ADDR":        &cfg.Server.Addr,
		"WAYPATH_LOG_LEVEL":   &cfg.Log.Level,
		"WAYPATH_LOG_FORMAT":  &cfg.Log.Format,
		"WAYPATH_TRACE":       &cfg.Trace.Exporter,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	if v, ok := lookup("WAYPATH_MAX_DEPTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: WAYPATH_MAX_DEPTH=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.Search.MaxDepth = n
	}

	return nil
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	if _, err := route.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: search.strategy: %v", ErrInvalidConfig, err)
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: search.max_depth must be >= 0, got %d", ErrInvalidConfig, c.Search.MaxDepth)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":   c.Server.ReadTimeout,
		"server.write_timeout":  c.Server.WriteTimeout,
		"server.shutdown_grace": c.Server.ShutdownGrace,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %s", ErrInvalidConfig, name, d)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if !telemetry.ValidExporter(c.Trace.Exporter) {
		return fmt.Errorf("%w: trace.exporter %q", ErrInvalidConfig, c.Trace.Exporter)
	}

	return nil
}

// Strategy returns the parsed default strategy. Validate guarantees it parses.
func (c Config) Strategy() route.Strategy {
	s, err := route.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return route.AStar
	}

	return s
}
