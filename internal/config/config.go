// Package config reads runtime settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/citygraph/graphio"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Run modes.
const (
	ModeShell = "shell"
	ModeServe = "serve"
)

// Storage backends.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Environment variable names.
const (
	EnvMode          = "CITYGRAPH_MODE"
	EnvAddr          = "CITYGRAPH_ADDR"
	EnvBackend       = "CITYGRAPH_BACKEND"
	EnvData          = "CITYGRAPH_DATA"
	EnvOutput        = "CITYGRAPH_OUTPUT"
	EnvDSN           = "CITYGRAPH_DSN"
	EnvLogLevel      = "CITYGRAPH_LOG_LEVEL"
	EnvLogDev        = "CITYGRAPH_LOG_DEV"
	EnvSessionTTL    = "CITYGRAPH_SESSION_TTL"
	EnvMergeParallel = "CITYGRAPH_MERGE_PARALLEL"
)

// Config is the full runtime configuration.
type Config struct {
	Mode          string
	Addr          string
	Backend       string
	DataPath      string // source loaded at startup (file backend)
	OutputPath    string // destination of Save (file backend)
	DSN           string // sqlite file or postgres URL
	LogLevel      string
	LogDev        bool
	SessionTTL    time.Duration // 0 keeps sessions until deleted
	MergeParallel bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Mode:       ModeShell,
		Addr:       ":8080",
		Backend:    BackendFile,
		DataPath:   "cities_distances.csv",
		OutputPath: graphio.DefaultOutput,
		LogLevel:   "info",
		SessionTTL: 30 * time.Minute,
	}
}

// Load reads .env files (a missing file is fine) and then the environment.
// Only malformed values are reported; call Validate once every override
// has been applied.
func Load(files ...string) (Config, error) {
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load(files...)

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default. It fails only
// on values that cannot be parsed.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvMode, &cfg.Mode)
	str(EnvAddr, &cfg.Addr)
	str(EnvBackend, &cfg.Backend)
	str(EnvData, &cfg.DataPath)
	str(EnvOutput, &cfg.OutputPath)
	str(EnvDSN, &cfg.DSN)
	str(EnvLogLevel, &cfg.LogLevel)

	var err error
	if cfg.LogDev, err = boolVar(lookup, EnvLogDev, cfg.LogDev); err != nil {
		return Config{}, err
	}
	if cfg.MergeParallel, err = boolVar(lookup, EnvMergeParallel, cfg.MergeParallel); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvSessionTTL); ok && v != "" {
		if cfg.SessionTTL, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSessionTTL, err)
		}
	}

	return cfg, nil
}

func boolVar(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}

	return b, nil
}

// Validate checks that the combination of settings is usable.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeShell, ModeServe:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	switch c.Backend {
	case BackendFile:
		if c.DataPath == "" || c.OutputPath == "" {
			return fmt.Errorf("%w: file backend needs data and output paths", ErrInvalidConfig)
		}
	case BackendSQLite, BackendPostgres:
		if c.DSN == "" {
			return fmt.Errorf("%w: %s backend needs %s", ErrInvalidConfig, c.Backend, EnvDSN)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("%w: session TTL must not be negative", ErrInvalidConfig)
	}

	return nil
}
