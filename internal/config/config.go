// Package config reads runtime settings from the environment.
//
// A .env file in the working directory is loaded first when present;
// variables already set in the process environment win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDB           = "REGISTRAR_DB"
	EnvAddr         = "REGISTRAR_ADDR"
	EnvLogLevel     = "REGISTRAR_LOG_LEVEL"
	EnvGinMode      = "REGISTRAR_GIN_MODE"
	EnvDefaultLimit = "REGISTRAR_DEFAULT_LIMIT"
)

// Defaults.
const (
	DefaultDB           = "./University.db"
	DefaultAddr         = ":8000"
	DefaultGinMode      = "release"
	DefaultListLimit    = 100
	defaultLogLevelName = "info"
)

// Config holds runtime settings.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// Addr is the HTTP listen address.
	Addr string

	// LogLevel is the minimum slog level.
	LogLevel slog.Level

	// GinMode is passed to gin.SetMode.
	GinMode string

	// DefaultLimit caps list endpoints when no limit is given.
	DefaultLimit int64
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DBPath:       DefaultDB,
		Addr:         DefaultAddr,
		LogLevel:     slog.LevelInfo,
		GinMode:      DefaultGinMode,
		DefaultLimit: DefaultListLimit,
	}
}

// Load reads the optional .env file and then the environment.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function,
// falling back to Default for unset variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var problems []error

	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.DBPath = v
	}

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			problems = append(problems, err)
		} else {
			cfg.LogLevel = level
		}
	}

	if v, ok := lookup(EnvGinMode); ok && v != "" {
		switch v {
		case "release", "debug", "test":
			cfg.GinMode = v
		default:
			problems = append(problems, fmt.Errorf("%s: invalid gin mode %q", EnvGinMode, v))
		}
	}

	if v, ok := lookup(EnvDefaultLimit); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			problems = append(problems, fmt.Errorf("%s: must be a positive integer, got %q", EnvDefaultLimit, v))
		} else {
			cfg.DefaultLimit = n
		}
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ParseLogLevel accepts debug, info, warn or error, case-insensitively.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%s: invalid log level %q", EnvLogLevel, s)
	}
	return level, nil
}
