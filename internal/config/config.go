// Package config resolves studyhub settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/studyhub/internal/session"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvCatalog  = "STUDYHUB_CATALOG"
	EnvLog      = "STUDYHUB_LOG"
	EnvTimer    = "STUDYHUB_TIMER"
	EnvBandHigh = "STUDYHUB_BAND_HIGH"
	EnvBandMid  = "STUDYHUB_BAND_MID"
)

// DefaultEnvFile is loaded when no --env-file is given. It may be absent.
const DefaultEnvFile = ".env"

// Config holds all studyhub configuration.
type Config struct {
	// CatalogPath is a catalog JSON file. Empty means the built-in catalog.
	CatalogPath string

	// LogPath is the slog output file. Empty discards logs.
	LogPath string

	// TimerEnabled turns on the mock test countdown. Default: true.
	TimerEnabled bool

	// Bands maps score percentages to result bands. Default: 70/50.
	Bands session.Bands
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TimerEnabled: true,
		Bands:        session.DefaultBands(),
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed values are reported, not ignored.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv(EnvCatalog); p != "" {
		cfg.CatalogPath = p
	}
	if p := os.Getenv(EnvLog); p != "" {
		cfg.LogPath = p
	}

	if v := os.Getenv(EnvTimer); v != "" {
		on, err := parseSwitch(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTimer, err)
		}
		cfg.TimerEnabled = on
	}

	if v := os.Getenv(EnvBandHigh); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvBandHigh, err)
		}
		cfg.Bands.High = n
	}
	if v := os.Getenv(EnvBandMid); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvBandMid, err)
		}
		cfg.Bands.Mid = n
	}

	return cfg, nil
}

// Validate checks the band thresholds.
func (c Config) Validate() error {
	if err := c.Bands.Validate(); err != nil {
		return fmt.Errorf("%s/%s: %w", EnvBandHigh, EnvBandMid, err)
	}
	return nil
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is only an error when required is true.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

// Load reads the env file, then the environment, and validates the result.
func Load(envFile string) (Config, error) {
	if err := LoadEnvFile(envFile, envFile != ""); err != nil {
		return Config{}, err
	}
	cfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseSwitch(v string) (bool, error) {
	t := strings.ToLower(strings.TrimSpace(v))
	switch t {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(t)
	if err != nil {
		return false, fmt.Errorf("want on or off, got %q", v)
	}
	return b, nil
}
