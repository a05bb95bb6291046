package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/peekknuf/modelfit/internal/heuristics"
)

// Config holds the server-mode settings. The quality policy itself
// lives in heuristics.Policy and is loaded separately so the engine
// stays independent of transport concerns.
type Config struct {
	Host           string
	Port           int
	LogLevel       string
	APIPrefix      string
	MaxUploadBytes int64
	PolicyPath     string
}

// Load builds the config from defaults plus MODELFIT_* environment
// overrides.
func Load() *Config {
	cfg := &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		LogLevel:       DefaultLogLevel,
		APIPrefix:      DefaultAPIPrefix,
		MaxUploadBytes: DefaultMaxUploadBytes,
	}

	if v := os.Getenv("MODELFIT_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("MODELFIT_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("MODELFIT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MODELFIT_MAX_UPLOAD_BYTES"); v != "" {
		if b, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = b
		}
	}
	if v := os.Getenv("MODELFIT_POLICY"); v != "" {
		cfg.PolicyPath = v
	}

	return cfg
}

// LoadPolicy overlays a TOML policy file on the built-in defaults.
// An empty path returns the defaults unchanged. Penalty entries in the
// file replace the whole default penalty table only for the flags they
// name.
func LoadPolicy(path string) (heuristics.Policy, error) {
	policy := heuristics.DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	var overlay struct {
		MinRows              *int               `toml:"min_rows"`
		MaxCols              *int               `toml:"max_cols"`
		MaxMissingShare      *float64           `toml:"max_missing_share"`
		MaxCategoricalUnique *int               `toml:"max_categorical_unique"`
		MaxZeroShare         *float64           `toml:"max_zero_share"`
		PassScore            *float64           `toml:"pass_score"`
		Penalties            map[string]float64 `toml:"penalties"`
	}

	if _, err := toml.DecodeFile(path, &overlay); err != nil {
		return policy, fmt.Errorf("failed to load policy file %s: %w", path, err)
	}

	if overlay.MinRows != nil {
		policy.MinRows = *overlay.MinRows
	}
	if overlay.MaxCols != nil {
		policy.MaxCols = *overlay.MaxCols
	}
	if overlay.MaxMissingShare != nil {
		policy.MaxMissingShare = *overlay.MaxMissingShare
	}
	if overlay.MaxCategoricalUnique != nil {
		policy.MaxCategoricalUnique = *overlay.MaxCategoricalUnique
	}
	if overlay.MaxZeroShare != nil {
		policy.MaxZeroShare = *overlay.MaxZeroShare
	}
	if overlay.PassScore != nil {
		policy.PassScore = *overlay.PassScore
	}
	for name, penalty := range overlay.Penalties {
		policy.Penalties[name] = penalty
	}

	return policy, nil
}
