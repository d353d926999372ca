// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads AdvisorConfig from viper: config file, CROP_ADVISOR_*
// environment variables and bound command-line flags, in viper's usual
// precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/crop-advisor/internal/scoring"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

// EnvPrefix is the prefix of environment variables read by Configure.
const EnvPrefix = "CROP_ADVISOR"

// Configuration keys.
const (
	KeyWeightTemperature = "scoring.weights.temperature"
	KeyWeightHumidity    = "scoring.weights.humidity"
	KeyWeightWater       = "scoring.weights.water"
	KeyWeightPH          = "scoring.weights.ph"
	KeyWeightPest        = "scoring.weights.pest"
	KeyTopN              = "scoring.top_n"
	KeyExplain           = "scoring.explain"
	KeyCatalogPath       = "catalog.path"
	KeyCatalogDatabase   = "catalog.database"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyMetricsTextfile   = "metrics.textfile"
)

// Defaults.
const (
	DefaultTopN        = 5
	DefaultCatalogPath = "crops.yaml"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Configure sets defaults on v and makes it read CROP_ADVISOR_* variables,
// with dots in keys mapped to underscores (CROP_ADVISOR_SCORING_TOP_N).
func Configure(v *viper.Viper) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	w := scoring.DefaultWeights().Config()
	v.SetDefault(KeyWeightTemperature, w.Temperature)
	v.SetDefault(KeyWeightHumidity, w.Humidity)
	v.SetDefault(KeyWeightWater, w.Water)
	v.SetDefault(KeyWeightPH, w.PH)
	v.SetDefault(KeyWeightPest, w.Pest)
	v.SetDefault(KeyTopN, DefaultTopN)
	v.SetDefault(KeyExplain, true)
	v.SetDefault(KeyCatalogPath, DefaultCatalogPath)
	v.SetDefault(KeyCatalogDatabase, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyMetricsTextfile, "")
}

// Load reads and validates the configuration held by v. Invalid values fail
// with *types.ConfigError.
func Load(v *viper.Viper) (types.AdvisorConfig, error) {
	SetDefaults(v)

	cfg := types.AdvisorConfig{
		Scoring: types.ScoringConfig{
			Weights: types.WeightsConfig{
				Temperature: v.GetFloat64(KeyWeightTemperature),
				Humidity:    v.GetFloat64(KeyWeightHumidity),
				Water:       v.GetFloat64(KeyWeightWater),
				PH:          v.GetFloat64(KeyWeightPH),
				Pest:        v.GetFloat64(KeyWeightPest),
			},
			TopN:    v.GetInt(KeyTopN),
			Explain: v.GetBool(KeyExplain),
		},
		Catalog: types.CatalogConfig{
			Path:     v.GetString(KeyCatalogPath),
			Database: v.GetString(KeyCatalogDatabase),
		},
		Log: types.LogConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
		Metrics: types.MetricsConfig{
			Textfile: v.GetString(KeyMetricsTextfile),
		},
	}

	if err := Validate(cfg); err != nil {
		return types.AdvisorConfig{}, err
	}
	return cfg, nil
}

// Validate checks cfg. Weight validation is delegated to scoring.NewWeights.
func Validate(cfg types.AdvisorConfig) error {
	if _, err := scoring.NewWeights(cfg.Scoring.Weights); err != nil {
		return err
	}
	if cfg.Scoring.TopN < 0 {
		return &types.ConfigError{Field: KeyTopN, Reason: fmt.Sprintf("must not be negative, got %d", cfg.Scoring.TopN)}
	}
	if cfg.Catalog.Path == "" && cfg.Catalog.Database == "" {
		return &types.ConfigError{Field: KeyCatalogPath, Reason: "a catalog file or database is required"}
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &types.ConfigError{Field: KeyLogLevel, Reason: fmt.Sprintf("unknown level %q", cfg.Log.Level)}
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return &types.ConfigError{Field: KeyLogFormat, Reason: fmt.Sprintf("unknown format %q", cfg.Log.Format)}
	}
	return nil
}
