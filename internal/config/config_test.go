// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crop-advisor/internal/scoring"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, scoring.DefaultWeights().Config(), cfg.Scoring.Weights)
	assert.Equal(t, 5, cfg.Scoring.TopN)
	assert.True(t, cfg.Scoring.Explain)
	assert.Equal(t, "crops.yaml", cfg.Catalog.Path)
	assert.Empty(t, cfg.Catalog.Database)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crop-advisor.yaml")
	content := `scoring:
  weights:
    temperature: 0.2
    humidity: 0.2
    water: 0.2
    ph: 0.2
    pest: 0.2
  top_n: 3
  explain: false
catalog:
  database: crops.db
log:
  level: DEBUG
  format: json
metrics:
  textfile: run.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, types.WeightsConfig{Temperature: 0.2, Humidity: 0.2, Water: 0.2, PH: 0.2, Pest: 0.2}, cfg.Scoring.Weights)
	assert.Equal(t, 3, cfg.Scoring.TopN)
	assert.False(t, cfg.Scoring.Explain)
	assert.Equal(t, "crops.db", cfg.Catalog.Database)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "run.prom", cfg.Metrics.Textfile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CROP_ADVISOR_SCORING_TOP_N", "8")
	t.Setenv("CROP_ADVISOR_LOG_FORMAT", "json")

	v := viper.New()
	Configure(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Scoring.TopN)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     any
		wantField string
	}{
		{"weights off", KeyWeightPest, 0.3, "scoring.weights"},
		{"negative weight", KeyWeightWater, -0.2, "scoring.weights.water"},
		{"negative top n", KeyTopN, -1, KeyTopN},
		{"bad level", KeyLogLevel, "verbose", KeyLogLevel},
		{"bad format", KeyLogFormat, "xml", KeyLogFormat},
		{"no catalog", KeyCatalogPath, "", KeyCatalogPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.Error(t, err)

			var cfgErr *types.ConfigError
			require.True(t, errors.As(err, &cfgErr), "want *types.ConfigError, got %T", err)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestLoadAllowsZeroTopN(t *testing.T) {
	v := viper.New()
	v.Set(KeyTopN, 0)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Zero(t, cfg.Scoring.TopN)
}
