// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crop-advisor/pkg/types"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)

	var total float64
	for _, f := range types.Factors {
		total += w.Of(f)
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

func TestDefaultWeightsValues(t *testing.T) {
	assert.Equal(t, types.WeightsConfig{
		Temperature: 0.25, Humidity: 0.20, Water: 0.20, PH: 0.20, Pest: 0.15,
	}, DefaultWeights().Config())
}

func TestNewWeightsRoundTripsDefaults(t *testing.T) {
	w, err := NewWeights(DefaultWeights().Config())
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights(), w)
}

func TestNewWeightsAcceptsCustomWeights(t *testing.T) {
	w, err := NewWeights(types.WeightsConfig{Temperature: 0.2, Humidity: 0.2, Water: 0.2, PH: 0.2, Pest: 0.2})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, w.Of(types.FactorPest), 1e-12)
	assert.Zero(t, w.Of(types.Factor("light")))
}

func TestNewWeightsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.WeightsConfig
		wantField string
	}{
		{
			name:      "sum below one",
			cfg:       types.WeightsConfig{Temperature: 0.25, Humidity: 0.2, Water: 0.2, PH: 0.2, Pest: 0.1},
			wantField: "scoring.weights",
		},
		{
			name:      "sum above one",
			cfg:       types.WeightsConfig{Temperature: 0.5, Humidity: 0.2, Water: 0.2, PH: 0.2, Pest: 0.15},
			wantField: "scoring.weights",
		},
		{
			name:      "all zero",
			cfg:       types.WeightsConfig{},
			wantField: "scoring.weights",
		},
		{
			name:      "negative weight",
			cfg:       types.WeightsConfig{Temperature: 1.2, Humidity: -0.2, Water: 0, PH: 0, Pest: 0},
			wantField: "scoring.weights.humidity",
		},
		{
			name:      "NaN weight",
			cfg:       types.WeightsConfig{Temperature: math.NaN(), Humidity: 0.2, Water: 0.2, PH: 0.2, Pest: 0.15},
			wantField: "scoring.weights.temperature",
		},
		{
			name:      "infinite weight",
			cfg:       types.WeightsConfig{Temperature: 0.25, Humidity: 0.2, Water: 0.2, PH: 0.2, Pest: math.Inf(1)},
			wantField: "scoring.weights.pest",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWeights(tt.cfg)
			require.Error(t, err)

			var cfgErr *types.ConfigError
			require.True(t, errors.As(err, &cfgErr), "want *types.ConfigError, got %T", err)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestApply(t *testing.T) {
	w := DefaultWeights()
	ones := Breakdown{Temperature: 1, Humidity: 1, Water: 1, PH: 1, Pest: 1}
	assert.InDelta(t, 1.0, w.Apply(ones), 1e-12)

	onlyTemp := Breakdown{Temperature: 1}
	assert.InDelta(t, 0.25, w.Apply(onlyTemp), 1e-12)
}
