// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"fmt"
	"math"

	"github.com/pdiddy/crop-advisor/pkg/types"
)

// weightTolerance bounds the floating-point slack allowed when checking that
// the weights sum to one.
const weightTolerance = 1e-9

// Weights is the validated, immutable set of factor weights. Construct it with
// DefaultWeights or NewWeights; the zero value is not usable.
type Weights struct {
	temperature float64
	humidity    float64
	water       float64
	ph          float64
	pest        float64
}

// DefaultWeights returns the standard weighting:
//
//	0.25·temperature + 0.20·humidity + 0.20·water + 0.20·ph + 0.15·pest
func DefaultWeights() Weights {
	return Weights{
		temperature: 0.25,
		humidity:    0.20,
		water:       0.20,
		ph:          0.20,
		pest:        0.15,
	}
}

// NewWeights validates cfg and returns the corresponding Weights. Every weight
// must be a finite non-negative number and together they must sum to 1.0;
// otherwise a *types.ConfigError is returned.
func NewWeights(cfg types.WeightsConfig) (Weights, error) {
	named := []struct {
		name  string
		value float64
	}{
		{"temperature", cfg.Temperature},
		{"humidity", cfg.Humidity},
		{"water", cfg.Water},
		{"ph", cfg.PH},
		{"pest", cfg.Pest},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return Weights{}, &types.ConfigError{Field: "scoring.weights." + n.name, Reason: "weight must be finite"}
		}
		if n.value < 0 {
			return Weights{}, &types.ConfigError{
				Field:  "scoring.weights." + n.name,
				Reason: fmt.Sprintf("negative weight %g", n.value),
			}
		}
	}

	w := Weights{
		temperature: cfg.Temperature,
		humidity:    cfg.Humidity,
		water:       cfg.Water,
		ph:          cfg.PH,
		pest:        cfg.Pest,
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return Weights{}, &types.ConfigError{
			Field:  "scoring.weights",
			Reason: fmt.Sprintf("weights sum to %.6f, must sum to 1.0", sum),
		}
	}
	return w, nil
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.temperature + w.humidity + w.water + w.ph + w.pest
}

// Of returns the weight of a single factor, or 0 for an unknown factor.
func (w Weights) Of(f types.Factor) float64 {
	switch f {
	case types.FactorTemperature:
		return w.temperature
	case types.FactorHumidity:
		return w.humidity
	case types.FactorWater:
		return w.water
	case types.FactorPH:
		return w.ph
	case types.FactorPest:
		return w.pest
	default:
		return 0
	}
}

// Config returns the weights in their configuration form.
func (w Weights) Config() types.WeightsConfig {
	return types.WeightsConfig{
		Temperature: w.temperature,
		Humidity:    w.humidity,
		Water:       w.water,
		PH:          w.ph,
		Pest:        w.pest,
	}
}

// Apply combines the sub-scores of b into the weighted total.
func (w Weights) Apply(b Breakdown) float64 {
	return w.temperature*b.Temperature +
		w.humidity*b.Humidity +
		w.water*b.Water +
		w.ph*b.PH +
		w.pest*b.Pest
}
