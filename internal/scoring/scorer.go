// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring computes how well a crop suits an environment and ranks a
// catalog of crops by that score.
//
// Each factor contributes a sub-score of the form 1 - |measured - optimal| / range,
// except pest, which is (resistance/10)·(1 - risk/10). Sub-scores are not
// clamped: a large mismatch drives a sub-score, and possibly the weighted
// total, below zero. Callers must not assume the total lies in [0,1].
//
// Everything in this package is a pure function of its arguments and safe for
// concurrent use.
package scoring

import (
	"fmt"
	"math"

	"github.com/pdiddy/crop-advisor/pkg/types"
)

// Normalization ranges for the difference-based factors.
const (
	temperatureRange = 50.0
	humidityRange    = 100.0
	waterRange       = 1000.0
	phRange          = 14.0
	pestScale        = 10.0
)

// Sub-score thresholds above which a factor is reported as favorable.
const (
	favorableThreshold     = 0.7
	pestFavorableThreshold = 0.5
)

// Breakdown holds the raw differences and per-factor sub-scores for one
// (environment, crop) pair.
type Breakdown struct {
	TemperatureDiff float64
	HumidityDiff    float64
	WaterDiff       float64
	PHDiff          float64

	Temperature float64
	Humidity    float64
	Water       float64
	PH          float64
	Pest        float64
}

// Evaluate computes the sub-scores of crop under env. No range validation is
// performed; out-of-range inputs propagate arithmetically.
func Evaluate(env types.EnvironmentalData, crop types.CropData) Breakdown {
	b := Breakdown{
		TemperatureDiff: math.Abs(env.Temperature - crop.OptimalTemp),
		HumidityDiff:    math.Abs(env.Humidity - crop.OptimalHumidity),
		WaterDiff:       math.Abs(env.Rainfall - crop.WaterNeeds),
		PHDiff:          math.Abs(env.SoilPH - crop.OptimalPH),
	}
	b.Temperature = 1 - b.TemperatureDiff/temperatureRange
	b.Humidity = 1 - b.HumidityDiff/humidityRange
	b.Water = 1 - b.WaterDiff/waterRange
	b.PH = 1 - b.PHDiff/phRange
	b.Pest = (crop.PestResistance / pestScale) * (1 - env.PestRisk/pestScale)
	return b
}

// SubScore returns the sub-score of factor f, or 0 for an unknown factor.
func (b Breakdown) SubScore(f types.Factor) float64 {
	switch f {
	case types.FactorTemperature:
		return b.Temperature
	case types.FactorHumidity:
		return b.Humidity
	case types.FactorWater:
		return b.Water
	case types.FactorPH:
		return b.PH
	case types.FactorPest:
		return b.Pest
	default:
		return 0
	}
}

// Favorable reports whether factor f clears its reporting threshold.
func (b Breakdown) Favorable(f types.Factor) bool {
	if f == types.FactorPest {
		return b.Pest > pestFavorableThreshold
	}
	return b.SubScore(f) > favorableThreshold
}

// Scorer scores crops against environments with a fixed set of weights.
type Scorer struct {
	weights Weights
}

// NewScorer returns a Scorer using w.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Weights returns the weights the scorer was built with.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score returns the weighted compatibility score of crop under env without
// explanations.
func (s *Scorer) Score(env types.EnvironmentalData, crop types.CropData) types.ScoreResult {
	return s.score(env, crop, false)
}

// Explain returns the score of crop under env together with one explanation
// per factor, derived from the same sub-scores used for the total.
func (s *Scorer) Explain(env types.EnvironmentalData, crop types.CropData) types.ScoreResult {
	return s.score(env, crop, true)
}

func (s *Scorer) score(env types.EnvironmentalData, crop types.CropData, explain bool) types.ScoreResult {
	b := Evaluate(env, crop)
	result := types.ScoreResult{
		Name:  crop.Name,
		Score: s.weights.Apply(b),
	}
	if explain {
		result.Reasons = reasons(b)
	}
	return result
}

func reasons(b Breakdown) map[types.Factor]string {
	return map[types.Factor]string{
		types.FactorTemperature: fmt.Sprintf("Temperature differs by %.1f°C: %s.",
			b.TemperatureDiff, verdict(b.Favorable(types.FactorTemperature), "suitable", "not suitable")),
		types.FactorHumidity: fmt.Sprintf("Humidity differs by %.1f%%: %s.",
			b.HumidityDiff, verdict(b.Favorable(types.FactorHumidity), "suitable", "not suitable")),
		types.FactorWater: fmt.Sprintf("Water need differs by %.1f mm: %s.",
			b.WaterDiff, verdict(b.Favorable(types.FactorWater), "sufficient", "insufficient")),
		types.FactorPH: fmt.Sprintf("Soil pH differs by %.2f: %s.",
			b.PHDiff, verdict(b.Favorable(types.FactorPH), "optimal", "needs correction")),
		types.FactorPest: fmt.Sprintf("Pest resistance under the current risk is %s.",
			verdict(b.Favorable(types.FactorPest), "high", "low")),
	}
}

func verdict(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
