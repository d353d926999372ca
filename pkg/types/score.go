// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Factor names one of the five compatibility factors.
type Factor string

const (
	FactorTemperature Factor = "temperature"
	FactorHumidity    Factor = "humidity"
	FactorWater       Factor = "water"
	FactorPH          Factor = "ph"
	FactorPest        Factor = "pest"
)

// Factors lists the compatibility factors in reporting order.
var Factors = []Factor{FactorTemperature, FactorHumidity, FactorWater, FactorPH, FactorPest}

// ScoreResult is the outcome of scoring one crop against one environment.
// Score is a weighted sum of unclamped sub-scores and may fall outside [0,1].
type ScoreResult struct {
	// Name is the crop name the score refers to.
	Name string `json:"name" yaml:"name"`

	// Score is the weighted compatibility score.
	Score float64 `json:"score" yaml:"score"`

	// Reasons maps each factor to a one-line explanation. It is nil unless
	// explanations were requested.
	Reasons map[Factor]string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}
