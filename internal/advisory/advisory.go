// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package advisory derives plain-text warnings and field guidance from an
// environment alone. It never looks at crop profiles. Every function returns
// its messages in a fixed check order and returns an empty, non-nil slice when
// nothing fires.
package advisory

import "github.com/pdiddy/crop-advisor/pkg/types"

// Thresholds for the environment-level risk checks.
const (
	droughtRainfall = 100.0
	highPestRisk    = 7.0
	moderatePest    = 4.0
	minSoilPH       = 5.5
	maxSoilPH       = 7.5

	heatTemperature = 35.0
	diseaseHumidity = 80.0
	dryMoisture     = 0.2
	lowMoisture     = 0.3
	midMoisture     = 0.6
)

// Messages emitted by the helpers in this package.
const (
	RiskDrought = "Drought risk detected: Rainfall is too low."
	RiskPest    = "High pest risk detected."
	RiskSoilPH  = "Soil pH is outside optimal range for most crops."

	PestImmediate = "Immediate pest control measures required"
	PestMonitor   = "Monitor pest situation closely"

	ClimateHeat    = "High temperature risk"
	ClimateDisease = "Disease risk due to high humidity"
	ClimateDrought = "Drought risk"
)

// AssessRisks checks rainfall, pest risk and soil pH, in that order.
func AssessRisks(env types.EnvironmentalData) []string {
	risks := []string{}
	if env.Rainfall < droughtRainfall {
		risks = append(risks, RiskDrought)
	}
	if env.PestRisk > highPestRisk {
		risks = append(risks, RiskPest)
	}
	if env.SoilPH < minSoilPH || env.SoilPH > maxSoilPH {
		risks = append(risks, RiskSoilPH)
	}
	return risks
}

// PestControl returns at most one message. The bands are disjoint:
// pest_risk > 7 calls for immediate action, 4 < pest_risk <= 7 for close
// monitoring, anything lower for nothing.
func PestControl(env types.EnvironmentalData) []string {
	switch {
	case env.PestRisk > highPestRisk:
		return []string{PestImmediate}
	case env.PestRisk > moderatePest:
		return []string{PestMonitor}
	default:
		return []string{}
	}
}

// ClimateRisks checks temperature, humidity and soil moisture, in that order.
func ClimateRisks(env types.EnvironmentalData) []string {
	risks := []string{}
	if env.Temperature > heatTemperature {
		risks = append(risks, ClimateHeat)
	}
	if env.Humidity > diseaseHumidity {
		risks = append(risks, ClimateDisease)
	}
	if env.SoilMoisture < dryMoisture {
		risks = append(risks, ClimateDrought)
	}
	return risks
}

// Irrigation levels.
const (
	LevelHigh     = "high"
	LevelModerate = "moderate"
	LevelLow      = "low"
)

// IrrigationPlan is a coarse watering schedule.
type IrrigationPlan struct {
	Frequency string `json:"frequency" yaml:"frequency"`
	Amount    string `json:"amount" yaml:"amount"`
}

// Irrigation picks a watering schedule from the fractional soil moisture.
func Irrigation(env types.EnvironmentalData) IrrigationPlan {
	switch {
	case env.SoilMoisture < lowMoisture:
		return IrrigationPlan{Frequency: LevelHigh, Amount: LevelModerate}
	case env.SoilMoisture < midMoisture:
		return IrrigationPlan{Frequency: LevelModerate, Amount: LevelModerate}
	default:
		return IrrigationPlan{Frequency: LevelLow, Amount: LevelLow}
	}
}
