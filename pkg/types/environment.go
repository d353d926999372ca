// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared value types of the crop advisor: the
// environment measured at a field, the crop profiles of a catalog, the score
// produced for each (environment, crop) pair, configuration, and the errors
// raised where raw records become typed values.
package types

// EnvironmentalData holds one set of field measurements. It is a plain value:
// no identity, equality by value, and it lives for a single scoring request.
type EnvironmentalData struct {
	// Temperature is the air temperature in °C.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Humidity is the relative humidity in percent.
	Humidity float64 `json:"humidity" yaml:"humidity"`

	// Rainfall is the water available to the crop in mm.
	Rainfall float64 `json:"rainfall" yaml:"rainfall"`

	// SoilPH is the soil acidity on the 0-14 scale.
	SoilPH float64 `json:"soil_ph" yaml:"soil_ph"`

	// SoilMoisture is the volumetric soil moisture as a fraction in [0,1].
	SoilMoisture float64 `json:"soil_moisture" yaml:"soil_moisture"`

	// PestRisk is the observed pest pressure on the 0-10 scale.
	PestRisk float64 `json:"pest_risk" yaml:"pest_risk"`
}

const (
	// PestRiskMax is the top of the canonical pest risk scale.
	PestRiskMax = 10.0

	// SoilMoistureMax is the top of the fractional soil moisture scale.
	SoilMoistureMax = 1.0
)
