// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog builds CropData and EnvironmentalData values from raw
// input. It is the only place that detects missing attributes: every field
// of a crop or environment record is required, and an absent one fails with
// *types.MissingFieldError. Numeric values are passed through unchecked,
// except soil moisture, which must be a fraction in [0,1].
package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/crop-advisor/pkg/types"
)

// RawCrop is a crop record as decoded from input. Nil fields were absent.
type RawCrop struct {
	Name            *string  `yaml:"name"`
	OptimalTemp     *float64 `yaml:"optimal_temp"`
	OptimalHumidity *float64 `yaml:"optimal_humidity"`
	WaterNeeds      *float64 `yaml:"water_needs"`
	OptimalPH       *float64 `yaml:"optimal_ph"`
	PestResistance  *float64 `yaml:"pest_resistance"`
}

// Crop validates presence of every field and returns the crop. index is the
// 1-based position used to name the record when it has no name.
func (r RawCrop) Crop(index int) (types.CropData, error) {
	record := fmt.Sprintf("crop #%d", index)
	if r.Name == nil || *r.Name == "" {
		return types.CropData{}, &types.MissingFieldError{Record: record, Field: "name"}
	}
	record = fmt.Sprintf("crop %q", *r.Name)

	fields := []struct {
		name string
		v    *float64
	}{
		{"optimal_temp", r.OptimalTemp},
		{"optimal_humidity", r.OptimalHumidity},
		{"water_needs", r.WaterNeeds},
		{"optimal_ph", r.OptimalPH},
		{"pest_resistance", r.PestResistance},
	}
	for _, f := range fields {
		if f.v == nil {
			return types.CropData{}, &types.MissingFieldError{Record: record, Field: f.name}
		}
	}

	return types.CropData{
		Name:            *r.Name,
		OptimalTemp:     *r.OptimalTemp,
		OptimalHumidity: *r.OptimalHumidity,
		WaterNeeds:      *r.WaterNeeds,
		OptimalPH:       *r.OptimalPH,
		PestResistance:  *r.PestResistance,
	}, nil
}

type cropsFile struct {
	Crops []RawCrop `yaml:"crops"`
}

// ParseCrops decodes a YAML catalog of the form crops: [{name, optimal_temp,
// ...}] preserving document order.
func ParseCrops(data []byte) ([]types.CropData, error) {
	var f cropsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	crops := make([]types.CropData, 0, len(f.Crops))
	for i, raw := range f.Crops {
		c, err := raw.Crop(i + 1)
		if err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}
	return crops, nil
}

// LoadCrops reads and parses the YAML catalog at path.
func LoadCrops(path string) ([]types.CropData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	crops, err := ParseCrops(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return crops, nil
}

// RawEnvironment is an environment record as decoded from input or assembled
// from command-line flags. Nil fields were absent.
type RawEnvironment struct {
	Temperature  *float64 `yaml:"temperature"`
	Humidity     *float64 `yaml:"humidity"`
	Rainfall     *float64 `yaml:"rainfall"`
	SoilPH       *float64 `yaml:"soil_ph"`
	SoilMoisture *float64 `yaml:"soil_moisture"`
	PestRisk     *float64 `yaml:"pest_risk"`
}

const environmentRecord = "environment"

// NewEnvironment checks that every field of raw is present and that soil
// moisture is a fraction in [0,1].
func NewEnvironment(raw RawEnvironment) (types.EnvironmentalData, error) {
	fields := []struct {
		name string
		v    *float64
	}{
		{"temperature", raw.Temperature},
		{"humidity", raw.Humidity},
		{"rainfall", raw.Rainfall},
		{"soil_ph", raw.SoilPH},
		{"soil_moisture", raw.SoilMoisture},
		{"pest_risk", raw.PestRisk},
	}
	for _, f := range fields {
		if f.v == nil {
			return types.EnvironmentalData{}, &types.MissingFieldError{Record: environmentRecord, Field: f.name}
		}
	}

	moisture := *raw.SoilMoisture
	if !(moisture >= 0 && moisture <= types.SoilMoistureMax) {
		return types.EnvironmentalData{}, &types.InvalidFieldError{
			Record: environmentRecord,
			Field:  "soil_moisture",
			Value:  moisture,
			Reason: "must be a fraction between 0 and 1",
		}
	}

	return types.EnvironmentalData{
		Temperature:  *raw.Temperature,
		Humidity:     *raw.Humidity,
		Rainfall:     *raw.Rainfall,
		SoilPH:       *raw.SoilPH,
		SoilMoisture: moisture,
		PestRisk:     *raw.PestRisk,
	}, nil
}

// ParseEnvironment decodes a YAML environment mapping.
func ParseEnvironment(data []byte) (types.EnvironmentalData, error) {
	var raw RawEnvironment
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return types.EnvironmentalData{}, fmt.Errorf("parsing environment: %w", err)
	}
	return NewEnvironment(raw)
}

// LoadEnvironment reads and parses the YAML environment at path.
func LoadEnvironment(path string) (types.EnvironmentalData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.EnvironmentalData{}, fmt.Errorf("reading environment: %w", err)
	}
	env, err := ParseEnvironment(data)
	if err != nil {
		return types.EnvironmentalData{}, fmt.Errorf("%s: %w", path, err)
	}
	return env, nil
}

// MarshalCrops encodes crops in the format ParseCrops reads.
func MarshalCrops(crops []types.CropData) ([]byte, error) {
	data, err := yaml.Marshal(struct {
		Crops []types.CropData `yaml:"crops"`
	}{crops})
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return data, nil
}
