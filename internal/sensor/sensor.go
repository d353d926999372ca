// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sensor compares live sensor readings against the ideal ranges
// recorded for a crop and reports the parameters that fall outside them.
package sensor

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ErrUnknownCrop is returned when no conditions are recorded for the crop.
var ErrUnknownCrop = errors.New("no conditions recorded for crop")

// Parameter names a sensor channel.
type Parameter string

// Sensor channels, in the order they are checked.
const (
	Temperature Parameter = "temperature"
	Humidity    Parameter = "humidity"
	SoilPH      Parameter = "soil_ph"
	Light       Parameter = "light"
)

// Parameters lists the channels in check order.
var Parameters = []Parameter{Temperature, Humidity, SoilPH, Light}

// Label returns the display name of p.
func (p Parameter) Label() string {
	switch p {
	case Temperature:
		return "Temperature"
	case Humidity:
		return "Humidity"
	case SoilPH:
		return "Soil_pH"
	case Light:
		return "Light"
	default:
		return string(p)
	}
}

// Range is an inclusive ideal interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Conditions holds the ideal ranges for one crop.
type Conditions struct {
	Crop   string              `json:"crop" yaml:"crop"`
	Ranges map[Parameter]Range `json:"ranges" yaml:"ranges"`
}

// Reading is one set of sensor values keyed by channel.
type Reading map[Parameter]float64

// Analysis carries one alert and one recommendation per out-of-range
// parameter, in check order.
type Analysis struct {
	Alerts          []string `json:"alerts" yaml:"alerts"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// Analyze checks reading against the conditions recorded for crop.
// Parameters missing from the reading or from the crop's ranges are skipped.
func Analyze(reading Reading, conditions []Conditions, crop string) (Analysis, error) {
	cond, ok := find(conditions, crop)
	if !ok {
		return Analysis{}, fmt.Errorf("%w: %q", ErrUnknownCrop, crop)
	}

	a := Analysis{Alerts: []string{}, Recommendations: []string{}}
	for _, p := range Parameters {
		value, ok := reading[p]
		if !ok {
			continue
		}
		ideal, ok := cond.Ranges[p]
		if !ok || ideal.Contains(value) {
			continue
		}
		a.Alerts = append(a.Alerts, fmt.Sprintf("%s is currently %.1f. Ideal range: %g-%g.",
			p.Label(), value, ideal.Min, ideal.Max))
		a.Recommendations = append(a.Recommendations, fmt.Sprintf("Take the necessary measures to correct the %s level.",
			p.Label()))
	}
	return a, nil
}

func find(conditions []Conditions, crop string) (Conditions, bool) {
	for _, c := range conditions {
		if c.Crop == crop {
			return c, true
		}
	}
	return Conditions{}, false
}

type conditionsFile struct {
	Conditions []Conditions `yaml:"conditions"`
}

// ParseConditions decodes a YAML document of the form
// conditions: [{crop, ranges: {temperature: {min, max}, ...}}].
func ParseConditions(data []byte) ([]Conditions, error) {
	var f conditionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing conditions: %w", err)
	}
	for i, c := range f.Conditions {
		if c.Crop == "" {
			return nil, fmt.Errorf("conditions #%d: missing crop name", i+1)
		}
		for p, r := range c.Ranges {
			if r.Min > r.Max {
				return nil, fmt.Errorf("conditions %q: %s range min %g exceeds max %g", c.Crop, p, r.Min, r.Max)
			}
		}
	}
	return f.Conditions, nil
}

// LoadConditions reads and parses a conditions file.
func LoadConditions(path string) ([]Conditions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading conditions: %w", err)
	}
	return ParseConditions(data)
}

// ParseReading decodes a YAML mapping of channel to value, e.g.
// {temperature: 22.5, humidity: 61, soil_ph: 6.4, light: 900}.
func ParseReading(data []byte) (Reading, error) {
	var r Reading
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing sensor reading: %w", err)
	}
	if r == nil {
		r = Reading{}
	}
	return r, nil
}

// LoadReading reads and parses a sensor reading file.
func LoadReading(path string) (Reading, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sensor data: %w", err)
	}
	return ParseReading(data)
}
