// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CropData is a crop profile: the conditions under which the crop does best.
// Catalogs hold these as a read-only list for the duration of a ranking pass.
type CropData struct {
	// Name is the display label. Uniqueness is not enforced.
	Name string `json:"name" yaml:"name"`

	// OptimalTemp is the preferred temperature in °C.
	OptimalTemp float64 `json:"optimal_temp" yaml:"optimal_temp"`

	// OptimalHumidity is the preferred relative humidity in percent.
	OptimalHumidity float64 `json:"optimal_humidity" yaml:"optimal_humidity"`

	// WaterNeeds is the water requirement in mm.
	WaterNeeds float64 `json:"water_needs" yaml:"water_needs"`

	// OptimalPH is the preferred soil pH on the 0-14 scale.
	OptimalPH float64 `json:"optimal_ph" yaml:"optimal_ph"`

	// PestResistance is the crop's resistance to pests on the 1-10 scale.
	PestResistance float64 `json:"pest_resistance" yaml:"pest_resistance"`
}
