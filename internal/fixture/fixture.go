// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixture builds synthetic environments and crop catalogs for tests.
// Every builder takes an explicit random source so callers control the seed;
// nothing here touches global random state.
package fixture

import (
	"fmt"
	"math/rand/v2"

	"github.com/pdiddy/crop-advisor/pkg/types"
)

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Environment returns field measurements drawn from plausible growing ranges:
// 15-35 °C, 30-90 % humidity, 100-300 mm rainfall, pH 5.5-7.5, soil moisture
// 0.2-0.5 and pest risk 0-10.
func Environment(r *rand.Rand) types.EnvironmentalData {
	return types.EnvironmentalData{
		Temperature:  uniform(r, 15, 35),
		Humidity:     uniform(r, 30, 90),
		Rainfall:     uniform(r, 100, 300),
		SoilPH:       uniform(r, 5.5, 7.5),
		SoilMoisture: uniform(r, 0.2, 0.5),
		PestRisk:     uniform(r, 0, types.PestRiskMax),
	}
}

// Crop returns a crop profile named name with values drawn from the ranges
// used for generated catalogs.
func Crop(r *rand.Rand, name string) types.CropData {
	return types.CropData{
		Name:            name,
		OptimalTemp:     uniform(r, 15, 35),
		OptimalHumidity: uniform(r, 40, 90),
		WaterNeeds:      uniform(r, 100, 300),
		OptimalPH:       uniform(r, 5.5, 7.5),
		PestResistance:  uniform(r, 1, 10),
	}
}

// Catalog returns n generated crops named crop_1 through crop_n.
func Catalog(r *rand.Rand, n int) []types.CropData {
	crops := make([]types.CropData, n)
	for i := range crops {
		crops[i] = Crop(r, fmt.Sprintf("crop_%d", i+1))
	}
	return crops
}

// SampleCatalog returns a small hand-written catalog of staple crops.
func SampleCatalog() []types.CropData {
	return []types.CropData{
		{Name: "Wheat", OptimalTemp: 24, OptimalHumidity: 55, WaterNeeds: 180, OptimalPH: 6.0, PestResistance: 7},
		{Name: "Corn", OptimalTemp: 28, OptimalHumidity: 60, WaterNeeds: 200, OptimalPH: 6.5, PestResistance: 6},
		{Name: "Rice", OptimalTemp: 30, OptimalHumidity: 80, WaterNeeds: 250, OptimalPH: 6.0, PestResistance: 5},
	}
}

// SampleEnvironment returns the environment paired with SampleCatalog in tests.
func SampleEnvironment() types.EnvironmentalData {
	return types.EnvironmentalData{
		Temperature:  25,
		Humidity:     60,
		Rainfall:     200,
		SoilPH:       6.5,
		SoilMoisture: 0.35,
		PestRisk:     3,
	}
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
