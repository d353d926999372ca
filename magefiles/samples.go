//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const samplesDir = "samples"

var sampleFiles = map[string]string{
	"crops.yaml": `crops:
  - name: Wheat
    optimal_temp: 24
    optimal_humidity: 55
    water_needs: 180
    optimal_ph: 6.0
    pest_resistance: 7
  - name: Corn
    optimal_temp: 28
    optimal_humidity: 60
    water_needs: 200
    optimal_ph: 6.5
    pest_resistance: 6
  - name: Rice
    optimal_temp: 30
    optimal_humidity: 80
    water_needs: 250
    optimal_ph: 6.0
    pest_resistance: 5
  - name: Cotton
    optimal_temp: 30
    optimal_humidity: 50
    water_needs: 160
    optimal_ph: 6.8
    pest_resistance: 4
  - name: Sunflower
    optimal_temp: 25
    optimal_humidity: 45
    water_needs: 120
    optimal_ph: 7.0
    pest_resistance: 8
`,
	"env.yaml": `temperature: 25
humidity: 60
rainfall: 200
soil_ph: 6.5
soil_moisture: 0.35
pest_risk: 3
`,
	"conditions.yaml": `conditions:
  - crop: Wheat
    ranges:
      temperature: {min: 15, max: 25}
      humidity: {min: 40, max: 70}
      soil_ph: {min: 6.0, max: 7.5}
      light: {min: 400, max: 1500}
  - crop: Corn
    ranges:
      temperature: {min: 18, max: 32}
      humidity: {min: 50, max: 80}
      soil_ph: {min: 5.8, max: 7.0}
      light: {min: 600, max: 2000}
`,
	"sensor.yaml": `temperature: 27.5
humidity: 62
soil_ph: 5.6
light: 900
`,
}

// Samples writes a sample catalog, environment, conditions and sensor reading
// into samples/.
func Samples() error {
	if err := os.MkdirAll(samplesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", samplesDir, err)
	}
	for name, content := range sampleFiles {
		path := filepath.Join(samplesDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Sample inputs written.")
	return nil
}

// Demo builds the CLI and runs a recommendation over the samples.
func Demo() error {
	mg.Deps(Build, Samples)
	bin := filepath.Join(binDir, binName)
	return sh.RunV(bin, "recommend",
		"--catalog", filepath.Join(samplesDir, "crops.yaml"),
		"--env", filepath.Join(samplesDir, "env.yaml"),
		"--conditions", filepath.Join(samplesDir, "conditions.yaml"),
		"--crop", "Wheat",
		"--sensor", filepath.Join(samplesDir, "sensor.yaml"),
	)
}
