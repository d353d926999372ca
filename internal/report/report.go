// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles a recommendation, the environment it was made for
// and optional sensor findings into a Report, and renders it as a table,
// JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/crop-advisor/internal/advisory"
	"github.com/pdiddy/crop-advisor/internal/recommend"
	"github.com/pdiddy/crop-advisor/internal/sensor"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

// Output formats accepted by Write.
const (
	FormatNameTable = "table"
	FormatNameJSON  = "json"
	FormatNameYAML  = "yaml"
)

// Report is the advice for one environment, ready to render.
type Report struct {
	ID          string                  `json:"id" yaml:"id"`
	GeneratedAt time.Time               `json:"generated_at" yaml:"generated_at"`
	Environment types.EnvironmentalData `json:"environment" yaml:"environment"`

	Crops        []types.ScoreResult     `json:"crops" yaml:"crops"`
	Irrigation   advisory.IrrigationPlan `json:"irrigation" yaml:"irrigation"`
	PestControl  []string                `json:"pest_control" yaml:"pest_control"`
	Risks        []string                `json:"risks" yaml:"risks"`
	ClimateRisks []string                `json:"climate_risks" yaml:"climate_risks"`

	SensorCrop            string   `json:"sensor_crop,omitempty" yaml:"sensor_crop,omitempty"`
	SensorAlerts          []string `json:"sensor_alerts,omitempty" yaml:"sensor_alerts,omitempty"`
	SensorRecommendations []string `json:"sensor_recommendations,omitempty" yaml:"sensor_recommendations,omitempty"`
}

// Options controls report assembly.
type Options struct {
	// Clock stamps GeneratedAt. Nil uses the real clock.
	Clock clockwork.Clock

	// SensorCrop and Sensor attach a sensor range check to the report.
	SensorCrop string
	Sensor     *sensor.Analysis
}

// New assembles a report with a fresh random ID, stamped in UTC.
func New(env types.EnvironmentalData, rec recommend.Recommendation, opts Options) Report {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	r := Report{
		ID:           uuid.NewString(),
		GeneratedAt:  clock.Now().UTC(),
		Environment:  env,
		Crops:        rec.Crops,
		Irrigation:   rec.Irrigation,
		PestControl:  rec.PestControl,
		Risks:        rec.Risks,
		ClimateRisks: rec.ClimateRisks,
	}
	if opts.Sensor != nil {
		r.SensorCrop = opts.SensorCrop
		r.SensorAlerts = opts.Sensor.Alerts
		r.SensorRecommendations = opts.Sensor.Recommendations
	}
	return r
}

// Write renders r to w in the named format.
func Write(r Report, format string, w io.Writer) error {
	switch format {
	case FormatNameTable, "":
		FormatTable(r, w)
		return nil
	case FormatNameJSON:
		return FormatJSON(r, w)
	case FormatNameYAML:
		return FormatYAML(r, w)
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// FormatTable writes a human-readable report to w.
func FormatTable(r Report, w io.Writer) {
	fmt.Fprintf(w, "Crop advisory report %s\n", r.ID)
	fmt.Fprintf(w, "Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	e := r.Environment
	fmt.Fprintf(w, "Environment: %.1f°C, %.1f%% humidity, %.1f mm rainfall, pH %.2f, soil moisture %.2f, pest risk %.1f\n\n",
		e.Temperature, e.Humidity, e.Rainfall, e.SoilPH, e.SoilMoisture, e.PestRisk)

	if len(r.Crops) == 0 {
		fmt.Fprintln(w, "No suitable crops found.")
	} else {
		fmt.Fprintf(w, "%-4s  %-30s  %s\n", "Rank", "Crop", "Score")
		fmt.Fprintln(w, strings.Repeat("-", 45))
		for i, c := range r.Crops {
			fmt.Fprintf(w, "%-4d  %-30s  %.2f\n", i+1, truncate(c.Name, 30), c.Score)
			for _, f := range types.Factors {
				if reason, ok := c.Reasons[f]; ok {
					fmt.Fprintf(w, "      %-12s %s\n", string(f)+":", reason)
				}
			}
		}
	}

	fmt.Fprintf(w, "\nIrrigation: %s frequency, %s amount\n", r.Irrigation.Frequency, r.Irrigation.Amount)
	section(w, "Pest control", r.PestControl)
	section(w, "Risks", r.Risks)
	section(w, "Climate risks", r.ClimateRisks)
	if r.SensorCrop != "" {
		fmt.Fprintf(w, "\nSensor check (%s): %d alerts\n", r.SensorCrop, len(r.SensorAlerts))
	}
	section(w, "Sensor alerts", r.SensorAlerts)
	section(w, "Sensor recommendations", r.SensorRecommendations)
}

func section(w io.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, l := range lines {
		fmt.Fprintf(w, "  - %s\n", l)
	}
}

// FormatJSON writes r as indented JSON to w.
func FormatJSON(r Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatYAML writes r as YAML to w.
func FormatYAML(r Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
