// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WeightsConfig holds the raw scoring weights as read from configuration.
// scoring.NewWeights turns them into a validated, immutable value.
type WeightsConfig struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	Water       float64 `json:"water" yaml:"water"`
	PH          float64 `json:"ph" yaml:"ph"`
	Pest        float64 `json:"pest" yaml:"pest"`
}

// ScoringConfig holds settings for scoring and ranking.
type ScoringConfig struct {
	Weights WeightsConfig `json:"weights" yaml:"weights"`

	// TopN is the number of crops to recommend (default 5). Zero yields an
	// empty ranking.
	TopN int `json:"top_n" yaml:"top_n"`

	// Explain controls whether per-factor reasons are produced (default true).
	Explain bool `json:"explain" yaml:"explain"`
}

// CatalogConfig locates the crop catalog.
type CatalogConfig struct {
	// Path is a YAML catalog file (default "crops.yaml").
	Path string `json:"path" yaml:"path"`

	// Database is a SQLite catalog database. When set it takes precedence
	// over Path.
	Database string `json:"database,omitempty" yaml:"database,omitempty"`
}

// LogConfig selects the diagnostic log level and handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format"`
}

// MetricsConfig controls run metrics export.
type MetricsConfig struct {
	// Textfile is the path the run metrics are written to in Prometheus
	// text format. Empty disables export.
	Textfile string `json:"textfile,omitempty" yaml:"textfile,omitempty"`
}

// AdvisorConfig groups all settings of the crop advisor.
type AdvisorConfig struct {
	Scoring ScoringConfig `json:"scoring" yaml:"scoring"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Log     LogConfig     `json:"log" yaml:"log"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}
