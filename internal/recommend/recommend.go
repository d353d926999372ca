// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recommend combines the ranked crop list with the environment-level
// advisories into one recommendation.
package recommend

import (
	"github.com/pdiddy/crop-advisor/internal/advisory"
	"github.com/pdiddy/crop-advisor/internal/scoring"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

// DefaultTopN is the number of crops recommended when nothing else is
// configured.
const DefaultTopN = 5

// Recommendation is the full advice for one environment.
type Recommendation struct {
	Crops        []types.ScoreResult     `json:"crops" yaml:"crops"`
	Irrigation   advisory.IrrigationPlan `json:"irrigation" yaml:"irrigation"`
	PestControl  []string                `json:"pest_control" yaml:"pest_control"`
	Risks        []string                `json:"risks" yaml:"risks"`
	ClimateRisks []string                `json:"climate_risks" yaml:"climate_risks"`
}

// Engine holds a scorer and a catalog. It keeps its own copy of the catalog,
// so later changes to the caller's slice do not leak in.
type Engine struct {
	scorer  *scoring.Scorer
	catalog []types.CropData
	topN    int
}

// NewEngine returns an Engine ranking catalog with scorer and keeping the
// best topN crops.
func NewEngine(scorer *scoring.Scorer, catalog []types.CropData, topN int) *Engine {
	return &Engine{
		scorer:  scorer,
		catalog: append([]types.CropData(nil), catalog...),
		topN:    topN,
	}
}

// CatalogSize returns the number of crops the engine ranks.
func (e *Engine) CatalogSize() int {
	return len(e.catalog)
}

// TopN returns the configured result limit.
func (e *Engine) TopN() int {
	return e.topN
}

// Generate ranks the catalog under env and attaches the irrigation plan,
// pest-control guidance, risk assessment and climate risks.
func (e *Engine) Generate(env types.EnvironmentalData, explain bool) Recommendation {
	return Recommendation{
		Crops:        e.scorer.Rank(env, e.catalog, e.topN, explain),
		Irrigation:   advisory.Irrigation(env),
		PestControl:  advisory.PestControl(env),
		Risks:        advisory.AssessRisks(env),
		ClimateRisks: advisory.ClimateRisks(env),
	}
}
