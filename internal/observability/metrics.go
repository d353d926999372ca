// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdiddy/crop-advisor/internal/recommend"
)

const namespace = "crop_advisor"

// Advisory kinds used as the "kind" label of AdvisoriesTotal.
const (
	KindRisk        = "risk"
	KindClimate     = "climate"
	KindPestControl = "pest_control"
	KindSensor      = "sensor"
)

// Metrics holds the counters and histograms recorded during a run.
type Metrics struct {
	CropsScored     prometheus.Counter
	Recommendations prometheus.Counter
	Advisories      *prometheus.CounterVec // labels: kind={risk,climate,pest_control,sensor}
	RankDuration    prometheus.Histogram
}

// NewMetrics creates the run metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CropsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crops_scored_total",
			Help:      "Total crops scored against an environment.",
		}),
		Recommendations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total recommendations generated.",
		}),
		Advisories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisories_total",
			Help:      "Advisory messages emitted by kind.",
		}, []string{"kind"}),
		RankDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rank_duration_seconds",
			Help:      "Duration of one recommendation pass.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}

	reg.MustRegister(m.CropsScored, m.Recommendations, m.Advisories, m.RankDuration)
	return m
}

// ObserveRecommendation records one recommendation pass over catalogSize
// crops that took d.
func (m *Metrics) ObserveRecommendation(rec recommend.Recommendation, catalogSize int, d time.Duration) {
	m.CropsScored.Add(float64(catalogSize))
	m.Recommendations.Inc()
	m.Advisories.WithLabelValues(KindRisk).Add(float64(len(rec.Risks)))
	m.Advisories.WithLabelValues(KindClimate).Add(float64(len(rec.ClimateRisks)))
	m.Advisories.WithLabelValues(KindPestControl).Add(float64(len(rec.PestControl)))
	m.RankDuration.Observe(d.Seconds())
}

// ObserveSensorAlerts records n sensor alerts.
func (m *Metrics) ObserveSensorAlerts(n int) {
	m.Advisories.WithLabelValues(KindSensor).Add(float64(n))
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
