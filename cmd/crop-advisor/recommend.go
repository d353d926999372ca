// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/crop-advisor/internal/config"
	"github.com/pdiddy/crop-advisor/internal/observability"
	"github.com/pdiddy/crop-advisor/internal/recommend"
	"github.com/pdiddy/crop-advisor/internal/report"
	"github.com/pdiddy/crop-advisor/internal/scoring"
	"github.com/pdiddy/crop-advisor/internal/sensor"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the crops best suited to the field conditions",
	Long: `Recommend scores every crop in the catalog against the field environment,
ranks them by compatibility and prints the best matches with irrigation,
pest-control and risk advice.

The environment comes from --env or from the individual measurement flags;
every measurement is required. With --conditions, --crop and --sensor the
report also includes a sensor range check for that crop.`,
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := environmentFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	crops, err := loadCatalog(ctx, cfg.Catalog)
	if err != nil {
		return err
	}

	weights, err := scoring.NewWeights(cfg.Scoring.Weights)
	if err != nil {
		return err
	}
	engine := recommend.NewEngine(scoring.NewScorer(weights), crops, cfg.Scoring.TopN)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	start := time.Now()
	rec := engine.Generate(env, cfg.Scoring.Explain)
	metrics.ObserveRecommendation(rec, engine.CatalogSize(), time.Since(start))
	logger.Info("recommendation generated",
		"crops", engine.CatalogSize(), "top_n", engine.TopN(), "returned", len(rec.Crops))

	opts := report.Options{}
	analysis, sensorCrop, err := sensorCheck(cmd)
	if err != nil {
		return err
	}
	if analysis != nil {
		metrics.ObserveSensorAlerts(len(analysis.Alerts))
		opts.Sensor = analysis
		opts.SensorCrop = sensorCrop
	}

	r := report.New(env, rec, opts)

	outPath, _ := cmd.Flags().GetString("output")
	out, err := openOutput(outPath)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if err := report.Write(r, format, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	if outPath != "" {
		logger.Info("report written", "report", r.ID, "path", outPath)
	}

	if cfg.Metrics.Textfile != "" {
		if err := observability.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", cfg.Metrics.Textfile)
	}
	return nil
}

// sensorCheck runs the optional sensor range check. It returns a nil analysis
// when none of the sensor flags are set.
func sensorCheck(cmd *cobra.Command) (*sensor.Analysis, string, error) {
	condPath, _ := cmd.Flags().GetString("conditions")
	crop, _ := cmd.Flags().GetString("crop")
	readingPath, _ := cmd.Flags().GetString("sensor")
	if condPath == "" && crop == "" && readingPath == "" {
		return nil, "", nil
	}
	if condPath == "" || crop == "" || readingPath == "" {
		return nil, "", fmt.Errorf("--conditions, --crop and --sensor must be given together")
	}

	a, err := analyzeSensor(condPath, readingPath, crop)
	if err != nil {
		return nil, "", err
	}
	return &a, crop, nil
}

func analyzeSensor(condPath, readingPath, crop string) (sensor.Analysis, error) {
	conditions, err := sensor.LoadConditions(condPath)
	if err != nil {
		return sensor.Analysis{}, err
	}
	reading, err := sensor.LoadReading(readingPath)
	if err != nil {
		return sensor.Analysis{}, err
	}
	return sensor.Analyze(reading, conditions, crop)
}

func addSensorFlags(cmd *cobra.Command) {
	cmd.Flags().String("conditions", "", "YAML file with ideal sensor ranges per crop")
	cmd.Flags().String("crop", "", "crop whose ideal ranges the sensor reading is checked against")
	cmd.Flags().String("sensor", "", "YAML file with a sensor reading")
}

func init() {
	addEnvironmentFlags(recommendCmd.Flags())
	addSensorFlags(recommendCmd)

	recommendCmd.Flags().Int("top", config.DefaultTopN, "number of crops to recommend")
	recommendCmd.Flags().Bool("explain", true, "include per-factor reasons")
	recommendCmd.Flags().String("format", report.FormatNameTable, "output format: table, json or yaml")
	recommendCmd.Flags().String("output", "", "write the report to a file instead of stdout")
	recommendCmd.Flags().String("metrics-textfile", "", "write run metrics in Prometheus text format to this file")

	mustBind(config.KeyTopN, recommendCmd.Flags().Lookup("top"))
	mustBind(config.KeyExplain, recommendCmd.Flags().Lookup("explain"))
	mustBind(config.KeyMetricsTextfile, recommendCmd.Flags().Lookup("metrics-textfile"))

	rootCmd.AddCommand(recommendCmd)
}
