// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/crop-advisor/internal/catalog"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

// mustBind binds a viper key to a flag. It panics on programmer error only.
func mustBind(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// environmentFlags maps each environment field to its flag name.
var environmentFlags = []struct {
	flag  string
	usage string
	field func(*catalog.RawEnvironment) **float64
}{
	{"temperature", "air temperature in °C", func(r *catalog.RawEnvironment) **float64 { return &r.Temperature }},
	{"humidity", "relative humidity in percent", func(r *catalog.RawEnvironment) **float64 { return &r.Humidity }},
	{"rainfall", "rainfall in mm", func(r *catalog.RawEnvironment) **float64 { return &r.Rainfall }},
	{"soil-ph", "soil pH (0-14)", func(r *catalog.RawEnvironment) **float64 { return &r.SoilPH }},
	{"soil-moisture", "soil moisture as a fraction (0-1)", func(r *catalog.RawEnvironment) **float64 { return &r.SoilMoisture }},
	{"pest-risk", "pest risk (0-10)", func(r *catalog.RawEnvironment) **float64 { return &r.PestRisk }},
}

func addEnvironmentFlags(fs *pflag.FlagSet) {
	fs.String("env", "", "YAML file with the field environment")
	for _, ef := range environmentFlags {
		fs.Float64(ef.flag, 0, ef.usage)
	}
}

// environmentFromFlags reads the environment from --env, or assembles it from
// the individual measurement flags. Flags left unset count as missing fields.
func environmentFromFlags(fs *pflag.FlagSet) (types.EnvironmentalData, error) {
	if path, _ := fs.GetString("env"); path != "" {
		return catalog.LoadEnvironment(path)
	}

	var raw catalog.RawEnvironment
	for _, ef := range environmentFlags {
		if !fs.Changed(ef.flag) {
			continue
		}
		v, err := fs.GetFloat64(ef.flag)
		if err != nil {
			return types.EnvironmentalData{}, err
		}
		*ef.field(&raw) = &v
	}
	return catalog.NewEnvironment(raw)
}

// loadCatalog reads the crop catalog from the database when one is
// configured, otherwise from the YAML file.
func loadCatalog(ctx context.Context, c types.CatalogConfig) ([]types.CropData, error) {
	if c.Database != "" {
		store, err := catalog.NewStore(c.Database)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		crops, err := store.Crops(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Database, err)
		}
		logger.Debug("catalog loaded", "catalog", c.Database, "crops", len(crops))
		return crops, nil
	}

	crops, err := catalog.LoadCrops(c.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", "catalog", c.Path, "crops", len(crops))
	return crops, nil
}

// openOutput returns stdout, or the named file when path is set.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
