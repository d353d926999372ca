// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the crop-advisor CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/crop-advisor/internal/config"
	"github.com/pdiddy/crop-advisor/internal/observability"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg and logger are populated before any subcommand runs.
var (
	cfg    types.AdvisorConfig
	logger = slog.Default()
)

// rootCmd is the base command for the crop-advisor CLI.
var rootCmd = &cobra.Command{
	Use:   "crop-advisor",
	Short: "Rank crops by compatibility with field conditions",
	Long: `crop-advisor scores a catalog of crop profiles against measured field
conditions and recommends the best matches, together with irrigation,
pest-control and risk advice.

The catalog comes from a YAML file or a SQLite catalog database. Settings are
read from crop-advisor.yaml, CROP_ADVISOR_* environment variables and flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", "path", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./crop-advisor.yaml or ~/.config/crop-advisor/crop-advisor.yaml)")
	pf.String("catalog", config.DefaultCatalogPath, "YAML crop catalog")
	pf.String("db", "", "SQLite crop catalog database (takes precedence over --catalog)")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.String("log-format", config.DefaultLogFormat, "log format: text or json")

	mustBind(config.KeyCatalogPath, pf.Lookup("catalog"))
	mustBind(config.KeyCatalogDatabase, pf.Lookup("db"))
	mustBind(config.KeyLogLevel, pf.Lookup("log-level"))
	mustBind(config.KeyLogFormat, pf.Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("crop-advisor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "crop-advisor"))
		}
	}

	config.Configure(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
