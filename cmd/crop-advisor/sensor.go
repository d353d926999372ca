// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sensorCmd = &cobra.Command{
	Use:   "sensor",
	Short: "Check a sensor reading against a crop's ideal ranges",
	Long: `Sensor compares temperature, humidity, soil pH and light readings with the
ideal ranges recorded for a crop and prints an alert and a recommendation for
every reading outside its range.`,
	RunE: runSensor,
}

func runSensor(cmd *cobra.Command, args []string) error {
	condPath, _ := cmd.Flags().GetString("conditions")
	crop, _ := cmd.Flags().GetString("crop")
	readingPath, _ := cmd.Flags().GetString("sensor")
	if condPath == "" || crop == "" || readingPath == "" {
		return fmt.Errorf("--conditions, --crop and --sensor are required")
	}

	a, err := analyzeSensor(condPath, readingPath, crop)
	if err != nil {
		return err
	}
	logger.Debug("sensor reading analyzed", "crop", crop, "alerts", len(a.Alerts))

	if len(a.Alerts) == 0 {
		fmt.Println("All readings within ideal ranges.")
		return nil
	}
	fmt.Println("Alerts:")
	for _, alert := range a.Alerts {
		fmt.Printf("  - %s\n", alert)
	}
	fmt.Println("\nRecommendations:")
	for _, r := range a.Recommendations {
		fmt.Printf("  - %s\n", r)
	}
	return nil
}

func init() {
	addSensorFlags(sensorCmd)
	rootCmd.AddCommand(sensorCmd)
}
