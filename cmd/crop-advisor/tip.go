// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crop-advisor/internal/tips"
)

var tipCmd = &cobra.Command{
	Use:   "tip [product]",
	Short: "Print a cultivation tip for a product",
	Long:  `Tip prints a short cultivation tip for the product, or lists the products with tips when none is given.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, p := range tips.Products() {
				fmt.Println(p)
			}
			return
		}
		fmt.Println(tips.Lookup(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(tipCmd)
}
