// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tips maps a product name to a short cultivation tip.
package tips

// NotFound is returned by Lookup for products without a tip.
const NotFound = "No recommendation found for this product."

var products = []string{"Wheat", "Corn", "Cotton", "Sunflower"}

var tips = map[string]string{
	"Wheat":     "Till the soil in advance and use organic fertilizer.",
	"Corn":      "A drip irrigation system is recommended.",
	"Cotton":    "Sow early and keep a close eye on temperature.",
	"Sunflower": "You can increase the amount of nitrogen fertilizer.",
}

// Lookup returns the tip for product, or NotFound. Matching is exact.
func Lookup(product string) string {
	if tip, ok := tips[product]; ok {
		return tip
	}
	return NotFound
}

// Products returns the products that have tips, in display order.
func Products() []string {
	return append([]string(nil), products...)
}
