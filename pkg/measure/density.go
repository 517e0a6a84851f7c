package measure

import "strings"

// Approximate densities in g/ml of common ingredients.
var commonDensities = map[string]float64{
	// liquids
	"water":       1.0,
	"milk":        1.03,
	"oil":         0.92,
	"honey":       1.42,
	"maple syrup": 1.37,

	// dry goods
	"all-purpose flour": 0.593,
	"bread flour":       0.593,
	"cake flour":        0.496,
	"whole wheat flour": 0.593,
	"sugar":             0.845,
	"brown sugar":       0.845,
	"powdered sugar":    0.496,
	"salt":              1.217,
	"baking soda":       0.865,
	"baking powder":     0.865,

	// grains
	"rice": 0.845,
	"oats": 0.338,

	// dairy
	"butter":       0.911,
	"cream cheese": 1.04,
	"sour cream":   1.0,
	"yogurt":       1.04,
}

// DensityFor returns the density of a known ingredient, or DefaultDensity.
func DensityFor(ingredient string) float64 {
	if d, ok := commonDensities[strings.ToLower(strings.TrimSpace(ingredient))]; ok {
		return d
	}
	return DefaultDensity
}
