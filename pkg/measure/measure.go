package measure

import "math"

// Category partitions the recognised units. Units of different categories can
// only be converted through a density, and count never converts to anything else.
type Category string

const (
	CategoryWeight Category = "weight"
	CategoryVolume Category = "volume"
	CategoryCount  Category = "count"

	// CategoryAll is only meaningful for UnitsFor.
	CategoryAll Category = "all"
)

// Base units per category.
const (
	BaseWeight = "g"
	BaseVolume = "ml"
	BaseCount  = "pc"
)

// DefaultDensity is used whenever the density of an ingredient is unknown.
const DefaultDensity = 1.0

type unitFactor struct {
	name   string
	factor float64
}

// Factors to the base unit of each category. Slices keep the listing order stable.
var (
	weightUnits = []unitFactor{
		{"mg", 0.001},
		{"g", 1},
		{"kg", 1000},
		{"oz", 28.3495},
		{"lb", 453.592},
	}

	volumeUnits = []unitFactor{
		{"ml", 1},
		{"l", 1000},
		{"tsp", 4.92892},
		{"tbsp", 14.7868},
		{"cup", 236.588},
		{"fl oz", 29.5735},
		{"pt", 473.176},
		{"qt", 946.353},
		{"gal", 3785.41},
	}

	countUnits = []unitFactor{
		{"pc", 1},
		{"dozen", 12},
	}
)

type unitInfo struct {
	category Category
	factor   float64
}

var units = buildIndex()

func buildIndex() map[string]unitInfo {
	index := make(map[string]unitInfo, len(weightUnits)+len(volumeUnits)+len(countUnits))
	add := func(c Category, table []unitFactor) {
		for _, u := range table {
			index[u.name] = unitInfo{category: c, factor: u.factor}
		}
	}
	add(CategoryWeight, weightUnits)
	add(CategoryVolume, volumeUnits)
	add(CategoryCount, countUnits)
	return index
}

// Classify returns the category of unit. ok is false for an unrecognised unit.
func Classify(unit string) (Category, bool) {
	info, ok := units[unit]
	if !ok {
		return "", false
	}
	return info.category, true
}

// IsKnown reports whether unit belongs to the recognised vocabulary.
func IsKnown(unit string) bool {
	_, ok := units[unit]
	return ok
}

// Convert converts qty between two units of the same category.
// ok is false when either unit is unknown, the categories differ or the
// result overflows.
func Convert(qty float64, fromUnit, toUnit string) (float64, bool) {
	if fromUnit == toUnit {
		return qty, true
	}

	from, ok := units[fromUnit]
	if !ok {
		return 0, false
	}
	to, ok := units[toUnit]
	if !ok || from.category != to.category {
		return 0, false
	}

	base := qty * from.factor
	return finite(base / to.factor)
}

// ConvertWithDensity converts qty between any two units, bridging weight and
// volume with density expressed in grams per millilitre.
func ConvertWithDensity(qty float64, fromUnit, toUnit string, density float64) (float64, bool) {
	if fromUnit == toUnit {
		return qty, true
	}
	if density <= 0 {
		return 0, false
	}

	from, ok := units[fromUnit]
	if !ok {
		return 0, false
	}
	to, ok := units[toUnit]
	if !ok {
		return 0, false
	}

	switch {
	case from.category == to.category:
		return Convert(qty, fromUnit, toUnit)
	case from.category == CategoryWeight && to.category == CategoryVolume:
		grams := qty * from.factor
		ml := grams / density
		return finite(ml / to.factor)
	case from.category == CategoryVolume && to.category == CategoryWeight:
		ml := qty * from.factor
		grams := ml * density
		return finite(grams / to.factor)
	}

	return 0, false
}

// finite reports a result that overflowed the float64 range as not convertible.
func finite(x float64) (float64, bool) {
	if IsFinite(x) {
		return x, true
	}
	return 0, false
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Compatible reports whether a conversion between unit1 and unit2 would succeed.
// Weight and volume are compatible only when allowDensity is set.
func Compatible(unit1, unit2 string, allowDensity bool) bool {
	if unit1 == unit2 {
		return true
	}

	c1, ok := Classify(unit1)
	if !ok {
		return false
	}
	c2, ok := Classify(unit2)
	if !ok {
		return false
	}

	if c1 == c2 {
		return true
	}
	if !allowDensity {
		return false
	}
	return (c1 == CategoryWeight && c2 == CategoryVolume) ||
		(c1 == CategoryVolume && c2 == CategoryWeight)
}

// UsageAmount is how much of an inventory item a recipe consumes, expressed in
// the inventory unit.
func UsageAmount(recipeAmount float64, recipeUnit, inventoryUnit string, density float64) (float64, bool) {
	return ConvertWithDensity(recipeAmount, recipeUnit, inventoryUnit, density)
}

// UnitsFor lists the units of a category. CategoryAll lists every unit.
func UnitsFor(category Category) []string {
	var tables [][]unitFactor
	switch category {
	case CategoryWeight:
		tables = [][]unitFactor{weightUnits}
	case CategoryVolume:
		tables = [][]unitFactor{volumeUnits}
	case CategoryCount:
		tables = [][]unitFactor{countUnits}
	case CategoryAll:
		tables = [][]unitFactor{weightUnits, volumeUnits, countUnits}
	default:
		return nil
	}

	var out []string
	for _, table := range tables {
		for _, u := range table {
			out = append(out, u.name)
		}
	}
	return out
}
