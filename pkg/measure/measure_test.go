package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		unit string
		want Category
		ok   bool
	}{
		{"mg", CategoryWeight, true},
		{"lb", CategoryWeight, true},
		{"ml", CategoryVolume, true},
		{"fl oz", CategoryVolume, true},
		{"gal", CategoryVolume, true},
		{"pc", CategoryCount, true},
		{"dozen", CategoryCount, true},
		{"G", "", false},
		{"pinch", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, ok := Classify(tt.unit)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoriesAreDisjoint(t *testing.T) {
	seen := map[string]Category{}
	for _, c := range []Category{CategoryWeight, CategoryVolume, CategoryCount} {
		for _, u := range UnitsFor(c) {
			prev, dup := seen[u]
			require.Falsef(t, dup, "unit %q in both %s and %s", u, prev, c)
			seen[u] = c
		}
	}
	assert.Len(t, seen, len(UnitsFor(CategoryAll)))
}

func TestConvert_Factors(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		from, to string
		want     float64
	}{
		{"kg to g", 2, "kg", "g", 2000},
		{"mg to g", 500, "mg", "g", 0.5},
		{"lb to oz", 1, "lb", "oz", 453.592 / 28.3495},
		{"cup to ml", 1, "cup", "ml", 236.588},
		{"tbsp to tsp", 1, "tbsp", "tsp", 14.7868 / 4.92892},
		{"gal to l", 1, "gal", "l", 3.78541},
		{"dozen to pc", 2, "dozen", "pc", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Convert(tt.qty, tt.from, tt.to)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, c := range []Category{CategoryWeight, CategoryVolume, CategoryCount} {
		list := UnitsFor(c)
		for _, a := range list {
			for _, b := range list {
				there, ok := Convert(123.45, a, b)
				require.True(t, ok, "%s -> %s", a, b)
				back, ok := Convert(there, b, a)
				require.True(t, ok, "%s -> %s", b, a)
				assert.InDelta(t, 123.45, back, 1e-9, "%s <-> %s", a, b)
			}
		}
	}
}

func TestConvert_Identity(t *testing.T) {
	for _, u := range append(UnitsFor(CategoryAll), "handful", "", "G") {
		got, ok := Convert(7.25, u, u)
		assert.True(t, ok, u)
		assert.Equal(t, 7.25, got, u)
	}
}

func TestConvert_Incompatible(t *testing.T) {
	for _, w := range UnitsFor(CategoryWeight) {
		for _, v := range UnitsFor(CategoryVolume) {
			_, ok := Convert(1, w, v)
			assert.False(t, ok, "%s -> %s", w, v)
			_, ok = Convert(1, v, w)
			assert.False(t, ok, "%s -> %s", v, w)
		}
	}

	_, ok := Convert(1, "g", "pinch")
	assert.False(t, ok)
	_, ok = Convert(1, "pinch", "g")
	assert.False(t, ok)
	_, ok = Convert(1, "pc", "g")
	assert.False(t, ok)
}

func TestConvertWithDensity(t *testing.T) {
	t.Run("grams equal millilitres at unit density", func(t *testing.T) {
		got, ok := ConvertWithDensity(250, "g", "ml", 1.0)
		require.True(t, ok)
		assert.InDelta(t, 250, got, 1e-9)
	})

	t.Run("cup of flour to grams", func(t *testing.T) {
		got, ok := ConvertWithDensity(2, "cup", "g", 0.593)
		require.True(t, ok)
		assert.InDelta(t, 2*236.588*0.593, got, 1e-9)
	})

	t.Run("kilograms of honey to litres", func(t *testing.T) {
		got, ok := ConvertWithDensity(1.42, "kg", "l", 1.42)
		require.True(t, ok)
		assert.InDelta(t, 1, got, 1e-9)
	})

	t.Run("same category ignores density", func(t *testing.T) {
		got, ok := ConvertWithDensity(1, "kg", "g", 0.3)
		require.True(t, ok)
		assert.InDelta(t, 1000, got, 1e-9)
	})

	t.Run("identity wins over invalid density", func(t *testing.T) {
		got, ok := ConvertWithDensity(3, "cup", "cup", 0)
		require.True(t, ok)
		assert.Equal(t, 3.0, got)
	})

	t.Run("non positive density", func(t *testing.T) {
		for _, d := range []float64{0, -1} {
			_, ok := ConvertWithDensity(1, "g", "ml", d)
			assert.False(t, ok)
			_, ok = ConvertWithDensity(1, "kg", "g", d)
			assert.False(t, ok)
		}
	})

	t.Run("count never bridges", func(t *testing.T) {
		for _, u := range append(UnitsFor(CategoryWeight), UnitsFor(CategoryVolume)...) {
			_, ok := ConvertWithDensity(1, "pc", u, 1)
			assert.False(t, ok, u)
			_, ok = ConvertWithDensity(1, u, "dozen", 1)
			assert.False(t, ok, u)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, ok := ConvertWithDensity(1, "g", "pinch", 1)
		assert.False(t, ok)
	})

	t.Run("tiny density overflows", func(t *testing.T) {
		got, ok := ConvertWithDensity(1, "g", "ml", 1e-320)
		assert.False(t, ok)
		assert.Zero(t, got)
	})
}

func TestConvert_Overflow(t *testing.T) {
	got, ok := Convert(1e308, "kg", "mg")
	assert.False(t, ok)
	assert.Zero(t, got)

	_, ok = ConvertWithDensity(1e308, "kg", "mg", 1)
	assert.False(t, ok)
	_, ok = ConvertWithDensity(1e308, "l", "mg", 1)
	assert.False(t, ok)

	got, ok = Convert(1e308, "mg", "kg")
	require.True(t, ok)
	assert.InDelta(t, 1e302, got, 1e290)
}

func TestCompatibleMatchesConversion(t *testing.T) {
	samples := map[Category]string{
		CategoryWeight: "kg",
		CategoryVolume: "cup",
		CategoryCount:  "dozen",
	}

	for c1, u1 := range samples {
		for c2, u2 := range samples {
			_, plain := Convert(1, u1, u2)
			assert.Equal(t, plain, Compatible(u1, u2, false), "%s/%s without density", c1, c2)

			_, dense := ConvertWithDensity(1, u1, u2, DefaultDensity)
			assert.Equal(t, dense, Compatible(u1, u2, true), "%s/%s with density", c1, c2)
		}
	}

	assert.False(t, Compatible("g", "pinch", true))
	assert.True(t, Compatible("pinch", "pinch", true))
}

func TestUsageAmount(t *testing.T) {
	got, ok := UsageAmount(2, "tbsp", "g", DensityFor("Butter"))
	require.True(t, ok)
	assert.InDelta(t, 2*14.7868*0.911, got, 1e-9)

	_, ok = UsageAmount(2, "pc", "g", 1)
	assert.False(t, ok)
}

func TestUnitsFor(t *testing.T) {
	assert.Equal(t, []string{"mg", "g", "kg", "oz", "lb"}, UnitsFor(CategoryWeight))
	assert.Equal(t, []string{"pc", "dozen"}, UnitsFor(CategoryCount))
	assert.Len(t, UnitsFor(CategoryAll), 16)
	assert.Nil(t, UnitsFor("length"))
}

func TestDensityFor(t *testing.T) {
	assert.Equal(t, 0.593, DensityFor("All-Purpose Flour"))
	assert.Equal(t, 1.37, DensityFor("  maple syrup "))
	assert.Equal(t, 1.03, DensityFor("MILK"))
	assert.Equal(t, DefaultDensity, DensityFor("saffron"))
	assert.Equal(t, DefaultDensity, DensityFor(""))
}
