// Package units holds the static unit registry used by the converter.
//
// Every linear category expresses its units as a ratio to a single base unit
// (ratio 1). Temperature units carry no ratio because the relationship
// between them is affine; the converter special-cases them.
package units

import (
	"fmt"
	"strings"
)

// Category is a family of mutually convertible units.
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Volume      Category = "volume"
	Area        Category = "area"
	Temperature Category = "temperature"
)

// IsLinear reports whether units of c convert by ratio alone.
func (c Category) IsLinear() bool {
	return c != Temperature
}

// Valid reports whether c is a registered category.
func (c Category) Valid() bool {
	_, ok := table[c]
	return ok
}

// UnitDefinition describes one measurable unit within a category.
type UnitDefinition struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	RatioToBase float64 `json:"ratio_to_base,omitempty"` // base units per one of this unit
}

// Temperature unit identifiers.
const (
	Celsius    = "c"
	Fahrenheit = "f"
	Kelvin     = "k"
)

var categories = []Category{Length, Weight, Volume, Area, Temperature}

var table = map[Category][]UnitDefinition{
	// base: meter
	Length: {
		{ID: "mm", Label: "Millimeter (mm)", RatioToBase: 0.001},
		{ID: "cm", Label: "Centimeter (cm)", RatioToBase: 0.01},
		{ID: "m", Label: "Meter (m)", RatioToBase: 1},
		{ID: "km", Label: "Kilometer (km)", RatioToBase: 1000},
		{ID: "in", Label: "Inch (in)", RatioToBase: 0.0254},
		{ID: "ft", Label: "Foot (ft)", RatioToBase: 0.3048},
		{ID: "yd", Label: "Yard (yd)", RatioToBase: 0.9144},
		{ID: "mi", Label: "Mile (mi)", RatioToBase: 1609.344},
	},
	// base: kilogram
	Weight: {
		{ID: "mg", Label: "Milligram (mg)", RatioToBase: 0.000001},
		{ID: "g", Label: "Gram (g)", RatioToBase: 0.001},
		{ID: "kg", Label: "Kilogram (kg)", RatioToBase: 1},
		{ID: "t", Label: "Tonne (t)", RatioToBase: 1000},
		{ID: "oz", Label: "Ounce (oz)", RatioToBase: 0.028349523125},
		{ID: "lb", Label: "Pound (lb)", RatioToBase: 0.45359237},
	},
	// base: liter
	Volume: {
		{ID: "ml", Label: "Milliliter (ml)", RatioToBase: 0.001},
		{ID: "l", Label: "Liter (l)", RatioToBase: 1},
		{ID: "m3", Label: "Cubic meter (m³)", RatioToBase: 1000},
		{ID: "floz", Label: "US fluid ounce (fl oz)", RatioToBase: 0.0295735295625},
		{ID: "cup", Label: "US cup", RatioToBase: 0.2365882365},
		{ID: "pt", Label: "US pint (pt)", RatioToBase: 0.473176473},
		{ID: "qt", Label: "US quart (qt)", RatioToBase: 0.946352946},
		{ID: "gal", Label: "US gallon (gal)", RatioToBase: 3.785411784},
	},
	// base: square meter
	Area: {
		{ID: "cm2", Label: "Square centimeter (cm²)", RatioToBase: 0.0001},
		{ID: "m2", Label: "Square meter (m²)", RatioToBase: 1},
		{ID: "km2", Label: "Square kilometer (km²)", RatioToBase: 1_000_000},
		{ID: "ha", Label: "Hectare (ha)", RatioToBase: 10_000},
		{ID: "ft2", Label: "Square foot (ft²)", RatioToBase: 0.09290304},
		{ID: "ac", Label: "Acre (ac)", RatioToBase: 4046.8564224},
		{ID: "py", Label: "Pyeong (py)", RatioToBase: 400.0 / 121.0},
	},
	Temperature: {
		{ID: Celsius, Label: "Celsius (°C)"},
		{ID: Fahrenheit, Label: "Fahrenheit (°F)"},
		{ID: Kelvin, Label: "Kelvin (K)"},
	},
}

// Categories returns every supported category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps user input to a Category. It is the boundary check that
// keeps unknown categories away from UnitsFor.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := table[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// UnitsFor returns the units of c in stable order. It panics for a category
// that is not registered.
func UnitsFor(c Category) []UnitDefinition {
	defs, ok := table[c]
	if !ok {
		panic(fmt.Sprintf("units: unknown category %q", c))
	}
	out := make([]UnitDefinition, len(defs))
	copy(out, defs)
	return out
}

// Lookup finds the unit with the given id inside c.
func Lookup(c Category, id string) (UnitDefinition, bool) {
	for _, u := range table[c] {
		if u.ID == id {
			return u, true
		}
	}
	return UnitDefinition{}, false
}

// BaseUnit returns the ratio-1 unit of a linear category, or Celsius for
// temperature, which acts as the conversion pivot.
func BaseUnit(c Category) UnitDefinition {
	if c == Temperature {
		u, _ := Lookup(c, Celsius)
		return u
	}
	for _, u := range UnitsFor(c) {
		if u.RatioToBase == 1 {
			return u
		}
	}
	panic(fmt.Sprintf("units: category %q has no base unit", c))
}
