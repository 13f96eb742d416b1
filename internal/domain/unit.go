package domain

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unit identifies one entry of the unit registry. The zero Unit means
// "no unit" and is what a failed resolution yields.
type Unit int

const (
	Meter Unit = iota + 1
	Kilometer
	Centimeter
	Millimeter
	Mile
	Yard
	Foot
	Inch

	Gram
	Kilogram
	Milligram
	Pound
	Ounce

	Celsius
	Fahrenheit
	Kelvin
)

type unitDef struct {
	unit     Unit
	category Category
	// names: symbol, singular, plural, then match-only alternates.
	names         []string
	standardUnits float64
}

// registry is ordered; resolution walks it front to back.
var registry = []unitDef{
	{Meter, Length, []string{"m", "meter", "meters"}, 1.0},
	{Kilometer, Length, []string{"km", "kilometer", "kilometers"}, 1000.0},
	{Centimeter, Length, []string{"cm", "centimeter", "centimeters"}, 0.01},
	{Millimeter, Length, []string{"mm", "millimeter", "millimeters"}, 0.001},
	{Mile, Length, []string{"mi", "mile", "miles"}, 1609.35},
	{Yard, Length, []string{"yd", "yard", "yards"}, 0.9144},
	{Foot, Length, []string{"ft", "foot", "feet"}, 0.3048},
	{Inch, Length, []string{"in", "inch", "inches"}, 0.0254},

	{Gram, Weight, []string{"g", "gram", "grams"}, 1.0},
	{Kilogram, Weight, []string{"kg", "kilogram", "kilograms"}, 1000.0},
	{Milligram, Weight, []string{"mg", "milligram", "milligrams"}, 0.001},
	{Pound, Weight, []string{"lb", "pound", "pounds"}, 453.592},
	{Ounce, Weight, []string{"oz", "ounce", "ounces"}, 28.3495},

	{Celsius, Temperature, []string{"c", "degree Celsius", "degrees Celsius", "celsius", "dc"}, 1.0},
	{Fahrenheit, Temperature, []string{"f", "degree Fahrenheit", "degrees Fahrenheit", "fahrenheit", "df"}, 1.0},
	{Kelvin, Temperature, []string{"k", "Kelvin", "Kelvins"}, 1.0},
}

var (
	unitDefs  = indexUnits(registry)
	nameIndex = mustIndexNames(registry)
)

func indexUnits(defs []unitDef) map[Unit]unitDef {
	m := make(map[Unit]unitDef, len(defs))
	for _, d := range defs {
		m[d.unit] = d
	}
	return m
}

// indexNames maps every case-folded name variant to its unit. A variant
// claimed by two different units is reported as an error.
func indexNames(defs []unitDef) (map[string]Unit, error) {
	idx := make(map[string]Unit)
	for _, d := range defs {
		for _, name := range d.names {
			key := foldName(name)
			if owner, ok := idx[key]; ok {
				if owner != d.unit {
					return nil, fmt.Errorf("unit name %q registered for both %s and %s", name, owner, d.unit)
				}
				continue
			}
			idx[key] = d.unit
		}
	}
	return idx, nil
}

func mustIndexNames(defs []unitDef) map[string]Unit {
	idx, err := indexNames(defs)
	if err != nil {
		panic("domain: " + err.Error())
	}
	return idx
}

func foldName(name string) string {
	return cases.Lower(language.Und).String(name)
}

// Units returns every registered unit in registry order.
func Units() []Unit {
	units := make([]Unit, len(registry))
	for i, d := range registry {
		units[i] = d.unit
	}
	return units
}

// Valid reports whether u is a registered unit.
func (u Unit) Valid() bool {
	_, ok := unitDefs[u]
	return ok
}

func (u Unit) String() string {
	if !u.Valid() {
		return "none"
	}
	return u.Symbol()
}

// Category returns the category the unit belongs to.
func (u Unit) Category() Category {
	return unitDefs[u].category
}

// Names returns a copy of the unit's name variants.
func (u Unit) Names() []string {
	return append([]string(nil), unitDefs[u].names...)
}

func (u Unit) Symbol() string   { return u.name(0) }
func (u Unit) Singular() string { return u.name(1) }
func (u Unit) Plural() string   { return u.name(2) }

func (u Unit) name(i int) string {
	names := unitDefs[u].names
	if i >= len(names) {
		return ""
	}
	return names[i]
}

// StandardUnits is how many base units of the category one of u equals.
// It is meaningless for temperature.
func (u Unit) StandardUnits() float64 {
	return unitDefs[u].standardUnits
}

// CanConvert reports whether both units share a category.
func (u Unit) CanConvert(to Unit) bool {
	return u.Valid() && to.Valid() && u.Category() == to.Category()
}

// OnlyPositive reports whether negative amounts must be rejected.
func (u Unit) OnlyPositive() bool {
	return !u.Category().AllowNegative()
}

// Render formats amount followed by the unit name, singular only when
// amount is exactly 1.0.
func (u Unit) Render(amount float64) string {
	name := u.Plural()
	if amount == 1.0 {
		name = u.Singular()
	}
	return FormatNumber(amount) + " " + name
}
