package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		source   Unit
		target   Unit
		amount   float64
		expected float64
	}{
		{"C to F freezing", Celsius, Fahrenheit, 0, 32},
		{"C to F boiling", Celsius, Fahrenheit, 100, 212},
		{"F to C freezing", Fahrenheit, Celsius, 32, 0},
		{"C to K zero", Celsius, Kelvin, 0, 273.15},
		{"K to C absolute zero", Kelvin, Celsius, 0, -273.15},
		{"K to F absolute zero", Kelvin, Fahrenheit, 0, -459.67},
		{"F to K absolute zero", Fahrenheit, Kelvin, -459.67, 0},
		{"C to F crossover", Celsius, Fahrenheit, -40, -40},
		{"km to m", Kilometer, Meter, 1, 1000},
		{"mi to m", Mile, Meter, 1, 1609.35},
		{"kg to g", Kilogram, Gram, 1, 1000},
		{"lb to g", Pound, Gram, 2, 907.184},
		{"same unit", Meter, Meter, 3, 3},
		{"same temperature unit", Celsius, Celsius, -12.5, -12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Convert(tt.source, tt.target, tt.amount))
		})
	}
}

func TestConvert_PoundToKilogram(t *testing.T) {
	assert.InDelta(t, 0.453592, Convert(Pound, Kilogram, 1), 1e-12)
}

func TestConvert_RoundTrip(t *testing.T) {
	amounts := []float64{0, 1, 37.5, 1234.5678, 1e6}

	for _, u := range Units() {
		for _, v := range Units() {
			if !u.CanConvert(v) {
				continue
			}
			for _, a := range amounts {
				t.Run(fmt.Sprintf("%s-%s-%g", u, v, a), func(t *testing.T) {
					back := Convert(v, u, Convert(u, v, a))
					assert.InDelta(t, a, back, 1e-9*math.Max(1, math.Abs(a)))
				})
			}
		}
	}
}

func TestConvert_TemperatureRoundTripBelowZero(t *testing.T) {
	temps := []Unit{Celsius, Fahrenheit, Kelvin}
	for _, u := range temps {
		for _, v := range temps {
			back := Convert(v, u, Convert(u, v, -40))
			assert.InDelta(t, -40, back, 1e-9*40, "%s -> %s -> %s", u, v, u)
		}
	}
}
