package domain

type unitPair struct {
	source, target Unit
}

// temperatureFormulas holds the affine conversions between temperature
// scales. Pairs not listed fall back to linear scaling, which is the identity
// for a temperature unit converted to itself.
var temperatureFormulas = map[unitPair]func(float64) float64{
	{Fahrenheit, Celsius}: func(a float64) float64 { return (a - 32) * 5 / 9 },
	{Celsius, Fahrenheit}: func(a float64) float64 { return a*9/5 + 32 },
	{Kelvin, Celsius}:     func(a float64) float64 { return a - 273.15 },
	{Celsius, Kelvin}:     func(a float64) float64 { return a + 273.15 },
	{Fahrenheit, Kelvin}:  func(a float64) float64 { return (a + 459.67) * 5 / 9 },
	{Kelvin, Fahrenheit}:  func(a float64) float64 { return a*9/5 - 459.67 },
}

// Convert converts amount from source to target. Both units must share a
// category; callers check that with [Unit.CanConvert].
func Convert(source, target Unit, amount float64) float64 {
	if f, ok := temperatureFormulas[unitPair{source, target}]; ok {
		return f(amount)
	}
	return source.StandardUnits() * amount / target.StandardUnits()
}
