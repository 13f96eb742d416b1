// Package domain models natural-language unit conversion requests.
//
// # Request Grammar
//
// A request is a single line of the form
//
//	"<number> <source unit> <connector> <target unit>"  →  e.g. "100 celsius to fahrenheit"
//
// The number is any run of digits, dots and minus signs. It is matched
// lexically first and only converted to a float64 after both units resolve,
// so "1.2.3 m to km" is a number-format failure while "1.2.3 m to g" is still
// an impossible conversion. The source phrase may contain spaces ("degrees
// Celsius") and is matched as short as possible. The connector is any single
// word and is discarded. The target is one word, optionally preceded by
// "degree " or "degrees ". Matching is case-insensitive.
//
// # Unit Registry
//
// Units are grouped into three categories. Length and weight convert linearly
// through a base unit (meter, gram):
//
//	m 1 | km 1000 | cm 0.01 | mm 0.001 | mi 1609.35 | yd 0.9144 | ft 0.3048 | in 0.0254
//	g 1 | kg 1000 | mg 0.001 | lb 453.592 | oz 28.3495
//
// Temperature units (C, F, K) have no common scale and convert with affine
// formulas, see [Convert]. Only temperature accepts negative amounts.
//
// Each unit carries an ordered list of names: symbol, singular, plural, then
// match-only alternates ("celsius", "dc"). Lookup is case-insensitive and exact.
// Duplicate names across units panic at package initialization.
//
// # Responses
//
// Every evaluated line yields one of four responses:
//
//	"Parse error\n"
//	"Conversion from meters to grams is impossible\n"
//	"Length shouldn't be negative\n"
//	"100.0 degrees Celsius is 212.0 degrees Fahrenheit\n"
//
// Numbers are rendered the way the JVM prints a double ("100.0", "1.0E7"),
// including binary floating point artifacts. The singular unit name is used
// only when the amount is exactly 1.0.
//
// # ID Generation
//
// Conversion event IDs are deterministic SHA-256 hashes of the input line, so
// replaying a request topic produces the same keys. See [generateID].
package domain
