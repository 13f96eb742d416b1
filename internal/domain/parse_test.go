package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Request
	}{
		{"symbols", "100 c to f", Request{Number: "100", Source: "c", Target: "f"}},
		{"words", "1 meter to meters", Request{Number: "1", Source: "meter", Target: "meters"}},
		{"negative decimal", "-12.5 km to mi", Request{Number: "-12.5", Source: "km", Target: "mi"}},
		{"degrees on both sides", "100 degrees Celsius to degrees Fahrenheit", Request{Number: "100", Source: "degrees Celsius", Target: "degrees Fahrenheit"}},
		{"singular degree prefix", "1 degree celsius to degree kelvin", Request{Number: "1", Source: "degree celsius", Target: "degree kelvin"}},
		{"any connector word", "3 feet in inches", Request{Number: "3", Source: "feet", Target: "inches"}},
		{"mixed case", "5 KM TO M", Request{Number: "5", Source: "KM", Target: "M"}},
		{"DEGREES prefix uppercase", "5 k to DEGREES c", Request{Number: "5", Source: "k", Target: "DEGREES c"}},
		{"multi-word source", "5 square meters to feet", Request{Number: "5", Source: "square meters", Target: "feet"}},
		// The lazy source grows until a one-word target fits at the end.
		{"two-word target shifts into source", "5 m to square feet", Request{Number: "5", Source: "m to", Target: "feet"}},
		{"malformed number kept lexically", "1.2.3 m to km", Request{Number: "1.2.3", Source: "m", Target: "km"}},
		{"double minus kept lexically", "--5 m to km", Request{Number: "--5", Source: "m", Target: "km"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequest(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestParseRequest_NoMatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single word", "banana"},
		{"empty", ""},
		{"missing connector", "100 c f"},
		{"missing number", "c to f"},
		{"letters in number", "1e5 m to km"},
		{"trailing space", "100 c to f "},
		{"leading space", " 100 c to f"},
		{"three tokens", "5 m to"},
		{"punctuation", "5 m to km!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestRequest_Amount(t *testing.T) {
	tests := []struct {
		number   string
		expected float64
	}{
		{"100", 100},
		{"-5", -5},
		{"0.25", 0.25},
		{".5", 0.5},
		{"5.", 5},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			v, err := Request{Number: tt.number}.Amount()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestRequest_Amount_Invalid(t *testing.T) {
	for _, number := range []string{"1.2.3", "--5", "-", ".", "5-3", "..", "-.-"} {
		t.Run(number, func(t *testing.T) {
			_, err := Request{Number: number}.Amount()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNumberFormat)
		})
	}
}

func TestRequest_Amount_OutOfRangeSaturates(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)

	v, err := Request{Number: huge}.Amount()
	require.NoError(t, err)
	assert.Equal(t, "Infinity", FormatNumber(v))
}
