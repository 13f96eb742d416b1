package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrParse is returned when a line does not match the request grammar.
	ErrParse = errors.New("parse error")

	// ErrNumberFormat is returned when the matched number text is not a valid
	// float, e.g. "1.2.3" or "--5".
	ErrNumberFormat = errors.New("invalid number")
)

// requestRe parses "<number> <source> <connector> <target>", e.g.
// "100 degrees Celsius to degrees Fahrenheit" -> 100, degrees Celsius, degrees Fahrenheit.
// The source group is lazy so the shortest source phrase that lets the rest
// of the line match wins.
var requestRe = regexp.MustCompile(`(?i)^(?P<number>[-\d.]+) (?P<source>[\w ]+?) (?:\w+) (?P<target>(?:degrees? )?\w+)$`)

var (
	numberGroup = requestRe.SubexpIndex("number")
	sourceGroup = requestRe.SubexpIndex("source")
	targetGroup = requestRe.SubexpIndex("target")
)

// Request is the lexical breakdown of a conversion line.
type Request struct {
	Number string // unparsed; see [Request.Amount]
	Source string
	Target string
}

// ParseRequest splits a line into number text, source phrase and target phrase.
func ParseRequest(input string) (Request, error) {
	m := requestRe.FindStringSubmatch(input)
	if m == nil {
		return Request{}, fmt.Errorf("parse request %q: %w", input, ErrParse)
	}
	return Request{
		Number: m[numberGroup],
		Source: m[sourceGroup],
		Target: m[targetGroup],
	}, nil
}

// Amount parses the number text as a float64.
func (r Request) Amount() (float64, error) {
	v, err := strconv.ParseFloat(r.Number, 64)
	// Out-of-range literals saturate to ±Inf or 0 instead of failing.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse amount %q: %w", r.Number, ErrNumberFormat)
	}
	return v, nil
}
