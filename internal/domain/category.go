package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups units that can be converted into each other.
type Category int

const (
	Length Category = iota + 1
	Weight
	Temperature
)

var categoryNames = map[Category]string{
	Length:      "length",
	Weight:      "weight",
	Temperature: "temperature",
}

// categoryTitles holds the capitalized display names, computed once because
// a cases.Caser must not be shared between goroutines.
var categoryTitles = func() map[Category]string {
	title := cases.Title(language.English)
	titles := make(map[Category]string, len(categoryNames))
	for c, name := range categoryNames {
		titles[c] = title.String(name)
	}
	return titles
}()

// String returns the lowercase category name, e.g. "length".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Title returns the capitalized category name used in responses, e.g. "Length".
func (c Category) Title() string {
	if title, ok := categoryTitles[c]; ok {
		return title
	}
	return "Unknown"
}

// AllowNegative reports whether amounts below zero are meaningful.
// Only temperature scales go below zero.
func (c Category) AllowNegative() bool {
	return c == Temperature
}
