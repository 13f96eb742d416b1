package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when a name matches no registered unit.
var ErrUnknownUnit = errors.New("unknown unit")

// Resolve maps a free-text unit name to a registered unit. Matching is exact
// and case-insensitive against every name variant; "Kilometers", "km" and
// "KM" all resolve to Kilometer.
func Resolve(name string) (Unit, error) {
	if u, ok := nameIndex[foldName(name)]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("resolve %q: %w", name, ErrUnknownUnit)
}
