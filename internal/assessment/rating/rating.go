// Package rating defines the three-level maturity rating enum, the click
// cycle that advances a rating, and the calculator that collapses a family
// of aspect ratings into one overall rating.
package rating

// Level is one qualitative maturity rating. The string values are the wire
// format stored in the ratings table and must not change.
type Level string

const (
	// LargelyInPlace indicates the capability is mostly established.
	LargelyInPlace Level = "Largely in Place"
	// SomewhatInPlace indicates the capability is partially established.
	SomewhatInPlace Level = "Somewhat in Place"
	// NotInPlace indicates the capability is absent.
	NotInPlace Level = "Not in Place"
)

// order is the click-cycle order; an unrated item cycles to order[0] first.
var order = [3]Level{LargelyInPlace, SomewhatInPlace, NotInPlace}

// Levels returns the three levels in cycle order.
func Levels() []Level {
	return []Level{order[0], order[1], order[2]}
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	switch l {
	case LargelyInPlace, SomewhatInPlace, NotInPlace:
		return true
	}
	return false
}

// Score maps a level to its numeric contribution: 2, 1 or 0. Unknown levels
// score 0.
func (l Level) Score() int {
	switch l {
	case LargelyInPlace:
		return 2
	case SomewhatInPlace:
		return 1
	}
	return 0
}

// Parse validates a stored rating string. Unknown values, including the
// empty string, report ok=false; callers must treat those rows as unrated
// rather than failing.
func Parse(value string) (Level, bool) {
	l := Level(value)
	if !l.Valid() {
		return "", false
	}
	return l, true
}

// ParseNullable converts a stored nullable rating string to a level pointer.
// Nil input and unknown values both yield nil.
func ParseNullable(value *string) *Level {
	if value == nil {
		return nil
	}
	l, ok := Parse(*value)
	if !ok {
		return nil
	}
	return &l
}

// Next returns the level after current in the cycle, wrapping around. A nil
// current is "before first", so the first click always yields
// LargelyInPlace. Total over its domain.
func Next(current *Level) Level {
	index := -1
	if current != nil {
		for i, l := range order {
			if l == *current {
				index = i
				break
			}
		}
	}
	return order[(index+1)%len(order)]
}
