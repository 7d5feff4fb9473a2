// Package storage defines the persistence contract for assessment ratings.
//
// The store is a single ratings table addressed by the natural key
// (project_name, assessment_date, pillar_title, practice_name). Aspect rows
// encode their parent practice in a colon-delimited composite practice_name
// ("Infrastructure:Scalable Infrastructure") while the practice rollup row
// uses the bare practice key. The composite scheme is kept for wire
// compatibility with rows written by the original application.
package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/openassess/maturity/internal/assessment/rating"
)

// ErrNotFound indicates a requested rating row is missing.
var ErrNotFound = errors.New("rating not found")

// aspectDelimiter separates the practice key from the aspect name inside a
// composite practice_name.
const aspectDelimiter = ":"

// Rating is one persisted rating row.
type Rating struct {
	// Project is the project_name column (at most 20 characters by UI
	// convention; the store does not enforce it).
	Project string
	// Date is the assessment_date column as an ISO date string.
	Date string
	// Pillar is the pillar_title column, one of the six fixed titles.
	Pillar string
	// Practice is the practice_name column: a bare practice key or a
	// composite "Practice:Aspect" value.
	Practice string
	// Level is the parsed rating, nil when unrated or when the stored
	// value is not one of the three known levels.
	Level *rating.Level
	// Findings is the free-text findings column, nil when absent.
	Findings *string
}

// Filters selects rating rows for one project and assessment date.
type Filters struct {
	// Project and Date are required.
	Project string
	Date    string
	// Pillar optionally restricts rows to one pillar.
	Pillar string
	// Practice optionally matches one exact practice_name.
	Practice string
	// PracticePrefix optionally matches composite aspect rows belonging to
	// one practice ("Infrastructure" matches "Infrastructure:%").
	PracticePrefix string
}

// RatingStore is the gateway the assessment core persists through.
//
// FetchRatings returns zero or more rows; an empty result is a first-time
// assessment, not an error. UpsertRatings applies the whole batch in one
// transaction with the natural key as the conflict target: either every row
// lands or none do.
type RatingStore interface {
	FetchRatings(ctx context.Context, filters Filters) ([]Rating, error)
	UpsertRatings(ctx context.Context, ratings []Rating) error
}

// AspectKey builds the composite practice_name for one aspect.
func AspectKey(practiceKey, aspectName string) string {
	return practiceKey + aspectDelimiter + aspectName
}

// SplitAspectKey splits a composite practice_name into its practice key and
// aspect name. It reports ok=false for bare practice names. Aspect names may
// themselves contain colons, so only the first delimiter splits.
func SplitAspectKey(name string) (practiceKey, aspectName string, ok bool) {
	practiceKey, aspectName, ok = strings.Cut(name, aspectDelimiter)
	if !ok || practiceKey == "" || aspectName == "" {
		return "", "", false
	}
	return practiceKey, aspectName, true
}

// IsAspectRow reports whether a practice_name refers to an aspect rather
// than a practice rollup.
func IsAspectRow(name string) bool {
	_, _, ok := SplitAspectKey(name)
	return ok
}
