package rating

// Percentage thresholds for the overall rating. The score is the sum of
// per-aspect scores (unrated aspects contribute 0) over the maximum
// possible score for the family.
const (
	largelyThresholdPct  = 70
	somewhatThresholdPct = 30
	maxAspectScore       = 2
)

// Overall collapses a family of aspect ratings into one overall level using
// the percentage-threshold policy: pct = score / (2*n) * 100, then >=70 is
// Largely in Place, >=30 is Somewhat in Place, otherwise Not in Place.
//
// A family with no aspects, or with every aspect unrated, has no overall
// rating and yields nil. The result does not depend on the order of levels.
func Overall(levels []*Level) *Level {
	if len(levels) == 0 {
		return nil
	}

	score := 0
	rated := 0
	for _, l := range levels {
		if l == nil {
			continue
		}
		rated++
		score += l.Score()
	}
	if rated == 0 {
		return nil
	}

	pct := float64(score) / float64(len(levels)*maxAspectScore) * 100

	result := NotInPlace
	switch {
	case pct >= largelyThresholdPct:
		result = LargelyInPlace
	case pct >= somewhatThresholdPct:
		result = SomewhatInPlace
	}
	return &result
}

// Score returns the summed numeric score for a family of aspect ratings.
// Unrated aspects contribute 0.
func Score(levels []*Level) int {
	total := 0
	for _, l := range levels {
		if l != nil {
			total += l.Score()
		}
	}
	return total
}
