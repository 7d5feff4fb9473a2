package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UnratedLabel is shown for items with no rating yet.
const UnratedLabel = "Unrated"

var percentPrinter = message.NewPrinter(language.English)

// LevelClass maps a rating label to its badge CSS class.
func LevelClass(label string) string {
	switch label {
	case "Largely in Place":
		return "level level-largely"
	case "Somewhat in Place":
		return "level level-somewhat"
	case "Not in Place":
		return "level level-not"
	}
	return "level level-unrated"
}

// LevelLabel normalizes an empty rating label to UnratedLabel.
func LevelLabel(label string) string {
	if label == "" {
		return UnratedLabel
	}
	return label
}

// FormatPercent renders a score out of max as a percentage with one decimal
// place, e.g. "71.4%". A zero max formats as "0.0%".
func FormatPercent(score, max int) string {
	if max <= 0 {
		return percentPrinter.Sprintf("%.1f%%", 0.0)
	}
	return percentPrinter.Sprintf("%.1f%%", float64(score)/float64(max)*100)
}
