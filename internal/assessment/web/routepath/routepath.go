// Package routepath centralizes web route patterns and URL builders so
// handlers and templates never drift apart.
package routepath

import "net/url"

// Root is the dashboard page.
const Root = "/"

// Health is the liveness probe endpoint.
const Health = "/up"

// Route patterns registered on the mux. {slug} is a practice slug and
// {aspect} an escaped aspect name.
const (
	PracticePattern         = "/practices/{slug}"
	PracticeCyclePattern    = "/practices/{slug}/aspects/{aspect}/cycle"
	PracticeFindingsPattern = "/practices/{slug}/aspects/{aspect}/findings"
	PracticeSavePattern     = "/practices/{slug}/save"
	RatingsCycle            = "/ratings/cycle"
)

// Practice builds the detail page URL for a practice slug.
func Practice(slug string) string {
	return "/practices/" + url.PathEscape(slug)
}

// PracticeCycle builds the cycle action URL for one aspect.
func PracticeCycle(slug, aspect string) string {
	return "/practices/" + url.PathEscape(slug) + "/aspects/" + url.PathEscape(aspect) + "/cycle"
}

// PracticeFindings builds the findings action URL for one aspect.
func PracticeFindings(slug, aspect string) string {
	return "/practices/" + url.PathEscape(slug) + "/aspects/" + url.PathEscape(aspect) + "/findings"
}

// PracticeSave builds the batch save action URL for a practice family.
func PracticeSave(slug string) string {
	return "/practices/" + url.PathEscape(slug) + "/save"
}

// WithScope appends the project and date query parameters that every page
// link must round-trip.
func WithScope(path, project, date string) string {
	if project == "" && date == "" {
		return path
	}
	values := url.Values{}
	if project != "" {
		values.Set("project", project)
	}
	if date != "" {
		values.Set("date", date)
	}
	return path + "?" + values.Encode()
}
