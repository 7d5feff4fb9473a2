package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PracticeRow is one practice line on a pillar card. Families link to their
// detail page; leaves carry a cycle action instead.
type PracticeRow struct {
	Name     string
	Level    string // canonical rating label, empty when unrated
	URL      string // detail page link, empty for leaf practices
	CycleURL string // leaf cycle action, empty for families
	Key      string // practice key posted by the leaf cycle form
}

// PillarCard is one pillar on the dashboard.
type PillarCard struct {
	Title       string
	Description string
	Color       string
	Rows        []PracticeRow
}

// DashboardView is everything the dashboard page renders.
type DashboardView struct {
	Project string
	Date    string
	Notice  string
	Pillars []PillarCard
}

// Dashboard renders the six-pillar overview page.
func Dashboard(view DashboardView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw("<form class=\"scope-form\" method=\"get\" action=\"/\">\n")
		hw.writef("<label>Project <input name=\"project\" maxlength=\"20\" value=\"%s\"></label>\n", esc(view.Project))
		hw.writef("<label>Assessment date <input type=\"date\" name=\"date\" value=\"%s\"></label>\n", esc(view.Date))
		hw.raw("<button type=\"submit\">Load</button>\n</form>\n")

		hw.raw("<div class=\"pillars\">\n")
		for _, pillar := range view.Pillars {
			hw.writef("<section class=\"pillar\" style=\"border-top-color:%s\">\n", esc(pillar.Color))
			hw.writef("<h2>%s</h2>\n<p>%s</p>\n", esc(pillar.Title), esc(pillar.Description))
			for _, row := range pillar.Rows {
				hw.raw("<div class=\"practice\">\n")
				if row.URL != "" {
					hw.writef("<a href=\"%s\">%s</a>\n", esc(row.URL), esc(row.Name))
				} else {
					hw.writef("<span>%s</span>\n", esc(row.Name))
				}
				label := LevelLabel(row.Level)
				if row.CycleURL != "" {
					hw.writef("<form method=\"post\" action=\"%s\">\n", esc(row.CycleURL))
					hw.writef("<input type=\"hidden\" name=\"practice\" value=\"%s\">\n", esc(row.Key))
					hw.writef("<button type=\"submit\" class=\"%s\">%s</button>\n", esc(LevelClass(row.Level)), esc(label))
					hw.raw("</form>\n")
				} else {
					hw.writef("<span class=\"%s\">%s</span>\n", esc(LevelClass(row.Level)), esc(label))
				}
				hw.raw("</div>\n")
			}
			hw.raw("</section>\n")
		}
		hw.raw("</div>\n")
		return hw.err
	})
	return Layout("Dashboard", view.Notice, body)
}
