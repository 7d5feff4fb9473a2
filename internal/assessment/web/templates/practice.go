package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AspectRow is one aspect line on a practice detail page.
type AspectRow struct {
	Name        string
	Description string
	Level       string // canonical rating label, empty when unrated
	Findings    string
	CycleURL    string
	FindingsURL string
}

// PracticeView is everything a practice detail page renders.
type PracticeView struct {
	Project      string
	Date         string
	Notice       string
	PillarTitle  string
	PillarColor  string
	PracticeName string
	Overall      string // canonical rating label, empty when unrated
	Percent      string // formatted family score, empty when unrated
	Rows         []AspectRow
	SaveURL      string
	BackURL      string
}

// PracticePage renders one aspect family with its rollup score.
func PracticePage(view PracticeView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.writef("<p><a href=\"%s\">&larr; Dashboard</a></p>\n", esc(view.BackURL))
		hw.writef("<h2 style=\"border-left:6px solid %s;padding-left:.5rem\">%s &middot; %s</h2>\n",
			esc(view.PillarColor), esc(view.PillarTitle), esc(view.PracticeName))

		overall := LevelLabel(view.Overall)
		hw.writef("<p class=\"overall\">Overall: <span class=\"%s\">%s</span>", esc(LevelClass(view.Overall)), esc(overall))
		if view.Percent != "" {
			hw.writef(" (%s)", esc(view.Percent))
		}
		hw.raw("</p>\n")

		hw.raw("<table class=\"aspects\">\n<tr><th>Aspect</th><th>Rating</th><th>Findings</th></tr>\n")
		for _, row := range view.Rows {
			hw.raw("<tr>\n")
			hw.writef("<td><strong>%s</strong><br><small>%s</small></td>\n", esc(row.Name), esc(row.Description))

			hw.raw("<td>\n")
			hw.writef("<form method=\"post\" action=\"%s\">\n", esc(row.CycleURL))
			hw.writef("<button type=\"submit\" class=\"%s\">%s</button>\n", esc(LevelClass(row.Level)), esc(LevelLabel(row.Level)))
			hw.raw("</form>\n</td>\n")

			hw.raw("<td>\n")
			hw.writef("<form method=\"post\" action=\"%s\">\n", esc(row.FindingsURL))
			hw.writef("<textarea name=\"findings\" rows=\"2\">%s</textarea>\n", esc(row.Findings))
			hw.raw("<button type=\"submit\">Save findings</button>\n</form>\n</td>\n")
			hw.raw("</tr>\n")
		}
		hw.raw("</table>\n")

		hw.writef("<form method=\"post\" action=\"%s\">\n", esc(view.SaveURL))
		for _, row := range view.Rows {
			hw.writef("<input type=\"hidden\" name=\"aspect\" value=\"%s\">\n", esc(row.Name))
			hw.writef("<input type=\"hidden\" name=\"rating\" value=\"%s\">\n", esc(row.Level))
			hw.writef("<input type=\"hidden\" name=\"findings\" value=\"%s\">\n", esc(row.Findings))
		}
		hw.raw("<p><button type=\"submit\">Save assessment</button></p>\n</form>\n")
		return hw.err
	})
	return Layout(view.PracticeName, view.Notice, body)
}
