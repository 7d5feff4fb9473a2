// Package templates renders the server-side HTML pages. Components are
// plain templ.Component values built in Go; the views they take are
// prepared by the web handlers.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AppName is the product name shown in page titles and the header.
const AppName = "AI Maturity Assessment"

// ComposePageTitle appends the brand suffix unless the title already
// carries it.
func ComposePageTitle(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return AppName
	}
	if strings.HasSuffix(base, "| "+AppName) {
		return base
	}
	return base + " | " + AppName
}

// htmlWriter tracks the first write error so render bodies stay linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) writef(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func esc(s string) string {
	return html.EscapeString(s)
}

const baseStyles = `body{font-family:system-ui,sans-serif;margin:0;background:#f7f7f8;color:#1f2328}
header{background:#1f2328;color:#fff;padding:1rem 2rem}
main{max-width:72rem;margin:0 auto;padding:1.5rem 2rem}
.notice{background:#fff3cd;border:1px solid #e6c200;border-radius:6px;padding:.75rem 1rem;margin-bottom:1rem}
.scope-form{display:flex;gap:.75rem;margin-bottom:1.5rem;align-items:end}
.pillars{display:grid;grid-template-columns:repeat(auto-fill,minmax(20rem,1fr));gap:1rem}
.pillar{background:#fff;border-radius:8px;padding:1rem;border-top:6px solid}
.practice{display:flex;justify-content:space-between;align-items:center;padding:.4rem 0}
.level{display:inline-block;border-radius:999px;padding:.15rem .6rem;font-size:.8rem}
.level-largely{background:#d1f0d1}
.level-somewhat{background:#fff3cd}
.level-not{background:#f8d7da}
.level-unrated{background:#e9ecef}
.aspects{width:100%;border-collapse:collapse;background:#fff}
.aspects td,.aspects th{border-bottom:1px solid #e1e4e8;padding:.6rem;text-align:left;vertical-align:top}
.overall{margin:1rem 0;font-size:1.05rem}`

// Layout wraps a page body in the shared document chrome. The notice, when
// non-empty, renders as a validation banner above the body.
func Layout(title, notice string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
		hw.writef("<title>%s</title>\n", esc(ComposePageTitle(title)))
		hw.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		hw.writef("<style>%s</style>\n", baseStyles)
		hw.raw("</head>\n<body>\n")
		hw.writef("<header><strong>%s</strong></header>\n<main>\n", esc(AppName))
		if notice != "" {
			hw.writef("<div class=\"notice\">%s</div>\n", esc(notice))
		}
		if hw.err != nil {
			return hw.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		hw.raw("</main>\n</body>\n</html>\n")
		return hw.err
	})
}
