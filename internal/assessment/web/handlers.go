// Package web serves the server-rendered assessment pages.
package web

import (
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/openassess/maturity/internal/assessment"
	"github.com/openassess/maturity/internal/assessment/rating"
	"github.com/openassess/maturity/internal/assessment/taxonomy"
	"github.com/openassess/maturity/internal/assessment/web/routepath"
	"github.com/openassess/maturity/internal/assessment/web/templates"
	platformerrors "github.com/openassess/maturity/internal/platform/errors"
)

// scopeNotice is shown when the dashboard loads without a usable scope.
const scopeNotice = "Enter a project name and assessment date to load an assessment."

// Handlers serves the web pages over the assessment service.
type Handlers struct {
	svc *assessment.Service
}

// NewHandlers creates web handlers over the assessment service.
func NewHandlers(svc *assessment.Service) *Handlers {
	return &Handlers{svc: svc}
}

// Register attaches the web routes to mux.
func Register(mux *http.ServeMux, h *Handlers) {
	if mux == nil || h == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.PracticePattern, h.handlePractice)
	mux.HandleFunc(http.MethodPost+" "+routepath.PracticeCyclePattern, h.handleAspectCycle)
	mux.HandleFunc(http.MethodPost+" "+routepath.PracticeFindingsPattern, h.handleAspectFindings)
	mux.HandleFunc(http.MethodPost+" "+routepath.PracticeSavePattern, h.handleFamilySave)
	mux.HandleFunc(http.MethodPost+" "+routepath.RatingsCycle, h.handleRatingsCycle)
}

// scope extracts the project/date pair that every page round-trips. POST
// forms may carry them as form values instead of query parameters.
func scope(r *http.Request) (project, date string) {
	project = r.FormValue("project")
	date = r.FormValue("date")
	return project, date
}

func levelLabel(level *rating.Level) string {
	if level == nil {
		return ""
	}
	return string(*level)
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := platformerrors.CodeOf(err)
	log.Printf("[WEB] %s %s: %v", r.Method, r.URL.Path, err)
	http.Error(w, string(code), code.HTTPStatus())
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("[WEB] write health response: %v", err)
	}
}

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	project, date := scope(r)

	view := templates.DashboardView{Project: project, Date: date}
	if view.Date == "" {
		view.Date = time.Now().UTC().Format("2006-01-02")
	}

	if project == "" || date == "" {
		view.Notice = scopeNotice
		view.Pillars = unratedPillars()
		templ.Handler(templates.Dashboard(view)).ServeHTTP(w, r)
		return
	}

	snapshot, err := h.svc.Snapshot(r.Context(), project, date)
	if err != nil {
		if code := platformerrors.CodeOf(err); code.HTTPStatus() == http.StatusBadRequest {
			view.Notice = err.Error()
			view.Pillars = unratedPillars()
			templ.Handler(templates.Dashboard(view)).ServeHTTP(w, r)
			return
		}
		h.renderError(w, r, err)
		return
	}

	for _, pillar := range snapshot.Pillars {
		card := templates.PillarCard{
			Title:       pillar.Pillar.Title,
			Description: pillar.Pillar.Description,
			Color:       pillar.Pillar.Color,
		}
		for _, status := range pillar.Practices {
			card.Rows = append(card.Rows, practiceRow(status.Practice, levelLabel(status.Level), project, date))
		}
		view.Pillars = append(view.Pillars, card)
	}
	templ.Handler(templates.Dashboard(view)).ServeHTTP(w, r)
}

func practiceRow(practice taxonomy.Practice, label, project, date string) templates.PracticeRow {
	row := templates.PracticeRow{
		Name:  practice.Name,
		Level: label,
		Key:   practice.Key,
	}
	if practice.HasAspects() {
		row.URL = routepath.WithScope(routepath.Practice(practice.Slug), project, date)
	} else {
		row.CycleURL = routepath.WithScope(routepath.RatingsCycle, project, date)
	}
	return row
}

// unratedPillars renders the full taxonomy with no persisted state, used
// before a scope is chosen.
func unratedPillars() []templates.PillarCard {
	var cards []templates.PillarCard
	for _, pillar := range taxonomy.Pillars() {
		card := templates.PillarCard{
			Title:       pillar.Title,
			Description: pillar.Description,
			Color:       pillar.Color,
		}
		for _, practice := range pillar.Practices {
			card.Rows = append(card.Rows, templates.PracticeRow{Name: practice.Name, Key: practice.Key})
		}
		cards = append(cards, card)
	}
	return cards
}

func (h *Handlers) handlePractice(w http.ResponseWriter, r *http.Request) {
	project, date := scope(r)
	if project == "" || date == "" {
		http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
		return
	}

	pillar, practice, ok := taxonomy.PracticeBySlug(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	detail, err := h.svc.PracticeDetail(r.Context(), project, date, pillar.Title, practice.Key)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	view := templates.PracticeView{
		Project:      project,
		Date:         date,
		PillarTitle:  pillar.Title,
		PillarColor:  pillar.Color,
		PracticeName: practice.Name,
		Overall:      levelLabel(detail.Overall),
		BackURL:      routepath.WithScope(routepath.Root, project, date),
		SaveURL:      routepath.WithScope(routepath.PracticeSave(practice.Slug), project, date),
	}

	score := 0
	rated := false
	for _, state := range detail.Aspects {
		if state.Level != nil {
			score += state.Level.Score()
			rated = true
		}
		row := templates.AspectRow{
			Name:        state.Aspect.Name,
			Description: state.Aspect.Description,
			Level:       levelLabel(state.Level),
			CycleURL:    routepath.WithScope(routepath.PracticeCycle(practice.Slug, state.Aspect.Name), project, date),
			FindingsURL: routepath.WithScope(routepath.PracticeFindings(practice.Slug, state.Aspect.Name), project, date),
		}
		if state.Findings != nil {
			row.Findings = *state.Findings
		}
		view.Rows = append(view.Rows, row)
	}
	if rated {
		view.Percent = templates.FormatPercent(score, 2*len(detail.Aspects))
	}

	templ.Handler(templates.PracticePage(view)).ServeHTTP(w, r)
}

func (h *Handlers) handleAspectCycle(w http.ResponseWriter, r *http.Request) {
	project, date := scope(r)
	slug := r.PathValue("slug")
	pillar, practice, ok := taxonomy.PracticeBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := h.svc.CycleAspect(r.Context(), project, date, pillar.Title, practice.Key, r.PathValue("aspect")); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.WithScope(routepath.Practice(slug), project, date), http.StatusSeeOther)
}

func (h *Handlers) handleAspectFindings(w http.ResponseWriter, r *http.Request) {
	project, date := scope(r)
	slug := r.PathValue("slug")
	pillar, practice, ok := taxonomy.PracticeBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	err := h.svc.SetAspectFindings(r.Context(), project, date, pillar.Title, practice.Key, r.PathValue("aspect"), r.FormValue("findings"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.WithScope(routepath.Practice(slug), project, date), http.StatusSeeOther)
}

func (h *Handlers) handleFamilySave(w http.ResponseWriter, r *http.Request) {
	project, date := scope(r)
	slug := r.PathValue("slug")
	pillar, practice, ok := taxonomy.PracticeBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	names := r.Form["aspect"]
	ratings := r.Form["rating"]
	findings := r.Form["findings"]

	inputs := make([]assessment.AspectInput, 0, len(names))
	for i, name := range names {
		input := assessment.AspectInput{Name: name}
		if i < len(ratings) {
			value := ratings[i]
			input.Level = rating.ParseNullable(&value)
		}
		if i < len(findings) && findings[i] != "" {
			value := findings[i]
			input.Findings = &value
		}
		inputs = append(inputs, input)
	}

	if err := h.svc.SaveFamily(r.Context(), project, date, pillar.Title, practice.Key, inputs); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, routepath.WithScope(routepath.Root, project, date), http.StatusSeeOther)
}

func (h *Handlers) handleRatingsCycle(w http.ResponseWriter, r *http.Request) {
	project, date := scope(r)
	practiceKey := r.FormValue("practice")

	for _, pillar := range taxonomy.Pillars() {
		practice, ok := pillar.PracticeByKey(practiceKey)
		if !ok || practice.HasAspects() {
			continue
		}
		if _, err := h.svc.CyclePractice(r.Context(), project, date, pillar.Title, practice.Key); err != nil {
			h.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, routepath.WithScope(routepath.Root, project, date), http.StatusSeeOther)
		return
	}
	http.NotFound(w, r)
}
