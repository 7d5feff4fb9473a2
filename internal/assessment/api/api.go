// Package api exposes the assessment core as a JSON API.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/openassess/maturity/internal/assessment"
	"github.com/openassess/maturity/internal/assessment/rating"
	"github.com/openassess/maturity/internal/assessment/storage"
	"github.com/openassess/maturity/internal/assessment/taxonomy"
	platformerrors "github.com/openassess/maturity/internal/platform/errors"
)

// Handlers serves the JSON API endpoints.
type Handlers struct {
	svc *assessment.Service
}

// NewHandlers creates JSON API handlers over the assessment service.
func NewHandlers(svc *assessment.Service) *Handlers {
	return &Handlers{svc: svc}
}

// Register attaches the API routes to mux.
func Register(mux *http.ServeMux, h *Handlers) {
	if mux == nil || h == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /api/taxonomy", h.handleTaxonomy)
	mux.HandleFunc(http.MethodGet+" /api/ratings", h.handleRatingsGet)
	mux.HandleFunc(http.MethodPut+" /api/ratings", h.handleRatingsPut)
	mux.HandleFunc(http.MethodGet+" /api/assessment", h.handleAssessment)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[API] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := platformerrors.CodeOf(err)
	message := err.Error()
	var domainErr *platformerrors.Error
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}
	writeJSON(w, code.HTTPStatus(), errorEnvelope{Error: errorBody{
		Code:    string(code),
		Message: message,
	}})
}

type aspectPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type practicePayload struct {
	Name    string          `json:"name"`
	Key     string          `json:"key"`
	Slug    string          `json:"slug,omitempty"`
	Aspects []aspectPayload `json:"aspects,omitempty"`
}

type pillarPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Color       string            `json:"color"`
	Practices   []practicePayload `json:"practices"`
}

func (h *Handlers) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	pillars := taxonomy.Pillars()
	payload := make([]pillarPayload, 0, len(pillars))
	for _, pillar := range pillars {
		p := pillarPayload{
			Title:       pillar.Title,
			Description: pillar.Description,
			Color:       pillar.Color,
		}
		for _, practice := range pillar.Practices {
			pp := practicePayload{
				Name: practice.Name,
				Key:  practice.Key,
				Slug: practice.Slug,
			}
			for _, aspect := range practice.Aspects {
				pp.Aspects = append(pp.Aspects, aspectPayload{
					Name:        aspect.Name,
					Description: aspect.Description,
				})
			}
			p.Practices = append(p.Practices, pp)
		}
		payload = append(payload, p)
	}
	writeJSON(w, http.StatusOK, payload)
}

type ratingPayload struct {
	Pillar   string  `json:"pillar"`
	Practice string  `json:"practice"`
	Rating   *string `json:"rating"`
	Findings *string `json:"findings,omitempty"`
}

type ratingsResponse struct {
	Project string          `json:"project"`
	Date    string          `json:"date"`
	Ratings []ratingPayload `json:"ratings"`
}

func toRatingPayload(row storage.Rating) ratingPayload {
	payload := ratingPayload{
		Pillar:   row.Pillar,
		Practice: row.Practice,
		Findings: row.Findings,
	}
	if row.Level != nil {
		value := string(*row.Level)
		payload.Rating = &value
	}
	return payload
}

func (h *Handlers) handleRatingsGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := storage.Filters{
		Project:  query.Get("project"),
		Date:     query.Get("date"),
		Pillar:   query.Get("pillar"),
		Practice: query.Get("practice"),
	}
	rows, err := h.svc.Ratings(r.Context(), filters)
	if err != nil {
		writeError(w, err)
		return
	}
	response := ratingsResponse{
		Project: filters.Project,
		Date:    filters.Date,
		Ratings: make([]ratingPayload, 0, len(rows)),
	}
	for _, row := range rows {
		response.Ratings = append(response.Ratings, toRatingPayload(row))
	}
	writeJSON(w, http.StatusOK, response)
}

type ratingsRequest struct {
	Project string          `json:"project"`
	Date    string          `json:"date"`
	Ratings []ratingPayload `json:"ratings"`
}

func (h *Handlers) handleRatingsPut(w http.ResponseWriter, r *http.Request) {
	var request ratingsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
			Code:    string(platformerrors.CodeUnknown),
			Message: "malformed request body",
		}})
		return
	}

	rows := make([]storage.Rating, 0, len(request.Ratings))
	for _, payload := range request.Ratings {
		rows = append(rows, storage.Rating{
			Pillar:   payload.Pillar,
			Practice: payload.Practice,
			Level:    rating.ParseNullable(payload.Rating),
			Findings: payload.Findings,
		})
	}
	if err := h.svc.SaveRatings(r.Context(), request.Project, request.Date, rows); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type practiceStatusPayload struct {
	Name   string  `json:"name"`
	Key    string  `json:"key"`
	Slug   string  `json:"slug,omitempty"`
	Rating *string `json:"rating"`
}

type pillarStatusPayload struct {
	Title     string                  `json:"title"`
	Color     string                  `json:"color"`
	Practices []practiceStatusPayload `json:"practices"`
}

type assessmentResponse struct {
	Project string                `json:"project"`
	Date    string                `json:"date"`
	Pillars []pillarStatusPayload `json:"pillars"`
}

func (h *Handlers) handleAssessment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	snapshot, err := h.svc.Snapshot(r.Context(), query.Get("project"), query.Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	response := assessmentResponse{
		Project: snapshot.Project,
		Date:    snapshot.Date,
		Pillars: make([]pillarStatusPayload, 0, len(snapshot.Pillars)),
	}
	for _, pillar := range snapshot.Pillars {
		p := pillarStatusPayload{
			Title: pillar.Pillar.Title,
			Color: pillar.Pillar.Color,
		}
		for _, practice := range pillar.Practices {
			status := practiceStatusPayload{
				Name: practice.Practice.Name,
				Key:  practice.Practice.Key,
				Slug: practice.Practice.Slug,
			}
			if practice.Level != nil {
				value := string(*practice.Level)
				status.Rating = &value
			}
			p.Practices = append(p.Practices, status)
		}
		response.Pillars = append(response.Pillars, p)
	}
	writeJSON(w, http.StatusOK, response)
}
