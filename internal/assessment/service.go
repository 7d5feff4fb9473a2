// Package assessment orchestrates rating hydration, cycling, and saving
// across the taxonomy and the rating store.
package assessment

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/openassess/maturity/internal/assessment/rating"
	"github.com/openassess/maturity/internal/assessment/storage"
	"github.com/openassess/maturity/internal/assessment/taxonomy"
	platformerrors "github.com/openassess/maturity/internal/platform/errors"
)

// MaxProjectNameLength bounds the project_name column by UI convention.
const MaxProjectNameLength = 20

// Service is the assessment core. All operations are scoped to one project
// and assessment date.
type Service struct {
	store  storage.RatingStore
	tracer trace.Tracer
}

// NewService creates an assessment service over a rating store.
func NewService(store storage.RatingStore) *Service {
	return &Service{
		store:  store,
		tracer: otel.Tracer("github.com/openassess/maturity/internal/assessment"),
	}
}

// PracticeStatus is one practice and its rollup rating on the dashboard.
type PracticeStatus struct {
	Practice taxonomy.Practice
	Level    *rating.Level
}

// PillarStatus is one pillar card on the dashboard.
type PillarStatus struct {
	Pillar    taxonomy.Pillar
	Practices []PracticeStatus
}

// Snapshot is the hydrated dashboard state for one project and date.
type Snapshot struct {
	Project string
	Date    string
	Pillars []PillarStatus
}

// AspectState is one aspect row on a practice detail page.
type AspectState struct {
	Aspect   taxonomy.Aspect
	Level    *rating.Level
	Findings *string
}

// PracticeDetail is the hydrated aspect family for one practice.
type PracticeDetail struct {
	Project  string
	Date     string
	Pillar   taxonomy.Pillar
	Practice taxonomy.Practice
	Aspects  []AspectState
	Overall  *rating.Level
}

// AspectInput carries one aspect's state into SaveFamily.
type AspectInput struct {
	Name     string
	Level    *rating.Level
	Findings *string
}

func validateScope(project, date string) error {
	if strings.TrimSpace(project) == "" {
		return platformerrors.New(platformerrors.CodeAssessmentMissingProject, "project is required")
	}
	if utf8.RuneCountInString(project) > MaxProjectNameLength {
		return platformerrors.WithMetadata(
			platformerrors.CodeAssessmentProjectTooLong,
			fmt.Sprintf("project name exceeds %d characters", MaxProjectNameLength),
			map[string]string{"project": project},
		)
	}
	if strings.TrimSpace(date) == "" {
		return platformerrors.New(platformerrors.CodeAssessmentMissingDate, "assessment date is required")
	}
	return nil
}

func resolvePillar(title string) (taxonomy.Pillar, error) {
	pillar, ok := taxonomy.PillarByTitle(title)
	if !ok {
		return taxonomy.Pillar{}, platformerrors.WithMetadata(
			platformerrors.CodeAssessmentUnknownPillar,
			"unknown pillar",
			map[string]string{"pillar": title},
		)
	}
	return pillar, nil
}

func resolvePractice(pillar taxonomy.Pillar, practiceKey string) (taxonomy.Practice, error) {
	practice, ok := pillar.PracticeByKey(practiceKey)
	if !ok {
		return taxonomy.Practice{}, platformerrors.WithMetadata(
			platformerrors.CodeAssessmentUnknownPractice,
			"unknown practice",
			map[string]string{"pillar": pillar.Title, "practice": practiceKey},
		)
	}
	return practice, nil
}

// Snapshot hydrates the dashboard from bare practice rollup rows. Practices
// with no persisted row appear unrated.
func (s *Service) Snapshot(ctx context.Context, project, date string) (Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Snapshot")
	defer span.End()

	if err := validateScope(project, date); err != nil {
		return Snapshot{}, err
	}

	rows, err := s.store.FetchRatings(ctx, storage.Filters{Project: project, Date: date})
	if err != nil {
		span.RecordError(err)
		return Snapshot{}, platformerrors.Wrap(platformerrors.CodeStoreFailure, "fetch ratings", err)
	}

	// Index bare rollup rows; aspect rows belong to detail pages.
	levels := make(map[string]*rating.Level)
	for _, row := range rows {
		if storage.IsAspectRow(row.Practice) {
			continue
		}
		levels[row.Pillar+"\x00"+row.Practice] = row.Level
	}

	snapshot := Snapshot{Project: project, Date: date}
	for _, pillar := range taxonomy.Pillars() {
		status := PillarStatus{Pillar: pillar}
		for _, practice := range pillar.Practices {
			status.Practices = append(status.Practices, PracticeStatus{
				Practice: practice,
				Level:    levels[pillar.Title+"\x00"+practice.Key],
			})
		}
		snapshot.Pillars = append(snapshot.Pillars, status)
	}
	return snapshot, nil
}

// PracticeDetail hydrates one aspect family from composite rows. Persisted
// rows that do not match a taxonomy aspect are ignored.
func (s *Service) PracticeDetail(ctx context.Context, project, date, pillarTitle, practiceKey string) (PracticeDetail, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.PracticeDetail")
	defer span.End()

	if err := validateScope(project, date); err != nil {
		return PracticeDetail{}, err
	}
	pillar, err := resolvePillar(pillarTitle)
	if err != nil {
		return PracticeDetail{}, err
	}
	practice, err := resolvePractice(pillar, practiceKey)
	if err != nil {
		return PracticeDetail{}, err
	}

	rows, err := s.store.FetchRatings(ctx, storage.Filters{
		Project:        project,
		Date:           date,
		Pillar:         pillar.Title,
		PracticePrefix: practice.Key,
	})
	if err != nil {
		span.RecordError(err)
		return PracticeDetail{}, platformerrors.Wrap(platformerrors.CodeStoreFailure, "fetch ratings", err)
	}

	byAspect := make(map[string]storage.Rating)
	for _, row := range rows {
		_, aspectName, ok := storage.SplitAspectKey(row.Practice)
		if !ok {
			continue
		}
		if _, known := practice.AspectByName(aspectName); !known {
			continue
		}
		byAspect[aspectName] = row
	}

	detail := PracticeDetail{
		Project:  project,
		Date:     date,
		Pillar:   pillar,
		Practice: practice,
	}
	var levels []*rating.Level
	for _, aspect := range practice.Aspects {
		state := AspectState{Aspect: aspect}
		if row, ok := byAspect[aspect.Name]; ok {
			state.Level = row.Level
			state.Findings = row.Findings
		}
		detail.Aspects = append(detail.Aspects, state)
		levels = append(levels, state.Level)
	}
	detail.Overall = rating.Overall(levels)
	return detail, nil
}

// CycleAspect advances one aspect to its next rating and immediately
// persists the aspect row plus the recomputed practice rollup in one batch.
// It returns the aspect's new rating.
func (s *Service) CycleAspect(ctx context.Context, project, date, pillarTitle, practiceKey, aspectName string) (rating.Level, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.CycleAspect")
	defer span.End()

	detail, err := s.PracticeDetail(ctx, project, date, pillarTitle, practiceKey)
	if err != nil {
		return "", err
	}
	if _, ok := detail.Practice.AspectByName(aspectName); !ok {
		return "", platformerrors.WithMetadata(
			platformerrors.CodeAssessmentUnknownAspect,
			"unknown aspect",
			map[string]string{"practice": practiceKey, "aspect": aspectName},
		)
	}

	var next rating.Level
	var findings *string
	levels := make([]*rating.Level, 0, len(detail.Aspects))
	for _, state := range detail.Aspects {
		level := state.Level
		if state.Aspect.Name == aspectName {
			next = rating.Next(state.Level)
			level = &next
			findings = state.Findings
		}
		levels = append(levels, level)
	}

	batch := []storage.Rating{
		{
			Project:  project,
			Date:     date,
			Pillar:   detail.Pillar.Title,
			Practice: storage.AspectKey(detail.Practice.Key, aspectName),
			Level:    &next,
			Findings: findings,
		},
		{
			Project:  project,
			Date:     date,
			Pillar:   detail.Pillar.Title,
			Practice: detail.Practice.Key,
			Level:    rating.Overall(levels),
		},
	}
	if err := s.store.UpsertRatings(ctx, batch); err != nil {
		span.RecordError(err)
		return "", platformerrors.Wrap(platformerrors.CodeStoreFailure, "upsert ratings", err)
	}
	return next, nil
}

// SetAspectFindings updates one aspect's findings text, preserving its
// current rating. Blank findings clear the column.
func (s *Service) SetAspectFindings(ctx context.Context, project, date, pillarTitle, practiceKey, aspectName, findings string) error {
	ctx, span := s.tracer.Start(ctx, "assessment.SetAspectFindings")
	defer span.End()

	detail, err := s.PracticeDetail(ctx, project, date, pillarTitle, practiceKey)
	if err != nil {
		return err
	}
	if _, ok := detail.Practice.AspectByName(aspectName); !ok {
		return platformerrors.WithMetadata(
			platformerrors.CodeAssessmentUnknownAspect,
			"unknown aspect",
			map[string]string{"practice": practiceKey, "aspect": aspectName},
		)
	}

	var level *rating.Level
	for _, state := range detail.Aspects {
		if state.Aspect.Name == aspectName {
			level = state.Level
			break
		}
	}

	var findingsValue *string
	if trimmed := strings.TrimSpace(findings); trimmed != "" {
		findingsValue = &trimmed
	}

	row := storage.Rating{
		Project:  project,
		Date:     date,
		Pillar:   detail.Pillar.Title,
		Practice: storage.AspectKey(detail.Practice.Key, aspectName),
		Level:    level,
		Findings: findingsValue,
	}
	if err := s.store.UpsertRatings(ctx, []storage.Rating{row}); err != nil {
		span.RecordError(err)
		return platformerrors.Wrap(platformerrors.CodeStoreFailure, "upsert ratings", err)
	}
	return nil
}

// CyclePractice advances a leaf practice (one with no aspect family) to its
// next rating and persists the bare rollup row. It returns the new rating.
func (s *Service) CyclePractice(ctx context.Context, project, date, pillarTitle, practiceKey string) (rating.Level, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.CyclePractice")
	defer span.End()

	if err := validateScope(project, date); err != nil {
		return "", err
	}
	pillar, err := resolvePillar(pillarTitle)
	if err != nil {
		return "", err
	}
	practice, err := resolvePractice(pillar, practiceKey)
	if err != nil {
		return "", err
	}
	if practice.HasAspects() {
		return "", fmt.Errorf("practice %s has an aspect family; cycle its aspects instead", practice.Key)
	}

	rows, err := s.store.FetchRatings(ctx, storage.Filters{
		Project:  project,
		Date:     date,
		Pillar:   pillar.Title,
		Practice: practice.Key,
	})
	if err != nil {
		span.RecordError(err)
		return "", platformerrors.Wrap(platformerrors.CodeStoreFailure, "fetch ratings", err)
	}
	var current *rating.Level
	if len(rows) > 0 {
		current = rows[0].Level
	}

	next := rating.Next(current)
	row := storage.Rating{
		Project:  project,
		Date:     date,
		Pillar:   pillar.Title,
		Practice: practice.Key,
		Level:    &next,
	}
	if err := s.store.UpsertRatings(ctx, []storage.Rating{row}); err != nil {
		span.RecordError(err)
		return "", platformerrors.Wrap(platformerrors.CodeStoreFailure, "upsert ratings", err)
	}
	return next, nil
}

// SaveFamily persists a whole aspect family plus its recomputed rollup in
// one upsert batch. Aspects absent from the input save as unrated.
func (s *Service) SaveFamily(ctx context.Context, project, date, pillarTitle, practiceKey string, aspects []AspectInput) error {
	ctx, span := s.tracer.Start(ctx, "assessment.SaveFamily")
	defer span.End()

	if err := validateScope(project, date); err != nil {
		return err
	}
	pillar, err := resolvePillar(pillarTitle)
	if err != nil {
		return err
	}
	practice, err := resolvePractice(pillar, practiceKey)
	if err != nil {
		return err
	}

	byName := make(map[string]AspectInput, len(aspects))
	for _, input := range aspects {
		if _, ok := practice.AspectByName(input.Name); !ok {
			return platformerrors.WithMetadata(
				platformerrors.CodeAssessmentUnknownAspect,
				"unknown aspect",
				map[string]string{"practice": practice.Key, "aspect": input.Name},
			)
		}
		byName[input.Name] = input
	}

	batch := make([]storage.Rating, 0, len(practice.Aspects)+1)
	levels := make([]*rating.Level, 0, len(practice.Aspects))
	for _, aspect := range practice.Aspects {
		input := byName[aspect.Name]
		batch = append(batch, storage.Rating{
			Project:  project,
			Date:     date,
			Pillar:   pillar.Title,
			Practice: storage.AspectKey(practice.Key, aspect.Name),
			Level:    input.Level,
			Findings: input.Findings,
		})
		levels = append(levels, input.Level)
	}
	batch = append(batch, storage.Rating{
		Project:  project,
		Date:     date,
		Pillar:   pillar.Title,
		Practice: practice.Key,
		Level:    rating.Overall(levels),
	})

	if err := s.store.UpsertRatings(ctx, batch); err != nil {
		span.RecordError(err)
		return platformerrors.Wrap(platformerrors.CodeStoreFailure, "upsert ratings", err)
	}
	return nil
}

// Ratings returns raw store rows for the JSON API, after scope validation.
func (s *Service) Ratings(ctx context.Context, filters storage.Filters) ([]storage.Rating, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Ratings")
	defer span.End()

	if err := validateScope(filters.Project, filters.Date); err != nil {
		return nil, err
	}
	rows, err := s.store.FetchRatings(ctx, filters)
	if err != nil {
		span.RecordError(err)
		return nil, platformerrors.Wrap(platformerrors.CodeStoreFailure, "fetch ratings", err)
	}
	return rows, nil
}

// SaveRatings upserts a raw batch for the JSON API. Every row is stamped
// with the batch's project and date.
func (s *Service) SaveRatings(ctx context.Context, project, date string, rows []storage.Rating) error {
	ctx, span := s.tracer.Start(ctx, "assessment.SaveRatings")
	defer span.End()

	if err := validateScope(project, date); err != nil {
		return err
	}
	batch := make([]storage.Rating, 0, len(rows))
	for _, row := range rows {
		if _, err := resolvePillar(row.Pillar); err != nil {
			return err
		}
		if strings.TrimSpace(row.Practice) == "" {
			return platformerrors.New(platformerrors.CodeAssessmentUnknownPractice, "practice name is required")
		}
		row.Project = project
		row.Date = date
		batch = append(batch, row)
	}
	if err := s.store.UpsertRatings(ctx, batch); err != nil {
		span.RecordError(err)
		return platformerrors.Wrap(platformerrors.CodeStoreFailure, "upsert ratings", err)
	}
	return nil
}
