package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/openassess/maturity/internal/assessment/rating"
	"github.com/openassess/maturity/internal/assessment/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestUpsertFetchRatingsRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	level := rating.LargelyInPlace
	findings := "Quarterly training budget approved"
	input := []storage.Rating{
		{
			Project:  "acme",
			Date:     "2026-08-29",
			Pillar:   "People",
			Practice: "Training",
			Level:    &level,
		},
		{
			Project:  "acme",
			Date:     "2026-08-29",
			Pillar:   "People",
			Practice: storage.AspectKey("Training", "AI Literacy Programs"),
			Level:    &level,
			Findings: &findings,
		},
	}
	if err := store.UpsertRatings(context.Background(), input); err != nil {
		t.Fatalf("upsert ratings: %v", err)
	}

	got, err := store.FetchRatings(context.Background(), storage.Filters{
		Project: "acme",
		Date:    "2026-08-29",
	})
	if err != nil {
		t.Fatalf("fetch ratings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fetched %d rows, want 2", len(got))
	}
	for _, row := range got {
		if row.Level == nil || *row.Level != rating.LargelyInPlace {
			t.Fatalf("row %q level = %v, want %q", row.Practice, row.Level, rating.LargelyInPlace)
		}
	}
}

func TestUpsertRatingsOverwritesOnNaturalKey(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	first := rating.NotInPlace
	if err := store.UpsertRatings(context.Background(), []storage.Rating{{
		Project:  "acme",
		Date:     "2026-08-29",
		Pillar:   "Data",
		Practice: "DataGovernance",
		Level:    &first,
	}}); err != nil {
		t.Fatalf("initial upsert: %v", err)
	}

	second := rating.SomewhatInPlace
	findings := "Stewardship roles assigned"
	if err := store.UpsertRatings(context.Background(), []storage.Rating{{
		Project:  "acme",
		Date:     "2026-08-29",
		Pillar:   "Data",
		Practice: "DataGovernance",
		Level:    &second,
		Findings: &findings,
	}}); err != nil {
		t.Fatalf("overwrite upsert: %v", err)
	}

	got, err := store.FetchRatings(context.Background(), storage.Filters{
		Project:  "acme",
		Date:     "2026-08-29",
		Practice: "DataGovernance",
	})
	if err != nil {
		t.Fatalf("fetch ratings: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("fetched %d rows, want 1", len(got))
	}
	if got[0].Level == nil || *got[0].Level != rating.SomewhatInPlace {
		t.Fatalf("level = %v, want %q", got[0].Level, rating.SomewhatInPlace)
	}
	if got[0].Findings == nil || *got[0].Findings != findings {
		t.Fatalf("findings = %v, want %q", got[0].Findings, findings)
	}
}

func TestUpsertRatingsStoresNilLevelAsNull(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.UpsertRatings(context.Background(), []storage.Rating{{
		Project:  "acme",
		Date:     "2026-08-29",
		Pillar:   "Strategy",
		Practice: "Innovation",
	}}); err != nil {
		t.Fatalf("upsert unrated row: %v", err)
	}

	got, err := store.FetchRatings(context.Background(), storage.Filters{
		Project:  "acme",
		Date:     "2026-08-29",
		Practice: "Innovation",
	})
	if err != nil {
		t.Fatalf("fetch ratings: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("fetched %d rows, want 1", len(got))
	}
	if got[0].Level != nil {
		t.Fatalf("level = %q, want nil", *got[0].Level)
	}
	if got[0].Findings != nil {
		t.Fatalf("findings = %q, want nil", *got[0].Findings)
	}
}

func TestFetchRatingsFiltersByPracticePrefix(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	level := rating.SomewhatInPlace
	input := []storage.Rating{
		{Project: "acme", Date: "2026-08-29", Pillar: "Solution", Practice: "Infrastructure", Level: &level},
		{Project: "acme", Date: "2026-08-29", Pillar: "Solution", Practice: storage.AspectKey("Infrastructure", "Scalable Infrastructure"), Level: &level},
		{Project: "acme", Date: "2026-08-29", Pillar: "Solution", Practice: storage.AspectKey("ModelDevelopment", "Model Selection"), Level: &level},
	}
	if err := store.UpsertRatings(context.Background(), input); err != nil {
		t.Fatalf("upsert ratings: %v", err)
	}

	got, err := store.FetchRatings(context.Background(), storage.Filters{
		Project:        "acme",
		Date:           "2026-08-29",
		PracticePrefix: "Infrastructure",
	})
	if err != nil {
		t.Fatalf("fetch ratings: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("fetched %d rows, want 1", len(got))
	}
	if got[0].Practice != "Infrastructure:Scalable Infrastructure" {
		t.Fatalf("practice = %q, want composite aspect row", got[0].Practice)
	}
}

func TestFetchRatingsScopesByProjectAndDate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	level := rating.LargelyInPlace
	input := []storage.Rating{
		{Project: "acme", Date: "2026-08-29", Pillar: "People", Practice: "Training", Level: &level},
		{Project: "acme", Date: "2026-07-01", Pillar: "People", Practice: "Training", Level: &level},
		{Project: "globex", Date: "2026-08-29", Pillar: "People", Practice: "Training", Level: &level},
	}
	if err := store.UpsertRatings(context.Background(), input); err != nil {
		t.Fatalf("upsert ratings: %v", err)
	}

	got, err := store.FetchRatings(context.Background(), storage.Filters{
		Project: "acme",
		Date:    "2026-08-29",
	})
	if err != nil {
		t.Fatalf("fetch ratings: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("fetched %d rows, want 1", len(got))
	}
	if got[0].Project != "acme" || got[0].Date != "2026-08-29" {
		t.Fatalf("fetched row %q/%q outside requested scope", got[0].Project, got[0].Date)
	}
}

func TestFetchRatingsRequiresProjectAndDate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.FetchRatings(context.Background(), storage.Filters{Date: "2026-08-29"}); err == nil {
		t.Fatal("expected missing project error")
	}
	if _, err := store.FetchRatings(context.Background(), storage.Filters{Project: "acme"}); err == nil {
		t.Fatal("expected missing date error")
	}
}

func TestUpsertRatingsRejectsIncompleteKey(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	err := store.UpsertRatings(context.Background(), []storage.Rating{{
		Project: "acme",
		Date:    "2026-08-29",
		Pillar:  "People",
	}})
	if err == nil {
		t.Fatal("expected missing practice error")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "maturity.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
