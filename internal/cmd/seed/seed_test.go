package seed

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/openassess/maturity/internal/assessment"
	"github.com/openassess/maturity/internal/assessment/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Project != "demo" {
		t.Fatalf("project = %q, want demo", cfg.Project)
	}
	if cfg.Date == "" {
		t.Fatal("expected date to default to today")
	}
}

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-project", "acme", "-date", "2026-08-29"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Project != "acme" || cfg.Date != "2026-08-29" {
		t.Fatalf("cfg = %+v, want flag values", cfg)
	}
}

func TestSeedRatesEveryPractice(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "maturity.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})

	svc := assessment.NewService(store)
	if err := Seed(context.Background(), svc, "demo", "2026-08-29"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	snapshot, err := svc.Snapshot(context.Background(), "demo", "2026-08-29")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	for _, pillar := range snapshot.Pillars {
		for _, practice := range pillar.Practices {
			if practice.Level == nil {
				t.Fatalf("practice %s/%s unrated after seed", pillar.Pillar.Title, practice.Practice.Key)
			}
		}
	}
}
