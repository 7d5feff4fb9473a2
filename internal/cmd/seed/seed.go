// Package seed populates a store with a fully rated demo assessment.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/openassess/maturity/internal/assessment"
	"github.com/openassess/maturity/internal/assessment/app"
	"github.com/openassess/maturity/internal/assessment/rating"
	"github.com/openassess/maturity/internal/assessment/storage"
	"github.com/openassess/maturity/internal/assessment/taxonomy"
	entrypoint "github.com/openassess/maturity/internal/platform/cmd"
	"github.com/openassess/maturity/internal/platform/timeouts"
)

// Config holds seed command configuration.
type Config struct {
	Project     string `env:"MATURITY_SEED_PROJECT" envDefault:"demo"`
	Date        string `env:"MATURITY_SEED_DATE"`
	DatabaseURL string `env:"MATURITY_DATABASE_URL"`
	DBPath      string `env:"MATURITY_DB_PATH"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Project, "project", cfg.Project, "project name to seed")
	fs.StringVar(&cfg.Date, "date", cfg.Date, "assessment date (default: today)")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Postgres URL (uses SQLite when empty)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database file path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Date == "" {
		cfg.Date = time.Now().UTC().Format("2006-01-02")
	}
	return cfg, nil
}

// Run seeds the demo assessment through the service layer so rollups are
// computed exactly as the web flows compute them.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		store, closer, err := app.OpenStore(app.Config{
			DatabaseURL: cfg.DatabaseURL,
			DBPath:      cfg.DBPath,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		return Seed(ctx, assessment.NewService(store), cfg.Project, cfg.Date)
	})
}

// Seed writes a deterministic rating for every practice and aspect of the
// taxonomy: levels cycle Largely, Somewhat, Not by position.
func Seed(ctx context.Context, svc *assessment.Service, project, date string) error {
	levels := rating.Levels()

	for _, pillar := range taxonomy.Pillars() {
		for practiceIdx, practice := range pillar.Practices {
			opCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOp)

			if !practice.HasAspects() {
				level := levels[practiceIdx%len(levels)]
				err := svc.SaveRatings(opCtx, project, date, []storage.Rating{{
					Pillar:   pillar.Title,
					Practice: practice.Key,
					Level:    &level,
				}})
				cancel()
				if err != nil {
					return fmt.Errorf("seed practice %s: %w", practice.Key, err)
				}
				continue
			}

			inputs := make([]assessment.AspectInput, 0, len(practice.Aspects))
			for aspectIdx, aspect := range practice.Aspects {
				level := levels[(practiceIdx+aspectIdx)%len(levels)]
				inputs = append(inputs, assessment.AspectInput{
					Name:  aspect.Name,
					Level: &level,
				})
			}
			err := svc.SaveFamily(opCtx, project, date, pillar.Title, practice.Key, inputs)
			cancel()
			if err != nil {
				return fmt.Errorf("seed family %s: %w", practice.Key, err)
			}
			log.Printf("seeded %s / %s", pillar.Title, practice.Name)
		}
	}
	return nil
}
