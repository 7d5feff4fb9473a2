// Package server parses assessment server flags and launches the service.
package server

import (
	"context"
	"flag"

	"github.com/openassess/maturity/internal/assessment/app"
	entrypoint "github.com/openassess/maturity/internal/platform/cmd"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr    string `env:"MATURITY_HTTP_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"MATURITY_DATABASE_URL"`
	DBPath      string `env:"MATURITY_DB_PATH"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Postgres URL (uses SQLite when empty)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database file path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the assessment HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		server, err := app.NewServer(app.Config{
			HTTPAddr:    cfg.HTTPAddr,
			DatabaseURL: cfg.DatabaseURL,
			DBPath:      cfg.DBPath,
		})
		if err != nil {
			return err
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}
