// Package app composes the assessment service: store selection, route
// registration, and HTTP server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/openassess/maturity/internal/assessment"
	"github.com/openassess/maturity/internal/assessment/api"
	"github.com/openassess/maturity/internal/assessment/storage"
	"github.com/openassess/maturity/internal/assessment/storage/postgres"
	"github.com/openassess/maturity/internal/assessment/storage/sqlite"
	"github.com/openassess/maturity/internal/assessment/web"
	"github.com/openassess/maturity/internal/platform/timeouts"
)

// Config defines the inputs for the assessment server process.
type Config struct {
	// HTTPAddr is the listen address, e.g. ":8080".
	HTTPAddr string
	// DatabaseURL selects the Postgres store when set. Takes precedence
	// over DBPath.
	DatabaseURL string
	// DBPath is the SQLite database file used when no DatabaseURL is set.
	DBPath string
}

// Server hosts the assessment web pages and JSON API over one store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      io.Closer
}

// OpenStore selects and opens the rating store for the config: Postgres
// when DatabaseURL is set, SQLite otherwise.
func OpenStore(cfg Config) (storage.RatingStore, io.Closer, error) {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		store, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, store, nil
	}

	path := cfg.DBPath
	if strings.TrimSpace(path) == "" {
		path = filepath.Join("data", "maturity.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, store, nil
}

// NewServer opens the configured store and builds the HTTP server with all
// routes registered.
func NewServer(cfg Config) (*Server, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, errors.New("http listen address is required")
	}

	store, closer, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	svc := assessment.NewService(store)
	mux := http.NewServeMux()
	web.Register(mux, web.NewHandlers(svc))
	api.Register(mux, api.NewHandlers(svc))

	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           mux,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store: closer,
	}, nil
}

// ListenAndServe serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("assessment server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("[SERVER] listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the store held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("[SERVER] close store: %v", err)
		}
	}
}
