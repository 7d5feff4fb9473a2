package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected listen address error")
	}
}

func TestOpenStoreDefaultsToSQLite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "maturity.db")
	store, closer, err := OpenStore(Config{DBPath: path})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if store == nil {
		t.Fatal("expected store")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
}

func TestServerRegistersWebAndAPIRoutes(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "maturity.db"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(server.Close)

	rec := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/taxonomy", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("taxonomy status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, want 200", rec.Code)
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "maturity.db"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
