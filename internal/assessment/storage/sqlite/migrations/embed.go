package migrations

import "embed"

// FS contains embedded SQLite migrations for rating storage.
//
//go:embed *.sql
var FS embed.FS
