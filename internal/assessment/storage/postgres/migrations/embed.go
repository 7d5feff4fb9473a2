package migrations

import "embed"

// FS contains embedded Postgres migrations for rating storage.
//
//go:embed *.sql
var FS embed.FS
