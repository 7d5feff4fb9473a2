// Package migrate applies embedded SQL migrations at most once per file.
// The same runner serves both store dialects; only the bookkeeping
// statements differ.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const migrationTable = "schema_migrations"

// Dialect selects the bookkeeping SQL flavor for a store engine.
type Dialect string

const (
	// SQLite uses ? placeholders and INSERT OR IGNORE.
	SQLite Dialect = "sqlite"
	// Postgres uses $n placeholders and ON CONFLICT DO NOTHING.
	Postgres Dialect = "postgres"
)

func (d Dialect) ensureTableSQL() string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at BIGINT NOT NULL
);
`, migrationTable)
}

func (d Dialect) isAppliedSQL() string {
	if d == Postgres {
		return "SELECT 1 FROM " + migrationTable + " WHERE name = $1"
	}
	return "SELECT 1 FROM " + migrationTable + " WHERE name = ?"
}

func (d Dialect) recordSQL() string {
	if d == Postgres {
		return fmt.Sprintf("INSERT INTO %s (name, applied_at) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", migrationTable)
	}
	return fmt.Sprintf("INSERT OR IGNORE INTO %s (name, applied_at) VALUES (?, ?)", migrationTable)
}

// Apply executes embedded migrations from migrationFS in lexical filename
// order, recording each applied file so reruns are no-ops.
func Apply(sqlDB *sql.DB, dialect Dialect, migrationFS fs.FS) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	if dialect != SQLite && dialect != Postgres {
		return fmt.Errorf("unknown migration dialect %q", dialect)
	}

	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	if _, err := sqlDB.Exec(dialect.ensureTableSQL()); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range sqlFiles {
		content, err := fs.ReadFile(migrationFS, filepath.ToSlash(file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		applied, err := isApplied(sqlDB, dialect, file)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied {
			continue
		}

		upSQL := ExtractUpMigration(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		tx, err := sqlDB.BeginTx(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("begin migration transaction %s: %w", file, err)
		}

		if _, err := tx.Exec(upSQL); err != nil {
			if !IsAlreadyExistsError(err) {
				_ = tx.Rollback()
				return fmt.Errorf("exec migration %s: %w", file, err)
			}
		}

		if _, err := tx.Exec(dialect.recordSQL(), file, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}

	return nil
}

// ExtractUpMigration returns the SQL in the -- +migrate Up section.
func ExtractUpMigration(content string) string {
	upIdx := strings.Index(content, "-- +migrate Up")
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, "-- +migrate Down")
	if downIdx == -1 {
		return content[upIdx+len("-- +migrate Up"):]
	}
	return content[upIdx+len("-- +migrate Up") : downIdx]
}

// IsAlreadyExistsError reports whether this error indicates idempotent DDL
// success.
func IsAlreadyExistsError(err error) bool {
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func isApplied(sqlDB *sql.DB, dialect Dialect, name string) (bool, error) {
	var found int
	row := sqlDB.QueryRow(dialect.isAppliedSQL(), name)
	err := row.Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
