// Package sqlite provides a SQLite-backed rating storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/openassess/maturity/internal/assessment/rating"
	"github.com/openassess/maturity/internal/assessment/storage"
	"github.com/openassess/maturity/internal/assessment/storage/sqlite/migrations"
	"github.com/openassess/maturity/internal/platform/storage/migrate"
	_ "modernc.org/sqlite"
)

// Store persists assessment ratings in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite rating store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate.Apply(sqlDB, migrate.SQLite, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// FetchRatings returns rating rows matching the filters. An empty result is
// not an error.
func (s *Store) FetchRatings(ctx context.Context, filters storage.Filters) ([]storage.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	project := strings.TrimSpace(filters.Project)
	date := strings.TrimSpace(filters.Date)
	if project == "" {
		return nil, fmt.Errorf("project is required")
	}
	if date == "" {
		return nil, fmt.Errorf("assessment date is required")
	}

	query := `SELECT project_name, assessment_date, pillar_title, practice_name,
	                 rating, findings
	            FROM ratings
	           WHERE project_name = ? AND assessment_date = ?`
	args := []any{project, date}
	if filters.Pillar != "" {
		query += " AND pillar_title = ?"
		args = append(args, filters.Pillar)
	}
	if filters.Practice != "" {
		query += " AND practice_name = ?"
		args = append(args, filters.Practice)
	}
	if filters.PracticePrefix != "" {
		query += " AND practice_name LIKE ?"
		args = append(args, filters.PracticePrefix+":%")
	}
	query += " ORDER BY pillar_title ASC, practice_name ASC"

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch ratings: %w", err)
	}
	defer rows.Close()

	var result []storage.Rating
	for rows.Next() {
		var row storage.Rating
		var level sql.NullString
		var findings sql.NullString
		if err := rows.Scan(
			&row.Project,
			&row.Date,
			&row.Pillar,
			&row.Practice,
			&level,
			&findings,
		); err != nil {
			return nil, fmt.Errorf("fetch ratings: %w", err)
		}
		if level.Valid {
			row.Level = rating.ParseNullable(&level.String)
		}
		if findings.Valid {
			value := findings.String
			row.Findings = &value
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch ratings: %w", err)
	}
	return result, nil
}

// UpsertRatings writes the batch in one transaction, keyed on the natural
// key. Existing rows keep their created_at.
func (s *Store) UpsertRatings(ctx context.Context, ratings []storage.Rating) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if len(ratings) == 0 {
		return nil
	}
	for _, row := range ratings {
		if strings.TrimSpace(row.Project) == "" {
			return fmt.Errorf("project is required")
		}
		if strings.TrimSpace(row.Date) == "" {
			return fmt.Errorf("assessment date is required")
		}
		if strings.TrimSpace(row.Pillar) == "" {
			return fmt.Errorf("pillar title is required")
		}
		if strings.TrimSpace(row.Practice) == "" {
			return fmt.Errorf("practice name is required")
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert transaction: %w", err)
	}

	now := toMillis(time.Now())
	for _, row := range ratings {
		var level any
		if row.Level != nil {
			level = string(*row.Level)
		}
		var findings any
		if row.Findings != nil {
			findings = *row.Findings
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO ratings (
			   project_name,
			   assessment_date,
			   pillar_title,
			   practice_name,
			   rating,
			   findings,
			   created_at,
			   updated_at
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (project_name, assessment_date, pillar_title, practice_name)
			 DO UPDATE SET
			   rating = excluded.rating,
			   findings = excluded.findings,
			   updated_at = excluded.updated_at`,
			row.Project,
			row.Date,
			row.Pillar,
			row.Practice,
			level,
			findings,
			now,
			now,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert rating %s/%s: %w", row.Pillar, row.Practice, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert transaction: %w", err)
	}
	return nil
}
