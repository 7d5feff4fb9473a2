// Package postgres provides a Postgres-backed rating storage implementation.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/openassess/maturity/internal/assessment/rating"
	"github.com/openassess/maturity/internal/assessment/storage"
	"github.com/openassess/maturity/internal/assessment/storage/postgres/migrations"
	"github.com/openassess/maturity/internal/platform/storage/migrate"
)

// Store persists assessment ratings in Postgres.
type Store struct {
	sqlDB *sql.DB
}

// New wraps an existing database handle without running migrations. Intended
// for tests that inject a stub connection.
func New(sqlDB *sql.DB) *Store {
	return &Store{sqlDB: sqlDB}
}

// Open connects to Postgres with the given URL and applies embedded
// migrations.
func Open(databaseURL string) (*Store, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database url is required")
	}
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	if err := migrate.Apply(sqlDB, migrate.Postgres, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the database handle.
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
	           WHERE project_name = $1 AND assessment_date = $2`
	args := []any{project, date}
	if filters.Pillar != "" {
		args = append(args, filters.Pillar)
		query += fmt.Sprintf(" AND pillar_title = $%d", len(args))
	}
	if filters.Practice != "" {
		args = append(args, filters.Practice)
		query += fmt.Sprintf(" AND practice_name = $%d", len(args))
	}
	if filters.PracticePrefix != "" {
		args = append(args, filters.PracticePrefix+":%")
		query += fmt.Sprintf(" AND practice_name LIKE $%d", len(args))
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

	now := time.Now().UTC().UnixMilli()
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
			 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (project_name, assessment_date, pillar_title, practice_name)
			 DO UPDATE SET
			   rating = EXCLUDED.rating,
			   findings = EXCLUDED.findings,
			   updated_at = EXCLUDED.updated_at`,
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
