package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/statusfx/internal/data"
)

// StatusTemplateRepository stores designer-authored status templates.
type StatusTemplateRepository struct {
	db *pgxpool.Pool
}

// NewStatusTemplateRepository creates a new StatusTemplateRepository.
func NewStatusTemplateRepository(db *pgxpool.Pool) *StatusTemplateRepository {
	return &StatusTemplateRepository{db: db}
}

// LoadAll returns every template ordered by name.
func (r *StatusTemplateRepository) LoadAll(ctx context.Context) ([]data.StatusTemplate, error) {
	query := `
		SELECT name, effect, duration_ms, params
		FROM status_templates
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying status templates: %w", err)
	}
	defer rows.Close()

	templates := make([]data.StatusTemplate, 0, 16)
	for rows.Next() {
		var (
			t          data.StatusTemplate
			durationMs int64
		)
		if err := rows.Scan(&t.Name, &t.Effect, &durationMs, &t.Params); err != nil {
			return nil, fmt.Errorf("scanning status template row: %w", err)
		}
		t.Duration = time.Duration(durationMs) * time.Millisecond
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status template rows: %w", err)
	}

	return templates, nil
}

// Upsert inserts or replaces templates in one transaction.
func (r *StatusTemplateRepository) Upsert(ctx context.Context, templates []data.StatusTemplate) error {
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("upserting status templates: %w", err)
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, t := range templates {
		params := t.Params
		if params == nil {
			params = map[string]string{}
		}
		batch.Queue(`
			INSERT INTO status_templates (name, effect, duration_ms, params, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (name) DO UPDATE
			SET effect = EXCLUDED.effect,
			    duration_ms = EXCLUDED.duration_ms,
			    params = EXCLUDED.params,
			    updated_at = now()
		`, t.Name, t.Effect, t.Duration.Milliseconds(), params)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upserting status templates: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing status templates: %w", err)
	}
	return nil
}

// Delete removes a template by name. Returns false if it did not exist.
func (r *StatusTemplateRepository) Delete(ctx context.Context, name string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM status_templates WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("deleting status template %q: %w", name, err)
	}
	return tag.RowsAffected() > 0, nil
}
