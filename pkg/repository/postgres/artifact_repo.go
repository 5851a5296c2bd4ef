package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-category/pkg/model"
)

// ArtifactRepository хранит опубликованные артефакты модели.
// It implements model.Source so the classifier can start from Postgres.
type ArtifactRepository struct {
	pool *pgxpool.Pool
}

// ArtifactMeta describes one stored artifact without its payload.
type ArtifactMeta struct {
	Name      string
	SizeBytes int64
	UpdatedAt time.Time
}

func NewArtifactRepository(pool *pgxpool.Pool) (*ArtifactRepository, error) {
	r := &ArtifactRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ArtifactRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS classifier_artifacts (
	name TEXT PRIMARY KEY,
	data BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("ensure classifier_artifacts schema: %w", err)
	}
	return nil
}

// Fetch implements model.Source.
func (r *ArtifactRepository) Fetch(ctx context.Context, name string) ([]byte, error) {
	row := r.pool.QueryRow(ctx, `
SELECT data FROM classifier_artifacts WHERE name = $1
`, name)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", model.ErrArtifactNotFound, name)
		}
		return nil, err
	}
	return data, nil
}

// Put stores or replaces an artifact.
func (r *ArtifactRepository) Put(ctx context.Context, name string, data []byte) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO classifier_artifacts (name, data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
`, name, data, time.Now().UTC())
	return err
}

// List returns metadata of every stored artifact ordered by name.
func (r *ArtifactRepository) List(ctx context.Context) ([]ArtifactMeta, error) {
	rows, err := r.pool.Query(ctx, `
SELECT name, octet_length(data), updated_at
FROM classifier_artifacts
ORDER BY name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []ArtifactMeta
	for rows.Next() {
		var m ArtifactMeta
		var updated time.Time
		if err := rows.Scan(&m.Name, &m.SizeBytes, &updated); err != nil {
			return nil, err
		}
		m.UpdatedAt = updated.UTC()
		res = append(res, m)
	}
	return res, rows.Err()
}
