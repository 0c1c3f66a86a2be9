package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// RoadmapRepository persists roadmaps in PostgreSQL. The ordered level step
// lists are stored as a jsonb document so the presentation sequence is kept
// byte for byte.
type RoadmapRepository struct {
	db DBTX
}

func NewRoadmapRepository(db DBTX) *RoadmapRepository {
	return &RoadmapRepository{db: db}
}

var _ portsrepo.RoadmapRepository = (*RoadmapRepository)(nil)

func scanRoadmap(row pgx.Row) (*domain.Roadmap, error) {
	var roadmap domain.Roadmap
	var levelsJSON []byte
	err := row.Scan(
		&roadmap.RoadmapID,
		&roadmap.Title,
		&roadmap.Category,
		&roadmap.Description,
		&levelsJSON,
		&roadmap.CreatedBy,
		&roadmap.CreatedAt,
		&roadmap.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(levelsJSON, &roadmap.Levels); err != nil {
		return nil, fmt.Errorf("failed to decode roadmap levels: %w", err)
	}
	return &roadmap, nil
}

func (r *RoadmapRepository) CreateRoadmap(ctx context.Context, roadmap domain.Roadmap) error {
	levelsJSON, err := json.Marshal(roadmap.Levels)
	if err != nil {
		return fmt.Errorf("failed to encode roadmap levels: %w", err)
	}

	query := `
        INSERT INTO roadmaps (roadmap_id, title, category, description, levels, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err = r.db.Exec(ctx, query,
		roadmap.RoadmapID,
		roadmap.Title,
		roadmap.Category,
		roadmap.Description,
		levelsJSON,
		roadmap.CreatedBy,
		roadmap.CreatedAt,
		roadmap.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create roadmap: %w", err)
	}
	return nil
}

func (r *RoadmapRepository) FindRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error) {
	query := `SELECT roadmap_id, title, category, description, levels, created_by, created_at, updated_at FROM roadmaps WHERE roadmap_id = $1;`
	roadmap, err := scanRoadmap(r.db.QueryRow(ctx, query, roadmapID))
	if err != nil {
		return nil, fmt.Errorf("failed to find roadmap by ID: %w", err)
	}
	return roadmap, nil
}

func (r *RoadmapRepository) FindRoadmaps(ctx context.Context, limit, offset int) ([]domain.Roadmap, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM roadmaps;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count roadmaps: %w", err)
	}

	query := `
        SELECT roadmap_id, title, category, description, levels, created_by, created_at, updated_at
        FROM roadmaps
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query roadmaps: %w", err)
	}
	defer rows.Close()

	roadmaps := []domain.Roadmap{}
	for rows.Next() {
		roadmap, err := scanRoadmap(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan roadmap row: %w", err)
		}
		roadmaps = append(roadmaps, *roadmap)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating roadmap rows: %w", rows.Err())
	}

	return roadmaps, total, nil
}

func (r *RoadmapRepository) UpdateRoadmap(ctx context.Context, roadmap domain.Roadmap) error {
	levelsJSON, err := json.Marshal(roadmap.Levels)
	if err != nil {
		return fmt.Errorf("failed to encode roadmap levels: %w", err)
	}

	query := `
        UPDATE roadmaps
        SET title = $1, category = $2, description = $3, levels = $4, updated_at = $5
        WHERE roadmap_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		roadmap.Title,
		roadmap.Category,
		roadmap.Description,
		levelsJSON,
		roadmap.UpdatedAt,
		roadmap.RoadmapID,
	)
	if err != nil {
		return fmt.Errorf("failed to update roadmap: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoadmapRepository) DeleteRoadmap(ctx context.Context, roadmapID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM roadmaps WHERE roadmap_id = $1;`, roadmapID)
	if err != nil {
		return fmt.Errorf("failed to delete roadmap: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
