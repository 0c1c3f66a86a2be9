package repositories

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
)

// RoadmapRepository persists admin-curated learning paths. Level step lists
// are stored as ordered arrays and replaced wholesale on update so the
// presentation sequence survives edits.
type RoadmapRepository interface {
	CreateRoadmap(ctx context.Context, roadmap domain.Roadmap) error
	FindRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error)
	FindRoadmaps(ctx context.Context, limit, offset int) ([]domain.Roadmap, int64, error)
	UpdateRoadmap(ctx context.Context, roadmap domain.Roadmap) error
	DeleteRoadmap(ctx context.Context, roadmapID string) error
}
