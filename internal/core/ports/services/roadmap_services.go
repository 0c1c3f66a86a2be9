package services

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
)

// RoadmapSvcFacade manages curated learning paths.
type RoadmapSvcFacade interface {
	CreateRoadmap(ctx context.Context, req dto.SaveRoadmapRequest, creatorAdminID string) (*domain.Roadmap, error)
	GetRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error)
	ListRoadmaps(ctx context.Context, limit, offset int) ([]domain.Roadmap, int64, error)
	UpdateRoadmap(ctx context.Context, roadmapID string, req dto.SaveRoadmapRequest) (*domain.Roadmap, error)
	DeleteRoadmap(ctx context.Context, roadmapID string) error
}
