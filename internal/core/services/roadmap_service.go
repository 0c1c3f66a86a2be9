package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/google/uuid"
)

// RoadmapService implements RoadmapSvcFacade over the roadmap repository.
type RoadmapService struct {
	roadmapRepo portsrepo.RoadmapRepository
}

// NewRoadmapService creates a new RoadmapService.
func NewRoadmapService(roadmapRepo portsrepo.RoadmapRepository) *RoadmapService {
	return &RoadmapService{roadmapRepo: roadmapRepo}
}

var _ portssvc.RoadmapSvcFacade = (*RoadmapService)(nil)

// CreateRoadmap creates a roadmap owned by the creating admin.
func (s *RoadmapService) CreateRoadmap(ctx context.Context, req dto.SaveRoadmapRequest, creatorAdminID string) (*domain.Roadmap, error) {
	now := time.Now()
	roadmap := domain.Roadmap{
		RoadmapID:   uuid.NewString(),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Levels:      req.Levels(),
		CreatedBy:   creatorAdminID,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.roadmapRepo.CreateRoadmap(ctx, roadmap); err != nil {
		return nil, fmt.Errorf("failed to create roadmap: %w", err)
	}
	return &roadmap, nil
}

// GetRoadmapByID fetches a roadmap or returns apperrors.ErrNotFound.
func (s *RoadmapService) GetRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error) {
	roadmap, err := s.roadmapRepo.FindRoadmapByID(ctx, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roadmap by ID: %w", err)
	}
	if roadmap == nil {
		return nil, apperrors.ErrNotFound
	}
	return roadmap, nil
}

// ListRoadmaps returns a page of roadmaps with the total count.
func (s *RoadmapService) ListRoadmaps(ctx context.Context, limit, offset int) ([]domain.Roadmap, int64, error) {
	roadmaps, total, err := s.roadmapRepo.FindRoadmaps(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	return roadmaps, total, nil
}

// UpdateRoadmap replaces the editable fields of a roadmap. Level lists are
// replaced wholesale so the submitted ordering is preserved exactly.
func (s *RoadmapService) UpdateRoadmap(ctx context.Context, roadmapID string, req dto.SaveRoadmapRequest) (*domain.Roadmap, error) {
	current, err := s.GetRoadmapByID(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	current.Title = req.Title
	current.Category = req.Category
	current.Description = req.Description
	current.Levels = req.Levels()
	current.UpdatedAt = time.Now()

	if err := s.roadmapRepo.UpdateRoadmap(ctx, *current); err != nil {
		return nil, fmt.Errorf("failed to update roadmap: %w", err)
	}
	return current, nil
}

// DeleteRoadmap removes a roadmap.
func (s *RoadmapService) DeleteRoadmap(ctx context.Context, roadmapID string) error {
	if err := s.roadmapRepo.DeleteRoadmap(ctx, roadmapID); err != nil {
		return fmt.Errorf("failed to delete roadmap: %w", err)
	}
	return nil
}
