package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
	"github.com/finlearnhq/finlearn_backend/internal/middleware"
	"github.com/google/uuid"
)

// ContentService implements ContentSvcFacade over the content repository.
type ContentService struct {
	contentRepo portsrepo.ContentRepository
}

// NewContentService creates a new ContentService.
func NewContentService(contentRepo portsrepo.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

var _ portssvc.ContentSvcFacade = (*ContentService)(nil)

func contentFromRequest(req dto.SaveContentRequest) domain.Content {
	types := make([]domain.ContentType, len(req.Types))
	for i, t := range req.Types {
		types[i] = domain.ContentType(t)
	}
	return domain.Content{
		Title:     req.Title,
		Slug:      req.Slug,
		Summary:   req.Summary,
		Types:     types,
		Level:     domain.ContentLevel(req.Level),
		Topics:    req.Topics,
		Body:      req.Body,
		MediaURL:  req.MediaURL,
		SourceURL: req.SourceURL,
		Status:    domain.ContentStatus(req.Status),
		IsPremium: req.IsPremium,
	}
}

// CreateContent creates a content item owned by the authoring admin.
func (s *ContentService) CreateContent(ctx context.Context, req dto.SaveContentRequest, authorID string) (*domain.Content, error) {
	existing, err := s.contentRepo.FindContentBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	now := time.Now()
	content := contentFromRequest(req)
	content.ContentID = uuid.NewString()
	content.AuthorID = authorID
	content.AuditFields = domain.AuditFields{CreatedAt: now, UpdatedAt: now}
	if content.Status == domain.StatusPublished {
		content.PublishedAt = &now
	}

	if err := s.contentRepo.CreateContent(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return &content, nil
}

// UpdateContent replaces the editable fields of a content item. The first
// transition to published stamps PublishedAt.
func (s *ContentService) UpdateContent(ctx context.Context, contentID string, req dto.SaveContentRequest) (*domain.Content, error) {
	current, err := s.GetContentByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if req.Slug != current.Slug {
		existing, err := s.contentRepo.FindContentBySlug(ctx, req.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing slug: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrDuplicate
		}
	}

	now := time.Now()
	updated := contentFromRequest(req)
	updated.ContentID = current.ContentID
	updated.AuthorID = current.AuthorID
	updated.Views = current.Views
	updated.AuditFields = domain.AuditFields{CreatedAt: current.CreatedAt, UpdatedAt: now}
	updated.PublishedAt = current.PublishedAt
	if updated.Status == domain.StatusPublished && current.PublishedAt == nil {
		updated.PublishedAt = &now
	}

	if err := s.contentRepo.UpdateContent(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}
	return &updated, nil
}

// DeleteContent removes a content item.
func (s *ContentService) DeleteContent(ctx context.Context, contentID string) error {
	if err := s.contentRepo.DeleteContent(ctx, contentID); err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	return nil
}

// GetContentByID fetches a content item for the admin surface.
func (s *ContentService) GetContentByID(ctx context.Context, contentID string) (*domain.Content, error) {
	content, err := s.contentRepo.FindContentByID(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content by ID: %w", err)
	}
	if content == nil {
		return nil, apperrors.ErrNotFound
	}
	return content, nil
}

// ListContents lists content without entitlement filtering (admin surface).
func (s *ContentService) ListContents(ctx context.Context, filter portsrepo.ContentFilter) ([]domain.Content, int64, error) {
	contents, total, err := s.contentRepo.FindContents(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contents: %w", err)
	}
	return contents, total, nil
}

// GetContentForViewer returns the content a viewer may see for a slug.
// Unpublished content is reported as not found to everyone but admins, so
// its existence does not leak. Premium content comes back with the teaser
// flag set when the viewer is not entitled; the handler strips the body.
func (s *ContentService) GetContentForViewer(ctx context.Context, slug string, viewerRole domain.Role, viewerIsPremium bool) (*domain.Content, bool, error) {
	content, err := s.contentRepo.FindContentBySlug(ctx, slug)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get content by slug: %w", err)
	}
	if content == nil {
		return nil, false, apperrors.ErrNotFound
	}

	if !content.IsPublished() && viewerRole != domain.RoleAdmin {
		return nil, false, apperrors.ErrNotFound
	}

	teaser := !CanViewFull(content, viewerRole, viewerIsPremium)

	if err := s.contentRepo.IncrementViews(ctx, content.ContentID); err != nil {
		// A lost view count must not fail the read.
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to increment content views",
			slog.String("content_id", content.ContentID), slog.String("error", err.Error()))
	}

	return content, teaser, nil
}

// ListPublishedForViewer lists published content with per-item teaser
// decisions for the viewer.
func (s *ContentService) ListPublishedForViewer(ctx context.Context, filter portsrepo.ContentFilter, viewerRole domain.Role, viewerIsPremium bool) ([]portssvc.ContentListing, int64, error) {
	filter.Status = domain.StatusPublished
	contents, total, err := s.contentRepo.FindContents(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list published contents: %w", err)
	}

	listings := make([]portssvc.ContentListing, len(contents))
	for i := range contents {
		listings[i] = portssvc.ContentListing{
			Content: contents[i],
			Teaser:  !CanViewFull(&contents[i], viewerRole, viewerIsPremium),
		}
	}
	return listings, total, nil
}
