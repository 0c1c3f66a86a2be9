package services

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	"github.com/finlearnhq/finlearn_backend/internal/dto"
)

// ContentListing pairs a content item with the teaser decision made for the
// requesting viewer.
type ContentListing struct {
	Content domain.Content
	Teaser  bool
}

// ContentSvcFacade manages learning content and applies the entitlement rule
// on every read that leaves the admin surface.
type ContentSvcFacade interface {
	CreateContent(ctx context.Context, req dto.SaveContentRequest, authorID string) (*domain.Content, error)
	UpdateContent(ctx context.Context, contentID string, req dto.SaveContentRequest) (*domain.Content, error)
	DeleteContent(ctx context.Context, contentID string) error
	GetContentByID(ctx context.Context, contentID string) (*domain.Content, error)
	ListContents(ctx context.Context, filter repositories.ContentFilter) ([]domain.Content, int64, error)

	// GetContentForViewer returns the content a viewer may see for a slug.
	// Unpublished content is reported as not found unless the viewer is an
	// admin; premium content comes back teasered (body and media cleared)
	// when the viewer is not entitled. Views are counted on each hit.
	GetContentForViewer(ctx context.Context, slug string, viewerRole domain.Role, viewerIsPremium bool) (*domain.Content, bool, error)
	// ListPublishedForViewer lists published content with per-item teaser
	// decisions for the viewer.
	ListPublishedForViewer(ctx context.Context, filter repositories.ContentFilter, viewerRole domain.Role, viewerIsPremium bool) ([]ContentListing, int64, error)
}
