package repositories

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
)

// ContentFilter narrows content listings. Zero values mean "no filter".
type ContentFilter struct {
	Level  domain.ContentLevel
	Topic  string
	Type   domain.ContentType
	Status domain.ContentStatus
	Limit  int
	Offset int
}

// ContentRepository persists learning content.
type ContentRepository interface {
	CreateContent(ctx context.Context, content domain.Content) error
	FindContentByID(ctx context.Context, contentID string) (*domain.Content, error)
	FindContentBySlug(ctx context.Context, slug string) (*domain.Content, error)
	FindContents(ctx context.Context, filter ContentFilter) ([]domain.Content, int64, error)
	UpdateContent(ctx context.Context, content domain.Content) error
	DeleteContent(ctx context.Context, contentID string) error
	IncrementViews(ctx context.Context, contentID string) error
}
