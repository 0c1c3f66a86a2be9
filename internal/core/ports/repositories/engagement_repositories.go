package repositories

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
)

// LikeRepository persists like toggles. InsertLike must surface
// apperrors.ErrDuplicate when the (contentID, userID) pair already exists;
// the database unique index is the source of truth under races.
type LikeRepository interface {
	InsertLike(ctx context.Context, like domain.Like) error
	DeleteLike(ctx context.Context, contentID, userID string) (bool, error)
	CountLikes(ctx context.Context, contentID string) (int64, error)
	FindLikedContentIDs(ctx context.Context, userID string) ([]string, error)
}

// CommentRepository persists comments and their shallow reply relation.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment domain.Comment) error
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	FindCommentsByContentID(ctx context.Context, contentID string) ([]domain.Comment, error)
	FindCommentedContentIDs(ctx context.Context, userID string) ([]string, error)
	UpdateCommentText(ctx context.Context, commentID, text string) error
	DeleteComment(ctx context.Context, commentID string) error
}
