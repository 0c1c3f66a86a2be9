package services

import (
	"context"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
)

// UserActivity aggregates the content a user has engaged with.
type UserActivity struct {
	Liked     []domain.Content `json:"liked"`
	Commented []domain.Content `json:"commented"`
}

// EngagementSvcFacade manages likes, comments and the activity feed.
type EngagementSvcFacade interface {
	// ToggleLike likes the content if the user has not liked it yet and
	// unlikes it otherwise. Returns the resulting liked state and count.
	ToggleLike(ctx context.Context, contentID, userID string) (bool, int64, error)
	CountLikes(ctx context.Context, contentID string) (int64, error)

	AddComment(ctx context.Context, contentID, userID, text string, parentCommentID *string) (*domain.Comment, error)
	ListComments(ctx context.Context, contentID string) ([]domain.Comment, error)
	// EditComment updates the text of a comment owned by userID.
	EditComment(ctx context.Context, commentID, userID, text string) (*domain.Comment, error)
	// DeleteComment removes a comment owned by userID; replies go with it.
	DeleteComment(ctx context.Context, commentID, userID string) error

	GetUserActivity(ctx context.Context, userID string) (*UserActivity, error)
}
