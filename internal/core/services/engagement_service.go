package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	portssvc "github.com/finlearnhq/finlearn_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// EngagementService implements EngagementSvcFacade over the like, comment
// and content repositories.
type EngagementService struct {
	likeRepo    portsrepo.LikeRepository
	commentRepo portsrepo.CommentRepository
	contentRepo portsrepo.ContentRepository
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(likeRepo portsrepo.LikeRepository, commentRepo portsrepo.CommentRepository, contentRepo portsrepo.ContentRepository) *EngagementService {
	return &EngagementService{likeRepo: likeRepo, commentRepo: commentRepo, contentRepo: contentRepo}
}

var _ portssvc.EngagementSvcFacade = (*EngagementService)(nil)

// ToggleLike likes the content if the user has not liked it yet and unlikes
// it otherwise. The unique index on (content_id, user_id) is the source of
// truth: a racing duplicate insert surfaces as ErrDuplicate and is treated
// as the unlike half of the toggle.
func (s *EngagementService) ToggleLike(ctx context.Context, contentID, userID string) (bool, int64, error) {
	content, err := s.contentRepo.FindContentByID(ctx, contentID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to check content for like: %w", err)
	}
	if content == nil {
		return false, 0, apperrors.ErrNotFound
	}

	like := domain.Like{
		LikeID:    uuid.NewString(),
		ContentID: contentID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	liked := true
	if err := s.likeRepo.InsertLike(ctx, like); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return false, 0, fmt.Errorf("failed to insert like: %w", err)
		}
		// Already liked: the toggle removes it.
		if _, err := s.likeRepo.DeleteLike(ctx, contentID, userID); err != nil {
			return false, 0, fmt.Errorf("failed to delete like: %w", err)
		}
		liked = false
	}

	count, err := s.likeRepo.CountLikes(ctx, contentID)
	if err != nil {
		return liked, 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return liked, count, nil
}

// CountLikes returns the number of likes for a content item.
func (s *EngagementService) CountLikes(ctx context.Context, contentID string) (int64, error) {
	count, err := s.likeRepo.CountLikes(ctx, contentID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// AddComment creates a comment, optionally as a reply to an existing one.
func (s *EngagementService) AddComment(ctx context.Context, contentID, userID, text string, parentCommentID *string) (*domain.Comment, error) {
	content, err := s.contentRepo.FindContentByID(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check content for comment: %w", err)
	}
	if content == nil {
		return nil, apperrors.ErrNotFound
	}

	if parentCommentID != nil {
		parent, err := s.commentRepo.FindCommentByID(ctx, *parentCommentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check parent comment: %w", err)
		}
		if parent == nil || parent.ContentID != contentID {
			return nil, apperrors.ErrValidation
		}
	}

	now := time.Now()
	comment := domain.Comment{
		CommentID:       uuid.NewString(),
		ContentID:       contentID,
		UserID:          userID,
		Text:            text,
		ParentCommentID: parentCommentID,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

// ListComments returns all comments on a content item, oldest first.
func (s *EngagementService) ListComments(ctx context.Context, contentID string) ([]domain.Comment, error) {
	comments, err := s.commentRepo.FindCommentsByContentID(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// EditComment updates the text of a comment owned by userID.
func (s *EngagementService) EditComment(ctx context.Context, commentID, userID, text string) (*domain.Comment, error) {
	comment, err := s.ownedComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.UpdateCommentText(ctx, commentID, text); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	comment.Text = text
	comment.UpdatedAt = time.Now()
	return comment, nil
}

// DeleteComment removes a comment owned by userID. Replies are removed with
// it by the database cascade.
func (s *EngagementService) DeleteComment(ctx context.Context, commentID, userID string) error {
	if _, err := s.ownedComment(ctx, commentID, userID); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *EngagementService) ownedComment(ctx context.Context, commentID, userID string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	if comment == nil {
		return nil, apperrors.ErrNotFound
	}
	if comment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return comment, nil
}

// GetUserActivity aggregates the content a user liked and commented on,
// de-duplicating the commented list.
func (s *EngagementService) GetUserActivity(ctx context.Context, userID string) (*portssvc.UserActivity, error) {
	likedIDs, err := s.likeRepo.FindLikedContentIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find liked content: %w", err)
	}
	commentedIDs, err := s.commentRepo.FindCommentedContentIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find commented content: %w", err)
	}

	activity := &portssvc.UserActivity{
		Liked:     []domain.Content{},
		Commented: []domain.Content{},
	}

	for _, id := range likedIDs {
		content, err := s.contentRepo.FindContentByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve liked content: %w", err)
		}
		if content != nil {
			activity.Liked = append(activity.Liked, *content)
		}
	}

	seen := make(map[string]struct{}, len(commentedIDs))
	for _, id := range commentedIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		content, err := s.contentRepo.FindContentByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve commented content: %w", err)
		}
		if content != nil {
			activity.Commented = append(activity.Commented, *content)
		}
	}

	return activity, nil
}
