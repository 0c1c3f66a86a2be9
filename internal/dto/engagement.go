package dto

import (
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
)

// ToggleLikeRequest identifies the content whose like state to flip.
type ToggleLikeRequest struct {
	ContentID string `json:"contentId" binding:"required"`
}

// ToggleLikeResponse reports the resulting like state.
type ToggleLikeResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// LikeCountResponse is returned by the public like count endpoint.
type LikeCountResponse struct {
	ContentID string `json:"contentId"`
	Count     int64  `json:"count"`
}

// AddCommentRequest creates a comment, optionally as a reply.
type AddCommentRequest struct {
	ContentID       string  `json:"contentId" binding:"required"`
	Text            string  `json:"text" binding:"required"`
	ParentCommentID *string `json:"parentCommentId"`
}

// EditCommentRequest updates a comment's text.
type EditCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse is the outward comment shape.
type CommentResponse struct {
	ID              string    `json:"id"`
	ContentID       string    `json:"contentId"`
	UserID          string    `json:"userId"`
	Text            string    `json:"text"`
	ParentCommentID *string   `json:"parentCommentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToCommentResponse converts a domain comment.
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:              comment.CommentID,
		ContentID:       comment.ContentID,
		UserID:          comment.UserID,
		Text:            comment.Text,
		ParentCommentID: comment.ParentCommentID,
		CreatedAt:       comment.CreatedAt,
	}
}
