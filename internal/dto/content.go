package dto

import (
	"time"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
)

// SaveContentRequest carries the fields an admin may set when creating or
// updating a content item.
type SaveContentRequest struct {
	Title     string   `json:"title" binding:"required"`
	Slug      string   `json:"slug" binding:"required"`
	Summary   string   `json:"summary"`
	Types     []string `json:"types" binding:"required,min=1,dive,oneof=article video"`
	Level     string   `json:"level" binding:"required,contentlevel"`
	Topics    []string `json:"topics"`
	Body      string   `json:"body"`
	MediaURL  string   `json:"mediaUrl"`
	SourceURL string   `json:"sourceUrl"`
	Status    string   `json:"status" binding:"required,oneof=draft published archived"`
	IsPremium bool     `json:"isPremium"`
}

// ContentResponse is the viewer-facing content shape. IsTeaser marks a
// premium item whose body and media were withheld from a non-entitled viewer.
type ContentResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Summary     string               `json:"summary"`
	Types       []domain.ContentType `json:"types"`
	Level       domain.ContentLevel  `json:"level"`
	Topics      []string             `json:"topics"`
	Body        string               `json:"body,omitempty"`
	MediaURL    string               `json:"mediaUrl,omitempty"`
	SourceURL   string               `json:"sourceUrl,omitempty"`
	Status      domain.ContentStatus `json:"status"`
	PublishedAt *time.Time           `json:"publishedAt,omitempty"`
	IsPremium   bool                 `json:"isPremium"`
	IsTeaser    bool                 `json:"isTeaser"`
	Views       int64                `json:"views"`
}

// ToContentResponse converts a domain content item for a viewer. When teaser
// is set, the body and media fields are cleared so premium material never
// reaches a non-entitled viewer.
func ToContentResponse(content *domain.Content, teaser bool) ContentResponse {
	resp := ContentResponse{
		ID:          content.ContentID,
		Title:       content.Title,
		Slug:        content.Slug,
		Summary:     content.Summary,
		Types:       content.Types,
		Level:       content.Level,
		Topics:      content.Topics,
		Body:        content.Body,
		MediaURL:    content.MediaURL,
		SourceURL:   content.SourceURL,
		Status:      content.Status,
		PublishedAt: content.PublishedAt,
		IsPremium:   content.IsPremium,
		IsTeaser:    teaser,
		Views:       content.Views,
	}
	if teaser {
		resp.Body = ""
		resp.MediaURL = ""
		resp.SourceURL = ""
	}
	return resp
}

// ListContentParams are the query parameters accepted by content listings.
type ListContentParams struct {
	ListParams
	Level string `form:"level" binding:"omitempty,contentlevel"`
	Topic string `form:"topic"`
	Type  string `form:"type" binding:"omitempty,oneof=article video"`
}
