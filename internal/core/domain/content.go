package domain

import "time"

// ContentType distinguishes the media kinds a content item may carry.
type ContentType string

const (
	ContentTypeArticle ContentType = "article"
	ContentTypeVideo   ContentType = "video"
)

// ContentLevel is the difficulty bucket a content item is filed under.
type ContentLevel string

const (
	LevelBeginner     ContentLevel = "beginner"
	LevelIntermediate ContentLevel = "intermediate"
	LevelAdvanced     ContentLevel = "advanced"
)

// ContentStatus tracks the publishing lifecycle of a content item.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// Content is a learning article or video. Only published items are visible to
// end users, and premium items only in full to entitled viewers.
type Content struct {
	ContentID   string        `json:"contentID"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Summary     string        `json:"summary"`
	Types       []ContentType `json:"types"`
	Level       ContentLevel  `json:"level"`
	Topics      []string      `json:"topics"`
	Body        string        `json:"body"`
	MediaURL    string        `json:"mediaUrl"`
	SourceURL   string        `json:"sourceUrl"`
	Status      ContentStatus `json:"status"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	AuthorID    string        `json:"authorID"`
	IsPremium   bool          `json:"isPremium"`
	Views       int64         `json:"views"`
	AuditFields
}

// IsPublished reports whether the item is in the published state.
func (c *Content) IsPublished() bool {
	return c.Status == StatusPublished
}
