package domain

import "time"

// Like records that a user liked a content item. At most one Like may exist
// per (ContentID, UserID) pair; the database unique index is the source of
// truth for that invariant.
type Like struct {
	LikeID    string    `json:"likeID"`
	ContentID string    `json:"contentID"`
	UserID    string    `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a user comment on a content item. ParentCommentID forms a
// shallow reply relation; deleting a parent cascades to its replies.
type Comment struct {
	CommentID       string  `json:"commentID"`
	ContentID       string  `json:"contentID"`
	UserID          string  `json:"userID"`
	Text            string  `json:"text"`
	ParentCommentID *string `json:"parentCommentID,omitempty"`
	AuditFields
}
