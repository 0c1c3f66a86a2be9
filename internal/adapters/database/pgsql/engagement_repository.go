package pgsql

import (
	"context"
	"fmt"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// LikeRepository persists like toggles in PostgreSQL.
type LikeRepository struct {
	db DBTX
}

func NewLikeRepository(db DBTX) *LikeRepository {
	return &LikeRepository{db: db}
}

var _ portsrepo.LikeRepository = (*LikeRepository)(nil)

// InsertLike inserts a like row. The unique index on (content_id, user_id)
// rejects duplicates even under concurrent inserts; that case surfaces as
// apperrors.ErrDuplicate.
func (r *LikeRepository) InsertLike(ctx context.Context, like domain.Like) error {
	query := `
        INSERT INTO likes (like_id, content_id, user_id, created_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, like.LikeID, like.ContentID, like.UserID, like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) DeleteLike(ctx context.Context, contentID, userID string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM likes WHERE content_id = $1 AND user_id = $2;`, contentID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *LikeRepository) CountLikes(ctx context.Context, contentID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE content_id = $1;`, contentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (r *LikeRepository) FindLikedContentIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT content_id FROM likes WHERE user_id = $1 ORDER BY created_at DESC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked content: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked content row: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating liked content rows: %w", rows.Err())
	}
	return ids, nil
}

// CommentRepository persists comments in PostgreSQL. The parent_comment_id
// foreign key is declared ON DELETE CASCADE, so deleting a parent removes
// its replies.
type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

var _ portsrepo.CommentRepository = (*CommentRepository)(nil)

const commentColumns = `comment_id, content_id, user_id, text, parent_comment_id, created_at, updated_at`

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(
		&comment.CommentID,
		&comment.ContentID,
		&comment.UserID,
		&comment.Text,
		&comment.ParentCommentID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment domain.Comment) error {
	query := `
        INSERT INTO comments (comment_id, content_id, user_id, text, parent_comment_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		comment.CommentID,
		comment.ContentID,
		comment.UserID,
		comment.Text,
		comment.ParentCommentID,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1;`
	comment, err := scanComment(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		return nil, fmt.Errorf("failed to find comment by ID: %w", err)
	}
	return comment, nil
}

func (r *CommentRepository) FindCommentsByContentID(ctx context.Context, contentID string) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE content_id = $1 ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, *comment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *CommentRepository) FindCommentedContentIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT content_id FROM comments WHERE user_id = $1 ORDER BY created_at DESC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query commented content: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan commented content row: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating commented content rows: %w", rows.Err())
	}
	return ids, nil
}

func (r *CommentRepository) UpdateCommentText(ctx context.Context, commentID, text string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE comments SET text = $1, updated_at = NOW() WHERE comment_id = $2;`, text, commentID)
	if err != nil {
		return fmt.Errorf("failed to update comment text: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
