package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/finlearnhq/finlearn_backend/internal/apperrors"
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	portsrepo "github.com/finlearnhq/finlearn_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// ContentRepository persists learning content in PostgreSQL.
type ContentRepository struct {
	db DBTX
}

func NewContentRepository(db DBTX) *ContentRepository {
	return &ContentRepository{db: db}
}

var _ portsrepo.ContentRepository = (*ContentRepository)(nil)

const contentColumns = `content_id, title, slug, summary, types, level, topics, body, media_url, source_url, status, published_at, author_id, is_premium, views, created_at, updated_at`

func scanContent(row pgx.Row) (*domain.Content, error) {
	var content domain.Content
	var types []string
	err := row.Scan(
		&content.ContentID,
		&content.Title,
		&content.Slug,
		&content.Summary,
		&types,
		&content.Level,
		&content.Topics,
		&content.Body,
		&content.MediaURL,
		&content.SourceURL,
		&content.Status,
		&content.PublishedAt,
		&content.AuthorID,
		&content.IsPremium,
		&content.Views,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	content.Types = make([]domain.ContentType, len(types))
	for i, t := range types {
		content.Types[i] = domain.ContentType(t)
	}
	return &content, nil
}

func typesToStrings(types []domain.ContentType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func (r *ContentRepository) CreateContent(ctx context.Context, content domain.Content) error {
	query := `
        INSERT INTO contents (content_id, title, slug, summary, types, level, topics, body, media_url, source_url, status, published_at, author_id, is_premium, views, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.db.Exec(ctx, query,
		content.ContentID,
		content.Title,
		content.Slug,
		content.Summary,
		typesToStrings(content.Types),
		content.Level,
		content.Topics,
		content.Body,
		content.MediaURL,
		content.SourceURL,
		content.Status,
		content.PublishedAt,
		content.AuthorID,
		content.IsPremium,
		content.Views,
		content.CreatedAt,
		content.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

func (r *ContentRepository) FindContentByID(ctx context.Context, contentID string) (*domain.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE content_id = $1;`
	content, err := scanContent(r.db.QueryRow(ctx, query, contentID))
	if err != nil {
		return nil, fmt.Errorf("failed to find content by ID: %w", err)
	}
	return content, nil
}

func (r *ContentRepository) FindContentBySlug(ctx context.Context, slug string) (*domain.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE slug = $1;`
	content, err := scanContent(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, fmt.Errorf("failed to find content by slug: %w", err)
	}
	return content, nil
}

// FindContents lists content matching the filter, newest first, with the
// total match count.
func (r *ContentRepository) FindContents(ctx context.Context, filter portsrepo.ContentFilter) ([]domain.Content, int64, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	conditions := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, "status = "+arg(filter.Status))
	}
	if filter.Level != "" {
		conditions = append(conditions, "level = "+arg(filter.Level))
	}
	if filter.Topic != "" {
		conditions = append(conditions, arg(filter.Topic)+" = ANY(topics)")
	}
	if filter.Type != "" {
		conditions = append(conditions, arg(string(filter.Type))+" = ANY(types)")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contents`+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contents: %w", err)
	}

	query := `SELECT ` + contentColumns + ` FROM contents` + where +
		` ORDER BY created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset) + `;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contents: %w", err)
	}
	defer rows.Close()

	contents := []domain.Content{}
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan content row: %w", err)
		}
		contents = append(contents, *content)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating content rows: %w", rows.Err())
	}

	return contents, total, nil
}

func (r *ContentRepository) UpdateContent(ctx context.Context, content domain.Content) error {
	query := `
        UPDATE contents
        SET title = $1, slug = $2, summary = $3, types = $4, level = $5, topics = $6,
            body = $7, media_url = $8, source_url = $9, status = $10, published_at = $11,
            is_premium = $12, updated_at = $13
        WHERE content_id = $14;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		content.Title,
		content.Slug,
		content.Summary,
		typesToStrings(content.Types),
		content.Level,
		content.Topics,
		content.Body,
		content.MediaURL,
		content.SourceURL,
		content.Status,
		content.PublishedAt,
		content.IsPremium,
		content.UpdatedAt,
		content.ContentID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update content: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) DeleteContent(ctx context.Context, contentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contents WHERE content_id = $1;`, contentID)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) IncrementViews(ctx context.Context, contentID string) error {
	_, err := r.db.Exec(ctx, `UPDATE contents SET views = views + 1 WHERE content_id = $1;`, contentID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}
