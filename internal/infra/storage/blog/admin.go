package blog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// GetByID получает пост по ID независимо от статуса публикации
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(postColumns...).
		From("blog_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan post: %v", ErrScanRow, err)
	}

	return p, nil
}

// CreatePost создает пост
// При публикации published_at проставляется на стороне БД
func (r *Repository) CreatePost(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blog_posts").
		Columns(
			"category_id",
			"title",
			"slug",
			"excerpt",
			"body",
			"image_url",
			"is_published",
			"published_at",
		).
		Values(
			p.CategoryID,
			p.Title,
			p.Slug,
			orEmpty(p.Excerpt),
			p.Body,
			orEmpty(p.ImageURL),
			p.IsPublished,
			squirrel.Expr("CASE WHEN ? THEN NOW() END", p.IsPublished),
		).
		Suffix("RETURNING id, published_at, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePost - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.PublishedAt, &createdAt, &updatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePost - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// UpdatePost обновляет пост
// Дата первой публикации сохраняется и не затирается повторным сохранением
func (r *Repository) UpdatePost(ctx context.Context, p *domain.BlogPost) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	publishedAt := squirrel.Expr("CASE WHEN ? THEN COALESCE(published_at, NOW()) END", p.IsPublished)

	query, args, err := psqlbuilder.Update("blog_posts").
		Set("category_id", p.CategoryID).
		Set("title", p.Title).
		Set("slug", p.Slug).
		Set("excerpt", orEmpty(p.Excerpt)).
		Set("body", p.Body).
		Set("image_url", orEmpty(p.ImageURL)).
		Set("is_published", p.IsPublished).
		Set("published_at", publishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePost - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
		return ErrSlugTaken
	}
	if err != nil {
		return fmt.Errorf("%w: UpdatePost - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePost - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
