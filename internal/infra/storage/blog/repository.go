package blog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/dbmetrics"
	"github.com/glammyapp/salon-service/pkg/psqlbuilder"
)

var postColumns = []string{
	"id",
	"category_id",
	"title",
	"slug",
	"excerpt",
	"body",
	"image_url",
	"is_published",
	"published_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с блогом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCategories возвращает категории блога
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.BlogCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "slug", "created_at").
		From("blog_categories").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.BlogCategory, 0)
	for rows.Next() {
		var c domain.BlogCategory
		var createdAt sql.NullTime
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		c.CreatedAt = createdAt.Time
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ListPublished возвращает опубликованные посты, сначала новые
// categoryID опционально сужает выборку до категории
func (r *Repository) ListPublished(ctx context.Context, categoryID *int64) ([]*domain.BlogPost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(postColumns...).
		From("blog_posts").
		Where(squirrel.Eq{"is_published": true}).
		OrderBy("published_at DESC")

	if categoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *categoryID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublished - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublished - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	posts := make([]*domain.BlogPost, 0)
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPublished - scan row: %v", ErrScanRow, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPublished - rows error: %v", ErrScanRow, err)
	}

	return posts, nil
}

// GetBySlug получает опубликованный пост по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(postColumns...).
		From("blog_posts").
		Where(squirrel.Eq{"slug": slug, "is_published": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - scan post: %v", ErrScanRow, err)
	}

	return p, nil
}

// AddComment сохраняет комментарий к посту
// Комментарий попадает на модерацию и виден только после одобрения
func (r *Repository) AddComment(ctx context.Context, c *domain.BlogComment) (*domain.BlogComment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blog_comments").
		Columns("post_id", "name", "email", "body", "is_approved").
		Values(c.PostID, c.Name, c.Email, c.Body, c.IsApproved).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddComment - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddComment - execute insert: %v", ErrExecQuery, err)
	}
	c.CreatedAt = createdAt.Time

	return c, nil
}

// GetApprovedComments возвращает одобренные комментарии поста
func (r *Repository) GetApprovedComments(ctx context.Context, postID int64) ([]*domain.BlogComment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "post_id", "name", "email", "body", "is_approved", "created_at").
		From("blog_comments").
		Where(squirrel.Eq{"post_id": postID, "is_approved": true}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedComments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedComments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	comments := make([]*domain.BlogComment, 0)
	for rows.Next() {
		var c domain.BlogComment
		var createdAt sql.NullTime
		if err := rows.Scan(&c.ID, &c.PostID, &c.Name, &c.Email, &c.Body, &c.IsApproved, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetApprovedComments - scan row: %v", ErrScanRow, err)
		}
		c.CreatedAt = createdAt.Time
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetApprovedComments - rows error: %v", ErrScanRow, err)
	}

	return comments, nil
}

func scanPost(scan func(dest ...interface{}) error) (*domain.BlogPost, error) {
	var p domain.BlogPost
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&p.ID,
		&p.CategoryID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Body,
		&p.ImageURL,
		&p.IsPublished,
		&p.PublishedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
