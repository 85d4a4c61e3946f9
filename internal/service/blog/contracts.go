package blog

import (
	"context"

	"github.com/glammyapp/salon-service/internal/domain"
)

// BlogRepository интерфейс репозитория блога
type BlogRepository interface {
	ListCategories(ctx context.Context) ([]*domain.BlogCategory, error)
	ListPublished(ctx context.Context, categoryID *int64) ([]*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	CreatePost(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, p *domain.BlogPost) error
	AddComment(ctx context.Context, c *domain.BlogComment) (*domain.BlogComment, error)
	GetApprovedComments(ctx context.Context, postID int64) ([]*domain.BlogComment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
