package blog

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/blog/models"
)

type BlogService interface {
	List(ctx context.Context, categoryID *int64) (*models.BlogListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPostDetailResponse, error)
	AddComment(ctx context.Context, slug string, req *models.AddCommentRequest) error
	CreatePost(ctx context.Context, req *models.UpsertPostRequest) (*models.BlogPostResponse, error)
	UpdatePost(ctx context.Context, id int64, req *models.UpsertPostRequest) (*models.BlogPostResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
