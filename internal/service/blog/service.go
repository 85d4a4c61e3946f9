package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glammyapp/salon-service/internal/domain"
	blogRepo "github.com/glammyapp/salon-service/internal/infra/storage/blog"
	"github.com/glammyapp/salon-service/internal/service/blog/models"
)

// Service сервис блога
type Service struct {
	repo   BlogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса блога
func NewService(repo BlogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает опубликованные статьи и категории блога
func (s *Service) List(ctx context.Context, categoryID *int64) (*models.BlogListResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("List: failed to load categories: %v", err)
		return nil, fmt.Errorf("%w: List - load categories: %v", ErrInternal, err)
	}

	posts, err := s.repo.ListPublished(ctx, categoryID)
	if err != nil {
		s.logger.Error("List: failed to load posts: %v", err)
		return nil, fmt.Errorf("%w: List - load posts: %v", ErrInternal, err)
	}

	return models.FromDomainBlogList(categories, posts), nil
}

// GetBySlug возвращает статью с одобренными комментариями
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.BlogPostDetailResponse, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, blogRepo.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	comments, err := s.repo.GetApprovedComments(ctx, post.ID)
	if err != nil {
		s.logger.Error("GetBySlug: failed to load comments for post id=%d: %v", post.ID, err)
		return nil, fmt.Errorf("%w: GetBySlug - load comments: %v", ErrInternal, err)
	}

	return models.FromDomainPostDetail(post, comments), nil
}

// AddComment добавляет комментарий к статье
// Комментарий попадает в очередь модерации
func (s *Service) AddComment(ctx context.Context, slug string, req *models.AddCommentRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("%w: name and body are required", ErrInvalidInput)
	}

	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, blogRepo.ErrPostNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("AddComment: repository error for slug=%s: %v", slug, err)
		return fmt.Errorf("%w: AddComment - repository error: %v", ErrInternal, err)
	}

	comment := &domain.BlogComment{
		PostID: post.ID,
		Name:   req.Name,
		Email:  req.Email,
		Body:   req.Body,
	}
	if _, err := s.repo.AddComment(ctx, comment); err != nil {
		s.logger.Error("AddComment: failed to store comment for post id=%d: %v", post.ID, err)
		return fmt.Errorf("%w: AddComment - store comment: %v", ErrInternal, err)
	}

	s.logger.Info("AddComment: comment id=%d added to post id=%d", comment.ID, post.ID)
	return nil
}

// CreatePost создает статью
func (s *Service) CreatePost(ctx context.Context, req *models.UpsertPostRequest) (*models.BlogPostResponse, error) {
	if err := validatePost(req); err != nil {
		return nil, err
	}

	created, err := s.repo.CreatePost(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, blogRepo.ErrSlugTaken) {
			s.logger.Warn("CreatePost: slug=%s already exists", req.Slug)
			return nil, ErrSlugTaken
		}
		s.logger.Error("CreatePost: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePost - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePost: post created id=%d slug=%s", created.ID, created.Slug)
	resp := models.FromDomainPost(created, true)
	return &resp, nil
}

// UpdatePost обновляет статью
// Дата первой публикации сохраняется при повторных правках
func (s *Service) UpdatePost(ctx context.Context, id int64, req *models.UpsertPostRequest) (*models.BlogPostResponse, error) {
	if err := validatePost(req); err != nil {
		return nil, err
	}

	post := req.ToDomain()
	post.ID = id

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		switch {
		case errors.Is(err, blogRepo.ErrPostNotFound):
			return nil, ErrPostNotFound
		case errors.Is(err, blogRepo.ErrSlugTaken):
			s.logger.Warn("UpdatePost: slug=%s already exists", req.Slug)
			return nil, ErrSlugTaken
		default:
			s.logger.Error("UpdatePost: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdatePost - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdatePost: failed to reload post id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePost - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePost: post updated id=%d", id)
	resp := models.FromDomainPost(updated, true)
	return &resp, nil
}

func validatePost(req *models.UpsertPostRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidInput)
	}
	return nil
}
