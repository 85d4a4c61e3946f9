package models

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
)

// AddCommentRequest запрос на добавление комментария
// Комментарий появится на сайте после модерации
type AddCommentRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Body  string  `json:"body"`
}

// UpsertPostRequest запрос на создание или обновление статьи
type UpsertPostRequest struct {
	CategoryID  *int64  `json:"categoryId,omitempty"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Excerpt     *string `json:"excerpt,omitempty"`
	Body        string  `json:"body"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsPublished bool    `json:"isPublished"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpsertPostRequest) ToDomain() *domain.BlogPost {
	return &domain.BlogPost{
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Body:        r.Body,
		ImageURL:    r.ImageURL,
		IsPublished: r.IsPublished,
	}
}

// BlogCategoryResponse категория блога
type BlogCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BlogPostResponse статья блога
type BlogPostResponse struct {
	ID          int64      `json:"id"`
	CategoryID  *int64     `json:"categoryId,omitempty"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Body        string     `json:"body,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// BlogCommentResponse одобренный комментарий
type BlogCommentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogPostDetailResponse статья с комментариями
type BlogPostDetailResponse struct {
	Post     BlogPostResponse      `json:"post"`
	Comments []BlogCommentResponse `json:"comments"`
}

// BlogListResponse список статей с категориями
type BlogListResponse struct {
	Categories []BlogCategoryResponse `json:"categories"`
	Posts      []BlogPostResponse     `json:"posts"`
}

// FromDomainPost конвертирует статью в DTO
// Для списков тело статьи опускается
func FromDomainPost(p *domain.BlogPost, includeBody bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		ImageURL:    p.ImageURL,
		PublishedAt: p.PublishedAt,
	}
	if includeBody {
		resp.Body = p.Body
	}
	return resp
}

// FromDomainBlogList собирает ответ списка статей
func FromDomainBlogList(categories []*domain.BlogCategory, posts []*domain.BlogPost) *BlogListResponse {
	resp := &BlogListResponse{
		Categories: make([]BlogCategoryResponse, 0, len(categories)),
		Posts:      make([]BlogPostResponse, 0, len(posts)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, BlogCategoryResponse{
			ID:   c.ID,
			Name: c.Name,
			Slug: c.Slug,
		})
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, FromDomainPost(p, false))
	}
	return resp
}

// FromDomainPostDetail собирает ответ статьи с комментариями
func FromDomainPostDetail(post *domain.BlogPost, comments []*domain.BlogComment) *BlogPostDetailResponse {
	resp := &BlogPostDetailResponse{
		Post:     FromDomainPost(post, true),
		Comments: make([]BlogCommentResponse, 0, len(comments)),
	}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, BlogCommentResponse{
			ID:        c.ID,
			Name:      c.Name,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return resp
}
