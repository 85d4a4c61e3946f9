package domain

import "time"

// BlogCategory groups blog posts
type BlogCategory struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
}

// BlogPost represents a published article
type BlogPost struct {
	ID          int64
	CategoryID  *int64
	Title       string
	Slug        string
	Excerpt     *string
	Body        string
	ImageURL    *string
	IsPublished bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlogComment is a reader comment awaiting moderation
type BlogComment struct {
	ID         int64
	PostID     int64
	Name       string
	Email      *string
	Body       string
	IsApproved bool
	CreatedAt  time.Time
}
