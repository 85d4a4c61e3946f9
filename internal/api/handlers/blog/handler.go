package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	blogService "github.com/glammyapp/salon-service/internal/service/blog"
	"github.com/glammyapp/salon-service/internal/service/blog/models"
)

const (
	msgInvalidCategoryID  = "invalid category ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPostID      = "invalid post ID"
	msgPostNotFound       = "blog post not found"
	msgInvalidComment     = "name and comment text are required"
	msgSlugTaken          = "post slug already exists"
	msgInvalidPost        = "invalid post data"
)

type Handler struct {
	service BlogService
	logger  Logger
}

func NewHandler(service BlogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/blog/posts
// Query params: categoryId (опционально)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if categoryIDStr := r.URL.Query().Get("categoryId"); categoryIDStr != "" {
		id, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /blog/posts - Invalid category ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = &id
	}

	result, err := h.service.List(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("GET /blog/posts - Failed to list posts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blog/posts - Posts retrieved: count=%d", len(result.Posts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/blog/posts/{slug}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, blogService.ErrPostNotFound):
			h.logger.Warn("GET /blog/posts/{slug} - Post not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgPostNotFound)

		default:
			h.logger.Error("GET /blog/posts/{slug} - Failed to get post: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blog/posts/{slug} - Post retrieved: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAddComment POST /api/v1/blog/posts/{slug}/comments
// Комментарий попадает в очередь модерации
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req models.AddCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blog/posts/{slug}/comments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AddComment(r.Context(), slug, &req); err != nil {
		switch {
		case errors.Is(err, blogService.ErrPostNotFound):
			h.logger.Warn("POST /blog/posts/{slug}/comments - Post not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgPostNotFound)

		case errors.Is(err, blogService.ErrInvalidInput):
			h.logger.Warn("POST /blog/posts/{slug}/comments - Invalid comment: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidComment)

		default:
			h.logger.Error("POST /blog/posts/{slug}/comments - Failed to add comment: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blog/posts/{slug}/comments - Comment submitted for moderation: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusAccepted, nil)
}

// HandleAdminCreate POST /api/v1/admin/blog/posts
func (h *Handler) HandleAdminCreate(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertPostRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blog/posts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreatePost(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blogService.ErrSlugTaken):
			h.logger.Warn("POST /admin/blog/posts - Slug taken: slug=%s", req.Slug)
			handlers.RespondError(w, http.StatusConflict, msgSlugTaken)

		case errors.Is(err, blogService.ErrInvalidInput):
			h.logger.Warn("POST /admin/blog/posts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPost)

		default:
			h.logger.Error("POST /admin/blog/posts - Failed to create post: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blog/posts - Post created: post_id=%d, slug=%s", result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleAdminUpdate PUT /api/v1/admin/blog/posts/{postId}
func (h *Handler) HandleAdminUpdate(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(mux.Vars(r)["postId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/blog/posts/{id} - Invalid post ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPostID)
		return
	}

	var req models.UpsertPostRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/blog/posts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePost(r.Context(), postID, &req)
	if err != nil {
		switch {
		case errors.Is(err, blogService.ErrPostNotFound):
			h.logger.Warn("PUT /admin/blog/posts/{id} - Post not found: post_id=%d", postID)
			handlers.RespondNotFound(w, msgPostNotFound)

		case errors.Is(err, blogService.ErrSlugTaken):
			h.logger.Warn("PUT /admin/blog/posts/{id} - Slug taken: post_id=%d, slug=%s", postID, req.Slug)
			handlers.RespondError(w, http.StatusConflict, msgSlugTaken)

		case errors.Is(err, blogService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/blog/posts/{id} - Invalid input: post_id=%d, error=%v", postID, err)
			handlers.RespondBadRequest(w, msgInvalidPost)

		default:
			h.logger.Error("PUT /admin/blog/posts/{id} - Failed to update post: post_id=%d, error=%v", postID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/blog/posts/{id} - Post updated: post_id=%d", postID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
