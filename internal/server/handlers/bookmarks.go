package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
	"github.com/iudanet/unipress/pkg/api"
)

// BookmarkHandler обрабатывает запросы к закладкам
type BookmarkHandler struct {
	bookmarks storage.BookmarkStorage
	pub       Publisher
	responder
}

// NewBookmarkHandler создает handler закладок
func NewBookmarkHandler(logger *slog.Logger, bookmarks storage.BookmarkStorage, pub Publisher) *BookmarkHandler {
	return &BookmarkHandler{
		responder: responder{logger: logger},
		bookmarks: bookmarks,
		pub:       pub,
	}
}

// List обрабатывает GET /api/v1/bookmarks
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.unauthorized(w, "authentication required")
		return
	}

	bookmarks, err := h.bookmarks.ListBookmarks(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list bookmarks", err)
		return
	}

	h.sendJSON(w, bookmarks, http.StatusOK)
}

// Toggle обрабатывает POST /api/v1/bookmarks
// Создает закладку на статью или удаляет существующую
func (h *BookmarkHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthorized(w, "authentication required")
		return
	}

	var req api.BookmarkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if req.ArticleID == "" {
		h.badRequest(w, "article_id is required")
		return
	}

	b, active, err := h.bookmarks.ToggleBookmark(ctx, models.Bookmark{
		ID:        uuid.New().String(),
		UserID:    userID,
		ArticleID: req.ArticleID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			h.notFound(w, "article not found")
			return
		}
		h.internalError(w, r, "failed to toggle bookmark", err)
		return
	}

	resp := api.BookmarkToggleResponse{Active: active}
	if active {
		resp.Bookmark = &b
		publishChange(h.pub, h.logger, api.EventInsert, api.TableBookmarks, userID, b, nil)
	} else {
		publishChange(h.pub, h.logger, api.EventDelete, api.TableBookmarks, userID, nil, b)
	}

	h.sendJSON(w, resp, http.StatusOK)
}
