package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
	"github.com/iudanet/unipress/internal/validation"
	"github.com/iudanet/unipress/pkg/api"
)

// CommentHandler обрабатывает запросы к комментариям
type CommentHandler struct {
	comments storage.CommentStorage
	articles storage.ArticleStorage
	settings storage.SettingsStorage
	pub      Publisher
	responder
}

// NewCommentHandler создает handler комментариев
func NewCommentHandler(logger *slog.Logger, comments storage.CommentStorage, articles storage.ArticleStorage, settings storage.SettingsStorage, pub Publisher) *CommentHandler {
	return &CommentHandler{
		responder: responder{logger: logger},
		comments:  comments,
		articles:  articles,
		settings:  settings,
		pub:       pub,
	}
}

// List обрабатывает GET /api/v1/articles/{id}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := GetPrincipal(ctx)

	article, ok := h.article(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if !canView(p, article) {
		h.notFound(w, "article not found")
		return
	}

	comments, err := h.comments.ListComments(ctx, article.ID)
	if err != nil {
		h.internalError(w, r, "failed to list comments", err)
		return
	}

	h.sendJSON(w, comments, http.StatusOK)
}

// Create обрабатывает POST /api/v1/articles/{id}/comments
// Комментарий или ответ (parent_id) к опубликованной статье
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := GetPrincipal(ctx)
	if !ok {
		h.unauthorized(w, "authentication required")
		return
	}

	var req api.CommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if err := validation.ValidateComment(req.Content); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	settings, err := h.settings.GetSettings(ctx)
	if err != nil {
		h.internalError(w, r, "failed to get settings", err)
		return
	}
	if !settings.CommentsEnabled {
		h.forbidden(w, "comments are disabled")
		return
	}

	article, ok := h.article(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if article.Status != models.ArticlePublished {
		h.forbidden(w, "comments are only allowed on published articles")
		return
	}

	now := time.Now().UTC()
	c := &models.Comment{
		ID:         uuid.New().String(),
		ArticleID:  article.ID,
		ParentID:   req.ParentID,
		AuthorID:   p.UserID,
		AuthorName: p.Username,
		Content:    strings.TrimSpace(req.Content),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.comments.CreateComment(ctx, c); err != nil {
		switch {
		case errors.Is(err, storage.ErrArticleNotFound):
			h.notFound(w, "article not found")
		case errors.Is(err, storage.ErrCommentNotFound):
			h.badRequest(w, "parent comment not found")
		case errors.Is(err, storage.ErrParentMismatch):
			h.badRequest(w, "parent comment belongs to another article")
		default:
			h.internalError(w, r, "failed to create comment", err)
		}
		return
	}

	h.logger.InfoContext(ctx, "comment created",
		slog.String("comment_id", c.ID),
		slog.String("article_id", c.ArticleID),
		slog.Bool("reply", c.IsReply()))

	publishChange(h.pub, h.logger, api.EventInsert, api.TableComments, p.UserID, c, nil)
	h.publishCount(r, article.ID)

	h.sendJSON(w, c, http.StatusCreated)
}

// Delete обрабатывает DELETE /api/v1/comments/{id}
// Удаляет комментарий вместе с ответами; доступно автору и редакции
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := GetPrincipal(ctx)
	if !ok {
		h.unauthorized(w, "authentication required")
		return
	}

	id := chi.URLParam(r, "id")
	c, err := h.comments.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCommentNotFound) {
			h.notFound(w, "comment not found")
			return
		}
		h.internalError(w, r, "failed to get comment", err)
		return
	}

	if c.AuthorID != p.UserID && !p.Role.AtLeast(models.RoleEditor) {
		h.forbidden(w, "you can only delete your own comments")
		return
	}

	deleted, err := h.comments.DeleteComment(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCommentNotFound) {
			h.notFound(w, "comment not found")
			return
		}
		h.internalError(w, r, "failed to delete comment", err)
		return
	}

	h.logger.InfoContext(ctx, "comment deleted",
		slog.String("comment_id", id),
		slog.Int("with_replies", len(deleted)-1),
		slog.String("by", p.UserID))

	for i := range deleted {
		publishChange(h.pub, h.logger, api.EventDelete, api.TableComments, p.UserID, nil, deleted[i])
	}
	h.publishCount(r, c.ArticleID)

	h.sendJSON(w, nil, http.StatusOK)
}

// publishCount рассылает статью с обновленным счетчиком комментариев.
// Автор события не указывается: счетчик меняется и у самого комментатора.
func (h *CommentHandler) publishCount(r *http.Request, articleID string) {
	article, err := h.articles.GetArticle(r.Context(), articleID)
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to reload article after comment change", slog.Any("error", err))
		return
	}
	publishChange(h.pub, h.logger, api.EventUpdate, api.TableArticles, "", article, nil)
}

func (h *CommentHandler) article(w http.ResponseWriter, r *http.Request, id string) (*models.Article, bool) {
	a, err := h.articles.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			h.notFound(w, "article not found")
			return nil, false
		}
		h.internalError(w, r, "failed to get article", err)
		return nil, false
	}
	return a, true
}
