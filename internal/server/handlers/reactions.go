package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
	"github.com/iudanet/unipress/pkg/api"
)

// ReactionHandler обрабатывает запросы к реакциям
type ReactionHandler struct {
	reactions storage.ReactionStorage
	articles  storage.ArticleStorage
	settings  storage.SettingsStorage
	pub       Publisher
	responder
}

// NewReactionHandler создает handler реакций
func NewReactionHandler(logger *slog.Logger, reactions storage.ReactionStorage, articles storage.ArticleStorage, settings storage.SettingsStorage, pub Publisher) *ReactionHandler {
	return &ReactionHandler{
		responder: responder{logger: logger},
		reactions: reactions,
		articles:  articles,
		settings:  settings,
		pub:       pub,
	}
}

// anonymousReactor проверяет идентификатор анонимного читателя:
// только UUID в канонической записи
func anonymousReactor(anonID string) (string, bool) {
	id, err := uuid.Parse(anonID)
	if err != nil || id.String() != anonID {
		return "", false
	}
	return models.AnonymousReactor(anonID), true
}

// Summary обрабатывает GET /api/v1/articles/{id}/reactions?anonymous_id=
func (h *ReactionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := GetPrincipal(ctx)

	article, err := h.articles.GetArticle(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			h.notFound(w, "article not found")
			return
		}
		h.internalError(w, r, "failed to get article", err)
		return
	}
	if !canView(p, article) {
		h.notFound(w, "article not found")
		return
	}

	reactor := p.UserID
	if reactor == "" {
		if anonID := r.URL.Query().Get("anonymous_id"); anonID != "" {
			var ok bool
			if reactor, ok = anonymousReactor(anonID); !ok {
				h.badRequest(w, "invalid anonymous_id")
				return
			}
		}
	}

	summary, err := h.reactions.ReactionSummary(ctx, article.ID, reactor)
	if err != nil {
		h.internalError(w, r, "failed to get reactions", err)
		return
	}

	h.sendJSON(w, summary, http.StatusOK)
}

// Toggle обрабатывает POST /api/v1/articles/{id}/reactions
// Без сессии реакция ставится от имени анонимного читателя, если это разрешено настройками
func (h *ReactionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, signedIn := GetPrincipal(ctx)

	var req api.ReactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if !req.Kind.Valid() {
		h.badRequest(w, "unknown reaction "+string(req.Kind))
		return
	}

	reactor := p.UserID
	if !signedIn {
		if req.AnonymousID == "" {
			h.unauthorized(w, "sign in to react")
			return
		}
		settings, err := h.settings.GetSettings(ctx)
		if err != nil {
			h.internalError(w, r, "failed to get settings", err)
			return
		}
		if !settings.AnonymousReactions {
			h.unauthorized(w, "anonymous reactions are disabled, sign in to react")
			return
		}
		var ok bool
		if reactor, ok = anonymousReactor(req.AnonymousID); !ok {
			h.badRequest(w, "invalid anonymous_id")
			return
		}
	}

	articleID := chi.URLParam(r, "id")
	article, err := h.articles.GetArticle(ctx, articleID)
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			h.notFound(w, "article not found")
			return
		}
		h.internalError(w, r, "failed to get article", err)
		return
	}
	if article.Status != models.ArticlePublished {
		h.forbidden(w, "reactions are only allowed on published articles")
		return
	}

	row, active, err := h.reactions.ToggleReaction(ctx, models.Reaction{
		ArticleID: article.ID,
		UserID:    reactor,
		Kind:      req.Kind,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			h.notFound(w, "article not found")
			return
		}
		h.internalError(w, r, "failed to toggle reaction", err)
		return
	}

	public := models.PublicReactor(reactor)
	row.UserID = public
	if active {
		publishChange(h.pub, h.logger, api.EventInsert, api.TableReactions, public, row, nil)
	} else {
		publishChange(h.pub, h.logger, api.EventDelete, api.TableReactions, public, nil, row)
	}

	summary, err := h.reactions.ReactionSummary(ctx, article.ID, reactor)
	if err != nil {
		h.internalError(w, r, "failed to get reactions", err)
		return
	}

	resp := api.ReactionToggleResponse{
		Summary: models.ReactionSummary{ArticleID: article.ID, Kind: req.Kind},
		Active:  active,
	}
	for _, s := range summary {
		if s.Kind == req.Kind {
			resp.Summary = s
			break
		}
	}

	h.sendJSON(w, resp, http.StatusOK)
}
