package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
	"github.com/iudanet/unipress/pkg/api"
)

// AdminHandler обрабатывает административные запросы: роли, настройки, модерация
type AdminHandler struct {
	users    storage.UserStorage
	articles storage.ArticleStorage
	settings storage.SettingsStorage
	responder
}

// NewAdminHandler создает handler администрирования
func NewAdminHandler(logger *slog.Logger, users storage.UserStorage, articles storage.ArticleStorage, settings storage.SettingsStorage) *AdminHandler {
	return &AdminHandler{
		responder: responder{logger: logger},
		users:     users,
		articles:  articles,
		settings:  settings,
	}
}

// requireRole проверяет роль пользователя запроса
func (h *AdminHandler) requireRole(w http.ResponseWriter, r *http.Request, role models.Role) bool {
	p, ok := GetPrincipal(r.Context())
	if !ok {
		h.unauthorized(w, "authentication required")
		return false
	}
	if !p.Role.AtLeast(role) {
		h.forbidden(w, string(role)+" role required")
		return false
	}
	return true
}

// SetRole обрабатывает PUT /api/v1/admin/users/{id}/role
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, models.RoleAdmin) {
		return
	}

	var req api.RoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if !req.Role.Valid() {
		h.badRequest(w, "unknown role "+string(req.Role))
		return
	}

	user, err := h.users.UpdateUserRole(r.Context(), chi.URLParam(r, "id"), req.Role)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.notFound(w, "user not found")
			return
		}
		h.internalError(w, r, "failed to update role", err)
		return
	}

	h.logger.InfoContext(r.Context(), "user role changed",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	h.sendJSON(w, user, http.StatusOK)
}

// Settings обрабатывает GET /api/v1/admin/settings
func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, models.RoleAdmin) {
		return
	}

	settings, err := h.settings.GetSettings(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to get settings", err)
		return
	}

	h.sendJSON(w, settings, http.StatusOK)
}

// UpdateSettings обрабатывает PUT /api/v1/admin/settings
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, models.RoleAdmin) {
		return
	}

	var req models.SiteSettings
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	req.SiteName = strings.TrimSpace(req.SiteName)
	if req.SiteName == "" {
		h.badRequest(w, "site_name cannot be empty")
		return
	}
	req.BaseURL = strings.TrimRight(strings.TrimSpace(req.BaseURL), "/")
	req.UpdatedAt = time.Now().UTC()

	settings, err := h.settings.UpdateSettings(r.Context(), req)
	if err != nil {
		h.internalError(w, r, "failed to update settings", err)
		return
	}

	h.sendJSON(w, settings, http.StatusOK)
}

// Moderation обрабатывает GET /api/v1/admin/moderation
// Возвращает статьи, ожидающие проверки редактором
func (h *AdminHandler) Moderation(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, models.RoleEditor) {
		return
	}

	articles, _, err := h.articles.ListArticles(r.Context(), storage.ArticleFilter{
		Status: models.ArticlePending,
		Limit:  MaxPageSize,
	})
	if err != nil {
		h.internalError(w, r, "failed to list pending articles", err)
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}

	h.sendJSON(w, articles, http.StatusOK)
}
