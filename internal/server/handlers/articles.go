package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
	"github.com/iudanet/unipress/internal/validation"
	"github.com/iudanet/unipress/pkg/api"
)

const (
	// DefaultPageSize размер страницы списка статей по умолчанию
	DefaultPageSize = 20
	// MaxPageSize максимальный размер страницы
	MaxPageSize = 100
)

// ArticleHandler обрабатывает запросы к статьям
type ArticleHandler struct {
	articles storage.ArticleStorage
	settings storage.SettingsStorage
	pub      Publisher
	responder
}

// NewArticleHandler создает handler статей
func NewArticleHandler(logger *slog.Logger, articles storage.ArticleStorage, settings storage.SettingsStorage, pub Publisher) *ArticleHandler {
	return &ArticleHandler{
		responder: responder{logger: logger},
		articles:  articles,
		settings:  settings,
		pub:       pub,
	}
}

// canView опубликованные статьи видны всем, остальные автору и редакции
func canView(p Principal, a *models.Article) bool {
	if a.Status == models.ArticlePublished {
		return true
	}
	return p.Role.AtLeast(models.RoleEditor) || (p.UserID != "" && p.UserID == a.AuthorID)
}

// canEdit редакция правит любые статьи, автор только свои неопубликованные
func canEdit(p Principal, a *models.Article) bool {
	if p.Role.AtLeast(models.RoleEditor) {
		return true
	}
	if p.UserID == "" || p.UserID != a.AuthorID || !p.Role.AtLeast(models.RoleAuthor) {
		return false
	}
	switch a.Status {
	case models.ArticleDraft, models.ArticlePending, models.ArticleRejected:
		return true
	}
	return false
}

// canSetStatus автор может только отправить на модерацию или вернуть в черновики
func canSetStatus(p Principal, a *models.Article, status models.ArticleStatus) bool {
	if p.Role.AtLeast(models.RoleEditor) {
		return true
	}
	if !canEdit(p, a) {
		return false
	}
	return status == models.ArticleDraft || status == models.ArticlePending
}

// List обрабатывает GET /api/v1/articles?status=&author=&page=&page_size=
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := GetPrincipal(ctx)
	q := r.URL.Query()

	status := models.ArticleStatus(q.Get("status"))
	if status == "" {
		status = models.ArticlePublished
	}
	if !status.Valid() {
		h.badRequest(w, "unknown status "+string(status))
		return
	}

	page, err := positiveInt(q.Get("page"), 1)
	if err != nil {
		h.badRequest(w, "page must be a positive number")
		return
	}
	pageSize, err := positiveInt(q.Get("page_size"), DefaultPageSize)
	if err != nil {
		h.badRequest(w, "page_size must be a positive number")
		return
	}
	pageSize = min(pageSize, MaxPageSize)

	filter := storage.ArticleFilter{
		Status:   status,
		AuthorID: q.Get("author"),
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}

	if status != models.ArticlePublished && !p.Role.AtLeast(models.RoleEditor) {
		if p.UserID == "" {
			h.unauthorized(w, "authentication required to list unpublished articles")
			return
		}
		if filter.AuthorID == "" {
			filter.AuthorID = p.UserID
		}
		if filter.AuthorID != p.UserID {
			h.forbidden(w, "unpublished articles of other authors are not visible")
			return
		}
	}

	articles, total, err := h.articles.ListArticles(ctx, filter)
	if err != nil {
		h.internalError(w, r, "failed to list articles", err)
		return
	}

	h.sendJSON(w, api.ArticleList{
		Articles: articles,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, http.StatusOK)
}

// Get обрабатывает GET /api/v1/articles/{id}, где id может быть slug
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, _ := GetPrincipal(r.Context())

	a, ok := h.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if !canView(p, a) {
		h.notFound(w, "article not found")
		return
	}

	h.sendJSON(w, a, http.StatusOK)
}

// Create обрабатывает POST /api/v1/articles
// Статья создается черновиком
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := GetPrincipal(ctx)

	if !p.Role.AtLeast(models.RoleAuthor) {
		h.forbidden(w, "only authors can write articles")
		return
	}

	var req api.ArticleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if err := validation.ValidateArticle(req.Title, req.Summary, req.Content); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	now := time.Now().UTC()
	a := &models.Article{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(req.Title),
		Summary:   strings.TrimSpace(req.Summary),
		Content:   req.Content,
		CoverURL:  strings.TrimSpace(req.CoverURL),
		AuthorID:  p.UserID,
		Status:    models.ArticleDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.Slug = baseSlug(a.Title, a.ID)

	err := h.articles.CreateArticle(ctx, a)
	if errors.Is(err, storage.ErrSlugTaken) {
		a.Slug = uniqueSlug(a.Slug, a.ID)
		err = h.articles.CreateArticle(ctx, a)
	}
	if err != nil {
		if errors.Is(err, storage.ErrSlugTaken) {
			h.conflict(w, "slug already taken")
			return
		}
		h.internalError(w, r, "failed to create article", err)
		return
	}

	h.logger.InfoContext(ctx, "article created",
		slog.String("article_id", a.ID),
		slog.String("author_id", a.AuthorID))

	publishChange(h.pub, h.logger, api.EventInsert, api.TableArticles, p.UserID, a, nil)
	h.sendJSON(w, a, http.StatusCreated)
}

// Update обрабатывает PUT /api/v1/articles/{id}
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := GetPrincipal(ctx)

	before, ok := h.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if !canView(p, before) {
		h.notFound(w, "article not found")
		return
	}
	if !canEdit(p, before) {
		h.forbidden(w, "you cannot edit this article")
		return
	}

	var req api.ArticleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if err := validation.ValidateArticle(req.Title, req.Summary, req.Content); err != nil {
		h.badRequest(w, err.Error())
		return
	}

	after := *before
	after.Title = strings.TrimSpace(req.Title)
	after.Summary = strings.TrimSpace(req.Summary)
	after.Content = req.Content
	after.CoverURL = strings.TrimSpace(req.CoverURL)

	if err := h.articles.UpdateArticle(ctx, &after); err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			h.notFound(w, "article not found")
			return
		}
		h.internalError(w, r, "failed to update article", err)
		return
	}

	publishChange(h.pub, h.logger, api.EventUpdate, api.TableArticles, p.UserID, after, before)
	h.sendJSON(w, after, http.StatusOK)
}

// ChangeStatus обрабатывает PATCH /api/v1/articles/{id}/status
func (h *ArticleHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, _ := GetPrincipal(ctx)

	var req api.StatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if !req.Status.Valid() {
		h.badRequest(w, "unknown status "+string(req.Status))
		return
	}

	before, ok := h.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if !canView(p, before) {
		h.notFound(w, "article not found")
		return
	}
	if !canSetStatus(p, before, req.Status) {
		h.forbidden(w, "you cannot move this article to "+string(req.Status))
		return
	}

	var publishedAt *time.Time
	if req.Status == models.ArticlePublished && before.PublishedAt == nil {
		now := time.Now().UTC()
		publishedAt = &now
	}

	after, err := h.articles.UpdateArticleStatus(ctx, before.ID, req.Status, publishedAt)
	if err != nil {
		if errors.Is(err, storage.ErrArticleNotFound) {
			h.notFound(w, "article not found")
			return
		}
		h.internalError(w, r, "failed to change article status", err)
		return
	}

	h.logger.InfoContext(ctx, "article status changed",
		slog.String("article_id", after.ID),
		slog.String("from", string(before.Status)),
		slog.String("to", string(after.Status)),
		slog.String("by", p.UserID))

	publishChange(h.pub, h.logger, api.EventUpdate, api.TableArticles, p.UserID, after, before)
	h.sendJSON(w, after, http.StatusOK)
}

// Share обрабатывает GET /api/v1/articles/{id}/share
// Метаданные Open Graph опубликованной статьи
func (h *ArticleHandler) Share(w http.ResponseWriter, r *http.Request) {
	a, ok := h.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if a.Status != models.ArticlePublished {
		h.notFound(w, "article not found")
		return
	}

	settings, err := h.settings.GetSettings(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to get settings", err)
		return
	}

	h.sendJSON(w, ShareMeta(a, settings), http.StatusOK)
}

// ShareMeta строит Open Graph метаданные статьи
func ShareMeta(a *models.Article, settings models.SiteSettings) models.ShareMeta {
	description := a.Summary
	if description == "" {
		description = excerpt(a.Content, 200)
	}
	return models.ShareMeta{
		Title:       a.Title,
		Description: description,
		Image:       a.CoverURL,
		URL:         strings.TrimSuffix(settings.BaseURL, "/") + "/articles/" + a.Slug,
		SiteName:    settings.SiteName,
		Type:        "article",
	}
}

// lookup ищет статью по id, затем по slug; при ошибке ответ уже отправлен
func (h *ArticleHandler) lookup(w http.ResponseWriter, r *http.Request, idOrSlug string) (*models.Article, bool) {
	ctx := r.Context()

	a, err := h.articles.GetArticle(ctx, idOrSlug)
	if errors.Is(err, storage.ErrArticleNotFound) {
		a, err = h.articles.GetArticleBySlug(ctx, idOrSlug)
	}
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

func baseSlug(title, id string) string {
	slug := validation.Slugify(title)
	if slug == "" {
		return "article-" + id[:8]
	}
	return slug
}

func uniqueSlug(slug, id string) string {
	return slug + "-" + id[:8]
}

// excerpt первые n символов текста без обрыва посередине слова
func excerpt(text string, n int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= n {
		return string(runes)
	}
	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

func positiveInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("not a positive number")
	}
	return n, nil
}
