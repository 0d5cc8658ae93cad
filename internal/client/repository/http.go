package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/client/storage"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

// Doer выполняет запрос к API и декодирует data конверта в result
type Doer interface {
	Do(ctx context.Context, method, path, token string, body, result any) error
}

// AnonymousIDs источник идентификатора анонимного читателя
type AnonymousIDs interface {
	AnonymousID(ctx context.Context) (string, error)
}

var _ AnonymousIDs = (storage.MetadataStorage)(nil)

// NewHTTP собирает репозитории поверх HTTP клиента
func NewHTTP(client Doer, tokens session.TokenSource, anon AnonymousIDs) *Set {
	base := httpBase{client: client, tokens: tokens}
	return &Set{
		Articles:  &ArticlesHTTP{base},
		Comments:  &CommentsHTTP{base},
		Reactions: &ReactionsHTTP{httpBase: base, anon: anon},
		Bookmarks: &BookmarksHTTP{base},
		Admin:     &AdminHTTP{base},
	}
}

type httpBase struct {
	client Doer
	tokens session.TokenSource
}

// token возвращает токен или ошибку Unauthenticated
func (b httpBase) token(ctx context.Context) (string, error) {
	return b.tokens.Token(ctx)
}

// optionalToken возвращает токен, если сессия есть, иначе ""
func (b httpBase) optionalToken(ctx context.Context) (string, error) {
	token, err := b.tokens.Token(ctx)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnauthenticated {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func articlePath(id string, rest ...string) string {
	p := "/api/v1/articles/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

// ArticlesHTTP реализация Articles поверх HTTP
type ArticlesHTTP struct {
	httpBase
}

func (r *ArticlesHTTP) List(ctx context.Context, params ListArticlesParams) (*api.ArticleList, error) {
	token, err := r.optionalToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}
	if params.AuthorID != "" {
		q.Set("author", params.AuthorID)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(params.PageSize))
	}
	path := "/api/v1/articles"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list api.ArticleList
	if err := r.client.Do(ctx, http.MethodGet, path, token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ArticlesHTTP) Get(ctx context.Context, idOrSlug string) (models.Article, error) {
	var a models.Article
	token, err := r.optionalToken(ctx)
	if err != nil {
		return a, err
	}
	err = r.client.Do(ctx, http.MethodGet, articlePath(idOrSlug), token, nil, &a)
	return a, err
}

func (r *ArticlesHTTP) Create(ctx context.Context, req api.ArticleRequest) (models.Article, error) {
	var a models.Article
	token, err := r.token(ctx)
	if err != nil {
		return a, err
	}
	err = r.client.Do(ctx, http.MethodPost, "/api/v1/articles", token, req, &a)
	return a, err
}

func (r *ArticlesHTTP) Update(ctx context.Context, id string, req api.ArticleRequest) (models.Article, error) {
	var a models.Article
	token, err := r.token(ctx)
	if err != nil {
		return a, err
	}
	err = r.client.Do(ctx, http.MethodPut, articlePath(id), token, req, &a)
	return a, err
}

func (r *ArticlesHTTP) ChangeStatus(ctx context.Context, id string, status models.ArticleStatus) (models.Article, error) {
	var a models.Article
	token, err := r.token(ctx)
	if err != nil {
		return a, err
	}
	err = r.client.Do(ctx, http.MethodPatch, articlePath(id, "status"), token, api.StatusRequest{Status: status}, &a)
	return a, err
}

func (r *ArticlesHTTP) ShareMeta(ctx context.Context, id string) (models.ShareMeta, error) {
	var m models.ShareMeta
	err := r.client.Do(ctx, http.MethodGet, articlePath(id, "share"), "", nil, &m)
	return m, err
}

// CommentsHTTP реализация Comments поверх HTTP
type CommentsHTTP struct {
	httpBase
}

func (r *CommentsHTTP) List(ctx context.Context, articleID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.client.Do(ctx, http.MethodGet, articlePath(articleID, "comments"), "", nil, &comments)
	return comments, err
}

func (r *CommentsHTTP) Create(ctx context.Context, articleID, content string) (models.Comment, error) {
	return r.post(ctx, articleID, api.CommentRequest{Content: content})
}

func (r *CommentsHTTP) Reply(ctx context.Context, articleID, parentID, content string) (models.Comment, error) {
	return r.post(ctx, articleID, api.CommentRequest{Content: content, ParentID: parentID})
}

func (r *CommentsHTTP) post(ctx context.Context, articleID string, req api.CommentRequest) (models.Comment, error) {
	var c models.Comment
	token, err := r.token(ctx)
	if err != nil {
		return c, err
	}
	err = r.client.Do(ctx, http.MethodPost, articlePath(articleID, "comments"), token, req, &c)
	return c, err
}

func (r *CommentsHTTP) Delete(ctx context.Context, id string) error {
	token, err := r.token(ctx)
	if err != nil {
		return err
	}
	return r.client.Do(ctx, http.MethodDelete, "/api/v1/comments/"+url.PathEscape(id), token, nil, nil)
}

// ReactionsHTTP реализация Reactions поверх HTTP
type ReactionsHTTP struct {
	anon AnonymousIDs
	httpBase
}

func (r *ReactionsHTTP) Summary(ctx context.Context, articleID string) ([]models.ReactionSummary, error) {
	token, err := r.optionalToken(ctx)
	if err != nil {
		return nil, err
	}

	path := articlePath(articleID, "reactions")
	if token == "" && r.anon != nil {
		anonID, err := r.anon.AnonymousID(ctx)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindNetworkOrServer, "reactions", err)
		}
		path += "?" + url.Values{"anonymous_id": {anonID}}.Encode()
	}

	var summary []models.ReactionSummary
	err = r.client.Do(ctx, http.MethodGet, path, token, nil, &summary)
	return summary, err
}

func (r *ReactionsHTTP) Toggle(ctx context.Context, articleID string, kind models.ReactionKind) (api.ReactionToggleResponse, error) {
	var resp api.ReactionToggleResponse

	token, err := r.optionalToken(ctx)
	if err != nil {
		return resp, err
	}

	req := api.ReactionRequest{Kind: kind}
	if token == "" {
		if r.anon == nil {
			return resp, apperr.New(apperr.KindUnauthenticated, "toggle reaction", "not signed in")
		}
		anonID, err := r.anon.AnonymousID(ctx)
		if err != nil {
			return resp, apperr.Wrap(apperr.KindNetworkOrServer, "toggle reaction", err)
		}
		req.AnonymousID = anonID
	}

	err = r.client.Do(ctx, http.MethodPost, articlePath(articleID, "reactions"), token, req, &resp)
	return resp, err
}

// BookmarksHTTP реализация Bookmarks поверх HTTP
type BookmarksHTTP struct {
	httpBase
}

func (r *BookmarksHTTP) List(ctx context.Context) ([]models.Bookmark, error) {
	token, err := r.token(ctx)
	if err != nil {
		return nil, err
	}
	var bookmarks []models.Bookmark
	err = r.client.Do(ctx, http.MethodGet, "/api/v1/bookmarks", token, nil, &bookmarks)
	return bookmarks, err
}

func (r *BookmarksHTTP) Toggle(ctx context.Context, articleID string) (api.BookmarkToggleResponse, error) {
	var resp api.BookmarkToggleResponse
	token, err := r.token(ctx)
	if err != nil {
		return resp, err
	}
	err = r.client.Do(ctx, http.MethodPost, "/api/v1/bookmarks", token, api.BookmarkRequest{ArticleID: articleID}, &resp)
	return resp, err
}

// AdminHTTP реализация Admin поверх HTTP
type AdminHTTP struct {
	httpBase
}

func (r *AdminHTTP) SetRole(ctx context.Context, userID string, role models.Role) (models.User, error) {
	var u models.User
	token, err := r.token(ctx)
	if err != nil {
		return u, err
	}
	path := "/api/v1/admin/users/" + url.PathEscape(userID) + "/role"
	err = r.client.Do(ctx, http.MethodPut, path, token, api.RoleRequest{Role: role}, &u)
	return u, err
}

func (r *AdminHTTP) Settings(ctx context.Context) (models.SiteSettings, error) {
	var s models.SiteSettings
	token, err := r.token(ctx)
	if err != nil {
		return s, err
	}
	err = r.client.Do(ctx, http.MethodGet, "/api/v1/admin/settings", token, nil, &s)
	return s, err
}

func (r *AdminHTTP) UpdateSettings(ctx context.Context, s models.SiteSettings) (models.SiteSettings, error) {
	var out models.SiteSettings
	token, err := r.token(ctx)
	if err != nil {
		return out, err
	}
	err = r.client.Do(ctx, http.MethodPut, "/api/v1/admin/settings", token, s, &out)
	return out, err
}

func (r *AdminHTTP) Moderation(ctx context.Context) ([]models.Article, error) {
	token, err := r.token(ctx)
	if err != nil {
		return nil, err
	}
	var articles []models.Article
	err = r.client.Do(ctx, http.MethodGet, "/api/v1/admin/moderation", token, nil, &articles)
	return articles, err
}
