// Package repository типизированный доступ к ресурсам API.
// Каждая операция принимает и возвращает модели, а не сырые ответы.
package repository

import (
	"context"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

// ListArticlesParams параметры выборки статей
type ListArticlesParams struct {
	Status   models.ArticleStatus // пусто: опубликованные
	AuthorID string
	Page     int
	PageSize int
}

//go:generate moq -out articles_mock.go . Articles

// Articles операции со статьями
type Articles interface {
	// List возвращает страницу статей
	List(ctx context.Context, params ListArticlesParams) (*api.ArticleList, error)

	// Get возвращает статью по идентификатору или slug
	Get(ctx context.Context, idOrSlug string) (models.Article, error)

	// Create создает черновик статьи от имени текущего пользователя
	Create(ctx context.Context, req api.ArticleRequest) (models.Article, error)

	// Update изменяет текст статьи
	Update(ctx context.Context, id string, req api.ArticleRequest) (models.Article, error)

	// ChangeStatus переводит статью в новый статус (модерация, публикация, архив)
	ChangeStatus(ctx context.Context, id string, status models.ArticleStatus) (models.Article, error)

	// ShareMeta возвращает Open Graph метаданные статьи
	ShareMeta(ctx context.Context, id string) (models.ShareMeta, error)
}

//go:generate moq -out comments_mock.go . Comments

// Comments операции с комментариями
type Comments interface {
	List(ctx context.Context, articleID string) ([]models.Comment, error)
	Create(ctx context.Context, articleID, content string) (models.Comment, error)
	Reply(ctx context.Context, articleID, parentID, content string) (models.Comment, error)
	Delete(ctx context.Context, id string) error
}

//go:generate moq -out reactions_mock.go . Reactions

// Reactions операции с реакциями. Сессия не обязательна:
// без нее реакция отправляется от имени анонимного читателя.
type Reactions interface {
	Summary(ctx context.Context, articleID string) ([]models.ReactionSummary, error)
	Toggle(ctx context.Context, articleID string, kind models.ReactionKind) (api.ReactionToggleResponse, error)
}

//go:generate moq -out bookmarks_mock.go . Bookmarks

// Bookmarks закладки текущего пользователя
type Bookmarks interface {
	List(ctx context.Context) ([]models.Bookmark, error)
	Toggle(ctx context.Context, articleID string) (api.BookmarkToggleResponse, error)
}

//go:generate moq -out admin_mock.go . Admin

// Admin административные операции
type Admin interface {
	SetRole(ctx context.Context, userID string, role models.Role) (models.User, error)
	Settings(ctx context.Context) (models.SiteSettings, error)
	UpdateSettings(ctx context.Context, s models.SiteSettings) (models.SiteSettings, error)
	Moderation(ctx context.Context) ([]models.Article, error)
}

// Set все репозитории клиента
type Set struct {
	Articles  Articles
	Comments  Comments
	Reactions Reactions
	Bookmarks Bookmarks
	Admin     Admin
}
