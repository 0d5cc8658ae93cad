package storage

import (
	"context"
	"time"

	"github.com/iudanet/unipress/internal/models"
)

// ArticleFilter параметры выборки статей.
// Пустые поля не ограничивают выборку.
type ArticleFilter struct {
	Status   models.ArticleStatus
	AuthorID string
	Limit    int
	Offset   int
}

// ArticleStorage defines interface for article persistence
type ArticleStorage interface {
	// CreateArticle сохраняет новую статью с версией 1.
	// Returns ErrSlugTaken if slug is used by another article
	CreateArticle(ctx context.Context, article *models.Article) error

	// GetArticle retrieves article by ID
	// Returns ErrArticleNotFound if article doesn't exist
	GetArticle(ctx context.Context, id string) (*models.Article, error)

	// GetArticleBySlug retrieves article by slug
	// Returns ErrArticleNotFound if article doesn't exist
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)

	// ListArticles возвращает страницу статей (новые первыми) и общее число подходящих
	ListArticles(ctx context.Context, filter ArticleFilter) ([]models.Article, int, error)

	// UpdateArticle сохраняет редактируемые поля статьи и увеличивает версию.
	// Новая версия и UpdatedAt записываются в article.
	// Returns ErrArticleNotFound or ErrSlugTaken
	UpdateArticle(ctx context.Context, article *models.Article) error

	// UpdateArticleStatus меняет статус и увеличивает версию.
	// publishedAt записывается, только если не nil.
	// Returns ErrArticleNotFound if article doesn't exist
	UpdateArticleStatus(ctx context.Context, id string, status models.ArticleStatus, publishedAt *time.Time) (*models.Article, error)
}
