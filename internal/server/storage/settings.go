package storage

import (
	"context"

	"github.com/iudanet/unipress/internal/models"
)

// SettingsStorage хранит единственную запись настроек сайта
type SettingsStorage interface {
	GetSettings(ctx context.Context) (models.SiteSettings, error)
	UpdateSettings(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error)
}

// Storage все хранилища сервера в одном объекте
type Storage interface {
	UserStorage
	TokenStorage
	ArticleStorage
	CommentStorage
	ReactionStorage
	BookmarkStorage
	SettingsStorage
	Ping(ctx context.Context) error
	Close() error
}
