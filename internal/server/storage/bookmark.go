package storage

import (
	"context"

	"github.com/iudanet/unipress/internal/models"
)

// BookmarkStorage defines interface for bookmark persistence
type BookmarkStorage interface {
	// ToggleBookmark создает закладку, если ее нет, иначе удаляет.
	// Возвращает сохраненную (или удаленную) закладку и true, если закладка теперь есть.
	// Returns ErrArticleNotFound if article doesn't exist
	ToggleBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, bool, error)

	// ListBookmarks закладки пользователя, новые первыми
	ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error)
}
