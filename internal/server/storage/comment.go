package storage

import (
	"context"

	"github.com/iudanet/unipress/internal/models"
)

// CommentStorage defines interface for comment persistence.
// Реализация поддерживает articles.comment_count в актуальном состоянии.
type CommentStorage interface {
	// CreateComment сохраняет комментарий или ответ.
	// Returns ErrArticleNotFound, ErrCommentNotFound (нет родителя)
	// or ErrParentMismatch
	CreateComment(ctx context.Context, comment *models.Comment) error

	// GetComment retrieves comment by ID
	// Returns ErrCommentNotFound if comment doesn't exist
	GetComment(ctx context.Context, id string) (*models.Comment, error)

	// ListComments возвращает комментарии статьи в порядке создания
	ListComments(ctx context.Context, articleID string) ([]models.Comment, error)

	// DeleteComment удаляет комментарий вместе со всеми ответами на него.
	// Возвращает удаленные строки, первым идет сам комментарий.
	// Returns ErrCommentNotFound if comment doesn't exist
	DeleteComment(ctx context.Context, id string) ([]models.Comment, error)
}
