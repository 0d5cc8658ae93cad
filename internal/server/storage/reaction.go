package storage

import (
	"context"

	"github.com/iudanet/unipress/internal/models"
)

// ReactionStorage defines interface for reaction persistence
type ReactionStorage interface {
	// ToggleReaction ставит реакцию, если ее нет, иначе снимает.
	// Возвращает строку реакции и true, если реакция теперь стоит.
	// Returns ErrArticleNotFound if article doesn't exist
	ToggleReaction(ctx context.Context, reaction models.Reaction) (models.Reaction, bool, error)

	// ReactionSummary счетчики по всем типам реакций статьи.
	// UserReacted заполняется для userID (может быть пустым).
	ReactionSummary(ctx context.Context, articleID, userID string) ([]models.ReactionSummary, error)
}
