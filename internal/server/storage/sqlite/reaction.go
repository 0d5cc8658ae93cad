package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
)

// ToggleReaction ставит или снимает реакцию
func (s *Storage) ToggleReaction(ctx context.Context, r models.Reaction) (models.Reaction, bool, error) {
	var active bool

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM articles WHERE id = ?`, r.ArticleID).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrArticleNotFound
			}
			return fmt.Errorf("failed to check article: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM reactions WHERE article_id = ? AND user_id = ? AND kind = ?`,
			r.ArticleID, r.UserID, string(r.Kind))
		if err != nil {
			return fmt.Errorf("failed to delete reaction: %w", err)
		}
		removed, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if removed > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO reactions (article_id, user_id, kind, created_at) VALUES (?, ?, ?, ?)`,
			r.ArticleID, r.UserID, string(r.Kind), r.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert reaction: %w", err)
		}
		active = true
		return nil
	})
	if err != nil {
		return models.Reaction{}, false, err
	}

	return r, active, nil
}

// ReactionSummary счетчики реакций статьи по всем типам
func (s *Storage) ReactionSummary(ctx context.Context, articleID, userID string) ([]models.ReactionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*), COALESCE(SUM(user_id = ?), 0)
		FROM reactions
		WHERE article_id = ?
		GROUP BY kind
	`, userID, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	byKind := make(map[models.ReactionKind]models.ReactionSummary)
	for rows.Next() {
		var (
			kind    string
			count   int
			reacted int
		)
		if err := rows.Scan(&kind, &count, &reacted); err != nil {
			return nil, fmt.Errorf("failed to scan reaction summary: %w", err)
		}
		byKind[models.ReactionKind(kind)] = models.ReactionSummary{
			ArticleID:   articleID,
			Kind:        models.ReactionKind(kind),
			Count:       count,
			UserReacted: userID != "" && reacted > 0,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	summary := make([]models.ReactionSummary, 0, len(models.ReactionKinds))
	for _, kind := range models.ReactionKinds {
		sum, ok := byKind[kind]
		if !ok {
			sum = models.ReactionSummary{ArticleID: articleID, Kind: kind}
		}
		summary = append(summary, sum)
	}

	return summary, nil
}
