package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
)

// ToggleBookmark создает или удаляет закладку пользователя на статью
func (s *Storage) ToggleBookmark(ctx context.Context, b models.Bookmark) (models.Bookmark, bool, error) {
	var (
		result models.Bookmark
		active bool
	)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM articles WHERE id = ?`, b.ArticleID).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrArticleNotFound
			}
			return fmt.Errorf("failed to check article: %w", err)
		}

		existing, err := scanBookmark(tx.QueryRowContext(ctx,
			`SELECT id, user_id, article_id, created_at FROM bookmarks WHERE user_id = ? AND article_id = ?`,
			b.UserID, b.ArticleID))
		switch {
		case err == nil:
			if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, existing.ID); err != nil {
				return fmt.Errorf("failed to delete bookmark: %w", err)
			}
			result = existing
			return nil
		case !errors.Is(err, sql.ErrNoRows):
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO bookmarks (id, user_id, article_id, created_at) VALUES (?, ?, ?, ?)`,
			b.ID, b.UserID, b.ArticleID, b.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert bookmark: %w", err)
		}
		result, active = b, true
		return nil
	})
	if err != nil {
		return models.Bookmark{}, false, err
	}

	return result, active, nil
}

// ListBookmarks закладки пользователя, новые первыми
func (s *Storage) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, article_id, created_at FROM bookmarks WHERE user_id = ? ORDER BY created_at DESC, id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return bookmarks, nil
}

// scanBookmark возвращает sql.ErrNoRows без обертки, вызывающий решает, ошибка ли это
func scanBookmark(row rowScanner) (models.Bookmark, error) {
	var b models.Bookmark
	err := row.Scan(&b.ID, &b.UserID, &b.ArticleID, &b.CreatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return b, fmt.Errorf("failed to scan bookmark: %w", err)
	}
	return b, err
}
