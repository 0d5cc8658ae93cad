package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
)

const commentColumns = `comments.id, comments.article_id, comments.parent_id, comments.author_id,
	comments.author_name, comments.content, comments.version, comments.created_at, comments.updated_at`

// CreateComment сохраняет комментарий и увеличивает счетчик статьи
func (s *Storage) CreateComment(ctx context.Context, c *models.Comment) error {
	if c.Version == 0 {
		c.Version = 1
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM articles WHERE id = ?`, c.ArticleID).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrArticleNotFound
			}
			return fmt.Errorf("failed to check article: %w", err)
		}

		if c.ParentID != "" {
			var parentArticle string
			err := tx.QueryRowContext(ctx, `SELECT article_id FROM comments WHERE id = ?`, c.ParentID).Scan(&parentArticle)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return storage.ErrCommentNotFound
				}
				return fmt.Errorf("failed to check parent comment: %w", err)
			}
			if parentArticle != c.ArticleID {
				return storage.ErrParentMismatch
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO comments (id, article_id, parent_id, author_id, author_name, content, version, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			c.ID,
			c.ArticleID,
			nullString(c.ParentID),
			c.AuthorID,
			c.AuthorName,
			c.Content,
			c.Version,
			c.CreatedAt.UTC(),
			c.UpdatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE articles SET comment_count = comment_count + 1 WHERE id = ?`, c.ArticleID); err != nil {
			return fmt.Errorf("failed to update comment count: %w", err)
		}
		return nil
	})
}

// GetComment retrieves comment by ID
func (s *Storage) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = ?`, id)
	return scanComment(row)
}

// ListComments возвращает комментарии статьи в порядке создания
func (s *Storage) ListComments(ctx context.Context, articleID string) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE article_id = ? ORDER BY created_at, id`, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	return collectComments(rows)
}

// DeleteComment удаляет комментарий и все ответы на него
func (s *Storage) DeleteComment(ctx context.Context, id string) ([]models.Comment, error) {
	var deleted []models.Comment

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			WITH RECURSIVE subtree(id, depth) AS (
				SELECT id, 0 FROM comments WHERE id = ?
				UNION ALL
				SELECT c.id, subtree.depth + 1 FROM comments c JOIN subtree ON c.parent_id = subtree.id
			)
			SELECT `+commentColumns+` FROM comments JOIN subtree ON subtree.id = comments.id
			ORDER BY subtree.depth, comments.created_at
		`, id)
		if err != nil {
			return fmt.Errorf("failed to query comment thread: %w", err)
		}
		deleted, err = collectComments(rows)
		if err != nil {
			return err
		}
		if len(deleted) == 0 {
			return storage.ErrCommentNotFound
		}

		// ответы удаляются каскадом по parent_id
		if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE articles SET comment_count = MAX(comment_count - ?, 0) WHERE id = ?`,
			len(deleted), deleted[0].ArticleID); err != nil {
			return fmt.Errorf("failed to update comment count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

func collectComments(rows *sql.Rows) ([]models.Comment, error) {
	defer func() {
		_ = rows.Close()
	}()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return comments, nil
}

func scanComment(row rowScanner) (*models.Comment, error) {
	c := &models.Comment{}
	var parentID sql.NullString

	err := row.Scan(
		&c.ID,
		&c.ArticleID,
		&parentID,
		&c.AuthorID,
		&c.AuthorName,
		&c.Content,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to scan comment: %w", err)
	}

	c.ParentID = parentID.String
	return c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
