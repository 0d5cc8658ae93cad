package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
)

const articleColumns = `id, slug, title, summary, content, cover_url, author_id, status,
	version, comment_count, created_at, updated_at, published_at`

// CreateArticle сохраняет новую статью
func (s *Storage) CreateArticle(ctx context.Context, a *models.Article) error {
	if a.Version == 0 {
		a.Version = 1
	}

	query := `INSERT INTO articles (` + articleColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		a.ID,
		a.Slug,
		a.Title,
		a.Summary,
		a.Content,
		a.CoverURL,
		a.AuthorID,
		string(a.Status),
		a.Version,
		a.CommentCount,
		a.CreatedAt.UTC(),
		a.UpdatedAt.UTC(),
		nullTime(a.PublishedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "articles.slug") {
			return storage.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// GetArticle retrieves article by ID
func (s *Storage) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	return scanArticle(row)
}

// GetArticleBySlug retrieves article by slug
func (s *Storage) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = ?`, slug)
	return scanArticle(row)
}

// ListArticles возвращает страницу статей и общее количество
func (s *Storage) ListArticles(ctx context.Context, filter storage.ArticleFilter) ([]models.Article, int, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.AuthorID != "" {
		where = append(where, "author_id = ?")
		args = append(args, filter.AuthorID)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query := `SELECT ` + articleColumns + ` FROM articles` + clause +
		` ORDER BY COALESCE(published_at, created_at) DESC, id`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	articles := make([]models.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return articles, total, nil
}

// UpdateArticle сохраняет редактируемые поля и увеличивает версию
func (s *Storage) UpdateArticle(ctx context.Context, a *models.Article) error {
	a.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE articles
		SET slug = ?, title = ?, summary = ?, content = ?, cover_url = ?,
		    updated_at = ?, version = version + 1
		WHERE id = ?
		RETURNING version
	`
	err := s.db.QueryRowContext(ctx, query,
		a.Slug,
		a.Title,
		a.Summary,
		a.Content,
		a.CoverURL,
		a.UpdatedAt,
		a.ID,
	).Scan(&a.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrArticleNotFound
		}
		if isUniqueViolation(err, "articles.slug") {
			return storage.ErrSlugTaken
		}
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

// UpdateArticleStatus меняет статус статьи
func (s *Storage) UpdateArticleStatus(ctx context.Context, id string, status models.ArticleStatus, publishedAt *time.Time) (*models.Article, error) {
	query := `
		UPDATE articles
		SET status = ?, published_at = COALESCE(?, published_at),
		    updated_at = ?, version = version + 1
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query, string(status), nullTime(publishedAt), time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update article status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, storage.ErrArticleNotFound
	}

	return s.GetArticle(ctx, id)
}

func scanArticle(row rowScanner) (*models.Article, error) {
	a := &models.Article{}
	var (
		status      string
		publishedAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.Slug,
		&a.Title,
		&a.Summary,
		&a.Content,
		&a.CoverURL,
		&a.AuthorID,
		&status,
		&a.Version,
		&a.CommentCount,
		&a.CreatedAt,
		&a.UpdatedAt,
		&publishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}

	a.Status = models.ArticleStatus(status)
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}

	return a, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
