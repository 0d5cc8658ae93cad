package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) *models.User {
	t.Helper()

	id := uuid.New().String()
	user := &models.User{
		ID:           id,
		Username:     "user_" + id[:8],
		PasswordHash: "hash",
		Role:         models.RoleAuthor,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))
	return user
}

func createTestArticle(t *testing.T, ctx context.Context, s *Storage, authorID string, status models.ArticleStatus) *models.Article {
	t.Helper()

	id := uuid.New().String()
	now := time.Now()
	a := &models.Article{
		ID:        id,
		Slug:      "article-" + id[:8],
		Title:     "Article " + id[:8],
		Summary:   "summary",
		Content:   "content",
		AuthorID:  authorID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == models.ArticlePublished {
		a.PublishedAt = timePtr(now)
	}
	require.NoError(t, s.CreateArticle(ctx, a))
	return a
}

func createTestComment(t *testing.T, ctx context.Context, s *Storage, articleID, parentID string, author *models.User) *models.Comment {
	t.Helper()

	now := time.Now()
	c := &models.Comment{
		ID:         uuid.New().String(),
		ArticleID:  articleID,
		ParentID:   parentID,
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Content:    "comment",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, s.CreateComment(ctx, c))
	return c
}

func timePtr(t time.Time) *time.Time {
	return &t
}
