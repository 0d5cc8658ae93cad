package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage"
)

func TestCommentStorage_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	a := createTestArticle(t, ctx, s, user.ID, models.ArticlePublished)

	root := createTestComment(t, ctx, s, a.ID, "", user)
	reply := createTestComment(t, ctx, s, a.ID, root.ID, user)

	comments, err := s.ListComments(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, root.ID, comments[0].ID)
	assert.Empty(t, comments[0].ParentID)
	assert.Equal(t, reply.ID, comments[1].ID)
	assert.Equal(t, root.ID, comments[1].ParentID)
	assert.Equal(t, int64(1), comments[1].Version)

	article, err := s.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, article.CommentCount)
	assert.Equal(t, int64(1), article.Version, "comment count does not bump the article version")

	empty, err := s.ListComments(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentStorage_CreateErrors(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	a := createTestArticle(t, ctx, s, user.ID, models.ArticlePublished)
	b := createTestArticle(t, ctx, s, user.ID, models.ArticlePublished)
	onB := createTestComment(t, ctx, s, b.ID, "", user)

	newComment := func(articleID, parentID string) *models.Comment {
		return &models.Comment{
			ID:         uuid.New().String(),
			ArticleID:  articleID,
			ParentID:   parentID,
			AuthorID:   user.ID,
			AuthorName: user.Username,
			Content:    "text",
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
	}

	tests := []struct {
		wantError error
		comment   *models.Comment
		name      string
	}{
		{name: "unknown article", comment: newComment(uuid.New().String(), ""), wantError: storage.ErrArticleNotFound},
		{name: "unknown parent", comment: newComment(a.ID, uuid.New().String()), wantError: storage.ErrCommentNotFound},
		{name: "parent from another article", comment: newComment(a.ID, onB.ID), wantError: storage.ErrParentMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.CreateComment(ctx, tt.comment), tt.wantError)
		})
	}

	article, err := s.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, article.CommentCount)
}

func TestCommentStorage_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	a := createTestArticle(t, ctx, s, user.ID, models.ArticlePublished)

	root := createTestComment(t, ctx, s, a.ID, "", user)
	reply := createTestComment(t, ctx, s, a.ID, root.ID, user)
	nested := createTestComment(t, ctx, s, a.ID, reply.ID, user)
	other := createTestComment(t, ctx, s, a.ID, "", user)

	deleted, err := s.DeleteComment(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, deleted, 3)
	assert.Equal(t, root.ID, deleted[0].ID)
	assert.ElementsMatch(t, []string{reply.ID, nested.ID}, []string{deleted[1].ID, deleted[2].ID})

	remaining, err := s.ListComments(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)

	article, err := s.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, article.CommentCount)

	_, err = s.DeleteComment(ctx, root.ID)
	assert.ErrorIs(t, err, storage.ErrCommentNotFound)
	_, err = s.GetComment(ctx, nested.ID)
	assert.ErrorIs(t, err, storage.ErrCommentNotFound)
}
