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

func newTestToken(userID, hash string, expiresAt time.Time) *models.RefreshToken {
	return &models.RefreshToken{
		ID:        uuid.New().String(),
		TokenHash: hash,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

func TestTokenStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	token := newTestToken(user.ID, "hash-1", time.Now().Add(time.Hour))
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	got, err := s.GetRefreshToken(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, token.ID, got.ID)
	assert.Equal(t, user.ID, got.UserID)
	assert.WithinDuration(t, token.ExpiresAt, got.ExpiresAt, time.Second)

	_, err = s.GetRefreshToken(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "hash-1", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "hash-2", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "hash-3", time.Now().Add(time.Hour))))

	require.NoError(t, s.DeleteRefreshToken(ctx, "hash-1"))
	assert.ErrorIs(t, s.DeleteRefreshToken(ctx, "hash-1"), storage.ErrTokenNotFound)

	deleted, err := s.DeleteUserTokens(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = s.GetRefreshToken(ctx, "hash-2")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s)
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "expired", time.Now().Add(-time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "valid", time.Now().Add(time.Hour))))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.GetRefreshToken(ctx, "valid")
	assert.NoError(t, err)
	_, err = s.GetRefreshToken(ctx, "expired")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}
