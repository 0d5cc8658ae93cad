package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/models"
)

func testUser() *models.User {
	return &models.User{ID: "user-1", Username: "alice", Role: models.RoleEditor}
}

func TestService_AccessTokenRoundTrip(t *testing.T) {
	s := NewService("secret", 15*time.Minute, 24*time.Hour)

	token, expiresIn, err := s.GenerateAccessToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := s.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleEditor, claims.Role)
}

func TestService_ValidateAccessToken_Errors(t *testing.T) {
	s := NewService("secret", time.Minute, time.Hour)
	token, _, err := s.GenerateAccessToken(testUser())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other-secret", time.Minute, time.Hour)
		_, err := other.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewService("secret", time.Minute, time.Hour)
		later.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err := later.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		claims := Claims{
			UserID: "user-1",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    Issuer,
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = s.ValidateAccessToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GenerateRefreshToken(t *testing.T) {
	s := NewService("secret", time.Minute, 24*time.Hour)

	first, expiresAt, err := s.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	second, _, err := s.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
