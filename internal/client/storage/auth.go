package storage

import (
	"context"
	"time"

	"github.com/iudanet/unipress/internal/models"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the session on client.
// This is the lowest storage layer: it persists the session as-is
// and knows nothing about token refresh.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing the previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents authentication information in storage.
// ExpiresAt is the access token expiry as unix seconds.
type AuthData struct {
	Username     string      `json:"username"`
	UserID       string      `json:"user_id"`
	Role         models.Role `json:"role"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresAt    int64       `json:"expires_at"`
}

// Expired проверяет, истек ли access token к моменту now
func (a *AuthData) Expired(now time.Time) bool {
	return !now.Before(time.Unix(a.ExpiresAt, 0))
}
