package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

func TestCli_runRegister(t *testing.T) {
	sessions := &SessionsMock{
		RegisterFunc: func(ctx context.Context, username, password string) (*api.RegisterResponse, error) {
			return &api.RegisterResponse{UserID: "u1", Role: models.RoleReader}, nil
		},
		LoginFunc: func(ctx context.Context, username, password string) (session.Session, error) {
			return session.Session{UserID: "u1", Username: username}, nil
		},
	}

	c, out := newTestCli(t, sessions, &repository.Set{}, "alice", "password1", "password1")
	require.NoError(t, c.runRegister(context.Background()))

	require.Len(t, sessions.RegisterCalls(), 1)
	assert.Equal(t, "alice", sessions.RegisterCalls()[0].Username)
	assert.Equal(t, "password1", sessions.RegisterCalls()[0].Password)
	require.Len(t, sessions.LoginCalls(), 1)
	assertContainsAll(t, out.String(), "Password (min 8 chars): ", "Registration successful", "User ID: u1", "Role:    reader")
}

func TestCli_runRegister_PasswordMismatch(t *testing.T) {
	sessions := &SessionsMock{}

	c, _ := newTestCli(t, sessions, &repository.Set{}, "alice", "password1", "password2")
	err := c.runRegister(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
	assert.Empty(t, sessions.RegisterCalls())
}

func TestCli_runLogin(t *testing.T) {
	expires := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	sessions := &SessionsMock{
		LoginFunc: func(ctx context.Context, username, password string) (session.Session, error) {
			return session.Session{UserID: "u1", Username: username, Role: models.RoleEditor, ExpiresAt: expires}, nil
		},
	}

	c, out := newTestCli(t, sessions, &repository.Set{}, "bob", "secret123")
	require.NoError(t, c.runLogin(context.Background()))

	assertContainsAll(t, out.String(), "Login successful", "Username: bob", "Role:     editor", "2030-01-01T12:00:00Z")
}

func TestCli_runLogin_Failure(t *testing.T) {
	sessions := &SessionsMock{
		LoginFunc: func(ctx context.Context, username, password string) (session.Session, error) {
			return session.Session{}, apperr.New(apperr.KindUnauthenticated, "login", "invalid credentials")
		},
	}

	c, out := newTestCli(t, sessions, &repository.Set{}, "bob", "wrong-pass")
	err := c.runLogin(context.Background())
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	assert.NotContains(t, out.String(), "Login successful")
}

func TestCli_runLogout(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		sessions := signedOut()
		c, out := newTestCli(t, sessions, &repository.Set{})

		require.NoError(t, c.runLogout(context.Background()))
		assert.Contains(t, out.String(), "Not logged in")
		assert.Empty(t, sessions.LogoutCalls())
	})

	t.Run("logged in", func(t *testing.T) {
		sessions := signedIn("u1", models.RoleReader)
		sessions.LogoutFunc = func(ctx context.Context) error { return nil }
		c, out := newTestCli(t, sessions, &repository.Set{})

		require.NoError(t, c.runLogout(context.Background()))
		assert.Contains(t, out.String(), "Logged out")
		assert.Len(t, sessions.LogoutCalls(), 1)
	})
}

func TestCli_runStatus(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		c, out := newTestCli(t, signedOut(), &repository.Set{})

		require.NoError(t, c.runStatus(context.Background()))
		assertContainsAll(t, out.String(), "Not authenticated", "Anonymous ID: anon-device")
	})

	t.Run("authenticated", func(t *testing.T) {
		sessions := signedIn("u1", models.RoleAdmin)
		c, out := newTestCli(t, sessions, &repository.Set{})

		require.NoError(t, c.runStatus(context.Background()))
		assertContainsAll(t, out.String(), "Status: Authenticated", "User ID:  u1", "Role:     admin", "Session has expired")
	})
}
