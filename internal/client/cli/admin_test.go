package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/models"
)

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name       string
		assignment string
		check      func(t *testing.T, s models.SiteSettings)
		wantErr    bool
	}{
		{
			name:       "site name with spaces",
			assignment: "site_name=Daily Planet",
			check: func(t *testing.T, s models.SiteSettings) {
				assert.Equal(t, "Daily Planet", s.SiteName)
			},
		},
		{
			name:       "bool flag",
			assignment: "comments_enabled=false",
			check: func(t *testing.T, s models.SiteSettings) {
				assert.False(t, s.CommentsEnabled)
			},
		},
		{
			name:       "anonymous reactions",
			assignment: "anonymous_reactions=true",
			check: func(t *testing.T, s models.SiteSettings) {
				assert.True(t, s.AnonymousReactions)
			},
		},
		{name: "missing value separator", assignment: "tagline", wantErr: true},
		{name: "unknown key", assignment: "theme=dark", wantErr: true},
		{name: "bad bool", assignment: "comments_enabled=maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.SiteSettings{CommentsEnabled: true}
			err := applySetting(&s, tt.assignment)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestCli_runAdminSettings(t *testing.T) {
	admin := &repository.AdminMock{
		SettingsFunc: func(ctx context.Context) (models.SiteSettings, error) {
			return models.SiteSettings{SiteName: "Old", CommentsEnabled: true}, nil
		},
		UpdateSettingsFunc: func(ctx context.Context, s models.SiteSettings) (models.SiteSettings, error) {
			return s, nil
		},
	}

	c, out := newTestCli(t, signedIn("root", models.RoleAdmin), &repository.Set{Admin: admin})
	require.NoError(t, c.runAdminSettings(context.Background(), nil))
	assert.Contains(t, out.String(), "site_name:           Old")
	assert.Empty(t, admin.UpdateSettingsCalls())

	require.NoError(t, c.runAdminSettings(context.Background(), []string{"site_name=New", "comments_enabled=false"}))
	require.Len(t, admin.UpdateSettingsCalls(), 1)
	sent := admin.UpdateSettingsCalls()[0].S
	assert.Equal(t, "New", sent.SiteName)
	assert.False(t, sent.CommentsEnabled)
}

func TestCli_runAdminRole(t *testing.T) {
	admin := &repository.AdminMock{
		SetRoleFunc: func(ctx context.Context, userID string, role models.Role) (models.User, error) {
			return models.User{ID: userID, Username: "bob", Role: role}, nil
		},
	}

	c, out := newTestCli(t, signedIn("root", models.RoleAdmin), &repository.Set{Admin: admin})
	require.NoError(t, c.runAdminRole(context.Background(), "u2", models.RoleEditor))
	assert.Contains(t, out.String(), "bob is now editor")

	require.Error(t, c.runAdminRole(context.Background(), "u2", "owner"))
	assert.Len(t, admin.SetRoleCalls(), 1)
}

func TestCli_runAdminModeration(t *testing.T) {
	admin := &repository.AdminMock{
		ModerationFunc: func(ctx context.Context) ([]models.Article, error) {
			return []models.Article{{ID: "a5", Title: "Needs review", Status: models.ArticlePending}}, nil
		},
	}

	c, out := newTestCli(t, signedIn("e1", models.RoleEditor), &repository.Set{Admin: admin})
	require.NoError(t, c.runAdminModeration(context.Background()))
	assertContainsAll(t, out.String(), "Articles (pending)", "- Needs review", "(1 total)")
}
