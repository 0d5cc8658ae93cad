package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

func TestAdminHandler_SetRole(t *testing.T) {
	s := setupTestStorage(t)
	handler := NewAdminHandler(setupTestLogger(), s, s, s)

	admin := createUser(t, s, "admin", models.RoleAdmin)
	editor := createUser(t, s, "editor", models.RoleEditor)
	reader := createUser(t, s, "reader", models.RoleReader)

	setRole := func(user *models.User, id string, role models.Role) *httptest.ResponseRecorder {
		req := newRequest(t, http.MethodPut, "/api/v1/admin/users/"+id+"/role", api.RoleRequest{Role: role}, user, map[string]string{"id": id})
		w := httptest.NewRecorder()
		handler.SetRole(w, req)
		return w
	}

	w := setRole(admin, reader.ID, models.RoleAuthor)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeData[models.User](t, w)
	assert.Equal(t, reader.ID, updated.ID)
	assert.Equal(t, models.RoleAuthor, updated.Role)

	assert.Equal(t, http.StatusForbidden, setRole(editor, reader.ID, models.RoleEditor).Code)
	assert.Equal(t, http.StatusUnauthorized, setRole(nil, reader.ID, models.RoleEditor).Code)
	assert.Equal(t, http.StatusBadRequest, setRole(admin, reader.ID, "owner").Code)
	assert.Equal(t, http.StatusNotFound, setRole(admin, "missing", models.RoleEditor).Code)
}

func TestAdminHandler_Settings(t *testing.T) {
	s := setupTestStorage(t)
	handler := NewAdminHandler(setupTestLogger(), s, s, s)

	admin := createUser(t, s, "admin", models.RoleAdmin)
	editor := createUser(t, s, "editor", models.RoleEditor)

	req := newRequest(t, http.MethodGet, "/api/v1/admin/settings", nil, admin, nil)
	w := httptest.NewRecorder()
	handler.Settings(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	current := decodeData[models.SiteSettings](t, w)
	assert.Equal(t, "University News", current.SiteName)
	assert.True(t, current.CommentsEnabled)

	current.SiteName = "  Campus Gazette "
	current.BaseURL = "https://gazette.example.edu/"
	current.AnonymousReactions = false

	req = newRequest(t, http.MethodPut, "/api/v1/admin/settings", current, admin, nil)
	w = httptest.NewRecorder()
	handler.UpdateSettings(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	saved := decodeData[models.SiteSettings](t, w)
	assert.Equal(t, "Campus Gazette", saved.SiteName)
	assert.Equal(t, "https://gazette.example.edu", saved.BaseURL)
	assert.False(t, saved.AnonymousReactions)

	req = newRequest(t, http.MethodGet, "/api/v1/admin/settings", nil, admin, nil)
	w = httptest.NewRecorder()
	handler.Settings(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Campus Gazette", decodeData[models.SiteSettings](t, w).SiteName)

	current.SiteName = " "
	req = newRequest(t, http.MethodPut, "/api/v1/admin/settings", current, admin, nil)
	w = httptest.NewRecorder()
	handler.UpdateSettings(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = newRequest(t, http.MethodPut, "/api/v1/admin/settings", current, editor, nil)
	w = httptest.NewRecorder()
	handler.UpdateSettings(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminHandler_Moderation(t *testing.T) {
	s := setupTestStorage(t)
	handler := NewAdminHandler(setupTestLogger(), s, s, s)

	author := createUser(t, s, "author", models.RoleAuthor)
	editor := createUser(t, s, "editor", models.RoleEditor)
	pending := createArticle(t, s, author, models.ArticlePending)
	createArticle(t, s, author, models.ArticleDraft)
	createArticle(t, s, author, models.ArticlePublished)

	req := newRequest(t, http.MethodGet, "/api/v1/admin/moderation", nil, editor, nil)
	w := httptest.NewRecorder()
	handler.Moderation(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	queue := decodeData[[]models.Article](t, w)
	require.Len(t, queue, 1)
	assert.Equal(t, pending.ID, queue[0].ID)

	req = newRequest(t, http.MethodGet, "/api/v1/admin/moderation", nil, author, nil)
	w = httptest.NewRecorder()
	handler.Moderation(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
