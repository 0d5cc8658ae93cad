package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/unipress/internal/crypto"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/storage/sqlite"
	"github.com/iudanet/unipress/pkg/api"
)

func init() {
	crypto.PasswordCost = bcrypt.MinCost
}

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func setupTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newPublisher мок Publisher; события доступны через PublishCalls
func newPublisher() *PublisherMock {
	return &PublisherMock{PublishFunc: func(api.ChangeEvent) {}}
}

// publishedEvents события, отправленные в хаб
func publishedEvents(pub *PublisherMock) []api.ChangeEvent {
	calls := pub.PublishCalls()
	events := make([]api.ChangeEvent, 0, len(calls))
	for _, c := range calls {
		events = append(events, c.Ev)
	}
	return events
}

func createUser(t *testing.T, s *sqlite.Storage, username string, role models.Role) *models.User {
	t.Helper()
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	// первый пользователь всегда admin, выставляем нужную роль явно
	updated, err := s.UpdateUserRole(ctx, user.ID, role)
	require.NoError(t, err)
	return updated
}

func createArticle(t *testing.T, s *sqlite.Storage, author *models.User, status models.ArticleStatus) *models.Article {
	t.Helper()

	id := uuid.New().String()
	now := time.Now().UTC()
	a := &models.Article{
		ID:        id,
		Slug:      "article-" + id[:8],
		Title:     "Article " + id[:8],
		Summary:   "summary",
		Content:   "content of the article",
		AuthorID:  author.ID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == models.ArticlePublished {
		a.PublishedAt = &now
	}
	require.NoError(t, s.CreateArticle(context.Background(), a))
	return a
}

func principalOf(u *models.User) Principal {
	return Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
}

// newRequest собирает запрос с телом, пользователем и параметрами chi маршрута
func newRequest(t *testing.T, method, target string, body any, user *models.User, params map[string]string) *http.Request {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if user != nil {
		ctx = WithPrincipal(ctx, principalOf(user))
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

// decodeData разбирает успешный конверт и его data
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var env api.Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	require.True(t, env.Success, "expected success envelope, got %+v", env.Error)

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

// errorCode возвращает код ошибки из конверта
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var env api.Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	return env.Error.Code
}
