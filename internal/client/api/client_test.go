package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data any, errBody *api.ErrorBody) {
	t.Helper()

	env := api.Envelope{Timestamp: time.Now(), Success: errBody == nil, Error: errBody}
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		env.Data = raw
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL, nil)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.BaseURL())
	assert.NotNil(t, client.logger)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "testuser", req.Username)
		assert.Equal(t, "password123", req.Password)

		writeEnvelope(t, w, http.StatusCreated, api.RegisterResponse{UserID: "user-123", Role: models.RoleReader}, nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Username: "testuser",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, models.RoleReader, resp.Role)
}

// TestClient_Do_ErrorMapping проверяет классификацию ошибок по HTTP статусу
func TestClient_Do_ErrorMapping(t *testing.T) {
	tests := []struct {
		sentinel   error
		name       string
		message    string
		statusCode int
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, message: "token expired", sentinel: apperr.ErrUnauthenticated},
		{name: "forbidden", statusCode: http.StatusForbidden, message: "editor role required", sentinel: apperr.ErrPermissionDenied},
		{name: "bad request", statusCode: http.StatusBadRequest, message: "comment cannot be empty", sentinel: apperr.ErrValidationFailed},
		{name: "unprocessable", statusCode: http.StatusUnprocessableEntity, message: "invalid kind", sentinel: apperr.ErrValidationFailed},
		{name: "not found", statusCode: http.StatusNotFound, message: "article not found", sentinel: apperr.ErrNetworkOrServer},
		{name: "internal", statusCode: http.StatusInternalServerError, message: "boom", sentinel: apperr.ErrNetworkOrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, tt.statusCode, nil, &api.ErrorBody{Code: "x", Message: tt.message})
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)
			err := client.Do(context.Background(), http.MethodGet, "/api/v1/anything", "", nil, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, IsStatus(err, tt.statusCode))
		})
	}
}

// TestClient_Do_BearerToken проверяет передачу токена и разбор data
func TestClient_Do_BearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, api.MeResponse{UserID: "u1", Username: "alice", Role: models.RoleEditor}, nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	me, err := client.Me(context.Background(), "access-1")

	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, models.RoleEditor, me.Role)
}

// TestClient_Do_NetworkError сервер недоступен
func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, nil)
	_, err := client.Login(context.Background(), api.LoginRequest{Username: "alice", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNetworkOrServer)
	assert.Equal(t, apperr.KindNetworkOrServer, apperr.KindOf(err))
}

// TestClient_Do_InvalidBody ответ 200, но не конверт
func TestClient_Do_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.Do(context.Background(), http.MethodGet, "/api/v1/health", "", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNetworkOrServer)
}

// TestClient_Refresh проверяет обмен refresh token
func TestClient_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/refresh", r.URL.Path)

		var req api.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh-1", req.RefreshToken)

		writeEnvelope(t, w, http.StatusOK, api.TokenResponse{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			UserID:       "u1",
			ExpiresIn:    900,
		}, nil)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.Refresh(context.Background(), "refresh-1")

	require.NoError(t, err)
	assert.Equal(t, "access-2", resp.AccessToken)
	assert.Equal(t, "refresh-2", resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)
}
