package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/unipress/internal/crypto"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/jwt"
	"github.com/iudanet/unipress/internal/server/storage"
	"github.com/iudanet/unipress/internal/validation"
	"github.com/iudanet/unipress/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
	tokens       *jwt.Service
	responder
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokenStorage storage.TokenStorage, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		responder:    responder{logger: logger},
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
		tokens:       tokens,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя с ролью reader (первый пользователь становится admin)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.badRequest(w, err.Error())
		return
	}

	if err := validation.ValidateCredentials(req.Username, req.Password); err != nil {
		h.logger.WarnContext(ctx, "invalid registration input", slog.String("username", req.Username), slog.Any("error", err))
		h.badRequest(w, err.Error())
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.internalError(w, r, "failed to hash password", err)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.RoleReader,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			h.conflict(w, "username already taken")
			return
		}
		h.internalError(w, r, "failed to create user", err)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)))

	h.sendJSON(w, api.RegisterResponse{UserID: user.ID, Role: user.Role}, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя по паролю
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.badRequest(w, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		h.badRequest(w, "username and password are required")
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			h.unauthorized(w, "invalid credentials")
			return
		}
		h.internalError(w, r, "failed to get user", err)
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		h.unauthorized(w, "invalid credentials")
		return
	}

	resp, err := h.issueTokens(r, user)
	if err != nil {
		h.internalError(w, r, "failed to issue tokens", err)
		return
	}

	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	h.sendJSON(w, resp, http.StatusOK)
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Обмен refresh token на новую пару токенов (старый refresh token отзывается)
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if req.RefreshToken == "" {
		h.unauthorized(w, "refresh token is required")
		return
	}

	tokenHash, err := crypto.HashToken(req.RefreshToken)
	if err != nil {
		h.unauthorized(w, "invalid refresh token")
		return
	}

	stored, err := h.tokenStorage.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			h.unauthorized(w, "invalid refresh token")
			return
		}
		h.internalError(w, r, "failed to get refresh token", err)
		return
	}

	// токен одноразовый
	if err := h.tokenStorage.DeleteRefreshToken(ctx, tokenHash); err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		h.logger.WarnContext(ctx, "failed to delete old refresh token", slog.Any("error", err))
	}

	if time.Now().After(stored.ExpiresAt) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("user_id", stored.UserID))
		h.unauthorized(w, "refresh token expired")
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.unauthorized(w, "user no longer exists")
			return
		}
		h.internalError(w, r, "failed to get user", err)
		return
	}

	resp, err := h.issueTokens(r, user)
	if err != nil {
		h.internalError(w, r, "failed to issue tokens", err)
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.String("user_id", user.ID))
	h.sendJSON(w, resp, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Отзывает refresh token текущего устройства. Без refresh token в теле
// отзываются все токены пользователя.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthorized(w, "authentication required")
		return
	}

	var req api.RefreshRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			h.badRequest(w, err.Error())
			return
		}
	}

	if req.RefreshToken != "" {
		tokenHash, err := crypto.HashToken(req.RefreshToken)
		if err != nil {
			h.badRequest(w, "invalid refresh token")
			return
		}
		if err := h.tokenStorage.DeleteRefreshToken(ctx, tokenHash); err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
			h.internalError(w, r, "failed to delete refresh token", err)
			return
		}
		h.logger.InfoContext(ctx, "user logged out", slog.String("user_id", userID))
		h.sendJSON(w, nil, http.StatusOK)
		return
	}

	deletedCount, err := h.tokenStorage.DeleteUserTokens(ctx, userID)
	if err != nil {
		h.internalError(w, r, "failed to delete user tokens", err)
		return
	}

	h.logger.InfoContext(ctx, "user logged out from all devices",
		slog.String("user_id", userID),
		slog.Int("tokens_deleted", deletedCount))

	h.sendJSON(w, nil, http.StatusOK)
}

// Me обрабатывает GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthorized(w, "authentication required")
		return
	}

	// роль берется из базы: она могла измениться после выпуска токена
	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.unauthorized(w, "user no longer exists")
			return
		}
		h.internalError(w, r, "failed to get user", err)
		return
	}

	h.sendJSON(w, api.MeResponse{UserID: user.ID, Username: user.Username, Role: user.Role}, http.StatusOK)
}

// issueTokens выпускает access token и сохраняет хеш нового refresh token
func (h *AuthHandler) issueTokens(r *http.Request, user *models.User) (api.TokenResponse, error) {
	accessToken, expiresIn, err := h.tokens.GenerateAccessToken(user)
	if err != nil {
		return api.TokenResponse{}, err
	}

	refreshToken, expiresAt, err := h.tokens.GenerateRefreshToken()
	if err != nil {
		return api.TokenResponse{}, err
	}

	tokenHash, err := crypto.HashToken(refreshToken)
	if err != nil {
		return api.TokenResponse{}, err
	}

	err = h.tokenStorage.SaveRefreshToken(r.Context(), &models.RefreshToken{
		ID:        uuid.New().String(),
		TokenHash: tokenHash,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return api.TokenResponse{}, err
	}

	return api.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		ExpiresIn:    expiresIn,
	}, nil
}
