package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/server/handlers"
	"github.com/iudanet/unipress/internal/server/jwt"
	"github.com/iudanet/unipress/pkg/api"
)

//go:generate moq -out tokenvalidator_mock.go . TokenValidator

// TokenValidator проверяет access token и возвращает его claims
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

var (
	errMissingToken = errors.New("missing token")
	errTokenFormat  = errors.New("invalid token format")
)

// bearerToken извлекает токен из заголовка Authorization.
// Websocket клиенты браузера не могут задать заголовок, поэтому
// токен также принимается из query параметра access_token.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("access_token"); token != "" {
			return token, nil
		}
		return "", errMissingToken
	}

	// Ожидаем формат: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errTokenFormat
	}
	return parts[1], nil
}

// authenticate валидирует токен и кладет пользователя в контекст.
// При ошибке ответ уже отправлен.
func authenticate(logger *slog.Logger, tokens TokenValidator, w http.ResponseWriter, r *http.Request, token string) (*http.Request, bool) {
	claims, err := tokens.ValidateAccessToken(token)
	if err != nil {
		logger.WarnContext(r.Context(), "invalid access token", slog.Any("error", err))
		message := "invalid token"
		if errors.Is(err, jwt.ErrExpiredToken) {
			message = "token expired"
		}
		handlers.WriteError(w, logger, api.CodeUnauthenticated, message, http.StatusUnauthorized)
		return nil, false
	}

	ctx := handlers.WithPrincipal(r.Context(), handlers.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})

	logger.DebugContext(ctx, "user authenticated",
		slog.String("user_id", claims.UserID),
		slog.String("role", string(claims.Role)))

	return r.WithContext(ctx), true
}

// AuthMiddleware создает middleware для проверки JWT токена.
// Запрос без валидного токена получает 401.
func AuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				logger.WarnContext(r.Context(), "authentication failed", slog.Any("error", err))
				handlers.WriteError(w, logger, api.CodeUnauthenticated, "unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			r, ok := authenticate(logger, tokens, w, r, token)
			if !ok {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuthMiddleware пропускает анонимные запросы.
// Переданный, но невалидный токен все равно отклоняется, чтобы клиент обновил сессию.
func OptionalAuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if errors.Is(err, errMissingToken) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				handlers.WriteError(w, logger, api.CodeUnauthenticated, "unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			r, ok := authenticate(logger, tokens, w, r, token)
			if !ok {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole пропускает только пользователей с ролью не ниже role.
// Ставится после AuthMiddleware.
func RequireRole(logger *slog.Logger, role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := handlers.GetPrincipal(r.Context())
			if !ok {
				handlers.WriteError(w, logger, api.CodeUnauthenticated, "authentication required", http.StatusUnauthorized)
				return
			}
			if !p.Role.AtLeast(role) {
				logger.WarnContext(r.Context(), "access denied",
					slog.String("user_id", p.UserID),
					slog.String("role", string(p.Role)),
					slog.String("required", string(role)))
				handlers.WriteError(w, logger, api.CodeForbidden, string(role)+" role required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
