package api

import "github.com/iudanet/unipress/internal/models"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль (передается только по TLS)
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID string      `json:"user_id"` // UUID пользователя
	Role   models.Role `json:"role"`    // роль, назначенная при регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	AccessToken  string      `json:"access_token"`  // JWT access token
	RefreshToken string      `json:"refresh_token"` // refresh token
	UserID       string      `json:"user_id"`
	Username     string      `json:"username"`
	Role         models.Role `json:"role"`
	ExpiresIn    int64       `json:"expires_in"` // время жизни access token в секундах
}

// MeResponse описывает текущего пользователя
type MeResponse struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}
