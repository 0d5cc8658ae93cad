// Package session управляет сессией пользователя на клиенте.
//
// Manager явно передается в каждое представление и репозиторий:
// глобального состояния авторизации нет. Жизненный цикл сессии:
// Login (получение и сохранение) → Token (обновление по требованию)
// → Logout или истечение (удаление сохраненной копии).
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/unipress/internal/client/apperr"
	"github.com/iudanet/unipress/internal/client/storage"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/validation"
	"github.com/iudanet/unipress/pkg/api"
)

// DefaultRefreshSkew за сколько до истечения access token он обновляется
const DefaultRefreshSkew = 30 * time.Second

//go:generate moq -out authapi_mock.go . AuthAPI

// AuthAPI эндпоинты авторизации сервера
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

//go:generate moq -out tokensource_mock.go . TokenSource

// TokenSource источник учетных данных для репозиториев и realtime транспорта
type TokenSource interface {
	// Token возвращает действующий access token.
	// Без сессии возвращает ошибку класса apperr.KindUnauthenticated.
	Token(ctx context.Context) (string, error)

	// UserID идентификатор текущего пользователя или "" без сессии
	UserID() string
}

// Session активная сессия пользователя
type Session struct {
	ExpiresAt    time.Time
	UserID       string
	Username     string
	Role         models.Role
	AccessToken  string
	RefreshToken string
}

// Manager владеет текущей сессией
type Manager struct {
	api         AuthAPI
	store       storage.AuthStorage
	logger      *slog.Logger
	now         func() time.Time
	current     *Session
	refreshSkew time.Duration
	mu          sync.Mutex
}

var _ TokenSource = (*Manager)(nil)

// NewManager создает менеджер сессии
func NewManager(authAPI AuthAPI, store storage.AuthStorage, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		api:         authAPI,
		store:       store,
		logger:      logger,
		now:         time.Now,
		refreshSkew: DefaultRefreshSkew,
	}
}

// SetRefreshSkew меняет запас времени до истечения токена
func (m *Manager) SetRefreshSkew(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshSkew = d
}

// Register регистрирует нового пользователя. Сессия не создается.
func (m *Manager) Register(ctx context.Context, username, password string) (*api.RegisterResponse, error) {
	const op = "register"

	if err := validation.ValidateCredentials(username, password); err != nil {
		return nil, apperr.Wrap(apperr.KindValidationFailed, op, err)
	}

	resp, err := m.api.Register(ctx, api.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	m.logger.Info("User registered", "user_id", resp.UserID, "username", username)
	return resp, nil
}

// Login выполняет аутентификацию и сохраняет сессию
func (m *Manager) Login(ctx context.Context, username, password string) (Session, error) {
	const op = "login"

	if err := validation.ValidateUsername(username); err != nil {
		return Session{}, apperr.Wrap(apperr.KindValidationFailed, op, err)
	}
	if password == "" {
		return Session{}, apperr.Validation(op, "password cannot be empty")
	}

	resp, err := m.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return Session{}, fmt.Errorf("login failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.fromResponse(resp)
	if err := m.persistLocked(ctx, s); err != nil {
		return Session{}, err
	}

	m.logger.Info("Logged in", "user_id", s.UserID, "username", s.Username, "role", s.Role)
	return *s, nil
}

// Restore загружает сохраненную сессию при старте клиента.
// Возвращает false, если сохраненной сессии нет.
func (m *Manager) Restore(ctx context.Context) (Session, bool, error) {
	auth, err := m.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("failed to restore session: %w", err)
	}

	s := &Session{
		UserID:       auth.UserID,
		Username:     auth.Username,
		Role:         auth.Role,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		ExpiresAt:    time.Unix(auth.ExpiresAt, 0),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s.RefreshToken == "" && !m.now().Before(s.ExpiresAt) {
		m.logger.Info("Persisted session expired", "user_id", s.UserID)
		m.invalidateLocked(ctx)
		return Session{}, false, nil
	}

	m.current = s
	m.logger.Debug("Session restored", "user_id", s.UserID)
	return *s, true, nil
}

// Current возвращает активную сессию
func (m *Manager) Current() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// UserID идентификатор текущего пользователя или ""
func (m *Manager) UserID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return ""
	}
	return m.current.UserID
}

// Token возвращает действующий access token, обновляя его при необходимости.
// Если обновить сессию нельзя, сессия удаляется и возвращается
// ошибка класса Unauthenticated.
func (m *Manager) Token(ctx context.Context) (string, error) {
	const op = "session"

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return "", apperr.New(apperr.KindUnauthenticated, op, "not signed in")
	}

	now := m.now()
	if now.Add(m.refreshSkew).Before(m.current.ExpiresAt) {
		return m.current.AccessToken, nil
	}

	if m.current.RefreshToken == "" {
		m.logger.Info("Session expired", "user_id", m.current.UserID)
		m.invalidateLocked(ctx)
		return "", apperr.New(apperr.KindUnauthenticated, op, "session expired")
	}

	resp, err := m.api.Refresh(ctx, m.current.RefreshToken)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnauthenticated {
			m.logger.Info("Refresh token rejected", "user_id", m.current.UserID)
			m.invalidateLocked(ctx)
			return "", apperr.Wrap(apperr.KindUnauthenticated, op, err)
		}
		// Сервер недоступен: старый токен еще можно использовать до истечения
		if now.Before(m.current.ExpiresAt) {
			m.logger.Warn("Token refresh failed, using current token", "error", err)
			return m.current.AccessToken, nil
		}
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	s := m.fromResponse(resp)
	if s.UserID == "" {
		s.UserID = m.current.UserID
		s.Username = m.current.Username
		s.Role = m.current.Role
	}
	if err := m.persistLocked(ctx, s); err != nil {
		return "", err
	}

	m.logger.Debug("Access token refreshed", "user_id", s.UserID, "expires_at", s.ExpiresAt)
	return s.AccessToken, nil
}

// Logout завершает сессию: уведомляет сервер (без гарантии доставки)
// и всегда удаляет локальную копию
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		if err := m.api.Logout(ctx, m.current.AccessToken, m.current.RefreshToken); err != nil {
			// Не прерываем процесс, если сервер недоступен
			m.logger.Warn("Failed to logout on server", "error", err)
		}
	}

	m.current = nil
	if err := m.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}

	m.logger.Info("Logged out")
	return nil
}

func (m *Manager) fromResponse(resp *api.TokenResponse) *Session {
	return &Session{
		UserID:       resp.UserID,
		Username:     resp.Username,
		Role:         resp.Role,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    ExpiresAt(resp.AccessToken, resp.ExpiresIn, m.now()),
	}
}

func (m *Manager) persistLocked(ctx context.Context, s *Session) error {
	err := m.store.SaveAuth(ctx, &storage.AuthData{
		Username:     s.Username,
		UserID:       s.UserID,
		Role:         s.Role,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	m.current = s
	return nil
}

func (m *Manager) invalidateLocked(ctx context.Context) {
	m.current = nil
	if err := m.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		m.logger.Warn("Failed to delete persisted session", "error", err)
	}
}

// ExpiresAt определяет момент истечения access token по claim exp.
// Подпись не проверяется: клиент не знает секрет сервера, а срок нужен
// только для решения, когда обновлять токен.
// Если exp прочитать нельзя, используется expiresIn секунд от now.
func ExpiresAt(accessToken string, expiresIn int64, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return now.Add(time.Duration(expiresIn) * time.Second)
}
