package handlers

import (
	"context"

	"github.com/iudanet/unipress/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

// principalKey ключ для хранения пользователя запроса в контексте
const principalKey contextKey = "principal"

// Principal пользователь, от имени которого выполняется запрос
type Principal struct {
	UserID   string
	Username string
	Role     models.Role
}

// WithPrincipal кладет пользователя запроса в контекст (используется AuthMiddleware)
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal извлекает пользователя запроса из контекста
func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok && p.UserID != ""
}

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	p, ok := GetPrincipal(ctx)
	return p.UserID, ok
}
