package models

import "time"

// Role определяет уровень доступа пользователя в редакции
type Role string

const (
	RoleReader Role = "reader" // читатель: комментарии, реакции, закладки
	RoleAuthor Role = "author" // автор: пишет статьи и отправляет на модерацию
	RoleEditor Role = "editor" // редактор: модерирует и публикует статьи
	RoleAdmin  Role = "admin"  // администратор: роли пользователей и настройки сайта
)

var roleRank = map[Role]int{
	RoleReader: 1,
	RoleAuthor: 2,
	RoleEditor: 3,
	RoleAdmin:  4,
}

// Valid проверяет, что роль известна системе
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast возвращает true, если роль r не ниже other.
// Неизвестная роль не удовлетворяет никакому требованию.
func (r Role) AtLeast(other Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	return rank >= roleRank[other]
}

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time  `json:"created_at"`           // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"` // время последнего входа
	ID           string     `json:"id"`                   // UUID пользователя
	Username     string     `json:"username"`             // уникальный username
	PasswordHash string     `json:"-"`                    // bcrypt хеш пароля
	Role         Role       `json:"role"`                 // роль пользователя
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	ID        string    `json:"id"`         // UUID токена
	UserID    string    `json:"user_id"`    // ID пользователя
	TokenHash string    `json:"token_hash"` // sha256 хеш токена (hex)
}
