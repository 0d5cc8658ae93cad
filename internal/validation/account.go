package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля в символах
	MinPasswordLen = 8
	// MaxPasswordBytes предел bcrypt: длиннее пароль не хешируется
	MaxPasswordBytes = 72
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername проверяет имя учетной записи:
// латиница, цифры и подчеркивание, от MinUsernameLen до MaxUsernameLen символов
func ValidateUsername(username string) error {
	switch n := len(username); {
	case n == 0:
		return fmt.Errorf("username cannot be empty")
	case n < MinUsernameLen:
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	case n > MaxUsernameLen:
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}
	return nil
}

// ValidatePassword проверяет пароль учетной записи
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordBytes)
	}
	return nil
}

// ValidateCredentials проверяет пару username/пароль при регистрации
// и возвращает все нарушения сразу
func ValidateCredentials(username, password string) error {
	return errors.Join(ValidateUsername(username), ValidatePassword(password))
}

// PasswordHint подсказка к вводу нового пароля
func PasswordHint() string {
	return fmt.Sprintf("Password (min %d chars): ", MinPasswordLen)
}
