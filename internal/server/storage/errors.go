package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrArticleNotFound статья не найдена
	ErrArticleNotFound = errors.New("article not found")

	// ErrSlugTaken slug уже занят другой статьей
	ErrSlugTaken = errors.New("slug already taken")

	// ErrCommentNotFound комментарий не найден
	ErrCommentNotFound = errors.New("comment not found")

	// ErrParentMismatch родительский комментарий относится к другой статье
	ErrParentMismatch = errors.New("parent comment belongs to another article")
)
