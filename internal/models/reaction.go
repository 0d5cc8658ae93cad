package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// ReactionKind тип реакции на статью
type ReactionKind string

const (
	ReactionLike       ReactionKind = "like"
	ReactionLove       ReactionKind = "love"
	ReactionInsightful ReactionKind = "insightful"
	ReactionCelebrate  ReactionKind = "celebrate"
)

// ReactionKinds все поддерживаемые реакции в порядке отображения
var ReactionKinds = []ReactionKind{ReactionLike, ReactionLove, ReactionInsightful, ReactionCelebrate}

// Valid проверяет, что тип реакции поддерживается
func (k ReactionKind) Valid() bool {
	for _, known := range ReactionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// AnonymousPrefix префикс идентификатора анонимного автора реакции
const AnonymousPrefix = "anon:"

// AnonymousReactor строит идентификатор автора для анонимной реакции
func AnonymousReactor(anonID string) string {
	return AnonymousPrefix + anonID
}

// IsAnonymousReactor проверяет, принадлежит ли идентификатор анонимному читателю
func IsAnonymousReactor(userID string) bool {
	return strings.HasPrefix(userID, AnonymousPrefix)
}

// PublicReactor идентификатор автора реакции для realtime рассылки.
// Анонимный идентификатор служит читателю учетными данными, поэтому
// вместо него рассылается его хеш; id пользователей не меняются.
func PublicReactor(reactor string) string {
	if !IsAnonymousReactor(reactor) {
		return reactor
	}
	sum := sha256.Sum256([]byte(reactor))
	return AnonymousPrefix + hex.EncodeToString(sum[:16])
}

// Reaction одна строка реакции: пара (статья, автор) для конкретного типа
type Reaction struct {
	CreatedAt time.Time    `json:"created_at"`
	ArticleID string       `json:"article_id"`
	UserID    string       `json:"user_id"`
	Kind      ReactionKind `json:"kind"`
}

// ReactionSummary счетчик реакций одного типа, как его видит текущий пользователь
type ReactionSummary struct {
	ArticleID   string       `json:"article_id"`
	Kind        ReactionKind `json:"kind"`
	Count       int          `json:"count"`
	UserReacted bool         `json:"user_reacted"`
}

// RecordID у счетчика составной: статья + тип реакции
func (s ReactionSummary) RecordID() string {
	return SummaryKey(s.ArticleID, s.Kind)
}

// RecordVersion счетчики не версионируются
func (s ReactionSummary) RecordVersion() int64 { return 0 }

// SummaryKey ключ счетчика реакций в локальном состоянии
func SummaryKey(articleID string, kind ReactionKind) string {
	return articleID + ":" + string(kind)
}

// Toggled возвращает счетчик после переключения реакции текущим пользователем
func (s ReactionSummary) Toggled() ReactionSummary {
	next := s
	if s.UserReacted {
		next.UserReacted = false
		if next.Count > 0 {
			next.Count--
		}
	} else {
		next.UserReacted = true
		next.Count++
	}
	return next
}
