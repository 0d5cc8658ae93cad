package models

import "time"

// Bookmark закладка пользователя на статью
type Bookmark struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ArticleID string    `json:"article_id"`
}

// RecordID у закладки совпадает с ArticleID: у пользователя не больше
// одной закладки на статью, а переключение адресуется именно статьей.
func (b Bookmark) RecordID() string      { return b.ArticleID }
func (b Bookmark) RecordVersion() int64 { return 0 }
