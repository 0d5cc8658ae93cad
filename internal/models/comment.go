package models

import "time"

// Comment представляет комментарий к статье.
// ParentID пустой для корневого комментария и указывает на родителя для ответа.
type Comment struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ID         string    `json:"id"`
	ArticleID  string    `json:"article_id"`
	ParentID   string    `json:"parent_id,omitempty"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Version    int64     `json:"version"`
}

func (c Comment) RecordID() string      { return c.ID }
func (c Comment) RecordVersion() int64 { return c.Version }

// IsReply возвращает true для ответа на другой комментарий
func (c Comment) IsReply() bool {
	return c.ParentID != ""
}
