package models

import "time"

// ArticleStatus статус статьи в редакционном процессе
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePending   ArticleStatus = "pending"
	ArticlePublished ArticleStatus = "published"
	ArticleArchived  ArticleStatus = "archived"
	ArticleRejected  ArticleStatus = "rejected"
)

// Valid проверяет, что статус известен
func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleDraft, ArticlePending, ArticlePublished, ArticleArchived, ArticleRejected:
		return true
	}
	return false
}

// Article представляет новостную статью.
// Version увеличивается сервером при каждом изменении строки.
type Article struct {
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	PublishedAt  *time.Time    `json:"published_at,omitempty"`
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Content      string        `json:"content"`
	CoverURL     string        `json:"cover_url,omitempty"`
	AuthorID     string        `json:"author_id"`
	Status       ArticleStatus `json:"status"`
	Version      int64         `json:"version"`
	CommentCount int           `json:"comment_count"`
}

func (a Article) RecordID() string      { return a.ID }
func (a Article) RecordVersion() int64 { return a.Version }

// ShareMeta метаданные Open Graph, по которым мессенджеры и соцсети
// строят превью ссылки на статью.
type ShareMeta struct {
	Title       string `json:"og:title"`
	Description string `json:"og:description"`
	Image       string `json:"og:image,omitempty"`
	URL         string `json:"og:url"`
	SiteName    string `json:"og:site_name"`
	Type        string `json:"og:type"`
}

// SiteSettings глобальные настройки сайта, которыми управляет администратор
type SiteSettings struct {
	UpdatedAt          time.Time `json:"updated_at"`
	SiteName           string    `json:"site_name"`
	Tagline            string    `json:"tagline"`
	BaseURL            string    `json:"base_url"`
	CommentsEnabled    bool      `json:"comments_enabled"`
	AnonymousReactions bool      `json:"anonymous_reactions"`
}
