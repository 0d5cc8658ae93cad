package api

import "github.com/iudanet/unipress/internal/models"

// ArticleList страница списка статей
type ArticleList struct {
	Articles []models.Article `json:"articles"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
}

// ArticleRequest тело запроса на создание или изменение статьи
type ArticleRequest struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	CoverURL string `json:"cover_url,omitempty"`
}

// StatusRequest смена статуса статьи (модерация, публикация, архив)
type StatusRequest struct {
	Status models.ArticleStatus `json:"status"`
}

// CommentRequest тело запроса на создание комментария или ответа
type CommentRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

// ReactionRequest переключение реакции.
// AnonymousID передается, когда у читателя нет сессии.
type ReactionRequest struct {
	Kind        models.ReactionKind `json:"kind"`
	AnonymousID string              `json:"anonymous_id,omitempty"`
}

// ReactionToggleResponse результат переключения реакции
type ReactionToggleResponse struct {
	Summary models.ReactionSummary `json:"summary"`
	Active  bool                   `json:"active"`
}

// BookmarkRequest переключение закладки
type BookmarkRequest struct {
	ArticleID string `json:"article_id"`
}

// BookmarkToggleResponse результат переключения закладки.
// Bookmark заполнен, только если закладка создана.
type BookmarkToggleResponse struct {
	Bookmark *models.Bookmark `json:"bookmark,omitempty"`
	Active   bool             `json:"active"`
}

// RoleRequest смена роли пользователя администратором
type RoleRequest struct {
	Role models.Role `json:"role"`
}
