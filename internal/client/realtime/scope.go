// Package realtime получает изменения строк с сервера по websocket
// и раздает их подписчикам. На каждую область (Scope) открывается
// ровно один канал, сколько бы представлений на нее ни подписалось.
package realtime

import (
	"github.com/iudanet/unipress/pkg/api"
)

// Scope область подписки: таблица и фильтр строк column = value.
// Пустой Column означает все строки таблицы.
type Scope struct {
	Table  string
	Column string
	Value  string
}

// Topic ключ канала в формате table:column=eq.value
func (s Scope) Topic() string {
	if s.Column == "" {
		return s.Table
	}
	return s.Table + ":" + s.Column + "=eq." + s.Value
}

// Filter фильтр строк для кадра subscribe
func (s Scope) Filter() api.Filter {
	return api.Filter{Column: s.Column, Value: s.Value}
}

func (s Scope) String() string {
	return s.Topic()
}

// CommentsScope комментарии одной статьи
func CommentsScope(articleID string) Scope {
	return Scope{Table: api.TableComments, Column: "article_id", Value: articleID}
}

// ReactionsScope реакции на одну статью
func ReactionsScope(articleID string) Scope {
	return Scope{Table: api.TableReactions, Column: "article_id", Value: articleID}
}

// BookmarksScope закладки одного пользователя
func BookmarksScope(userID string) Scope {
	return Scope{Table: api.TableBookmarks, Column: "user_id", Value: userID}
}

// ArticlesScope все изменения статей
func ArticlesScope() Scope {
	return Scope{Table: api.TableArticles}
}
