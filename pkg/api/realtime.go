package api

import "encoding/json"

// EventType тип изменения строки в realtime событии
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Таблицы, на изменения которых можно подписаться
const (
	TableArticles  = "articles"
	TableComments  = "comments"
	TableReactions = "reactions"
	TableBookmarks = "bookmarks"
)

// ChangeEvent изменение строки таблицы.
// New заполнен для INSERT/UPDATE, Old для UPDATE/DELETE.
// Actor идентификатор пользователя, выполнившего изменение.
type ChangeEvent struct {
	Topic     string          `json:"topic,omitempty"`
	EventType EventType       `json:"eventType"`
	Table     string          `json:"table"`
	Actor     string          `json:"actor,omitempty"`
	New       json.RawMessage `json:"new,omitempty"`
	Old       json.RawMessage `json:"old,omitempty"`
}

// Типы кадров протокола realtime поверх websocket
const (
	FrameSubscribe   = "subscribe"
	FrameSubscribed  = "subscribed"
	FrameUnsubscribe = "unsubscribe"
	FrameEvent       = "event"
	FrameError       = "error"
)

// Filter фильтр строк на стороне сервера: column = value
type Filter struct {
	Column string `json:"column,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Frame кадр протокола realtime.
// Клиент шлет subscribe/unsubscribe, сервер отвечает subscribed/error и шлет event.
type Frame struct {
	Event   *ChangeEvent `json:"event,omitempty"`
	Type    string       `json:"type"`
	Topic   string       `json:"topic"`
	Table   string       `json:"table,omitempty"`
	Filter  Filter       `json:"filter,omitempty"`
	Message string       `json:"message,omitempty"`
}
