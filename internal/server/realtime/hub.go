// Package realtime websocket хаб сервера: принимает подписки клиентов
// на области table:column=eq.value и рассылает изменения строк.
package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

var (
	// ErrUnknownTable подписка на таблицу, которой нет в протоколе
	ErrUnknownTable = errors.New("unknown table")

	// ErrForbidden подписка на чужие строки
	ErrForbidden = errors.New("subscription not allowed")
)

// Identity пользователь соединения. Пустой UserID означает анонимного читателя.
type Identity struct {
	UserID string
	Role   models.Role
}

// Observer получает события хаба (метрики)
type Observer interface {
	ConnectionOpened()
	ConnectionClosed()
	Subscribed(table string)
	Unsubscribed(table string)
	EventDelivered(table string)
}

type nopObserver struct{}

func (nopObserver) ConnectionOpened()     {}
func (nopObserver) ConnectionClosed()     {}
func (nopObserver) Subscribed(string)     {}
func (nopObserver) Unsubscribed(string)   {}
func (nopObserver) EventDelivered(string) {}

// Settings параметры соединений хаба
type Settings struct {
	Observer       Observer
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
	SendBuffer     int
}

// DefaultSettings настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		Observer:       nopObserver{},
		WriteTimeout:   10 * time.Second,
		PongTimeout:    60 * time.Second,
		PingInterval:   50 * time.Second,
		MaxMessageSize: 4096,
		SendBuffer:     64,
	}
}

// Hub держит соединения и их подписки
type Hub struct {
	logger   *slog.Logger
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	settings Settings
	mu       sync.RWMutex
	closed   bool
}

// NewHub создает хаб
func NewHub(logger *slog.Logger, settings Settings) *Hub {
	defaults := DefaultSettings()
	if settings.Observer == nil {
		settings.Observer = defaults.Observer
	}
	if settings.WriteTimeout <= 0 {
		settings.WriteTimeout = defaults.WriteTimeout
	}
	if settings.PongTimeout <= 0 {
		settings.PongTimeout = defaults.PongTimeout
	}
	if settings.PingInterval <= 0 || settings.PingInterval >= settings.PongTimeout {
		settings.PingInterval = settings.PongTimeout * 9 / 10
	}
	if settings.MaxMessageSize <= 0 {
		settings.MaxMessageSize = defaults.MaxMessageSize
	}
	if settings.SendBuffer <= 0 {
		settings.SendBuffer = defaults.SendBuffer
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Hub{
		logger:   logger.With("component", "realtime"),
		clients:  make(map[*client]struct{}),
		settings: settings,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CLI клиент не шлет Origin, браузерный фронтенд живет на другом домене
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeWS переводит запрос в websocket и обслуживает соединение до его закрытия
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, id Identity) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		hub:      h,
		conn:     conn,
		identity: id,
		send:     make(chan api.Frame, h.settings.SendBuffer),
		subs:     make(map[string]subscription),
	}

	if !h.register(c) {
		_ = conn.Close()
		return
	}

	h.logger.Debug("Realtime client connected", "user_id", id.UserID, "remote_addr", r.RemoteAddr)

	go c.writePump()
	c.readPump()
}

// Publish рассылает изменение всем подходящим подпискам.
// Медленный клиент с переполненной очередью отключается.
func (h *Hub) Publish(ev api.ChangeEvent) {
	change, err := newChange(ev)
	if err != nil {
		h.logger.Warn("Skipping malformed change event", "table", ev.Table, "error", err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		for _, topic := range c.matching(change) {
			delivered := ev
			delivered.Topic = topic
			select {
			case c.send <- api.Frame{Type: api.FrameEvent, Topic: topic, Event: &delivered}:
				h.settings.Observer.EventDelivered(ev.Table)
			default:
				slow = append(slow, c)
			}
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Realtime client too slow, disconnecting", "user_id", c.identity.UserID)
		h.unregister(c)
	}
}

// Clients количество подключенных клиентов
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close закрывает все соединения; новые больше не принимаются
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	h.settings.Observer.ConnectionOpened()
	return true
}

// unregister убирает клиента и закрывает его очередь; повторный вызов ничего не делает
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.mu.Unlock()

	c.mu.Lock()
	for _, sub := range c.subs {
		h.settings.Observer.Unsubscribed(sub.table)
	}
	c.subs = map[string]subscription{}
	c.mu.Unlock()

	h.settings.Observer.ConnectionClosed()
}

// authorize проверяет, может ли пользователь подписаться на область
func authorize(id Identity, table string, filter api.Filter) error {
	switch table {
	case api.TableArticles, api.TableComments, api.TableReactions:
		return nil
	case api.TableBookmarks:
		if id.UserID == "" {
			return fmt.Errorf("%w: bookmarks require a session", ErrForbidden)
		}
		if filter.Column != "user_id" || filter.Value != id.UserID {
			return fmt.Errorf("%w: bookmarks of another user", ErrForbidden)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
}

// change событие с разобранными строками для фильтрации
type change struct {
	newRow map[string]any
	oldRow map[string]any
	table  string
}

func newChange(ev api.ChangeEvent) (change, error) {
	c := change{table: ev.Table}
	if len(ev.New) > 0 {
		if err := json.Unmarshal(ev.New, &c.newRow); err != nil {
			return c, fmt.Errorf("decode new row: %w", err)
		}
	}
	if len(ev.Old) > 0 {
		if err := json.Unmarshal(ev.Old, &c.oldRow); err != nil {
			return c, fmt.Errorf("decode old row: %w", err)
		}
	}
	return c, nil
}

// matches проверяет фильтр column = value по новой или старой строке
func (c change) matches(filter api.Filter) bool {
	if filter.Column == "" {
		return true
	}
	return fieldEquals(c.newRow, filter) || fieldEquals(c.oldRow, filter)
}

func fieldEquals(row map[string]any, filter api.Filter) bool {
	if row == nil {
		return false
	}
	v, ok := row[filter.Column]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprint(v) == filter.Value
}

// visible скрывает неопубликованные статьи от всех, кроме автора и редакции
func (c change) visible(id Identity) bool {
	if c.table != api.TableArticles {
		return true
	}
	if id.Role.AtLeast(models.RoleEditor) {
		return true
	}
	for _, row := range []map[string]any{c.newRow, c.oldRow} {
		if row == nil {
			continue
		}
		if row["status"] == string(models.ArticlePublished) {
			return true
		}
		if id.UserID != "" && row["author_id"] == id.UserID {
			return true
		}
	}
	return false
}
