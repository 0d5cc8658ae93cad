package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/unipress/pkg/api"
)

// WSSettings параметры websocket транспорта
type WSSettings struct {
	// Token возвращает access token для рукопожатия.
	// Ошибка означает анонимное подключение.
	Token          func(ctx context.Context) (string, error)
	Dialer         *websocket.Dialer
	Logger         *slog.Logger
	URL            string
	ReconnectDelay time.Duration
	PingInterval   time.Duration
	WriteTimeout   time.Duration
	AckTimeout     time.Duration
	BufferSize     int
}

// DefaultWSSettings настройки по умолчанию
func DefaultWSSettings(url string) WSSettings {
	return WSSettings{
		URL:            url,
		Dialer:         websocket.DefaultDialer,
		ReconnectDelay: 2 * time.Second,
		PingInterval:   20 * time.Second,
		WriteTimeout:   5 * time.Second,
		AckTimeout:     10 * time.Second,
		BufferSize:     64,
	}
}

// WSTransport реализация Transport поверх gorilla/websocket.
// Соединение переустанавливается после разрыва с фиксированной задержкой,
// все активные области подписываются заново. Пропущенные за время
// разрыва события не доставляются.
type WSTransport struct {
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *slog.Logger
	events   chan api.ChangeEvent
	send     chan api.Frame
	active   map[string]Scope
	acks     map[string][]chan error
	settings WSSettings
	wg       sync.WaitGroup
	mu       sync.Mutex
}

var _ Transport = (*WSTransport)(nil)

// NewWSTransport создает транспорт и запускает цикл подключения
func NewWSTransport(ctx context.Context, settings WSSettings) *WSTransport {
	defaults := DefaultWSSettings(settings.URL)
	if settings.Dialer == nil {
		settings.Dialer = defaults.Dialer
	}
	if settings.ReconnectDelay <= 0 {
		settings.ReconnectDelay = defaults.ReconnectDelay
	}
	if settings.PingInterval <= 0 {
		settings.PingInterval = defaults.PingInterval
	}
	if settings.WriteTimeout <= 0 {
		settings.WriteTimeout = defaults.WriteTimeout
	}
	if settings.AckTimeout <= 0 {
		settings.AckTimeout = defaults.AckTimeout
	}
	if settings.BufferSize <= 0 {
		settings.BufferSize = defaults.BufferSize
	}
	logger := settings.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &WSTransport{
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger.With("component", "realtime"),
		events:   make(chan api.ChangeEvent, settings.BufferSize),
		send:     make(chan api.Frame, settings.BufferSize),
		active:   make(map[string]Scope),
		acks:     make(map[string][]chan error),
		settings: settings,
	}

	t.wg.Add(1)
	go t.run()
	return t
}

// Events поток событий
func (t *WSTransport) Events() <-chan api.ChangeEvent {
	return t.events
}

// Subscribe отправляет кадр subscribe и ждет subscribed или error
func (t *WSTransport) Subscribe(ctx context.Context, scope Scope) error {
	topic := scope.Topic()
	ack := make(chan error, 1)

	t.mu.Lock()
	t.active[topic] = scope
	t.acks[topic] = append(t.acks[topic], ack)
	t.mu.Unlock()

	frame := api.Frame{Type: api.FrameSubscribe, Topic: topic, Table: scope.Table, Filter: scope.Filter()}
	if err := t.enqueue(ctx, frame); err != nil {
		t.forget(topic, ack)
		return err
	}

	timer := time.NewTimer(t.settings.AckTimeout)
	defer timer.Stop()

	select {
	case err := <-ack:
		if err != nil {
			t.forget(topic, nil)
			return err
		}
		return nil
	case <-ctx.Done():
		t.forget(topic, ack)
		return ctx.Err()
	case <-t.ctx.Done():
		t.forget(topic, ack)
		return ErrTransportClosed
	case <-timer.C:
		t.forget(topic, ack)
		return fmt.Errorf("subscribe %s: no acknowledgement within %s", topic, t.settings.AckTimeout)
	}
}

// Unsubscribe отправляет кадр unsubscribe и перестает восстанавливать канал.
// Не блокируется: при переполненной очереди кадр отбрасывается, а после
// переподключения область и так не будет подписана заново.
func (t *WSTransport) Unsubscribe(ctx context.Context, scope Scope) error {
	topic := scope.Topic()
	t.forget(topic, nil)

	select {
	case <-t.ctx.Done():
		return ErrTransportClosed
	default:
	}

	select {
	case t.send <- api.Frame{Type: api.FrameUnsubscribe, Topic: topic}:
	default:
		t.logger.Debug("Send queue full, dropping unsubscribe", "topic", topic)
	}
	return nil
}

// Close останавливает цикл подключения и закрывает Events
func (t *WSTransport) Close() error {
	t.cancel()
	t.wg.Wait()
	return nil
}

// forget убирает ожидание подтверждения; при ack == nil убирает область целиком
func (t *WSTransport) forget(topic string, ack chan error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ack == nil {
		delete(t.active, topic)
		delete(t.acks, topic)
		return
	}

	waiters := t.acks[topic]
	for i, w := range waiters {
		if w == ack {
			waiters = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}
	if len(waiters) == 0 {
		delete(t.acks, topic)
		delete(t.active, topic)
		return
	}
	t.acks[topic] = waiters
}

func (t *WSTransport) enqueue(ctx context.Context, frame api.Frame) error {
	select {
	case t.send <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ctx.Done():
		return ErrTransportClosed
	}
}

func (t *WSTransport) resolve(topic string, err error) {
	t.mu.Lock()
	waiters := t.acks[topic]
	delete(t.acks, topic)
	t.mu.Unlock()

	for _, w := range waiters {
		w <- err
	}
}

func (t *WSTransport) run() {
	defer t.wg.Done()
	defer close(t.events)

	for {
		ws, err := t.connect()
		if err != nil {
			t.logger.Info("Realtime connect failed", "error", err)
		} else {
			t.logger.Debug("Realtime connected", "url", t.settings.URL)
			t.handle(ws)
			t.logger.Info("Realtime disconnected")
		}

		select {
		case <-t.ctx.Done():
			return
		case <-time.After(t.settings.ReconnectDelay):
		}
	}
}

func (t *WSTransport) connect() (*websocket.Conn, error) {
	header := http.Header{}
	if t.settings.Token != nil {
		if token, err := t.settings.Token(t.ctx); err == nil && token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	ws, _, err := t.settings.Dialer.DialContext(t.ctx, t.settings.URL, header)
	if err != nil {
		return nil, err
	}

	// после переподключения каналы открываются заново
	t.mu.Lock()
	resubscribe := make([]api.Frame, 0, len(t.active))
	for topic, scope := range t.active {
		resubscribe = append(resubscribe, api.Frame{
			Type:   api.FrameSubscribe,
			Topic:  topic,
			Table:  scope.Table,
			Filter: scope.Filter(),
		})
	}
	t.mu.Unlock()

	for _, frame := range resubscribe {
		if err := t.write(ws, frame); err != nil {
			_ = ws.Close()
			return nil, err
		}
	}

	return ws, nil
}

func (t *WSTransport) write(ws *websocket.Conn, frame api.Frame) error {
	_ = ws.SetWriteDeadline(time.Now().Add(t.settings.WriteTimeout))
	return ws.WriteJSON(frame)
}

func (t *WSTransport) handle(ws *websocket.Conn) {
	defer ws.Close()

	handleCtx, handleCancel := context.WithCancel(t.ctx)
	defer handleCancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer handleCancel()

		ticker := time.NewTicker(t.settings.PingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-handleCtx.Done():
				_ = ws.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(t.settings.WriteTimeout))
				return
			case frame := <-t.send:
				if err := t.write(ws, frame); err != nil {
					t.logger.Info("Realtime write failed", "error", err)
					return
				}
			case <-ticker.C:
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(t.settings.WriteTimeout)); err != nil {
					return
				}
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-handleCtx.Done()
		// прерывает блокирующий ReadMessage
		_ = ws.SetReadDeadline(time.Now())
	}()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if !errors.Is(handleCtx.Err(), context.Canceled) {
				t.logger.Info("Realtime read failed", "error", err)
			}
			break
		}

		var frame api.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			t.logger.Warn("Malformed realtime frame", "error", err)
			continue
		}
		if !t.dispatch(handleCtx, frame) {
			break
		}
	}

	handleCancel()
	wg.Wait()
}

// dispatch обрабатывает кадр сервера; false означает остановку чтения
func (t *WSTransport) dispatch(ctx context.Context, frame api.Frame) bool {
	switch frame.Type {
	case api.FrameSubscribed:
		t.resolve(frame.Topic, nil)
	case api.FrameError:
		t.logger.Warn("Realtime error frame", "topic", frame.Topic, "message", frame.Message)
		if frame.Topic != "" {
			t.resolve(frame.Topic, fmt.Errorf("subscribe %s: %s", frame.Topic, frame.Message))
		}
	case api.FrameEvent:
		if frame.Event == nil {
			return true
		}
		ev := *frame.Event
		if ev.Topic == "" {
			ev.Topic = frame.Topic
		}
		select {
		case t.events <- ev:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
