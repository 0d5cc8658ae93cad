package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/iudanet/unipress/pkg/api"
)

// State состояние канала области
type State int

const (
	Unsubscribed State = iota
	Subscribing
	Subscribed
)

func (s State) String() string {
	switch s {
	case Subscribing:
		return "subscribing"
	case Subscribed:
		return "subscribed"
	default:
		return "unsubscribed"
	}
}

// Handler получает события области.
// Вызывается из горутины диспетчера, поэтому не должен блокироваться надолго.
type Handler func(ev api.ChangeEvent)

type channel struct {
	handlers map[int]Handler
	ready    chan struct{}
	err      error
	scope    Scope
	state    State
}

// Manager единый менеджер подписок клиента.
// Считает подписчиков по областям: канал открывается первым подписчиком
// и закрывается, когда уходит последний.
type Manager struct {
	transport Transport
	logger    *slog.Logger
	channels  map[string]*channel
	done      chan struct{}
	wg        sync.WaitGroup
	nextID    int
	mu        sync.Mutex
	closeOnce sync.Once
}

// NewManager создает менеджер и запускает диспетчер событий
func NewManager(transport Transport, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Manager{
		transport: transport,
		logger:    logger.With("component", "subscriptions"),
		channels:  make(map[string]*channel),
		done:      make(chan struct{}),
	}

	m.wg.Add(1)
	go m.dispatch()
	return m
}

// Subscription подписка одного представления на область
type Subscription struct {
	m     *Manager
	scope Scope
	id    int
	once  sync.Once
}

// Scope область подписки
func (s *Subscription) Scope() Scope {
	return s.scope
}

// Close отписывает обработчик. Повторные вызовы ничего не делают.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.m.release(s.scope.Topic(), s.id)
	})
}

// Subscribe регистрирует обработчик области. Если канала еще нет,
// он открывается и Subscribe ждет подтверждения сервера.
func (m *Manager) Subscribe(ctx context.Context, scope Scope, h Handler) (*Subscription, error) {
	topic := scope.Topic()

	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return nil, ErrTransportClosed
	default:
	}

	m.nextID++
	id := m.nextID
	sub := &Subscription{m: m, scope: scope, id: id}

	if ch, ok := m.channels[topic]; ok {
		ch.handlers[id] = h
		ready := ch.ready
		m.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			sub.Close()
			return nil, ctx.Err()
		}

		m.mu.Lock()
		err := ch.err
		m.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return sub, nil
	}

	ch := &channel{
		scope:    scope,
		state:    Subscribing,
		handlers: map[int]Handler{id: h},
		ready:    make(chan struct{}),
	}
	m.channels[topic] = ch
	m.mu.Unlock()

	m.logger.Debug("Opening channel", "topic", topic)
	err := m.transport.Subscribe(ctx, scope)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		ch.err = fmt.Errorf("subscribe %s: %w", topic, err)
		ch.state = Unsubscribed
		if m.channels[topic] == ch {
			delete(m.channels, topic)
		}
		close(ch.ready)
		m.logger.Warn("Channel subscribe failed", "topic", topic, "error", err)
		return nil, ch.err
	}

	ch.state = Subscribed
	close(ch.ready)

	// все подписчики ушли, пока ждали подтверждения
	if len(ch.handlers) == 0 {
		m.closeChannelLocked(topic, ch)
	}

	m.logger.Debug("Channel subscribed", "topic", topic)
	return sub, nil
}

func (m *Manager) release(topic string, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.channels[topic]
	if !ok {
		return
	}
	delete(ch.handlers, id)

	if len(ch.handlers) == 0 && ch.state == Subscribed {
		m.closeChannelLocked(topic, ch)
	}
}

// closeChannelLocked вызывается под m.mu: кадр unsubscribe должен уйти
// раньше, чем новый подписчик откроет канал заново
func (m *Manager) closeChannelLocked(topic string, ch *channel) {
	delete(m.channels, topic)
	ch.state = Unsubscribed

	if err := m.transport.Unsubscribe(context.Background(), ch.scope); err != nil {
		m.logger.Debug("Channel unsubscribe failed", "topic", topic, "error", err)
		return
	}
	m.logger.Debug("Channel closed", "topic", topic)
}

// State состояние канала области
func (m *Manager) State(scope Scope) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.channels[scope.Topic()]; ok {
		return ch.state
	}
	return Unsubscribed
}

// Subscribers количество подписчиков области
func (m *Manager) Subscribers(scope Scope) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.channels[scope.Topic()]; ok {
		return len(ch.handlers)
	}
	return 0
}

// Active возвращает открытые и открывающиеся каналы
func (m *Manager) Active() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	topics := make([]string, 0, len(m.channels))
	for topic := range m.channels {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Close закрывает все каналы и транспорт
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		m.mu.Lock()
		for topic, ch := range m.channels {
			if ch.state == Subscribed {
				m.closeChannelLocked(topic, ch)
			}
		}
		close(m.done)
		m.mu.Unlock()

		err = m.transport.Close()
		m.wg.Wait()
	})
	return err
}

func (m *Manager) dispatch() {
	defer m.wg.Done()

	events := m.transport.Events()
	for {
		select {
		case <-m.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			m.deliver(ev)
		}
	}
}

func (m *Manager) deliver(ev api.ChangeEvent) {
	m.mu.Lock()
	ch, ok := m.channels[ev.Topic]
	if !ok || ch.state != Subscribed {
		m.mu.Unlock()
		m.logger.Debug("Dropping event for closed channel", "topic", ev.Topic, "type", ev.EventType)
		return
	}
	ids := make([]int, 0, len(ch.handlers))
	for id := range ch.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, ch.handlers[id])
	}
	m.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}
