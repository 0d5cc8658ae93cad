package realtime

import (
	"context"
	"sync"

	"github.com/iudanet/unipress/pkg/api"
)

// MemoryTransport транспорт внутри процесса: события публикуются вызовом
// Publish и доставляются только в открытые каналы.
// Используется в тестах и в автономном режиме клиента.
type MemoryTransport struct {
	events chan api.ChangeEvent
	active map[string]bool
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
}

var _ Transport = (*MemoryTransport)(nil)

// NewMemoryTransport создает транспорт в памяти
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		events: make(chan api.ChangeEvent, 64),
		active: make(map[string]bool),
		done:   make(chan struct{}),
	}
}

func (t *MemoryTransport) Subscribe(ctx context.Context, scope Scope) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
		return ErrTransportClosed
	default:
	}
	t.active[scope.Topic()] = true
	return nil
}

func (t *MemoryTransport) Unsubscribe(ctx context.Context, scope Scope) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.active, scope.Topic())
	return nil
}

func (t *MemoryTransport) Events() <-chan api.ChangeEvent {
	return t.events
}

// Publish доставляет событие, если канал его области открыт
func (t *MemoryTransport) Publish(ev api.ChangeEvent) bool {
	t.mu.Lock()
	active := t.active[ev.Topic]
	t.mu.Unlock()
	if !active {
		return false
	}

	select {
	case t.events <- ev:
		return true
	case <-t.done:
		return false
	}
}

func (t *MemoryTransport) Close() error {
	t.once.Do(func() {
		t.mu.Lock()
		close(t.done)
		t.active = make(map[string]bool)
		t.mu.Unlock()
	})
	return nil
}
