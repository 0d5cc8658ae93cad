// Package views состояние экранов клиента: лента статей, обсуждение,
// реакции и закладки. Каждое представление объединяет оптимистичный
// ресурс, типизированный репозиторий, realtime подписку и сессию.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/optimistic"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/pkg/api"
)

// Deps общие зависимости представлений
type Deps struct {
	Session       session.TokenSource
	Subscriptions *realtime.Manager // nil: без realtime обновлений
	Notifier      notify.Notifier
	Logger        *slog.Logger

	// OnChange вызывается после изменения состояния событием с сервера
	OnChange func()
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = notify.Discard{}
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.OnChange == nil {
		d.OnChange = func() {}
	}
	return d
}

// live управляет подпиской представления
type live struct {
	subs *realtime.Manager
	sub  *realtime.Subscription
	mu   sync.Mutex
}

// open закрывает прежнюю подписку и открывает новую
func (l *live) open(ctx context.Context, scope realtime.Scope, h realtime.Handler) error {
	l.close()
	if l.subs == nil {
		return nil
	}

	sub, err := l.subs.Subscribe(ctx, scope, h)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.sub = sub
	l.mu.Unlock()
	return nil
}

func (l *live) close() {
	l.mu.Lock()
	sub := l.sub
	l.sub = nil
	l.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
}

// decodeEvent разбирает строку события: для DELETE берется old, иначе new
func decodeEvent[T models.Record](ev api.ChangeEvent) (optimistic.Event[T], error) {
	out := optimistic.Event[T]{Type: ev.EventType, Actor: ev.Actor}

	raw := ev.New
	if ev.EventType == api.EventDelete {
		raw = ev.Old
	}
	if len(raw) == 0 {
		return out, fmt.Errorf("%s event on %s without row", ev.EventType, ev.Table)
	}
	if err := json.Unmarshal(raw, &out.Record); err != nil {
		return out, fmt.Errorf("failed to decode %s row: %w", ev.Table, err)
	}
	return out, nil
}
