package views

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/pkg/api"
)

type env struct {
	deps      Deps
	transport *realtime.MemoryTransport
	subs      *realtime.Manager
	notes     *notify.Recorder
}

// newEnv собирает зависимости представлений для пользователя userID
// (пустая строка: читатель без сессии)
func newEnv(t *testing.T, userID string) *env {
	t.Helper()

	transport := realtime.NewMemoryTransport()
	subs := realtime.NewManager(transport, nil)
	t.Cleanup(func() { _ = subs.Close() })

	notes := &notify.Recorder{}
	tokens := &session.TokenSourceMock{
		TokenFunc: func(ctx context.Context) (string, error) {
			return "token-" + userID, nil
		},
		UserIDFunc: func() string { return userID },
	}

	return &env{
		deps: Deps{
			Session:       tokens,
			Subscriptions: subs,
			Notifier:      notes,
		},
		transport: transport,
		subs:      subs,
		notes:     notes,
	}
}

// publish отправляет событие в открытый канал области
func (e *env) publish(t *testing.T, scope realtime.Scope, typ api.EventType, actor string, row any) {
	t.Helper()

	raw, err := json.Marshal(row)
	require.NoError(t, err)

	ev := api.ChangeEvent{
		Topic:     scope.Topic(),
		EventType: typ,
		Table:     scope.Table,
		Actor:     actor,
	}
	if typ == api.EventDelete {
		ev.Old = raw
	} else {
		ev.New = raw
	}
	require.True(t, e.transport.Publish(ev), "channel %s is not open", scope.Topic())
}

// memDrafts черновики в памяти
type memDrafts struct {
	texts map[string]string
	mu    sync.Mutex
}

func newMemDrafts() *memDrafts {
	return &memDrafts{texts: make(map[string]string)}
}

func (d *memDrafts) SaveDraft(ctx context.Context, articleID, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if text == "" {
		delete(d.texts, articleID)
		return nil
	}
	d.texts[articleID] = text
	return nil
}

func (d *memDrafts) GetDraft(ctx context.Context, articleID string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.texts[articleID], nil
}
