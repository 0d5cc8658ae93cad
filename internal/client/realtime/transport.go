package realtime

import (
	"context"
	"errors"

	"github.com/iudanet/unipress/pkg/api"
)

// ErrTransportClosed транспорт закрыт
var ErrTransportClosed = errors.New("realtime transport closed")

// Transport канал доставки изменений от сервера
type Transport interface {
	// Subscribe открывает канал для области и ждет подтверждения сервера
	Subscribe(ctx context.Context, scope Scope) error

	// Unsubscribe закрывает канал области
	Unsubscribe(ctx context.Context, scope Scope) error

	// Events поток событий всех открытых каналов.
	// Может быть закрыт после Close.
	Events() <-chan api.ChangeEvent

	// Close закрывает соединение и освобождает ресурсы
	Close() error
}
