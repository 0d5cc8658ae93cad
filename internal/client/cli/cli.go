// Package cli команды клиента новостного портала
package cli

import (
	"context"
	"log/slog"

	"github.com/iudanet/unipress/internal/client/iocli"
	"github.com/iudanet/unipress/internal/client/notify"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/client/storage"
	"github.com/iudanet/unipress/internal/client/views"
	"github.com/iudanet/unipress/pkg/api"
)

//go:generate moq -out sessions_mock.go . Sessions

// Sessions операции с сессией, которые нужны командам
type Sessions interface {
	session.TokenSource
	Register(ctx context.Context, username, password string) (*api.RegisterResponse, error)
	Login(ctx context.Context, username, password string) (session.Session, error)
	Logout(ctx context.Context) error
	Current() (session.Session, bool)
}

var _ Sessions = (*session.Manager)(nil)

// TransportFactory открывает realtime транспорт для команды watch
type TransportFactory func(ctx context.Context) realtime.Transport

// Cli состояние клиента на время выполнения одной команды
type Cli struct {
	io        iocli.IO
	sessions  Sessions
	repos     *repository.Set
	metadata  storage.MetadataStorage
	notifier  notify.Notifier
	logger    *slog.Logger
	transport TransportFactory
}

// New создает CLI. transport может быть nil: тогда watch недоступен.
func New(
	io iocli.IO,
	sessions Sessions,
	repos *repository.Set,
	metadata storage.MetadataStorage,
	transport TransportFactory,
	logger *slog.Logger,
) *Cli {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cli{
		io:        io,
		sessions:  sessions,
		repos:     repos,
		metadata:  metadata,
		notifier:  notify.NewTerminal(io),
		logger:    logger,
		transport: transport,
	}
}

// viewDeps зависимости представлений; subs nil для разовых команд
func (c *Cli) viewDeps(subs *realtime.Manager, onChange func()) views.Deps {
	return views.Deps{
		Session:       c.sessions,
		Subscriptions: subs,
		Notifier:      c.notifier,
		Logger:        c.logger,
		OnChange:      onChange,
	}
}
