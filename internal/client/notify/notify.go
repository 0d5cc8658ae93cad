// Package notify показывает пользователю короткие уведомления
// о результатах мутаций и изменениях, пришедших от других сессий.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/iudanet/unipress/internal/client/apperr"
)

//go:generate moq -out notifier_mock.go . Notifier

// Notifier принимает временные уведомления
type Notifier interface {
	// Info пассивное уведомление (например, "new comment")
	Info(message string)

	// Error уведомление о неудачной операции
	Error(err error)
}

// Terminal пишет уведомления в поток вывода CLI
type Terminal struct {
	out io.Writer
	mu  sync.Mutex
}

// NewTerminal создает уведомления для терминала
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Info(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintf(t.out, "• %s\n", message)
}

func (t *Terminal) Error(err error) {
	if err == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintf(t.out, "✗ [%s] %v\n", apperr.KindOf(err), err)
}

// Recorder запоминает уведомления, используется в тестах и для истории
type Recorder struct {
	infos  []string
	errors []error
	mu     sync.Mutex
}

func (r *Recorder) Info(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.infos = append(r.infos, message)
}

func (r *Recorder) Error(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors = append(r.errors, err)
}

// Infos возвращает копию полученных информационных уведомлений
func (r *Recorder) Infos() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.infos...)
}

// Errors возвращает копию полученных ошибок
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

// Discard игнорирует уведомления
type Discard struct{}

func (Discard) Info(string) {}
func (Discard) Error(error) {}
