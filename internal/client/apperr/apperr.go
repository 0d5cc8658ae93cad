// Package apperr классифицирует ошибки клиентских мутаций:
// нет сессии, невалидный ввод, отказ по роли, сетевая или серверная ошибка.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind класс ошибки, который видит пользователь
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindValidationFailed
	KindNetworkOrServer
	KindPermissionDenied
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindValidationFailed:
		return "ValidationFailed"
	case KindNetworkOrServer:
		return "NetworkOrServerError"
	case KindPermissionDenied:
		return "PermissionDenied"
	default:
		return "Unknown"
	}
}

// Sentinel ошибки для errors.Is
var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrValidationFailed = errors.New("validation failed")
	ErrNetworkOrServer  = errors.New("network or server error")
	ErrPermissionDenied = errors.New("permission denied")
)

var sentinels = map[Kind]error{
	KindUnauthenticated:  ErrUnauthenticated,
	KindValidationFailed: ErrValidationFailed,
	KindNetworkOrServer:  ErrNetworkOrServer,
	KindPermissionDenied: ErrPermissionDenied,
}

// Error ошибка операции с классом, HTTP статусом (если был ответ) и причиной
type Error struct {
	Err     error
	Op      string
	Message string
	Kind    Kind
	Status  int
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		if e.Err != nil {
			msg = e.Err.Error()
		} else {
			msg = e.Kind.String()
		}
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сопоставляет ошибку с sentinel ее класса
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]
	return ok && target == sentinel
}

// New создает ошибку заданного класса
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap оборачивает причину в ошибку заданного класса
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Validation короткий конструктор для ошибок ввода
func Validation(op, message string) *Error {
	return New(KindValidationFailed, op, message)
}

// FromStatus классифицирует HTTP ответ с ошибкой
func FromStatus(op string, status int, message string) *Error {
	var kind Kind
	switch {
	case status == http.StatusUnauthorized:
		kind = KindUnauthenticated
	case status == http.StatusForbidden:
		kind = KindPermissionDenied
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		kind = KindValidationFailed
	default:
		kind = KindNetworkOrServer
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Kind: kind, Op: op, Message: message, Status: status}
}

// KindOf возвращает класс ошибки.
// Неклассифицированные ошибки считаются сетевыми/серверными.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for kind, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindNetworkOrServer
}
