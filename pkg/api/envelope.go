package api

import (
	"encoding/json"
	"time"
)

// Envelope общий формат ответа всех эндпоинтов /api/...
// При успехе заполнено Data, при ошибке Error.
type Envelope struct {
	Timestamp time.Time       `json:"timestamp"`
	Error     *ErrorBody      `json:"error,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Success   bool            `json:"success"`
}

// ErrorBody описание ошибки внутри конверта
type ErrorBody struct {
	Code    string `json:"code"`    // машинный код: unauthenticated, forbidden, validation, not_found, internal
	Message string `json:"message"` // сообщение для пользователя
}

// Коды ошибок в ErrorBody.Code
const (
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeValidation      = "validation"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal"
)
