package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/unipress/pkg/api"
)

// maxBodySize ограничение размера тела запроса
const maxBodySize = 1 << 20

// WriteJSON отправляет успешный конверт с data
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	env := api.Envelope{Success: true, Timestamp: time.Now().UTC()}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			logger.Error("failed to encode response data", slog.Any("error", err))
			WriteError(w, logger, api.CodeInternal, "internal server error", http.StatusInternalServerError)
			return
		}
		env.Data = raw
	}
	writeEnvelope(w, logger, env, statusCode)
}

// WriteError отправляет конверт с ошибкой
func WriteError(w http.ResponseWriter, logger *slog.Logger, code, message string, statusCode int) {
	env := api.Envelope{
		Timestamp: time.Now().UTC(),
		Error:     &api.ErrorBody{Code: code, Message: message},
	}
	writeEnvelope(w, logger, env, statusCode)
}

func writeEnvelope(w http.ResponseWriter, logger *slog.Logger, env api.Envelope, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// decodeJSON разбирает тело запроса в dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// responder общие методы ответа для всех обработчиков
type responder struct {
	logger *slog.Logger
}

func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	WriteJSON(w, h.logger, data, statusCode)
}

func (h responder) badRequest(w http.ResponseWriter, message string) {
	WriteError(w, h.logger, api.CodeValidation, message, http.StatusBadRequest)
}

func (h responder) unauthorized(w http.ResponseWriter, message string) {
	WriteError(w, h.logger, api.CodeUnauthenticated, message, http.StatusUnauthorized)
}

func (h responder) forbidden(w http.ResponseWriter, message string) {
	WriteError(w, h.logger, api.CodeForbidden, message, http.StatusForbidden)
}

func (h responder) notFound(w http.ResponseWriter, message string) {
	WriteError(w, h.logger, api.CodeNotFound, message, http.StatusNotFound)
}

func (h responder) conflict(w http.ResponseWriter, message string) {
	WriteError(w, h.logger, api.CodeConflict, message, http.StatusConflict)
}

// internalError логирует причину и отдает клиенту общее сообщение
func (h responder) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	WriteError(w, h.logger, api.CodeInternal, "internal server error", http.StatusInternalServerError)
}
