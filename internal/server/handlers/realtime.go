package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/unipress/internal/server/realtime"
)

// RealtimeHandler поднимает websocket соединение с хабом изменений
type RealtimeHandler struct {
	hub    *realtime.Hub
	logger *slog.Logger
}

// NewRealtimeHandler создает handler websocket подписок
func NewRealtimeHandler(logger *slog.Logger, hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, logger: logger}
}

// Serve обрабатывает GET /api/v1/realtime.
// Соединение без токена получает права анонимного читателя.
func (h *RealtimeHandler) Serve(w http.ResponseWriter, r *http.Request) {
	p, _ := GetPrincipal(r.Context())
	h.hub.ServeWS(w, r, realtime.Identity{UserID: p.UserID, Role: p.Role})
}
