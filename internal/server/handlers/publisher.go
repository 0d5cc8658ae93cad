package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/iudanet/unipress/pkg/api"
)

//go:generate moq -out publisher_mock.go . Publisher

// Publisher рассылает изменения строк подписчикам realtime
type Publisher interface {
	Publish(ev api.ChangeEvent)
}

// NopPublisher ничего не рассылает
type NopPublisher struct{}

func (NopPublisher) Publish(api.ChangeEvent) {}

// publishChange собирает событие из строк и отправляет его.
// newRow и oldRow могут быть nil.
func publishChange(pub Publisher, logger *slog.Logger, typ api.EventType, table, actor string, newRow, oldRow any) {
	ev := api.ChangeEvent{EventType: typ, Table: table, Actor: actor}

	if newRow != nil {
		raw, err := json.Marshal(newRow)
		if err != nil {
			logger.Error("failed to encode change event", slog.String("table", table), slog.Any("error", err))
			return
		}
		ev.New = raw
	}
	if oldRow != nil {
		raw, err := json.Marshal(oldRow)
		if err != nil {
			logger.Error("failed to encode change event", slog.String("table", table), slog.Any("error", err))
			return
		}
		ev.Old = raw
	}

	pub.Publish(ev)
}
