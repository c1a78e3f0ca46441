package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/erp/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -typed

type Notifier interface {
	NotifyInvoiceReceived(ctx context.Context, event broker.InvoiceReceivedEvent) error
}

type EventHandler struct {
	s Notifier
}

func NewEventHandler(s Notifier) *EventHandler {
	return &EventHandler{s: s}
}

func (h *EventHandler) OnInvoiceReceived(ctx context.Context, msg kafka.Message) error {
	var event broker.InvoiceReceivedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.CompanyID.IsNil() || event.InvoiceID.IsNil() {
		return nil
	}

	err = h.s.NotifyInvoiceReceived(ctx, event)
	if err != nil {
		return fmt.Errorf("notify invoice received: %w", err)
	}

	return nil
}
