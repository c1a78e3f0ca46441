package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l                    *slog.Logger
	w                    *kafka.Writer
	invoiceReceivedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                    l,
		w:                    w,
		invoiceReceivedTopic: topic,
	}
}

type InvoiceReceivedEvent struct {
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	CompanyID     uuid.UUID       `json:"company_id"`
	EInvoiceUUID  string          `json:"einvoice_uuid"`
	InvoiceNumber string          `json:"invoice_number"`
	SupplierName  string          `json:"supplier_name"`
	PayableAmount decimal.Decimal `json:"payable_amount"`
	Currency      string          `json:"currency"`
	IssueDate     *time.Time      `json:"issue_date,omitempty"`
}

// SendInvoiceReceived is fire-and-forget: the writer is async and failures are only logged.
func (p *Producer) SendInvoiceReceived(ctx context.Context, event InvoiceReceivedEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CompanyID.String()),
		Value: b,
		Topic: p.invoiceReceivedTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
