package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/erp/pkg/logger"
	"github.com/samandr77/microservices/erp/pkg/metrics"
)

// LoggingRoundTripper logs every provider call and forwards the request id.
// Bodies are never logged: they carry credentials and invoice data.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		metrics.ObserveOutgoing(r.URL.Host, err, 0)
		return nil, fmt.Errorf("round trip: %w", err)
	}

	metrics.ObserveOutgoing(r.URL.Host, nil, resp.StatusCode)

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
