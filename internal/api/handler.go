package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/assistant"
	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks -typed

type Service interface {
	CalendarEvents(ctx context.Context, from, to *time.Time, types []entity.EventType) ([]entity.CalendarEvent, error)
	Tasks(ctx context.Context, f entity.TaskFilter) ([]entity.Task, entity.TaskStats, error)
	CreateTask(ctx context.Context, t entity.Task) (entity.Task, error)
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status entity.TaskStatus) (entity.Task, error)
	CalculateSalary(ctx context.Context, in entity.SalaryInput) (entity.SalaryBreakdown, error)
	GrossFromNet(ctx context.Context, net, cumulative decimal.Decimal, rates entity.SalaryRateOverrides) (decimal.Decimal, error)
	SaveSalaryRecord(ctx context.Context, in service.SalaryRecordInput) (entity.SalaryRecord, error)
	SalaryRecords(ctx context.Context, period *time.Time) ([]entity.SalaryRecord, error)
	AssistantStatus(ctx context.Context) bool
	Chat(ctx context.Context, msgs []entity.ChatMessage) (string, error)
	ChatStream(ctx context.Context, msgs []entity.ChatMessage, w io.Writer) error
	GenerateSQL(ctx context.Context, question string) (service.SQLResult, error)
	RunQuery(ctx context.Context, question string) (service.QueryResult, error)
	Analyze(ctx context.Context, table string, rows []map[string]any, summary map[string]any) (service.Answer[assistant.Analysis], error)
	MapColumns(ctx context.Context, columns []string, targets []assistant.TargetField) (service.Answer[assistant.ColumnMappings], error)
	Report(ctx context.Context, question string, rc *assistant.ReportContext) (service.Answer[assistant.ReportPlan], error)
	Dispatch(ctx context.Context, message string) (service.DispatchResult, error)
	ParseInvoice(ctx context.Context, payload []byte) (entity.Invoice, error)
	IncomingInvoices(ctx context.Context, f entity.IncomingInvoiceFilter) ([]entity.IncomingInvoice, int, error)
	InvoiceDetails(ctx context.Context, id uuid.UUID) (service.InvoiceDetails, error)
	InvoicePDF(ctx context.Context, id uuid.UUID, kind entity.EInvoiceKind) ([]byte, string, error)
	SyncIncoming(ctx context.Context, from, to time.Time) (service.SyncSummary, error)
	CreateSalesInvoice(ctx context.Context, in service.SalesInvoiceInput) (entity.SalesInvoice, error)
	SendSalesInvoice(ctx context.Context, id uuid.UUID) (entity.SalesInvoice, error)
	SalesInvoiceStatus(ctx context.Context, id uuid.UUID) (entity.SalesInvoice, error)
	NextInvoiceNumber(ctx context.Context, series string) (string, error)
	DownloadReport(ctx context.Context, id uuid.UUID) (service.DownloadedReport, error)
}

// @title ERP API
// @version 1.0
// @description Calendar, AI assistant, payroll and e-invoicing backend.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s   Service
	now func() time.Time
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s:   s,
		now: time.Now,
	}
}

// Health godoc
// @Summary      Servis durumu
// @Description  Servisin çalıştığını doğrular
// @Tags         health
// @Success      200 {string} string "Servis çalışıyor!"
// @Failure      500 {object} ResponseError "Servis çalışmıyor"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Servis çalışıyor!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Servis çalışmıyor!")
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")

	id, err := uuid.FromString(raw)
	if err != nil || id.IsNil() {
		return uuid.Nil, fmt.Errorf("%w: id %q is not a uuid", entity.ErrInvalidArgument, raw)
	}

	return id, nil
}
