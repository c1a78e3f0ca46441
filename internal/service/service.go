package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/httpclients/groq"
	"github.com/samandr77/microservices/erp/internal/httpclients/nilvera"
	"github.com/samandr77/microservices/erp/internal/httpclients/veriban"
	"github.com/samandr77/microservices/erp/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	Company(ctx context.Context, id uuid.UUID) (entity.Company, error)
	CalendarSources(ctx context.Context, f entity.CalendarFilter) (entity.CalendarSources, error)
	CreateTask(ctx context.Context, t entity.Task) error
	Task(ctx context.Context, companyID, id uuid.UUID) (entity.Task, error)
	Tasks(ctx context.Context, f entity.TaskFilter) ([]entity.Task, error)
	TaskByTitle(ctx context.Context, companyID uuid.UUID, title string) (entity.Task, error)
	UpdateTaskStatus(ctx context.Context, companyID, id uuid.UUID, status entity.TaskStatus, updatedAt time.Time) error
	TaskStats(ctx context.Context, companyID uuid.UUID, now time.Time) (entity.TaskStats, error)
	SaveIncomingInvoice(ctx context.Context, inv entity.IncomingInvoice) (bool, error)
	StoredInvoiceUUIDs(ctx context.Context, companyID uuid.UUID, uuids []string) ([]string, error)
	IncomingInvoice(ctx context.Context, companyID, id uuid.UUID) (entity.IncomingInvoice, error)
	IncomingInvoices(ctx context.Context, f entity.IncomingInvoiceFilter) ([]entity.IncomingInvoice, int, error)
	CreateSalesInvoice(ctx context.Context, inv entity.SalesInvoice) error
	SalesInvoice(ctx context.Context, companyID, id uuid.UUID) (entity.SalesInvoice, error)
	SaveTransferState(ctx context.Context, inv entity.SalesInvoice) error
	PendingTransfers(ctx context.Context, checkedBefore time.Time, limit uint64) ([]entity.SalesInvoice, error)
	InvoiceNumbers(ctx context.Context, companyID uuid.UUID, series string, year int) ([]string, error)
	NilveraCredentials(ctx context.Context, companyID uuid.UUID) (entity.NilveraCredentials, error)
	VeribanCredentials(ctx context.Context, companyID uuid.UUID) (entity.VeribanCredentials, error)
	VeribanCompanies(ctx context.Context) ([]uuid.UUID, error)
	SaveSalaryRecord(ctx context.Context, rec entity.SalaryRecord) (entity.SalaryRecord, error)
	SalaryRecords(ctx context.Context, companyID uuid.UUID, period *time.Time) ([]entity.SalaryRecord, error)
	CumulativeGross(ctx context.Context, employeeID uuid.UUID, period time.Time) (decimal.Decimal, error)
	EmployeeExists(ctx context.Context, companyID, employeeID uuid.UUID) (bool, error)
	ReportData(ctx context.Context, t entity.ReportType, f entity.ReportFilter) (entity.ReportData, error)
	ReadOnlyQuery(ctx context.Context, companyID uuid.UUID, query string, limit int) ([]map[string]any, error)
	CreateGeneratedReport(ctx context.Context, rep entity.GeneratedReport) error
	GeneratedReport(ctx context.Context, companyID, id uuid.UUID) (entity.GeneratedReport, error)
	SaveAssistantMessages(ctx context.Context, msgs ...entity.AssistantMessage) error
}

type LLM interface {
	Configured() bool
	Complete(ctx context.Context, r groq.Request) (string, error)
	Stream(ctx context.Context, r groq.Request) (*groq.Stream, error)
}

type Nilvera interface {
	InvoiceDetails(ctx context.Context, creds entity.NilveraCredentials, invoiceID, envelopeUUID string) (nilvera.Details, error)
	InvoiceXML(ctx context.Context, creds entity.NilveraCredentials, invoiceID string) ([]byte, error)
	InvoicePDF(ctx context.Context, creds entity.NilveraCredentials, invoiceID string, kind entity.EInvoiceKind) ([]byte, error)
}

type Veriban interface {
	TransferSalesInvoice(ctx context.Context, creds entity.VeribanCredentials, f veriban.TransferFile) (veriban.TransferResult, error)
	TransferStatus(ctx context.Context, creds entity.VeribanCredentials, transferFileID string) (entity.TransferState, error)
	SalesInvoiceStatus(ctx context.Context, creds entity.VeribanCredentials, invoiceUUID string) (veriban.InvoiceStatus, error)
	PurchaseInvoiceUUIDs(ctx context.Context, creds entity.VeribanCredentials, from, to time.Time) ([]string, error)
	DownloadPurchaseInvoice(ctx context.Context, creds entity.VeribanCredentials, invoiceUUID string) (string, error)
	Logout(ctx context.Context, creds entity.VeribanCredentials) error
}

type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

type Mailer interface {
	Send(subject, body string, recipients ...string) error
}

type Publisher interface {
	SendInvoiceReceived(ctx context.Context, event broker.InvoiceReceivedEvent)
}

type Service struct {
	repo      Repository
	llm       LLM
	nilvera   Nilvera
	veriban   Veriban
	storage   Storage
	mailer    Mailer
	publisher Publisher
	now       func() time.Time
}

func New(
	repo Repository,
	llm LLM,
	nilveraClient Nilvera,
	veribanClient Veriban,
	storage Storage,
	mailer Mailer,
	publisher Publisher,
) *Service {
	return &Service{
		repo:      repo,
		llm:       llm,
		nilvera:   nilveraClient,
		veriban:   veribanClient,
		storage:   storage,
		mailer:    mailer,
		publisher: publisher,
		now:       time.Now,
	}
}

// WithClock replaces the time source. Tests use it to pin dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func userFromContext(ctx context.Context) (entity.User, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user from context: %w", err)
	}

	return user, nil
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func ptr[T any](v T) *T {
	return &v
}
