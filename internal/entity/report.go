package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ReportType string

const (
	ReportCustomers ReportType = "customers"
	ReportSales     ReportType = "sales"
	ReportInvoices  ReportType = "invoices"
	ReportInventory ReportType = "inventory"
	ReportSuppliers ReportType = "suppliers"
)

func (r ReportType) IsValid() bool {
	switch r {
	case ReportCustomers, ReportSales, ReportInvoices, ReportInventory, ReportSuppliers:
		return true
	default:
		return false
	}
}

type ReportFormat string

const (
	FormatXLSX ReportFormat = "xlsx"
	FormatCSV  ReportFormat = "csv"
)

func (f ReportFormat) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}

	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

type ReportFilter struct {
	CompanyID uuid.UUID
	From      *time.Time
	To        *time.Time
	Statuses  []string
	Limit     uint64
}

// ReportData is a rectangular table ready to be written to a spreadsheet.
type ReportData struct {
	Title   string
	Headers []string
	Rows    [][]any
}

type GeneratedReport struct {
	ID         uuid.UUID    `db:"id" json:"id"`
	CompanyID  uuid.UUID    `db:"company_id" json:"companyId"`
	UserID     uuid.UUID    `db:"user_id" json:"userId"`
	ReportType ReportType   `db:"report_type" json:"reportType"`
	Format     ReportFormat `db:"format" json:"format"`
	FileName   string       `db:"file_name" json:"fileName"`
	Size       int64        `db:"size" json:"size"`
	RowCount   int          `db:"row_count" json:"rowCount"`
	ObjectKey  string       `db:"object_key" json:"-"`
	CreatedAt  time.Time    `db:"created_at" json:"createdAt"`
}

type ChatRole string

const (
	RoleSystemMsg    ChatRole = "system"
	RoleUserMsg      ChatRole = "user"
	RoleAssistantMsg ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// AssistantMessage is a persisted chat turn.
type AssistantMessage struct {
	ID        uuid.UUID `db:"id"`
	CompanyID uuid.UUID `db:"company_id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      ChatRole  `db:"role"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
