package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Invoice is a UBL-TR document reduced to the fields the application shows and stores.
type Invoice struct {
	Number       string          `json:"invoiceNumber"`
	UUID         string          `json:"uuid"`
	IssueDate    string          `json:"issueDate"`
	IssueTime    string          `json:"issueTime,omitempty"`
	DueDate      string          `json:"dueDate,omitempty"`
	Currency     string          `json:"currency"`
	InvoiceType  string          `json:"invoiceType"`
	ProfileID    string          `json:"profileId"`
	Note         string          `json:"note,omitempty"`
	ExchangeRate *ExchangeRate   `json:"exchangeRate,omitempty"`
	Supplier     InvoiceParty    `json:"supplier"`
	Customer     InvoiceParty    `json:"customer"`
	Totals       InvoiceTotals   `json:"totals"`
	Payment      *InvoicePayment `json:"payment,omitempty"`
	Lines        []InvoiceLine   `json:"lines"`
}

type ExchangeRate struct {
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	Date           string          `json:"date,omitempty"`
}

type InvoiceParty struct {
	Name      string `json:"name"`
	TaxNumber string `json:"taxNumber"`
	TaxOffice string `json:"taxOffice,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	District  string `json:"district,omitempty"`
	Country   string `json:"country,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type InvoiceTotals struct {
	LineExtension decimal.Decimal `json:"lineExtensionAmount"`
	Allowance     decimal.Decimal `json:"allowanceTotalAmount"`
	TaxExclusive  decimal.Decimal `json:"taxExclusiveAmount"`
	TaxTotal      decimal.Decimal `json:"taxTotalAmount"`
	Payable       decimal.Decimal `json:"payableAmount"`
}

type InvoicePayment struct {
	MeansCode   string `json:"meansCode,omitempty"`
	ChannelCode string `json:"channelCode,omitempty"`
	IBAN        string `json:"iban,omitempty"`
	BankBranch  string `json:"bankBranch,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	TermsNote   string `json:"termsNote,omitempty"`
}

type InvoiceLine struct {
	LineNumber     int             `json:"lineNumber"`
	Description    string          `json:"description"`
	ProductCode    string          `json:"productCode,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitCode       string          `json:"unitCode"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	VATRate        decimal.Decimal `json:"vatRate"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	GTIPCode       string          `json:"gtipCode,omitempty"`
}

type EInvoiceKind string

const (
	KindEFatura EInvoiceKind = "e-fatura"
	KindEArsiv  EInvoiceKind = "e-arsiv"
)

func (k EInvoiceKind) IsValid() bool {
	return k == KindEFatura || k == KindEArsiv
}

type EInvoiceProvider string

const (
	ProviderNilvera EInvoiceProvider = "nilvera"
	ProviderVeriban EInvoiceProvider = "veriban"
)

// IncomingInvoice is a stored summary of an e-invoice received from a provider.
type IncomingInvoice struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	CompanyID     uuid.UUID        `db:"company_id" json:"companyId"`
	Provider      EInvoiceProvider `db:"provider" json:"provider"`
	EInvoiceUUID  string           `db:"einvoice_uuid" json:"einvoiceUuid"`
	EnvelopeUUID  string           `db:"envelope_uuid" json:"envelopeUuid,omitempty"`
	InvoiceNumber string           `db:"invoice_number" json:"invoiceNumber"`
	SupplierName  string           `db:"supplier_name" json:"supplierName"`
	SupplierTaxNo string           `db:"supplier_tax_number" json:"supplierTaxNumber"`
	IssueDate     *time.Time       `db:"issue_date" json:"issueDate,omitempty"`
	Currency      string           `db:"currency" json:"currency"`
	TaxTotal      decimal.Decimal  `db:"tax_total" json:"taxTotal"`
	PayableAmount decimal.Decimal  `db:"payable_amount" json:"payableAmount"`
	Details       *Invoice         `db:"details" json:"details,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
}

type IncomingInvoiceFilter struct {
	CompanyID uuid.UUID
	From      *time.Time
	To        *time.Time
	Page      uint64
	Limit     uint64
}

type TransferStatus string

const (
	TransferDraft      TransferStatus = "draft"
	TransferQueued     TransferStatus = "queued"
	TransferProcessing TransferStatus = "processing"
	TransferDelivered  TransferStatus = "delivered"
	TransferFailed     TransferStatus = "failed"
)

func (s TransferStatus) IsFinal() bool {
	return s == TransferDelivered || s == TransferFailed
}

type SalesInvoice struct {
	ID                uuid.UUID          `db:"id" json:"id"`
	CompanyID         uuid.UUID          `db:"company_id" json:"companyId"`
	InvoiceNumber     string             `db:"invoice_number" json:"invoiceNumber"`
	EInvoiceUUID      uuid.UUID          `db:"einvoice_uuid" json:"einvoiceUuid"`
	ProfileID         string             `db:"profile_id" json:"profileId"`
	InvoiceType       string             `db:"invoice_type" json:"invoiceType"`
	InvoiceDate       *time.Time         `db:"invoice_date" json:"invoiceDate,omitempty"`
	DueDate           *time.Time         `db:"due_date" json:"dueDate,omitempty"`
	Currency          string             `db:"currency" json:"currency"`
	Note              string             `db:"note" json:"note,omitempty"`
	CustomerName      string             `db:"customer_name" json:"customerName"`
	CustomerTaxNumber string             `db:"customer_tax_number" json:"customerTaxNumber"`
	CustomerTaxOffice string             `db:"customer_tax_office" json:"customerTaxOffice"`
	CustomerAddress   string             `db:"customer_address" json:"customerAddress"`
	CustomerCity      string             `db:"customer_city" json:"customerCity"`
	CustomerAlias     string             `db:"customer_alias" json:"customerAlias"`
	Subtotal          decimal.Decimal    `db:"subtotal" json:"subtotal"`
	TaxTotal          decimal.Decimal    `db:"tax_total" json:"taxTotal"`
	Total             decimal.Decimal    `db:"total" json:"total"`
	TransferStatus    TransferStatus     `db:"transfer_status" json:"transferStatus"`
	TransferFileID    string             `db:"transfer_file_id" json:"transferFileId,omitempty"`
	IntegrationCode   string             `db:"integration_code" json:"integrationCode,omitempty"`
	GIBStateCode      *int               `db:"gib_state_code" json:"gibStateCode,omitempty"`
	GIBStateName      string             `db:"gib_state_name" json:"gibStateName,omitempty"`
	StatusMessage     string             `db:"status_message" json:"statusMessage,omitempty"`
	LastStatusCheckAt *time.Time         `db:"last_status_check_at" json:"lastStatusCheckAt,omitempty"`
	CreatedAt         time.Time          `db:"created_at" json:"createdAt"`
	Lines             []SalesInvoiceLine `db:"-" json:"lines"`
	Seller            Company            `db:"-" json:"-"`
}

type SalesInvoiceLine struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoiceId"`
	LineNumber  int             `db:"line_number" json:"lineNumber"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitCode    string          `db:"unit_code" json:"unitCode"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unitPrice"`
	VATRate     decimal.Decimal `db:"vat_rate" json:"vatRate"`
	VATAmount   decimal.Decimal `db:"vat_amount" json:"vatAmount"`
	LineTotal   decimal.Decimal `db:"line_total" json:"lineTotal"`
}

// TransferState is the provider view of an outgoing invoice after a status query.
type TransferState struct {
	StateCode        int
	StateName        string
	StateDescription string
	InvoiceNumber    string
}

// TransferStatusFromState maps the provider state code onto the stored transfer status.
func TransferStatusFromState(code int) TransferStatus {
	switch code {
	case 5:
		return TransferDelivered
	case 4:
		return TransferFailed
	case 1, 3:
		return TransferProcessing
	default:
		return TransferQueued
	}
}

type Company struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	TaxNumber     string    `db:"tax_number" json:"taxNumber"`
	TaxOffice     string    `db:"tax_office" json:"taxOffice"`
	Address       string    `db:"address" json:"address"`
	City          string    `db:"city" json:"city"`
	FinanceEmail  string    `db:"finance_email" json:"financeEmail"`
	InvoiceSeries string    `db:"invoice_series" json:"invoiceSeries"`
}
