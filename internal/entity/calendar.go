package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventActivity             EventType = "activity"
	EventOrder                EventType = "order"
	EventDelivery             EventType = "delivery"
	EventProposal             EventType = "proposal"
	EventSalesInvoice         EventType = "sales_invoice"
	EventPurchaseInvoice      EventType = "purchase_invoice"
	EventWorkOrder            EventType = "work_order"
	EventServiceRequest       EventType = "service_request"
	EventOpportunity          EventType = "opportunity"
	EventPayment              EventType = "payment"
	EventExpense              EventType = "expense"
	EventCheck                EventType = "check"
	EventPurchaseOrder        EventType = "purchase_order"
	EventEmployeeLeave        EventType = "employee_leave"
	EventVehicleMaintenance   EventType = "vehicle_maintenance"
	EventVehicleDocument      EventType = "vehicle_document"
	EventVehicleIncident      EventType = "vehicle_incident"
	EventCalendar             EventType = "event"
	EventGRN                  EventType = "grn"
	EventRFQ                  EventType = "rfq"
	EventPurchaseRequest      EventType = "purchase_request"
	EventVendorInvoice        EventType = "vendor_invoice"
	EventInventoryTransaction EventType = "inventory_transaction"
	EventServiceSlip          EventType = "service_slip"
)

// EventTypes lists every type in the order the calendar renders its legend.
var EventTypes = []EventType{
	EventActivity, EventOrder, EventDelivery, EventProposal, EventSalesInvoice, EventPurchaseInvoice,
	EventWorkOrder, EventServiceRequest, EventOpportunity, EventPayment, EventExpense, EventCheck,
	EventPurchaseOrder, EventEmployeeLeave, EventVehicleMaintenance, EventVehicleDocument,
	EventVehicleIncident, EventCalendar, EventGRN, EventRFQ, EventPurchaseRequest, EventVendorInvoice,
	EventInventoryTransaction, EventServiceSlip,
}

func (t EventType) String() string {
	return string(t)
}

func (t EventType) IsValid() bool {
	_, ok := defaultEventColors[t]
	return ok
}

var defaultEventColors = map[EventType]string{
	EventActivity:             "#6366f1",
	EventOrder:                "#3b82f6",
	EventDelivery:             "#8b5cf6",
	EventProposal:             "#0ea5e9",
	EventSalesInvoice:         "#14b8a6",
	EventPurchaseInvoice:      "#f97316",
	EventWorkOrder:            "#64748b",
	EventServiceRequest:       "#06b6d4",
	EventOpportunity:          "#a855f7",
	EventPayment:              "#22c55e",
	EventExpense:              "#dc2626",
	EventCheck:                "#0284c7",
	EventPurchaseOrder:        "#ea580c",
	EventEmployeeLeave:        "#ec4899",
	EventVehicleMaintenance:   "#84cc16",
	EventVehicleDocument:      "#ca8a04",
	EventVehicleIncident:      "#b91c1c",
	EventCalendar:             "#4f46e5",
	EventGRN:                  "#059669",
	EventRFQ:                  "#7c3aed",
	EventPurchaseRequest:      "#d97706",
	EventVendorInvoice:        "#be123c",
	EventInventoryTransaction: "#0891b2",
	EventServiceSlip:          "#475569",
}

type EventTypeFilter struct {
	Enabled bool   `json:"enabled"`
	Color   string `json:"color"`
}

type EventFilters map[EventType]EventTypeFilter

func DefaultEventFilters() EventFilters {
	f := make(EventFilters, len(defaultEventColors))
	for t, c := range defaultEventColors {
		f[t] = EventTypeFilter{Enabled: true, Color: c}
	}

	return f
}

// Only narrows the filters to the given types, keeping their colors.
func (f EventFilters) Only(types ...EventType) EventFilters {
	if len(types) == 0 {
		return f
	}

	keep := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		keep[t] = struct{}{}
	}

	out := make(EventFilters, len(f))
	for t, v := range f {
		_, v.Enabled = keep[t]
		out[t] = v
	}

	return out
}

type CalendarEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Type     EventType `json:"type"`
	SubType  string    `json:"subType,omitempty"`
	Color    string    `json:"color"`
	SourceID uuid.UUID `json:"sourceId"`
}

type CalendarFilter struct {
	CompanyID uuid.UUID
	From      *time.Time
	To        *time.Time
	Types     []EventType
}

// Calendar source records. Column names follow the tables they are read from.
type (
	Order struct {
		ID                   uuid.UUID  `db:"id"`
		OrderNumber          string     `db:"order_number"`
		Title                string     `db:"title"`
		OrderDate            *time.Time `db:"order_date"`
		ExpectedDeliveryDate *time.Time `db:"expected_delivery_date"`
		DeliveryDate         *time.Time `db:"delivery_date"`
	}

	Delivery struct {
		ID                  uuid.UUID  `db:"id"`
		DeliveryNumber      string     `db:"delivery_number"`
		PlannedDeliveryDate *time.Time `db:"planned_delivery_date"`
		ActualDeliveryDate  *time.Time `db:"actual_delivery_date"`
	}

	Proposal struct {
		ID         uuid.UUID  `db:"id"`
		Number     string     `db:"number"`
		Title      string     `db:"title"`
		OfferDate  *time.Time `db:"offer_date"`
		ValidUntil *time.Time `db:"valid_until"`
	}

	SalesInvoiceDates struct {
		ID            uuid.UUID  `db:"id"`
		InvoiceNumber string     `db:"invoice_number"`
		InvoiceDate   *time.Time `db:"invoice_date"`
		DueDate       *time.Time `db:"due_date"`
	}

	PurchaseInvoice struct {
		ID            uuid.UUID  `db:"id"`
		InvoiceNumber string     `db:"invoice_number"`
		InvoiceDate   *time.Time `db:"invoice_date"`
		DueDate       *time.Time `db:"due_date"`
	}

	WorkOrder struct {
		ID             uuid.UUID  `db:"id"`
		Code           string     `db:"code"`
		Title          string     `db:"title"`
		ScheduledStart *time.Time `db:"scheduled_start"`
		ScheduledEnd   *time.Time `db:"scheduled_end"`
		SLADue         *time.Time `db:"sla_due"`
	}

	ServiceRequest struct {
		ID             uuid.UUID  `db:"id"`
		ServiceTitle   string     `db:"service_title"`
		Title          string     `db:"title"`
		ServiceDueDate *time.Time `db:"service_due_date"`
		CompletionDate *time.Time `db:"completion_date"`
	}

	Opportunity struct {
		ID                uuid.UUID  `db:"id"`
		Title             string     `db:"title"`
		ExpectedCloseDate *time.Time `db:"expected_close_date"`
	}

	Payment struct {
		ID          uuid.UUID        `db:"id"`
		Amount      *decimal.Decimal `db:"amount"`
		Currency    string           `db:"currency"`
		PaymentDate *time.Time       `db:"payment_date"`
	}

	Expense struct {
		ID          uuid.UUID        `db:"id"`
		Description string           `db:"description"`
		Amount      *decimal.Decimal `db:"amount"`
		Date        *time.Time       `db:"date"`
	}

	Check struct {
		ID          uuid.UUID        `db:"id"`
		CheckNumber string           `db:"check_number"`
		Amount      *decimal.Decimal `db:"amount"`
		DueDate     *time.Time       `db:"due_date"`
		IssueDate   *time.Time       `db:"issue_date"`
	}

	PurchaseOrder struct {
		ID                   uuid.UUID  `db:"id"`
		OrderNumber          string     `db:"order_number"`
		Title                string     `db:"title"`
		OrderDate            *time.Time `db:"order_date"`
		ExpectedDeliveryDate *time.Time `db:"expected_delivery_date"`
	}

	EmployeeLeave struct {
		ID                uuid.UUID  `db:"id"`
		EmployeeFirstName string     `db:"employee_first_name"`
		EmployeeLastName  string     `db:"employee_last_name"`
		StartDate         *time.Time `db:"start_date"`
		EndDate           *time.Time `db:"end_date"`
	}

	VehicleMaintenance struct {
		ID                  uuid.UUID  `db:"id"`
		VehiclePlate        string     `db:"vehicle_plate"`
		VehicleBrand        string     `db:"vehicle_brand"`
		MaintenanceDate     *time.Time `db:"maintenance_date"`
		NextMaintenanceDate *time.Time `db:"next_maintenance_date"`
	}

	VehicleDocument struct {
		ID           uuid.UUID  `db:"id"`
		VehiclePlate string     `db:"vehicle_plate"`
		VehicleBrand string     `db:"vehicle_brand"`
		DocumentType string     `db:"document_type"`
		ExpiryDate   *time.Time `db:"expiry_date"`
	}

	VehicleIncident struct {
		ID           uuid.UUID  `db:"id"`
		VehiclePlate string     `db:"vehicle_plate"`
		VehicleBrand string     `db:"vehicle_brand"`
		IncidentDate *time.Time `db:"incident_date"`
	}

	Event struct {
		ID        uuid.UUID  `db:"id"`
		Title     string     `db:"title"`
		StartTime *time.Time `db:"start_time"`
		EndTime   *time.Time `db:"end_time"`
	}

	GRN struct {
		ID           uuid.UUID  `db:"id"`
		GRNNumber    string     `db:"grn_number"`
		ReceivedDate *time.Time `db:"received_date"`
	}

	RFQ struct {
		ID        uuid.UUID  `db:"id"`
		RFQNumber string     `db:"rfq_number"`
		DueDate   *time.Time `db:"due_date"`
	}

	PurchaseRequest struct {
		ID            uuid.UUID  `db:"id"`
		RequestNumber string     `db:"request_number"`
		RequestedDate *time.Time `db:"requested_date"`
	}

	VendorInvoice struct {
		ID            uuid.UUID  `db:"id"`
		InvoiceNumber string     `db:"invoice_number"`
		InvoiceDate   *time.Time `db:"invoice_date"`
	}

	InventoryTransaction struct {
		ID              uuid.UUID  `db:"id"`
		TransactionType string     `db:"transaction_type"`
		TransactionDate *time.Time `db:"transaction_date"`
	}

	ServiceSlip struct {
		ID          uuid.UUID  `db:"id"`
		SlipNumber  string     `db:"slip_number"`
		ServiceDate *time.Time `db:"service_date"`
	}
)

// CalendarSources holds one slice per record kind, each ordered by its date column.
type CalendarSources struct {
	Activities            []Task
	Orders                []Order
	Deliveries            []Delivery
	Proposals             []Proposal
	SalesInvoices         []SalesInvoiceDates
	PurchaseInvoices      []PurchaseInvoice
	WorkOrders            []WorkOrder
	ServiceRequests       []ServiceRequest
	Opportunities         []Opportunity
	Payments              []Payment
	Expenses              []Expense
	Checks                []Check
	PurchaseOrders        []PurchaseOrder
	EmployeeLeaves        []EmployeeLeave
	VehicleMaintenance    []VehicleMaintenance
	VehicleDocuments      []VehicleDocument
	VehicleIncidents      []VehicleIncident
	Events                []Event
	GRNs                  []GRN
	RFQs                  []RFQ
	PurchaseRequests      []PurchaseRequest
	VendorInvoices        []VendorInvoice
	InventoryTransactions []InventoryTransaction
	ServiceSlips          []ServiceSlip
}
