package calendar_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/erp/internal/calendar"
	"github.com/samandr77/microservices/erp/internal/entity"
)

func ptr[T any](v T) *T {
	return &v
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 10, 0, 0, 0, time.UTC)
}

var testFilter = entity.EventTypeFilter{Enabled: true, Color: "#123456"}

func TestOrders(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())

	got := calendar.Orders([]entity.Order{
		{ID: id, Title: "Vida", OrderDate: ptr(day(1)), ExpectedDeliveryDate: ptr(day(5)), DeliveryDate: ptr(day(6))},
		{ID: uuid.Must(uuid.NewV4()), OrderNumber: "SIP-2"},
	}, testFilter)

	require.Len(t, got, 3)

	require.Equal(t, "order-date-"+id.String(), got[0].ID)
	require.Equal(t, "Sipariş: Vida", got[0].Title)
	require.Equal(t, calendar.ColorOrderDate, got[0].Color)

	require.Equal(t, "order-expected-"+id.String(), got[1].ID)
	require.Equal(t, "Beklenen Teslimat: Vida", got[1].Title)
	require.Equal(t, calendar.ColorExpectedDelivery, got[1].Color)

	require.Equal(t, "order-delivery-"+id.String(), got[2].ID)
	require.Equal(t, calendar.ColorDelivered, got[2].Color)
	require.Equal(t, got[2].Start, got[2].End)
	require.Equal(t, id, got[2].SourceID)
}

func TestActivities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status entity.TaskStatus
		color  string
	}{
		{entity.TaskTodo, "#ef4444"},
		{entity.TaskInProgress, "#eab308"},
		{entity.TaskCompleted, "#22c55e"},
		{entity.TaskPostponed, "#6b7280"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()

			got := calendar.Activities([]entity.Task{
				{ID: uuid.Must(uuid.NewV4()), Status: tt.status, DueDate: ptr(day(2))},
				{ID: uuid.Must(uuid.NewV4()), Status: tt.status, Title: "no due date"},
			}, testFilter)

			require.Len(t, got, 1)
			require.Equal(t, "Başlıksız Görev", got[0].Title)
			require.Equal(t, tt.color, got[0].Color)
		})
	}
}

func TestChecks_TitlePrecedence(t *testing.T) {
	t.Parallel()

	got := calendar.Checks([]entity.Check{
		{ID: uuid.Must(uuid.NewV4()), CheckNumber: "CK-1", Amount: ptr(decimal.RequireFromString("500")), DueDate: ptr(day(1))},
		{ID: uuid.Must(uuid.NewV4()), Amount: ptr(decimal.RequireFromString("12500.75")), DueDate: ptr(day(2))},
		{ID: uuid.Must(uuid.NewV4()), IssueDate: ptr(day(3))},
	}, testFilter)

	require.Len(t, got, 3)
	require.Equal(t, "Çek Vadesi: CK-1", got[0].Title)
	require.Equal(t, "#123456", got[0].Color)
	require.Equal(t, "Çek Vadesi: 12.500,75", got[1].Title)
	require.Equal(t, "Çek Kesim: Çek", got[2].Title)
	require.Equal(t, calendar.ColorCheckIssue, got[2].Color)
}

func TestEmployeeLeaves_NeedBothDates(t *testing.T) {
	t.Parallel()

	got := calendar.EmployeeLeaves([]entity.EmployeeLeave{
		{ID: uuid.Must(uuid.NewV4()), EmployeeFirstName: "Ayşe", EmployeeLastName: "Yılmaz", StartDate: ptr(day(3)), EndDate: ptr(day(7))},
		{ID: uuid.Must(uuid.NewV4()), StartDate: ptr(day(3))},
	}, testFilter)

	require.Len(t, got, 1)
	require.Equal(t, "İzin: Ayşe Yılmaz", got[0].Title)
	require.Equal(t, day(3), got[0].Start)
	require.Equal(t, day(7), got[0].End)
}

func TestEvents_EndFallsBackToStart(t *testing.T) {
	t.Parallel()

	got := calendar.Events([]entity.Event{
		{ID: uuid.Must(uuid.NewV4()), StartTime: ptr(day(1))},
		{ID: uuid.Must(uuid.NewV4()), Title: "Toplantı", StartTime: ptr(day(2)), EndTime: ptr(day(3))},
	}, testFilter)

	require.Len(t, got, 2)
	require.Equal(t, "Etkinlik", got[0].Title)
	require.Equal(t, got[0].Start, got[0].End)
	require.Equal(t, day(3), got[1].End)
}

func TestVehicleDocuments_Fallbacks(t *testing.T) {
	t.Parallel()

	got := calendar.VehicleDocuments([]entity.VehicleDocument{
		{ID: uuid.Must(uuid.NewV4()), ExpiryDate: ptr(day(1))},
		{ID: uuid.Must(uuid.NewV4()), VehicleBrand: "Ford", DocumentType: "Sigorta", ExpiryDate: ptr(day(1))},
	}, testFilter)

	require.Equal(t, "Belge Son Geçerlilik: Araç - Belge", got[0].Title)
	require.Equal(t, "Belge Son Geçerlilik: Ford - Sigorta", got[1].Title)
}

func TestTransformers(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	amount := ptr(decimal.RequireFromString("1250.5"))

	type want struct {
		id      string
		title   string
		subType string
		color   string
	}

	tests := []struct {
		name string
		got  []entity.CalendarEvent
		want []want
		typ  entity.EventType
	}{
		{
			name: "deliveries",
			got: calendar.Deliveries([]entity.Delivery{
				{ID: id, DeliveryNumber: "TS-7", PlannedDeliveryDate: ptr(day(1)), ActualDeliveryDate: ptr(day(2))},
				{ID: id, PlannedDeliveryDate: ptr(day(3))},
				{ID: id},
			}, testFilter),
			want: []want{
				{"delivery-planned", "Planlanan Teslimat: TS-7", "planned", calendar.ColorPlannedDelivery},
				{"delivery-actual", "Gerçekleşen Teslimat: TS-7", "actual", calendar.ColorDelivered},
				{"delivery-planned", "Planlanan Teslimat: Teslimat", "planned", calendar.ColorPlannedDelivery},
			},
			typ: entity.EventDelivery,
		},
		{
			name: "proposals",
			got: calendar.Proposals([]entity.Proposal{
				{ID: id, Number: "TK-3", Title: "Kurulum", OfferDate: ptr(day(1)), ValidUntil: ptr(day(15))},
				{ID: id, Title: "Bakım", OfferDate: ptr(day(2))},
			}, testFilter),
			want: []want{
				{"proposal", "Teklif: TK-3", "", "#123456"},
				{"proposal-valid", "Teklif Geçerlilik: TK-3", "valid_until", calendar.ColorExpectedDelivery},
				{"proposal", "Teklif: Bakım", "", "#123456"},
			},
			typ: entity.EventProposal,
		},
		{
			name: "sales invoices",
			got: calendar.SalesInvoices([]entity.SalesInvoiceDates{
				{ID: id, InvoiceNumber: "SF-1", InvoiceDate: ptr(day(1)), DueDate: ptr(day(31))},
			}, testFilter),
			want: []want{
				{"sales-invoice", "Satış Faturası: SF-1", "", "#123456"},
				{"sales-invoice-due", "Fatura Vadesi: SF-1", "due_date", calendar.ColorDue},
			},
			typ: entity.EventSalesInvoice,
		},
		{
			name: "purchase invoices",
			got: calendar.PurchaseInvoices([]entity.PurchaseInvoice{
				{ID: id, InvoiceNumber: "AF-9", InvoiceDate: ptr(day(4)), DueDate: ptr(day(20))},
				{ID: id, InvoiceNumber: "AF-10"},
			}, testFilter),
			want: []want{
				{"purchase-invoice", "Satın Alma Faturası: AF-9", "", "#123456"},
				{"purchase-invoice-due", "Fatura Vadesi: AF-9", "due_date", calendar.ColorDue},
			},
			typ: entity.EventPurchaseInvoice,
		},
		{
			name: "work orders",
			got: calendar.WorkOrders([]entity.WorkOrder{
				{ID: id, Code: "IE-4", ScheduledStart: ptr(day(1)), ScheduledEnd: ptr(day(2)), SLADue: ptr(day(3))},
			}, testFilter),
			want: []want{
				{"work-order-start", "İş Emri Başlangıç: IE-4", "scheduled_start", "#123456"},
				{"work-order-end", "İş Emri Bitiş: IE-4", "scheduled_end", calendar.ColorDelivered},
				{"work-order-sla", "SLA Vadesi: IE-4", "sla_due", calendar.ColorDue},
			},
			typ: entity.EventWorkOrder,
		},
		{
			name: "service requests",
			got: calendar.ServiceRequests([]entity.ServiceRequest{
				{ID: id, ServiceTitle: "Klima", Title: "Talep", ServiceDueDate: ptr(day(6)), CompletionDate: ptr(day(7))},
				{ID: id, ServiceDueDate: ptr(day(8))},
			}, testFilter),
			want: []want{
				{"service-request", "Hizmet Talebi: Klima", "", "#123456"},
				{"service-request-complete", "Hizmet Tamamlandı: Klima", "completion", calendar.ColorDelivered},
				{"service-request", "Hizmet Talebi: Hizmet", "", "#123456"},
			},
			typ: entity.EventServiceRequest,
		},
		{
			name: "expenses",
			got: calendar.Expenses([]entity.Expense{
				{ID: id, Description: "Yakıt", Amount: amount, Date: ptr(day(9))},
				{ID: id, Amount: amount, Date: ptr(day(10))},
				{ID: id, Description: "tarihsiz"},
			}, testFilter),
			want: []want{
				{"expense", "Gider: Yakıt - 1.250,5 TRY", "", "#123456"},
				{"expense", "Gider: Gider - 1.250,5 TRY", "", "#123456"},
			},
			typ: entity.EventExpense,
		},
		{
			name: "purchase orders",
			got: calendar.PurchaseOrders([]entity.PurchaseOrder{
				{ID: id, Title: "Kablo", OrderDate: ptr(day(2)), ExpectedDeliveryDate: ptr(day(9))},
			}, testFilter),
			want: []want{
				{"purchase-order", "Satın Alma Siparişi: Kablo", "", "#123456"},
				{"purchase-order-expected", "Beklenen Teslimat: Kablo", "expected_delivery", calendar.ColorExpectedDelivery},
			},
			typ: entity.EventPurchaseOrder,
		},
		{
			name: "vehicle maintenance",
			got: calendar.VehicleMaintenance([]entity.VehicleMaintenance{
				{ID: id, VehiclePlate: "34 ABC 12", VehicleBrand: "Fiat", MaintenanceDate: ptr(day(3)), NextMaintenanceDate: ptr(day(30))},
				{ID: id, MaintenanceDate: ptr(day(4))},
			}, testFilter),
			want: []want{
				{"vehicle-maintenance", "Araç Bakımı: 34 ABC 12", "", "#123456"},
				{"vehicle-maintenance-next", "Sonraki Bakım: 34 ABC 12", "next", calendar.ColorNextMaintenance},
				{"vehicle-maintenance", "Araç Bakımı: Araç", "", "#123456"},
			},
			typ: entity.EventVehicleMaintenance,
		},
		{
			name: "vehicle incidents",
			got: calendar.VehicleIncidents([]entity.VehicleIncident{
				{ID: id, VehicleBrand: "Renault", IncidentDate: ptr(day(11))},
				{ID: id, VehiclePlate: "06 XY 1"},
			}, testFilter),
			want: []want{
				{"vehicle-incident", "Araç Kazası: Renault", "", "#123456"},
			},
			typ: entity.EventVehicleIncident,
		},
		{
			name: "rfqs",
			got: calendar.RFQs([]entity.RFQ{
				{ID: id, RFQNumber: "RFQ-5", DueDate: ptr(day(12))},
				{ID: id, DueDate: ptr(day(13))},
			}, testFilter),
			want: []want{
				{"rfq", "Teklif Talebi: RFQ-5", "", "#123456"},
				{"rfq", "Teklif Talebi: RFQ", "", "#123456"},
			},
			typ: entity.EventRFQ,
		},
		{
			name: "purchase requests",
			got: calendar.PurchaseRequests([]entity.PurchaseRequest{
				{ID: id, RequestNumber: "PR-8", RequestedDate: ptr(day(14))},
				{ID: id, RequestedDate: ptr(day(15))},
			}, testFilter),
			want: []want{
				{"purchase-request", "Satın Alma Talebi: PR-8", "", "#123456"},
				{"purchase-request", "Satın Alma Talebi: PR", "", "#123456"},
			},
			typ: entity.EventPurchaseRequest,
		},
		{
			name: "vendor invoices",
			got: calendar.VendorInvoices([]entity.VendorInvoice{
				{ID: id, InvoiceNumber: "TF-2", InvoiceDate: ptr(day(16))},
				{ID: id, InvoiceNumber: "TF-3"},
			}, testFilter),
			want: []want{
				{"vendor-invoice", "Tedarikçi Faturası: TF-2", "", "#123456"},
			},
			typ: entity.EventVendorInvoice,
		},
		{
			name: "inventory transactions",
			got: calendar.InventoryTransactions([]entity.InventoryTransaction{
				{ID: id, TransactionType: "Giriş", TransactionDate: ptr(day(17))},
				{ID: id, TransactionDate: ptr(day(18))},
			}, testFilter),
			want: []want{
				{"inventory-transaction", "Stok Hareketi: Giriş", "", "#123456"},
				{"inventory-transaction", "Stok Hareketi: İşlem", "", "#123456"},
			},
			typ: entity.EventInventoryTransaction,
		},
		{
			name: "service slips",
			got: calendar.ServiceSlips([]entity.ServiceSlip{
				{ID: id, SlipNumber: "SF-44", ServiceDate: ptr(day(19))},
				{ID: id, ServiceDate: ptr(day(20))},
			}, testFilter),
			want: []want{
				{"service-slip", "Servis Fişi: SF-44", "", "#123456"},
				{"service-slip", "Servis Fişi: Fiş", "", "#123456"},
			},
			typ: entity.EventServiceSlip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Len(t, tt.got, len(tt.want))

			for i, w := range tt.want {
				e := tt.got[i]

				require.Equal(t, w.id+"-"+id.String(), e.ID)
				require.Equal(t, w.title, e.Title)
				require.Equal(t, w.subType, e.SubType)
				require.Equal(t, w.color, e.Color)
				require.Equal(t, tt.typ, e.Type)
				require.Equal(t, id, e.SourceID)
				require.Equal(t, e.Start, e.End)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	src := entity.CalendarSources{
		Payments: []entity.Payment{
			{ID: uuid.Must(uuid.NewV4()), Amount: ptr(decimal.RequireFromString("1234.5")), PaymentDate: ptr(day(4))},
		},
		Opportunities: []entity.Opportunity{
			{ID: uuid.Must(uuid.NewV4()), Title: "Büyük iş", ExpectedCloseDate: ptr(day(2))},
		},
		GRNs: []entity.GRN{
			{ID: uuid.Must(uuid.NewV4()), ReceivedDate: ptr(day(1))},
		},
	}

	filters := entity.DefaultEventFilters()

	got := calendar.Aggregate(src, filters)
	require.Len(t, got, 3)
	require.Equal(t, "Mal Kabul: GRN", got[0].Title)
	require.Equal(t, "Fırsat Kapanış: Büyük iş", got[1].Title)
	require.Equal(t, "Ödeme: 1.234,5 TRY", got[2].Title)
	require.Equal(t, filters[entity.EventPayment].Color, got[2].Color)

	got = calendar.Aggregate(src, filters.Only(entity.EventPayment))
	require.Len(t, got, 1)
	require.Equal(t, entity.EventPayment, got[0].Type)
}

func TestAggregate_EqualStartOrderedByID(t *testing.T) {
	t.Parallel()

	first := uuid.FromStringOrNil("00000000-0000-0000-0000-000000000001")
	second := uuid.FromStringOrNil("00000000-0000-0000-0000-000000000002")

	src := entity.CalendarSources{
		Orders: []entity.Order{
			{ID: first, OrderNumber: "SIP-1", OrderDate: ptr(day(5))},
		},
		Deliveries: []entity.Delivery{
			{ID: first, DeliveryNumber: "TS-1", PlannedDeliveryDate: ptr(day(5))},
		},
		GRNs: []entity.GRN{
			{ID: second, GRNNumber: "GRN-2", ReceivedDate: ptr(day(5))},
			{ID: first, GRNNumber: "GRN-1", ReceivedDate: ptr(day(5))},
		},
	}

	want := []string{
		"delivery-planned-" + first.String(),
		"grn-" + first.String(),
		"grn-" + second.String(),
		"order-date-" + first.String(),
	}

	for range 3 {
		got := calendar.Aggregate(src, entity.DefaultEventFilters())

		ids := make([]string, 0, len(got))
		for _, e := range got {
			ids = append(ids, e.ID)
		}

		require.Equal(t, want, ids)
	}
}

func TestFilterRange(t *testing.T) {
	t.Parallel()

	events := []entity.CalendarEvent{
		{ID: "a", Start: day(1), End: day(1)},
		{ID: "b", Start: day(3), End: day(8)},
		{ID: "c", Start: day(10), End: day(10)},
	}

	got := calendar.FilterRange(events, ptr(day(5)), ptr(day(9)))
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].ID)

	require.Len(t, calendar.FilterRange(events, nil, nil), 3)
	require.Len(t, calendar.FilterRange(events, nil, ptr(day(2))), 1)
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"0":          "",
		"5":          "5",
		"999":        "999",
		"1000":       "1.000",
		"1234567.89": "1.234.567,89",
		"10.12345":   "10,123",
		"-2500.5":    "-2.500,5",
	}

	for in, want := range tests {
		require.Equal(t, want, calendar.FormatAmount(ptr(decimal.RequireFromString(in))), in)
	}

	require.Empty(t, calendar.FormatAmount(nil))
}
