package calendar

import (
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/erp/internal/entity"
)

func eventID(prefix string, id uuid.UUID) string {
	return prefix + "-" + id.String()
}

func Activities(records []entity.Task, f entity.EventTypeFilter) []entity.CalendarEvent {
	events := make([]entity.CalendarEvent, 0, len(records))

	for _, r := range records {
		if r.DueDate == nil {
			continue
		}

		events = append(events, point(eventID("activity", r.ID), firstNonEmpty(r.Title, "Başlıksız Görev"),
			*r.DueDate, entity.EventActivity, "", TaskColor(r.Status), r.ID))
	}

	return events
}

func Orders(records []entity.Order, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := firstNonEmpty(r.OrderNumber, r.Title)

		if r.OrderDate != nil {
			events = append(events, point(eventID("order-date", r.ID), "Sipariş: "+name,
				*r.OrderDate, entity.EventOrder, "order_date", ColorOrderDate, r.ID))
		}

		if r.ExpectedDeliveryDate != nil {
			events = append(events, point(eventID("order-expected", r.ID), "Beklenen Teslimat: "+name,
				*r.ExpectedDeliveryDate, entity.EventOrder, "expected_delivery", ColorExpectedDelivery, r.ID))
		}

		if r.DeliveryDate != nil {
			events = append(events, point(eventID("order-delivery", r.ID), "Teslimat: "+name,
				*r.DeliveryDate, entity.EventOrder, "delivery_date", ColorDelivered, r.ID))
		}
	}

	return events
}

func Deliveries(records []entity.Delivery, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := firstNonEmpty(r.DeliveryNumber, "Teslimat")

		if r.PlannedDeliveryDate != nil {
			events = append(events, point(eventID("delivery-planned", r.ID), "Planlanan Teslimat: "+name,
				*r.PlannedDeliveryDate, entity.EventDelivery, "planned", ColorPlannedDelivery, r.ID))
		}

		if r.ActualDeliveryDate != nil {
			events = append(events, point(eventID("delivery-actual", r.ID), "Gerçekleşen Teslimat: "+name,
				*r.ActualDeliveryDate, entity.EventDelivery, "actual", ColorDelivered, r.ID))
		}
	}

	return events
}

func Proposals(records []entity.Proposal, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := firstNonEmpty(r.Number, r.Title)

		if r.OfferDate != nil {
			events = append(events, point(eventID("proposal", r.ID), "Teklif: "+name,
				*r.OfferDate, entity.EventProposal, "", f.Color, r.ID))
		}

		if r.ValidUntil != nil {
			events = append(events, point(eventID("proposal-valid", r.ID), "Teklif Geçerlilik: "+name,
				*r.ValidUntil, entity.EventProposal, "valid_until", ColorExpectedDelivery, r.ID))
		}
	}

	return events
}

func SalesInvoices(records []entity.SalesInvoiceDates, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.InvoiceDate != nil {
			events = append(events, point(eventID("sales-invoice", r.ID), "Satış Faturası: "+r.InvoiceNumber,
				*r.InvoiceDate, entity.EventSalesInvoice, "", f.Color, r.ID))
		}

		if r.DueDate != nil {
			events = append(events, point(eventID("sales-invoice-due", r.ID), "Fatura Vadesi: "+r.InvoiceNumber,
				*r.DueDate, entity.EventSalesInvoice, "due_date", ColorDue, r.ID))
		}
	}

	return events
}

func PurchaseInvoices(records []entity.PurchaseInvoice, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.InvoiceDate != nil {
			events = append(events, point(eventID("purchase-invoice", r.ID), "Satın Alma Faturası: "+r.InvoiceNumber,
				*r.InvoiceDate, entity.EventPurchaseInvoice, "", f.Color, r.ID))
		}

		if r.DueDate != nil {
			events = append(events, point(eventID("purchase-invoice-due", r.ID), "Fatura Vadesi: "+r.InvoiceNumber,
				*r.DueDate, entity.EventPurchaseInvoice, "due_date", ColorDue, r.ID))
		}
	}

	return events
}

func WorkOrders(records []entity.WorkOrder, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := firstNonEmpty(r.Title, r.Code)

		if r.ScheduledStart != nil {
			events = append(events, point(eventID("work-order-start", r.ID), "İş Emri Başlangıç: "+name,
				*r.ScheduledStart, entity.EventWorkOrder, "scheduled_start", f.Color, r.ID))
		}

		if r.ScheduledEnd != nil {
			events = append(events, point(eventID("work-order-end", r.ID), "İş Emri Bitiş: "+name,
				*r.ScheduledEnd, entity.EventWorkOrder, "scheduled_end", ColorDelivered, r.ID))
		}

		if r.SLADue != nil {
			events = append(events, point(eventID("work-order-sla", r.ID), "SLA Vadesi: "+name,
				*r.SLADue, entity.EventWorkOrder, "sla_due", ColorDue, r.ID))
		}
	}

	return events
}

func ServiceRequests(records []entity.ServiceRequest, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := firstNonEmpty(r.ServiceTitle, r.Title, "Hizmet")

		if r.ServiceDueDate != nil {
			events = append(events, point(eventID("service-request", r.ID), "Hizmet Talebi: "+name,
				*r.ServiceDueDate, entity.EventServiceRequest, "", f.Color, r.ID))
		}

		if r.CompletionDate != nil {
			events = append(events, point(eventID("service-request-complete", r.ID), "Hizmet Tamamlandı: "+name,
				*r.CompletionDate, entity.EventServiceRequest, "completion", ColorDelivered, r.ID))
		}
	}

	return events
}

func Opportunities(records []entity.Opportunity, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.ExpectedCloseDate == nil {
			continue
		}

		events = append(events, point(eventID("opportunity", r.ID), "Fırsat Kapanış: "+r.Title,
			*r.ExpectedCloseDate, entity.EventOpportunity, "", f.Color, r.ID))
	}

	return events
}

func Payments(records []entity.Payment, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.PaymentDate == nil {
			continue
		}

		title := "Ödeme: " + FormatAmount(r.Amount) + " " + firstNonEmpty(r.Currency, "TRY")

		events = append(events, point(eventID("payment", r.ID), title,
			*r.PaymentDate, entity.EventPayment, "", f.Color, r.ID))
	}

	return events
}

func Expenses(records []entity.Expense, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.Date == nil {
			continue
		}

		title := "Gider: " + firstNonEmpty(r.Description, "Gider") + " - " + FormatAmount(r.Amount) + " TRY"

		events = append(events, point(eventID("expense", r.ID), title,
			*r.Date, entity.EventExpense, "", f.Color, r.ID))
	}

	return events
}

func Checks(records []entity.Check, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := firstNonEmpty(r.CheckNumber, FormatAmount(r.Amount), "Çek")

		if r.DueDate != nil {
			events = append(events, point(eventID("check-due", r.ID), "Çek Vadesi: "+name,
				*r.DueDate, entity.EventCheck, "", f.Color, r.ID))
		}

		if r.IssueDate != nil {
			events = append(events, point(eventID("check-issue", r.ID), "Çek Kesim: "+name,
				*r.IssueDate, entity.EventCheck, "issue", ColorCheckIssue, r.ID))
		}
	}

	return events
}

func PurchaseOrders(records []entity.PurchaseOrder, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := firstNonEmpty(r.OrderNumber, r.Title)

		if r.OrderDate != nil {
			events = append(events, point(eventID("purchase-order", r.ID), "Satın Alma Siparişi: "+name,
				*r.OrderDate, entity.EventPurchaseOrder, "", f.Color, r.ID))
		}

		if r.ExpectedDeliveryDate != nil {
			events = append(events, point(eventID("purchase-order-expected", r.ID), "Beklenen Teslimat: "+name,
				*r.ExpectedDeliveryDate, entity.EventPurchaseOrder, "expected_delivery", ColorExpectedDelivery, r.ID))
		}
	}

	return events
}

// EmployeeLeaves spans start to end and skips leaves missing either date.
func EmployeeLeaves(records []entity.EmployeeLeave, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.StartDate == nil || r.EndDate == nil {
			continue
		}

		e := point(eventID("employee-leave", r.ID), "İzin: "+r.EmployeeFirstName+" "+r.EmployeeLastName,
			*r.StartDate, entity.EventEmployeeLeave, "", f.Color, r.ID)
		e.End = *r.EndDate

		events = append(events, e)
	}

	return events
}

func vehicleName(plate, brand string) string {
	return firstNonEmpty(plate, brand, "Araç")
}

func VehicleMaintenance(records []entity.VehicleMaintenance, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		name := vehicleName(r.VehiclePlate, r.VehicleBrand)

		if r.MaintenanceDate != nil {
			events = append(events, point(eventID("vehicle-maintenance", r.ID), "Araç Bakımı: "+name,
				*r.MaintenanceDate, entity.EventVehicleMaintenance, "", f.Color, r.ID))
		}

		if r.NextMaintenanceDate != nil {
			events = append(events, point(eventID("vehicle-maintenance-next", r.ID), "Sonraki Bakım: "+name,
				*r.NextMaintenanceDate, entity.EventVehicleMaintenance, "next", ColorNextMaintenance, r.ID))
		}
	}

	return events
}

func VehicleDocuments(records []entity.VehicleDocument, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.ExpiryDate == nil {
			continue
		}

		title := "Belge Son Geçerlilik: " + vehicleName(r.VehiclePlate, r.VehicleBrand) + " - " +
			firstNonEmpty(r.DocumentType, "Belge")

		events = append(events, point(eventID("vehicle-document", r.ID), title,
			*r.ExpiryDate, entity.EventVehicleDocument, "", f.Color, r.ID))
	}

	return events
}

func VehicleIncidents(records []entity.VehicleIncident, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.IncidentDate == nil {
			continue
		}

		events = append(events, point(eventID("vehicle-incident", r.ID), "Araç Kazası: "+vehicleName(r.VehiclePlate, r.VehicleBrand),
			*r.IncidentDate, entity.EventVehicleIncident, "", f.Color, r.ID))
	}

	return events
}

// Events ends at end_time when it is set, at start_time otherwise.
func Events(records []entity.Event, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.StartTime == nil {
			continue
		}

		e := point(eventID("event", r.ID), firstNonEmpty(strings.TrimSpace(r.Title), "Etkinlik"),
			*r.StartTime, entity.EventCalendar, "", f.Color, r.ID)
		if r.EndTime != nil {
			e.End = *r.EndTime
		}

		events = append(events, e)
	}

	return events
}

func GRNs(records []entity.GRN, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.ReceivedDate == nil {
			continue
		}

		events = append(events, point(eventID("grn", r.ID), "Mal Kabul: "+firstNonEmpty(r.GRNNumber, "GRN"),
			*r.ReceivedDate, entity.EventGRN, "", f.Color, r.ID))
	}

	return events
}

func RFQs(records []entity.RFQ, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.DueDate == nil {
			continue
		}

		events = append(events, point(eventID("rfq", r.ID), "Teklif Talebi: "+firstNonEmpty(r.RFQNumber, "RFQ"),
			*r.DueDate, entity.EventRFQ, "", f.Color, r.ID))
	}

	return events
}

func PurchaseRequests(records []entity.PurchaseRequest, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.RequestedDate == nil {
			continue
		}

		events = append(events, point(eventID("purchase-request", r.ID), "Satın Alma Talebi: "+firstNonEmpty(r.RequestNumber, "PR"),
			*r.RequestedDate, entity.EventPurchaseRequest, "", f.Color, r.ID))
	}

	return events
}

func VendorInvoices(records []entity.VendorInvoice, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.InvoiceDate == nil {
			continue
		}

		events = append(events, point(eventID("vendor-invoice", r.ID), "Tedarikçi Faturası: "+r.InvoiceNumber,
			*r.InvoiceDate, entity.EventVendorInvoice, "", f.Color, r.ID))
	}

	return events
}

func InventoryTransactions(records []entity.InventoryTransaction, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.TransactionDate == nil {
			continue
		}

		events = append(events, point(eventID("inventory-transaction", r.ID), "Stok Hareketi: "+firstNonEmpty(r.TransactionType, "İşlem"),
			*r.TransactionDate, entity.EventInventoryTransaction, "", f.Color, r.ID))
	}

	return events
}

func ServiceSlips(records []entity.ServiceSlip, f entity.EventTypeFilter) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, r := range records {
		if r.ServiceDate == nil {
			continue
		}

		events = append(events, point(eventID("service-slip", r.ID), "Servis Fişi: "+firstNonEmpty(r.SlipNumber, "Fiş"),
			*r.ServiceDate, entity.EventServiceSlip, "", f.Color, r.ID))
	}

	return events
}
