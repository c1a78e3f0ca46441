// Package calendar projects business records onto a single event timeline.
package calendar

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/erp/internal/entity"
)

// Fixed sub-event colors. Events without one take the color of their type filter.
const (
	ColorOrderDate        = "#3b82f6"
	ColorExpectedDelivery = "#f59e0b"
	ColorDelivered        = "#10b981"
	ColorPlannedDelivery  = "#8b5cf6"
	ColorDue              = "#ef4444"
	ColorCheckIssue       = "#3b82f6"
	ColorNextMaintenance  = "#f59e0b"

	colorTaskTodo       = "#ef4444"
	colorTaskInProgress = "#eab308"
	colorTaskCompleted  = "#22c55e"
	colorTaskOther      = "#6b7280"
)

func TaskColor(status entity.TaskStatus) string {
	switch status {
	case entity.TaskTodo:
		return colorTaskTodo
	case entity.TaskInProgress:
		return colorTaskInProgress
	case entity.TaskCompleted:
		return colorTaskCompleted
	default:
		return colorTaskOther
	}
}

type transformer func(src entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent

var transformers = map[entity.EventType]transformer{
	entity.EventActivity: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Activities(s.Activities, f)
	},
	entity.EventOrder: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Orders(s.Orders, f)
	},
	entity.EventDelivery: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Deliveries(s.Deliveries, f)
	},
	entity.EventProposal: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Proposals(s.Proposals, f)
	},
	entity.EventSalesInvoice: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return SalesInvoices(s.SalesInvoices, f)
	},
	entity.EventPurchaseInvoice: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return PurchaseInvoices(s.PurchaseInvoices, f)
	},
	entity.EventWorkOrder: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return WorkOrders(s.WorkOrders, f)
	},
	entity.EventServiceRequest: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return ServiceRequests(s.ServiceRequests, f)
	},
	entity.EventOpportunity: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Opportunities(s.Opportunities, f)
	},
	entity.EventPayment: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Payments(s.Payments, f)
	},
	entity.EventExpense: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Expenses(s.Expenses, f)
	},
	entity.EventCheck: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Checks(s.Checks, f)
	},
	entity.EventPurchaseOrder: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return PurchaseOrders(s.PurchaseOrders, f)
	},
	entity.EventEmployeeLeave: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return EmployeeLeaves(s.EmployeeLeaves, f)
	},
	entity.EventVehicleMaintenance: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return VehicleMaintenance(s.VehicleMaintenance, f)
	},
	entity.EventVehicleDocument: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return VehicleDocuments(s.VehicleDocuments, f)
	},
	entity.EventVehicleIncident: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return VehicleIncidents(s.VehicleIncidents, f)
	},
	entity.EventCalendar: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return Events(s.Events, f)
	},
	entity.EventGRN: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return GRNs(s.GRNs, f)
	},
	entity.EventRFQ: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return RFQs(s.RFQs, f)
	},
	entity.EventPurchaseRequest: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return PurchaseRequests(s.PurchaseRequests, f)
	},
	entity.EventVendorInvoice: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return VendorInvoices(s.VendorInvoices, f)
	},
	entity.EventInventoryTransaction: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return InventoryTransactions(s.InventoryTransactions, f)
	},
	entity.EventServiceSlip: func(s entity.CalendarSources, f entity.EventTypeFilter) []entity.CalendarEvent {
		return ServiceSlips(s.ServiceSlips, f)
	},
}

// Aggregate runs the transformer of every enabled type and returns the events ordered by start.
// Equal starts are ordered by ID so the result is stable across calls.
func Aggregate(src entity.CalendarSources, filters entity.EventFilters) []entity.CalendarEvent {
	var events []entity.CalendarEvent

	for _, t := range entity.EventTypes {
		f, ok := filters[t]
		if !ok || !f.Enabled {
			continue
		}

		events = append(events, transformers[t](src, f)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}

		return events[i].ID < events[j].ID
	})

	return events
}

// FilterRange keeps events overlapping [from, to]. Nil bounds are open.
func FilterRange(events []entity.CalendarEvent, from, to *time.Time) []entity.CalendarEvent {
	if from == nil && to == nil {
		return events
	}

	out := make([]entity.CalendarEvent, 0, len(events))

	for _, e := range events {
		if from != nil && e.End.Before(*from) {
			continue
		}

		if to != nil && e.Start.After(*to) {
			continue
		}

		out = append(out, e)
	}

	return out
}

func point(id string, title string, at time.Time, t entity.EventType, sub, color string, src uuid.UUID) entity.CalendarEvent {
	return entity.CalendarEvent{
		ID:       id,
		Title:    title,
		Start:    at,
		End:      at,
		Type:     t,
		SubType:  sub,
		Color:    color,
		SourceID: src,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
