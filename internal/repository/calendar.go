package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const calendarQueryParallelism = 4

// source describes how one record kind is read for the calendar. The first date column
// orders the result; a record is inside the window when any of its dates is.
type source struct {
	from    string
	joins   []string
	columns []string
	dates   []string
}

var (
	activitiesSource = source{
		from: "activities t",
		columns: []string{
			"t.id", "t.company_id", "t.title", "t.description", "t.status", "t.priority",
			"t.due_date", "t.assignee_id", "t.created_at", "t.updated_at",
		},
		dates: []string{"t.due_date"},
	}
	ordersSource = source{
		from:    "orders t",
		columns: []string{"t.id", "t.order_number", "t.title", "t.order_date", "t.expected_delivery_date", "t.delivery_date"},
		dates:   []string{"t.order_date", "t.expected_delivery_date", "t.delivery_date"},
	}
	deliveriesSource = source{
		from:    "deliveries t",
		columns: []string{"t.id", "t.delivery_number", "t.planned_delivery_date", "t.actual_delivery_date"},
		dates:   []string{"t.planned_delivery_date", "t.actual_delivery_date"},
	}
	proposalsSource = source{
		from:    "proposals t",
		columns: []string{"t.id", "t.number", "t.title", "t.offer_date", "t.valid_until"},
		dates:   []string{"t.offer_date", "t.valid_until"},
	}
	salesInvoicesSource = source{
		from:    "sales_invoices t",
		columns: []string{"t.id", "t.invoice_number", "t.invoice_date", "t.due_date"},
		dates:   []string{"t.invoice_date", "t.due_date"},
	}
	purchaseInvoicesSource = source{
		from:    "purchase_invoices t",
		columns: []string{"t.id", "t.invoice_number", "t.invoice_date", "t.due_date"},
		dates:   []string{"t.invoice_date", "t.due_date"},
	}
	workOrdersSource = source{
		from:    "work_orders t",
		columns: []string{"t.id", "t.code", "t.title", "t.scheduled_start", "t.scheduled_end", "t.sla_due"},
		dates:   []string{"t.scheduled_start", "t.scheduled_end", "t.sla_due"},
	}
	serviceRequestsSource = source{
		from:    "service_requests t",
		columns: []string{"t.id", "t.service_title", "t.title", "t.service_due_date", "t.completion_date"},
		dates:   []string{"t.service_due_date", "t.completion_date"},
	}
	opportunitiesSource = source{
		from:    "opportunities t",
		columns: []string{"t.id", "t.title", "t.expected_close_date"},
		dates:   []string{"t.expected_close_date"},
	}
	paymentsSource = source{
		from:    "payments t",
		columns: []string{"t.id", "t.amount", "t.currency", "t.payment_date"},
		dates:   []string{"t.payment_date"},
	}
	expensesSource = source{
		from:    "expenses t",
		columns: []string{"t.id", "t.description", "t.amount", "t.date"},
		dates:   []string{"t.date"},
	}
	checksSource = source{
		from:    "checks t",
		columns: []string{"t.id", "t.check_number", "t.amount", "t.due_date", "t.issue_date"},
		dates:   []string{"t.due_date", "t.issue_date"},
	}
	purchaseOrdersSource = source{
		from:    "purchase_orders t",
		columns: []string{"t.id", "t.order_number", "t.title", "t.order_date", "t.expected_delivery_date"},
		dates:   []string{"t.order_date", "t.expected_delivery_date"},
	}
	employeeLeavesSource = source{
		from:  "employee_leaves t",
		joins: []string{"employees e ON e.id = t.employee_id"},
		columns: []string{
			"t.id",
			"COALESCE(e.first_name, '') AS employee_first_name",
			"COALESCE(e.last_name, '') AS employee_last_name",
			"t.start_date",
			"t.end_date",
		},
		dates: []string{"t.start_date", "t.end_date"},
	}
	vehicleMaintenanceSource = source{
		from:  "vehicle_maintenance t",
		joins: []string{vehicleJoin},
		columns: []string{
			"t.id", vehiclePlate, vehicleBrand, "t.maintenance_date", "t.next_maintenance_date",
		},
		dates: []string{"t.maintenance_date", "t.next_maintenance_date"},
	}
	vehicleDocumentsSource = source{
		from:    "vehicle_documents t",
		joins:   []string{vehicleJoin},
		columns: []string{"t.id", vehiclePlate, vehicleBrand, "t.document_type", "t.expiry_date"},
		dates:   []string{"t.expiry_date"},
	}
	vehicleIncidentsSource = source{
		from:    "vehicle_incidents t",
		joins:   []string{vehicleJoin},
		columns: []string{"t.id", vehiclePlate, vehicleBrand, "t.incident_date"},
		dates:   []string{"t.incident_date"},
	}
	eventsSource = source{
		from:    "events t",
		columns: []string{"t.id", "t.title", "t.start_time", "t.end_time"},
		dates:   []string{"t.start_time", "t.end_time"},
	}
	grnsSource = source{
		from:    "grns t",
		columns: []string{"t.id", "t.grn_number", "t.received_date"},
		dates:   []string{"t.received_date"},
	}
	rfqsSource = source{
		from:    "rfqs t",
		columns: []string{"t.id", "t.rfq_number", "t.due_date"},
		dates:   []string{"t.due_date"},
	}
	purchaseRequestsSource = source{
		from:    "purchase_requests t",
		columns: []string{"t.id", "t.request_number", "t.requested_date"},
		dates:   []string{"t.requested_date"},
	}
	vendorInvoicesSource = source{
		from:    "vendor_invoices t",
		columns: []string{"t.id", "t.invoice_number", "t.invoice_date"},
		dates:   []string{"t.invoice_date"},
	}
	inventoryTransactionsSource = source{
		from:    "inventory_transactions t",
		columns: []string{"t.id", "t.transaction_type", "t.transaction_date"},
		dates:   []string{"t.transaction_date"},
	}
	serviceSlipsSource = source{
		from:    "service_slips t",
		columns: []string{"t.id", "t.slip_number", "t.service_date"},
		dates:   []string{"t.service_date"},
	}
)

const (
	vehicleJoin  = "vehicles v ON v.id = t.vehicle_id"
	vehiclePlate = "COALESCE(v.plate_number, '') AS vehicle_plate"
	vehicleBrand = "COALESCE(v.brand, '') AS vehicle_brand"
)

func (s source) query(f entity.CalendarFilter) sq.SelectBuilder {
	stmt := psql.Select(s.columns...).From(s.from)

	for _, j := range s.joins {
		stmt = stmt.LeftJoin(j)
	}

	stmt = stmt.Where(sq.Eq{"t.company_id": f.CompanyID})

	if f.From != nil || f.To != nil {
		window := make(sq.Or, 0, len(s.dates))

		for _, d := range s.dates {
			inside := sq.And{sq.NotEq{d: nil}}

			if f.From != nil {
				inside = append(inside, sq.GtOrEq{d: *f.From})
			}

			if f.To != nil {
				inside = append(inside, sq.LtOrEq{d: *f.To})
			}

			window = append(window, inside)
		}

		stmt = stmt.Where(window)
	}

	return stmt.OrderBy(s.dates[0]+" ASC NULLS LAST", "t.id")
}

// CalendarSources loads every record kind the filter asks for. Kinds that are not asked for
// stay empty.
func (r *Repository) CalendarSources(ctx context.Context, f entity.CalendarFilter) (entity.CalendarSources, error) {
	var out entity.CalendarSources

	loaders := map[entity.EventType]func(context.Context) error{
		entity.EventActivity:             load(r, &out.Activities, activitiesSource, f),
		entity.EventOrder:                load(r, &out.Orders, ordersSource, f),
		entity.EventDelivery:             load(r, &out.Deliveries, deliveriesSource, f),
		entity.EventProposal:             load(r, &out.Proposals, proposalsSource, f),
		entity.EventSalesInvoice:         load(r, &out.SalesInvoices, salesInvoicesSource, f),
		entity.EventPurchaseInvoice:      load(r, &out.PurchaseInvoices, purchaseInvoicesSource, f),
		entity.EventWorkOrder:            load(r, &out.WorkOrders, workOrdersSource, f),
		entity.EventServiceRequest:       load(r, &out.ServiceRequests, serviceRequestsSource, f),
		entity.EventOpportunity:          load(r, &out.Opportunities, opportunitiesSource, f),
		entity.EventPayment:              load(r, &out.Payments, paymentsSource, f),
		entity.EventExpense:              load(r, &out.Expenses, expensesSource, f),
		entity.EventCheck:                load(r, &out.Checks, checksSource, f),
		entity.EventPurchaseOrder:        load(r, &out.PurchaseOrders, purchaseOrdersSource, f),
		entity.EventEmployeeLeave:        load(r, &out.EmployeeLeaves, employeeLeavesSource, f),
		entity.EventVehicleMaintenance:   load(r, &out.VehicleMaintenance, vehicleMaintenanceSource, f),
		entity.EventVehicleDocument:      load(r, &out.VehicleDocuments, vehicleDocumentsSource, f),
		entity.EventVehicleIncident:      load(r, &out.VehicleIncidents, vehicleIncidentsSource, f),
		entity.EventCalendar:             load(r, &out.Events, eventsSource, f),
		entity.EventGRN:                  load(r, &out.GRNs, grnsSource, f),
		entity.EventRFQ:                  load(r, &out.RFQs, rfqsSource, f),
		entity.EventPurchaseRequest:      load(r, &out.PurchaseRequests, purchaseRequestsSource, f),
		entity.EventVendorInvoice:        load(r, &out.VendorInvoices, vendorInvoicesSource, f),
		entity.EventInventoryTransaction: load(r, &out.InventoryTransactions, inventoryTransactionsSource, f),
		entity.EventServiceSlip:          load(r, &out.ServiceSlips, serviceSlipsSource, f),
	}

	types := f.Types
	if len(types) == 0 {
		types = entity.EventTypes
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(calendarQueryParallelism)

	for _, t := range types {
		fn, ok := loaders[t]
		if !ok {
			continue
		}

		g.Go(func() error {
			err := fn(gctx)
			if err != nil {
				return fmt.Errorf("load %s: %w", t, err)
			}

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return entity.CalendarSources{}, err
	}

	return out, nil
}

// load writes into its own slice only, so loaders can run concurrently.
func load[T any](r *Repository, dst *[]T, s source, f entity.CalendarFilter) func(context.Context) error {
	return func(ctx context.Context) error {
		records, err := many[T](ctx, r.db, s.query(f))
		if err != nil {
			return err
		}

		*dst = records

		return nil
	}
}
