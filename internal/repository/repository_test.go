package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/erp/internal/assistant"
	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/repository"
	"github.com/samandr77/microservices/erp/migrations"
	"github.com/samandr77/microservices/erp/pkg/postgres"
)

var migrateOnce sync.Once

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	migrateOnce.Do(func() {
		require.NoError(t, postgres.UpMigrations(dsn))
	})

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository_Tasks(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	companyID := newID()
	now := time.Now().Truncate(time.Microsecond)
	yesterday := now.Add(-24 * time.Hour)

	overdue := entity.Task{
		ID:        newID(),
		CompanyID: companyID,
		Title:     "Teklif hazırla",
		Status:    entity.TaskTodo,
		Priority:  entity.PriorityUrgent,
		DueDate:   &yesterday,
		CreatedAt: now.Add(-time.Hour),
		UpdatedAt: now.Add(-time.Hour),
	}
	done := entity.Task{
		ID:        newID(),
		CompanyID: companyID,
		Title:     "Fatura kes",
		Status:    entity.TaskCompleted,
		Priority:  entity.PriorityLow,
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, repo.CreateTask(ctx, overdue))
	require.NoError(t, repo.CreateTask(ctx, done))

	got, err := repo.Task(ctx, companyID, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, overdue, got)

	_, err = repo.Task(ctx, newID(), overdue.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	list, err := repo.Tasks(ctx, entity.TaskFilter{CompanyID: companyID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, done.ID, list[0].ID)

	list, err = repo.Tasks(ctx, entity.TaskFilter{
		CompanyID:  companyID,
		Priorities: []entity.TaskPriority{entity.PriorityHigh, entity.PriorityUrgent},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, overdue.ID, list[0].ID)

	stats, err := repo.TaskStats(ctx, companyID, now)
	require.NoError(t, err)
	require.Equal(t, entity.TaskStats{Total: 2, Pending: 1, Completed: 1, Overdue: 1}, stats)

	byTitle, err := repo.TaskByTitle(ctx, companyID, "teklif")
	require.NoError(t, err)
	require.Equal(t, overdue.ID, byTitle.ID)

	for _, wildcard := range []string{"%", "_", `\`} {
		_, err = repo.TaskByTitle(ctx, companyID, wildcard)
		require.ErrorIs(t, err, entity.ErrNotFound, wildcard)
	}

	require.NoError(t, repo.UpdateTaskStatus(ctx, companyID, overdue.ID, entity.TaskCompleted, now))

	stats, err = repo.TaskStats(ctx, companyID, now)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Completed)
	require.Zero(t, stats.Overdue)

	err = repo.UpdateTaskStatus(ctx, companyID, newID(), entity.TaskCompleted, now)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_CalendarSources(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	ctx := context.Background()

	companyID := newID()
	march := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	may := time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC)

	orderID := newID()
	_, err := pool.Exec(ctx,
		`INSERT INTO orders (id, company_id, order_number, order_date, expected_delivery_date) VALUES ($1, $2, $3, $4, $5)`,
		orderID, companyID, "SIP-001", march, may)
	require.NoError(t, err)

	vehicleID := newID()
	_, err = pool.Exec(ctx,
		`INSERT INTO vehicles (id, company_id, plate_number, brand) VALUES ($1, $2, '34 ABC 123', 'Ford')`,
		vehicleID, companyID)
	require.NoError(t, err)

	_, err = pool.Exec(ctx,
		`INSERT INTO vehicle_maintenance (id, company_id, vehicle_id, maintenance_date) VALUES ($1, $2, $3, $4)`,
		newID(), companyID, vehicleID, march)
	require.NoError(t, err)

	src, err := repo.CalendarSources(ctx, entity.CalendarFilter{CompanyID: companyID})
	require.NoError(t, err)
	require.Len(t, src.Orders, 1)
	require.Equal(t, "SIP-001", src.Orders[0].OrderNumber)
	require.Len(t, src.VehicleMaintenance, 1)
	require.Equal(t, "34 ABC 123", src.VehicleMaintenance[0].VehiclePlate)
	require.Equal(t, "Ford", src.VehicleMaintenance[0].VehicleBrand)
	require.Empty(t, src.Activities)

	// Only the expected delivery date is inside April-May; the order still comes back.
	from := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)

	src, err = repo.CalendarSources(ctx, entity.CalendarFilter{
		CompanyID: companyID,
		From:      &from,
		To:        &to,
		Types:     []entity.EventType{entity.EventOrder, entity.EventVehicleMaintenance},
	})
	require.NoError(t, err)
	require.Len(t, src.Orders, 1)
	require.Empty(t, src.VehicleMaintenance)
}

func TestRepository_IncomingInvoices(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	companyID := newID()
	issued := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	inv := entity.IncomingInvoice{
		ID:            newID(),
		CompanyID:     companyID,
		Provider:      entity.ProviderVeriban,
		EInvoiceUUID:  newID().String(),
		InvoiceNumber: "ABC2025000000001",
		SupplierName:  "Tedarik A.Ş.",
		SupplierTaxNo: "1234567890",
		IssueDate:     &issued,
		Currency:      "TRY",
		TaxTotal:      dec("18"),
		PayableAmount: dec("118"),
		Details:       &entity.Invoice{Number: "ABC2025000000001", Currency: "TRY"},
		CreatedAt:     time.Now().Truncate(time.Microsecond),
	}

	inserted, err := repo.SaveIncomingInvoice(ctx, inv)
	require.NoError(t, err)
	require.True(t, inserted)

	again := inv
	again.ID = newID()
	again.PayableAmount = dec("120")
	again.Details = nil

	inserted, err = repo.SaveIncomingInvoice(ctx, again)
	require.NoError(t, err)
	require.False(t, inserted)

	list, count, err := repo.IncomingInvoices(ctx, entity.IncomingInvoiceFilter{CompanyID: companyID, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Len(t, list, 1)
	require.Equal(t, inv.ID, list[0].ID)
	require.True(t, dec("120").Equal(list[0].PayableAmount))
	require.NotNil(t, list[0].Details)
	require.Equal(t, "ABC2025000000001", list[0].Details.Number)

	got, err := repo.IncomingInvoice(ctx, companyID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.EInvoiceUUID, got.EInvoiceUUID)

	stored, err := repo.StoredInvoiceUUIDs(ctx, companyID, []string{newID().String(), inv.EInvoiceUUID})
	require.NoError(t, err)
	require.Equal(t, []string{inv.EInvoiceUUID}, stored)

	stored, err = repo.StoredInvoiceUUIDs(ctx, newID(), []string{inv.EInvoiceUUID})
	require.NoError(t, err)
	require.Empty(t, stored)

	list, count, err = repo.IncomingInvoices(ctx, entity.IncomingInvoiceFilter{CompanyID: newID(), Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, list)
}

func TestRepository_SalesInvoices(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	companyID := newID()
	now := time.Now().Truncate(time.Microsecond)

	inv := entity.SalesInvoice{
		ID:             newID(),
		CompanyID:      companyID,
		InvoiceNumber:  "FAT2025000000007",
		EInvoiceUUID:   newID(),
		ProfileID:      "TEMELFATURA",
		InvoiceType:    "SATIS",
		InvoiceDate:    &now,
		Currency:       "TRY",
		CustomerName:   "Müşteri Ltd.",
		Subtotal:       dec("100"),
		TaxTotal:       dec("20"),
		Total:          dec("120"),
		TransferStatus: entity.TransferDraft,
		CreatedAt:      now,
		Lines: []entity.SalesInvoiceLine{
			{ID: newID(), LineNumber: 2, Description: "Kurulum", Quantity: dec("1"), UnitCode: "C62", UnitPrice: dec("40"), VATRate: dec("20"), VATAmount: dec("8"), LineTotal: dec("48")},
			{ID: newID(), LineNumber: 1, Description: "Yazılım", Quantity: dec("2"), UnitCode: "C62", UnitPrice: dec("30"), VATRate: dec("20"), VATAmount: dec("12"), LineTotal: dec("72")},
		},
	}

	require.NoError(t, repo.CreateSalesInvoice(ctx, inv))

	got, err := repo.SalesInvoice(ctx, companyID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.InvoiceNumber, got.InvoiceNumber)
	require.Len(t, got.Lines, 2)
	require.Equal(t, "Yazılım", got.Lines[0].Description)
	require.True(t, dec("72").Equal(got.Lines[0].LineTotal))

	numbers, err := repo.InvoiceNumbers(ctx, companyID, "FAT", 2025)
	require.NoError(t, err)
	require.Equal(t, []string{"FAT2025000000007"}, numbers)

	pending, err := repo.PendingTransfers(ctx, now, 100)
	require.NoError(t, err)
	require.NotContains(t, ids(pending), inv.ID)

	got.TransferStatus = entity.TransferQueued
	got.TransferFileID = "transfer-1"
	got.StatusMessage = "Kuyrukta"
	require.NoError(t, repo.SaveTransferState(ctx, got))

	pending, err = repo.PendingTransfers(ctx, now, 1000)
	require.NoError(t, err)
	require.Contains(t, ids(pending), inv.ID)

	checked := now
	code := 5
	got.TransferStatus = entity.TransferDelivered
	got.GIBStateCode = &code
	got.GIBStateName = "Başarılı"
	got.LastStatusCheckAt = &checked
	require.NoError(t, repo.SaveTransferState(ctx, got))

	pending, err = repo.PendingTransfers(ctx, now.Add(time.Hour), 1000)
	require.NoError(t, err)
	require.NotContains(t, ids(pending), inv.ID)

	_, err = repo.SalesInvoice(ctx, newID(), inv.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	dup := inv
	dup.ID = newID()
	dup.EInvoiceUUID = newID()
	dup.Lines = nil
	require.ErrorIs(t, repo.CreateSalesInvoice(ctx, dup), entity.ErrAlreadyExists)
}

func ids(invoices []entity.SalesInvoice) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, inv.ID)
	}

	return out
}

func TestRepository_Credentials(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	ctx := context.Background()

	companyID := newID()

	_, err := repo.VeribanCredentials(ctx, companyID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = pool.Exec(ctx,
		`INSERT INTO veriban_auth (company_id, username, password, webservice_url) VALUES ($1, 'user', 'pass', 'http://veriban')`,
		companyID)
	require.NoError(t, err)

	creds, err := repo.VeribanCredentials(ctx, companyID)
	require.NoError(t, err)
	require.Equal(t, entity.VeribanCredentials{
		CompanyID:     companyID,
		Username:      "user",
		Password:      "pass",
		WebserviceURL: "http://veriban",
		IsActive:      true,
	}, creds)

	companies, err := repo.VeribanCompanies(ctx)
	require.NoError(t, err)
	require.Contains(t, companies, companyID)

	_, err = pool.Exec(ctx,
		`INSERT INTO nilvera_auth (company_id, api_key, test_mode) VALUES ($1, 'key', TRUE)`, companyID)
	require.NoError(t, err)

	nilvera, err := repo.NilveraCredentials(ctx, companyID)
	require.NoError(t, err)
	require.True(t, nilvera.TestMode)
	require.Equal(t, "key", nilvera.APIKey)
}

func TestRepository_SalaryRecords(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	ctx := context.Background()

	companyID := newID()
	employeeID := newID()

	_, err := pool.Exec(ctx, `INSERT INTO employees (id, company_id, first_name) VALUES ($1, $2, 'Ali')`, employeeID, companyID)
	require.NoError(t, err)

	ok, err := repo.EmployeeExists(ctx, companyID, employeeID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.EmployeeExists(ctx, newID(), employeeID)
	require.NoError(t, err)
	require.False(t, ok)

	rec := func(month time.Month, gross string) entity.SalaryRecord {
		return entity.SalaryRecord{
			ID:          newID(),
			CompanyID:   companyID,
			EmployeeID:  employeeID,
			Period:      time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC),
			InputType:   entity.SalaryInputGross,
			GrossSalary: dec(gross),
			NetSalary:   dec("1"),
			Rates:       entity.SalaryRates{SGKEmployee: dec("0.14")},
			CreatedAt:   time.Now().UTC(),
		}
	}

	first, err := repo.SaveSalaryRecord(ctx, rec(time.January, "50000"))
	require.NoError(t, err)

	replaced, err := repo.SaveSalaryRecord(ctx, rec(time.January, "60000"))
	require.NoError(t, err)
	require.Equal(t, first.ID, replaced.ID)

	_, err = repo.SaveSalaryRecord(ctx, rec(time.February, "60000"))
	require.NoError(t, err)

	sum, err := repo.CumulativeGross(ctx, employeeID, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, dec("120000").Equal(sum), sum.String())

	sum, err = repo.CumulativeGross(ctx, employeeID, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, sum.IsZero())

	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	records, err := repo.SalaryRecords(ctx, companyID, &jan)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, dec("60000").Equal(records[0].GrossSalary))
	require.True(t, dec("0.14").Equal(records[0].Rates.SGKEmployee))
}

func TestRepository_ReportsAndQueries(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	ctx := context.Background()

	companyID := newID()

	_, err := pool.Exec(ctx,
		`INSERT INTO customers (id, company_id, name, balance, status) VALUES ($1, $3, 'Beta', 10.5, 'aktif'), ($2, $3, 'Alfa', 0, 'pasif')`,
		newID(), newID(), companyID)
	require.NoError(t, err)

	data, err := repo.ReportData(ctx, entity.ReportCustomers, entity.ReportFilter{CompanyID: companyID})
	require.NoError(t, err)
	require.Equal(t, "Müşteri Adı", data.Headers[0])
	require.Len(t, data.Rows, 2)
	require.Equal(t, "Alfa", data.Rows[0][0])

	data, err = repo.ReportData(ctx, entity.ReportCustomers, entity.ReportFilter{CompanyID: companyID, Statuses: []string{"aktif"}})
	require.NoError(t, err)
	require.Len(t, data.Rows, 1)
	require.True(t, dec("10.5").Equal(data.Rows[0][4].(decimal.Decimal)))

	_, err = repo.ReportData(ctx, entity.ReportType("unknown"), entity.ReportFilter{CompanyID: companyID})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	rows, err := repo.ReadOnlyQuery(ctx, companyID, `SELECT generate_series(1, 5) AS n`, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.EqualValues(t, 1, rows[0]["n"])

	_, err = repo.ReadOnlyQuery(ctx, companyID, `SELECT id FROM customers FOR UPDATE`, 1)
	require.ErrorContains(t, err, "read-only transaction")

	_, err = pool.Exec(ctx,
		`INSERT INTO customers (id, company_id, name, balance, status) VALUES ($1, $2, 'Başka Firma Müşterisi', 1, 'aktif')`,
		newID(), newID())
	require.NoError(t, err)

	rows, err = repo.ReadOnlyQuery(ctx, companyID, `SELECT name FROM customers ORDER BY name`, 10)
	require.NoError(t, err)
	require.Equal(t, []map[string]any{{"name": "Alfa"}, {"name": "Beta"}}, rows)

	rows, err = repo.ReadOnlyQuery(ctx, uuid.Nil, `SELECT name FROM customers`, 10)
	require.NoError(t, err)
	require.Empty(t, rows)

	_, err = repo.ReadOnlyQuery(ctx, companyID, `SELECT username, password FROM veriban_auth`, 10)
	require.ErrorContains(t, err, "does not exist")

	rep := entity.GeneratedReport{
		ID:         newID(),
		CompanyID:  companyID,
		UserID:     newID(),
		ReportType: entity.ReportCustomers,
		Format:     entity.FormatCSV,
		FileName:   "musteriler.csv",
		Size:       42,
		RowCount:   2,
		ObjectKey:  "reports/musteriler.csv",
		CreatedAt:  time.Now().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.CreateGeneratedReport(ctx, rep))

	got, err := repo.GeneratedReport(ctx, companyID, rep.ID)
	require.NoError(t, err)
	require.Equal(t, rep, got)

	_, err = repo.GeneratedReport(ctx, newID(), rep.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, repo.SaveAssistantMessages(ctx,
		entity.AssistantMessage{ID: newID(), CompanyID: companyID, UserID: rep.UserID, Role: entity.RoleUserMsg, Content: "merhaba", CreatedAt: time.Now()},
		entity.AssistantMessage{ID: newID(), CompanyID: companyID, UserID: rep.UserID, Role: entity.RoleAssistantMsg, Content: "selam", CreatedAt: time.Now()},
	))
}

func TestAssistantScopeViews(t *testing.T) {
	t.Parallel()

	b, err := migrations.FS.ReadFile("00004_assistant_scope.sql")
	require.NoError(t, err)

	for _, table := range assistant.QueryableTables {
		require.Contains(t, string(b), "VIEW assistant_scope."+table+" WITH (security_barrier)", table)
	}
}
