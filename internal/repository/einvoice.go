package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const uniqueViolation = "23505"

var incomingColumns = []string{
	"id",
	"company_id",
	"provider",
	"einvoice_uuid",
	"envelope_uuid",
	"invoice_number",
	"supplier_name",
	"supplier_tax_number",
	"issue_date",
	"currency",
	"tax_total",
	"payable_amount",
	"details",
	"created_at",
}

var salesInvoiceColumns = []string{
	"id",
	"company_id",
	"invoice_number",
	"einvoice_uuid",
	"profile_id",
	"invoice_type",
	"invoice_date",
	"due_date",
	"currency",
	"note",
	"customer_name",
	"customer_tax_number",
	"customer_tax_office",
	"customer_address",
	"customer_city",
	"customer_alias",
	"subtotal",
	"tax_total",
	"total",
	"transfer_status",
	"transfer_file_id",
	"integration_code",
	"gib_state_code",
	"gib_state_name",
	"status_message",
	"last_status_check_at",
	"created_at",
}

// SaveIncomingInvoice inserts the invoice or refreshes the stored copy. It reports whether
// the row is new.
func (r *Repository) SaveIncomingInvoice(ctx context.Context, inv entity.IncomingInvoice) (bool, error) {
	sqlQuery := `
		INSERT INTO incoming_invoices
			(id, company_id, provider, einvoice_uuid, envelope_uuid, invoice_number, supplier_name,
			 supplier_tax_number, issue_date, currency, tax_total, payable_amount, details, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (company_id, einvoice_uuid) DO UPDATE SET
			invoice_number      = EXCLUDED.invoice_number,
			supplier_name       = EXCLUDED.supplier_name,
			supplier_tax_number = EXCLUDED.supplier_tax_number,
			issue_date          = EXCLUDED.issue_date,
			currency            = EXCLUDED.currency,
			tax_total           = EXCLUDED.tax_total,
			payable_amount      = EXCLUDED.payable_amount,
			details             = COALESCE(EXCLUDED.details, incoming_invoices.details)
		RETURNING (xmax = 0)`

	var inserted bool

	err := r.db.QueryRow(ctx, sqlQuery,
		inv.ID,
		inv.CompanyID,
		inv.Provider,
		inv.EInvoiceUUID,
		inv.EnvelopeUUID,
		inv.InvoiceNumber,
		inv.SupplierName,
		inv.SupplierTaxNo,
		inv.IssueDate,
		inv.Currency,
		inv.TaxTotal,
		inv.PayableAmount,
		inv.Details,
		inv.CreatedAt,
	).Scan(&inserted)
	if err != nil {
		return false, err
	}

	return inserted, nil
}

// StoredInvoiceUUIDs returns the subset of uuids the company already has as incoming invoices.
func (r *Repository) StoredInvoiceUUIDs(ctx context.Context, companyID uuid.UUID, uuids []string) ([]string, error) {
	if len(uuids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT einvoice_uuid FROM incoming_invoices WHERE company_id = $1 AND einvoice_uuid = ANY($2)`,
		companyID, uuids)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *Repository) IncomingInvoice(ctx context.Context, companyID, id uuid.UUID) (entity.IncomingInvoice, error) {
	stmt := psql.Select(incomingColumns...).
		From("incoming_invoices").
		Where(sq.Eq{"id": id, "company_id": companyID})

	return one[entity.IncomingInvoice](ctx, r.db, stmt)
}

// IncomingInvoices returns one page, newest issue date first, and the total count.
func (r *Repository) IncomingInvoices(ctx context.Context, f entity.IncomingInvoiceFilter) ([]entity.IncomingInvoice, int, error) {
	where := sq.And{sq.Eq{"company_id": f.CompanyID}}

	if f.From != nil {
		where = append(where, sq.GtOrEq{"issue_date": *f.From})
	}

	if f.To != nil {
		where = append(where, sq.LtOrEq{"issue_date": *f.To})
	}

	sqlQuery, args, err := psql.Select("count(*)").From("incoming_invoices").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return []entity.IncomingInvoice{}, 0, nil
	}

	stmt := psql.Select(incomingColumns...).
		From("incoming_invoices").
		Where(where).
		OrderBy("issue_date DESC NULLS LAST", "created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit)

	invoices, err := many[entity.IncomingInvoice](ctx, r.db, stmt)
	if err != nil {
		return nil, 0, err
	}

	return invoices, count, nil
}

func (r *Repository) CreateSalesInvoice(ctx context.Context, inv entity.SalesInvoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	sqlQuery := `
		INSERT INTO sales_invoices
			(id, company_id, invoice_number, einvoice_uuid, profile_id, invoice_type, invoice_date, due_date,
			 currency, note, customer_name, customer_tax_number, customer_tax_office, customer_address,
			 customer_city, customer_alias, subtotal, tax_total, total, transfer_status, integration_code, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	_, err = tx.Exec(ctx, sqlQuery,
		inv.ID,
		inv.CompanyID,
		inv.InvoiceNumber,
		inv.EInvoiceUUID,
		inv.ProfileID,
		inv.InvoiceType,
		inv.InvoiceDate,
		inv.DueDate,
		inv.Currency,
		inv.Note,
		inv.CustomerName,
		inv.CustomerTaxNumber,
		inv.CustomerTaxOffice,
		inv.CustomerAddress,
		inv.CustomerCity,
		inv.CustomerAlias,
		inv.Subtotal,
		inv.TaxTotal,
		inv.Total,
		inv.TransferStatus,
		inv.IntegrationCode,
		inv.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("invoice number %s: %w", inv.InvoiceNumber, entity.ErrAlreadyExists)
		}

		return fmt.Errorf("insert invoice: %w", err)
	}

	const lineQuery = `
		INSERT INTO sales_invoice_items
			(id, invoice_id, line_number, description, quantity, unit_code, unit_price, vat_rate, vat_amount, line_total)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	batch := &pgx.Batch{}
	for _, l := range inv.Lines {
		batch.Queue(lineQuery,
			l.ID, inv.ID, l.LineNumber, l.Description, l.Quantity, l.UnitCode, l.UnitPrice, l.VATRate, l.VATAmount, l.LineTotal,
		)
	}

	err = tx.SendBatch(ctx, batch).Close()
	if err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return tx.Commit(ctx)
}

// SalesInvoice loads the invoice with its lines in line order.
func (r *Repository) SalesInvoice(ctx context.Context, companyID, id uuid.UUID) (entity.SalesInvoice, error) {
	stmt := psql.Select(salesInvoiceColumns...).
		From("sales_invoices").
		Where(sq.Eq{"id": id, "company_id": companyID})

	inv, err := one[entity.SalesInvoice](ctx, r.db, stmt)
	if err != nil {
		return entity.SalesInvoice{}, err
	}

	lines := psql.Select(
		"id",
		"invoice_id",
		"line_number",
		"description",
		"quantity",
		"unit_code",
		"unit_price",
		"vat_rate",
		"vat_amount",
		"line_total",
	).From("sales_invoice_items").Where(sq.Eq{"invoice_id": id}).OrderBy("line_number")

	inv.Lines, err = many[entity.SalesInvoiceLine](ctx, r.db, lines)
	if err != nil {
		return entity.SalesInvoice{}, fmt.Errorf("load lines: %w", err)
	}

	return inv, nil
}

// SaveTransferState stores what the provider last reported about an outgoing invoice.
func (r *Repository) SaveTransferState(ctx context.Context, inv entity.SalesInvoice) error {
	const sqlQuery = `
		UPDATE sales_invoices SET
			invoice_number       = $1,
			transfer_status      = $2,
			transfer_file_id     = $3,
			gib_state_code       = $4,
			gib_state_name       = $5,
			status_message       = $6,
			last_status_check_at = $7
		WHERE id = $8`

	result, err := r.db.Exec(ctx, sqlQuery,
		inv.InvoiceNumber,
		inv.TransferStatus,
		inv.TransferFileID,
		inv.GIBStateCode,
		inv.GIBStateName,
		inv.StatusMessage,
		inv.LastStatusCheckAt,
		inv.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// PendingTransfers selects queued or processing invoices that were not checked since
// checkedBefore, oldest first.
func (r *Repository) PendingTransfers(ctx context.Context, checkedBefore time.Time, limit uint64) ([]entity.SalesInvoice, error) {
	stmt := psql.Select(salesInvoiceColumns...).
		From("sales_invoices").
		Where(sq.Eq{"transfer_status": []entity.TransferStatus{entity.TransferQueued, entity.TransferProcessing}}).
		Where(sq.NotEq{"transfer_file_id": ""}).
		Where(sq.Or{
			sq.Eq{"last_status_check_at": nil},
			sq.Lt{"last_status_check_at": checkedBefore},
		}).
		OrderBy("created_at ASC").
		Limit(limit)

	return many[entity.SalesInvoice](ctx, r.db, stmt)
}

// InvoiceNumbers returns the numbers a company already used in a series and year, in both the
// GİB and the older dashed form.
func (r *Repository) InvoiceNumbers(ctx context.Context, companyID uuid.UUID, series string, year int) ([]string, error) {
	const sqlQuery = `
		SELECT invoice_number FROM sales_invoices
		WHERE company_id = $1 AND (invoice_number LIKE $2 OR invoice_number LIKE $3)`

	rows, err := r.db.Query(ctx, sqlQuery,
		companyID,
		fmt.Sprintf("%s%04d%%", series, year),
		fmt.Sprintf("%s-%04d-%%", series, year),
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *Repository) NilveraCredentials(ctx context.Context, companyID uuid.UUID) (entity.NilveraCredentials, error) {
	stmt := psql.Select("company_id", "api_key", "test_mode", "is_active").
		From("nilvera_auth").
		Where(sq.Eq{"company_id": companyID})

	return one[entity.NilveraCredentials](ctx, r.db, stmt)
}

func (r *Repository) VeribanCredentials(ctx context.Context, companyID uuid.UUID) (entity.VeribanCredentials, error) {
	stmt := psql.Select("company_id", "username", "password", "webservice_url", "test_mode", "is_active").
		From("veriban_auth").
		Where(sq.Eq{"company_id": companyID})

	return one[entity.VeribanCredentials](ctx, r.db, stmt)
}

// VeribanCompanies lists the companies with an active Veriban account.
func (r *Repository) VeribanCompanies(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT company_id FROM veriban_auth WHERE is_active ORDER BY company_id`)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}
