package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const queryTimeout = "10s"

type export struct {
	from    string
	columns []string
	headers []string
	date    string
	status  string
	order   string
}

var exports = map[entity.ReportType]export{
	entity.ReportCustomers: {
		from:    "customers",
		columns: []string{"name", "email", "phone", "city", "balance", "status", "created_at"},
		headers: []string{"Müşteri Adı", "E-posta", "Telefon", "Şehir", "Bakiye", "Durum", "Kayıt Tarihi"},
		date:    "created_at",
		status:  "status",
		order:   "name",
	},
	entity.ReportSales: {
		from:    "orders",
		columns: []string{"order_number", "title", "status", "total_amount", "currency", "order_date"},
		headers: []string{"Sipariş No", "Başlık", "Durum", "Tutar", "Para Birimi", "Sipariş Tarihi"},
		date:    "order_date",
		status:  "status",
		order:   "order_date DESC NULLS LAST",
	},
	entity.ReportInvoices: {
		from: "sales_invoices",
		columns: []string{
			"invoice_number", "customer_name", "subtotal", "tax_total", "total", "currency", "transfer_status", "invoice_date",
		},
		headers: []string{"Fatura No", "Müşteri", "Ara Toplam", "KDV", "Toplam", "Para Birimi", "Durum", "Fatura Tarihi"},
		date:    "invoice_date",
		status:  "transfer_status",
		order:   "invoice_date DESC NULLS LAST",
	},
	entity.ReportInventory: {
		from:    "products",
		columns: []string{"code", "name", "quantity", "unit", "price", "status"},
		headers: []string{"Ürün Kodu", "Ürün Adı", "Stok", "Birim", "Fiyat", "Durum"},
		date:    "created_at",
		status:  "status",
		order:   "name",
	},
	entity.ReportSuppliers: {
		from:    "suppliers",
		columns: []string{"name", "email", "phone", "tax_number", "balance", "status"},
		headers: []string{"Tedarikçi Adı", "E-posta", "Telefon", "Vergi No", "Bakiye", "Durum"},
		date:    "created_at",
		status:  "status",
		order:   "name",
	},
}

// ReportData reads the table behind a spreadsheet export.
func (r *Repository) ReportData(ctx context.Context, t entity.ReportType, f entity.ReportFilter) (entity.ReportData, error) {
	e, ok := exports[t]
	if !ok {
		return entity.ReportData{}, fmt.Errorf("%w: unknown report type %q", entity.ErrInvalidArgument, t)
	}

	stmt := psql.Select(e.columns...).
		From(e.from).
		Where(sq.Eq{"company_id": f.CompanyID}).
		OrderBy(e.order)

	if f.From != nil {
		stmt = stmt.Where(sq.GtOrEq{e.date: *f.From})
	}

	if f.To != nil {
		stmt = stmt.Where(sq.LtOrEq{e.date: *f.To})
	}

	if len(f.Statuses) > 0 {
		stmt = stmt.Where(sq.Eq{e.status: f.Statuses})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.ReportData{}, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return entity.ReportData{}, err
	}

	data, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([]any, error) {
		values, err := row.Values()
		if err != nil {
			return nil, err
		}

		for i := range values {
			values[i] = normalize(values[i])
		}

		return values, nil
	})
	if err != nil {
		return entity.ReportData{}, err
	}

	return entity.ReportData{Headers: e.headers, Rows: data}, nil
}

// ReadOnlyQuery runs generated SQL inside a read-only transaction with a statement timeout.
// Table names resolve to the assistant_scope views, which only show companyID's rows.
// At most limit rows are returned.
func (r *Repository) ReadOnlyQuery(ctx context.Context, companyID uuid.UUID, query string, limit int) ([]map[string]any, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx, "SET LOCAL statement_timeout = '"+queryTimeout+"'")
	if err != nil {
		return nil, fmt.Errorf("set timeout: %w", err)
	}

	_, err = tx.Exec(ctx,
		`SELECT set_config('app.company_id', $1, true), set_config('search_path', 'assistant_scope', true)`,
		companyID.String())
	if err != nil {
		return nil, fmt.Errorf("set query scope: %w", err)
	}

	rows, err := tx.Query(ctx, fmt.Sprintf("SELECT * FROM (%s) AS q LIMIT %d", query, limit))
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (map[string]any, error) {
		values, err := row.Values()
		if err != nil {
			return nil, err
		}

		m := make(map[string]any, len(values))
		for i, fd := range row.FieldDescriptions() {
			m[fd.Name] = normalize(values[i])
		}

		return m, nil
	})
}

func (r *Repository) CreateGeneratedReport(ctx context.Context, rep entity.GeneratedReport) error {
	sqlQuery :=
		`INSERT INTO generated_reports
			(id, company_id, user_id, report_type, format, file_name, size, row_count, object_key, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sqlQuery,
		rep.ID,
		rep.CompanyID,
		rep.UserID,
		rep.ReportType,
		rep.Format,
		rep.FileName,
		rep.Size,
		rep.RowCount,
		rep.ObjectKey,
		rep.CreatedAt,
	)

	return err
}

func (r *Repository) GeneratedReport(ctx context.Context, companyID, id uuid.UUID) (entity.GeneratedReport, error) {
	stmt := psql.Select(
		"id",
		"company_id",
		"user_id",
		"report_type",
		"format",
		"file_name",
		"size",
		"row_count",
		"object_key",
		"created_at",
	).From("generated_reports").Where(sq.Eq{"id": id, "company_id": companyID})

	return one[entity.GeneratedReport](ctx, r.db, stmt)
}

func (r *Repository) SaveAssistantMessages(ctx context.Context, msgs ...entity.AssistantMessage) error {
	const sqlQuery = `
		INSERT INTO assistant_messages (id, company_id, user_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	batch := &pgx.Batch{}
	for _, m := range msgs {
		batch.Queue(sqlQuery, m.ID, m.CompanyID, m.UserID, m.Role, m.Content, m.CreatedAt)
	}

	return r.db.SendBatch(ctx, batch).Close()
}
