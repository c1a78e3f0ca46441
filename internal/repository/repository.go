package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) Company(ctx context.Context, id uuid.UUID) (entity.Company, error) {
	stmt := psql.Select(
		"id",
		"name",
		"tax_number",
		"tax_office",
		"address",
		"city",
		"finance_email",
		"invoice_series",
	).From("companies").Where(sq.Eq{"id": id})

	return one[entity.Company](ctx, r.db, stmt)
}

// one runs a select built with squirrel and maps the single row by column name.
func one[T any](ctx context.Context, db *pgxpool.Pool, stmt sq.SelectBuilder) (T, error) {
	var zero T

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build query: %w", err)
	}

	rows, err := db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return zero, err
	}

	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, entity.ErrNotFound
		}

		return zero, err
	}

	return v, nil
}

func many[T any](ctx context.Context, db *pgxpool.Pool, stmt sq.SelectBuilder) ([]T, error) {
	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// normalize turns the generic values pgx returns for untyped rows into the types the
// rest of the service works with.
func normalize(v any) any {
	switch t := v.(type) {
	case pgtype.Numeric:
		if !t.Valid {
			return nil
		}

		dv, err := t.Value()
		if err != nil {
			return nil
		}

		s, ok := dv.(string)
		if !ok {
			return nil
		}

		d, err := decimal.NewFromString(s)
		if err != nil {
			return s
		}

		return d
	case [16]byte:
		return uuid.UUID(t)
	default:
		return v
	}
}
