package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
)

// SaveSalaryRecord stores the record, replacing an earlier calculation for the same employee
// and period.
func (r *Repository) SaveSalaryRecord(ctx context.Context, rec entity.SalaryRecord) (entity.SalaryRecord, error) {
	sqlQuery := `
		INSERT INTO salary_records
			(id, company_id, employee_id, period, input_type, minimum_wage, gross_salary, net_salary,
			 cumulative_gross, meal_allowance, transport_allowance, severance_provision, bonus_provision,
			 sgk_employee, unemployment_employee, stamp_tax, income_tax, total_deductions, employer_cost,
			 rates, notes, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (employee_id, period) DO UPDATE SET
			input_type            = EXCLUDED.input_type,
			minimum_wage          = EXCLUDED.minimum_wage,
			gross_salary          = EXCLUDED.gross_salary,
			net_salary            = EXCLUDED.net_salary,
			cumulative_gross      = EXCLUDED.cumulative_gross,
			meal_allowance        = EXCLUDED.meal_allowance,
			transport_allowance   = EXCLUDED.transport_allowance,
			severance_provision   = EXCLUDED.severance_provision,
			bonus_provision       = EXCLUDED.bonus_provision,
			sgk_employee          = EXCLUDED.sgk_employee,
			unemployment_employee = EXCLUDED.unemployment_employee,
			stamp_tax             = EXCLUDED.stamp_tax,
			income_tax            = EXCLUDED.income_tax,
			total_deductions      = EXCLUDED.total_deductions,
			employer_cost         = EXCLUDED.employer_cost,
			rates                 = EXCLUDED.rates,
			notes                 = EXCLUDED.notes
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, sqlQuery,
		rec.ID,
		rec.CompanyID,
		rec.EmployeeID,
		rec.Period,
		rec.InputType,
		rec.MinimumWage,
		rec.GrossSalary,
		rec.NetSalary,
		rec.CumulativeGross,
		rec.MealAllowance,
		rec.TransportAllowance,
		rec.SeveranceProvision,
		rec.BonusProvision,
		rec.SGKEmployee,
		rec.UnemploymentEmp,
		rec.StampTax,
		rec.IncomeTax,
		rec.TotalDeductions,
		rec.EmployerCost,
		rec.Rates,
		rec.Notes,
		rec.CreatedAt,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return entity.SalaryRecord{}, err
	}

	return rec, nil
}

// SalaryRecords lists a company's records, optionally for one period, newest period first.
func (r *Repository) SalaryRecords(ctx context.Context, companyID uuid.UUID, period *time.Time) ([]entity.SalaryRecord, error) {
	stmt := psql.Select(
		"id",
		"company_id",
		"employee_id",
		"period",
		"input_type",
		"minimum_wage",
		"gross_salary",
		"net_salary",
		"cumulative_gross",
		"meal_allowance",
		"transport_allowance",
		"severance_provision",
		"bonus_provision",
		"sgk_employee",
		"unemployment_employee",
		"stamp_tax",
		"income_tax",
		"total_deductions",
		"employer_cost",
		"rates",
		"notes",
		"created_at",
	).From("salary_records").Where(sq.Eq{"company_id": companyID}).OrderBy("period DESC", "employee_id")

	if period != nil {
		stmt = stmt.Where(sq.Eq{"period": *period})
	}

	return many[entity.SalaryRecord](ctx, r.db, stmt)
}

// CumulativeGross sums the gross an employee earned in the period's year before the period.
func (r *Repository) CumulativeGross(ctx context.Context, employeeID uuid.UUID, period time.Time) (decimal.Decimal, error) {
	const sqlQuery = `
		SELECT COALESCE(sum(gross_salary), 0)::text FROM salary_records
		WHERE employee_id = $1 AND period < $2 AND period >= date_trunc('year', $2::date)`

	var sum string

	err := r.db.QueryRow(ctx, sqlQuery, employeeID, period).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromString(sum)
}

func (r *Repository) EmployeeExists(ctx context.Context, companyID, employeeID uuid.UUID) (bool, error) {
	const sqlQuery = `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1 AND company_id = $2)`

	var exists bool

	err := r.db.QueryRow(ctx, sqlQuery, employeeID, companyID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
