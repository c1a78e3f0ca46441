package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/payroll"
)

type SalaryRecordInput struct {
	EmployeeID uuid.UUID
	Period     time.Time
	Input      entity.SalaryInput
	Notes      string
}

func (s *Service) CalculateSalary(_ context.Context, in entity.SalaryInput) (entity.SalaryBreakdown, error) {
	return payroll.Calculate(in)
}

func (s *Service) GrossFromNet(_ context.Context, net, cumulative decimal.Decimal, rates entity.SalaryRateOverrides) (decimal.Decimal, error) {
	if !net.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: net salary must be positive", entity.ErrInvalidArgument)
	}

	return payroll.GrossFromNet(net, cumulative, payroll.ResolveRates(rates)), nil
}

// SaveSalaryRecord calculates and stores the salary of an employee for a month. When no
// cumulative gross is given, the one stored for earlier months of the year is used.
func (s *Service) SaveSalaryRecord(ctx context.Context, in SalaryRecordInput) (entity.SalaryRecord, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return entity.SalaryRecord{}, err
	}

	ok, err := s.repo.EmployeeExists(ctx, user.CompanyID, in.EmployeeID)
	if err != nil {
		return entity.SalaryRecord{}, fmt.Errorf("check employee: %w", err)
	}

	if !ok {
		return entity.SalaryRecord{}, fmt.Errorf("employee %s: %w", in.EmployeeID, entity.ErrNotFound)
	}

	period := monthStart(in.Period)

	if in.Input.CumulativeGross.IsZero() {
		in.Input.CumulativeGross, err = s.repo.CumulativeGross(ctx, in.EmployeeID, period)
		if err != nil {
			return entity.SalaryRecord{}, fmt.Errorf("cumulative gross: %w", err)
		}
	}

	b, err := payroll.Calculate(in.Input)
	if err != nil {
		return entity.SalaryRecord{}, err
	}

	rec, err := s.repo.SaveSalaryRecord(ctx, entity.SalaryRecord{
		ID:                 newID(),
		CompanyID:          user.CompanyID,
		EmployeeID:         in.EmployeeID,
		Period:             period,
		InputType:          in.Input.InputType,
		MinimumWage:        in.Input.MinimumWage,
		GrossSalary:        b.Gross,
		NetSalary:          b.Net,
		CumulativeGross:    in.Input.CumulativeGross,
		MealAllowance:      in.Input.MealAllowance,
		TransportAllowance: in.Input.TransportAllowance,
		SeveranceProvision: in.Input.SeveranceProvision,
		BonusProvision:     in.Input.BonusProvision,
		SGKEmployee:        b.SGKEmployee,
		UnemploymentEmp:    b.UnemploymentEmployee,
		StampTax:           b.StampTax,
		IncomeTax:          b.IncomeTax,
		TotalDeductions:    b.TotalDeductions,
		EmployerCost:       b.EmployerCost,
		Rates:              payroll.ResolveRates(in.Input.Rates),
		Notes:              in.Notes,
		CreatedAt:          s.now(),
	})
	if err != nil {
		return entity.SalaryRecord{}, fmt.Errorf("save salary record: %w", err)
	}

	slog.InfoContext(ctx, "salary record saved", "employee_id", in.EmployeeID, "period", period.Format("2006-01"))

	return rec, nil
}

func (s *Service) SalaryRecords(ctx context.Context, period *time.Time) ([]entity.SalaryRecord, error) {
	user, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if period != nil {
		period = ptr(monthStart(*period))
	}

	return s.repo.SalaryRecords(ctx, user.CompanyID, period)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
