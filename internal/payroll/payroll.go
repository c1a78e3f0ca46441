// Package payroll implements the monthly Turkish salary calculation: employee deductions with
// cumulative progressive income tax, employer contributions and the total employer cost.
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
)

type bracket struct {
	upTo decimal.Decimal // zero means unbounded
	rate decimal.Decimal
}

// Yearly income tax brackets, TRY.
var brackets = []bracket{
	{upTo: decimal.NewFromInt(70_000), rate: decimal.RequireFromString("0.15")},
	{upTo: decimal.NewFromInt(190_000), rate: decimal.RequireFromString("0.20")},
	{upTo: decimal.NewFromInt(650_000), rate: decimal.RequireFromString("0.27")},
	{upTo: decimal.NewFromInt(1_800_000), rate: decimal.RequireFromString("0.35")},
	{rate: decimal.RequireFromString("0.40")},
}

var (
	MinimumWageGross = decimal.RequireFromString("26004.70")
	MinimumWageNet   = decimal.NewFromInt(22_104)
	// MinimumWageCost is the fixed employer cost of a minimum wage employee.
	MinimumWageCost = decimal.NewFromInt(30_881)

	minimumWageBand = decimal.RequireFromString("1.1")

	netToGrossStart     = decimal.RequireFromString("1.3")
	netToGrossDamp      = decimal.RequireFromString("0.8")
	netToGrossMaxIter   = 10
	netToGrossTolerance = decimal.NewFromInt(1)
)

func DefaultRates() entity.SalaryRates {
	return entity.SalaryRates{
		SGKEmployee:          decimal.RequireFromString("0.14"),
		UnemploymentEmployee: decimal.RequireFromString("0.01"),
		StampTax:             decimal.RequireFromString("0.00759"),
		SGKEmployer:          decimal.RequireFromString("0.1575"),
		UnemploymentEmployer: decimal.RequireFromString("0.02"),
		AccidentInsurance:    decimal.RequireFromString("0.002"),
	}
}

// ResolveRates fills every rate that is not overridden with its default.
func ResolveRates(o entity.SalaryRateOverrides) entity.SalaryRates {
	r := DefaultRates()

	for _, f := range []struct {
		dst *decimal.Decimal
		v   *decimal.Decimal
	}{
		{&r.SGKEmployee, o.SGKEmployee},
		{&r.UnemploymentEmployee, o.UnemploymentEmployee},
		{&r.StampTax, o.StampTax},
		{&r.SGKEmployer, o.SGKEmployer},
		{&r.UnemploymentEmployer, o.UnemploymentEmployer},
		{&r.AccidentInsurance, o.AccidentInsurance},
	} {
		if f.v != nil {
			*f.dst = *f.v
		}
	}

	return r
}

// YearlyIncomeTax applies the brackets to a yearly taxable income.
func YearlyIncomeTax(income decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero

	for _, b := range brackets {
		if !income.GreaterThan(lower) {
			break
		}

		upper := income
		if !b.upTo.IsZero() && b.upTo.LessThan(income) {
			upper = b.upTo
		}

		tax = tax.Add(upper.Sub(lower).Mul(b.rate))
		lower = b.upTo
	}

	return tax
}

// MonthlyIncomeTax is the tax growth caused by this month's gross on top of
// the gross already earned in the same year.
func MonthlyIncomeTax(gross, cumulative decimal.Decimal) decimal.Decimal {
	return YearlyIncomeTax(cumulative.Add(gross)).Sub(YearlyIncomeTax(cumulative))
}

func breakdown(gross, cumulative decimal.Decimal, r entity.SalaryRates) entity.SalaryBreakdown {
	b := entity.SalaryBreakdown{
		Gross:                gross,
		SGKEmployee:          gross.Mul(r.SGKEmployee),
		UnemploymentEmployee: gross.Mul(r.UnemploymentEmployee),
		StampTax:             gross.Mul(r.StampTax),
		IncomeTax:            MonthlyIncomeTax(gross, cumulative),
		SGKEmployer:          gross.Mul(r.SGKEmployer),
		UnemploymentEmployer: gross.Mul(r.UnemploymentEmployer),
		AccidentInsurance:    gross.Mul(r.AccidentInsurance),
	}

	b.TotalDeductions = b.SGKEmployee.Add(b.UnemploymentEmployee).Add(b.StampTax).Add(b.IncomeTax)
	b.Net = gross.Sub(b.TotalDeductions)
	b.EmployerCost = gross.Add(employerContributions(b))

	return b
}

func employerContributions(b entity.SalaryBreakdown) decimal.Decimal {
	return b.SGKEmployer.Add(b.UnemploymentEmployer).Add(b.AccidentInsurance)
}

// Breakdown computes deductions and employer contributions for a monthly gross.
// EmployerCost here excludes allowances and provisions, see Calculate.
func Breakdown(gross, cumulative decimal.Decimal, r entity.SalaryRates) entity.SalaryBreakdown {
	return round(breakdown(gross, cumulative, r))
}

// GrossFromNet searches the gross that yields net. The search is damped and stops after
// a fixed number of steps or once the net is within 1 TRY of the target.
func GrossFromNet(net, cumulative decimal.Decimal, r entity.SalaryRates) decimal.Decimal {
	gross := net.Mul(netToGrossStart)

	for i := 0; i < netToGrossMaxIter; i++ {
		diff := breakdown(gross, cumulative, r).Net.Sub(net)
		if diff.Abs().LessThan(netToGrossTolerance) {
			break
		}

		gross = gross.Sub(diff.Mul(netToGrossDamp))
	}

	return gross.Round(2)
}

func Calculate(in entity.SalaryInput) (entity.SalaryBreakdown, error) {
	if !in.InputType.IsValid() {
		return entity.SalaryBreakdown{}, fmt.Errorf("%w: unknown input type %q", entity.ErrInvalidArgument, in.InputType)
	}

	if !in.Amount.IsPositive() {
		return entity.SalaryBreakdown{}, fmt.Errorf("%w: salary must be positive", entity.ErrInvalidArgument)
	}

	if in.CumulativeGross.IsNegative() {
		return entity.SalaryBreakdown{}, fmt.Errorf("%w: cumulative gross must not be negative", entity.ErrInvalidArgument)
	}

	r := ResolveRates(in.Rates)

	gross := in.Amount
	if in.InputType == entity.SalaryInputNet {
		gross = GrossFromNet(in.Amount, in.CumulativeGross, r)
	}

	b := breakdown(gross, in.CumulativeGross, r)
	allowances := in.MealAllowance.Add(in.TransportAllowance)

	if in.MinimumWage && !gross.GreaterThan(MinimumWageGross.Mul(minimumWageBand)) {
		net := b.Net
		if in.InputType == entity.SalaryInputNet {
			net = in.Amount
		}

		extra := decimal.Max(decimal.Zero, net.Sub(MinimumWageNet))

		b.EmployerCost = MinimumWageCost.Add(allowances).Add(extra)
		b.MinimumWageApplied = true
	} else {
		b.EmployerCost = gross.Add(employerContributions(b)).
			Add(allowances).
			Add(in.SeveranceProvision).
			Add(in.BonusProvision)
	}

	return round(b), nil
}

func round(b entity.SalaryBreakdown) entity.SalaryBreakdown {
	b.Gross = b.Gross.Round(2)
	b.SGKEmployee = b.SGKEmployee.Round(2)
	b.UnemploymentEmployee = b.UnemploymentEmployee.Round(2)
	b.StampTax = b.StampTax.Round(2)
	b.IncomeTax = b.IncomeTax.Round(2)
	b.TotalDeductions = b.TotalDeductions.Round(2)
	b.Net = b.Net.Round(2)
	b.SGKEmployer = b.SGKEmployer.Round(2)
	b.UnemploymentEmployer = b.UnemploymentEmployer.Round(2)
	b.AccidentInsurance = b.AccidentInsurance.Round(2)
	b.EmployerCost = b.EmployerCost.Round(2)

	return b
}
