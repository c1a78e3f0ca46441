package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type SalaryInputType string

const (
	SalaryInputGross SalaryInputType = "gross"
	SalaryInputNet   SalaryInputType = "net"
)

func (t SalaryInputType) IsValid() bool {
	return t == SalaryInputGross || t == SalaryInputNet
}

// SalaryRates are fractions, e.g. 0.14 for 14%.
type SalaryRates struct {
	SGKEmployee          decimal.Decimal `json:"sgkEmployee"`
	UnemploymentEmployee decimal.Decimal `json:"unemploymentEmployee"`
	StampTax             decimal.Decimal `json:"stampTax"`
	SGKEmployer          decimal.Decimal `json:"sgkEmployer"`
	UnemploymentEmployer decimal.Decimal `json:"unemploymentEmployer"`
	AccidentInsurance    decimal.Decimal `json:"accidentInsurance"`
}

// SalaryRateOverrides replace single default rates. A nil field keeps the default
// and an explicit zero turns that contribution off.
type SalaryRateOverrides struct {
	SGKEmployee          *decimal.Decimal `json:"sgkEmployee,omitempty"`
	UnemploymentEmployee *decimal.Decimal `json:"unemploymentEmployee,omitempty"`
	StampTax             *decimal.Decimal `json:"stampTax,omitempty"`
	SGKEmployer          *decimal.Decimal `json:"sgkEmployer,omitempty"`
	UnemploymentEmployer *decimal.Decimal `json:"unemploymentEmployer,omitempty"`
	AccidentInsurance    *decimal.Decimal `json:"accidentInsurance,omitempty"`
}

type SalaryInput struct {
	InputType          SalaryInputType
	Amount             decimal.Decimal
	CumulativeGross    decimal.Decimal
	MinimumWage        bool
	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	SeveranceProvision decimal.Decimal
	BonusProvision     decimal.Decimal
	Rates              SalaryRateOverrides
}

type SalaryBreakdown struct {
	Gross                decimal.Decimal `json:"gross"`
	SGKEmployee          decimal.Decimal `json:"sgkEmployee"`
	UnemploymentEmployee decimal.Decimal `json:"unemploymentEmployee"`
	StampTax             decimal.Decimal `json:"stampTax"`
	IncomeTax            decimal.Decimal `json:"incomeTax"`
	TotalDeductions      decimal.Decimal `json:"totalDeductions"`
	Net                  decimal.Decimal `json:"net"`
	SGKEmployer          decimal.Decimal `json:"sgkEmployer"`
	UnemploymentEmployer decimal.Decimal `json:"unemploymentEmployer"`
	AccidentInsurance    decimal.Decimal `json:"accidentInsurance"`
	EmployerCost         decimal.Decimal `json:"employerCost"`
	MinimumWageApplied   bool            `json:"minimumWageApplied"`
}

type SalaryRecord struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	CompanyID          uuid.UUID       `db:"company_id" json:"companyId"`
	EmployeeID         uuid.UUID       `db:"employee_id" json:"employeeId"`
	Period             time.Time       `db:"period" json:"period"`
	InputType          SalaryInputType `db:"input_type" json:"inputType"`
	MinimumWage        bool            `db:"minimum_wage" json:"minimumWage"`
	GrossSalary        decimal.Decimal `db:"gross_salary" json:"grossSalary"`
	NetSalary          decimal.Decimal `db:"net_salary" json:"netSalary"`
	CumulativeGross    decimal.Decimal `db:"cumulative_gross" json:"cumulativeGross"`
	MealAllowance      decimal.Decimal `db:"meal_allowance" json:"mealAllowance"`
	TransportAllowance decimal.Decimal `db:"transport_allowance" json:"transportAllowance"`
	SeveranceProvision decimal.Decimal `db:"severance_provision" json:"severanceProvision"`
	BonusProvision     decimal.Decimal `db:"bonus_provision" json:"bonusProvision"`
	SGKEmployee        decimal.Decimal `db:"sgk_employee" json:"sgkEmployee"`
	UnemploymentEmp    decimal.Decimal `db:"unemployment_employee" json:"unemploymentEmployee"`
	StampTax           decimal.Decimal `db:"stamp_tax" json:"stampTax"`
	IncomeTax          decimal.Decimal `db:"income_tax" json:"incomeTax"`
	TotalDeductions    decimal.Decimal `db:"total_deductions" json:"totalDeductions"`
	EmployerCost       decimal.Decimal `db:"employer_cost" json:"employerCost"`
	Rates              SalaryRates     `db:"rates" json:"rates"`
	Notes              string          `db:"notes" json:"notes"`
	CreatedAt          time.Time       `db:"created_at" json:"createdAt"`
}
