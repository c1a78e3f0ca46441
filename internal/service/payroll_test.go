package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/payroll"
	"github.com/samandr77/microservices/erp/internal/service"
)

func TestService_SaveSalaryRecord(t *testing.T) {
	t.Parallel()

	employeeID := uuid.Must(uuid.NewV4())
	period := time.Date(2025, 3, 18, 15, 0, 0, 0, time.UTC)
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reads cumulative gross", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		in := entity.SalaryInput{InputType: entity.SalaryInputGross, Amount: dec("40000")}

		withCumulative := in
		withCumulative.CumulativeGross = dec("80000")

		want, err := payroll.Calculate(withCumulative)
		r.NoError(err)

		ts.repo.EXPECT().EmployeeExists(gomock.Any(), ts.user.CompanyID, employeeID).Return(true, nil)
		ts.repo.EXPECT().CumulativeGross(gomock.Any(), employeeID, march).Return(dec("80000"), nil)
		ts.repo.EXPECT().SaveSalaryRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entity.SalaryRecord) (entity.SalaryRecord, error) {
				return rec, nil
			})

		rec, err := ts.s.SaveSalaryRecord(ts.ctx(), service.SalaryRecordInput{
			EmployeeID: employeeID,
			Period:     period,
			Input:      in,
			Notes:      "Mart",
		})
		r.NoError(err)

		r.Equal(march, rec.Period)
		r.Equal(ts.user.CompanyID, rec.CompanyID)
		r.True(dec("80000").Equal(rec.CumulativeGross))
		r.True(want.Gross.Equal(rec.GrossSalary))
		r.True(want.Net.Equal(rec.NetSalary))
		r.True(want.IncomeTax.Equal(rec.IncomeTax))
		r.True(want.EmployerCost.Equal(rec.EmployerCost))
		r.Equal(payroll.DefaultRates(), rec.Rates)
		r.Equal("Mart", rec.Notes)
		r.Equal(testNow, rec.CreatedAt)
	})

	t.Run("given cumulative gross", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		in := entity.SalaryInput{
			InputType:       entity.SalaryInputNet,
			Amount:          dec("30000"),
			CumulativeGross: dec("120000"),
		}

		want, err := payroll.Calculate(in)
		r.NoError(err)

		ts.repo.EXPECT().EmployeeExists(gomock.Any(), ts.user.CompanyID, employeeID).Return(true, nil)
		ts.repo.EXPECT().SaveSalaryRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entity.SalaryRecord) (entity.SalaryRecord, error) {
				return rec, nil
			})

		rec, err := ts.s.SaveSalaryRecord(ts.ctx(), service.SalaryRecordInput{
			EmployeeID: employeeID,
			Period:     period,
			Input:      in,
		})
		r.NoError(err)
		r.Equal(entity.SalaryInputNet, rec.InputType)
		r.True(want.Gross.Equal(rec.GrossSalary))
		r.True(want.Net.Equal(rec.NetSalary))
	})

	t.Run("unknown employee", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		ts.repo.EXPECT().EmployeeExists(gomock.Any(), ts.user.CompanyID, employeeID).Return(false, nil)

		_, err := ts.s.SaveSalaryRecord(ts.ctx(), service.SalaryRecordInput{
			EmployeeID: employeeID,
			Period:     period,
			Input:      entity.SalaryInput{InputType: entity.SalaryInputGross, Amount: dec("1")},
		})
		require.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		ts.repo.EXPECT().EmployeeExists(gomock.Any(), ts.user.CompanyID, employeeID).Return(true, nil)
		ts.repo.EXPECT().CumulativeGross(gomock.Any(), employeeID, march).Return(decimal.Zero, nil)

		_, err := ts.s.SaveSalaryRecord(ts.ctx(), service.SalaryRecordInput{
			EmployeeID: employeeID,
			Period:     period,
			Input:      entity.SalaryInput{InputType: "hourly", Amount: dec("100")},
		})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestService_SalaryRecords(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []entity.SalaryRecord{{ID: uuid.Must(uuid.NewV4())}}

	ts.repo.EXPECT().SalaryRecords(gomock.Any(), ts.user.CompanyID, &march).Return(records, nil)

	got, err := ts.s.SalaryRecords(ts.ctx(), date(2025, 3, 27))
	r.NoError(err)
	r.Equal(records, got)
}

func TestService_GrossFromNet(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	gross, err := ts.s.GrossFromNet(context.Background(), dec("25000"), decimal.Zero, entity.SalaryRateOverrides{})
	require.NoError(t, err)
	require.True(t, gross.GreaterThan(dec("25000")))

	_, err = ts.s.GrossFromNet(context.Background(), dec("-1"), decimal.Zero, entity.SalaryRateOverrides{})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
