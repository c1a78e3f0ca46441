package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/internal/service"
)

type SalaryInputRequest struct {
	InputType          string                      `json:"inputType" validate:"required,oneof=gross net"`
	Amount             decimal.Decimal             `json:"amount"`
	CumulativeGross    decimal.Decimal             `json:"cumulativeGross"`
	MinimumWage        bool                        `json:"minimumWage"`
	MealAllowance      decimal.Decimal             `json:"mealAllowance"`
	TransportAllowance decimal.Decimal             `json:"transportAllowance"`
	SeveranceProvision decimal.Decimal             `json:"severanceProvision"`
	BonusProvision     decimal.Decimal             `json:"bonusProvision"`
	Rates              *entity.SalaryRateOverrides `json:"rates"`
}

func (r SalaryInputRequest) input() entity.SalaryInput {
	in := entity.SalaryInput{
		InputType:          entity.SalaryInputType(r.InputType),
		Amount:             r.Amount,
		CumulativeGross:    r.CumulativeGross,
		MinimumWage:        r.MinimumWage,
		MealAllowance:      r.MealAllowance,
		TransportAllowance: r.TransportAllowance,
		SeveranceProvision: r.SeveranceProvision,
		BonusProvision:     r.BonusProvision,
	}

	if r.Rates != nil {
		in.Rates = *r.Rates
	}

	return in
}

// CalculateSalary godoc
// @Summary      Maaş hesaplama
// @Description  Brütten nete veya netten brüte 2025 bordro hesabı yapar
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body SalaryInputRequest true "Maaş bilgisi"
// @Success      200 {object} entity.SalaryBreakdown
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Security     BearerAuth
// @Router       /payroll/calculate [post]
func (h *Handler) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SalaryInputRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	res, err := h.s.CalculateSalary(ctx, req.input())
	if err != nil {
		SendServiceErr(ctx, w, err, "maaş hesaplanamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

type GrossFromNetRequest struct {
	Net             decimal.Decimal             `json:"net"`
	CumulativeGross decimal.Decimal             `json:"cumulativeGross"`
	Rates           *entity.SalaryRateOverrides `json:"rates"`
}

type GrossFromNetResponse struct {
	Gross decimal.Decimal `json:"gross"`
}

// GrossFromNet godoc
// @Summary      Netten brüte
// @Description  Hedef net maaşı veren brüt tutarı bulur
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body GrossFromNetRequest true "Net maaş"
// @Success      200 {object} GrossFromNetResponse
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Security     BearerAuth
// @Router       /payroll/gross-from-net [post]
func (h *Handler) GrossFromNet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GrossFromNetRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	var rates entity.SalaryRateOverrides
	if req.Rates != nil {
		rates = *req.Rates
	}

	gross, err := h.s.GrossFromNet(ctx, req.Net, req.CumulativeGross, rates)
	if err != nil {
		SendServiceErr(ctx, w, err, "brüt maaş hesaplanamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, GrossFromNetResponse{Gross: gross})
}

type SaveSalaryRecordRequest struct {
	EmployeeID uuid.UUID          `json:"employeeId" validate:"required"`
	Period     string             `json:"period" validate:"required"`
	Notes      string             `json:"notes" validate:"max=1000"`
	Input      SalaryInputRequest `json:"input"`
}

// SaveSalaryRecord godoc
// @Summary      Bordro kaydı
// @Description  Çalışanın dönem bordrosunu hesaplar ve kaydeder
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body SaveSalaryRecordRequest true "Bordro kaydı (period: YYYY-MM)"
// @Success      201 {object} entity.SalaryRecord
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Failure      404 {object} ResponseError "Çalışan bulunamadı"
// @Security     BearerAuth
// @Router       /payroll/records [post]
func (h *Handler) SaveSalaryRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaveSalaryRecordRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	period, err := parsePeriod(req.Period)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	rec, err := h.s.SaveSalaryRecord(ctx, service.SalaryRecordInput{
		EmployeeID: req.EmployeeID,
		Period:     period,
		Input:      req.Input.input(),
		Notes:      req.Notes,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "bordro kaydedilemedi")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, rec)
}

type SalaryRecordsResponse struct {
	Records []entity.SalaryRecord `json:"records"`
}

// SalaryRecords godoc
// @Summary      Bordro kayıtları
// @Description  Şirketin bordro kayıtlarını, isteğe bağlı olarak bir dönem için döner
// @Tags         payroll
// @Produce      json
// @Param        period query string false "Dönem (YYYY-MM)"
// @Success      200 {object} SalaryRecordsResponse
// @Failure      400 {object} ResponseError "Geçersiz istek parametreleri"
// @Security     BearerAuth
// @Router       /payroll/records [get]
func (h *Handler) SalaryRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var period *time.Time

	if v := r.URL.Query().Get("period"); v != "" {
		p, err := parsePeriod(v)
		if err != nil {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
			return
		}

		period = &p
	}

	records, err := h.s.SalaryRecords(ctx, period)
	if err != nil {
		SendServiceErr(ctx, w, err, "bordro kayıtları alınamadı")
		return
	}

	if records == nil {
		records = []entity.SalaryRecord{}
	}

	SendJSON(ctx, w, http.StatusOK, SalaryRecordsResponse{Records: records})
}

// parsePeriod accepts YYYY-MM or a full date inside the month.
func parsePeriod(v string) (time.Time, error) {
	t, err := time.Parse(periodLayout, v)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: period %q is not YYYY-MM", entity.ErrInvalidArgument, v)
	}

	return t, nil
}
