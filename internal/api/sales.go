package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/erp/internal/service"
)

type SalesInvoiceLineRequest struct {
	Description string          `json:"description" validate:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCode    string          `json:"unitCode" validate:"max=10"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
}

type CreateSalesInvoiceRequest struct {
	Series            string                    `json:"series" validate:"omitempty,len=3,alphanum"`
	InvoiceDate       *time.Time                `json:"invoiceDate"`
	DueDate           *time.Time                `json:"dueDate"`
	ProfileID         string                    `json:"profileId" validate:"omitempty,oneof=TEMELFATURA TICARIFATURA EARSIVFATURA"`
	InvoiceType       string                    `json:"invoiceType" validate:"omitempty,oneof=SATIS IADE TEVKIFAT ISTISNA"`
	Currency          string                    `json:"currency" validate:"omitempty,len=3"`
	Note              string                    `json:"note" validate:"max=1000"`
	CustomerName      string                    `json:"customerName" validate:"required,max=255"`
	CustomerTaxNumber string                    `json:"customerTaxNumber" validate:"required,numeric,min=10,max=11"`
	CustomerTaxOffice string                    `json:"customerTaxOffice" validate:"max=100"`
	CustomerAddress   string                    `json:"customerAddress" validate:"max=500"`
	CustomerCity      string                    `json:"customerCity" validate:"max=100"`
	CustomerAlias     string                    `json:"customerAlias" validate:"max=255"`
	Lines             []SalesInvoiceLineRequest `json:"lines" validate:"required,min=1,max=500,dive"`
}

func (r CreateSalesInvoiceRequest) input() service.SalesInvoiceInput {
	in := service.SalesInvoiceInput{
		Series:            r.Series,
		InvoiceDate:       r.InvoiceDate,
		DueDate:           r.DueDate,
		ProfileID:         r.ProfileID,
		InvoiceType:       r.InvoiceType,
		Currency:          r.Currency,
		Note:              r.Note,
		CustomerName:      r.CustomerName,
		CustomerTaxNumber: r.CustomerTaxNumber,
		CustomerTaxOffice: r.CustomerTaxOffice,
		CustomerAddress:   r.CustomerAddress,
		CustomerCity:      r.CustomerCity,
		CustomerAlias:     r.CustomerAlias,
		Lines:             make([]service.SalesInvoiceLineInput, len(r.Lines)),
	}

	for i, l := range r.Lines {
		in.Lines[i] = service.SalesInvoiceLineInput{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitCode:    l.UnitCode,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
		}
	}

	return in
}

// CreateSalesInvoice godoc
// @Summary      Satış faturası
// @Description  Taslak satış faturası oluşturur ve sıradaki GİB numarasını verir
// @Tags         sales-invoices
// @Accept       json
// @Produce      json
// @Param        request body CreateSalesInvoiceRequest true "Fatura"
// @Success      201 {object} entity.SalesInvoice
// @Failure      400 {object} ResponseError "Geçersiz istek gövdesi"
// @Failure      409 {object} ResponseError "Fatura numarası alınamadı"
// @Security     BearerAuth
// @Router       /sales-invoices [post]
func (h *Handler) CreateSalesInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateSalesInvoiceRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	inv, err := h.s.CreateSalesInvoice(ctx, req.input())
	if err != nil {
		SendServiceErr(ctx, w, err, "fatura oluşturulamadı")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, inv)
}

// SendSalesInvoice godoc
// @Summary      Faturayı gönder
// @Description  Taslak faturayı UBL-TR olarak üretip Veriban'a iletir
// @Tags         sales-invoices
// @Produce      json
// @Param        id path string true "Fatura ID"
// @Success      200 {object} entity.SalesInvoice
// @Failure      400 {object} ResponseError "Geçersiz ID"
// @Failure      404 {object} ResponseError "Fatura bulunamadı"
// @Failure      409 {object} ResponseError "Fatura zaten gönderilmiş"
// @Failure      502 {object} ResponseError "Entegratör hatası"
// @Failure      503 {object} ResponseError "Veriban yapılandırılmamış"
// @Security     BearerAuth
// @Router       /sales-invoices/{id}/send [post]
func (h *Handler) SendSalesInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	inv, err := h.s.SendSalesInvoice(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "fatura gönderilemedi")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inv)
}

// SalesInvoiceStatus godoc
// @Summary      Gönderim durumu
// @Description  Faturanın Veriban'daki güncel durumunu sorgular
// @Tags         sales-invoices
// @Produce      json
// @Param        id path string true "Fatura ID"
// @Success      200 {object} entity.SalesInvoice
// @Failure      400 {object} ResponseError "Geçersiz ID"
// @Failure      404 {object} ResponseError "Fatura bulunamadı"
// @Failure      502 {object} ResponseError "Entegratör hatası"
// @Security     BearerAuth
// @Router       /sales-invoices/{id}/status [get]
func (h *Handler) SalesInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	inv, err := h.s.SalesInvoiceStatus(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "durum sorgulanamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inv)
}

type NextInvoiceNumberResponse struct {
	Number string `json:"number"`
}

// NextInvoiceNumber godoc
// @Summary      Sıradaki fatura numarası
// @Description  Serinin bu yılki sıradaki GİB numarasını önerir
// @Tags         sales-invoices
// @Produce      json
// @Param        series query string false "3 karakterlik seri, ör. FAT"
// @Success      200 {object} NextInvoiceNumberResponse
// @Failure      400 {object} ResponseError "Geçersiz seri"
// @Security     BearerAuth
// @Router       /sales-invoices/next-number [get]
func (h *Handler) NextInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := h.s.NextInvoiceNumber(ctx, r.URL.Query().Get("series"))
	if err != nil {
		SendServiceErr(ctx, w, err, "fatura numarası alınamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, NextInvoiceNumberResponse{Number: number})
}

// DownloadReport godoc
// @Summary      Rapor indirme
// @Description  Asistanın oluşturduğu Excel veya CSV dosyasını indirir
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path string true "Rapor ID"
// @Success      200 {file} binary "Rapor dosyası"
// @Failure      400 {object} ResponseError "Geçersiz ID"
// @Failure      404 {object} ResponseError "Rapor bulunamadı"
// @Security     BearerAuth
// @Router       /reports/{id}/download [get]
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	rep, err := h.s.DownloadReport(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "rapor indirilemedi")
		return
	}

	attachment(w, rep.Report.Format.ContentType(), rep.Report.FileName)
	http.ServeContent(w, r, rep.Report.FileName, rep.Report.CreatedAt, bytes.NewReader(rep.Data))
}
