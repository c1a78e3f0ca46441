package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const (
	defaultInvoiceLimit = 20
	maxInvoiceLimit     = 100
	maxInvoicePage      = 10000
	defaultSyncWindow   = 7 * 24 * time.Hour
)

type ParseInvoiceRequest struct {
	Content string `json:"content" validate:"required"`
}

// ParseInvoice godoc
// @Summary      UBL-TR ayrıştırma
// @Description  XML veya base64 (zip olabilir) olarak gelen e-faturayı okur
// @Tags         einvoices
// @Accept       json
// @Produce      json
// @Param        request body ParseInvoiceRequest true "Fatura içeriği"
// @Success      200 {object} entity.Invoice
// @Failure      400 {object} ResponseError "Fatura okunamadı"
// @Security     BearerAuth
// @Router       /einvoices/parse [post]
func (h *Handler) ParseInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ParseInvoiceRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		SendServiceErr(ctx, w, err, errBadBodyText)
		return
	}

	inv, err := h.s.ParseInvoice(ctx, []byte(req.Content))
	if err != nil {
		SendServiceErr(ctx, w, err, "fatura okunamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inv)
}

type IncomingInvoicesResponse struct {
	Total    int                      `json:"total"`
	Invoices []entity.IncomingInvoice `json:"invoices"`
}

// IncomingInvoices godoc
// @Summary      Gelen faturalar
// @Description  Kaydedilmiş gelen e-faturaları sayfalı olarak döner
// @Tags         einvoices
// @Produce      json
// @Param        from query string false "Başlangıç tarihi (YYYY-MM-DD)"
// @Param        to query string false "Bitiş tarihi (YYYY-MM-DD)"
// @Param        page query int false "Sayfa (varsayılan 1)"
// @Param        limit query int false "Sayfa boyutu (varsayılan 20)"
// @Success      200 {object} IncomingInvoicesResponse
// @Failure      400 {object} ResponseError "Geçersiz istek parametreleri"
// @Security     BearerAuth
// @Router       /einvoices/incoming [get]
func (h *Handler) IncomingInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	from, err := parseDate(q, "from")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	to, err := parseDate(q, "to")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	invoices, total, err := h.s.IncomingInvoices(ctx, entity.IncomingInvoiceFilter{
		From:  from,
		To:    to,
		Page:  parseLimit(q, "page", 1, maxInvoicePage),
		Limit: parseLimit(q, "limit", defaultInvoiceLimit, maxInvoiceLimit),
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "gelen faturalar alınamadı")
		return
	}

	if invoices == nil {
		invoices = []entity.IncomingInvoice{}
	}

	SendJSON(ctx, w, http.StatusOK, IncomingInvoicesResponse{Total: total, Invoices: invoices})
}

// InvoiceDetails godoc
// @Summary      Fatura detayı
// @Description  Gelen faturayı kalemleriyle döner. Kalemler kayıtlı veriden, entegratörden, XML'den veya ham yanıttan çıkarılır
// @Tags         einvoices
// @Produce      json
// @Param        id path string true "Fatura ID"
// @Success      200 {object} service.InvoiceDetails
// @Failure      400 {object} ResponseError "Geçersiz ID"
// @Failure      404 {object} ResponseError "Fatura bulunamadı"
// @Failure      503 {object} ResponseError "Entegrasyon yapılandırılmamış"
// @Security     BearerAuth
// @Router       /einvoices/{id}/details [get]
func (h *Handler) InvoiceDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	details, err := h.s.InvoiceDetails(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "fatura detayı alınamadı")
		return
	}

	SendJSON(ctx, w, http.StatusOK, details)
}

// InvoicePDF godoc
// @Summary      Fatura PDF
// @Description  Faturanın PDF görüntüsünü Nilvera'dan indirir
// @Tags         einvoices
// @Produce      application/pdf
// @Param        id path string true "Fatura ID"
// @Param        kind query string false "Fatura türü" Enums(e-fatura, e-arsiv)
// @Success      200 {file} binary "PDF"
// @Failure      400 {object} ResponseError "Geçersiz istek"
// @Failure      404 {object} ResponseError "Fatura bulunamadı"
// @Failure      502 {object} ResponseError "Entegratör hatası"
// @Security     BearerAuth
// @Router       /einvoices/{id}/pdf [get]
func (h *Handler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	pdf, name, err := h.s.InvoicePDF(ctx, id, entity.EInvoiceKind(r.URL.Query().Get("kind")))
	if err != nil {
		SendServiceErr(ctx, w, err, "PDF indirilemedi")
		return
	}

	attachment(w, "application/pdf", name)
	http.ServeContent(w, r, name, h.now(), bytes.NewReader(pdf))
}

type SyncIncomingRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// SyncIncoming godoc
// @Summary      Gelen fatura eşitleme
// @Description  Veriban'dan gelen faturaları indirir, varsayılan aralık son 7 gündür
// @Tags         einvoices
// @Accept       json
// @Produce      json
// @Param        request body SyncIncomingRequest false "Tarih aralığı"
// @Success      200 {object} service.SyncSummary
// @Failure      400 {object} ResponseError "Geçersiz istek"
// @Failure      503 {object} ResponseError "Veriban yapılandırılmamış"
// @Security     BearerAuth
// @Router       /einvoices/incoming/sync [post]
func (h *Handler) SyncIncoming(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SyncIncomingRequest

	if r.ContentLength != 0 {
		err := decodeJSON(w, r, &req)
		if err != nil {
			SendServiceErr(ctx, w, err, errBadBodyText)
			return
		}
	}

	to := h.now()
	if req.To != nil {
		to = *req.To
	}

	from := to.Add(-defaultSyncWindow)
	if req.From != nil {
		from = *req.From
	}

	summary, err := h.s.SyncIncoming(ctx, from, to)
	if err != nil {
		SendServiceErr(ctx, w, err, "faturalar eşitlenemedi")
		return
	}

	SendJSON(ctx, w, http.StatusOK, summary)
}
